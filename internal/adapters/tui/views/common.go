package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// GameChosenMsg is sent when a game has been picked in the search view
type GameChosenMsg struct {
	Game string
}

// SwitchToSearchMsg returns to the game search view
type SwitchToSearchMsg struct{}

// SwitchToArchivesMsg opens the backup list for a game
type SwitchToArchivesMsg struct {
	Game string
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToPathsMsg returns to the save-locations view, keeping its state
type SwitchToPathsMsg struct{}

// SwitchToSyncMsg opens the cloud-sync view for a save folder
type SwitchToSyncMsg struct {
	Game     string
	SavePath string
}
