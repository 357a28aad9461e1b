package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/adapters/tui/views"
	"pcsm/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSearch ViewState = iota
	ViewPaths
	ViewArchives
	ViewSync
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state    ViewState
	search   *views.SearchModel
	paths    *views.PathsModel
	archives *views.ArchivesModel
	sync     *views.SyncModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(locator ports.SaveLocator, cache ports.HintCache, resolver ports.PathResolver, store ports.ArchiveStore, linker ports.Linker) *App {
	search := views.NewSearchModel(locator)
	if cache != nil {
		if last, err := cache.Setting("last_game"); err == nil && last != "" {
			search.Prefill(last)
		}
	}
	return &App{
		state:    ViewSearch,
		search:   search,
		paths:    views.NewPathsModel(locator, cache, resolver, store),
		archives: views.NewArchivesModel(store),
		sync:     views.NewSyncModel(linker),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.search.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search.SetSize(msg.Width, msg.Height)
		a.paths.SetSize(msg.Width, msg.Height)
		a.archives.SetSize(msg.Width, msg.Height)
		a.sync.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.GameChosenMsg:
		a.state = ViewPaths
		return a, a.paths.SetGame(msg.Game)

	case views.SwitchToArchivesMsg:
		a.state = ViewArchives
		return a, a.archives.SetGame(msg.Game)

	case views.SwitchToSyncMsg:
		a.state = ViewSync
		return a, tea.Batch(a.sync.SetPath(msg.Game, msg.SavePath), a.sync.Init())

	case views.SwitchToPathsMsg:
		// The paths view keeps its resolved state; no reload needed.
		a.state = ViewPaths
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewPaths:
		_, cmd = a.paths.Update(msg)
	case ViewArchives:
		_, cmd = a.archives.Update(msg)
	case ViewSync:
		_, cmd = a.sync.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewPaths:
		return a.paths.View()
	case ViewArchives:
		return a.archives.View()
	case ViewSync:
		return a.sync.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.search.View()
	}
}
