package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("pcsm Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("PC game save backup manager"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Game search"))
	b.WriteString("\n")
	b.WriteString(helpLine("type", "Suggest matching games"))
	b.WriteString(helpLine("↑ / ↓", "Move through suggestions"))
	b.WriteString(helpLine("Enter", "Pick game (or use typed name)"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Save locations"))
	b.WriteString("\n")
	b.WriteString(helpLine("b", "Back up all listed locations"))
	b.WriteString(helpLine("a", "Show this game's backups"))
	b.WriteString(helpLine("s", "Cloud sync for the selected folder"))
	b.WriteString(helpLine("c", "Copy selected path to clipboard"))
	b.WriteString(helpLine("r", "Re-query the wiki, ignoring cache"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Backups"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter", "Restore selected backup"))
	b.WriteString(helpLine("y / n", "Overwrite all existing files, or cancel"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Cloud sync"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter", "Link save folder into typed target"))
	b.WriteString(helpLine("Ctrl+U", "Remove the link"))
	b.WriteString(helpLine("Ctrl+B", "Remove the link, copy content back"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("Ctrl+H", "Toggle help"))
	b.WriteString(helpLine("esc / Ctrl+C", "Back / quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
