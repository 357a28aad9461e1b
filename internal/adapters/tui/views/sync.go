package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/adapters/tui/styles"
	"pcsm/internal/application/commands"
	"pcsm/internal/ports"
)

// SyncKeyMap defines key bindings for the cloud-sync view
type SyncKeyMap struct {
	Link     key.Binding
	Unlink   key.Binding
	CopyBack key.Binding
	Back     key.Binding
}

var SyncKeys = SyncKeyMap{
	Link: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "link"),
	),
	Unlink: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "unlink"),
	),
	CopyBack: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "unlink, copy back"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// SyncModel links a save folder into a cloud-synced directory, shows the
// current link state and tears links down again.
type SyncModel struct {
	ViewState
	linker ports.Linker

	game     string
	savePath string
	input    textinput.Model

	target string
	linked bool
	busy   bool
}

// NewSyncModel creates a new cloud-sync view model
func NewSyncModel(linker ports.Linker) *SyncModel {
	input := textinput.New()
	input.Placeholder = "synced folder to link into"
	input.CharLimit = 512
	input.Width = 60
	return &SyncModel{linker: linker, input: input}
}

// SetPath switches the view to a save folder and loads its link state
func (m *SyncModel) SetPath(game, savePath string) tea.Cmd {
	m.game = game
	m.savePath = savePath
	m.target = ""
	m.linked = false
	m.busy = true
	m.input.SetValue("")
	m.input.Focus()
	m.ClearMessage()
	return m.loadStatus()
}

// Init initializes the sync view
func (m *SyncModel) Init() tea.Cmd {
	return textinput.Blink
}

type linkStatusMsg struct {
	result *commands.LinkStatusResult
	err    error
}

type linkDoneMsg struct {
	message string
	err     error
}

func (m *SyncModel) loadStatus() tea.Cmd {
	savePath := m.savePath
	return func() tea.Msg {
		result, err := commands.NewLinkStatusCommand(m.linker, savePath).Execute(context.Background())
		return linkStatusMsg{result: result, err: err}
	}
}

func (m *SyncModel) link(target string) tea.Cmd {
	savePath := m.savePath
	return func() tea.Msg {
		result, err := commands.NewLinkCommand(m.linker, savePath, target).Execute(context.Background())
		if err != nil {
			return linkDoneMsg{err: err}
		}
		return linkDoneMsg{message: result.Message}
	}
}

func (m *SyncModel) unlink(copyBack bool) tea.Cmd {
	savePath := m.savePath
	return func() tea.Msg {
		result, err := commands.NewUnlinkCommand(m.linker, savePath, copyBack).Execute(context.Background())
		if err != nil {
			return linkDoneMsg{err: err}
		}
		return linkDoneMsg{message: result.Message}
	}
}

// Update handles messages for the sync view
func (m *SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case linkStatusMsg:
		m.busy = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.target = msg.result.Target
		m.linked = msg.result.Linked
		return m, nil

	case linkDoneMsg:
		if msg.err != nil {
			m.busy = false
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.SetMessage(msg.message, false)
		// Re-read the link state so the view reflects what is on disk.
		return m, m.loadStatus()

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, SyncKeys.Back):
			return m, func() tea.Msg { return SwitchToPathsMsg{} }

		case key.Matches(msg, SyncKeys.Link):
			if m.linked {
				m.SetMessage("Already linked to "+m.target, true)
				return m, nil
			}
			target := strings.TrimSpace(m.input.Value())
			if target == "" {
				m.SetMessage("Enter a synced folder to link into", true)
				return m, nil
			}
			m.busy = true
			m.SetMessage("Linking...", false)
			return m, m.link(target)

		case key.Matches(msg, SyncKeys.Unlink):
			m.busy = true
			m.SetMessage("Unlinking...", false)
			return m, m.unlink(false)

		case key.Matches(msg, SyncKeys.CopyBack):
			m.busy = true
			m.SetMessage("Unlinking and copying content back...", false)
			return m, m.unlink(true)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the sync view
func (m *SyncModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Cloud sync: " + m.game))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.savePath))
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(styles.MutedText.Render("Working..."))
		b.WriteString("\n")
	case m.linked:
		b.WriteString(styles.Success.Render("Linked to " + m.target))
		b.WriteString("\n")
	default:
		b.WriteString(styles.MutedText.Render("Not linked"))
		b.WriteString("\n\n")
		b.WriteString(styles.InputLabel.Render("Sync target"))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.linked {
		b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
			styles.HelpKey.Render("ctrl+u"),
			styles.HelpDesc.Render("unlink"),
			styles.HelpKey.Render("ctrl+b"),
			styles.HelpDesc.Render("unlink, copy back"),
			styles.HelpKey.Render("esc"),
			styles.HelpDesc.Render("back"),
		))
	} else {
		b.WriteString(fmt.Sprintf("%s %s  %s %s",
			styles.HelpKey.Render("enter"),
			styles.HelpDesc.Render("link"),
			styles.HelpKey.Render("esc"),
			styles.HelpDesc.Render("back"),
		))
	}

	return styles.App.Render(b.String())
}
