package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/adapters/tui/styles"
	"pcsm/internal/application/commands"
	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// ArchivesKeyMap defines key bindings for the backup list view
type ArchivesKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Restore key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Back    key.Binding
}

var ArchivesKeys = ArchivesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Restore: key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("enter", "restore"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "overwrite all"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// ArchivesModel lists a game's backups and restores them
type ArchivesModel struct {
	ViewState
	store ports.ArchiveStore

	game      string
	archives  []domain.Archive
	cursor    int
	loading   bool
	restoring bool

	// Set while an overwrite confirmation is pending; covers every conflict
	// of the selected archive at once.
	conflicts      []string
	pendingArchive string
}

// NewArchivesModel creates a new backup list view model
func NewArchivesModel(store ports.ArchiveStore) *ArchivesModel {
	return &ArchivesModel{store: store}
}

// SetGame switches the view to a new game and loads its backups
func (m *ArchivesModel) SetGame(game string) tea.Cmd {
	m.game = game
	m.archives = nil
	m.cursor = 0
	m.loading = true
	m.conflicts = nil
	m.pendingArchive = ""
	m.ClearMessage()
	return m.load()
}

// Init initializes the archives view
func (m *ArchivesModel) Init() tea.Cmd {
	return nil
}

type archivesLoadedMsg struct {
	archives []domain.Archive
	err      error
}

type restoreDoneMsg struct {
	result *commands.RestoreResult
	err    error
}

func (m *ArchivesModel) load() tea.Cmd {
	game := m.game
	return func() tea.Msg {
		result, err := commands.NewListArchivesCommand(m.store, game).Execute(context.Background())
		if err != nil {
			return archivesLoadedMsg{err: err}
		}
		return archivesLoadedMsg{archives: result.Archives}
	}
}

func (m *ArchivesModel) restore(archivePath string, overwrite bool) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewRestoreCommand(m.store, archivePath, overwrite).Execute(context.Background())
		return restoreDoneMsg{result: result, err: err}
	}
}

// Update handles messages for the archives view
func (m *ArchivesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case archivesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.archives = msg.archives
		// Newest first reads better in a picker
		for i, j := 0, len(m.archives)-1; i < j; i, j = i+1, j-1 {
			m.archives[i], m.archives[j] = m.archives[j], m.archives[i]
		}
		return m, nil

	case restoreDoneMsg:
		m.restoring = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		if msg.result.Report.NeedsConfirmation() {
			m.conflicts = msg.result.Report.Conflicts
			return m, nil
		}
		m.conflicts = nil
		m.pendingArchive = ""
		m.SetMessage(msg.result.Message, len(msg.result.Report.Failed) > 0)
		return m, nil

	case tea.KeyMsg:
		if m.loading || m.restoring {
			return m, nil
		}

		if len(m.conflicts) > 0 {
			switch {
			case key.Matches(msg, ArchivesKeys.Confirm):
				m.restoring = true
				archive := m.pendingArchive
				m.conflicts = nil
				return m, m.restore(archive, true)
			case key.Matches(msg, ArchivesKeys.Cancel):
				m.conflicts = nil
				m.pendingArchive = ""
				m.SetMessage("Restore cancelled; nothing was written", false)
				return m, nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, ArchivesKeys.Back):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }

		case key.Matches(msg, ArchivesKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, ArchivesKeys.Down):
			if m.cursor < len(m.archives)-1 {
				m.cursor++
			}

		case key.Matches(msg, ArchivesKeys.Restore):
			if m.cursor < len(m.archives) {
				m.restoring = true
				m.pendingArchive = m.archives[m.cursor].Path
				m.SetMessage("Restoring...", false)
				return m, m.restore(m.pendingArchive, false)
			}
		}
	}
	return m, nil
}

// View renders the archives view
func (m *ArchivesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Backups: " + m.game))
	b.WriteString("\n")

	if len(m.conflicts) > 0 {
		return m.viewConfirmation()
	}

	switch {
	case m.loading:
		b.WriteString(styles.MutedText.Render("Loading backups..."))
	case len(m.archives) == 0:
		b.WriteString(styles.MutedText.Render("No backups yet"))
	default:
		for i, a := range m.archives {
			line := fmt.Sprintf("%s  %s", a.CreatedAt.Format("2006-01-02 15:04:05"), a.Name)
			if i == m.cursor {
				line = styles.RowSelected.Render(line)
			} else {
				line = styles.RowArchive.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
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
	b.WriteString(fmt.Sprintf("%s %s  %s %s",
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("restore"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
	))

	return styles.App.Render(b.String())
}

func (m *ArchivesModel) viewConfirmation() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Backups: " + m.game))
	b.WriteString("\n")
	b.WriteString(styles.WarningMsg.Render(fmt.Sprintf("%d file(s) already exist:", len(m.conflicts))))
	b.WriteString("\n")
	for _, c := range m.conflicts {
		b.WriteString("  " + c + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Overwrite all of them? ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to overwrite, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	return styles.App.Render(b.String())
}
