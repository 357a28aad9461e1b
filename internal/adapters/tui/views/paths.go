package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/adapters/tui/styles"
	"pcsm/internal/application/commands"
	"pcsm/internal/domain"
	"pcsm/internal/ports"
)

// PathsKeyMap defines key bindings for the resolved-paths view
type PathsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding
	Backup   key.Binding
	Refresh  key.Binding
	Archives key.Binding
	Sync     key.Binding
	Back     key.Binding
}

var PathsKeys = PathsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy path"),
	),
	Backup: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "backup"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Archives: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "backups"),
	),
	Sync: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cloud sync"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// PathsModel shows a game's resolved save locations and runs backups
type PathsModel struct {
	ViewState
	locator  ports.SaveLocator
	cache    ports.HintCache
	resolver ports.PathResolver
	store    ports.ArchiveStore

	game      string
	paths     []domain.ResolvedPath
	cursor    int
	resolving bool
	backingUp bool
}

// NewPathsModel creates a new resolved-paths view model
func NewPathsModel(locator ports.SaveLocator, cache ports.HintCache, resolver ports.PathResolver, store ports.ArchiveStore) *PathsModel {
	return &PathsModel{
		locator:  locator,
		cache:    cache,
		resolver: resolver,
		store:    store,
	}
}

// SetGame switches the view to a new game and starts resolving
func (m *PathsModel) SetGame(game string) tea.Cmd {
	m.game = game
	m.paths = nil
	m.cursor = 0
	m.resolving = true
	m.ClearMessage()
	return m.resolve(false)
}

// Init initializes the paths view
func (m *PathsModel) Init() tea.Cmd {
	return nil
}

type resolveDoneMsg struct {
	result *commands.ResolveResult
	err    error
}

type backupDoneMsg struct {
	result *commands.BackupResult
	err    error
}

func (m *PathsModel) resolve(refresh bool) tea.Cmd {
	game := m.game
	return func() tea.Msg {
		cmd := commands.NewResolveCommand(m.locator, m.cache, m.resolver, game, refresh)
		result, err := cmd.Execute(context.Background())
		return resolveDoneMsg{result: result, err: err}
	}
}

func (m *PathsModel) backup() tea.Cmd {
	game, paths := m.game, m.paths
	return func() tea.Msg {
		cmd := commands.NewBackupCommand(m.store, game, paths)
		result, err := cmd.Execute(context.Background())
		return backupDoneMsg{result: result, err: err}
	}
}

// Update handles messages for the paths view
func (m *PathsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveDoneMsg:
		m.resolving = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.paths = msg.result.Paths
		m.cursor = 0
		m.SetMessage(msg.result.Message, false)
		return m, nil

	case backupDoneMsg:
		m.backingUp = false
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		if m.cache != nil {
			_ = m.cache.PutSetting("last_game", m.game)
		}
		m.SetMessage(msg.result.Message, false)
		return m, nil

	case tea.KeyMsg:
		if m.resolving || m.backingUp {
			return m, nil
		}
		switch {
		case key.Matches(msg, PathsKeys.Back):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }

		case key.Matches(msg, PathsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, PathsKeys.Down):
			if m.cursor < len(m.paths)-1 {
				m.cursor++
			}

		case key.Matches(msg, PathsKeys.Copy):
			if m.cursor < len(m.paths) {
				if err := clipboard.WriteAll(m.paths[m.cursor].Path); err != nil {
					m.SetMessage("clipboard unavailable: "+err.Error(), true)
				} else {
					m.SetMessage("Copied "+m.paths[m.cursor].Path, false)
				}
			}

		case key.Matches(msg, PathsKeys.Backup):
			if len(m.paths) == 0 {
				m.SetMessage("Nothing to back up", true)
				return m, nil
			}
			m.backingUp = true
			m.SetMessage("Backing up...", false)
			return m, m.backup()

		case key.Matches(msg, PathsKeys.Refresh):
			m.resolving = true
			m.SetMessage("Refreshing...", false)
			return m, m.resolve(true)

		case key.Matches(msg, PathsKeys.Archives):
			game := m.game
			return m, func() tea.Msg { return SwitchToArchivesMsg{Game: game} }

		case key.Matches(msg, PathsKeys.Sync):
			if m.cursor >= len(m.paths) {
				return m, nil
			}
			selected := m.paths[m.cursor]
			if !selected.IsDir() {
				m.SetMessage("Only save folders can be linked", true)
				return m, nil
			}
			game, savePath := m.game, selected.Path
			return m, func() tea.Msg { return SwitchToSyncMsg{Game: game, SavePath: savePath} }
		}
	}
	return m, nil
}

// View renders the paths view
func (m *PathsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.game))
	b.WriteString("\n")

	switch {
	case m.resolving:
		b.WriteString(styles.MutedText.Render("Looking up save locations..."))
	case len(m.paths) == 0:
		b.WriteString(styles.MutedText.Render("No existing save locations on this machine"))
	default:
		for i, p := range m.paths {
			line := fmt.Sprintf("%-4s %s", p.Kind, p.Path)
			switch {
			case i == m.cursor:
				line = styles.RowSelected.Render(line)
			case p.IsDir():
				line = styles.RowDir.Render(line)
			default:
				line = styles.RowFile.Render(line)
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
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("b"),
		styles.HelpDesc.Render("backup"),
		styles.HelpKey.Render("a"),
		styles.HelpDesc.Render("backups"),
		styles.HelpKey.Render("s"),
		styles.HelpDesc.Render("sync"),
		styles.HelpKey.Render("c"),
		styles.HelpDesc.Render("copy"),
		styles.HelpKey.Render("r"),
		styles.HelpDesc.Render("refresh"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
	))

	return styles.App.Render(b.String())
}
