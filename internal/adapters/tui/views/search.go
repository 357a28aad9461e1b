package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pcsm/internal/adapters/tui/styles"
	"pcsm/internal/ports"
)

// SearchKeyMap defines key bindings for the game search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("ctrl+h", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// SearchModel is the model for the game search view
type SearchModel struct {
	ViewState
	locator ports.SaveLocator

	input       textinput.Model
	suggestions []string
	cursor      int
}

// NewSearchModel creates a new game search view model
func NewSearchModel(locator ports.SaveLocator) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Game name..."
	input.Focus()

	return &SearchModel{
		locator: locator,
		input:   input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Prefill seeds the input with a game name, cursor at the end, so the last
// game worked on is one enter away.
func (m *SearchModel) Prefill(game string) {
	m.input.SetValue(game)
	m.input.CursorEnd()
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.suggestions = nil
	m.cursor = 0
	m.ClearMessage()
	m.input.Focus()
}

type suggestionsMsg struct {
	query  string
	titles []string
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionsMsg:
		// Ignore results that raced with further typing
		if msg.query == m.input.Value() {
			m.suggestions = msg.titles
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, SearchKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			game := strings.TrimSpace(m.input.Value())
			if len(m.suggestions) > 0 && m.cursor < len(m.suggestions) {
				game = m.suggestions[m.cursor]
			}
			if game == "" {
				return m, nil
			}
			return m, func() tea.Msg {
				return GameChosenMsg{Game: game}
			}
		}
	}

	// Update input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Trigger suggestions on input change
	query := m.input.Value()
	if len(query) >= 2 {
		return m, tea.Batch(cmd, m.suggest(query))
	}
	m.suggestions = nil
	m.cursor = 0

	return m, cmd
}

func (m *SearchModel) suggest(query string) tea.Cmd {
	return func() tea.Msg {
		titles, err := m.locator.Suggest(context.Background(), query)
		if err != nil {
			return suggestionsMsg{query: query}
		}
		return suggestionsMsg{query: query, titles: titles}
	}
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("pcsm"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Which game's saves are we working on?"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.suggestions) == 0 {
		if len(m.input.Value()) >= 2 {
			b.WriteString(styles.MutedText.Render("No suggestions; enter uses the typed name"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters for suggestions"))
		}
	} else {
		// Show max 10 suggestions
		maxResults := 10
		if len(m.suggestions) < maxResults {
			maxResults = len(m.suggestions)
		}
		for i := 0; i < maxResults; i++ {
			line := m.suggestions[i]
			if i == m.cursor {
				line = styles.RowSelected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if len(m.suggestions) > maxResults {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.suggestions)-maxResults)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("select"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}
