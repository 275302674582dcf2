// Package tui provides an interactive terminal UI for searching a corpus.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/pagesearch"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model is the Bubble Tea model for interactive search.
type Model struct {
	corpus   []*pagesearch.Section
	searcher pagesearch.Searcher
	title    string

	input    textinput.Model
	viewport viewport.Model

	result    *pagesearch.SearchResult
	cursor    int
	ready     bool
	status    string
	lastQuery string
}

// New creates a model searching the given corpus.
func New(corpus []*pagesearch.Section, searcher pagesearch.Searcher, title string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a query and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		corpus:   corpus,
		searcher: searcher,
		title:    title,
		input:    ti,
		viewport: vp,
		status:   fmt.Sprintf("%d sections loaded. Type to search.", len(corpus)),
	}
}

// Run starts the interactive search UI and blocks until the user quits.
func Run(corpus []*pagesearch.Section, searcher pagesearch.Searcher, title string) error {
	_, err := tea.NewProgram(New(corpus, searcher, title), tea.WithAltScreen()).Run()
	return err
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, query box, spacer
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentMatch())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			m = m.search(m.input.Value())
			m.viewport.SetContent(m.renderCurrentMatch())
			return m, nil
		case "down":
			if m.matchCount() > 0 {
				m.cursor = (m.cursor + 1) % m.matchCount()
				m.viewport.SetContent(m.renderCurrentMatch())
				return m, nil
			}
		case "up":
			if m.matchCount() > 0 {
				m.cursor = (m.cursor - 1 + m.matchCount()) % m.matchCount()
				m.viewport.SetContent(m.renderCurrentMatch())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// search runs the query and updates the status line for each outcome.
func (m Model) search(query string) Model {
	m.result = m.searcher.Search(m.corpus, query)
	m.cursor = 0
	m.lastQuery = query

	switch m.result.Status {
	case pagesearch.StatusEmptyQuery:
		m.status = "Type a query and press Enter."
	case pagesearch.StatusNoMatches:
		m.status = fmt.Sprintf("No matches for %q.", strings.TrimSpace(query))
	default:
		m.status = fmt.Sprintf("Results for %q: %d", strings.TrimSpace(query), m.matchCount())
	}
	return m
}

func (m Model) matchCount() int {
	if m.result == nil {
		return 0
	}
	return len(m.result.Matches)
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render(m.title)
	summary := summaryStyle.Render(fmt.Sprintf("%d sections · enter: search · ↑/↓: matches · esc: quit", len(m.corpus)))
	results := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

// renderCurrentMatch renders the match under the cursor.
func (m Model) renderCurrentMatch() string {
	if m.matchCount() == 0 {
		return "No matches yet."
	}
	match := m.result.Matches[m.cursor]
	title := match.Section.Title
	if title == "" {
		title = match.Section.Anchor
	}
	head := fmt.Sprintf("Match %d/%d  %s", m.cursor+1, m.matchCount(), titleStyle.Render(title))
	return head + "\n\n" + RenderSnippet(match.Snippet)
}
