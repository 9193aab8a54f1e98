package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"runmate/internal/domain"
	"runmate/internal/services/search"
)

// Searcher is the debounced search backend of the page.
type Searcher interface {
	Query(ctx context.Context, q string)
	Results() <-chan search.Result
}

type resultMsg struct {
	result search.Result
	ok     bool
}

// SearchModel is the live user search page.
type SearchModel struct {
	ctx      context.Context
	searcher Searcher
	input    textinput.Model
	styles   Styles

	last     string
	results  []domain.User
	cursor   int
	err      error
	pending  bool
	selected *domain.User
}

// NewSearchModel returns the search page, optionally pre-filled.
func NewSearchModel(ctx context.Context, s Searcher, initial string) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "name or city"
	ti.Prompt = "search › "
	ti.CharLimit = 64
	ti.SetValue(initial)
	ti.Focus()
	last := strings.TrimSpace(initial)
	return SearchModel{
		ctx:      ctx,
		searcher: s,
		input:    ti,
		styles:   DefaultStyles(),
		last:     last,
		pending:  len([]rune(last)) >= search.MinQueryLen,
	}
}

// Init starts the cursor blink, fires the initial query and waits for results.
func (m SearchModel) Init() tea.Cmd {
	if m.last != "" {
		m.searcher.Query(m.ctx, m.last)
	}
	return tea.Batch(textinput.Blink, m.WaitCmd())
}

// WaitCmd waits for the next search result.
func (m SearchModel) WaitCmd() tea.Cmd {
	ch := m.searcher.Results()
	return func() tea.Msg {
		r, ok := <-ch
		return resultMsg{result: r, ok: ok}
	}
}

// Selected returns the user picked with enter, if any.
func (m SearchModel) Selected() (domain.User, bool) {
	if m.selected == nil {
		return domain.User{}, false
	}
	return *m.selected, true
}

// Update implements tea.Model.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		if !msg.ok {
			return m, nil
		}
		m.pending = false
		m.results, m.err = msg.result.Users, msg.result.Err
		m.cursor = 0
		return m, m.WaitCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.results) > 0 {
				u := m.results[m.cursor]
				m.selected = &u
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := strings.TrimSpace(m.input.Value()); v != m.last {
		m.last = v
		m.pending = len([]rune(v)) >= search.MinQueryLen
		m.searcher.Query(m.ctx, v)
	}
	return m, cmd
}

// View implements tea.Model.
func (m SearchModel) View() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Find runners"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(s.Error.Render("error: " + m.err.Error()))
	case m.pending:
		b.WriteString(s.Muted.Render("searching…"))
	case len([]rune(m.last)) < search.MinQueryLen:
		b.WriteString(s.Muted.Render(fmt.Sprintf("type at least %d characters", search.MinQueryLen)))
	case len(m.results) == 0:
		b.WriteString(s.Muted.Render("no runners found"))
	default:
		for i, u := range m.results {
			line := fmt.Sprintf("%s  %s", u.DisplayName(), s.Muted.Render(u.City))
			if i == m.cursor {
				line = s.Selected.Render("› ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\n" + s.Help.Render("↑/↓ move · enter pick · esc quit"))
	return b.String()
}
