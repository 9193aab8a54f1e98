package tui_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/services/search"
	"runmate/internal/tui"
)

type fakeSearcher struct {
	queries []string
	out     chan search.Result
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{out: make(chan search.Result, 1)}
}

func (f *fakeSearcher) Query(_ context.Context, q string) { f.queries = append(f.queries, q) }

func (f *fakeSearcher) Results() <-chan search.Result { return f.out }

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSearch_QueriesOnEveryChange(t *testing.T) {
	f := newFakeSearcher()
	var m tea.Model = tui.NewSearchModel(context.Background(), f, "")
	m.Init()
	assert.Empty(t, f.queries)
	assert.Contains(t, m.View(), "type at least 2 characters")

	m = typeText(m, "ben")
	assert.Equal(t, []string{"b", "be", "ben"}, f.queries)
	assert.Contains(t, m.View(), "searching")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Len(t, f.queries, 3, "cursor moves do not search")

	f.out <- search.Result{Query: "ben", Users: []domain.User{
		{ID: "usr_ben", FirstName: "Ben", LastName: "Okafor", City: "Lisbon"},
		{ID: "usr_benny", FirstName: "Benny", City: "Porto"},
	}}
	m, next := m.Update(waitFor(t, m))
	require.NotNil(t, next, "the page keeps listening for results")
	v := m.View()
	assert.Contains(t, v, "Ben Okafor")
	assert.Contains(t, v, "Porto")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	picked, ok := m.(tui.SearchModel).Selected()
	require.True(t, ok)
	assert.Equal(t, domain.UserID("usr_benny"), picked.ID)
}

func TestSearch_InitialQueryAndErrors(t *testing.T) {
	f := newFakeSearcher()
	var m tea.Model = tui.NewSearchModel(context.Background(), f, " lisbon ")
	m.Init()
	assert.Equal(t, []string{"lisbon"}, f.queries)

	f.out <- search.Result{Query: "lisbon", Err: domain.ErrNetwork}
	m, _ = m.Update(waitFor(t, m))
	assert.Contains(t, m.View(), "network failure")

	f.out <- search.Result{Query: "lisbon"}
	m, _ = m.Update(waitFor(t, m))
	assert.Contains(t, m.View(), "no runners found")

	close(f.out)
	m, cmd := m.Update(waitFor(t, m))
	assert.Nil(t, cmd)
	_, ok := m.(tui.SearchModel).Selected()
	assert.False(t, ok)
}

// waitFor runs the page's result listener once.
func waitFor(t *testing.T, m tea.Model) tea.Msg {
	t.Helper()
	cmd := m.(tui.SearchModel).WaitCmd()
	require.NotNil(t, cmd)
	return cmd()
}
