package tui_test

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/tui"
)

type decisions struct {
	liked, passed []domain.MatchID
	err           error
}

func (d *decisions) Like(_ context.Context, id domain.MatchID) error {
	d.liked = append(d.liked, id)
	return d.err
}

func (d *decisions) Pass(_ context.Context, id domain.MatchID) error {
	d.passed = append(d.passed, id)
	return d.err
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func current(t *testing.T, m tea.Model) domain.MatchID {
	t.Helper()
	cur, ok := m.(tui.DeckModel).Current()
	require.True(t, ok)
	return cur.ID
}

func sampleMatches() []domain.Match {
	return []domain.Match{
		{ID: "usr_ben", Score: 92, User: domain.User{ID: "usr_ben", FirstName: "Ben", City: "Lisbon", PaceMinPerKm: 5, Distances: []float64{10, 42.195}}},
		{ID: "usr_dev", Score: 71, User: domain.User{ID: "usr_dev", FirstName: "Dev"}},
		{ID: "usr_chloe", Score: 55, User: domain.User{ID: "usr_chloe", FirstName: "Chloe"}},
	}
}

func TestDeck_Navigation(t *testing.T) {
	var m tea.Model = tui.NewDeckModel(context.Background(), sampleMatches(), &decisions{})
	assert.Equal(t, domain.MatchID("usr_ben"), current(t, m))

	m, _ = press(t, m, "left")
	assert.Equal(t, domain.MatchID("usr_chloe"), current(t, m), "previous wraps to the last card")

	m, _ = press(t, m, "right")
	assert.Equal(t, domain.MatchID("usr_ben"), current(t, m), "next wraps to the first card")

	m, _ = press(t, m, "l", "l")
	assert.Equal(t, domain.MatchID("usr_chloe"), current(t, m))

	m, _ = press(t, m, "2")
	assert.Equal(t, domain.MatchID("usr_dev"), current(t, m))

	m, _ = press(t, m, "9")
	assert.Equal(t, domain.MatchID("usr_dev"), current(t, m))
	assert.Contains(t, m.View(), "no card 9")

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDeck_LikeAndPassShrinkTheDeck(t *testing.T) {
	d := &decisions{}
	var m tea.Model = tui.NewDeckModel(context.Background(), sampleMatches(), d)

	m, _ = press(t, m, "2")
	m, cmd := press(t, m, "y")
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	assert.Equal(t, []domain.MatchID{"usr_dev"}, d.liked)
	assert.Equal(t, domain.MatchID("usr_chloe"), current(t, m), "the next card slides in")
	assert.Contains(t, m.View(), "Liked Dev")

	m, cmd = press(t, m, "x")
	m, _ = m.Update(cmd())
	assert.Equal(t, []domain.MatchID{"usr_chloe"}, d.passed)
	assert.Equal(t, domain.MatchID("usr_ben"), current(t, m), "index clamps to the last card")

	m, cmd = press(t, m, "enter")
	m, _ = m.Update(cmd())
	_, ok := m.(tui.DeckModel).Current()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No more matches")

	m, cmd = press(t, m, "y", "right", "left")
	assert.Nil(t, cmd)
	assert.Len(t, d.liked, 2)
}

func TestDeck_DecisionErrorKeepsCard(t *testing.T) {
	d := &decisions{err: errors.New("backend down")}
	var m tea.Model = tui.NewDeckModel(context.Background(), sampleMatches(), d)

	m, cmd := press(t, m, "y")
	m, _ = m.Update(cmd())
	assert.Equal(t, domain.MatchID("usr_ben"), current(t, m))
	assert.Contains(t, m.View(), "backend down")
}

func TestDeck_View(t *testing.T) {
	m := tui.NewDeckModel(context.Background(), sampleMatches(), nil)
	v := m.View()
	assert.Contains(t, v, "Ben")
	assert.Contains(t, v, "92%")
	assert.Contains(t, v, "5:00 /km")
	assert.Contains(t, v, "10k, 42.195k")
}

func TestFormatPace(t *testing.T) {
	assert.Equal(t, "5:30 /km", tui.FormatPace(5.5))
	assert.Equal(t, "4:24 /km", tui.FormatPace(4.4))
}
