package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"runmate/internal/deck"
	"runmate/internal/domain"
	"runmate/internal/services/matching"
)

// Decider records like/pass decisions.
type Decider interface {
	Like(ctx context.Context, id domain.MatchID) error
	Pass(ctx context.Context, id domain.MatchID) error
}

// cardStrip is the scroll target of the navigator: the card on screen.
type cardStrip struct{ shown int }

func (s *cardStrip) ScrollToIndex(i int) { s.shown = i }

type decidedMsg struct {
	id   domain.MatchID
	name string
	like bool
	err  error
}

// DeckModel is the swipeable match carousel.
type DeckModel struct {
	ctx     context.Context
	matches []domain.Match
	nav     *deck.Navigator
	strip   *cardStrip
	decider Decider
	styles  Styles
	status  string
	err     error
	busy    bool
}

// NewDeckModel shows matches, best first as given.
func NewDeckModel(ctx context.Context, matches []domain.Match, decider Decider) DeckModel {
	strip := &cardStrip{}
	return DeckModel{
		ctx:     ctx,
		matches: matches,
		nav:     deck.New(len(matches), strip),
		strip:   strip,
		decider: decider,
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m DeckModel) Init() tea.Cmd { return nil }

// Current returns the match on screen, if any.
func (m DeckModel) Current() (domain.Match, bool) {
	if m.nav.Empty() {
		return domain.Match{}, false
	}
	return m.matches[m.nav.Index()], true
}

// Update implements tea.Model.
func (m DeckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case decidedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.matches = matching.Remove(m.matches, msg.id)
		m.nav.Resize(len(m.matches))
		verb := "Passed on"
		if msg.like {
			verb = "Liked"
		}
		m.status = verb + " " + msg.name
	}
	return m, nil
}

func (m DeckModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "right", "l", "n", "tab":
		m.nav.Next()
	case "left", "h", "p", "shift+tab":
		m.nav.Previous()
	case "y", "enter":
		return m.decide(true)
	case "x", "backspace":
		return m.decide(false)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 {
			if err := m.nav.Jump(n - 1); err != nil {
				m.status = fmt.Sprintf("no card %d", n)
			}
		}
	}
	return m, nil
}

func (m DeckModel) decide(like bool) (tea.Model, tea.Cmd) {
	cur, ok := m.Current()
	if !ok || m.busy || m.decider == nil {
		return m, nil
	}
	m.busy = true
	ctx, decider := m.ctx, m.decider
	return m, func() tea.Msg {
		var err error
		if like {
			err = decider.Like(ctx, cur.ID)
		} else {
			err = decider.Pass(ctx, cur.ID)
		}
		return decidedMsg{id: cur.ID, name: cur.User.DisplayName(), like: like, err: err}
	}
}

// View implements tea.Model.
func (m DeckModel) View() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("Running partners"))
	b.WriteString("\n")

	if m.nav.Empty() {
		b.WriteString(s.Muted.Render("No more matches. Check back later."))
	} else {
		b.WriteString(m.card(m.matches[m.strip.shown]))
		b.WriteString("\n")
		b.WriteString(m.dots())
	}
	if m.status != "" {
		b.WriteString("\n" + s.Muted.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("\n" + s.Error.Render("error: "+m.err.Error()))
	}
	b.WriteString("\n" + s.Help.Render("←/→ browse · y like · x pass · 1-9 jump · q quit"))
	return b.String()
}

func (m DeckModel) card(match domain.Match) string {
	s := m.styles
	u := match.User
	lines := []string{
		s.Name.Render(u.DisplayName()) + "  " + s.Score.Render(fmt.Sprintf("%.0f%%", match.Score)),
	}
	if place := strings.Trim(u.City+", "+u.Country, ", "); place != "" {
		lines = append(lines, s.Muted.Render(place))
	}
	if u.PaceMinPerKm > 0 {
		lines = append(lines, "Pace "+FormatPace(u.PaceMinPerKm))
	}
	if len(u.Distances) > 0 {
		lines = append(lines, "Runs "+FormatDistances(u.Distances))
	}
	if u.Level != "" {
		lines = append(lines, "Level "+u.Level)
	}
	if u.Bio != "" {
		lines = append(lines, "", u.Bio)
	}
	return s.Card.Render(strings.Join(lines, "\n"))
}

func (m DeckModel) dots() string {
	parts := make([]string, m.nav.Len())
	for i := range parts {
		if i == m.strip.shown {
			parts[i] = m.styles.DotActive.Render("●")
		} else {
			parts[i] = m.styles.Dot.Render("○")
		}
	}
	return strings.Join(parts, " ")
}

// FormatPace renders 5.5 as "5:30 /km".
func FormatPace(minPerKm float64) string {
	total := int(minPerKm*60 + 0.5)
	return fmt.Sprintf("%d:%02d /km", total/60, total%60)
}

// FormatDistances renders 10 and 21.1 as "10k, 21.1k".
func FormatDistances(ds []float64) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = strconv.FormatFloat(d, 'f', -1, 64) + "k"
	}
	return strings.Join(parts, ", ")
}
