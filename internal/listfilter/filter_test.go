package listfilter_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/listfilter"
)

var now = time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC)

func ptr(f float64) *float64 { return &f }

func ids(races []domain.Race) []domain.RaceID {
	out := make([]domain.RaceID, len(races))
	for i, r := range races {
		out[i] = r.ID
	}
	return out
}

func TestApply_NoFilters_SortsByDate(t *testing.T) {
	races := []domain.Race{
		{ID: "a", StartDate: "2025-01-10"},
		{ID: "b", StartDate: "2025-01-05"},
		{ID: "c", StartDate: "2025-01-20"},
	}

	got := listfilter.Apply(races, listfilter.Criteria{}, now)

	if diff := cmp.Diff([]domain.RaceID{"b", "a", "c"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	// Input untouched.
	assert.Equal(t, domain.RaceID("a"), races[0].ID)
}

func TestFilter_Distance(t *testing.T) {
	races := []domain.Race{
		{ID: "1", Distances: []float64{5, 10}},
		{ID: "2", Distances: []float64{21.1}},
		{ID: "3", Distances: []float64{10}},
	}

	got := listfilter.Filter(races, listfilter.Criteria{Distance: ptr(10)}, now)

	assert.Equal(t, []domain.RaceID{"1", "3"}, ids(got))
}

func TestFilter_Predicates(t *testing.T) {
	races := []domain.Race{
		{ID: "paris", Location: "Paris, France", StartDate: "2025-04-06", Distances: []float64{42.195}},
		{ID: "berlin", Location: "Berlin (Germany)", StartDate: "2025-09-21", Distances: []float64{42.195}},
		{ID: "lyon", Location: "Lyon, France", StartDate: "2024-10-20", Distances: []float64{10, 21.1}},
		{ID: "today", Location: "Nice, France", StartDate: "2025-01-08T06:00:00Z", Distances: []float64{10}},
		{ID: "nodate", Location: "Nowhere", StartDate: "soon"},
	}

	tests := []struct {
		name string
		c    listfilter.Criteria
		want []domain.RaceID
	}{
		{name: "location substring ignores case", c: listfilter.Criteria{Location: "fRaNcE"}, want: []domain.RaceID{"paris", "lyon", "today"}},
		{name: "country from comma", c: listfilter.Criteria{Country: "france"}, want: []domain.RaceID{"paris", "lyon", "today"}},
		{name: "country from parenthesis", c: listfilter.Criteria{Country: "Germany"}, want: []domain.RaceID{"berlin"}},
		{name: "country fallback to whole string", c: listfilter.Criteria{Country: "nowhere"}, want: []domain.RaceID{"nodate"}},
		{name: "future keeps today, drops past and undated", c: listfilter.Criteria{FutureOnly: true}, want: []domain.RaceID{"paris", "berlin", "today"}},
		{name: "combined", c: listfilter.Criteria{Country: "France", Distance: ptr(10), FutureOnly: true}, want: []domain.RaceID{"today"}},
		{name: "no match", c: listfilter.Criteria{Location: "tokyo"}, want: []domain.RaceID{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listfilter.Filter(races, tt.c, now)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortByDate_UnparseableLast(t *testing.T) {
	events := []domain.Event{
		{ID: "x", StartDate: ""},
		{ID: "b", StartDate: "2025-02-01T10:00:00Z"},
		{ID: "y", StartDate: "tbd"},
		{ID: "a", StartDate: "15/01/2025"},
	}
	listfilter.SortByDate(events, time.UTC)

	got := make([]domain.EventID, len(events))
	for i, e := range events {
		got[i] = e.ID
	}
	assert.Equal(t, []domain.EventID{"a", "b", "x", "y"}, got)
}

func TestApply_DateOnlyUsesLocalMidnight(t *testing.T) {
	sydney := time.FixedZone("AEST", 10*60*60)
	localNow := time.Date(2025, 1, 9, 10, 0, 0, 0, sydney)
	races := []domain.Race{
		// 2025-01-09T20:00Z is 06:00 on the 10th in Sydney.
		{ID: "evening-utc", StartDate: "2025-01-09T20:00:00Z"},
		// Midnight on the 10th in Sydney is 14:00Z on the 9th.
		{ID: "date-only", StartDate: "2025-01-10"},
	}

	got := listfilter.Apply(races, listfilter.Criteria{FutureOnly: true}, localNow)
	assert.Equal(t, []domain.RaceID{"date-only", "evening-utc"}, ids(got))

	utc := slices.Clone(races)
	listfilter.SortByDate(utc, time.UTC)
	assert.Equal(t, []domain.RaceID{"evening-utc", "date-only"}, ids(utc))
}

func TestCountryOf(t *testing.T) {
	cases := map[string]string{
		"Berlin (Germany)":    "Germany",
		"Lyon, France":        "France",
		"New York, NY, USA":   "USA",
		"Valencia (Spain":     "Spain",
		"Marrakech":           "Marrakech",
		"  Oslo  ":            "Oslo",
		"Trailing comma,":     "Trailing comma,",
		"Empty parens ()":     "Empty parens ()",
		"Rome (Lazio), Italy": "Lazio, Italy",
		"":                    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, listfilter.CountryOf(in), "CountryOf(%q)", in)
	}
}

func TestOptions(t *testing.T) {
	races := []domain.Race{
		{Location: "Paris, France", Distances: []float64{42.195, 10}},
		{Location: "Lyon, france", Distances: []float64{10, 5}},
		{Location: "Berlin (Germany)"},
	}
	assert.Equal(t, []string{"France", "Germany"}, listfilter.Countries(races))
	assert.Equal(t, []float64{5, 10, 42.195}, listfilter.DistanceOptions(races))
}

func randomRaces(r *rand.Rand, n int) []domain.Race {
	locations := []string{"Paris, France", "Berlin (Germany)", "Madrid, Spain", "Porto", "Lyon, France"}
	distances := []float64{5, 10, 21.1, 42.195}
	out := make([]domain.Race, n)
	for i := range out {
		d := now.AddDate(0, 0, r.Intn(60)-30)
		date := d.Format("2006-01-02")
		if r.Intn(10) == 0 {
			date = "tbd"
		}
		var ds []float64
		for _, v := range distances {
			if r.Intn(2) == 0 {
				ds = append(ds, v)
			}
		}
		out[i] = domain.Race{
			ID:        domain.RaceID(fmt.Sprintf("r%d", i)),
			Location:  locations[r.Intn(len(locations))],
			StartDate: date,
			Distances: ds,
		}
	}
	return out
}

func randomCriteria(r *rand.Rand) listfilter.Criteria {
	var c listfilter.Criteria
	if r.Intn(2) == 0 {
		c.Location = []string{"par", "FRANCE", "o"}[r.Intn(3)]
	}
	if r.Intn(2) == 0 {
		c.Country = []string{"France", "germany", "Porto"}[r.Intn(3)]
	}
	if r.Intn(2) == 0 {
		c.Distance = ptr([]float64{5, 10, 42.195}[r.Intn(3)])
	}
	c.FutureOnly = r.Intn(2) == 0
	return c
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		races := randomRaces(r, r.Intn(40))
		c := randomCriteria(r)

		// Identity on empty filters.
		require.Equal(t, ids(races), ids(listfilter.Filter(races, listfilter.Criteria{}, now)))

		got := listfilter.Apply(races, c, now)

		// Subset of the input.
		in := make(map[domain.RaceID]bool, len(races))
		for _, rc := range races {
			in[rc.ID] = true
		}
		for _, rc := range got {
			require.True(t, in[rc.ID], "%s not in input", rc.ID)
		}

		// Non-decreasing by date, undated last.
		seenUndated := false
		var prev time.Time
		for _, rc := range got {
			d, ok := listfilter.ParseDate(rc.StartDate, time.UTC)
			if !ok {
				seenUndated = true
				continue
			}
			require.False(t, seenUndated, "dated item after undated one")
			require.False(t, d.Before(prev), "output not sorted")
			prev = d
		}

		// Idempotent.
		require.Equal(t, ids(got), ids(listfilter.Apply(got, c, now)))
	}
}
