package listfilter

import (
	"slices"
	"sort"
	"strings"
	"time"
)

// Item is anything the pipeline can filter: races and events.
type Item interface {
	FilterLocation() string
	FilterDistances() []float64
	FilterDate() string
}

// Criteria are the UI-selected filter values.
type Criteria struct {
	Location   string   // free-text substring of the location
	Country    string   // exact country, as produced by CountryOf
	Distance   *float64 // required member of the item's distances
	FutureOnly bool     // drop items dated before today
}

// IsZero reports whether no filter is selected.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Location) == "" &&
		strings.TrimSpace(c.Country) == "" &&
		c.Distance == nil &&
		!c.FutureOnly
}

// Apply filters items by c and sorts the result by start date.
func Apply[T Item](items []T, c Criteria, now time.Time) []T {
	out := Filter(items, c, now)
	SortByDate(out, now.Location())
	return out
}

// Filter returns a new slice holding the items that satisfy every selected
// predicate, in input order.
func Filter[T Item](items []T, c Criteria, now time.Time) []T {
	out := make([]T, 0, len(items))
	if c.IsZero() {
		return append(out, items...)
	}

	loc := strings.ToLower(strings.TrimSpace(c.Location))
	country := strings.TrimSpace(c.Country)
	today := midnight(now)

	for _, it := range items {
		if loc != "" && !strings.Contains(strings.ToLower(it.FilterLocation()), loc) {
			continue
		}
		if country != "" && !strings.EqualFold(CountryOf(it.FilterLocation()), country) {
			continue
		}
		if c.Distance != nil && !hasDistance(it.FilterDistances(), *c.Distance) {
			continue
		}
		if c.FutureOnly {
			d, ok := ParseDate(it.FilterDate(), now.Location())
			if !ok || midnight(d.In(today.Location())).Before(today) {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// SortByDate orders items by start date, ascending, in place. Date-only
// values are read in loc, as Filter reads them. Items whose date cannot be
// parsed go last, keeping their relative order.
func SortByDate[T Item](items []T, loc *time.Location) {
	keys := make([]dateKey, len(items))
	order := make([]int, len(items))
	for i, it := range items {
		t, ok := ParseDate(it.FilterDate(), loc)
		keys[i] = dateKey{t: t, ok: ok}
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]].less(keys[order[b]])
	})
	sorted := make([]T, len(items))
	for i, j := range order {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

type dateKey struct {
	t  time.Time
	ok bool
}

// less puts dated keys first, ascending.
func (k dateKey) less(o dateKey) bool {
	if k.ok != o.ok {
		return k.ok
	}
	return k.ok && k.t.Before(o.t)
}

// CountryOf derives the country token from a free-form location such as
// "Berlin (Germany)" or "Lyon, France". Locations that match neither form
// yield the whole trimmed string.
func CountryOf(location string) string {
	loc := strings.TrimSpace(location)
	var token string
	switch {
	case strings.Contains(loc, "("):
		token = loc[strings.LastIndex(loc, "(")+1:]
		token = strings.ReplaceAll(token, ")", "")
	case strings.Contains(loc, ","):
		token = loc[strings.LastIndex(loc, ",")+1:]
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return loc
	}
	return token
}

// Countries lists the distinct countries present in items, sorted, for the
// country picker.
func Countries[T Item](items []T) []string {
	seen := make(map[string]string)
	for _, it := range items {
		c := CountryOf(it.FilterLocation())
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, ok := seen[key]; !ok {
			seen[key] = c
		}
	}
	out := make([]string, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// DistanceOptions lists the distinct distances present in items, ascending.
func DistanceOptions[T Item](items []T) []float64 {
	var out []float64
	for _, it := range items {
		for _, d := range it.FilterDistances() {
			if !hasDistance(out, d) {
				out = append(out, d)
			}
		}
	}
	slices.Sort(out)
	return out
}

// distanceEpsilon absorbs float noise in values such as 21.0975.
const distanceEpsilon = 1e-9

func hasDistance(ds []float64, want float64) bool {
	for _, d := range ds {
		if d-want < distanceEpsilon && want-d < distanceEpsilon {
			return true
		}
	}
	return false
}
