package commands

import (
	"math"
	"strconv"
	"strings"

	"runmate/internal/domain"
)

// parsePace accepts "5:30" or "5.5" (minutes per km).
func parsePace(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "/km"))
	if m, sec, ok := strings.Cut(s, ":"); ok {
		mins, err1 := strconv.Atoi(m)
		secs, err2 := strconv.Atoi(sec)
		if err1 != nil || err2 != nil || secs < 0 || secs >= 60 {
			return 0, domain.Invalid("pace", "use m:ss or decimal minutes")
		}
		return float64(mins) + float64(secs)/60, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.Invalid("pace", "use m:ss or decimal minutes")
	}
	return v, nil
}

// parseDistances accepts "5, 10, 21.1k".
func parseDistances(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.ToLower(f), "k"), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, domain.Invalid("distances", "not a number: "+f)
		}
		out = append(out, v)
	}
	return out, nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func formatFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
