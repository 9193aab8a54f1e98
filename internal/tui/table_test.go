package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"runmate/internal/tui"
)

func TestTable(t *testing.T) {
	tb := tui.NewTable("ID", "NAME", "DATE")
	tb.AddRow("race_berlin", "Berlin Marathon", "2026-09-27")
	tb.AddRow("r2", "Lyon")
	assert.Equal(t, 2, tb.Len())

	lines := strings.Split(strings.TrimRight(tb.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "race_berlin  Berlin Marathon  2026-09-27", lines[1])
	assert.Equal(t, "r2           Lyon", lines[2])
	assert.Equal(t, strings.Index(lines[1], "Berlin Marathon"), strings.Index(lines[0], "NAME"))
}
