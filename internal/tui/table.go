package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned columns for list commands.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow adds a row; missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Len is the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// String renders the table with a bold header and two-space gutters.
func (t *Table) String() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	header := lipgloss.NewStyle().Bold(true)
	var sb strings.Builder
	line := func(cells []string, style *lipgloss.Style) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i < len(widths)-1 {
				cell += strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			}
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}
	line(t.Headers, &header)
	for _, row := range t.Rows {
		line(row, nil)
	}
	return sb.String()
}
