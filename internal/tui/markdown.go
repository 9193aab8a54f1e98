package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders md for a terminal of the given width. style is a glamour
// standard style name ("dark", "light", "notty"); empty picks one from the
// terminal. Rendering failures fall back to the raw text.
func Markdown(md string, width int, style string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
