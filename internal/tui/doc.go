// Package tui holds the interactive terminal pages: the match deck and the
// live user search. Pages are bubbletea models; rendering uses lipgloss and
// markdown text goes through glamour.
package tui
