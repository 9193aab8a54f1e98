// Package search finds other runners by name or city.
//
// Query is meant to be called on every keystroke: the request goes out only
// once typing has paused for the debounce delay, an in-flight request is
// cancelled by the next query, and only the latest query's result is ever
// delivered on Results.
package search
