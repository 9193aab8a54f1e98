// Package deck tracks the current card of the match carousel.
//
// Navigation wraps around in both directions. After every move the
// navigator tells the view layer to scroll to the new index; that call is
// fire-and-forget, so a view that fails to scroll can drift from the
// navigator's index until the next move.
//
// Concurrency: Navigator is NOT safe for concurrent use. It is owned by the
// UI loop that renders the deck.
package deck

import "fmt"

// Scroller is the view-layer hook receiving imperative scroll commands.
type Scroller interface {
	ScrollToIndex(i int)
}

// ScrollFunc adapts a plain function to Scroller.
type ScrollFunc func(i int)

// ScrollToIndex calls f(i).
func (f ScrollFunc) ScrollToIndex(i int) { f(i) }

// Navigator holds the current index into a fixed-order list of length n.
type Navigator struct {
	index    int
	length   int
	scroller Scroller
}

// New returns a navigator at index 0. scroller may be nil.
func New(length int, scroller Scroller) *Navigator {
	if length < 0 {
		length = 0
	}
	return &Navigator{length: length, scroller: scroller}
}

// Index is the current position.
func (n *Navigator) Index() int { return n.index }

// Len is the number of cards.
func (n *Navigator) Len() int { return n.length }

// Empty reports whether there is nothing to show.
func (n *Navigator) Empty() bool { return n.length == 0 }

// Next advances one card, wrapping from the last card to the first.
func (n *Navigator) Next() int {
	if n.length == 0 {
		return n.index
	}
	if n.index < n.length-1 {
		n.index++
	} else {
		n.index = 0
	}
	n.scroll()
	return n.index
}

// Previous goes back one card, wrapping from the first card to the last.
func (n *Navigator) Previous() int {
	if n.length == 0 {
		return n.index
	}
	if n.index > 0 {
		n.index--
	} else {
		n.index = n.length - 1
	}
	n.scroll()
	return n.index
}

// Jump moves straight to i, as when a pagination dot is tapped.
func (n *Navigator) Jump(i int) error {
	if i < 0 || i >= n.length {
		return fmt.Errorf("deck index %d out of range [0,%d)", i, n.length)
	}
	n.index = i
	n.scroll()
	return nil
}

// Resize adopts a new list length, e.g. after a card was liked or passed and
// left the deck. The index is clamped to the last card; an empty deck rests
// at 0.
func (n *Navigator) Resize(length int) {
	if length < 0 {
		length = 0
	}
	n.length = length
	switch {
	case length == 0:
		n.index = 0
	case n.index > length-1:
		n.index = length - 1
	}
	if length > 0 {
		n.scroll()
	}
}

func (n *Navigator) scroll() {
	if n.scroller != nil {
		n.scroller.ScrollToIndex(n.index)
	}
}
