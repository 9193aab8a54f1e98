// Package unread holds the shared unread-message count shown on the inbox
// badge. Counts are kept per conversation; the badge shows their sum.
package unread

import (
	"slices"
	"sync"

	"runmate/internal/domain"
)

// Counter is safe for concurrent use.
type Counter struct {
	mu     sync.Mutex
	counts map[domain.ConversationID]int
	subs   []chan int
}

// New returns an empty counter.
func New() *Counter {
	return &Counter{counts: make(map[domain.ConversationID]int)}
}

// Reset replaces every count, typically from a fresh conversation list.
func (c *Counter) Reset(counts map[domain.ConversationID]int) {
	c.mu.Lock()
	c.counts = make(map[domain.ConversationID]int, len(counts))
	for id, n := range counts {
		if n > 0 {
			c.counts[id] = n
		}
	}
	c.publishLocked()
	c.mu.Unlock()
}

// Add bumps a conversation by n (n may be negative; counts never go below 0).
func (c *Counter) Add(id domain.ConversationID, n int) {
	c.mu.Lock()
	v := c.counts[id] + n
	if v <= 0 {
		delete(c.counts, id)
	} else {
		c.counts[id] = v
	}
	c.publishLocked()
	c.mu.Unlock()
}

// MarkRead zeroes a conversation.
func (c *Counter) MarkRead(id domain.ConversationID) {
	c.mu.Lock()
	if _, had := c.counts[id]; had {
		delete(c.counts, id)
		c.publishLocked()
	}
	c.mu.Unlock()
}

// For returns the unread count of one conversation.
func (c *Counter) For(id domain.ConversationID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[id]
}

// Total returns the badge value.
func (c *Counter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

// Subscribe returns a channel that receives the total after each change,
// and a cancel func that detaches and closes it. Delivery never blocks: a
// slow reader loses intermediate totals but the channel always ends up
// holding the latest one.
func (c *Counter) Subscribe() (<-chan int, func()) {
	ch := make(chan int, 1)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if i := slices.Index(c.subs, ch); i >= 0 {
			c.subs = slices.Delete(c.subs, i, i+1)
			close(ch)
		}
	}
	return ch, cancel
}

func (c *Counter) totalLocked() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

func (c *Counter) publishLocked() {
	total := c.totalLocked()
	for _, ch := range c.subs {
		// Replace a stale value so the newest total wins.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- total:
		default:
		}
	}
}
