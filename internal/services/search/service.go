package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"runmate/internal/debounce"
	"runmate/internal/domain"
)

// MinQueryLen is the shortest query sent to the backend, in runes.
const MinQueryLen = 2

// DefaultDelay is the debounce delay when none is configured.
const DefaultDelay = 500 * time.Millisecond

// Result is the outcome of one query. Users is empty for short queries.
type Result struct {
	Query string
	Users []domain.User
	Err   error
}

// Service debounces user searches.
type Service struct {
	api domain.AuthAPI
	log *zap.Logger
	deb *debounce.Debouncer
	out chan Result

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
}

// New returns a Service that waits delay after the last Query before
// searching. delay <= 0 uses DefaultDelay.
func New(api domain.AuthAPI, delay time.Duration, log *zap.Logger) *Service {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		api: api,
		log: log,
		deb: debounce.New(delay),
		out: make(chan Result, 1),
	}
}

// Results delivers the latest result. It is closed by Close.
func (s *Service) Results() <-chan Result { return s.out }

// Query schedules a search for q, superseding every earlier query.
func (s *Service) Query(ctx context.Context, q string) {
	q = strings.TrimSpace(q)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.seq++
	seq := s.seq
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	if utf8.RuneCountInString(q) < MinQueryLen {
		s.deb.Cancel()
		s.deliver(seq, Result{Query: q})
		return
	}
	s.deb.Call(func() { s.run(ctx, seq, q) })
}

func (s *Service) run(ctx context.Context, seq uint64, q string) {
	s.mu.Lock()
	if seq != s.seq || s.closed {
		s.mu.Unlock()
		return
	}
	rctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	users, err := s.api.SearchUsers(rctx, q)
	if errors.Is(err, context.Canceled) {
		return
	}
	if err != nil {
		s.log.Debug("search failed", zap.String("query", q), zap.Error(err))
	}
	s.deliver(seq, Result{Query: q, Users: users, Err: err})
}

// deliver publishes r if it still answers the latest query, replacing any
// unread older result.
func (s *Service) deliver(seq uint64, r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || s.closed {
		return
	}
	select {
	case <-s.out:
	default:
	}
	s.out <- r
}

// Search runs one query immediately, without debouncing.
func (s *Service) Search(ctx context.Context, q string) ([]domain.User, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinQueryLen {
		return nil, domain.Invalid("query", "type at least 2 characters")
	}
	return s.api.SearchUsers(ctx, q)
}

// Close stops pending work and closes Results.
func (s *Service) Close() {
	s.deb.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	close(s.out)
}
