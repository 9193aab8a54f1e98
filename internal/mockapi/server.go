package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"runmate/internal/domain"
)

const uidKey = "uid"

type account struct {
	user     domain.User
	password string
}

type conversation struct {
	id       domain.ConversationID
	members  [2]domain.UserID
	messages []domain.Message
	updated  time.Time
}

// Server holds the in-memory backend state.
type Server struct {
	mu  sync.RWMutex
	now func() time.Time
	log *zap.Logger

	accounts  map[domain.UserID]*account
	byEmail   map[string]domain.UserID
	tokens    map[string]domain.UserID
	races     []domain.Race
	events    []*domain.Event
	groups    []*domain.Group
	members   map[domain.GroupID]map[domain.UserID]bool
	decided   map[domain.UserID]map[domain.UserID]bool
	convs     []*conversation
	plans     []domain.Plan
	subs      map[domain.UserID]*domain.Subscription
	pushToken map[domain.UserID][]domain.PushRegistration
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// WithLogger sets the access logger.
func WithLogger(l *zap.Logger) Option { return func(s *Server) { s.log = l } }

// New returns an empty server.
func New(opts ...Option) *Server {
	s := &Server{
		now:       time.Now,
		log:       zap.NewNop(),
		accounts:  make(map[domain.UserID]*account),
		byEmail:   make(map[string]domain.UserID),
		tokens:    make(map[string]domain.UserID),
		members:   make(map[domain.GroupID]map[domain.UserID]bool),
		decided:   make(map[domain.UserID]map[domain.UserID]bool),
		subs:      make(map[domain.UserID]*domain.Subscription),
		pushToken: make(map[domain.UserID][]domain.PushRegistration),
		plans: []domain.Plan{
			{ID: "monthly", Name: "Runmate Plus (monthly)", PriceCents: 999, Currency: "eur", Interval: "month"},
			{ID: "yearly", Name: "Runmate Plus (yearly)", PriceCents: 7999, Currency: "eur", Interval: "year"},
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler builds the gin engine serving the API under /api/v1.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "healthy"}) })

	v1 := r.Group("/api/v1")
	v1.POST("/auth/login", s.login)
	v1.POST("/auth/register", s.register)

	authed := v1.Group("", s.requireAuth())
	{
		authed.GET("/users/me", s.me)
		authed.PUT("/users/me", s.updateMe)
		authed.GET("/users/search", s.searchUsers)

		authed.GET("/matches", s.listMatches)
		authed.POST("/matches/:id/like", s.decide(true))
		authed.POST("/matches/:id/pass", s.decide(false))

		authed.GET("/conversations", s.listConversations)
		authed.GET("/conversations/:id/messages", s.listMessages)
		authed.POST("/conversations/:id/messages", s.sendMessage)
		authed.POST("/conversations/:id/read", s.markRead)

		authed.GET("/races", s.listRaces)
		authed.GET("/races/:id", s.getRace)

		authed.GET("/events", s.listEvents)
		authed.POST("/events", s.createEvent)
		authed.GET("/events/:id", s.getEvent)
		authed.POST("/events/:id/join", s.joinEvent(true))
		authed.POST("/events/:id/leave", s.joinEvent(false))

		authed.GET("/groups", s.listGroups)
		authed.POST("/groups", s.createGroup)
		authed.GET("/groups/:id", s.getGroup)
		authed.POST("/groups/:id/join", s.joinGroup(true))
		authed.POST("/groups/:id/leave", s.joinGroup(false))

		authed.GET("/payments/plans", s.listPlans)
		authed.POST("/payments/subscribe", s.subscribe)
		authed.GET("/payments/subscription", s.getSubscription)
		authed.DELETE("/payments/subscription", s.cancelSubscription)

		authed.POST("/notifications/register", s.registerPush)
	}
	return r
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("took", time.Since(start)))
	}
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		tok, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || tok == "" {
			abort(c, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
			return
		}
		s.mu.RLock()
		uid, ok := s.tokens[tok]
		s.mu.RUnlock()
		if !ok {
			abort(c, http.StatusUnauthorized, codeUnauthorized, "invalid or expired token")
			return
		}
		c.Set(uidKey, uid)
		c.Next()
	}
}

func currentUser(c *gin.Context) domain.UserID {
	return c.MustGet(uidKey).(domain.UserID)
}

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

// issueToken must be called with s.mu held for writing.
func (s *Server) issueToken(uid domain.UserID) string {
	tok := uuid.NewString()
	s.tokens[tok] = uid
	return tok
}
