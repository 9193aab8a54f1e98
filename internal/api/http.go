package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"runmate/internal/domain"
)

const (
	defaultRatePerSecond = 10
	defaultBurst         = 5
	maxErrorBody         = 4 << 10
)

// Options tunes an HTTP client. Zero values select the defaults.
type Options struct {
	HTTP          *http.Client
	Logger        *zap.Logger
	RatePerSecond float64
	Burst         int
}

// HTTP is the backend client.
type HTTP struct {
	base    string
	http    *http.Client
	log     *zap.Logger
	limiter *rate.Limiter

	mu    sync.RWMutex
	token string
}

// NewHTTP returns a client for the backend at base (e.g. http://127.0.0.1:8080/api/v1).
func NewHTTP(base string, opts Options) *HTTP {
	hc := opts.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	lg := opts.Logger
	if lg == nil {
		lg = zap.NewNop()
	}
	rps := opts.RatePerSecond
	if rps <= 0 {
		rps = defaultRatePerSecond
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	return &HTTP{
		base:    strings.TrimRight(base, "/"),
		http:    hc,
		log:     lg,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

var _ domain.APIClient = (*HTTP)(nil)

// SetToken installs the bearer token used for subsequent calls.
func (c *HTTP) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTP) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (c *HTTP) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// do sends one request and decodes a 2xx JSON body into out (if non-nil).
func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	op := method + " " + path

	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.APIError{Kind: domain.KindNetwork, Op: op, Err: err}
	}

	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("op", op), zap.String("request_id", reqID), zap.Error(err))
		return &domain.APIError{Kind: domain.KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		zap.String("op", op),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode/100 != 2 {
		return statusError(op, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &domain.APIError{Kind: domain.KindServer, Status: resp.StatusCode, Op: op, Message: "malformed response body", Err: err}
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	e := &domain.APIError{
		Kind:   domain.KindForStatus(resp.StatusCode),
		Status: resp.StatusCode,
		Op:     op,
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
		e.Message = eb.Error
		e.Code = eb.Code
	} else if s := strings.TrimSpace(string(raw)); s != "" {
		e.Message = s
	}
	return e
}
