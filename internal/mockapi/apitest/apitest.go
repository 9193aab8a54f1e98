// Package apitest starts a seeded mock backend for tests and returns an api
// client pointed at it.
package apitest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"runmate/internal/api"
	"runmate/internal/domain"
	"runmate/internal/mockapi"
)

// Now is the fixed clock used by the mock backend in tests.
var Now = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

// Start serves a seeded mockapi.Server until the test ends.
func Start(t testing.TB) (*api.HTTP, *mockapi.Server) {
	t.Helper()
	srv := mockapi.New(mockapi.WithClock(func() time.Time { return Now }))
	srv.Seed()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return api.NewHTTP(ts.URL+"/api/v1", api.Options{RatePerSecond: 1000, Burst: 100}), srv
}

// LoggedIn is Start followed by a login as the given seeded account.
func LoggedIn(t testing.TB, email string) (*api.HTTP, *mockapi.Server) {
	t.Helper()
	c, srv := Start(t)
	sess, err := c.Login(context.Background(), domain.Credentials{Email: email, Password: "password123"})
	if err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	c.SetToken(sess.Token)
	return c, srv
}
