package mockapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/mockapi"
)

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"`+email+`","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var s domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s.Token
}

func TestAuthRequired(t *testing.T) {
	srv := mockapi.New()
	rec := do(t, srv.Handler(), http.MethodGet, "/api/v1/races", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing bearer token","code":"unauthorized"}`, rec.Body.String())
}

func TestLikeOpensConversation(t *testing.T) {
	srv := mockapi.New()
	srv.Seed()
	h := srv.Handler()
	tok := login(t, h, "chloe@example.com")

	rec := do(t, h, http.MethodGet, "/api/v1/matches", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []domain.Match
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 3)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	for _, m := range matches {
		assert.Empty(t, m.User.Email)
	}

	rec = do(t, h, http.MethodPost, "/api/v1/matches/"+string(matches[0].ID)+"/like", tok, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/matches", tok, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	assert.Len(t, matches, 2)

	rec = do(t, h, http.MethodGet, "/api/v1/conversations", tok, "")
	var convs []domain.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &convs))
	assert.Len(t, convs, 1)
}

func TestJoinEventTwiceConflicts(t *testing.T) {
	srv := mockapi.New()
	srv.Seed()
	h := srv.Handler()
	tok := login(t, h, "chloe@example.com")

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/v1/events/evt_sunday/join", tok, "").Code)
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/api/v1/events/evt_sunday/join", tok, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/v1/events/nope/join", tok, "").Code)
}

func TestRegisterValidation(t *testing.T) {
	h := mockapi.New().Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/auth/register", "", `{"email":"x@y.z","password":"short","first_name":"X"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/register", "", `{"email":"x@y.z","password":"longenough","first_name":"X"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/register", "", `{"email":"X@y.z","password":"longenough","first_name":"X"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
