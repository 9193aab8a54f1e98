package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/mockapi/apitest"
	"runmate/internal/services/auth"
	"runmate/internal/store"
)

func TestLoginRestoreLogout(t *testing.T) {
	c, _ := apitest.Start(t)
	home := t.TempDir()
	svc := auth.New(c, store.NewSessionFileStore(home), nil)
	ctx := context.Background()

	_, err := svc.Restore("pw")
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)

	sess, err := svc.Login(ctx, "pw", domain.Credentials{Email: " ana@example.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("usr_ana"), sess.User.ID)

	// A fresh client picks the token up from the stored session.
	c2, _ := apitest.Start(t)
	svc2 := auth.New(c2, store.NewSessionFileStore(home), nil)
	got, err := svc2.Restore("pw")
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)

	cur, ok, err := svc.Current("pw")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ana", cur.User.FirstName)

	require.NoError(t, svc.Logout())
	require.NoError(t, svc.Logout())
	_, err = svc.Restore("pw")
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestLogin_ValidatesBeforeRequest(t *testing.T) {
	c, _ := apitest.Start(t)
	svc := auth.New(c, store.NewSessionFileStore(t.TempDir()), nil)

	_, err := svc.Login(context.Background(), "pw", domain.Credentials{Email: "nope", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Login(context.Background(), "pw", domain.Credentials{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh(t *testing.T) {
	c, _ := apitest.Start(t)
	home := t.TempDir()
	sessions := store.NewSessionFileStore(home)
	svc := auth.New(c, sessions, nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, "pw", domain.Credentials{Email: "ben@example.com", Password: "password123"})
	require.NoError(t, err)
	sess, err := svc.Refresh(ctx, "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ben", sess.User.FirstName)

	// A token the backend does not know logs the user out.
	require.NoError(t, sessions.SaveSession("pw", domain.Session{Token: "stale", User: sess.User}))
	_, err = svc.Refresh(ctx, "pw")
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	_, ok, err := sessions.LoadSession("pw")
	require.NoError(t, err)
	assert.False(t, ok)
}
