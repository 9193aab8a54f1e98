package home_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/mockapi/apitest"
	"runmate/internal/services/events"
	"runmate/internal/services/home"
	"runmate/internal/services/matching"
	"runmate/internal/services/messaging"
)

func TestLoad(t *testing.T) {
	c, _ := apitest.LoggedIn(t, "ana@example.com")
	svc := home.New(
		matching.New(c),
		messaging.New(c, nil),
		events.New(c, func() time.Time { return apitest.Now }),
	)

	d, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, d.Matches, 3)
	require.Len(t, d.Conversations, 1)
	assert.Equal(t, 1, d.Unread)
	require.Len(t, d.Upcoming, 2)
	assert.Equal(t, domain.EventID("evt_track"), d.Upcoming[0].ID)
}

func TestLoad_FirstErrorWins(t *testing.T) {
	c, _ := apitest.Start(t) // no token: every section is unauthorized
	svc := home.New(matching.New(c), messaging.New(c, nil), events.New(c, nil))

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
