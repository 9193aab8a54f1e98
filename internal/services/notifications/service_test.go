package notifications_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/mockapi/apitest"
	"runmate/internal/services/notifications"
)

func TestRegister(t *testing.T) {
	c, srv := apitest.LoggedIn(t, "ana@example.com")
	svc := notifications.New(c, nil)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, " device-abc ", ""))
	require.NoError(t, svc.Register(ctx, "device-abc", ""))
	require.NoError(t, svc.Register(ctx, "device-def", "ios"))

	assert.Equal(t, []domain.PushRegistration{
		{Token: "device-abc", Platform: notifications.DefaultPlatform},
		{Token: "device-def", Platform: "ios"},
	}, srv.PushTokens("usr_ana"))

	assert.ErrorIs(t, svc.Register(ctx, "  ", ""), domain.ErrValidation)
}
