package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/mockapi/apitest"
	"runmate/internal/services/matching"
)

func ids(ms []domain.Match) []domain.MatchID {
	out := make([]domain.MatchID, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestDeck_LikePass(t *testing.T) {
	c, _ := apitest.LoggedIn(t, "ana@example.com")
	svc := matching.New(c)
	ctx := context.Background()

	deck, err := svc.Deck(ctx)
	require.NoError(t, err)
	require.Len(t, deck, 3)
	for i := 1; i < len(deck); i++ {
		assert.GreaterOrEqual(t, deck[i-1].Score, deck[i].Score)
	}
	assert.NotContains(t, ids(deck), domain.MatchID("usr_ana"))

	require.NoError(t, svc.Like(ctx, "usr_ben"))
	require.NoError(t, svc.Pass(ctx, "usr_chloe"))

	deck, err = svc.Deck(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.MatchID{"usr_dev"}, ids(deck))

	assert.ErrorIs(t, svc.Like(ctx, ""), domain.ErrValidation)
	assert.ErrorIs(t, svc.Like(ctx, "usr_nobody"), domain.ErrNotFound)
}

func TestRemove(t *testing.T) {
	ms := []domain.Match{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := matching.Remove(ms, "b")
	assert.Equal(t, []domain.MatchID{"a", "c"}, ids(got))
	assert.Equal(t, []domain.MatchID{"a", "b", "c"}, ids(ms))
}
