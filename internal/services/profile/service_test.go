package profile_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/domain"
	"runmate/internal/mockapi/apitest"
	"runmate/internal/services/profile"
)

func ptr[T any](v T) *T { return &v }

func TestShowAndEdit(t *testing.T) {
	c, _ := apitest.LoggedIn(t, "chloe@example.com")
	svc := profile.New(c, func(string) error { return nil })
	ctx := context.Background()

	me, err := svc.Show(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", me.City)

	u, err := svc.Edit(ctx, domain.ProfileUpdate{
		Bio:          ptr("Parks and hills."),
		PaceMinPerKm: ptr(5.8),
		Latitude:     ptr(45.76),
		Longitude:    ptr(4.84),
		Distances:    []float64{5, 10, 21.1},
	})
	require.NoError(t, err)
	assert.Equal(t, "Parks and hills.", u.Bio)
	assert.InDelta(t, 5.8, u.PaceMinPerKm, 1e-9)
	require.NotNil(t, u.Latitude)
	assert.InDelta(t, 45.76, *u.Latitude, 1e-9)
	assert.Equal(t, "beginner", u.Level, "untouched fields survive")

	me, err = svc.Show(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 10, 21.1}, me.Distances)
}

func TestValidate(t *testing.T) {
	cases := map[string]domain.ProfileUpdate{
		"long bio":      {Bio: ptr(strings.Repeat("x", profile.MaxBioLen+1))},
		"blank city":    {City: ptr("  ")},
		"lat only":      {Latitude: ptr(1.0)},
		"bad latitude":  {Latitude: ptr(91.0), Longitude: ptr(0.0)},
		"bad longitude": {Latitude: ptr(0.0), Longitude: ptr(-181.0)},
		"pace":          {PaceMinPerKm: ptr(1.5)},
		"NaN pace":      {PaceMinPerKm: ptr(math.NaN())},
		"NaN latitude":  {Latitude: ptr(math.NaN()), Longitude: ptr(0.0)},
		"Inf longitude": {Latitude: ptr(0.0), Longitude: ptr(math.Inf(-1))},
		"Inf distance":  {Distances: []float64{10, math.Inf(1)}},
		"distances":     {Distances: []float64{-5}},
		"level":         {Level: ptr("pro")},
		"photos":        {Photos: []string{"/no/such/photo.jpg"}},
	}
	for name, u := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, profile.Validate(u, nil), domain.ErrValidation)
		})
	}
	assert.NoError(t, profile.Validate(domain.ProfileUpdate{}, nil))
}
