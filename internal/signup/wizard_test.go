package signup_test

import (
	"context"
	"errors"
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/api"
	"runmate/internal/domain"
	"runmate/internal/mockapi"
	"runmate/internal/signup"
	"runmate/internal/store"
)

var today = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return today }

func anyFile(string) error { return nil }

// memDrafts is an in-memory DraftStore that can be told to fail.
type memDrafts struct {
	draft   *domain.SignupDraft
	saves   int
	failErr error
}

func (m *memDrafts) SaveDraft(_ string, d domain.SignupDraft) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.draft = &d
	return nil
}

func (m *memDrafts) LoadDraft(string) (domain.SignupDraft, bool, error) {
	if m.draft == nil {
		return domain.SignupDraft{}, false, nil
	}
	return *m.draft, true, nil
}

func (m *memDrafts) ClearDraft() error { m.draft = nil; return nil }

func newAPI(t *testing.T) *api.HTTP {
	t.Helper()
	srv := mockapi.New()
	srv.Seed()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return api.NewHTTP(ts.URL+"/api/v1", api.Options{RatePerSecond: 1000, Burst: 100})
}

func validPayloads() []any {
	return []any{
		domain.CredentialsStep{Email: "erin@example.com", Password: "longenough", ConfirmPassword: "longenough"},
		domain.ProfileStep{FirstName: "Erin", LastName: "Walsh", BirthDate: "1995-03-14", Gender: "female"},
		domain.RunningStep{PaceMinPerKm: 5.5, Distances: []float64{10, 21.1}, Level: "intermediate"},
		domain.LocationStep{City: "Lisbon", Country: "Portugal"},
		domain.PhotosStep{Paths: []string{"/tmp/a.jpg"}},
		domain.ReviewStep{Confirmed: true},
	}
}

func TestWizard_HappyPath(t *testing.T) {
	drafts := &memDrafts{}
	w, err := signup.Resume(drafts, "pw", newAPI(t), signup.WithClock(clock), signup.WithFileCheck(anyFile))
	require.NoError(t, err)
	require.Equal(t, domain.StepCredentials, w.Step())

	want := []domain.SignupStep{
		domain.StepProfile, domain.StepRunning, domain.StepLocation,
		domain.StepPhotos, domain.StepReview, domain.StepReview,
	}
	for i, p := range validPayloads() {
		require.NoError(t, w.Next(p), "step %d", i)
		assert.Equal(t, want[i], w.Step())
	}
	assert.Equal(t, 5, drafts.saves)

	sess, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "Erin", sess.User.FirstName)
	assert.Equal(t, "Lisbon", sess.User.City)
	assert.Equal(t, domain.StepSubmitted, w.Step())
	assert.Nil(t, drafts.draft, "draft is cleared after submit")

	assert.ErrorIs(t, w.Next(domain.ReviewStep{Confirmed: true}), signup.ErrSubmitted)
	assert.ErrorIs(t, w.Back(), signup.ErrSubmitted)
	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, signup.ErrSubmitted)
}

func TestWizard_InvalidPayloadKeepsState(t *testing.T) {
	cases := []struct {
		name    string
		advance int
		payload any
		field   string
	}{
		{"bad email", 0, domain.CredentialsStep{Email: "erin", Password: "longenough", ConfirmPassword: "longenough"}, "email"},
		{"short password", 0, domain.CredentialsStep{Email: "e@x.io", Password: "short", ConfirmPassword: "short"}, "password"},
		{"mismatch", 0, domain.CredentialsStep{Email: "e@x.io", Password: "longenough", ConfirmPassword: "longenougH"}, "confirm_password"},
		{"missing first name", 1, domain.ProfileStep{LastName: "W", BirthDate: "1990-01-01"}, "first_name"},
		{"too young", 1, domain.ProfileStep{FirstName: "E", LastName: "W", BirthDate: "2010-05-11"}, "birth_date"},
		{"bad date", 1, domain.ProfileStep{FirstName: "E", LastName: "W", BirthDate: "11/05/1990"}, "birth_date"},
		{"pace too fast", 2, domain.RunningStep{PaceMinPerKm: 2, Distances: []float64{5}, Level: "beginner"}, "pace_min_per_km"},
		{"pace too slow", 2, domain.RunningStep{PaceMinPerKm: 15, Distances: []float64{5}, Level: "beginner"}, "pace_min_per_km"},
		{"NaN pace", 2, domain.RunningStep{PaceMinPerKm: math.NaN(), Distances: []float64{5}, Level: "beginner"}, "pace_min_per_km"},
		{"infinite pace", 2, domain.RunningStep{PaceMinPerKm: math.Inf(1), Distances: []float64{5}, Level: "beginner"}, "pace_min_per_km"},
		{"infinite distance", 2, domain.RunningStep{PaceMinPerKm: 6, Distances: []float64{5, math.Inf(1)}, Level: "beginner"}, "distances"},
		{"NaN distance", 2, domain.RunningStep{PaceMinPerKm: 6, Distances: []float64{math.NaN()}, Level: "beginner"}, "distances"},
		{"no distances", 2, domain.RunningStep{PaceMinPerKm: 6, Level: "beginner"}, "distances"},
		{"bad level", 2, domain.RunningStep{PaceMinPerKm: 6, Distances: []float64{5}, Level: "elite"}, "level"},
		{"no country", 3, domain.LocationStep{City: "Lisbon"}, "country"},
		{"no photos", 4, domain.PhotosStep{}, "photos"},
		{"too many photos", 4, domain.PhotosStep{Paths: []string{"1", "2", "3", "4", "5", "6", "7"}}, "photos"},
		{"not confirmed", 5, domain.ReviewStep{}, "review"},
		{"wrong payload type", 0, domain.ProfileStep{}, "credentials"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			drafts := &memDrafts{}
			w, err := signup.Resume(drafts, "pw", nil, signup.WithClock(clock), signup.WithFileCheck(anyFile))
			require.NoError(t, err)
			for _, p := range validPayloads()[:tc.advance] {
				require.NoError(t, w.Next(p))
			}
			before := w.Draft()
			saves := drafts.saves

			err = w.Next(tc.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)

			assert.Equal(t, before, w.Draft())
			assert.Equal(t, saves, drafts.saves)
		})
	}
}

func TestWizard_SixteenthBirthday(t *testing.T) {
	w, err := signup.Resume(&memDrafts{}, "pw", nil, signup.WithClock(clock))
	require.NoError(t, err)
	require.NoError(t, w.Next(validPayloads()[0]))
	assert.NoError(t, w.Next(domain.ProfileStep{FirstName: "E", LastName: "W", BirthDate: "2010-05-10"}))
}

func TestWizard_BackKeepsPayloads(t *testing.T) {
	w, err := signup.Resume(&memDrafts{}, "pw", nil, signup.WithClock(clock))
	require.NoError(t, err)
	assert.ErrorIs(t, w.Back(), signup.ErrAtFirstStep)

	p := validPayloads()
	require.NoError(t, w.Next(p[0]))
	require.NoError(t, w.Next(p[1]))
	require.NoError(t, w.Back())
	assert.Equal(t, domain.StepProfile, w.Step())
	require.NotNil(t, w.Draft().Profile)
	assert.Equal(t, "Erin", w.Draft().Profile.FirstName)

	require.NoError(t, w.Next(p[1]))
	assert.Equal(t, domain.StepRunning, w.Step())
}

func TestWizard_SubmitBeforeReview(t *testing.T) {
	w, err := signup.Resume(&memDrafts{}, "pw", nil)
	require.NoError(t, err)
	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, signup.ErrNotReviewed)
}

func TestWizard_SaveFailureDoesNotAdvance(t *testing.T) {
	drafts := &memDrafts{failErr: errors.New("disk full")}
	w, err := signup.Resume(drafts, "pw", nil)
	require.NoError(t, err)
	err = w.Next(validPayloads()[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, domain.StepCredentials, w.Step())
}

func TestWizard_ResumeFromEncryptedDraft(t *testing.T) {
	home := t.TempDir()
	drafts := store.NewDraftFileStore(home)

	w, err := signup.Resume(drafts, "pw", nil, signup.WithClock(clock))
	require.NoError(t, err)
	p := validPayloads()
	require.NoError(t, w.Next(p[0]))
	require.NoError(t, w.Next(p[1]))

	again, err := signup.Resume(store.NewDraftFileStore(home), "pw", nil, signup.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, domain.StepRunning, again.Step())
	assert.Equal(t, w.Draft(), again.Draft())

	_, err = signup.Resume(store.NewDraftFileStore(home), "other", nil)
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)

	require.NoError(t, again.Reset())
	fresh, err := signup.Resume(drafts, "pw", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StepCredentials, fresh.Step())
}

func TestWizard_DuplicateEmailStaysOnReview(t *testing.T) {
	drafts := &memDrafts{}
	w, err := signup.Resume(drafts, "pw", newAPI(t), signup.WithClock(clock), signup.WithFileCheck(anyFile))
	require.NoError(t, err)
	p := validPayloads()
	p[0] = domain.CredentialsStep{Email: "ana@example.com", Password: "longenough", ConfirmPassword: "longenough"}
	for _, payload := range p {
		require.NoError(t, w.Next(payload))
	}
	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.StepReview, w.Step())
	assert.NotNil(t, drafts.draft)
}

func TestAge(t *testing.T) {
	born := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 25, signup.Age(born, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 26, signup.Age(born, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidatePhotos_ChecksFiles(t *testing.T) {
	err := signup.ValidatePhotos(domain.PhotosStep{Paths: []string{"/definitely/not/here.jpg"}}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, signup.ValidatePhotos(domain.PhotosStep{Paths: []string{"wizard_test.go"}}, nil))
}
