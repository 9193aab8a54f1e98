package signup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"runmate/internal/domain"
)

// order lists the wizard states; the index is the step number.
var order = []domain.SignupStep{
	domain.StepCredentials,
	domain.StepProfile,
	domain.StepRunning,
	domain.StepLocation,
	domain.StepPhotos,
	domain.StepReview,
	domain.StepSubmitted,
}

var (
	// ErrAtFirstStep is returned by Back on the first step.
	ErrAtFirstStep = errors.New("already at the first step")
	// ErrSubmitted is returned by any transition after submission.
	ErrSubmitted = errors.New("sign-up already submitted")
	// ErrNotReviewed is returned by Submit before the review step.
	ErrNotReviewed = errors.New("finish every step before submitting")
)

// Index returns the position of step in the wizard, or -1.
func Index(step domain.SignupStep) int {
	for i, s := range order {
		if s == step {
			return i
		}
	}
	return -1
}

// Steps returns the number of user-facing steps (submitted excluded).
func Steps() int { return len(order) - 1 }

// Wizard drives one sign-up.
type Wizard struct {
	draft      domain.SignupDraft
	store      domain.DraftStore
	passphrase string
	auth       domain.AuthAPI
	now        func() time.Time
	files      FileCheck
	log        *zap.Logger
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithClock sets the clock used for the age check.
func WithClock(now func() time.Time) Option { return func(w *Wizard) { w.now = now } }

// WithFileCheck replaces the photo readability check.
func WithFileCheck(check FileCheck) Option { return func(w *Wizard) { w.files = check } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(w *Wizard) { w.log = l } }

// Resume returns a wizard positioned at the stored draft, or at the first
// step when no draft exists.
func Resume(store domain.DraftStore, passphrase string, auth domain.AuthAPI, opts ...Option) (*Wizard, error) {
	w := &Wizard{
		draft:      domain.SignupDraft{Step: domain.StepCredentials},
		store:      store,
		passphrase: passphrase,
		auth:       auth,
		now:        time.Now,
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(w)
	}
	d, ok, err := store.LoadDraft(passphrase)
	if err != nil {
		return nil, fmt.Errorf("load sign-up draft: %w", err)
	}
	if ok {
		if Index(d.Step) < 0 {
			return nil, fmt.Errorf("sign-up draft has unknown step %q", d.Step)
		}
		w.draft = d
		w.log.Debug("resumed sign-up draft", zap.String("step", d.Step.String()))
	}
	return w, nil
}

// Step is the current state.
func (w *Wizard) Step() domain.SignupStep { return w.draft.Step }

// Draft returns the accumulated payloads.
func (w *Wizard) Draft() domain.SignupDraft { return w.draft }

// Next validates payload for the current step, records it and advances.
// The payload type must match the step: CredentialsStep, ProfileStep,
// RunningStep, LocationStep, PhotosStep, then ReviewStep.
func (w *Wizard) Next(payload any) error {
	next := w.draft
	switch w.draft.Step {
	case domain.StepCredentials:
		p, ok := payload.(domain.CredentialsStep)
		if !ok {
			return wrongPayload(w.draft.Step, payload)
		}
		if err := ValidateCredentials(p); err != nil {
			return err
		}
		next.Credentials = &p
	case domain.StepProfile:
		p, ok := payload.(domain.ProfileStep)
		if !ok {
			return wrongPayload(w.draft.Step, payload)
		}
		if err := ValidateProfile(p, w.now()); err != nil {
			return err
		}
		next.Profile = &p
	case domain.StepRunning:
		p, ok := payload.(domain.RunningStep)
		if !ok {
			return wrongPayload(w.draft.Step, payload)
		}
		if err := ValidateRunning(p); err != nil {
			return err
		}
		next.Running = &p
	case domain.StepLocation:
		p, ok := payload.(domain.LocationStep)
		if !ok {
			return wrongPayload(w.draft.Step, payload)
		}
		if err := ValidateLocation(p); err != nil {
			return err
		}
		next.Location = &p
	case domain.StepPhotos:
		p, ok := payload.(domain.PhotosStep)
		if !ok {
			return wrongPayload(w.draft.Step, payload)
		}
		if err := ValidatePhotos(p, w.files); err != nil {
			return err
		}
		next.Photos = &p
	case domain.StepReview:
		p, ok := payload.(domain.ReviewStep)
		if !ok {
			return wrongPayload(w.draft.Step, payload)
		}
		if !p.Confirmed {
			return domain.Invalid("review", "confirm the details to continue")
		}
		// Review is left by Submit only.
		return nil
	case domain.StepSubmitted:
		return ErrSubmitted
	}
	next.Step = order[Index(w.draft.Step)+1]
	return w.commit(next)
}

// Back returns to the previous step, keeping every recorded payload.
func (w *Wizard) Back() error {
	i := Index(w.draft.Step)
	switch {
	case w.draft.Step == domain.StepSubmitted:
		return ErrSubmitted
	case i <= 0:
		return ErrAtFirstStep
	}
	next := w.draft
	next.Step = order[i-1]
	return w.commit(next)
}

// Registration assembles the backend request from a complete draft.
func (w *Wizard) Registration() (domain.Registration, error) {
	d := w.draft
	if d.Credentials == nil || d.Profile == nil || d.Running == nil || d.Location == nil || d.Photos == nil {
		return domain.Registration{}, ErrNotReviewed
	}
	return domain.Registration{
		Email:        d.Credentials.Email,
		Password:     d.Credentials.Password,
		FirstName:    d.Profile.FirstName,
		LastName:     d.Profile.LastName,
		BirthDate:    d.Profile.BirthDate,
		Gender:       d.Profile.Gender,
		PaceMinPerKm: d.Running.PaceMinPerKm,
		Distances:    d.Running.Distances,
		Level:        d.Running.Level,
		City:         d.Location.City,
		Country:      d.Location.Country,
		Photos:       d.Photos.Paths,
	}, nil
}

// Submit registers the account. On success the draft is discarded and the
// wizard enters the terminal submitted state.
func (w *Wizard) Submit(ctx context.Context) (domain.Session, error) {
	switch w.draft.Step {
	case domain.StepSubmitted:
		return domain.Session{}, ErrSubmitted
	case domain.StepReview:
	default:
		return domain.Session{}, ErrNotReviewed
	}
	reg, err := w.Registration()
	if err != nil {
		return domain.Session{}, err
	}
	sess, err := w.auth.Register(ctx, reg)
	if err != nil {
		return domain.Session{}, err
	}
	w.draft = domain.SignupDraft{Step: domain.StepSubmitted}
	if err := w.store.ClearDraft(); err != nil {
		w.log.Warn("could not remove sign-up draft", zap.Error(err))
	}
	return sess, nil
}

// Reset discards the draft and starts over.
func (w *Wizard) Reset() error {
	w.draft = domain.SignupDraft{Step: domain.StepCredentials}
	return w.store.ClearDraft()
}

// commit persists next and only then adopts it, so a failed save leaves the
// wizard where it was.
func (w *Wizard) commit(next domain.SignupDraft) error {
	if err := w.store.SaveDraft(w.passphrase, next); err != nil {
		return fmt.Errorf("save sign-up draft: %w", err)
	}
	w.log.Debug("sign-up step", zap.String("from", w.draft.Step.String()), zap.String("to", next.Step.String()))
	w.draft = next
	return nil
}

func wrongPayload(step domain.SignupStep, payload any) error {
	return domain.Invalid(step.String(), fmt.Sprintf("unexpected payload %T", payload))
}
