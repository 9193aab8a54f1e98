package types

// SignupStep names a stage of the sign-up wizard.
type SignupStep string

const (
	StepCredentials SignupStep = "credentials"
	StepProfile     SignupStep = "profile"
	StepRunning     SignupStep = "running"
	StepLocation    SignupStep = "location"
	StepPhotos      SignupStep = "photos"
	StepReview      SignupStep = "review"
	StepSubmitted   SignupStep = "submitted"
)

// String returns the string form of the step.
func (s SignupStep) String() string { return string(s) }

// CredentialsStep is the payload of the first wizard step.
type CredentialsStep struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ProfileStep carries identity details.
type ProfileStep struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
}

// RunningStep carries training preferences.
type RunningStep struct {
	PaceMinPerKm float64   `json:"pace_min_per_km"`
	Distances    []float64 `json:"distances"`
	Level        string    `json:"level"`
}

// LocationStep carries where the user runs.
type LocationStep struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// PhotosStep carries local photo paths picked by the user.
type PhotosStep struct {
	Paths []string `json:"paths"`
}

// ReviewStep confirms the accumulated draft.
type ReviewStep struct {
	Confirmed bool `json:"confirmed"`
}

// SignupDraft is the persisted wizard state. Each step's payload is set once
// the step has been validated.
type SignupDraft struct {
	Step        SignupStep       `json:"step"`
	Credentials *CredentialsStep `json:"credentials,omitempty"`
	Profile     *ProfileStep     `json:"profile,omitempty"`
	Running     *RunningStep     `json:"running,omitempty"`
	Location    *LocationStep    `json:"location,omitempty"`
	Photos      *PhotosStep      `json:"photos,omitempty"`
}
