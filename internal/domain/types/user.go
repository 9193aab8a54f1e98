package types

// User is the public profile the backend returns for any account.
type User struct {
	ID           UserID    `json:"id"`
	Email        string    `json:"email,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	BirthDate    string    `json:"birth_date,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	PaceMinPerKm float64   `json:"pace_min_per_km,omitempty"`
	Distances    []float64 `json:"distances,omitempty"`
	Level        string    `json:"level,omitempty"`
	Photos       []string  `json:"photos,omitempty"`
	Subscribed   bool      `json:"subscribed"`
}

// DisplayName is the name shown on cards and thread headers.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// ProfileUpdate is the partial body sent to PUT /users/me. Nil fields are left
// untouched by the backend.
type ProfileUpdate struct {
	Bio          *string   `json:"bio,omitempty"`
	City         *string   `json:"city,omitempty"`
	Country      *string   `json:"country,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	PaceMinPerKm *float64  `json:"pace_min_per_km,omitempty"`
	Distances    []float64 `json:"distances,omitempty"`
	Level        *string   `json:"level,omitempty"`
	Photos       []string  `json:"photos,omitempty"`
}

// Session is the authenticated state kept in secure storage.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body sent to POST /auth/register once the sign-up
// wizard reaches review.
type Registration struct {
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	BirthDate    string    `json:"birth_date"`
	Gender       string    `json:"gender"`
	PaceMinPerKm float64   `json:"pace_min_per_km"`
	Distances    []float64 `json:"distances"`
	Level        string    `json:"level"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Photos       []string  `json:"photos"`
}
