package signup

import (
	"math"
	"net/mail"
	"os"
	"strings"
	"time"

	"runmate/internal/domain"
)

const (
	MinPasswordLen = 8
	MinAge         = 16
	MinPace        = 2.0  // min/km, exclusive
	MaxPace        = 15.0 // min/km, exclusive
	MaxPhotos      = 6
)

// Levels accepted for the running level field.
var Levels = []string{"beginner", "intermediate", "advanced"}

// ValidateCredentials checks the first step.
func ValidateCredentials(p domain.CredentialsStep) error {
	if err := ValidateEmail(p.Email); err != nil {
		return err
	}
	if len(p.Password) < MinPasswordLen {
		return domain.Invalid("password", "must be at least 8 characters")
	}
	if p.Password != p.ConfirmPassword {
		return domain.Invalid("confirm_password", "does not match password")
	}
	return nil
}

// ValidateEmail accepts a bare address such as "ana@example.com".
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@"):], ".") {
		return domain.Invalid("email", "is not a valid address")
	}
	return nil
}

// ValidateProfile checks names and the minimum age at now.
func ValidateProfile(p domain.ProfileStep, now time.Time) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return domain.Invalid("first_name", "is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return domain.Invalid("last_name", "is required")
	}
	born, err := time.Parse("2006-01-02", strings.TrimSpace(p.BirthDate))
	if err != nil {
		return domain.Invalid("birth_date", "must be YYYY-MM-DD")
	}
	if Age(born, now) < MinAge {
		return domain.Invalid("birth_date", "you must be at least 16")
	}
	return nil
}

// Age returns the completed years between born and now.
func Age(born, now time.Time) int {
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years
}

// ValidateRunning checks pace, distances and level.
func ValidateRunning(p domain.RunningStep) error {
	if err := ValidatePace(p.PaceMinPerKm); err != nil {
		return err
	}
	if err := ValidateDistances(p.Distances); err != nil {
		return err
	}
	return ValidateLevel(p.Level)
}

// ValidatePace accepts paces strictly between MinPace and MaxPace min/km.
func ValidatePace(pace float64) error {
	if !finite(pace) || pace <= MinPace || pace >= MaxPace {
		return domain.Invalid("pace_min_per_km", "must be between 2 and 15 min/km")
	}
	return nil
}

// ValidateDistances requires at least one positive distance.
func ValidateDistances(ds []float64) error {
	if len(ds) == 0 {
		return domain.Invalid("distances", "pick at least one distance")
	}
	for _, d := range ds {
		if !finite(d) || d <= 0 {
			return domain.Invalid("distances", "must be positive")
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// ValidateLevel accepts one of Levels.
func ValidateLevel(level string) error {
	for _, l := range Levels {
		if level == l {
			return nil
		}
	}
	return domain.Invalid("level", "must be beginner, intermediate or advanced")
}

// ValidateLocation requires a city and a country.
func ValidateLocation(p domain.LocationStep) error {
	if strings.TrimSpace(p.City) == "" {
		return domain.Invalid("city", "is required")
	}
	if strings.TrimSpace(p.Country) == "" {
		return domain.Invalid("country", "is required")
	}
	return nil
}

// FileCheck reports whether a picked photo can be read.
type FileCheck func(path string) error

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.ErrInvalid
	}
	return nil
}

// ValidatePhotos requires 1..MaxPhotos readable files.
func ValidatePhotos(p domain.PhotosStep, check FileCheck) error {
	if len(p.Paths) == 0 {
		return domain.Invalid("photos", "add at least one photo")
	}
	if len(p.Paths) > MaxPhotos {
		return domain.Invalid("photos", "at most 6 photos")
	}
	if check == nil {
		check = statFile
	}
	for _, path := range p.Paths {
		if err := check(path); err != nil {
			return domain.Invalid("photos", "cannot read "+path)
		}
	}
	return nil
}
