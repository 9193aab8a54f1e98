package profile

import (
	"context"
	"strings"

	"runmate/internal/domain"
	"runmate/internal/signup"
)

// MaxBioLen caps the bio, in bytes.
const MaxBioLen = 500

// Service wraps the /users/me endpoints.
type Service struct {
	api  domain.AuthAPI
	file signup.FileCheck
}

// New constructs a profile Service. check validates photo paths and may be
// nil to use the filesystem.
func New(api domain.AuthAPI, check signup.FileCheck) *Service {
	return &Service{api: api, file: check}
}

// Show returns the caller's profile.
func (s *Service) Show(ctx context.Context) (domain.User, error) {
	return s.api.Me(ctx)
}

// Edit validates and applies a partial update.
func (s *Service) Edit(ctx context.Context, u domain.ProfileUpdate) (domain.User, error) {
	if err := Validate(u, s.file); err != nil {
		return domain.User{}, err
	}
	return s.api.UpdateProfile(ctx, u)
}

// Validate checks the fields present in u.
func Validate(u domain.ProfileUpdate, check signup.FileCheck) error {
	if u.Bio != nil && len(*u.Bio) > MaxBioLen {
		return domain.Invalid("bio", "is too long")
	}
	if u.City != nil && strings.TrimSpace(*u.City) == "" {
		return domain.Invalid("city", "cannot be blank")
	}
	if u.Country != nil && strings.TrimSpace(*u.Country) == "" {
		return domain.Invalid("country", "cannot be blank")
	}
	if (u.Latitude == nil) != (u.Longitude == nil) {
		return domain.Invalid("location", "set latitude and longitude together")
	}
	if u.Latitude != nil && !(*u.Latitude >= -90 && *u.Latitude <= 90) {
		return domain.Invalid("latitude", "must be within [-90, 90]")
	}
	if u.Longitude != nil && !(*u.Longitude >= -180 && *u.Longitude <= 180) {
		return domain.Invalid("longitude", "must be within [-180, 180]")
	}
	if u.PaceMinPerKm != nil {
		if err := signup.ValidatePace(*u.PaceMinPerKm); err != nil {
			return err
		}
	}
	if u.Distances != nil {
		if err := signup.ValidateDistances(u.Distances); err != nil {
			return err
		}
	}
	if u.Level != nil {
		if err := signup.ValidateLevel(*u.Level); err != nil {
			return err
		}
	}
	if u.Photos != nil {
		if err := signup.ValidatePhotos(domain.PhotosStep{Paths: u.Photos}, check); err != nil {
			return err
		}
	}
	return nil
}
