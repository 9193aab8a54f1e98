package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"runmate/internal/domain"
	"runmate/internal/tui"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			u, err := appCtx.Profile.Show(cmd.Context())
			if err != nil {
				return err
			}
			printUser(cmd, u)
			return nil
		}),
	}

	var (
		bio, city, country, level, pace, distances string
		lat, lon                                   float64
		photos                                     []string
	)
	edit := &cobra.Command{
		Use:   "edit",
		Short: "Change profile fields; only the flags given are sent",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			var u domain.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("bio") {
				u.Bio = &bio
			}
			if flags.Changed("city") {
				u.City = &city
			}
			if flags.Changed("country") {
				u.Country = &country
			}
			if flags.Changed("level") {
				u.Level = &level
			}
			if flags.Changed("lat") {
				u.Latitude = &lat
			}
			if flags.Changed("lon") {
				u.Longitude = &lon
			}
			if flags.Changed("pace") {
				p, err := parsePace(pace)
				if err != nil {
					return err
				}
				u.PaceMinPerKm = &p
			}
			if flags.Changed("distances") {
				ds, err := parseDistances(distances)
				if err != nil {
					return err
				}
				if ds == nil {
					ds = []float64{}
				}
				u.Distances = ds
			}
			if flags.Changed("photo") {
				u.Photos = photos
			}
			if !anyChanged(cmd, editFlags...) {
				return fmt.Errorf("nothing to change; see --help")
			}

			updated, err := appCtx.Profile.Edit(cmd.Context(), u)
			if err != nil {
				return err
			}
			pass, err := appCtx.Passphrase()
			if err != nil {
				return err
			}
			if _, err := appCtx.Auth.Refresh(cmd.Context(), pass); err != nil {
				appCtx.Log.Debug("refresh cached user failed")
			}
			printUser(cmd, updated)
			return nil
		}),
	}
	f := edit.Flags()
	f.StringVar(&bio, "bio", "", "short bio")
	f.StringVar(&city, "city", "", "city")
	f.StringVar(&country, "country", "", "country")
	f.StringVar(&level, "level", "", "beginner, intermediate or advanced")
	f.StringVar(&pace, "pace", "", "usual pace, m:ss per km")
	f.StringVar(&distances, "distances", "", "distances in km, comma separated")
	f.Float64Var(&lat, "lat", 0, "latitude")
	f.Float64Var(&lon, "lon", 0, "longitude")
	f.StringSliceVar(&photos, "photo", nil, "photo file (repeatable, replaces all photos)")

	cmd.AddCommand(show, edit)
	return cmd
}

var editFlags = []string{"bio", "city", "country", "level", "pace", "distances", "lat", "lon", "photo"}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

func printUser(cmd *cobra.Command, u domain.User) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", u.DisplayName())
	if u.Email != "" {
		fmt.Fprintf(out, "email:     %s\n", u.Email)
	}
	if u.City != "" || u.Country != "" {
		fmt.Fprintf(out, "location:  %s, %s\n", u.City, u.Country)
	}
	if u.Latitude != nil && u.Longitude != nil {
		fmt.Fprintf(out, "coords:    %.4f, %.4f\n", *u.Latitude, *u.Longitude)
	}
	if u.PaceMinPerKm > 0 {
		fmt.Fprintf(out, "pace:      %s\n", tui.FormatPace(u.PaceMinPerKm))
	}
	if len(u.Distances) > 0 {
		fmt.Fprintf(out, "distances: %s\n", tui.FormatDistances(u.Distances))
	}
	if u.Level != "" {
		fmt.Fprintf(out, "level:     %s\n", u.Level)
	}
	if len(u.Photos) > 0 {
		fmt.Fprintf(out, "photos:    %d\n", len(u.Photos))
	}
	if u.Bio != "" {
		fmt.Fprintf(out, "\n%s\n", u.Bio)
	}
}
