package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"runmate/internal/domain"
	"runmate/internal/signup"
	"runmate/internal/tui"
)

// backToken typed as the first answer of a step returns to the previous step.
const backToken = "<"

var (
	errBack  = errors.New("back")
	errRetry = errors.New("retry")
)

func signupCmd() *cobra.Command {
	var restart bool
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account (resumes an unfinished sign-up)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := appCtx.Passphrase()
			if err != nil {
				return err
			}
			w, err := signup.Resume(appCtx.Drafts, pass, appCtx.API, signup.WithLogger(appCtx.Log.Named("signup")))
			if err != nil {
				return err
			}
			if restart {
				if err := w.Reset(); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if w.Step() != domain.StepCredentials {
				fmt.Fprintf(out, "Resuming sign-up at %s.\n", w.Step())
			}
			fmt.Fprintf(out, "Type %q as the first answer of a step to go back.\n", backToken)

			sess, err := runWizard(cmd.Context(), newPrompter(cmd), out, w)
			if err != nil {
				return err
			}
			if err := appCtx.Auth.Adopt(pass, sess); err != nil {
				return err
			}
			fmt.Fprintf(out, "Welcome to runmate, %s!\n", sess.User.DisplayName())
			return nil
		},
	}
	cmd.Flags().BoolVar(&restart, "restart", false, "discard any saved draft and start over")
	return cmd
}

func runWizard(ctx context.Context, p *prompter, out io.Writer, w *signup.Wizard) (domain.Session, error) {
	for {
		step := w.Step()
		fmt.Fprintf(out, "\n[%d/%d] %s\n", signup.Index(step)+1, signup.Steps(), step)

		payload, err := askStep(p, out, w.Draft())
		switch {
		case errors.Is(err, errBack):
			if err := w.Back(); err != nil && !errors.Is(err, signup.ErrAtFirstStep) {
				return domain.Session{}, err
			}
			continue
		case errors.Is(err, errRetry):
			continue
		case err != nil:
			return domain.Session{}, err
		}

		if err := w.Next(payload); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				fmt.Fprintf(out, "  ✗ %v\n", err)
				continue
			}
			return domain.Session{}, err
		}
		if step != domain.StepReview {
			continue
		}

		sess, err := w.Submit(ctx)
		if errors.Is(err, domain.ErrConflict) {
			// The email is taken: start again from the credentials step.
			fmt.Fprintf(out, "  ✗ %v\n", err)
			for w.Step() != domain.StepCredentials {
				if err := w.Back(); err != nil {
					return domain.Session{}, err
				}
			}
			continue
		}
		return sess, err
	}
}

func askStep(p *prompter, out io.Writer, d domain.SignupDraft) (any, error) {
	first := func(label, def string) (string, error) {
		s, err := p.line(label, def)
		if err == nil && s == backToken {
			return "", errBack
		}
		return s, err
	}

	switch d.Step {
	case domain.StepCredentials:
		var prev domain.CredentialsStep
		if d.Credentials != nil {
			prev = *d.Credentials
		}
		email, err := first("Email", prev.Email)
		if err != nil {
			return nil, err
		}
		pw, err := p.secret("Password (8+ characters)")
		if err != nil {
			return nil, err
		}
		confirm, err := p.secret("Confirm password")
		if err != nil {
			return nil, err
		}
		return domain.CredentialsStep{Email: email, Password: pw, ConfirmPassword: confirm}, nil

	case domain.StepProfile:
		var prev domain.ProfileStep
		if d.Profile != nil {
			prev = *d.Profile
		}
		firstName, err := first("First name", prev.FirstName)
		if err != nil {
			return nil, err
		}
		answers, err := ask(p, []question{
			{"Last name", prev.LastName},
			{"Birth date (YYYY-MM-DD)", prev.BirthDate},
			{"Gender (optional)", prev.Gender},
		})
		if err != nil {
			return nil, err
		}
		return domain.ProfileStep{FirstName: firstName, LastName: answers[0], BirthDate: answers[1], Gender: answers[2]}, nil

	case domain.StepRunning:
		var prev domain.RunningStep
		if d.Running != nil {
			prev = *d.Running
		}
		defPace := ""
		if prev.PaceMinPerKm > 0 {
			defPace = strings.TrimSuffix(tui.FormatPace(prev.PaceMinPerKm), " /km")
		}
		paceText, err := first("Usual pace (m:ss per km)", defPace)
		if err != nil {
			return nil, err
		}
		answers, err := ask(p, []question{
			{"Distances you run (km, comma separated)", formatFloats(prev.Distances)},
			{"Level (" + strings.Join(signup.Levels, ", ") + ")", defaultString(prev.Level, signup.Levels[0])},
		})
		if err != nil {
			return nil, err
		}
		pace, err := parsePace(paceText)
		if err != nil {
			fmt.Fprintf(out, "  ✗ %v\n", err)
			return nil, errRetry
		}
		ds, err := parseDistances(answers[0])
		if err != nil {
			fmt.Fprintf(out, "  ✗ %v\n", err)
			return nil, errRetry
		}
		return domain.RunningStep{PaceMinPerKm: pace, Distances: ds, Level: strings.ToLower(answers[1])}, nil

	case domain.StepLocation:
		var prev domain.LocationStep
		if d.Location != nil {
			prev = *d.Location
		}
		city, err := first("City", prev.City)
		if err != nil {
			return nil, err
		}
		country, err := p.line("Country", prev.Country)
		if err != nil {
			return nil, err
		}
		return domain.LocationStep{City: city, Country: country}, nil

	case domain.StepPhotos:
		var prev []string
		if d.Photos != nil {
			prev = d.Photos.Paths
		}
		paths, err := first("Photo files (1-6, comma separated)", strings.Join(prev, ", "))
		if err != nil {
			return nil, err
		}
		return domain.PhotosStep{Paths: splitList(paths)}, nil

	case domain.StepReview:
		printDraft(out, d)
		ok, err := p.confirm("Create the account?")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errBack
		}
		return domain.ReviewStep{Confirmed: true}, nil
	}
	return nil, signup.ErrSubmitted
}

type question struct {
	label, def string
}

func ask(p *prompter, qs []question) ([]string, error) {
	out := make([]string, len(qs))
	for i, q := range qs {
		s, err := p.line(q.label, q.def)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func printDraft(out io.Writer, d domain.SignupDraft) {
	if d.Credentials != nil {
		fmt.Fprintf(out, "  email      %s\n", d.Credentials.Email)
	}
	if d.Profile != nil {
		fmt.Fprintf(out, "  name       %s %s\n", d.Profile.FirstName, d.Profile.LastName)
		fmt.Fprintf(out, "  born       %s\n", d.Profile.BirthDate)
	}
	if d.Running != nil {
		fmt.Fprintf(out, "  pace       %s\n", tui.FormatPace(d.Running.PaceMinPerKm))
		fmt.Fprintf(out, "  distances  %s\n", tui.FormatDistances(d.Running.Distances))
		fmt.Fprintf(out, "  level      %s\n", d.Running.Level)
	}
	if d.Location != nil {
		fmt.Fprintf(out, "  location   %s, %s\n", d.Location.City, d.Location.Country)
	}
	if d.Photos != nil {
		fmt.Fprintf(out, "  photos     %d\n", len(d.Photos.Paths))
	}
}
