package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"runmate/internal/app"
	"runmate/internal/domain"
	"runmate/internal/logging"
)

var (
	home       string
	passphrase string
	apiURL     string
	verbose    bool
	appCtx     *app.App
	current    domain.Session // set by authed
)

// Execute runs the CLI until completion or interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "runmate",
		Short:         "Find running partners, races and group runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if err := app.LoadEnv(home); err != nil {
				return err
			}

			cfg, err := app.Load(filepath.Join(home, app.ConfigFile))
			if err != nil {
				return err
			}
			cfg.Home = home
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}

			logger, err := logging.New(logging.Options{
				Level:   cfg.Logging.Level,
				JSON:    cfg.Logging.JSON,
				Verbose: verbose,
			})
			if err != nil {
				return err
			}
			appCtx, err = app.New(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.runmate)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "backend base URL (e.g. http://127.0.0.1:8080/api/v1)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging to stderr")

	root.AddCommand(
		loginCmd(), logoutCmd(), whoamiCmd(),
		signupCmd(),
		homeCmd(),
		racesCmd(), eventsCmd(), groupsCmd(),
		matchesCmd(),
		messagesCmd(), unreadCmd(),
		searchCmd(),
		profileCmd(),
		billingCmd(),
		notificationsCmd(),
	)
	return root
}

// authed wraps a RunE so it only runs with a restored session.
func authed(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := appCtx.RequireSession()
		if err != nil {
			return err
		}
		current = sess
		return run(cmd, args)
	}
}
