package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"runmate/internal/domain"
)

func loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := appCtx.Passphrase()
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = newPrompter(cmd).secret("Password"); err != nil {
					return err
				}
			}
			sess, err := appCtx.Auth.Login(cmd.Context(), pass, domain.Credentials{Email: args[0], Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", sess.User.DisplayName())
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := appCtx.Passphrase()
			if err != nil {
				return err
			}
			sess, err := appCtx.Auth.Refresh(cmd.Context(), pass)
			if err != nil {
				return err
			}
			u := sess.User
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", u.DisplayName(), u.Email)
			fmt.Fprintf(out, "id: %s\n", u.ID)
			if u.Subscribed {
				fmt.Fprintln(out, "plan: Runmate Plus")
			}
			return nil
		},
	}
}
