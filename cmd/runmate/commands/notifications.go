package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"runmate/internal/services/notifications"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Push notification settings",
	}

	var platform string
	register := &cobra.Command{
		Use:   "register <device-token>",
		Short: "Register a device token for push notifications",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Notifications.Register(cmd.Context(), args[0], platform); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Device registered.")
			return nil
		}),
	}
	register.Flags().StringVar(&platform, "platform", notifications.DefaultPlatform, "device platform (ios, android, cli)")

	cmd.AddCommand(register)
	return cmd
}
