package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"runmate/internal/services/billing"
	"runmate/internal/tui"
)

func billingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Premium plans and your subscription",
	}

	plans := &cobra.Command{
		Use:   "plans",
		Short: "List available plans",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			ps, err := appCtx.Billing.Plans(cmd.Context())
			if err != nil {
				return err
			}
			t := tui.NewTable("ID", "NAME", "PRICE", "INTERVAL")
			for _, p := range ps {
				t.AddRow(p.ID, p.Name, billing.FormatPrice(p), p.Interval)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.String())
			return nil
		}),
	}

	subscribe := &cobra.Command{
		Use:   "subscribe <plan-id>",
		Short: "Start a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			sub, err := appCtx.Billing.Subscribe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subscription %s: %s\n", sub.ID, sub.Status)
			if sub.ClientSecret != "" {
				fmt.Fprintf(out, "payment client secret: %s\n", sub.ClientSecret)
			}
			return nil
		}),
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current subscription",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			sub, active, err := appCtx.Billing.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sub.ID == "" {
				fmt.Fprintln(out, "No subscription.")
				return nil
			}
			fmt.Fprintf(out, "plan:   %s\nstatus: %s\n", sub.PlanID, sub.Status)
			if active && !sub.CurrentPeriodEnd.IsZero() {
				fmt.Fprintf(out, "renews: %s\n", sub.CurrentPeriodEnd.Format("2006-01-02"))
			}
			return nil
		}),
	}

	cancel := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the current subscription",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Billing.Cancel(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Subscription canceled.")
			return nil
		}),
	}

	cmd.AddCommand(plans, subscribe, status, cancel)
	return cmd
}
