package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"runmate/internal/tui"
)

func homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Dashboard: top matches, inbox and upcoming runs",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Home.Load(cmd.Context())
			if err != nil {
				return err
			}
			st := tui.DefaultStyles()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Hi %s!\n\n", current.User.FirstName)

			fmt.Fprintln(out, st.Name.Render("Top matches"))
			if len(d.Matches) == 0 {
				fmt.Fprintln(out, "  none right now")
			}
			for _, m := range d.Matches {
				fmt.Fprintf(out, "  %-20s %3.0f%%  %s\n", m.User.DisplayName(), m.Score, m.User.City)
			}

			fmt.Fprintf(out, "\n%s (%d unread)\n", st.Name.Render("Messages"), d.Unread)
			if len(d.Conversations) == 0 {
				fmt.Fprintln(out, "  no conversations yet")
			}
			for _, c := range d.Conversations {
				fmt.Fprintf(out, "  %-20s %s\n", c.Peer.DisplayName(), c.LastMessage)
			}

			fmt.Fprintf(out, "\n%s\n", st.Name.Render("Upcoming runs"))
			if len(d.Upcoming) == 0 {
				fmt.Fprintln(out, "  nothing scheduled")
			}
			for _, e := range d.Upcoming {
				fmt.Fprintf(out, "  %-20s %s  %s\n", e.StartDate, e.Title, e.Location)
			}
			return nil
		}),
	}
}
