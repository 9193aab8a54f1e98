package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"runmate/internal/domain"
	"runmate/internal/tui"
)

func matchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Suggested running partners",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List matches, best first",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			ms, err := appCtx.Matching.Deck(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(ms) == 0 {
				fmt.Fprintln(out, "No matches right now.")
				return nil
			}
			t := tui.NewTable("ID", "NAME", "SCORE", "CITY", "PACE", "LEVEL")
			for _, m := range ms {
				pace := ""
				if m.User.PaceMinPerKm > 0 {
					pace = tui.FormatPace(m.User.PaceMinPerKm)
				}
				t.AddRow(string(m.ID), m.User.DisplayName(), fmt.Sprintf("%.0f", m.Score), m.User.City, pace, m.User.Level)
			}
			fmt.Fprint(out, t.String())
			return nil
		}),
	}

	deckCmd := &cobra.Command{
		Use:   "deck",
		Short: "Browse matches one card at a time",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			ms, err := appCtx.Matching.Deck(cmd.Context())
			if err != nil {
				return err
			}
			model := tui.NewDeckModel(cmd.Context(), ms, appCtx.Matching)
			_, err = tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		}),
	}

	like := &cobra.Command{
		Use:   "like <id>",
		Short: "Like a match",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Matching.Like(cmd.Context(), domain.MatchID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Liked %s. Say hi with `runmate messages list`.\n", args[0])
			return nil
		}),
	}

	pass := &cobra.Command{
		Use:   "pass <id>",
		Short: "Pass on a match",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Matching.Pass(cmd.Context(), domain.MatchID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Passed on %s\n", args[0])
			return nil
		}),
	}

	cmd.AddCommand(list, deckCmd, like, pass)
	return cmd
}
