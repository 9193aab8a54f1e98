package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"runmate/internal/tui"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Find runners by name or city (interactive without a query)",
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				users, err := appCtx.Search.Search(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if len(users) == 0 {
					fmt.Fprintln(out, "No runners found.")
					return nil
				}
				t := tui.NewTable("ID", "NAME", "CITY", "LEVEL")
				for _, u := range users {
					t.AddRow(string(u.ID), u.DisplayName(), u.City, u.Level)
				}
				fmt.Fprint(out, t.String())
				return nil
			}

			model := tui.NewSearchModel(cmd.Context(), appCtx.Search, "")
			final, err := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(tui.SearchModel); ok {
				if u, picked := m.Selected(); picked {
					fmt.Fprintf(out, "%s (%s), %s\n", u.DisplayName(), u.ID, u.City)
				}
			}
			return nil
		}),
	}
}
