package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"runmate/internal/domain"
	"runmate/internal/listfilter"
	"runmate/internal/tui"
)

// filterFlags are the list filters shared by races and events.
type filterFlags struct {
	location string
	country  string
	distance float64
	future   bool
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.location, "location", "", "location contains this text")
	cmd.Flags().StringVar(&f.country, "country", "", "exact country")
	cmd.Flags().Float64Var(&f.distance, "distance", 0, "offers this distance in km")
	cmd.Flags().BoolVar(&f.future, "future", false, "only from today on")
}

func (f *filterFlags) criteria(cmd *cobra.Command) listfilter.Criteria {
	c := listfilter.Criteria{Location: f.location, Country: f.country, FutureOnly: f.future}
	if cmd.Flags().Changed("distance") {
		d := f.distance
		c.Distance = &d
	}
	return c
}

// printOptions lists the country and distance values available for
// filtering, as the filter pickers would.
func printOptions[T listfilter.Item](out io.Writer, items []T) {
	if cs := listfilter.Countries(items); len(cs) > 0 {
		fmt.Fprintf(out, "\ncountries: %s\n", strings.Join(cs, ", "))
	}
	if ds := listfilter.DistanceOptions(items); len(ds) > 0 {
		fmt.Fprintf(out, "distances: %s\n", tui.FormatDistances(ds))
	}
}

func racesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "races",
		Short: "Browse official races",
	}

	var f filterFlags
	var options bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List races, soonest first",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			races, err := appCtx.Events.Races(cmd.Context(), f.criteria(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(races) == 0 {
				fmt.Fprintln(out, "No races match.")
				return nil
			}
			t := tui.NewTable("ID", "DATE", "NAME", "LOCATION", "DISTANCES")
			for _, r := range races {
				t.AddRow(string(r.ID), r.StartDate, r.Name, r.Location, tui.FormatDistances(r.Distances))
			}
			fmt.Fprint(out, t.String())
			if options {
				printOptions(out, races)
			}
			return nil
		}),
	}
	f.bind(list)
	list.Flags().BoolVar(&options, "options", false, "also print the available filter values")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one race",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			r, err := appCtx.Events.Race(cmd.Context(), domain.RaceID(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s · %s\n", r.Name, r.StartDate, r.Location)
			if len(r.Distances) > 0 {
				fmt.Fprintf(out, "Distances: %s\n", tui.FormatDistances(r.Distances))
			}
			if r.URL != "" {
				fmt.Fprintln(out, r.URL)
			}
			if md := tui.Markdown(r.Description, 80, ""); md != "" {
				fmt.Fprintf(out, "\n%s\n", md)
			}
			return nil
		}),
	}

	cmd.AddCommand(list, show)
	return cmd
}

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse, join and organise group runs",
	}

	var f filterFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List events, soonest first",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			evs, err := appCtx.Events.Events(cmd.Context(), f.criteria(cmd))
			if err != nil {
				return err
			}
			printEvents(cmd.OutOrStdout(), evs)
			return nil
		}),
	}
	f.bind(list)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			e, err := appCtx.Events.Event(cmd.Context(), domain.EventID(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s · %s\n", e.Title, e.StartDate, e.Location)
			if e.Category != "" {
				fmt.Fprintf(out, "Category: %s\n", e.Category)
			}
			if len(e.Distances) > 0 {
				fmt.Fprintf(out, "Distances: %s\n", tui.FormatDistances(e.Distances))
			}
			fmt.Fprintf(out, "Participants: %d\n", len(e.Participants))
			if md := tui.Markdown(e.Description, 80, ""); md != "" {
				fmt.Fprintf(out, "\n%s\n", md)
			}
			return nil
		}),
	}

	join := &cobra.Command{
		Use:   "join <id>",
		Short: "Join an event",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Events.Join(cmd.Context(), domain.EventID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Joined %s\n", args[0])
			return nil
		}),
	}

	leave := &cobra.Command{
		Use:   "leave <id>",
		Short: "Leave an event",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Events.Leave(cmd.Context(), domain.EventID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Left %s\n", args[0])
			return nil
		}),
	}

	var ne domain.NewEvent
	var distances string
	create := &cobra.Command{
		Use:   "create",
		Short: "Organise a new event",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			ds, err := parseDistances(distances)
			if err != nil {
				return err
			}
			ev := ne
			ev.Distances = ds
			e, err := appCtx.Events.Create(cmd.Context(), ev)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", e.Title, e.ID)
			return nil
		}),
	}
	create.Flags().StringVar(&ne.Title, "title", "", "event title")
	create.Flags().StringVar(&ne.Location, "location", "", "meeting point, e.g. \"Belem, Lisbon (Portugal)\"")
	create.Flags().StringVar(&ne.StartDate, "date", "", "YYYY-MM-DD or RFC 3339 start time")
	create.Flags().StringVar(&distances, "distances", "", "distances in km, comma separated")
	create.Flags().StringVar(&ne.Category, "category", "", "e.g. long-run, intervals")
	create.Flags().StringVar((*string)(&ne.GroupID), "group", "", "organising group id")
	create.Flags().StringVar(&ne.Description, "description", "", "markdown description")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("location")
	_ = create.MarkFlagRequired("date")

	cmd.AddCommand(list, show, join, leave, create)
	return cmd
}

func printEvents(out io.Writer, evs []domain.Event) {
	if len(evs) == 0 {
		fmt.Fprintln(out, "No events match.")
		return
	}
	t := tui.NewTable("ID", "DATE", "TITLE", "LOCATION", "GOING")
	for _, e := range evs {
		t.AddRow(string(e.ID), e.StartDate, e.Title, e.Location, fmt.Sprint(len(e.Participants)))
	}
	fmt.Fprint(out, t.String())
}

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Running clubs",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List groups, yours first",
		Args:  cobra.NoArgs,
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			gs, err := appCtx.Groups.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(gs) == 0 {
				fmt.Fprintln(out, "No groups yet.")
				return nil
			}
			t := tui.NewTable("ID", "NAME", "CITY", "MEMBERS", "")
			for _, g := range gs {
				mark := ""
				if g.IsMember {
					mark = "member"
				}
				t.AddRow(string(g.ID), g.Name, g.City, fmt.Sprint(g.MembersCount), mark)
			}
			fmt.Fprint(out, t.String())
			return nil
		}),
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one group",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			g, err := appCtx.Groups.Show(cmd.Context(), domain.GroupID(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n%d members\n", g.Name, g.City, g.MembersCount)
			if md := tui.Markdown(g.Description, 80, ""); md != "" {
				fmt.Fprintf(out, "\n%s\n", md)
			}
			return nil
		}),
	}

	join := &cobra.Command{
		Use:   "join <id>",
		Short: "Join a group",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Groups.Join(cmd.Context(), domain.GroupID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Joined %s\n", args[0])
			return nil
		}),
	}

	leave := &cobra.Command{
		Use:   "leave <id>",
		Short: "Leave a group",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Groups.Leave(cmd.Context(), domain.GroupID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Left %s\n", args[0])
			return nil
		}),
	}

	var ng domain.NewGroup
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Start a group",
		Args:  cobra.ExactArgs(1),
		RunE: authed(func(cmd *cobra.Command, args []string) error {
			g := ng
			g.Name = args[0]
			created, err := appCtx.Groups.Create(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", created.Name, created.ID)
			return nil
		}),
	}
	create.Flags().StringVar(&ng.City, "city", "", "home city")
	create.Flags().StringVar(&ng.Description, "description", "", "markdown description")

	cmd.AddCommand(list, show, join, leave, create)
	return cmd
}
