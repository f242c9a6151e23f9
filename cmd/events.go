package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"seplanner/pkg/catalog"
	"seplanner/pkg/event"
	"seplanner/pkg/ranking"
	"seplanner/pkg/scoring"
	"seplanner/pkg/store"
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse, join and share recommended events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recommended events for your current energy level",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortFlag, _ := cmd.Flags().GetString("sort")
		showAll, _ := cmd.Flags().GetBool("all")

		sortType := ranking.SortType(sortFlag)
		if !sortType.Valid() {
			return fmt.Errorf("unknown sort %q (available: date, commonFriends, distance)", sortFlag)
		}

		return withStore(func(st *store.Store) error {
			bucket := currentBucket(st)
			quote := catalog.QuoteFor(bucket)
			fmt.Printf("%s — %s\n\n", quote.Title, quote.Text)

			friends := catalog.Friends()
			ranked := ranking.Rank(catalog.Candidates(bucket), bucket, friends, sortType)
			visible := ranking.Visible(ranked, showAll)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "SCORE\tTITLE\tWHEN\tWHERE\tWITH\t")
			for _, e := range visible {
				joined := ""
				if st.IsEventJoined(e.Key()) {
					joined = " (joined)"
				}
				fmt.Fprintf(w, "%.2f\t%s%s\t%s\t%s\t%s\t\n",
					scoring.Score(e, bucket, friends),
					e.Title, joined, e.TimeLabel, e.Location,
					strings.Join(e.Attendees, ", "))
			}
			w.Flush()

			if !showAll && len(ranked) > len(visible) {
				fmt.Printf("\n%d more; rerun with --all to see the full list.\n", len(ranked)-len(visible))
			}
			return nil
		})
	},
}

var eventsJoinCmd = &cobra.Command{
	Use:   "join <title>",
	Short: "Sign up for a recommended event",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeLabel, _ := cmd.Flags().GetString("time")
		title := strings.Join(args, " ")
		return withStore(func(st *store.Store) error {
			e, err := findCandidate(st, title, timeLabel)
			if err != nil {
				return err
			}
			if _, err := st.AddEnrolledEvent(e); err != nil {
				return err
			}
			fmt.Printf("Joined %q (%s).\n", e.Title, e.TimeLabel)
			return nil
		})
	},
}

var eventsLeaveCmd = &cobra.Command{
	Use:   "leave <title>",
	Short: "Leave an event you joined",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeLabel, _ := cmd.Flags().GetString("time")
		title := strings.Join(args, " ")
		return withStore(func(st *store.Store) error {
			var match *event.Event
			for _, e := range st.EnrolledEvents() {
				if !strings.EqualFold(e.Title, title) {
					continue
				}
				if timeLabel != "" && e.TimeLabel != timeLabel {
					continue
				}
				if match != nil {
					return fmt.Errorf("several joined events named %q; disambiguate with --time", title)
				}
				found := e
				match = &found
			}
			if match == nil {
				return fmt.Errorf("you have not joined an event named %q", title)
			}
			if _, err := st.RemoveEnrolledEvent(match.Key()); err != nil {
				return err
			}
			fmt.Printf("Left %q (%s).\n", match.Title, match.TimeLabel)
			return nil
		})
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create your own activity and add it to your schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		day, _ := cmd.Flags().GetString("day")
		clock, _ := cmd.Flags().GetString("time")
		location, _ := cmd.Flags().GetString("location")
		description, _ := cmd.Flags().GetString("description")

		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("a title is required")
		}
		label, err := composeTimeLabel(day, clock)
		if err != nil {
			return err
		}

		return withStore(func(st *store.Store) error {
			e := event.Event{
				Title:       strings.TrimSpace(title),
				TimeLabel:   label,
				Location:    strings.TrimSpace(location),
				Description: strings.TrimSpace(description),
			}
			if _, err := st.AddEnrolledEvent(e); err != nil {
				return err
			}
			fmt.Printf("Created %q (%s).\n", e.Title, e.TimeLabel)
			return nil
		})
	},
}

var eventsAdviseCmd = &cobra.Command{
	Use:   "advise <title>",
	Short: "Recommend an event to friends via chat",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetStringSlice("to")
		timeLabel, _ := cmd.Flags().GetString("time")
		if len(to) == 0 {
			return fmt.Errorf("pick at least one friend with --to")
		}
		title := strings.Join(args, " ")

		return withStore(func(st *store.Store) error {
			e, err := findCandidate(st, title, timeLabel)
			if err != nil {
				return err
			}
			known := catalog.Friends()
			for _, name := range to {
				found := false
				for _, f := range known {
					if strings.EqualFold(f, name) {
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("%q is not in your friends list", name)
				}
			}
			text := fmt.Sprintf("Hey! I think you'd enjoy this event: %q at %s on %s.",
				e.Title, e.Location, e.TimeLabel)
			if err := st.AppendConversation(to, text, time.Now()); err != nil {
				return err
			}
			fmt.Printf("Advised %d friend(s) about %q.\n", len(to), e.Title)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsJoinCmd)
	eventsCmd.AddCommand(eventsLeaveCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsAdviseCmd)

	eventsListCmd.Flags().String("sort", "", "Secondary sort: date, commonFriends or distance")
	eventsListCmd.Flags().Bool("all", false, "Show the full ranked list instead of the top 3")
	eventsJoinCmd.Flags().String("time", "", "Time label, when the title alone is ambiguous")
	eventsLeaveCmd.Flags().String("time", "", "Time label, when the title alone is ambiguous")
	eventsAdviseCmd.Flags().String("time", "", "Time label, when the title alone is ambiguous")
	eventsAdviseCmd.Flags().StringSlice("to", nil, "Friend(s) to send the recommendation to")
	eventsCreateCmd.Flags().String("title", "", "Activity title (required)")
	eventsCreateCmd.Flags().String("day", "", "Weekday name, today, tonight or tomorrow (required)")
	eventsCreateCmd.Flags().String("time", "", "Clock time like \"8:00 AM\" (required)")
	eventsCreateCmd.Flags().String("location", "", "Where it happens")
	eventsCreateCmd.Flags().String("description", "", "What it is about")
}
