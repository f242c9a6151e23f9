package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seplanner/pkg/catalog"
	"seplanner/pkg/event"
	"seplanner/pkg/store"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <priority|flexible> <title>",
	Short: "Reclassify a scheduled event as priority or flexible",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := event.Variant(strings.ToLower(args[0]))
		if !variant.Valid() {
			return fmt.Errorf("classification must be priority or flexible")
		}
		timeLabel, _ := cmd.Flags().GetString("time")
		title := strings.Join(args[1:], " ")

		return withStore(func(st *store.Store) error {
			key, err := resolveScheduledKey(st, title, timeLabel)
			if err != nil {
				return err
			}
			if err := st.SetPriority(key, variant); err != nil {
				return err
			}
			fmt.Printf("%q (%s) is now %s.\n", key.Title, key.TimeLabel, variant)
			return nil
		})
	},
}

// resolveScheduledKey finds an event by title across everything that can
// appear on the calendar: joined events and seeded items.
func resolveScheduledKey(st *store.Store, title, timeLabel string) (event.Key, error) {
	pool := append(st.EnrolledEvents(), catalog.SeededItems()...)
	var matches []event.Key
	seen := make(map[event.Key]bool)
	for _, e := range pool {
		if !strings.EqualFold(e.Title, title) {
			continue
		}
		if timeLabel != "" && e.TimeLabel != timeLabel {
			continue
		}
		if !seen[e.Key()] {
			seen[e.Key()] = true
			matches = append(matches, e.Key())
		}
	}
	switch len(matches) {
	case 0:
		return event.Key{}, fmt.Errorf("no scheduled event named %q", title)
	case 1:
		return matches[0], nil
	default:
		return event.Key{}, fmt.Errorf("several scheduled events named %q; disambiguate with --time", title)
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().String("time", "", "Time label, when the title alone is ambiguous")
}
