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
	"seplanner/pkg/planner"
	"seplanner/pkg/store"
	"seplanner/pkg/timeparse"
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the week calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict-days")
		return withStore(func(st *store.Store) error {
			grid := planner.BuildGrid(st, catalog.SeededItems(), dayMatchMode(strict), time.Now())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "\t%s\t\n", strings.Join(daysRow(), "\t"))
			for _, hour := range planner.Hours {
				cells := make([]string, len(planner.Days))
				for i, day := range planner.Days {
					cells[i] = renderCell(grid.Cells[planner.Cell{Day: day, Hour24: hour}])
				}
				fmt.Fprintf(w, "%s\t%s\t\n", timeparse.DisplayHour(hour), strings.Join(cells, "\t"))
			}
			w.Flush()

			conflicts := grid.Conflicts()
			if len(conflicts) > 0 {
				fmt.Println()
				for _, c := range planner.TopConflicts(conflicts, 3) {
					fmt.Println("⚠ " + c.Summary())
				}
				if extra := len(conflicts) - 3; extra > 0 {
					fmt.Printf("…and %d more clash(es).\n", extra)
				}
			}
			return nil
		})
	},
}

// conflictsCmd represents the calendar conflicts command
var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "List slots where scheduled items clash",
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict-days")
		return withStore(func(st *store.Store) error {
			grid := planner.BuildGrid(st, catalog.SeededItems(), dayMatchMode(strict), time.Now())
			conflicts := grid.Conflicts()
			if len(conflicts) == 0 {
				fmt.Println("No clashes this week.")
				return nil
			}
			for _, c := range conflicts {
				fmt.Println(c.Summary())
			}
			return nil
		})
	},
}

func daysRow() []string {
	row := make([]string, len(planner.Days))
	copy(row, planner.Days[:])
	return row
}

// renderCell shows the titles in a slot; priority items get a bang
// marker, deadlines a flag.
func renderCell(items []planner.Item) string {
	if len(items) == 0 {
		return "·"
	}
	parts := make([]string, len(items))
	for i, it := range items {
		switch {
		case it.Deadline:
			parts[i] = "⚑" + it.Title
		case it.Variant == event.VariantPriority:
			parts[i] = "!" + it.Title
		default:
			parts[i] = it.Title
		}
	}
	return strings.Join(parts, " / ")
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.AddCommand(conflictsCmd)
	calendarCmd.PersistentFlags().Bool("strict-days", false, "Only match day names as whole words in time labels")
}
