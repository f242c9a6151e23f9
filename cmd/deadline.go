package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seplanner/pkg/store"
)

// deadlineCmd represents the deadline command
var deadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Manage calendar deadlines",
}

var deadlineAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a deadline to the calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		day, _ := cmd.Flags().GetString("day")
		clock, _ := cmd.Flags().GetString("time")

		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("a title is required")
		}
		label, err := composeTimeLabel(day, clock)
		if err != nil {
			return err
		}

		return withStore(func(st *store.Store) error {
			dl, err := st.AddDeadline(strings.TrimSpace(title), label)
			if err != nil {
				return err
			}
			fmt.Printf("Deadline #%d %q (%s) added.\n", dl.ID, dl.Title, dl.TimeLabel)
			return nil
		})
	},
}

var deadlineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all deadlines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			deadlines := st.Deadlines()
			if len(deadlines) == 0 {
				fmt.Println("No deadlines.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tWHEN\t")
			for _, d := range deadlines {
				fmt.Fprintf(w, "%d\t%s\t%s\t\n", d.ID, d.Title, d.TimeLabel)
			}
			w.Flush()
			return nil
		})
	},
}

var deadlineRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a deadline by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid deadline id %q", args[0])
		}
		return withStore(func(st *store.Store) error {
			before := len(st.Deadlines())
			kept, err := st.RemoveDeadline(id)
			if err != nil {
				return err
			}
			if len(kept) == before {
				return fmt.Errorf("no deadline with id %d", id)
			}
			fmt.Printf("Deadline #%d removed.\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deadlineCmd)
	deadlineCmd.AddCommand(deadlineAddCmd)
	deadlineCmd.AddCommand(deadlineListCmd)
	deadlineCmd.AddCommand(deadlineRemoveCmd)

	deadlineAddCmd.Flags().String("title", "", "Deadline title (required)")
	deadlineAddCmd.Flags().String("day", "", "Weekday name, today, tonight or tomorrow (required)")
	deadlineAddCmd.Flags().String("time", "", "Clock time like \"8:00 AM\" (required)")
}
