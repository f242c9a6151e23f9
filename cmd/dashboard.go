package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seplanner/pkg/catalog"
	"seplanner/pkg/planner"
	"seplanner/pkg/ranking"
	"seplanner/pkg/store"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard: schedule groupings and top recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		withNudge, _ := cmd.Flags().GetBool("nudge")
		return withStore(func(st *store.Store) error {
			bucket := currentBucket(st)
			quote := catalog.QuoteFor(bucket)
			fmt.Printf("%s — %s\n\n", quote.Title, quote.Text)

			priority, flexible := planner.Dashboard(st, catalog.SeededItems())
			fmt.Println("Keep These:")
			if len(priority) == 0 {
				fmt.Println("  (nothing marked priority)")
			}
			for _, it := range priority {
				fmt.Printf("  ! %s — %s\n", it.Title, it.TimeLabel)
			}
			fmt.Println("Flexible:")
			if len(flexible) == 0 {
				fmt.Println("  (nothing flexible)")
			}
			for _, it := range flexible {
				fmt.Printf("    %s — %s\n", it.Title, it.TimeLabel)
			}

			friends := catalog.Friends()
			ranked := ranking.Rank(catalog.Candidates(bucket), bucket, friends, ranking.SortNone)
			fmt.Println("\nRecommended:")
			for _, e := range ranking.Visible(ranked, false) {
				fmt.Printf("    %s — %s @ %s\n", e.Title, e.TimeLabel, e.Location)
			}

			if withNudge {
				delay := time.Duration(viper.GetInt("dashboard.nudgeseconds")) * time.Second
				var nudger planner.Nudger
				done := make(chan struct{})
				armed := nudger.Start(st, bucket, delay, func(n catalog.Nudge) {
					fmt.Printf("\n%s\n%s\n[%s] / [%s]\n", n.Title, n.Text, n.PrimaryLabel, n.SecondaryLabel)
					close(done)
				})
				if armed {
					defer nudger.Stop()
					select {
					case <-done:
					case <-time.After(delay + time.Second):
					}
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().Bool("nudge", false, "Stay open and show the one-shot reminder prompt")
}
