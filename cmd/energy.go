package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"seplanner/pkg/catalog"
	"seplanner/pkg/store"
)

// energyCmd represents the energy command
var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Manage your self-reported social energy level",
}

var energySetCmd = &cobra.Command{
	Use:   "set <1-5>",
	Short: "Record your current social energy level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil || level < 1 || level > 5 {
			return fmt.Errorf("energy level must be a number from 1 (very low) to 5 (very high)")
		}
		return withStore(func(st *store.Store) error {
			if err := st.SetEnergyLevel(level); err != nil {
				return err
			}
			bucket := catalog.BucketForLevel(level, true)
			fmt.Printf("Energy level set to %d (%s).\n", level, bucket)
			return nil
		})
	},
}

var energyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored energy level and its bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			level, ok := st.EnergyLevel()
			if !ok {
				fmt.Println("No energy level stored. Set one with: seplanner energy set <1-5>")
				return nil
			}
			fmt.Printf("Energy level: %d (%s)\n", level, catalog.BucketForLevel(level, true))
			return nil
		})
	},
}

var energyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored energy level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := st.ClearEnergyLevel(); err != nil {
				return err
			}
			fmt.Println("Energy level cleared.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(energyCmd)
	energyCmd.AddCommand(energySetCmd)
	energyCmd.AddCommand(energyShowCmd)
	energyCmd.AddCommand(energyClearCmd)
}
