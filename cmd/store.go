package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seplanner/pkg/store"
)

// storeCmd represents the store command
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Interact with the seplanner store file",
}

// storeShellCmd represents the store shell command
var storeShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive sqlite shell on the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := storePath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("store file not found: %s", path)
		}

		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the store shell")
		}

		c := exec.Command(sqlitePath, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

// storeStatsCmd represents the store stats command
var storeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print how many entries each persisted collection holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			sizes := st.CollectionSizes()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "COLLECTION\tENTRIES\t")
			for _, key := range []string{
				store.KeyEnrolled,
				store.KeyPriorityMap,
				store.KeyDeadlines,
				store.KeyConversations,
			} {
				fmt.Fprintf(w, "%s\t%d\t\n", key, sizes[key])
			}
			w.Flush()

			if level, ok := st.EnergyLevel(); ok {
				fmt.Printf("\nEnergy level: %d\n", level)
			} else {
				fmt.Println("\nEnergy level: not set")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeShellCmd)
	storeCmd.AddCommand(storeStatsCmd)
}
