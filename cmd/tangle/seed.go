package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangleview/tangle/internal/report"
	"github.com/tangleview/tangle/internal/source"
)

var flagFrom string

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&flagFrom, "from", "", "seed from this snapshot file instead of the demo graph")
}

var seedCmd = &cobra.Command{
	Use:   "seed <database>",
	Short: "Create and fill a SQLite source",
	Long: `seed writes a graph into a SQLite database that the viewer can
open. By default it writes the built-in demo graph, which is handy for
kicking the tires; --from imports an existing JSON snapshot instead.
Existing contents are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	snap := source.Demo()
	from := "demo graph"
	if flagFrom != "" {
		var err error
		snap, err = source.Load(flagFrom)
		if err != nil {
			return err
		}
		from = flagFrom
	}

	db, err := source.OpenDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	nodes, edges, err := db.Seed(snap)
	if err != nil {
		return err
	}

	report.Banner(args[0])
	fmt.Printf("%s seeded %d nodes, %d edges from %s\n", report.StatusIcon(true), nodes, edges, from)
	return nil
}
