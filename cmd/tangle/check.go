package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangleview/tangle/internal/report"
	"github.com/tangleview/tangle/pkg/knowledge"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [source]",
	Short: "Validate a source and report dangling edges",
	Long: `check loads the configured source and reports every edge that
references a missing node. The viewer silently drops these; check makes
them visible so the exporting side can be fixed. Exits non-zero when
dangling edges exist.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, path, err := resolveSource(cfg, sourceArg(args))
	if err != nil {
		return err
	}
	if path == "" {
		path = "demo graph"
	}

	clean, dropped := knowledge.Sanitize(snap)

	report.Banner(path)
	fmt.Printf("%s %d nodes\n", report.StatusIcon(true), len(clean.Nodes))
	fmt.Printf("%s %d edges with both endpoints present\n", report.StatusIcon(true), len(clean.Edges))

	if len(dropped) == 0 {
		fmt.Printf("%s no dangling edges\n", report.StatusIcon(true))
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(dropped))
	for _, d := range dropped {
		rows = append(rows, []string{d.Edge.ID, d.Edge.Source, d.Edge.Target, d.Reason})
	}
	report.Table([]string{"edge", "source", "target", "reason"}, rows)

	return fmt.Errorf("%d dangling edges", len(dropped))
}
