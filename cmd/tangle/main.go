// Package main provides the tangle CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tangleview/tangle/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagConfig   string
	flagSource   string
	flagDemo     bool
	flagDebugLog string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tangle [source]",
	Short: "Terminal knowledge graph viewer",
	Long: `tangle renders a knowledge base's entity graph as a live
force-directed layout in the terminal.

Run with no arguments to open the viewer on the configured source, or
on a built-in demo graph when nothing is configured. Point it at a JSON
snapshot or a SQLite database; the format is picked by file extension.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runView,
}

func init() {
	_ = godotenv.Load()
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "snapshot .json or sqlite .db to visualize")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "use the built-in demo graph even when a source is configured")
	rootCmd.PersistentFlags().StringVar(&flagDebugLog, "debug-log", "", "append debug logs to this file")
	rootCmd.Version = Version
}

// sourceArg merges the positional source with the --source flag; the
// positional wins.
func sourceArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return flagSource
}

// loadConfig honors --config when given, otherwise the XDG default.
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	return config.Load()
}
