package main

import (
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangleview/tangle/internal/config"
	"github.com/tangleview/tangle/internal/source"
	"github.com/tangleview/tangle/internal/tangleui"
	"github.com/tangleview/tangle/pkg/knowledge"
)

var (
	flagWatch bool
	flagFPS   int
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "reload the source when its file changes")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "frames per second (overrides config)")
	rootCmd.AddCommand(viewCmd)
}

// viewCmd is the explicit spelling of the default action, so scripts can
// say `tangle view` and not break if a subcommand name ever matches a
// source path.
var viewCmd = &cobra.Command{
	Use:   "view [source]",
	Short: "Open the interactive viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	snap, path, err := resolveSource(cfg, sourceArg(args))
	if err != nil {
		return err
	}

	fps := cfg.FrameRate()
	if flagFPS > 0 {
		fps = flagFPS
	}
	srcName := ""
	if path != "" {
		srcName = filepath.Base(path)
	}

	opts := tangleui.Options{
		Snapshot:    snap,
		Source:      srcName,
		SimConfig:   cfg.SimConfig(),
		FPS:         fps,
		LabelBudget: cfg.LabelBudget(),
		Logger:      logger,
	}

	if flagWatch {
		if path == "" {
			return fmt.Errorf("--watch needs a file source, the demo graph has none")
		}
		w, err := source.NewWatcher(path, logger)
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		w.Start()
		defer w.Stop()
		opts.Watcher = w
	}

	logger.Info("starting viewer",
		zap.String("source", path),
		zap.Int("nodes", len(snap.Nodes)),
		zap.Int("edges", len(snap.Edges)),
		zap.Int("fps", fps))

	p := tea.NewProgram(tangleui.NewModel(opts))
	_, err = p.Run()
	return err
}

// resolveSource returns the snapshot to open and the file backing it.
// Precedence: --demo, then the explicit source, then config (with
// TANGLE_SNAPSHOT and TANGLE_DATABASE already folded in), then the demo
// graph. The demo has no backing file and returns an empty path.
func resolveSource(cfg *config.Config, explicit string) (knowledge.Snapshot, string, error) {
	if flagDemo {
		return source.Demo(), "", nil
	}

	path := explicit
	if path == "" {
		path = cfg.Source.Snapshot
	}
	if path == "" {
		path = cfg.Source.Database
	}
	if path == "" {
		return source.Demo(), "", nil
	}

	snap, err := source.Load(path)
	if err != nil {
		return knowledge.Snapshot{}, "", err
	}
	return snap, path, nil
}

// buildLogger writes structured logs to the --debug-log file, or
// discards them. Logging to stderr would scribble over the alt screen.
func buildLogger() (*zap.Logger, error) {
	if flagDebugLog == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{flagDebugLog}
	cfg.ErrorOutputPaths = []string{flagDebugLog}
	return cfg.Build()
}
