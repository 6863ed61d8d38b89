// Command tender draws genetically synthesized eyes, heads and faces as SVG.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/tender/internal/config"
)

// Genome lengths per subcommand.
const (
	eyeGenes  = 120
	headGenes = 128
	faceGenes = 200
)

type app struct {
	configPath string
	seed       uint64
	preset     string
	workers    int
	verbose    bool

	// logger is built by the root command unless already set.
	logger *zap.Logger
	cfg    config.Config
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tender",
		Short: "Draw genetically synthesized eyes, heads and faces",
		Long: `tender decodes random diploid genomes into eye contours and writes
them as SVG documents.

Settings are read from the built-in preset, an optional YAML file, TENDER_*
environment variables and flags, later sources taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				zc := zap.NewProductionConfig()
				if a.verbose {
					zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				var err error
				a.logger, err = zc.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			return a.loadConfig(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", config.DefaultSeed, "random seed")
	root.PersistentFlags().StringVar(&a.preset, "preset", "default", "eye preset (default, large, small)")
	root.PersistentFlags().IntVar(&a.workers, "workers", 0, "parallel workers, 0 for one per CPU")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEyesCmd(a), newHeadCmd(a), newFaceCmd(a))
	return root
}

// loadConfig resolves the configuration, passing on only the flags the user
// set so that the environment and file are not shadowed by flag defaults.
func (a *app) loadConfig(cmd *cobra.Command) error {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("seed") {
		o.Seed = &a.seed
	}
	if flags.Changed("preset") {
		o.Preset = &a.preset
	}
	if flags.Changed("workers") {
		o.Workers = &a.workers
	}
	cfg, err := config.Load(a.configPath, o)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Uint64("seed", cfg.Seed),
		zap.String("preset", cfg.Preset),
		zap.Int("workers", cfg.Workers))
	return nil
}

// writeFile creates path and fills it with write.
func (a *app) writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.logger.Info("wrote document", zap.String("path", path))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tender:", err)
		stop()
		os.Exit(1)
	}
}
