// Package main implements the voltflip CLI, an exact-probability
// assistant for 5×5 flip puzzles.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/voltflip/internal/config"
	"github.com/katalvlaran/voltflip/internal/logging"
)

var (
	// Persistent flag values
	cfgPath string
	debug   bool
	noColor bool

	// version information
	version = "dev"

	// Built by setup before any subcommand runs
	cfg    config.Config
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voltflip",
	Short: "Exact-probability assistant for 5×5 flip puzzles",
	Long: `voltflip enumerates every board consistent with a puzzle's row and
column constraints and the cells you have already flipped, then reports
exact per-cell bomb probabilities and expected values.

Use "voltflip play" for the interactive assistant, or "voltflip analyze"
for a one-shot scripted analysis.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/voltflip/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log per-turn solver details")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// setup loads the configuration and builds the logger. Flags override
// the file and environment.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}
	if noColor {
		cfg.NoColor = true
	}
	logger, err = logging.New(cfg.Debug)

	return err
}
