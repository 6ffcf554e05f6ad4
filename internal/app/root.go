// Package app contains the Cobra command tree for brandcheck.
package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/huvdesign/brandcheck/internal/config"
	"github.com/huvdesign/brandcheck/internal/logger"
	"github.com/huvdesign/brandcheck/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "brandcheck",
	Short: "Diagnose brand health from a twelve-question self-assessment",
	Long: `brandcheck turns twelve 1-5 answers about a company's brand, its
business phase and a free-text memo into a structured diagnosis: rating,
strengths, weaknesses, contradictions, failure patterns, priority actions,
risks, a success path and phase-specific advice.

Submissions can be stored, edited, exported and re-analyzed, and an
alternative report can be generated with a remote model.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/brandcheck/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// setupOutput disables color when asked to or when stdout is not a terminal.
func setupOutput(cmd *cobra.Command, args []string) error {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if flagNoColor || !tty {
		output.SetNoColor(true)
		color.NoColor = true
	}
	return nil
}

// loadConfig reads the configuration and builds the stderr logger.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	level := logger.ParseLevel(cfg.Log.Level)
	if flagVerbose && level > logger.LevelDebug {
		level = logger.LevelDebug
	}
	if !cfg.Output.Color {
		output.SetNoColor(true)
		color.NoColor = true
	}
	return cfg, logger.New(os.Stderr, level), nil
}
