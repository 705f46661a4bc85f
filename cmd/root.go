package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocoiler/internal/config"
	"github.com/alexiusacademia/gocoiler/internal/version"
	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	envFile string

	// cfg holds the defaults resolved from .env and the environment
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gocoiler",
	Short: "Pipe coil winding calculator",
	Long: `gocoiler - Go Pipe Coil Winding Calculator

A CLI tool for planning the winding of pipe or round profile onto a drum.

This tool helps production engineers:
  - Find how much pipe fits a drum of known size (coil length)
  - Find the drum envelope a known pipe length will occupy (end position)
  - Compare the BB1 (uneven layers) and BB0.5 (even, offset) patterns
  - Run batches of calculations from a YAML or JSON job file

Layers are packed hexagonally: every layer sits ND·√3/2 further out
than the one below it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return setupLogger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, bannerStyle.Render(fmt.Sprintf(
			"gocoiler v%s\nGo Pipe Coil Winding Calculator\n%s ©  %s",
			version.Version, version.Author, version.Year)))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for planning the winding of pipe onto a drum.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Coil length for a given drum envelope")
		fmt.Fprintln(out, "    • End position for a given pipe length")
		fmt.Fprintln(out, "    • BB1 / BB0.5 pattern comparison")
		fmt.Fprintln(out, "    • Layer tables, charts, cross-section drawings")
		fmt.Fprintln(out, "    • Excel and PDF reports, batch job files")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gocoiler --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Invalid input exits with status 1, calculation faults with status 2.
func Execute() {
	err := rootCmd.Execute()
	_ = winding.Logger().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver progress to stderr")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Environment file with COILER_* defaults")
}

func setupLogger() error {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	zcfg := zap.NewDevelopmentConfig()
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	winding.SetLogger(logger)
	return nil
}

func describeError(err error) string {
	switch {
	case winding.IsValidation(err):
		return fmt.Sprintf("Invalid input: %v", err)
	case winding.IsComputation(err):
		return fmt.Sprintf("Calculation fault: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func exitCode(err error) int {
	if winding.IsComputation(err) {
		return 2
	}
	return 1
}
