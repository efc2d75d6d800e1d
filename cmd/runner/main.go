// runner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner play            - Play locally
//	runner list            - List available games
//	runner serve           - Start SSH server for remote play
//	runner sim             - Run a headless seeded simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Rapid Runner - an endless runner in your terminal",
	Long: `Rapid Runner is an endless side-scroller: jump between floating
platforms, use the one-time air dash to clear long gaps, and see how far
you get before you fall.

Available commands:
  play     - Play in this terminal
  list     - Show all available games
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation with the autopilot

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222
  runner sim --seed 42 --ticks 10000`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// configFlagUsage describes the --config flag shared by play, serve and sim.
func configFlagUsage() string {
	return "Path to custom runner config (" + strings.Join(config.FormatExtensions(), ", ") + ")"
}

// setupLogging routes game logs to stderr or --log-file. play owns the
// terminal, so it only logs when a file is given.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		out = f
	} else if cmd == playCmd {
		return nil
	}

	runner.SetLogger(log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "runner",
	}))
	return nil
}
