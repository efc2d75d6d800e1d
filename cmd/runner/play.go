package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/core"
	"github.com/vovakirdan/rapid-runner/internal/games/runner"
	"github.com/vovakirdan/rapid-runner/internal/platform/tui"
	"github.com/vovakirdan/rapid-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Rapid Runner",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W - Start, jump, air dash (hold for a higher jump)
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot to ~/.runner/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - Constant speed, no ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --config ./my-runner.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", configFlagUsage())
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	runner.SetConfigPath(flagConfig)
	if err := runner.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	// The host reads the hold windows; the game reloads the same file on reset.
	rcfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(runner.ID)
	if err != nil {
		return err
	}

	return tui.Run(game, cfg, tui.Options{
		HoldInitial: time.Duration(rcfg.Input.HoldInitialMs) * time.Millisecond,
		HoldRepeat:  time.Duration(rcfg.Input.HoldRepeatMs) * time.Millisecond,
	})
}
