package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/games/runner"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run one session without a terminal, driven by the autopilot, and print
how it went. With a fixed --seed the run is reproducible.

Examples:
  runner sim --seed 42
  runner sim --seed 7 --ticks 20000 --difficulty hard
  runner sim --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagConfig, "config", "", configFlagUsage())
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyRunnerPreset(&cfg, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := runner.NewSession(cfg, runner.WithSeed(seed), runner.WithLogger(runner.Logger()))
	if err != nil {
		return err
	}

	dt := 1.0 / float64(max(flagFPS, 1))
	var pilot runner.Autopilot
	ticks := 0
	for ; ticks < flagTicks; ticks++ {
		s.Tick(pilot.Next(s), dt)
		if s.Phase() == runner.PhaseOver {
			break
		}
	}

	f := s.Frame()
	stats := s.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:       %d\n", s.Seed())
	fmt.Fprintf(out, "ticks:      %d\n", ticks)
	fmt.Fprintf(out, "outcome:    %s\n", f.Phase)
	fmt.Fprintf(out, "score:      %d\n", f.DisplayScore())
	fmt.Fprintf(out, "speed:      %.2f\n", s.BaseSpeed())
	fmt.Fprintf(out, "max air:    %.2fs at %.0f ticks/s\n", s.MaxAirTime(), runner.ReachTickRate)
	fmt.Fprintf(out, "platforms:  %d generated, %d fallback, %d recovered\n",
		stats.Generated, stats.Fallbacks, stats.Recovered)
	return nil
}
