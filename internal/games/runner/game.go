// Package runner implements Rapid Runner, an endless side-scroller where the
// player jumps and air-dashes across procedurally placed platforms.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/core"
	"github.com/vovakirdan/rapid-runner/internal/registry"
)

// ID is the registry identifier.
const ID = "runner"

// Game adapts a Session to the registry.Game interface used by the host.
type Game struct {
	session *Session
	frame   Frame
	runtime core.RuntimeConfig
	canvas  *core.Canvas
	palette palette
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetLogger sets the logger new sessions write diagnostics to.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the logger set by SetLogger.
func Logger() *log.Logger {
	return logger
}

// New creates a new Rapid Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rapid Runner"
}

// Reset loads the config and starts a session on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyRunnerPreset(&cfg, difficultyPreset)

	s, err := NewSession(cfg, WithSeed(runtime.Seed), WithLogger(logger))
	if err != nil {
		logger.Warn("invalid config, using defaults", "err", err)
		s, _ = NewSession(config.DefaultRunnerConfig(), WithSeed(runtime.Seed), WithLogger(logger))
	}

	g.session = s
	g.frame = s.Frame()
	g.palette = newPalette(s.Config().Decor)
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}
	if g.session.Phase() != PhaseRunning {
		// Enter starts from the title screen, R only after a crash.
		if in.Has(core.ActionConfirm) || (in.Has(core.ActionRestart) && g.session.Phase() == PhaseOver) {
			g.session.Reset()
		}
	}

	held := in.IsHeld(core.ActionJump) || in.Has(core.ActionJump)
	g.frame, _ = g.session.Tick(Input{JumpHeld: held}, dt)

	return core.StepResult{State: g.State()}
}

// Frame returns the snapshot from the last step.
func (g *Game) Frame() Frame {
	return g.frame
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.frame.DisplayScore(),
		GameOver: g.frame.Phase == PhaseOver,
		Paused:   g.frame.Paused,
		Title:    g.frame.Phase == PhaseTitle,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
