// Package config provides YAML/TOML game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the runner game.
// World units are pixels of a virtual screen; speeds are pixels per tick.
type RunnerConfig struct {
	Screen     RunnerScreen     `yaml:"screen" toml:"screen"`
	Player     RunnerPlayer     `yaml:"player" toml:"player"`
	Physics    RunnerPhysics    `yaml:"physics" toml:"physics"`
	Platforms  RunnerPlatforms  `yaml:"platforms" toml:"platforms"`
	Decor      RunnerDecor      `yaml:"decor" toml:"decor"`
	Input      RunnerInput      `yaml:"input" toml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// RunnerScreen defines the virtual world viewport.
type RunnerScreen struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// RunnerPlayer defines the player's collision box and placement.
type RunnerPlayer struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	DrawPadX    float64 `yaml:"draw_pad_x" toml:"draw_pad_x"` // Extra drawing-surface width
	DrawPadY    float64 `yaml:"draw_pad_y" toml:"draw_pad_y"` // Extra drawing-surface height
	StartX      float64 `yaml:"start_x" toml:"start_x"`
	StartY      float64 `yaml:"start_y" toml:"start_y"`
	StartDrop   float64 `yaml:"start_drop" toml:"start_drop"` // Starting platform top sits this far below StartY
	AnimSpeed   int     `yaml:"anim_speed" toml:"anim_speed"` // Ticks per run frame
	TrailOffset float64 `yaml:"trail_offset" toml:"trail_offset"`
}

// RunnerPhysics defines physics parameters. Negative velocity is upward.
type RunnerPhysics struct {
	Gravity              float64 `yaml:"gravity" toml:"gravity"`
	JumpStrength         float64 `yaml:"jump_strength" toml:"jump_strength"`
	JumpCutoffMultiplier float64 `yaml:"jump_cutoff_multiplier" toml:"jump_cutoff_multiplier"`
	BoostStrength        float64 `yaml:"boost_strength" toml:"boost_strength"`
	MaxFallSpeed         float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	DashDurationFrames   int     `yaml:"dash_duration_frames" toml:"dash_duration_frames"`
	DashSpeedBonus       float64 `yaml:"dash_speed_bonus" toml:"dash_speed_bonus"`
}

// RunnerPlatforms defines platform sizing, scrolling and generator bounds.
// Vertical gaps are relative to the previous platform's top; negative is up.
type RunnerPlatforms struct {
	Height              float64 `yaml:"height" toml:"height"`
	MinWidth            float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth            float64 `yaml:"max_width" toml:"max_width"`
	StartWidth          float64 `yaml:"start_width" toml:"start_width"`
	StartSpeed          float64 `yaml:"start_speed" toml:"start_speed"`
	SpeedIncrease       float64 `yaml:"speed_increase" toml:"speed_increase"`
	MinGapX             float64 `yaml:"min_gap_x" toml:"min_gap_x"`
	MaxGapX             float64 `yaml:"max_gap_x" toml:"max_gap_x"`
	MinGapY             float64 `yaml:"min_gap_y" toml:"min_gap_y"`
	MaxGapY             float64 `yaml:"max_gap_y" toml:"max_gap_y"`
	ReachMargin         float64 `yaml:"reach_margin" toml:"reach_margin"`
	MaxOnScreen         int     `yaml:"max_on_screen" toml:"max_on_screen"`
	FallbackGapMargin   float64 `yaml:"fallback_gap_margin" toml:"fallback_gap_margin"`
	FallbackWidthMargin float64 `yaml:"fallback_width_margin" toml:"fallback_width_margin"`
	RecoveryWindow      float64 `yaml:"recovery_window" toml:"recovery_window"` // Half-height of the inverted-window recovery band
}

// RunnerDecor defines the cosmetic detail density and palette.
type RunnerDecor struct {
	LineSpacing  float64  `yaml:"line_spacing" toml:"line_spacing"`   // One rock line per this many px of width
	BladeSpacing float64  `yaml:"blade_spacing" toml:"blade_spacing"` // One grass blade per this many px of width
	LineShade    int      `yaml:"line_shade" toml:"line_shade"`
	BladeShade   int      `yaml:"blade_shade" toml:"blade_shade"`
	BladeTint    int      `yaml:"blade_tint" toml:"blade_tint"`
	Rock         [3]int   `yaml:"rock" toml:"rock"`
	Grass        [3]int   `yaml:"grass" toml:"grass"`
	SkyTop       [3]int   `yaml:"sky_top" toml:"sky_top"`
	SkyBottom    [3]int   `yaml:"sky_bottom" toml:"sky_bottom"`
	Parts        PartRGBs `yaml:"parts" toml:"parts"`
}

// PartRGBs holds the player palette keyed by body part prefix.
type PartRGBs struct {
	Head      [3]int `yaml:"head" toml:"head"`
	Torso     [3]int `yaml:"torso" toml:"torso"`
	Arm       [3]int `yaml:"arm" toml:"arm"`
	Leg       [3]int `yaml:"leg" toml:"leg"`
	Shoe      [3]int `yaml:"shoe" toml:"shoe"`
	DashTrail [3]int `yaml:"dash_trail" toml:"dash_trail"`
}

// RunnerInput tunes how the terminal host turns key repeats into a held key.
// Terminals report no key releases, so a key counts as held while repeats keep arriving.
type RunnerInput struct {
	HoldInitialMs int `yaml:"hold_initial_ms" toml:"hold_initial_ms"` // Covers the autorepeat delay
	HoldRepeatMs  int `yaml:"hold_repeat_ms" toml:"hold_repeat_ms"`   // Max gap between repeats
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Start speed gain at max difficulty
	RampMultiplier  float64 `yaml:"ramp_multiplier" toml:"ramp_multiplier"`   // Speed ramp gain at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// The empty string means "use config default" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// The fixed preset stops the speed ramp entirely.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports every setting that would make the simulation degenerate.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	check(c.Player.AnimSpeed > 0, "player.anim_speed must be positive, got %d", c.Player.AnimSpeed)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %g", c.Physics.Gravity)
	check(c.Physics.JumpStrength < 0, "physics.jump_strength must be negative (upward), got %g", c.Physics.JumpStrength)
	check(c.Physics.BoostStrength < 0, "physics.boost_strength must be negative (upward), got %g", c.Physics.BoostStrength)
	check(c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %g", c.Physics.MaxFallSpeed)
	check(c.Physics.JumpCutoffMultiplier >= 1, "physics.jump_cutoff_multiplier must be at least 1, got %g", c.Physics.JumpCutoffMultiplier)
	check(c.Physics.DashDurationFrames > 0, "physics.dash_duration_frames must be positive, got %d", c.Physics.DashDurationFrames)
	check(c.Platforms.Height > 0, "platforms.height must be positive, got %g", c.Platforms.Height)
	check(c.Platforms.MinWidth > 0 && c.Platforms.MinWidth <= c.Platforms.MaxWidth,
		"platforms width range invalid: min %g, max %g", c.Platforms.MinWidth, c.Platforms.MaxWidth)
	check(c.Platforms.MinGapX > 0 && c.Platforms.MinGapX <= c.Platforms.MaxGapX,
		"platforms horizontal gap range invalid: min %g, max %g", c.Platforms.MinGapX, c.Platforms.MaxGapX)
	check(c.Platforms.MinGapY <= c.Platforms.MaxGapY,
		"platforms vertical gap range invalid: min %g, max %g", c.Platforms.MinGapY, c.Platforms.MaxGapY)
	check(c.Platforms.StartSpeed > 0, "platforms.start_speed must be positive, got %g", c.Platforms.StartSpeed)
	check(c.Platforms.MaxOnScreen > 1, "platforms.max_on_screen must be greater than 1, got %d", c.Platforms.MaxOnScreen)
	check(c.Platforms.Height*5 < c.Screen.Height, "screen height %g leaves no safe platform band", c.Screen.Height)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
}
