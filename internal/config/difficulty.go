package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StartSpeed returns the scroll speed a run starts with.
// Speed grows from base to base * (1 + speedMultiplier) with the initial level.
func (d *DifficultyManager) StartSpeed(baseSpeed float64) float64 {
	return baseSpeed * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// SpeedIncrease returns the per-tick speed ramp at the current level.
// Disabled progression (the fixed preset) stops the ramp.
func (d *DifficultyManager) SpeedIncrease(baseIncrease float64, score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	level := d.Level(score, ticks)
	return baseIncrease * (1.0 + level*d.cfg.Scaling.RampMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
