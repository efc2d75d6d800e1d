package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and backs it up if the embed fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: RunnerScreen{
			Width:  800,
			Height: 600,
		},
		Player: RunnerPlayer{
			Width:       30,
			Height:      45,
			DrawPadX:    10,
			DrawPadY:    10,
			StartX:      150,
			StartY:      300,
			StartDrop:   20,
			AnimSpeed:   5,
			TrailOffset: 10,
		},
		Physics: RunnerPhysics{
			Gravity:              0.6,
			JumpStrength:         -14,
			JumpCutoffMultiplier: 3,
			BoostStrength:        -7,
			MaxFallSpeed:         18,
			DashDurationFrames:   20,
			DashSpeedBonus:       5.0,
		},
		Platforms: RunnerPlatforms{
			Height:              25,
			MinWidth:            90,
			MaxWidth:            160,
			StartWidth:          200,
			StartSpeed:          4.0,
			SpeedIncrease:       0.0015,
			MinGapX:             85,
			MaxGapX:             220,
			MinGapY:             -135,
			MaxGapY:             120,
			ReachMargin:         35,
			MaxOnScreen:         12,
			FallbackGapMargin:   20,
			FallbackWidthMargin: 20,
			RecoveryWindow:      30,
		},
		Decor: RunnerDecor{
			LineSpacing:  12,
			BladeSpacing: 4,
			LineShade:    15,
			BladeShade:   20,
			BladeTint:    10,
			Rock:         [3]int{110, 100, 90},
			Grass:        [3]int{0, 150, 0},
			SkyTop:       [3]int{100, 180, 255},
			SkyBottom:    [3]int{220, 240, 255},
			Parts: PartRGBs{
				Head:      [3]int{255, 210, 170},
				Torso:     [3]int{50, 100, 220},
				Arm:       [3]int{50, 100, 220},
				Leg:       [3]int{60, 60, 70},
				Shoe:      [3]int{120, 90, 70},
				DashTrail: [3]int{210, 210, 255},
			},
		},
		Input: RunnerInput{
			HoldInitialMs: 550,
			HoldRepeatMs:  120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				RampMultiplier:  1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	default:
		return nil
	}
}
