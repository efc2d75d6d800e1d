package runner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/core"
)

// ReachTickRate converts the air-time estimate between seconds and ticks.
// Reachability assumes 60 ticks per second regardless of the host frame rate.
const ReachTickRate = 60.0

// airTimeSafety scales the air-time estimate down.
const airTimeSafety = 0.9

// Placement is where the generator wants the next platform.
type Placement struct {
	X, Y      float64
	Width     float64
	Fallback  bool // Degenerate input; a safe platform next to the reference
	Recovered bool // The vertical window was empty and a recovery band was used
}

// GeneratorStats counts generator outcomes since creation.
type GeneratorStats struct {
	Generated int
	Fallbacks int
	Recovered int
}

// errDegenerate marks inputs the reachability model cannot handle.
var errDegenerate = errors.New("degenerate generator input")

// Generator places platforms so the next one is reachable from the previous.
type Generator struct {
	screen    config.RunnerScreen
	physics   config.RunnerPhysics
	platforms config.RunnerPlatforms
	rng       *rand.Rand
	stats     GeneratorStats
	lastErr   error
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg config.RunnerConfig, rng *rand.Rand) *Generator {
	return &Generator{
		screen:    cfg.Screen,
		physics:   cfg.Physics,
		platforms: cfg.Platforms,
		rng:       rng,
	}
}

// ScreenBand returns the vertical range platform tops are kept in.
func (g *Generator) ScreenBand() (lo, hi float64) {
	h := g.platforms.Height
	return h * 2, g.screen.Height - h*3
}

func (g *Generator) clampY(y float64) float64 {
	lo, hi := g.ScreenBand()
	return math.Max(lo, math.Min(hi, y))
}

// Next returns a placement to the right of ref. It never fails: degenerate
// input produces a safe fallback placement.
func (g *Generator) Next(ref *Platform, speed, maxAir float64) Placement {
	g.stats.Generated++

	if ref == nil {
		g.stats.Fallbacks++
		g.lastErr = fmt.Errorf("%w: no reference platform", errDegenerate)
		return Placement{
			X:        g.screen.Width,
			Y:        g.clampY(g.screen.Height / 2),
			Width:    g.platforms.MinWidth + g.platforms.FallbackWidthMargin,
			Fallback: true,
		}
	}

	pl, err := g.place(ref, speed, maxAir)
	if err != nil {
		g.stats.Fallbacks++
		g.lastErr = err
		return g.fallback(ref)
	}
	g.lastErr = nil
	if pl.Recovered {
		g.stats.Recovered++
	}
	return pl
}

func (g *Generator) fallback(ref *Platform) Placement {
	return Placement{
		X:        ref.Right() + g.platforms.MinGapX + g.platforms.FallbackGapMargin,
		Y:        g.clampY(ref.Y),
		Width:    g.platforms.MinWidth + g.platforms.FallbackWidthMargin,
		Fallback: true,
	}
}

func (g *Generator) place(ref *Platform, speed, maxAir float64) (Placement, error) {
	if !core.IsFinite(speed) || speed <= 0 {
		return Placement{}, fmt.Errorf("%w: speed %g", errDegenerate, speed)
	}
	if math.IsNaN(maxAir) || maxAir <= 0 {
		return Placement{}, fmt.Errorf("%w: air time %g", errDegenerate, maxAir)
	}
	if !core.IsFinite(ref.X) || !core.IsFinite(ref.Y) || !core.IsFinite(ref.Width) {
		return Placement{}, fmt.Errorf("%w: reference at (%g, %g) width %g", errDegenerate, ref.X, ref.Y, ref.Width)
	}

	pc := g.platforms
	minGap := pc.MinGapX
	maxGap := math.Min(pc.MaxGapX, maxAir*speed*ReachTickRate*1.1)
	if maxGap < minGap {
		maxGap = minGap * 1.2
	}
	gapX := g.rng.Float64()*(maxGap-minGap) + minGap

	// Height of a standard jump by the time it has crossed the gap.
	var frames float64
	if speed > 0.01 {
		frames = gapX / speed
	}
	secs := frames / ReachTickRate
	dy := g.physics.JumpStrength*secs + 0.5*g.physics.Gravity*secs*secs*ReachTickRate
	if !core.IsFinite(dy) {
		return Placement{}, fmt.Errorf("%w: trajectory dy %g", errDegenerate, dy)
	}

	lo := math.Max(ref.Y+pc.MinGapY, ref.Y+dy+pc.ReachMargin)
	hi := math.Min(ref.Y+pc.MaxGapY, ref.Y+pc.MinGapY+pc.MaxWidth*2)

	bandLo, bandHi := g.ScreenBand()
	lo = math.Max(bandLo, lo)
	hi = math.Min(bandHi, hi)

	recovered := false
	if lo > hi {
		recovered = true
		lo = math.Max(bandLo, ref.Y-pc.RecoveryWindow)
		hi = math.Min(bandHi, ref.Y+pc.RecoveryWindow)
		if lo > hi {
			lo = g.screen.Height/2 - 50
			hi = g.screen.Height/2 + 50
		}
	}

	y := g.clampY(g.rng.Float64()*(hi-lo) + lo)
	width := g.rng.Float64()*(pc.MaxWidth-pc.MinWidth) + pc.MinWidth
	x := ref.Right() + gapX

	if !core.IsFinite(x) || !core.IsFinite(y) || !core.IsFinite(width) {
		return Placement{}, fmt.Errorf("%w: placement (%g, %g) width %g", errDegenerate, x, y, width)
	}

	return Placement{X: x, Y: y, Width: width, Recovered: recovered}, nil
}

// Stats returns the outcome counters.
func (g *Generator) Stats() GeneratorStats { return g.stats }

// LastError returns why the most recent placement fell back, or nil.
func (g *Generator) LastError() error { return g.lastErr }

// MaxAirTime estimates, in seconds at ReachTickRate, how long the player can
// stay airborne with a full jump followed by a boost and a fall to the lowest
// reachable platform. The estimate is deliberately rough and scaled by 0.9.
func MaxAirTime(physics config.RunnerPhysics, platforms config.RunnerPlatforms) float64 {
	g := physics.Gravity
	if g <= 0 {
		return math.Inf(1)
	}

	apex := func(v float64) float64 {
		t := 0
		for v < 0 {
			v += g
			t++
		}
		return float64(t) / ReachTickRate
	}

	jumpT := apex(physics.JumpStrength)
	boostT := apex(physics.BoostStrength)

	height := math.Abs(physics.JumpStrength*jumpT+0.5*g*jumpT*jumpT) +
		math.Abs(physics.BoostStrength*boostT+0.5*g*boostT*boostT)

	fall := height + math.Abs(platforms.MinGapY) + platforms.Height
	fallT := math.Sqrt(2 * fall / g)

	return (jumpT + boostT + fallT) * airTimeSafety
}
