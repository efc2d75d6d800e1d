package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/core"
)

// SurfaceLine is a short horizontal crack in the rock body.
// Coordinates are relative to the platform's top-left.
type SurfaceLine struct {
	Y      float64
	X1, X2 float64
	Color  core.Color
}

// EdgeBlade is a grass blade rising from the top of the rock body.
// X is relative to the platform's left edge; Lean shifts the tip.
type EdgeBlade struct {
	X      float64
	Height float64
	Lean   float64
	Color  core.Color
}

// Platform is a scrolling rock slab topped with grass.
type Platform struct {
	X, Y   float64
	Width  float64
	Height float64

	GrassHeight  float64
	SurfaceLines []SurfaceLine
	EdgeBlades   []EdgeBlade

	shouldRemove bool
}

// NewPlatform creates a platform and rolls its decoration from rng.
func NewPlatform(x, y, width float64, cfg config.RunnerConfig, rng *rand.Rand) *Platform {
	h := cfg.Platforms.Height
	p := &Platform{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      h,
		GrassHeight: math.Max(5, h/4),
	}
	p.decorate(cfg.Decor, rng)
	return p
}

func (p *Platform) decorate(d config.RunnerDecor, rng *rand.Rand) {
	rock := rgb(d.Rock)
	grass := rgb(d.Grass)

	if d.LineSpacing > 0 {
		n := int(math.Floor(p.Width / d.LineSpacing))
		p.SurfaceLines = make([]SurfaceLine, 0, n)
		for i := 0; i < n; i++ {
			y := rng.Float64()*(p.Height-p.GrassHeight-5) + p.GrassHeight + 3
			x1 := rng.Float64() * (p.Width - 10)
			x2 := x1 + rng.Float64()*8 + 2
			shade := jitter(rng, d.LineShade)
			p.SurfaceLines = append(p.SurfaceLines, SurfaceLine{
				Y: y, X1: x1, X2: x2,
				Color: rock.Shade(shade),
			})
		}
	}

	if d.BladeSpacing > 0 {
		n := int(math.Floor(p.Width / d.BladeSpacing))
		p.EdgeBlades = make([]EdgeBlade, 0, n)
		for i := 0; i < n; i++ {
			x := rng.Float64() * p.Width
			h := rng.Float64()*5 + 3
			lean := rng.Float64()*2 - 1
			shadeG := jitter(rng, d.BladeShade)
			tint := jitter(rng, d.BladeTint)
			p.EdgeBlades = append(p.EdgeBlades, EdgeBlade{
				X: x, Height: h, Lean: lean,
				Color: grass.Tint(tint, shadeG, tint),
			})
		}
	}
}

// Update scrolls the platform left and flags it once fully off-screen.
func (p *Platform) Update(speed float64) {
	p.X -= speed
	if p.X+p.Width < 0 {
		p.shouldRemove = true
	}
}

// ShouldRemove reports whether the platform has scrolled past the left edge.
func (p *Platform) ShouldRemove() bool { return p.shouldRemove }

// Box returns the collision box.
func (p *Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Right returns the x-coordinate of the right edge.
func (p *Platform) Right() float64 { return p.X + p.Width }

// jitter returns a uniform integer in [-n, n].
func jitter(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(2*n+1) - n
}

func rgb(c [3]int) core.Color {
	return core.RGB(c[0], c[1], c[2])
}
