package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/core"
)

// Overlay colours.
var (
	overlayBG = core.RGB(20, 24, 40)
	hudFG     = core.ColorBlack
)

// palette holds the resolved world colours.
type palette struct {
	rock      core.Color
	grass     core.Color
	skyTop    core.Color
	skyBottom core.Color
	trail     core.Color
	parts     map[string]core.Color // Keyed by part name prefix
}

func newPalette(d config.RunnerDecor) palette {
	return palette{
		rock:      rgb(d.Rock),
		grass:     rgb(d.Grass),
		skyTop:    rgb(d.SkyTop),
		skyBottom: rgb(d.SkyBottom),
		trail:     rgb(d.Parts.DashTrail),
		parts: map[string]core.Color{
			"head":  rgb(d.Parts.Head),
			"torso": rgb(d.Parts.Torso),
			"arm":   rgb(d.Parts.Arm),
			"leg":   rgb(d.Parts.Leg),
			"shoe":  rgb(d.Parts.Shoe),
		},
	}
}

// part returns the colour for a body part by the prefix before "_".
func (p palette) part(name string) core.Color {
	prefix, _, _ := strings.Cut(name, "_")
	if c, ok := p.parts[prefix]; ok {
		return c
	}
	return core.ColorGray
}

// viewport maps world pixels onto canvas pixels with a uniform scale,
// centring the world when the aspect ratios differ.
type viewport struct {
	scale      float64
	offX, offY float64
}

func newViewport(canvasW, canvasH int, worldW, worldH float64) viewport {
	s := math.Min(float64(canvasW)/worldW, float64(canvasH)/worldH)
	return viewport{
		scale: s,
		offX:  (float64(canvasW) - worldW*s) / 2,
		offY:  (float64(canvasH) - worldH*s) / 2,
	}
}

func (v viewport) point(p core.Point) core.Point {
	return core.Pt(p.X*v.scale+v.offX, p.Y*v.scale+v.offY)
}

func (v viewport) box(b core.Box) core.Box {
	return core.Box{X: b.X*v.scale + v.offX, Y: b.Y*v.scale + v.offY, W: b.W * v.scale, H: b.H * v.scale}
}

func (v viewport) polygon(poly core.Polygon) core.Polygon {
	out := make(core.Polygon, len(poly))
	for i, p := range poly {
		out[i] = v.point(p)
	}
	return out
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if g.canvas == nil || g.canvas.Width() != w || g.canvas.Height() != h*2 {
		g.canvas = core.NewCanvas(w, h)
	}
	cfg := g.session.Config()
	vp := newViewport(g.canvas.Width(), g.canvas.Height(), cfg.Screen.Width, cfg.Screen.Height)

	g.canvas.VerticalGradient(g.palette.skyTop, g.palette.skyBottom)
	f := g.frame
	if f.Phase != PhaseTitle {
		for i := range f.Platforms {
			drawPlatform(g.canvas, vp, &f.Platforms[i], g.palette)
		}
		drawPlayer(g.canvas, vp, f.Player, g.palette, cfg.Player.TrailOffset)
	}
	g.canvas.Blit(dst)

	switch {
	case f.Phase == PhaseTitle:
		drawCenteredMessage(dst, "RAPID RUNNER", "SPACE jump / air dash", "Press SPACE to start")
	case f.Phase == PhaseOver:
		drawCenteredMessage(dst, "GAME OVER!", fmt.Sprintf("Score: %d", f.DisplayScore()), "Press SPACE to restart")
	default:
		dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", f.DisplayScore()), hudFG, core.Color{})
		if g.session.difficulty.IsEnabled() {
			spd := fmt.Sprintf(" Spd: %.1f ", f.Speed)
			dst.DrawTextColor(dst.Width()-len(spd)-2, 0, spd, hudFG, core.Color{})
		}
		if f.Paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	}
}

// drawPlatform draws the rock body, its cracks, the grass strip and blades.
func drawPlatform(c *core.Canvas, vp viewport, p *Platform, pal palette) {
	rock := core.Box{X: p.X, Y: p.Y + p.GrassHeight, W: p.Width, H: p.Height - p.GrassHeight}
	c.FillBox(vp.box(rock), pal.rock)
	for _, l := range p.SurfaceLines {
		c.DrawLine(
			vp.point(core.Pt(p.X+l.X1, p.Y+l.Y)),
			vp.point(core.Pt(p.X+l.X2, p.Y+l.Y)),
			l.Color)
	}

	c.FillBox(vp.box(core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.GrassHeight}), pal.grass)
	for _, b := range p.EdgeBlades {
		root := core.Pt(p.X+b.X, p.Y+p.GrassHeight)
		c.DrawLine(vp.point(root), vp.point(root.Add(b.Lean, -b.Height)), b.Color)
	}
}

// drawPlayer draws the dash trail, then every body part back to front.
func drawPlayer(c *core.Canvas, vp viewport, pv PlayerView, pal palette, trailOffset float64) {
	if pv.Dashing {
		for _, name := range TrailParts {
			if poly, ok := pv.Pose.Part(name); ok {
				c.FillPolygon(vp.polygon(poly.Translate(pv.Origin.X-trailOffset, pv.Origin.Y)), pal.trail)
			}
		}
	}
	for _, name := range DrawOrder {
		if poly, ok := pv.Pose.Part(name); ok {
			c.FillPolygon(vp.polygon(poly.Translate(pv.Origin.X, pv.Origin.Y)), pal.part(name))
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(r, core.Cell{Rune: ' ', FG: core.ColorWhite, BG: overlayBG})
	dst.DrawBox(r)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i*2, l, core.ColorWhite, overlayBG)
	}
}
