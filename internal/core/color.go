package core

import "fmt"

// Color is a 24-bit terminal colour.
// The zero value means "use the terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB creates a colour from components, clamping each to [0, 255].
func RGB(r, g, b int) Color {
	return Color{
		R:   uint8(Clamp(r, 0, 255)),
		G:   uint8(Clamp(g, 0, 255)),
		B:   uint8(Clamp(b, 0, 255)),
		set: true,
	}
}

// IsDefault returns true for the zero (terminal default) colour.
func (c Color) IsDefault() bool {
	return !c.set
}

// Hex returns the colour as "#rrggbb", or "" for the default colour.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shade returns the colour with delta added to each component.
func (c Color) Shade(delta int) Color {
	return c.Tint(delta, delta, delta)
}

// Tint returns the colour with per-component deltas applied.
func (c Color) Tint(dr, dg, db int) Color {
	return RGB(int(c.R)+dr, int(c.G)+dg, int(c.B)+db)
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(x, y uint8) int {
		return int(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return RGB(mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B))
}

// Predefined colors for HUD and overlays.
var (
	ColorWhite = RGB(255, 255, 255)
	ColorBlack = RGB(0, 0, 0)
	ColorGray  = RGB(138, 138, 138)
)
