package core

import "math"

// Canvas is a colour pixel buffer with two pixels per screen cell vertically.
// Blit packs pixel pairs into half-block characters.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// NewCanvas creates a canvas sized for a screen of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{width: cols, height: rows * 2}
	c.pixels = make([]Color, c.width*c.height)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Set colours one pixel. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// At returns the pixel colour, or the default colour when out of bounds.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Color{}
	}
	return c.pixels[y*c.width+x]
}

// VerticalGradient fills every row with a colour interpolated from top to bottom.
func (c *Canvas) VerticalGradient(top, bottom Color) {
	for y := 0; y < c.height; y++ {
		t := 0.0
		if c.height > 1 {
			t = float64(y) / float64(c.height-1)
		}
		col := Lerp(top, bottom, t)
		for x := 0; x < c.width; x++ {
			c.pixels[y*c.width+x] = col
		}
	}
}

// FillBox fills the pixels whose centres fall inside b.
func (c *Canvas) FillBox(b Box, col Color) {
	x0 := int(math.Ceil(b.X - 0.5))
	x1 := int(math.Ceil(b.Right() - 0.5))
	y0 := int(math.Ceil(b.Y - 0.5))
	y1 := int(math.Ceil(b.Bottom() - 0.5))
	for y := Max(y0, 0); y < Min(y1, c.height); y++ {
		for x := Max(x0, 0); x < Min(x1, c.width); x++ {
			c.pixels[y*c.width+x] = col
		}
	}
}

// FillPolygon fills the pixels whose centres fall inside poly.
// Polygons smaller than a pixel still mark the pixel under their centre.
func (c *Canvas) FillPolygon(poly Polygon, col Color) {
	if len(poly) < 3 {
		return
	}
	b := poly.Bounds()
	x0 := Max(int(math.Floor(b.X)), 0)
	x1 := Min(int(math.Ceil(b.Right())), c.width-1)
	y0 := Max(int(math.Floor(b.Y)), 0)
	y1 := Min(int(math.Ceil(b.Bottom())), c.height-1)

	filled := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if poly.Contains(float64(x)+0.5, float64(y)+0.5) {
				c.pixels[y*c.width+x] = col
				filled = true
			}
		}
	}
	if !filled {
		c.Set(int(b.X+b.W/2), int(b.Y+b.H/2), col)
	}
}

// DrawLine draws a one-pixel line between two points.
func (c *Canvas) DrawLine(a, b Point, col Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.Set(int(math.Floor(a.X)), int(math.Floor(a.Y)), col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.Set(int(math.Floor(a.X+dx*t)), int(math.Floor(a.Y+dy*t)), col)
	}
}

// Blit copies the canvas onto dst using upper half-block characters:
// the foreground is the top pixel, the background the bottom pixel.
func (c *Canvas) Blit(dst *Screen) {
	rows := Min(c.height/2, dst.Height())
	cols := Min(c.width, dst.Width())
	for row := 0; row < rows; row++ {
		for x := 0; x < cols; x++ {
			top := c.pixels[(row*2)*c.width+x]
			bottom := c.pixels[(row*2+1)*c.width+x]
			if top.IsDefault() && bottom.IsDefault() {
				dst.SetCell(x, row, blankCell)
				continue
			}
			dst.SetCell(x, row, Cell{Rune: '▀', FG: top, BG: bottom})
		}
	}
}
