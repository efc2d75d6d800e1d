package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rapid-runner/internal/core"
)

// colorPair keys the style cache.
type colorPair struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings. Each program owns
// one, since lipgloss renderers are per output (per SSH session).
type ScreenRenderer struct {
	lg     *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// default renderer for stdout.
func NewScreenRenderer(lg *lipgloss.Renderer) *ScreenRenderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{lg: lg, styles: make(map[colorPair]lipgloss.Style)}
}

func (r *ScreenRenderer) style(p colorPair) lipgloss.Style {
	if st, ok := r.styles[p]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if !p.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(p.fg.Hex()))
	}
	if !p.bg.IsDefault() {
		st = st.Background(lipgloss.Color(p.bg.Hex()))
	}
	r.styles[p] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg.IsDefault() && start.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
