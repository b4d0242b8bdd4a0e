package tui

import (
	"strings"

	"github.com/vovakirdan/danmaku/internal/collide"
	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/space"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are rendered as one run to minimize
// ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.Runs(y, func(text string, c core.Color) {
			sb.WriteString(theme.Style(c).Render(text))
		})
	}
	return sb.String()
}

// glyphs per shape kind
var glyphs = map[geom.Kind]rune{
	geom.KindCircle:  'o',
	geom.KindRect:    '▮',
	geom.KindPolygon: '◆',
}

// DrawShape rasterizes a shape onto the screen: every cell whose centre lies
// inside the shape is plotted, and the cell of the shape's centre always is.
func DrawShape(s *core.Screen, v space.Viewport, shape geom.Shape, c core.Color) {
	if shape == nil {
		return
	}
	r := glyphs[shape.Kind()]
	box := v.BoxFor(shape.Bounds())
	cellW := v.Area.W / float64(v.Cols)
	cellH := v.Area.H / float64(v.Rows)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			center := geom.V(
				v.Area.X+(float64(x)+0.5)*cellW,
				v.Area.Y+(float64(y)+0.5)*cellH,
			)
			if hit, err := collide.Intersects(geom.Circle{Center: center}, shape); err == nil && hit {
				s.Plot(x, y, r, c)
			}
		}
	}

	cx, cy := v.ToScreen(shape.Bounds().Center())
	s.Plot(cx, cy, r, c)
}
