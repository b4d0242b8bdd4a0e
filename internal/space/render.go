package space

import (
	"math"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/geom"
)

// Viewport maps a world rectangle onto a Cols by Rows character screen.
type Viewport struct {
	Area       geom.Rect
	Cols, Rows int
}

// ToScreen converts a world point into screen cell coordinates. Points
// outside the area map outside the screen and are clipped by the buffer.
func (v Viewport) ToScreen(p geom.Vec) (int, int) {
	x := (p[0] - v.Area.X) * float64(v.Cols) / v.Area.W
	y := (p[1] - v.Area.Y) * float64(v.Rows) / v.Area.H
	return int(math.Floor(x)), int(math.Floor(y))
}

// BoxFor returns the screen cells covered by a world rectangle, at least one
// cell in each direction.
func (v Viewport) BoxFor(r geom.Rect) core.Box {
	x0, y0 := v.ToScreen(geom.V(r.X, r.Y))
	x1, y1 := v.ToScreen(geom.V(r.Right(), r.Bottom()))
	return core.Box{X: x0, Y: y0, W: max(1, x1-x0+1), H: max(1, y1-y0+1)}
}

// Render draws the cell borders and highlights the player cells. Shapes are
// drawn by the caller on top.
func (g *Grid) Render(s *core.Screen, v Viewport) {
	for _, idx := range g.player {
		s.TintBox(v.BoxFor(g.cellRect(idx)), core.ColorPlayerCell)
	}

	for j := 1; j < g.chunksY; j++ {
		_, y := v.ToScreen(geom.V(g.area.X, g.area.Y+float64(j)*g.cellH))
		s.DrawHLine(0, y, v.Cols, '─', core.ColorGrid)
	}
	for i := 1; i < g.chunksX; i++ {
		x, _ := v.ToScreen(geom.V(g.area.X+float64(i)*g.cellW, g.area.Y))
		for y := 0; y < v.Rows; y++ {
			if s.Get(x, y) == '─' {
				s.Plot(x, y, '┼', core.ColorGrid)
				continue
			}
			s.Plot(x, y, '│', core.ColorGrid)
		}
	}
}

// cellRect returns the world rectangle of a cell. The last row and column
// absorb the remainder left by flooring the cell size.
func (g *Grid) cellRect(idx CellIndex) geom.Rect {
	r := geom.Rect{
		X: g.area.X + float64(idx.X)*g.cellW,
		Y: g.area.Y + float64(idx.Y)*g.cellH,
		W: g.cellW,
		H: g.cellH,
	}
	if idx.X == g.chunksX-1 {
		r.W = g.area.Right() - r.X
	}
	if idx.Y == g.chunksY-1 {
		r.H = g.area.Bottom() - r.Y
	}
	return r
}
