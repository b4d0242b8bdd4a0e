// Package snapshot draws the state of a running scene, the spatial grid
// included, into a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/geom"
	"github.com/vovakirdan/danmaku/internal/scenes"
)

// Options controls the rendering.
type Options struct {
	Scale    float64 // pixels per world unit, 1 when zero
	ShowGrid bool
}

var (
	colorBackground = color.RGBA{12, 12, 28, 255}
	colorGridLine   = color.RGBA{45, 45, 70, 255}
	colorPlayerCell = color.RGBA{46, 160, 67, 70}
	colorEntity     = color.RGBA{135, 95, 215, 255}
	colorBullet     = color.RGBA{255, 95, 175, 255}
	colorNear       = color.RGBA{255, 215, 0, 255}
	colorPlayer     = color.RGBA{95, 255, 255, 255}
	colorShielded   = color.RGBA{255, 255, 255, 255}
)

// Render draws the runner's current world. The image covers the whole
// screen; the play area is offset by the insets.
func Render(r *scenes.Runner, opts Options) image.Image {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	rt := r.System().Runtime()
	w := int(rt.ScreenW*scale + 0.5)
	h := int(rt.ScreenH*scale + 0.5)

	dc := gg.NewContext(max(1, w), max(1, h))
	dc.SetColor(colorBackground)
	dc.Clear()
	dc.Scale(scale, scale)

	if opts.ShowGrid {
		drawGrid(dc, r)
	}

	sys := r.System()
	arena := r.Arena()
	for _, e := range arena.Entities() {
		fillShape(dc, e.Shape(), colorEntity)
	}
	for _, b := range arena.Bullets() {
		c := colorBullet
		if sys.IsInPlayerCells(b) {
			c = colorNear
		}
		fillShape(dc, b.Shape(), c)
	}
	if p := arena.Player(); p != nil {
		c := colorPlayer
		if core.IsInvincible(p) {
			c = colorShielded
		}
		fillShape(dc, p.Shape(), c)
	}

	return dc.Image()
}

// SavePNG renders the runner and writes the image to path.
func SavePNG(r *scenes.Runner, path string, opts Options) error {
	img := Render(r, opts)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

func drawGrid(dc *gg.Context, r *scenes.Runner) {
	g := r.System().Grid()
	area := g.Area()
	cw, ch := g.CellSize()
	nx, ny := g.Chunks()

	dc.SetColor(colorPlayerCell)
	for _, idx := range g.PlayerCells() {
		x := area.X + float64(idx.X)*cw
		y := area.Y + float64(idx.Y)*ch
		w, h := cw, ch
		// The last row and column absorb the flooring remainder.
		if idx.X == nx-1 {
			w = area.Right() - x
		}
		if idx.Y == ny-1 {
			h = area.Bottom() - y
		}
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}

	dc.SetColor(colorGridLine)
	dc.SetLineWidth(1)
	for i := 1; i < nx; i++ {
		x := area.X + float64(i)*cw
		dc.DrawLine(x, area.Y, x, area.Bottom())
		dc.Stroke()
	}
	for j := 1; j < ny; j++ {
		y := area.Y + float64(j)*ch
		dc.DrawLine(area.X, y, area.Right(), y)
		dc.Stroke()
	}
	dc.DrawRectangle(area.X, area.Y, area.W, area.H)
	dc.Stroke()
}

func fillShape(dc *gg.Context, s geom.Shape, c color.Color) {
	dc.SetColor(c)
	switch v := s.(type) {
	case geom.Circle:
		dc.DrawCircle(v.Center[0], v.Center[1], v.Radius)
	case geom.Rect:
		dc.DrawRectangle(v.X, v.Y, v.W, v.H)
	case geom.Polygon:
		if len(v.Vertices) == 0 {
			return
		}
		dc.MoveTo(v.Vertices[0][0], v.Vertices[0][1])
		for _, p := range v.Vertices[1:] {
			dc.LineTo(p[0], p[1])
		}
		dc.ClosePath()
	default:
		return
	}
	dc.Fill()
}
