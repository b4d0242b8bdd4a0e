// Package scenes contains the synthetic bullet patterns used to exercise and
// benchmark the collision engine. Each scene registers itself with the
// registry on import.
package scenes

import (
	"math"

	"github.com/vovakirdan/danmaku/internal/core"
	"github.com/vovakirdan/danmaku/internal/engine"
	"github.com/vovakirdan/danmaku/internal/geom"
)

// bullet is a moving body. Polygons with spin rotate around their centroid,
// or around pivot when orbit is set.
type bullet struct {
	core.Body
	vel    geom.Vec
	spin   float64
	pivot  geom.Vec
	orbit  bool
	pierce bool // survives hitting a target
	ttl    int  // remaining ticks, 0 means unlimited
}

func newBullet(shape geom.Shape, vel geom.Vec, source *core.Body) *bullet {
	b := &bullet{Body: *core.NewBody(shape), vel: vel}
	if source != nil {
		b.Origin = source.ID()
	}
	return b
}

// move returns the bullet one tick later, or false once its ttl runs out.
// The receiver is left untouched since older snapshots may still hold it.
func (b *bullet) move() (*bullet, bool) {
	n := *b
	if n.ttl > 0 {
		n.ttl--
		if n.ttl == 0 {
			return nil, false
		}
	}

	if p, ok := n.Form.(geom.Polygon); ok && n.spin != 0 {
		pivot := p.Centroid()
		if n.orbit {
			pivot = n.pivot
		}
		n.Form = p.Rotate(pivot, n.spin)
	}
	if n.vel != (geom.Vec{}) {
		n.Form = geom.TranslateShape(n.Form, n.vel)
		n.pivot = n.pivot.Add(n.vel)
	}
	return &n, true
}

// advance moves every scene bullet in the arena, drops the dead and the
// off-screen ones, appends fresh bullets and publishes the result.
func advance(arena *engine.Arena, rt core.RuntimeConfig, fresh ...*bullet) {
	cur := arena.Bullets()
	next := make([]core.Collidable, 0, len(cur)+len(fresh))
	for _, c := range cur {
		b, ok := c.(*bullet)
		if !ok {
			next = append(next, c)
			continue
		}
		b, ok = b.move()
		if !ok {
			continue
		}
		// Orbiting beams may swing their centre off screen and back.
		if !b.orbit && rt.IsOffScreen(b.Position()) {
			continue
		}
		next = append(next, b)
	}
	for _, b := range fresh {
		next = append(next, b)
	}
	arena.SetBullets(next)
}

// polar returns a vector of the given length at angle radians.
func polar(length, angle float64) geom.Vec {
	return geom.V(length*math.Cos(angle), length*math.Sin(angle))
}

// boss creates the hexagonal emitter entity at the top centre of the play area.
func boss(rt core.RuntimeConfig) *core.Body {
	area := rt.PlayArea()
	center := geom.V(area.X+area.W/2, area.Y+area.H/5)
	return core.NewBody(geom.RegularPolygon(center, 24, 6, 0))
}

// spent filters the bullets of a frame's hits down to those that are used up.
func spent(frame engine.Frame) []core.Collidable {
	out := make([]core.Collidable, 0, len(frame.PlayerHits)+len(frame.EntityHits))
	keep := func(c core.Collidable) {
		if b, ok := c.(*bullet); ok && b.pierce {
			return
		}
		out = append(out, c)
	}
	for _, c := range frame.PlayerHits {
		keep(c)
	}
	for _, h := range frame.EntityHits {
		keep(h.Bullet)
	}
	return out
}
