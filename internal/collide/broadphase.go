package collide

import "github.com/vovakirdan/danmaku/internal/geom"

// BoundsOverlap is the broad-phase pretest: it reports whether the bounding
// rectangles of a and b intersect. A false result guarantees the shapes do not
// collide.
func BoundsOverlap(a, b geom.Shape) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Bounds().Intersects(b.Bounds())
}
