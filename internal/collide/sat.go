package collide

import (
	"math"

	"github.com/vovakirdan/danmaku/internal/geom"
)

// satConvex reports whether two convex polygons intersect. Every edge of a and
// then of b yields a candidate axis; the first axis with disjoint intervals
// proves separation. Touching intervals do not separate.
func satConvex(a, b []geom.Vec) bool {
	return !separatedByEdges(a, a, b) && !separatedByEdges(b, a, b)
}

// separatedByEdges tests the axes perpendicular to the edges of poly.
func separatedByEdges(poly, a, b []geom.Vec) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		begin := poly[i]
		edge := poly[(i+1)%n].Sub(begin)
		if geom.LenSq(edge) == 0 {
			// Zero-length edge: no axis, cannot separate.
			continue
		}
		axis := geom.Perp(edge)

		minA, maxA := interval(axis, begin, a)
		minB, maxB := interval(axis, begin, b)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

// interval projects every point onto the line through origin along axis and
// returns the signed extent of the projections measured from origin.
func interval(axis, origin geom.Vec, points []geom.Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		proj := geom.Projection(axis, origin, p)
		d := geom.DirectedDistance(origin, axis, proj)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// satCirclePolygon tests a circle against a convex polygon. The candidate
// axes are the polygon's edge normals plus the axis from the centre to the
// nearest vertex. Intervals are measured from the centre, so the circle always
// projects to [-r, r].
func satCirclePolygon(c geom.Circle, poly []geom.Vec) bool {
	nearest := poly[0]
	best := math.Inf(1)
	for _, v := range poly {
		if d := geom.DistanceSq(c.Center, v); d < best {
			best = d
			nearest = v
		}
	}

	if separatedOnAxis(c, nearest.Sub(c.Center), poly) {
		return false
	}

	n := len(poly)
	for i := 0; i < n; i++ {
		edge := poly[(i+1)%n].Sub(poly[i])
		if separatedOnAxis(c, geom.Perp(edge), poly) {
			return false
		}
	}
	return true
}

func separatedOnAxis(c geom.Circle, axis geom.Vec, poly []geom.Vec) bool {
	if geom.LenSq(axis) == 0 {
		return false
	}
	lo, hi := interval(axis, c.Center, poly)
	return hi < -c.Radius || lo > c.Radius
}
