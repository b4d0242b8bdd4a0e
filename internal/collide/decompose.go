package collide

import (
	"fmt"
	"math"

	"github.com/vovakirdan/danmaku/internal/geom"
)

// Decompose splits a polygon into convex pieces whose union is exactly the
// original area, without overlap. Convex input is returned as a single piece.
//
// Concave polygons are triangulated by ear clipping and the triangles are then
// merged back together across shared diagonals while the result stays convex
// (Hertel-Mehlhorn), which keeps the piece count low for SAT and GJK.
func Decompose(p geom.Polygon) ([]geom.Polygon, error) {
	p = geom.NewPolygon(p.Vertices...)
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d distinct vertices", ErrDegeneratePolygon, p.Len())
	}
	if p.IsConvex() {
		return []geom.Polygon{p}, nil
	}

	if !isSimple(p.Vertices) {
		return nil, fmt.Errorf("%w: polygon is not simple", ErrUnsupportedShapeCombination)
	}

	tris, err := triangulate(p.Vertices)
	if err != nil {
		return nil, err
	}

	pieces := mergeConvex(tris)
	out := make([]geom.Polygon, len(pieces))
	for i, vs := range pieces {
		out[i] = geom.Polygon{Vertices: vs}
	}
	return out, nil
}

// triangulate ear-clips a counter-clockwise simple polygon.
func triangulate(vs []geom.Vec) ([][]geom.Vec, error) {
	idx := make([]int, len(vs))
	for i := range idx {
		idx[i] = i
	}

	tris := make([][]geom.Vec, 0, len(vs)-2)
	misses := 0
	i := 0
	for len(idx) > 3 {
		n := len(idx)
		prev := vs[idx[(i+n-1)%n]]
		cur := vs[idx[i%n]]
		next := vs[idx[(i+1)%n]]

		cross := geom.Cross(cur.Sub(prev), next.Sub(cur))
		switch {
		case cross == 0:
			// Collinear or spike vertex: removing it leaves the area unchanged.
			idx = remove(idx, i%n)
			misses = 0
		case cross > 0 && isEar(vs, idx, i%n, prev, cur, next):
			tris = append(tris, []geom.Vec{prev, cur, next})
			idx = remove(idx, i%n)
			misses = 0
		default:
			i++
			misses++
		}

		if misses > len(idx) {
			return nil, fmt.Errorf("%w: polygon is not simple", ErrUnsupportedShapeCombination)
		}
	}

	if len(idx) == 3 {
		a, b, c := vs[idx[0]], vs[idx[1]], vs[idx[2]]
		if geom.Cross(b.Sub(a), c.Sub(b)) != 0 {
			tris = append(tris, []geom.Vec{a, b, c})
		}
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("%w: polygon has no area", ErrDegeneratePolygon)
	}
	return tris, nil
}

// isSimple reports whether no two non-adjacent edges touch or cross.
func isSimple(vs []geom.Vec) bool {
	n := len(vs)
	for i := 0; i < n; i++ {
		a0, a1 := vs[i], vs[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsTouch(a0, a1, vs[j], vs[(j+1)%n]) {
				return false
			}
		}
	}
	return true
}

func segmentsTouch(p1, p2, q1, q2 geom.Vec) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

func orientation(a, b, p geom.Vec) float64 {
	return geom.Cross(b.Sub(a), p.Sub(a))
}

// onSegment assumes p is collinear with a and b.
func onSegment(a, b, p geom.Vec) bool {
	return p[0] >= math.Min(a[0], b[0]) && p[0] <= math.Max(a[0], b[0]) &&
		p[1] >= math.Min(a[1], b[1]) && p[1] <= math.Max(a[1], b[1])
}

// isEar reports whether no other remaining vertex lies inside or on the
// triangle (prev, cur, next).
func isEar(vs []geom.Vec, idx []int, at int, prev, cur, next geom.Vec) bool {
	n := len(idx)
	for k := 0; k < n; k++ {
		if k == at || k == (at+n-1)%n || k == (at+1)%n {
			continue
		}
		p := vs[idx[k]]
		if p == prev || p == cur || p == next {
			continue
		}
		if inTriangle(p, prev, cur, next) {
			return false
		}
	}
	return true
}

// inTriangle reports whether p lies inside or on the counter-clockwise
// triangle (a, b, c).
func inTriangle(p, a, b, c geom.Vec) bool {
	return geom.Cross(b.Sub(a), p.Sub(a)) >= 0 &&
		geom.Cross(c.Sub(b), p.Sub(b)) >= 0 &&
		geom.Cross(a.Sub(c), p.Sub(c)) >= 0
}

func remove(idx []int, at int) []int {
	return append(idx[:at], idx[at+1:]...)
}

// mergeConvex repeatedly joins two pieces that share an edge whenever the
// joined polygon is still convex.
func mergeConvex(pieces [][]geom.Vec) [][]geom.Vec {
	for {
		merged := false
	search:
		for i := 0; i < len(pieces); i++ {
			for j := i + 1; j < len(pieces); j++ {
				joined, ok := joinShared(pieces[i], pieces[j])
				if !ok || !(geom.Polygon{Vertices: joined}).IsConvex() {
					continue
				}
				pieces[i] = joined
				pieces = append(pieces[:j], pieces[j+1:]...)
				merged = true
				break search
			}
		}
		if !merged {
			return pieces
		}
	}
}

// joinShared glues a and b along an edge that a walks as (u, v) and b walks
// as (v, u). Both inputs are counter-clockwise, and so is the result.
func joinShared(a, b []geom.Vec) ([]geom.Vec, bool) {
	for i := range a {
		u, v := a[i], a[(i+1)%len(a)]
		for j := range b {
			if b[j] != v || b[(j+1)%len(b)] != u {
				continue
			}
			out := make([]geom.Vec, 0, len(a)+len(b)-2)
			for k := 0; k < len(a); k++ {
				out = append(out, a[(i+1+k)%len(a)])
			}
			for k := 2; k < len(b); k++ {
				out = append(out, b[(j+k)%len(b)])
			}
			return out, true
		}
	}
	return nil, false
}
