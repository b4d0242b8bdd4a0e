package collide

import "github.com/vovakirdan/danmaku/internal/geom"

// gjkMaxIterations bounds the refinement loop. Convex polygons converge in a
// handful of steps; the cap only guards against floating point cycling.
const gjkMaxIterations = 64

// simplex holds up to three support points of the Minkowski difference A - B,
// oldest first.
type simplex struct {
	pts [3]geom.Vec
	n   int
}

func (s *simplex) push(p geom.Vec) {
	s.pts[s.n] = p
	s.n++
}

func (s *simplex) set(pts ...geom.Vec) {
	s.n = copy(s.pts[:], pts)
}

// gjkConvex reports whether two convex polygons intersect by searching for a
// triangle of support points that encloses the origin.
func gjkConvex(a, b []geom.Vec) bool {
	dir := centroid(a).Sub(centroid(b))
	if geom.LenSq(dir) == 0 {
		dir = geom.V(1, 0)
	}

	var s simplex
	s.push(support(a, b, dir))
	dir = s.pts[0].Mul(-1)
	if geom.LenSq(dir) == 0 {
		return true
	}

	for i := 0; i < gjkMaxIterations; i++ {
		p := support(a, b, dir)
		if p.Dot(dir) < 0 {
			// The furthest point towards the origin falls short of it.
			return false
		}
		s.push(p)
		if s.refine(&dir) {
			return true
		}
	}

	// Not converged: answer with the exact axis test instead of guessing.
	return satConvex(a, b)
}

// refine reduces the simplex to the feature nearest the origin and updates
// the search direction. It returns true once the origin is enclosed.
func (s *simplex) refine(dir *geom.Vec) bool {
	switch s.n {
	case 2:
		return s.line(dir)
	case 3:
		return s.triangle(dir)
	}
	return false
}

// line handles a segment: pts[1] is the newest point a, pts[0] is b.
func (s *simplex) line(dir *geom.Vec) bool {
	a, b := s.pts[1], s.pts[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	t := ab.Dot(ao)
	if t <= 0 {
		s.set(a)
		*dir = ao
		return geom.LenSq(ao) == 0
	}

	if geom.Cross(ab, ao) == 0 {
		if t <= geom.LenSq(ab) {
			// Origin lies on the segment.
			return true
		}
		s.set(b)
		*dir = b.Mul(-1)
		return false
	}

	*dir = towards(geom.Perp(ab), ao)
	return false
}

// triangle handles a full simplex: pts[2] is the newest point a.
func (s *simplex) triangle(dir *geom.Vec) bool {
	a, b, c := s.pts[2], s.pts[1], s.pts[0]
	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	if geom.Cross(ab, ac) == 0 {
		// Collinear support points carry no area; keep the newest edge.
		s.set(b, a)
		return s.line(dir)
	}

	abOut := towards(geom.Perp(ab), ac.Mul(-1))
	if abOut.Dot(ao) > 0 {
		s.set(b, a)
		*dir = abOut
		return false
	}

	acOut := towards(geom.Perp(ac), ab.Mul(-1))
	if acOut.Dot(ao) > 0 {
		s.set(c, a)
		*dir = acOut
		return false
	}

	return true
}

// towards flips v so that it points into the half-plane of target.
func towards(v, target geom.Vec) geom.Vec {
	if v.Dot(target) < 0 {
		return v.Mul(-1)
	}
	return v
}

// support returns the point of A - B furthest along dir.
func support(a, b []geom.Vec, dir geom.Vec) geom.Vec {
	return furthest(a, dir).Sub(furthest(b, dir.Mul(-1)))
}

func furthest(poly []geom.Vec, dir geom.Vec) geom.Vec {
	best := poly[0]
	bestDot := best.Dot(dir)
	for _, v := range poly[1:] {
		if d := v.Dot(dir); d > bestDot {
			best = v
			bestDot = d
		}
	}
	return best
}

func centroid(poly []geom.Vec) geom.Vec {
	var c geom.Vec
	for _, v := range poly {
		c = c.Add(v)
	}
	return c.Mul(1 / float64(len(poly)))
}
