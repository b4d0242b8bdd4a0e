package geom

import "math"

// Polygon is a simple polygon given by its vertices in counter-clockwise order.
// Convex polygons are tested directly; concave ones are decomposed into convex
// pieces by the narrow phase first.
type Polygon struct {
	Vertices []Vec
}

// NewPolygon copies the vertices, drops repeated consecutive points and
// reorders them counter-clockwise (positive signed area).
func NewPolygon(vs ...Vec) Polygon {
	out := make([]Vec, 0, len(vs))
	for _, v := range vs {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	p := Polygon{Vertices: out}
	if p.SignedArea() < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return p
}

// Bounds returns the bounding rectangle of the vertices.
func (p Polygon) Bounds() Rect {
	if len(p.Vertices) == 0 {
		return Rect{}
	}
	minX, minY := p.Vertices[0][0], p.Vertices[0][1]
	maxX, maxY := minX, minY
	for _, v := range p.Vertices[1:] {
		minX = math.Min(minX, v[0])
		minY = math.Min(minY, v[1])
		maxX = math.Max(maxX, v[0])
		maxY = math.Max(maxY, v[1])
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Kind returns KindPolygon.
func (Polygon) Kind() Kind { return KindPolygon }

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// Valid reports whether the polygon has at least three vertices.
func (p Polygon) Valid() bool {
	return len(p.Vertices) >= 3
}

// Edge returns the i-th edge, from vertex i to vertex i+1 (wrapping).
func (p Polygon) Edge(i int) (Vec, Vec) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// SignedArea returns the shoelace area, positive for counter-clockwise order.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += Cross(p.Vertices[i], p.Vertices[(i+1)%n])
	}
	return sum / 2
}

// Area returns the absolute area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the average of the vertices.
func (p Polygon) Centroid() Vec {
	var c Vec
	if len(p.Vertices) == 0 {
		return c
	}
	for _, v := range p.Vertices {
		c = c.Add(v)
	}
	return c.Mul(1 / float64(len(p.Vertices)))
}

// IsConvex walks consecutive vertex triples and checks that the cross product
// of successive edges never changes sign. Collinear triples are ignored. The
// total turn must be one full revolution, which rejects self-intersecting
// stars whose turns all share a sign.
func (p Polygon) IsConvex() bool {
	n := len(p.Vertices)
	if n <= 3 {
		return true
	}

	sign := 0
	var turn float64
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		c := p.Vertices[(i+2)%n]
		e0 := b.Sub(a)
		e1 := c.Sub(b)
		cross := Cross(e0, e1)
		turn += math.Atan2(cross, e0.Dot(e1))
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return math.Abs(math.Abs(turn)-2*math.Pi) < 1e-6
}

// IsConcave reports whether the polygon fails the convexity test.
func (p Polygon) IsConcave() bool {
	return !p.IsConvex()
}

// Translate returns a copy moved by d.
func (p Polygon) Translate(d Vec) Polygon {
	out := make([]Vec, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(d)
	}
	return Polygon{Vertices: out}
}

// Rotate returns a copy rotated by angle radians around pivot.
func (p Polygon) Rotate(pivot Vec, angle float64) Polygon {
	out := make([]Vec, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = Rotate(v.Sub(pivot), angle).Add(pivot)
	}
	return Polygon{Vertices: out}
}

// RegularPolygon returns an n-gon inscribed in the circle (center, radius),
// with its first vertex at the given rotation.
func RegularPolygon(center Vec, radius float64, n int, rotation float64) Polygon {
	vs := make([]Vec, n)
	for i := range vs {
		angle := rotation + 2*math.Pi*float64(i)/float64(n)
		vs[i] = center.Add(V(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return NewPolygon(vs...)
}

// Star returns a concave star with the given number of points, alternating
// between the outer and inner radius.
func Star(center Vec, outer, inner float64, points int, rotation float64) Polygon {
	vs := make([]Vec, 2*points)
	for i := range vs {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := rotation + math.Pi*float64(i)/float64(points)
		vs[i] = center.Add(V(r*math.Cos(angle), r*math.Sin(angle)))
	}
	return NewPolygon(vs...)
}

// RotatedRect returns a w×h rectangle centred at center and rotated by angle.
func RotatedRect(center Vec, w, h, angle float64) Polygon {
	hw, hh := w/2, h/2
	corners := []Vec{V(-hw, -hh), V(hw, -hh), V(hw, hh), V(-hw, hh)}
	for i, c := range corners {
		corners[i] = Rotate(c, angle).Add(center)
	}
	return NewPolygon(corners...)
}
