package geom

// Kind identifies the concrete variant of a Shape.
type Kind int

const (
	KindCircle Kind = iota
	KindRect
	KindPolygon
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Shape is the closed set of collision shapes: Circle, Rect and Polygon.
// The unexported marker keeps other packages from adding variants, so a type
// switch over the three concrete types is exhaustive.
type Shape interface {
	// Bounds returns the axis-aligned bounding rectangle used by the broad phase.
	Bounds() Rect

	// Kind reports the concrete variant.
	Kind() Kind

	shape()
}

func (Circle) shape()  {}
func (Rect) shape()    {}
func (Polygon) shape() {}

// Circle is a disk with a centre and a radius.
type Circle struct {
	Center Vec
	Radius float64
}

// NewCircle creates a circle centred at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{Center: V(x, y), Radius: r}
}

// Bounds returns (cx-r, cy-r, 2r, 2r).
func (c Circle) Bounds() Rect {
	return Rect{
		X: c.Center[0] - c.Radius,
		Y: c.Center[1] - c.Radius,
		W: 2 * c.Radius,
		H: 2 * c.Radius,
	}
}

// Kind returns KindCircle.
func (Circle) Kind() Kind { return KindCircle }

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Vec) bool {
	return DistanceSq(p, c.Center) <= c.Radius*c.Radius
}

// Translate returns the circle moved by d.
func (c Circle) Translate(d Vec) Circle {
	return Circle{Center: c.Center.Add(d), Radius: c.Radius}
}

// TranslateShape moves any shape by d.
func TranslateShape(s Shape, d Vec) Shape {
	switch v := s.(type) {
	case Circle:
		return v.Translate(d)
	case Rect:
		return v.Translate(d)
	case Polygon:
		return v.Translate(d)
	}
	return s
}
