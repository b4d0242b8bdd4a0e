package geom

import (
	"math"
	"testing"
)

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"unit axes", V(1, 0), V(0, 1), 1},
		{"reversed axes", V(0, 1), V(1, 0), -1},
		{"parallel", V(2, 2), V(1, 1), 0},
		{"general", V(3, 4), V(-2, 5), 23},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Cross(tc.a, tc.b); got != tc.expected {
				t.Errorf("Cross(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(V(0, 0), V(3, 4)); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
	if d := DistanceSq(V(1, 1), V(4, 5)); d != 25 {
		t.Errorf("DistanceSq() = %v, expected 25", d)
	}
}

func TestDirectedDistance(t *testing.T) {
	origin := V(1, 1)
	ref := V(1, 0)

	if d := DirectedDistance(origin, ref, V(4, 1)); d != 3 {
		t.Errorf("DirectedDistance() along ref = %v, expected 3", d)
	}
	if d := DirectedDistance(origin, ref, V(-2, 1)); d != -3 {
		t.Errorf("DirectedDistance() against ref = %v, expected -3", d)
	}
	if d := DirectedDistance(origin, ref, origin); d != 0 {
		t.Errorf("DirectedDistance() at origin = %v, expected 0", d)
	}
}

func TestProjection(t *testing.T) {
	tests := []struct {
		name     string
		dir, o   Vec
		p        Vec
		expected Vec
	}{
		{"onto x axis", V(1, 0), V(0, 0), V(3, 7), V(3, 0)},
		{"onto shifted y axis", V(0, 2), V(5, 0), V(1, 4), V(5, 4)},
		{"onto diagonal", V(1, 1), V(0, 0), V(2, 0), V(1, 1)},
		{"zero direction", V(0, 0), V(2, 3), V(9, 9), V(2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Projection(tc.dir, tc.o, tc.p)
			if Distance(got, tc.expected) > 1e-9 {
				t.Errorf("Projection() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec
		angle    float64
		expected Vec
	}{
		{"quarter turn", V(1, 0), math.Pi / 2, V(0, 1)},
		{"half turn", V(2, 1), math.Pi, V(-2, -1)},
		{"no turn", V(3, 4), 0, V(3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Components land near zero, so compare the absolute error.
			got := Rotate(tc.v, tc.angle)
			if Distance(got, tc.expected) > 1e-12 {
				t.Errorf("Rotate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	c := NewCircle(150, 65, 5)
	expected := NewRect(145, 60, 10, 10)
	if c.Bounds() != expected {
		t.Errorf("Bounds() = %v, expected %v", c.Bounds(), expected)
	}
	if !c.Contains(V(155, 65)) {
		t.Error("Contains() should include the boundary")
	}
	if c.Contains(V(156, 65)) {
		t.Error("Contains() should exclude points outside the radius")
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "edge touching counts",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "corner touching unit squares",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(1, 1, 1, 1),
			expected: true,
		},
		{
			name:     "just apart unit squares",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(1.0001, 1.0001, 1, 1),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "zero size inside",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(3, 3, 0, 0),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if c := r.Center(); c != V(15, 17.5) {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
	if p := r.ClosestPoint(V(0, 30)); p != V(5, 25) {
		t.Errorf("ClosestPoint() = %v, expected (5, 25)", p)
	}

	u := r.Union(NewRect(0, 0, 1, 1))
	if u != NewRect(0, 0, 25, 25) {
		t.Errorf("Union() = %v, expected (0, 0, 25, 25)", u)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindCircle.String() != "circle" || KindRect.String() != "rect" || KindPolygon.String() != "polygon" {
		t.Error("Kind.String() returned an unexpected name")
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("Kind(42).String() = %q, expected \"unknown\"", Kind(42).String())
	}
}

func TestTranslateShape(t *testing.T) {
	d := V(2, -1)

	if got := TranslateShape(NewCircle(1, 1, 3), d).Bounds(); got != NewRect(0, -3, 6, 6) {
		t.Errorf("circle bounds = %+v", got)
	}
	if got := TranslateShape(NewRect(0, 0, 4, 2), d); got != NewRect(2, -1, 4, 2) {
		t.Errorf("rect = %+v", got)
	}
	tri := NewPolygon(V(0, 0), V(1, 0), V(0, 1))
	if got := TranslateShape(tri, d).Bounds(); got != NewRect(2, -1, 1, 1) {
		t.Errorf("polygon bounds = %+v", got)
	}
}
