package collide

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/danmaku/internal/geom"
)

func square(x, y, size float64) geom.Polygon {
	return geom.NewPolygon(geom.V(x, y), geom.V(x+size, y), geom.V(x+size, y+size), geom.V(x, y+size))
}

func lShape(x, y float64) geom.Polygon {
	return geom.NewPolygon(
		geom.V(x, y), geom.V(x+2, y), geom.V(x+2, y+1),
		geom.V(x+1, y+1), geom.V(x+1, y+2), geom.V(x, y+2),
	)
}

func TestIntersectsPairs(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geom.Shape
		expected bool
	}{
		{"circles overlapping", geom.NewCircle(0, 0, 2), geom.NewCircle(3, 0, 2), true},
		{"circles tangent", geom.NewCircle(0, 0, 1), geom.NewCircle(2, 0, 1), true},
		{"circles apart", geom.NewCircle(0, 0, 1), geom.NewCircle(2.0001, 0, 1), false},
		{"circle near rect corner", geom.NewCircle(-1, -1, 1), geom.NewRect(0, 0, 4, 4), false},
		{"circle touching rect edge", geom.NewCircle(-1, 2, 1), geom.NewRect(0, 0, 4, 4), true},
		{"circle inside rect", geom.NewCircle(2, 2, 0.5), geom.NewRect(0, 0, 4, 4), true},
		{"rects touching", geom.NewRect(0, 0, 1, 1), geom.NewRect(1, 1, 1, 1), true},
		{"rects apart", geom.NewRect(0, 0, 1, 1), geom.NewRect(1.0001, 1.0001, 1, 1), false},
		{"circle and triangle", geom.NewCircle(0, 0, 1), geom.NewPolygon(geom.V(0.5, 0), geom.V(3, 0), geom.V(3, 3)), true},
		{"circle beyond triangle corner", geom.NewCircle(-1, -1, 1), geom.NewPolygon(geom.V(0, 0), geom.V(3, 0), geom.V(3, 3)), false},
		{"circle in L notch", geom.NewCircle(1.8, 1.8, 0.2), lShape(0, 0), false},
		{"circle on L arm", geom.NewCircle(1.8, 0.5, 0.2), lShape(0, 0), true},
		{"squares overlapping", square(0, 0, 2), square(1, 1, 2), true},
		{"squares sharing an edge", square(0, 0, 1), square(1, 0, 1), true},
		{"squares apart", square(0, 0, 1), square(1.5, 0, 1), false},
		{"square in L notch", square(1.2, 1.2, 0.5), lShape(0, 0), false},
		{"square on L arm", square(1.5, 0.2, 0.5), lShape(0, 0), true},
		{"rect and rotated rect", geom.NewRect(0, 0, 2, 2), geom.RotatedRect(geom.V(3, 1), 2, 2, math.Pi/4), true},
		{"rect clear of diamond", geom.NewRect(0, 0, 1, 1), geom.RotatedRect(geom.V(2.5, 2.5), 1, 1, math.Pi/4), false},
		{"two stars interlocked", geom.Star(geom.V(0, 0), 3, 1, 5, 0), geom.Star(geom.V(3.5, 0), 3, 1, 5, math.Pi), true},
	}

	for _, method := range []Method{MethodSAT, MethodGJK} {
		tester := NewTester(method, nil)
		for _, tc := range tests {
			t.Run(fmt.Sprintf("%s/%s", method, tc.name), func(t *testing.T) {
				got, err := tester.Intersects(tc.a, tc.b)
				if err != nil {
					t.Fatalf("Intersects() error: %v", err)
				}
				if got != tc.expected {
					t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
				}
				rev, err := tester.Intersects(tc.b, tc.a)
				if err != nil {
					t.Fatalf("Intersects() (reversed) error: %v", err)
				}
				if rev != got {
					t.Errorf("Intersects() not symmetric: %v vs %v", got, rev)
				}
			})
		}
	}
}

func TestCollideRunsBroadPhaseFirst(t *testing.T) {
	// Bounds overlap, shapes do not.
	a := geom.NewCircle(0, 0, 1)
	b := geom.NewCircle(1.5, 1.5, 0.5)

	if !PretestOnly(a, b) {
		t.Fatal("PretestOnly() = false, expected bounds to overlap")
	}
	hit, err := Collide(a, b)
	if err != nil {
		t.Fatalf("Collide() error: %v", err)
	}
	if hit {
		t.Error("Collide() = true, expected narrow phase to reject")
	}

	pretest := NewTester(MethodPretestOnly, nil)
	hit, err = pretest.Collide(a, b)
	if err != nil {
		t.Fatalf("Collide() error: %v", err)
	}
	if !hit {
		t.Error("pretest-only Collide() = false, expected broad result")
	}
}

func TestBroadPhaseSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tester := NewTester(MethodSAT, nil)

	for i := 0; i < 500; i++ {
		a := randomShape(rng)
		b := randomShape(rng)
		hit, err := tester.Intersects(a, b)
		if err != nil {
			t.Fatalf("Intersects() error: %v", err)
		}
		if hit && !BoundsOverlap(a, b) {
			t.Fatalf("case %d: narrow phase hit without bounds overlap: %v vs %v", i, a, b)
		}
	}
}

func TestUnsupportedShapes(t *testing.T) {
	tester := NewTester(MethodSAT, nil)
	segment := geom.Polygon{Vertices: []geom.Vec{geom.V(0, 0), geom.V(1, 1)}}
	bowtie := geom.Polygon{Vertices: []geom.Vec{geom.V(0, 0), geom.V(2, 2), geom.V(2, 0), geom.V(0, 2), geom.V(-1, 1)}}

	tests := []struct {
		name string
		a, b geom.Shape
	}{
		{"nil first", nil, geom.NewCircle(0, 0, 1)},
		{"nil second", geom.NewRect(0, 0, 1, 1), nil},
		{"two-vertex polygon", geom.NewCircle(0, 0, 1), segment},
		{"self-intersecting polygon", square(0, 0, 2), bowtie},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tester.Intersects(tc.a, tc.b)
			if !errors.Is(err, ErrUnsupportedShapeCombination) {
				t.Errorf("Intersects() error = %v, expected ErrUnsupportedShapeCombination", err)
			}
		})
	}
}

func TestFallbackHook(t *testing.T) {
	tester := NewTester(MethodSAT, nil)
	segment := geom.Polygon{Vertices: []geom.Vec{geom.V(0, 0), geom.V(1, 1)}}

	calls := 0
	tester.Fallback = func(a, b geom.Shape) (bool, bool) {
		calls++
		return true, true
	}

	hit, err := tester.Intersects(geom.NewCircle(0, 0, 1), segment)
	if err != nil {
		t.Fatalf("Intersects() error: %v", err)
	}
	if !hit || calls != 1 {
		t.Errorf("Intersects() = %v after %d fallback calls, expected true after 1", hit, calls)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in       string
		expected Method
		wantErr  bool
	}{
		{"", MethodSAT, false},
		{"sat", MethodSAT, false},
		{"GJK", MethodGJK, false},
		{"pretest_only", MethodPretestOnly, false},
		{"epa", MethodSAT, true},
	}

	for _, tc := range tests {
		got, err := ParseMethod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMethod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.expected {
			t.Errorf("ParseMethod(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

