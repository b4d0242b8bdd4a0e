package collide

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/danmaku/internal/geom"
)

var (
	// ErrUnsupportedShapeCombination is returned when the narrow phase has no
	// rule for a shape pair. It marks a programming error and must not be retried.
	ErrUnsupportedShapeCombination = errors.New("collide: unsupported shape combination")

	// ErrDegeneratePolygon is returned for polygons with fewer than three
	// distinct vertices or no area at all.
	ErrDegeneratePolygon = errors.New("collide: degenerate polygon")
)

// FallbackFunc is consulted for pairs the built-in rules cannot handle.
// It returns ok=false when it has no answer either.
type FallbackFunc func(a, b geom.Shape) (hit bool, ok bool)

// Tester runs the full broad plus narrow phase collision test.
// A Tester holds no per-call state and may be shared between goroutines once
// configured.
type Tester struct {
	// Method selects the polygon algorithm or disables the narrow phase.
	Method Method

	// Fallback, when set, answers pairs that would otherwise fail with
	// ErrUnsupportedShapeCombination.
	Fallback FallbackFunc

	logger   *log.Logger
	warnOnce sync.Once
}

// NewTester creates a tester using the given method. A nil logger means the
// package default logger.
func NewTester(method Method, logger *log.Logger) *Tester {
	if logger == nil {
		logger = log.Default()
	}
	return &Tester{Method: method, logger: logger}
}

var defaultTester = NewTester(MethodSAT, nil)

// Collide runs the broad phase and, if the bounding boxes overlap, the exact
// narrow phase using SAT for polygons.
func Collide(a, b geom.Shape) (bool, error) {
	return defaultTester.Collide(a, b)
}

// Intersects is the exact narrow-phase test without the pretest, using SAT
// for polygons.
func Intersects(a, b geom.Shape) (bool, error) {
	return defaultTester.Intersects(a, b)
}

// PretestOnly is the degraded-accuracy fast path: bounding boxes only.
func PretestOnly(a, b geom.Shape) bool {
	return BoundsOverlap(a, b)
}

// Collide runs the broad phase and then, unless the method is
// MethodPretestOnly, the narrow phase.
func (t *Tester) Collide(a, b geom.Shape) (bool, error) {
	if a == nil || b == nil {
		return false, unsupported(a, b)
	}
	if !BoundsOverlap(a, b) {
		return false, nil
	}
	if t.Method == MethodPretestOnly {
		t.warnOnce.Do(func() {
			t.logger.Warn("detailed collide test is skipped", "method", t.Method)
		})
		return true, nil
	}
	return t.Intersects(a, b)
}

// Intersects dispatches the exact test on the concrete shape pair. The pair is
// ordered circle, rect, polygon first so that every result is symmetric.
func (t *Tester) Intersects(a, b geom.Shape) (bool, error) {
	if a == nil || b == nil {
		return false, unsupported(a, b)
	}
	if a.Kind() > b.Kind() {
		a, b = b, a
	}

	var (
		hit bool
		err error
	)
	switch sa := a.(type) {
	case geom.Circle:
		switch sb := b.(type) {
		case geom.Circle:
			hit = circleCircle(sa, sb)
		case geom.Rect:
			hit = circleRect(sa, sb)
		case geom.Polygon:
			hit, err = t.circlePolygon(sa, sb)
		default:
			err = unsupported(a, b)
		}
	case geom.Rect:
		switch sb := b.(type) {
		case geom.Rect:
			hit = sa.Intersects(sb)
		case geom.Polygon:
			hit, err = t.polygonPolygon(sa.Polygon(), sb)
		default:
			err = unsupported(a, b)
		}
	case geom.Polygon:
		switch sb := b.(type) {
		case geom.Polygon:
			hit, err = t.polygonPolygon(sa, sb)
		default:
			err = unsupported(a, b)
		}
	default:
		err = unsupported(a, b)
	}

	if err != nil && t.Fallback != nil {
		if fhit, ok := t.Fallback(a, b); ok {
			return fhit, nil
		}
	}
	return hit, err
}

// circleCircle reports overlap of two disks; tangent circles intersect.
func circleCircle(a, b geom.Circle) bool {
	r := a.Radius + b.Radius
	return geom.DistanceSq(a.Center, b.Center) <= r*r
}

// circleRect compares the distance from the centre to the nearest point of
// the rectangle against the radius.
func circleRect(c geom.Circle, r geom.Rect) bool {
	nearest := r.ClosestPoint(c.Center)
	return geom.DistanceSq(nearest, c.Center) <= c.Radius*c.Radius
}

func (t *Tester) circlePolygon(c geom.Circle, p geom.Polygon) (bool, error) {
	pieces, err := convexPieces(p)
	if err != nil {
		return false, unsupportedWrap(c, p, err)
	}
	for _, piece := range pieces {
		if satCirclePolygon(c, piece.Vertices) {
			return true, nil
		}
	}
	return false, nil
}

// polygonPolygon tests every convex piece of a against every convex piece of
// b; one overlapping pair is enough.
func (t *Tester) polygonPolygon(a, b geom.Polygon) (bool, error) {
	piecesA, err := convexPieces(a)
	if err != nil {
		return false, unsupportedWrap(a, b, err)
	}
	piecesB, err := convexPieces(b)
	if err != nil {
		return false, unsupportedWrap(a, b, err)
	}

	convex := satConvex
	if t.Method == MethodGJK {
		convex = gjkConvex
	}

	for _, pa := range piecesA {
		for _, pb := range piecesB {
			if !pa.Bounds().Intersects(pb.Bounds()) {
				continue
			}
			if convex(pa.Vertices, pb.Vertices) {
				return true, nil
			}
		}
	}
	return false, nil
}

// convexPieces returns p itself when it is convex, otherwise its decomposition.
func convexPieces(p geom.Polygon) ([]geom.Polygon, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegeneratePolygon, p.Len())
	}
	if p.IsConvex() {
		return []geom.Polygon{p}, nil
	}
	return Decompose(p)
}

func unsupported(a, b geom.Shape) error {
	return fmt.Errorf("%w: %s with %s", ErrUnsupportedShapeCombination, kindName(a), kindName(b))
}

func unsupportedWrap(a, b geom.Shape, err error) error {
	if errors.Is(err, ErrUnsupportedShapeCombination) {
		return fmt.Errorf("%s with %s: %w", kindName(a), kindName(b), err)
	}
	return fmt.Errorf("%w: %s with %s: %w", ErrUnsupportedShapeCombination, kindName(a), kindName(b), err)
}

func kindName(s geom.Shape) string {
	if s == nil {
		return "nil"
	}
	return s.Kind().String()
}
