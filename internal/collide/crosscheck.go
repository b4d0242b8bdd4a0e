package collide

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/danmaku/internal/geom"
)

// thinMargin is the gap or overlap below which SAT and GJK may legitimately
// disagree in floating point.
const thinMargin = 1e-6

const maxSamples = 5

// Mismatch is one failed check of a cross-check run.
type Mismatch struct {
	Check string
	A, B  geom.Shape
}

// CrossReport summarizes a randomized self-check of the narrow phase.
type CrossReport struct {
	Pairs       int
	Compared    int // convex pairs decided by both SAT and GJK
	Disagree    int // SAT and GJK differ
	Asymmetric  int // Intersects(a, b) != Intersects(b, a)
	BroadMissed int // narrow hit without overlapping bounds
	Errors      int
	Samples     []Mismatch
}

// OK reports whether every check passed.
func (r CrossReport) OK() bool {
	return r.Disagree == 0 && r.Asymmetric == 0 && r.BroadMissed == 0 && r.Errors == 0
}

func (r *CrossReport) sample(check string, a, b geom.Shape) {
	if len(r.Samples) < maxSamples {
		r.Samples = append(r.Samples, Mismatch{Check: check, A: a, B: b})
	}
}

// CrossCheck runs pairs random shape pairs through both narrow-phase methods.
// Convex pairs must agree unless they are within thinMargin of touching;
// every pair must be symmetric and never hit without overlapping bounds.
func CrossCheck(rng *rand.Rand, pairs int) CrossReport {
	sat := NewTester(MethodSAT, nil)
	gjk := NewTester(MethodGJK, nil)

	var r CrossReport
	for i := 0; i < pairs; i++ {
		r.Pairs++

		pa, pb := randomConvex(rng), randomConvex(rng)
		if math.Abs(separation(pa.Vertices, pb.Vertices)) >= thinMargin {
			r.Compared++
			if satConvex(pa.Vertices, pb.Vertices) != gjkConvex(pa.Vertices, pb.Vertices) {
				r.Disagree++
				r.sample("sat/gjk", pa, pb)
			}
		}

		a, b := randomShape(rng), randomShape(rng)
		for _, t := range []*Tester{sat, gjk} {
			ab, err1 := t.Intersects(a, b)
			ba, err2 := t.Intersects(b, a)
			if err1 != nil || err2 != nil {
				r.Errors++
				r.sample("error", a, b)
				continue
			}
			if ab != ba {
				r.Asymmetric++
				r.sample("symmetry", a, b)
			}
			if ab && !BoundsOverlap(a, b) {
				r.BroadMissed++
				r.sample("broad phase", a, b)
			}
		}
	}
	return r
}

// randomConvex draws squares, rotated triangles, slivers and regular polygons
// in a small box so that about half the pairs overlap.
func randomConvex(rng *rand.Rand) geom.Polygon {
	c := geom.V(rng.Float64()*6, rng.Float64()*6)
	switch rng.Intn(4) {
	case 0:
		size := 0.5 + rng.Float64()*3
		return geom.NewRect(c[0], c[1], size, size).Polygon()
	case 1:
		return geom.RegularPolygon(c, 0.5+rng.Float64()*2, 3, rng.Float64()*2*math.Pi)
	case 2:
		return geom.RotatedRect(c, 4+rng.Float64()*4, 0.05+rng.Float64()*0.1, rng.Float64()*math.Pi)
	default:
		return geom.RegularPolygon(c, 0.5+rng.Float64()*2, 3+rng.Intn(10), rng.Float64()*math.Pi)
	}
}

// randomShape draws any supported shape, concave stars included.
func randomShape(rng *rand.Rand) geom.Shape {
	x, y := rng.Float64()*20, rng.Float64()*20
	switch rng.Intn(4) {
	case 0:
		return geom.NewCircle(x, y, 0.5+rng.Float64()*3)
	case 1:
		return geom.NewRect(x, y, 0.5+rng.Float64()*4, 0.5+rng.Float64()*4)
	case 2:
		return geom.RegularPolygon(geom.V(x, y), 1+rng.Float64()*3, 3+rng.Intn(6), rng.Float64()*math.Pi)
	default:
		return geom.Star(geom.V(x, y), 3, 1.2, 4+rng.Intn(3), rng.Float64()*math.Pi)
	}
}

// separation returns the largest gap between two convex polygons over all
// edge normals, negative when every axis overlaps.
func separation(a, b []geom.Vec) float64 {
	best := math.Inf(-1)
	for _, poly := range [][]geom.Vec{a, b} {
		for i := range poly {
			edge := poly[(i+1)%len(poly)].Sub(poly[i])
			l := math.Sqrt(geom.LenSq(edge))
			if l == 0 {
				continue
			}
			axis := geom.Perp(edge).Mul(1 / l)
			minA, maxA := extent(axis, a)
			minB, maxB := extent(axis, b)
			best = math.Max(best, math.Max(minB-maxA, minA-maxB))
		}
	}
	return best
}

func extent(axis geom.Vec, poly []geom.Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range poly {
		d := v.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
