// Package geom provides the shape value types and vector math shared by the
// collision core. Everything here is pure and safe for concurrent use.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec is a 2D point or direction in double precision.
type Vec = mgl64.Vec2

// V creates a vector from its components.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// Sub returns a - b.
func Sub(a, b Vec) Vec {
	return a.Sub(b)
}

// Cross returns the z component of the 3D cross product of a and b.
// Positive when b is counter-clockwise from a.
func Cross(a, b Vec) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func Perp(v Vec) Vec {
	return Vec{-v[1], v[0]}
}

// LenSq returns the squared length of v.
func LenSq(v Vec) float64 {
	return v.Dot(v)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

// DistanceSq returns the squared distance between a and b.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSq(a, b Vec) float64 {
	return LenSq(a.Sub(b))
}

// DirectedDistance returns the distance from origin to p, negated when p lies
// on the opposite side of origin with respect to ref.
func DirectedDistance(origin, ref, p Vec) float64 {
	d := p.Sub(origin)
	dist := math.Hypot(d[0], d[1])
	if d.Dot(ref) < 0 {
		return -dist
	}
	return dist
}

// Projection returns the orthogonal projection of p onto the line that passes
// through lineOrigin with direction dir. A zero direction yields lineOrigin.
func Projection(dir, lineOrigin, p Vec) Vec {
	lenSq := LenSq(dir)
	if lenSq == 0 {
		return lineOrigin
	}
	t := p.Sub(lineOrigin).Dot(dir) / lenSq
	return lineOrigin.Add(dir.Mul(t))
}

// Rotate returns v rotated counter-clockwise by angle radians around the origin.
func Rotate(v Vec, angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v[0]*cos - v[1]*sin, v[0]*sin + v[1]*cos}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
