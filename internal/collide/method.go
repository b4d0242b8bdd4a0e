// Package collide implements the broad and narrow collision phases: bounding
// box pretests, exact intersection predicates for every supported shape pair,
// SAT and GJK for convex polygons, and convex decomposition of concave ones.
package collide

import "fmt"

// Method selects how polygon pairs are tested.
type Method int

const (
	// MethodSAT uses the separating axis theorem (default).
	MethodSAT Method = iota
	// MethodGJK uses the Gilbert-Johnson-Keerthi algorithm.
	MethodGJK
	// MethodPretestOnly skips the narrow phase and trusts the bounding boxes.
	MethodPretestOnly
)

// String returns the config name of the method.
func (m Method) String() string {
	switch m {
	case MethodSAT:
		return "sat"
	case MethodGJK:
		return "gjk"
	case MethodPretestOnly:
		return "pretest"
	default:
		return "unknown"
	}
}

// ParseMethod converts a config name into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "sat", "SAT", "":
		return MethodSAT, nil
	case "gjk", "GJK":
		return MethodGJK, nil
	case "pretest", "pretest_only", "only_pretest":
		return MethodPretestOnly, nil
	}
	return MethodSAT, fmt.Errorf("collide: unknown method %q", s)
}
