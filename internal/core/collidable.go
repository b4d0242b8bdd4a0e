package core

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/danmaku/internal/geom"
)

// Collidable is anything the collision engine can test: bullets, enemies and
// the player. Shape is expected to be expressed in world coordinates.
type Collidable interface {
	ID() uuid.UUID
	Shape() geom.Shape
	// Position is the reference point used by the off-screen check.
	Position() geom.Vec
}

// Sourced is implemented by bullets that remember who fired them.
// A bullet never hits its own source.
type Sourced interface {
	Source() uuid.UUID
}

// Invulnerable is implemented by objects that can temporarily ignore hits.
type Invulnerable interface {
	Invincible() bool
}

// Target is a bitmask of what a bullet may hit.
type Target uint8

const (
	TargetPlayer Target = 1 << iota
	TargetEntities

	TargetAll = TargetPlayer | TargetEntities
)

// Has reports whether all bits of other are set.
func (t Target) Has(other Target) bool {
	return t&other == other
}

// Targeted is implemented by bullets that restrict what they hit.
// Bullets without it hit everything.
type Targeted interface {
	Targets() Target
}

// TargetsOf returns the target mask of c, TargetAll when unspecified.
func TargetsOf(c Collidable) Target {
	if t, ok := c.(Targeted); ok {
		return t.Targets()
	}
	return TargetAll
}

// IsInvincible reports whether c currently ignores hits.
func IsInvincible(c Collidable) bool {
	inv, ok := c.(Invulnerable)
	return ok && inv.Invincible()
}

// SameSource reports whether bullet was fired by target.
func SameSource(bullet, target Collidable) bool {
	s, ok := bullet.(Sourced)
	return ok && s.Source() == target.ID()
}

// Body is a plain Collidable used by scenes and tests.
type Body struct {
	Ident  uuid.UUID
	Form   geom.Shape
	Origin uuid.UUID
	Mask   Target
	Shield bool
}

// NewBody creates a body with a fresh id that targets everything.
func NewBody(shape geom.Shape) *Body {
	return &Body{Ident: uuid.New(), Form: shape, Mask: TargetAll}
}

func (b *Body) ID() uuid.UUID     { return b.Ident }
func (b *Body) Shape() geom.Shape { return b.Form }
func (b *Body) Source() uuid.UUID { return b.Origin }
func (b *Body) Targets() Target   { return b.Mask }
func (b *Body) Invincible() bool  { return b.Shield }

// Position returns the centre of the shape's bounds.
func (b *Body) Position() geom.Vec {
	if b.Form == nil {
		return geom.Vec{}
	}
	return b.Form.Bounds().Center()
}
