// Package core provides the types shared by the collision engine, the scenes
// and the viewer: collidable objects, runtime configuration, a character
// screen buffer and viewer input actions. It has no Bubble Tea dependency so
// that everything built on it stays pure and testable.
package core

// Box is an integer rectangle in screen cells.
type Box struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate one past the last column.
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate one past the last row.
func (b Box) Bottom() int {
	return b.Y + b.H
}
