package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used by the debug renderer.
const (
	ColorDefault Color = iota
	ColorBullet
	ColorPlayer
	ColorEntity
	ColorHit
	ColorPlayerCell
	ColorGrid
	ColorText
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorBullet:
		return "bullet"
	case ColorPlayer:
		return "player"
	case ColorEntity:
		return "entity"
	case ColorHit:
		return "hit"
	case ColorPlayerCell:
		return "player-cell"
	case ColorGrid:
		return "grid"
	case ColorText:
		return "text"
	default:
		return "default"
	}
}
