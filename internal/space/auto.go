package space

import "fmt"

// DefaultBaseLength is the preferred cell edge used by AutoChunks.
const DefaultBaseLength = 32

// AutoChunks picks chunk counts for a width by height play area.
//
// The cell edge is the greatest common divisor of the two sides when it lies
// within [base/2, 2*base], and base otherwise. One extra chunk is added on an
// axis the cells do not fully cover, so an area smaller than one cell still
// gets a single chunk.
func AutoChunks(width, height, base int) (x, y int, err error) {
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: play area %dx%d", ErrInvalidChunks, width, height)
	}
	if base <= 0 {
		return 0, 0, fmt.Errorf("%w: base length %d", ErrInvalidChunks, base)
	}

	length := gcd(width, height)
	if length == 1 || length < (base+1)/2 || length > 2*base {
		length = base
	}

	x, y = width/length, height/length
	if width > x*length {
		x++
	}
	if height > y*length {
		y++
	}
	return x, y, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
