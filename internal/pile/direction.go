package pile

import "github.com/alexiusacademia/gopile/internal/soil"

// direction hides which way "deeper" runs for a depth convention.
// BGL levels grow with depth, RL levels shrink.
type direction struct {
	sign float64 // +1 when larger values are deeper
}

func newDirection(c soil.Convention) direction {
	if c == soil.RL {
		return direction{sign: -1}
	}
	return direction{sign: 1}
}

// isShallower reports whether a lies strictly above b
func (d direction) isShallower(a, b float64) bool {
	return d.sign*a < d.sign*b
}

// isDeeper reports whether a lies strictly below b
func (d direction) isDeeper(a, b float64) bool {
	return d.sign*a > d.sign*b
}

func (d direction) shallower(a, b float64) float64 {
	if d.isShallower(b, a) {
		return b
	}
	return a
}

func (d direction) deeper(a, b float64) float64 {
	if d.isDeeper(b, a) {
		return b
	}
	return a
}

// down moves a level by dist towards depth
func (d direction) down(level, dist float64) float64 {
	return level + d.sign*dist
}

// up moves a level by dist towards the ground surface
func (d direction) up(level, dist float64) float64 {
	return level - d.sign*dist
}

// deeperNeighbour returns the index of the next deeper layer in a list
// sorted by ascending level, or -1 when i is the deepest.
func (d direction) deeperNeighbour(i, n int) int {
	j := i + int(d.sign)
	if j < 0 || j >= n {
		return -1
	}
	return j
}
