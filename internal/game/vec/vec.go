// Released under an MIT license. See LICENSE.

// Package vec provides the 2D vector used by the simulation.
package vec

// T (vec) is a 2D vector.
type T struct {
	X, Y float64
}

type vec = T

// New creates a vector from its components.
func New(x, y float64) T {
	return vec{X: x, Y: y}
}

// Sum returns the component-wise sum of a and b.
func Sum(a, b T) T {
	return vec{X: a.X + b.X, Y: a.Y + b.Y}
}
