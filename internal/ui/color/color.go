// Released under an MIT license. See LICENSE.

// Package color provides the flat color type used by console rendering.
package color

// T (color) is an RGBA color with components in [0, 1].
type T struct {
	R, G, B, A float64
}

// New creates a color from its components.
func New(r, g, b, a float64) T {
	return T{R: r, G: g, B: b, A: a}
}
