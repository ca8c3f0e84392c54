// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all console expression types.
package cell

// I (cell) is the basic unit of storage in the console's expression heap.
type I interface {
	Equal(c I) bool
	Name() string
}
