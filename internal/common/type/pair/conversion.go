// Released under an MIT license. See LICENSE.

package pair

import (
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
)

// Is returns true if c is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	panic("not a " + name)
}
