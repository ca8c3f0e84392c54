// Released under an MIT license. See LICENSE.

package native

import (
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
)

// Is returns true if c is a native.
func Is(c cell.I) bool {
	_, ok := c.(*native)

	return ok
}

// To returns a native if c is a native; Otherwise it panics.
func To(c cell.I) *native {
	if t, ok := c.(*native); ok {
		return t
	}

	panic("not a " + name)
}
