// Released under an MIT license. See LICENSE.

package num

import (
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
)

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic("not a " + name)
}
