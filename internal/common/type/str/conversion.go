// Released under an MIT license. See LICENSE.

package str

import (
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
)

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic("not a " + name)
}
