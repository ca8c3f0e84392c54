// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/type/pair"
)

// Array returns the elements of list as a slice.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Array(list cell.I) []cell.I {
	a := []cell.I{}

	for list != pair.Null {
		a = append(a, pair.Car(list))
		list = pair.Cdr(list)
	}

	return a
}
