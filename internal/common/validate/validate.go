// Released under an MIT license. See LICENSE.

// Package validate checks the shape of argument lists passed to natives.
// Unlike most places in the console, a bad shape here is an operator
// mistake, not a programming error, so these return errors rather than
// panicking.
package validate

import (
	"errors"
	"fmt"

	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/type/pair"
)

// Variadic checks that the list actual has at least min elements and
// returns the first max elements along with the remaining list.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				s := Count(min, "argument", "s")

				return nil, nil, fmt.Errorf("expected %s, passed %d", s, i)
			}

			break
		}

		if !pair.Is(actual) {
			return nil, nil, errors.New("expected a proper argument list")
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, nil
}

// Fixed checks that the list actual has between min and max elements
// and returns them.
func Fixed(actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if rest != pair.Null {
		s := Count(max, "argument", "s")

		return nil, fmt.Errorf("expected %s, passed more", s)
	}

	return expected, nil
}

// Count formats n with the label, pluralized when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
