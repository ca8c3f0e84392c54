// Released under an MIT license. See LICENSE.

package console

import (
	"errors"
	"fmt"

	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/interface/literal"
	"github.com/ashmeltin/nothing/internal/common/type/num"
	"github.com/ashmeltin/nothing/internal/common/type/pair"
	"github.com/ashmeltin/nothing/internal/common/type/str"
	"github.com/ashmeltin/nothing/internal/common/validate"
	"github.com/ashmeltin/nothing/internal/game/vec"
)

// Native bindings. Each closes over the console, which borrows the
// host level. They read primitive values out of their argument lists
// and never retain cells past the call.

// (rect-apply-force NAME (X . Y)) applies the force (X, Y) to the body
// named NAME. A missing body is reported on the diagnostic stream and
// is not an error.
func (c *console) rectApplyForce(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, fmt.Errorf("rect-apply-force: %w", err)
	}

	if !str.Is(v[0]) {
		return nil, errors.New("rect-apply-force: expected a body name string")
	}

	name := str.To(v[0]).String()

	force, err := vector(v[1])
	if err != nil {
		return nil, fmt.Errorf("rect-apply-force: %w", err)
	}

	fmt.Fprintln(c.diag, literal.String(args))

	r := c.level.RigidRect(name)
	if r == nil {
		fmt.Fprintf(c.diag, "couldn't find rigid rect %q\n", name)

		return pair.Null, nil
	}

	fmt.Fprintf(c.diag, "applying force (%g, %g) to %q\n", force.X, force.Y, name)
	r.ApplyForce(force)

	return pair.Null, nil
}

// (heap-size) reports the number of live heap cells.
func (c *console) heapSize(args cell.I) (cell.I, error) {
	if _, err := validate.Fixed(args, 0, 0); err != nil {
		return nil, fmt.Errorf("heap-size: %w", err)
	}

	n := c.heap.Size()
	fmt.Fprintf(c.diag, "heap:\t%d cells\n", n)

	return c.heap.Number(float64(n)), nil
}

func vector(c cell.I) (vec.T, error) {
	if !pair.Is(c) || c == pair.Null {
		return vec.T{}, errors.New("expected a force pair (x . y)")
	}

	x := pair.Car(c)
	y := pair.Cdr(c)

	if !num.Is(x) || !num.Is(y) {
		return vec.T{}, errors.New("expected numbers in the force pair")
	}

	return vec.New(num.To(x).Float(), num.To(y).Float()), nil
}
