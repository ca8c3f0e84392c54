// Released under an MIT license. See LICENSE.

// Package eval reduces a parsed expression against a scope.
//
// Atoms other than symbols evaluate to themselves. Symbols resolve to
// their binding. A list is either one of the special forms quote and
// set, or the application of a native callable. Natives receive their
// argument list as written; they read primitive values out of it and
// must not retain cells past the call.
package eval

import (
	"errors"
	"fmt"

	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/type/native"
	"github.com/ashmeltin/nothing/internal/common/type/pair"
	"github.com/ashmeltin/nothing/internal/common/type/sym"
	"github.com/ashmeltin/nothing/internal/common/validate"
	"github.com/ashmeltin/nothing/internal/script/heap"
	"github.com/ashmeltin/nothing/internal/script/scope"
)

// Eval reduces the expression c against the scope sc.
// Errors are recoverable: the scope and heap remain usable.
func Eval(h *heap.T, sc *scope.T, c cell.I) (cell.I, error) {
	if c == pair.Null {
		return c, nil
	}

	if sym.Is(c) {
		k := sym.To(c).String()

		v, ok := sc.Get(k)
		if !ok {
			return nil, errors.New("unbound symbol " + k)
		}

		return v, nil
	}

	if !pair.Is(c) {
		// Numbers, strings, and natives evaluate to themselves.
		return c, nil
	}

	head := pair.Car(c)
	if !sym.Is(head) {
		return nil, fmt.Errorf("cannot apply %s", head.Name())
	}

	k := sym.To(head).String()
	args := pair.Cdr(c)

	switch k {
	case "quote":
		return quote(args)
	case "set":
		return set(h, sc, args)
	}

	f, ok := sc.Get(k)
	if !ok {
		return nil, errors.New("unbound symbol " + k)
	}

	if !native.Is(f) {
		return nil, fmt.Errorf("%s is not callable", k)
	}

	return native.To(f).Apply(args)
}

func quote(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	return v[0], nil
}

func set(h *heap.T, sc *scope.T, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, fmt.Errorf("set: %w", err)
	}

	if !sym.Is(v[0]) {
		return nil, errors.New("set: expected a symbol to bind")
	}

	value, err := Eval(h, sc, v[1])
	if err != nil {
		return nil, err
	}

	sc.Set(sym.To(v[0]).String(), value)

	return value, nil
}
