// Released under an MIT license. See LICENSE.

// Package scope provides the console's binding table.
//
// Bindings are stored as an association list inside the expression heap
// so that a collection rooted at the scope traverses them the same way
// it traverses any other expression. The anchor pair is allocated once;
// its car is the association list.
package scope

import (
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/type/list"
	"github.com/ashmeltin/nothing/internal/common/type/pair"
	"github.com/ashmeltin/nothing/internal/common/type/sym"
	"github.com/ashmeltin/nothing/internal/script/heap"
)

// T (scope) maps symbol names to expressions.
type T struct {
	heap *heap.T
	expr cell.I
}

type scope = T

// New creates an empty scope backed by the heap h.
func New(h *heap.T) *T {
	return &scope{
		heap: h,
		expr: h.Cons(pair.Null, pair.Null),
	}
}

// Expr returns the expression holding every binding in the scope s.
// It is the root the heap is collected against.
func (s *scope) Expr() cell.I {
	return s.expr
}

// Get retrieves the value bound to the name k in the scope s.
func (s *scope) Get(k string) (cell.I, bool) {
	for c := pair.Car(s.expr); c != pair.Null; c = pair.Cdr(c) {
		b := pair.Car(c)
		if sym.To(pair.Car(b)).String() == k {
			return pair.Cdr(b), true
		}
	}

	return nil, false
}

// Names returns the name of every binding in the scope s.
func (s *scope) Names() []string {
	bindings := list.Array(pair.Car(s.expr))

	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, sym.To(pair.Car(b)).String())
	}

	return names
}

// Set binds the name k to the cell v in the scope s. An existing
// binding is overwritten in place so that each name is unique and a
// lookup always sees the most recent value.
func (s *scope) Set(k string, v cell.I) {
	for c := pair.Car(s.expr); c != pair.Null; c = pair.Cdr(c) {
		b := pair.Car(c)
		if sym.To(pair.Car(b)).String() == k {
			pair.SetCdr(b, v)

			return
		}
	}

	b := s.heap.Cons(s.heap.Symbol(k), v)
	pair.SetCar(s.expr, s.heap.Cons(b, pair.Car(s.expr)))
}
