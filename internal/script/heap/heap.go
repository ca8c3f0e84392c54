// Released under an MIT license. See LICENSE.

// Package heap provides the console's expression heap.
//
// Every cell used by the console's scripting environment is allocated
// through a heap, which tracks ownership and reclaims cells that are no
// longer reachable from an explicit root. Collection is non-incremental
// and assumes cooperative rooting: any cell that must survive a
// collection has to be reachable from the root when Collect is called.
package heap

import (
	"github.com/zephyrtronium/contains"

	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/type/native"
	"github.com/ashmeltin/nothing/internal/common/type/num"
	"github.com/ashmeltin/nothing/internal/common/type/pair"
	"github.com/ashmeltin/nothing/internal/common/type/str"
	"github.com/ashmeltin/nothing/internal/common/type/sym"
)

// T (heap) owns a set of cells and reclaims the unreachable ones.
type T struct {
	cells map[cell.I]uintptr
	next  uintptr
}

type heap = T

// New creates an empty heap.
func New() *T {
	return &heap{cells: map[cell.I]uintptr{}}
}

// Cons allocates a pair with the head h and the tail t.
func (h *heap) Cons(head, tail cell.I) cell.I {
	return h.adopt(pair.Cons(head, tail))
}

// Native allocates a host callable labeled with the name it is bound under.
func (h *heap) Native(label string, fn native.Func) cell.I {
	return h.adopt(native.New(label, fn))
}

// Number allocates a number cell.
func (h *heap) Number(f float64) cell.I {
	return h.adopt(num.New(f))
}

// String allocates a string cell.
func (h *heap) String(v string) cell.I {
	return h.adopt(str.New(v))
}

// Symbol allocates a symbol cell. Interned symbols are shared between
// heaps but tracked separately by each.
func (h *heap) Symbol(v string) cell.I {
	return h.adopt(sym.New(v))
}

// Size returns the number of cells currently owned by the heap.
func (h *heap) Size() int {
	return len(h.cells)
}

// Collect reclaims every cell not reachable from root. Reachability
// follows the car and cdr of each pair. The empty list is a shared
// constant and never owned by a heap.
func (h *heap) Collect(root cell.I) {
	marked := contains.Set{}

	work := []cell.I{root}
	for len(work) > 0 {
		c := work[len(work)-1]
		work = work[:len(work)-1]

		id, owned := h.cells[c]
		if owned && !marked.Add(id) {
			continue
		}

		// Cells this heap does not own are leaves.
		if owned && pair.Is(c) && c != pair.Null {
			work = append(work, pair.Car(c), pair.Cdr(c))
		}
	}

	for c, id := range h.cells {
		if marked.Add(id) {
			delete(h.cells, c)
		}
	}
}

func (h *heap) adopt(c cell.I) cell.I {
	if _, ok := h.cells[c]; !ok {
		h.next++
		h.cells[c] = h.next
	}

	return c
}
