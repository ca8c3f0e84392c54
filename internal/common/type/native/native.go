// Released under an MIT license. See LICENSE.

// Package native provides the console's host callable cell type.
//
// A native is the bridge between the scripting environment and the host:
// a narrow capability closing over borrowed host state. It receives its
// argument expression list as written and must read primitive values out
// rather than retain cells, as nothing roots them after the call returns.
package native

import (
	"github.com/ashmeltin/nothing/internal/common"
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/interface/literal"
)

const name = "native"

// Func is the signature for the host side of a native cell.
type Func func(args cell.I) (cell.I, error)

// T (native) wraps a host-provided function.
type T struct {
	label string
	fn    Func
}

type native = T

// New creates a native cell labeled with the name it is bound under.
func New(label string, fn Func) cell.I {
	return &native{label: label, fn: fn}
}

// Apply invokes the host function with the argument list args.
func (n *native) Apply(args cell.I) (cell.I, error) {
	return n.fn(args)
}

// Equal returns true if c is the same native as n.
func (n *native) Equal(c cell.I) bool {
	return Is(c) && n == To(c)
}

// Literal returns the literal representation of the native n.
func (n *native) Literal() string {
	return "(|" + name + " " + n.label + "|)"
}

// Name returns the type name for the native n.
func (n *native) Name() string {
	return name
}

// String returns the text representation of the native n.
func (n *native) String() string {
	return n.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t native

	// The native type is a cell.
	_ = cell.I(&t)

	// The native type has a literal representation.
	_ = literal.I(&t)

	// The native type is a stringer.
	_ = common.Stringer(&t)
}
