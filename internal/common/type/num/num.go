// Released under an MIT license. See LICENSE.

// Package num provides the console's number cell type.
package num

import (
	"strconv"

	"github.com/ashmeltin/nothing/internal/common"
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/interface/literal"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from a float64.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Parse returns the number the string s spells, if it spells one.
func Parse(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatFloat(n.Float(), 'g', -1, 64)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
