// Released under an MIT license. See LICENSE.

// Package reader converts source text into a single parsed expression.
package reader

import (
	"errors"

	"github.com/ashmeltin/nothing/internal/common"
	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/reader/lexer"
	"github.com/ashmeltin/nothing/internal/reader/parser"
	"github.com/ashmeltin/nothing/internal/script/heap"
)

// Read parses text into one expression allocated from the heap h.
//
// Read is total: for any text, including empty or malformed text, it
// returns either an expression or an error. It allocates cells while
// parsing, but a failed parse leaves no visible state behind; anything
// allocated before the failure is unrooted and reclaimed by the next
// collection.
func Read(h *heap.T, text string) (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		case common.Stringer:
			err = errors.New(r.String())
		default:
			err = errors.New("unexpected error")
		}
	}()

	l := lexer.New("console")

	// The trailing newline terminates a token at the end of the text.
	l.Scan(text + "\n")

	p := parser.New(h, l.Token)

	c = p.Expression()

	p.Remaining()

	return c, nil
}
