// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for console expressions.
//
// The parser panics to abort a parse. The reader recovers the panic and
// turns it into a parse error, so nothing outside the reader ever sees
// one of these panics.
package parser

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/ashmeltin/nothing/internal/common/interface/cell"
	"github.com/ashmeltin/nothing/internal/common/struct/token"
	"github.com/ashmeltin/nothing/internal/common/type/num"
	"github.com/ashmeltin/nothing/internal/common/type/pair"
	"github.com/ashmeltin/nothing/internal/script/heap"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	heap  *heap.T         // Heap used to allocate cells.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser allocating cells from the heap h.
// It connects a producer of tokens with a consumer of cells.
func New(h *heap.T, item func() *token.T) *T {
	return &T{heap: h, item: item}
}

// Expression parses and returns a single expression.
// It panics if no expression can be parsed.
func (p *T) Expression() cell.I {
	t := p.peek()
	if t == nil {
		panic("unexpected end of input")
	}

	switch {
	case t.Is('\''):
		p.consume()

		quoted := p.Expression()

		return p.heap.Cons(p.heap.Symbol("quote"),
			p.heap.Cons(quoted, pair.Null))
	case t.Is('('):
		p.consume()

		return p.list()
	case t.Is(token.Symbol):
		p.consume()

		return p.atom(t)
	case t.Is(token.DoubleQuoted):
		p.consume()

		text := t.Value()

		s, err := adapted.ActualBytes(text[1 : len(text)-1])
		if err != nil {
			panic(locate(t, err.Error()))
		}

		return p.heap.String(s)
	case t.Is(token.DollarSingleQuoted):
		p.consume()

		text := t.Value()

		s, err := adapted.ActualBytes(text[2 : len(text)-1])
		if err != nil {
			panic(locate(t, err.Error()))
		}

		return p.heap.String(s)
	}

	panic(locate(t, "unexpected '"+t.Value()+"'"))
}

// Remaining panics if any token other than the end of input is left.
func (p *T) Remaining() {
	t := p.peek()
	if t != nil {
		panic(locate(t, "unexpected '"+t.Value()+"' after expression"))
	}
}

func (p *T) atom(t *token.T) cell.I {
	if f, ok := num.Parse(t.Value()); ok {
		return p.heap.Number(f)
	}

	return p.heap.Symbol(t.Value())
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

// <list> ::= ')' | <expression> <rest> .
func (p *T) list() cell.I {
	t := p.peek()
	if t == nil {
		panic("expected ')' got end of input")
	}

	if t.Is(')') {
		p.consume()

		return pair.Null
	}

	head := p.Expression()

	return p.heap.Cons(head, p.rest())
}

// <rest> ::= ')' | '.' <expression> ')' | <expression> <rest> .
func (p *T) rest() cell.I {
	t := p.peek()
	if t == nil {
		panic("expected ')' got end of input")
	}

	if t.Is(')') {
		p.consume()

		return pair.Null
	}

	if t.Is('.') {
		p.consume()

		tail := p.Expression()

		t = p.peek()
		if t == nil {
			panic("expected ')' got end of input")
		}

		if !t.Is(')') {
			panic(locate(t, "expected ')' got '"+t.Value()+"'"))
		}

		p.consume()

		return tail
	}

	head := p.Expression()

	return p.heap.Cons(head, p.rest())
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func locate(t *token.T, msg string) string {
	l := t.Source()

	return l.String() + ": " + msg
}
