package scope

import (
	"testing"

	"github.com/ashmeltin/nothing/internal/common/type/num"
	"github.com/ashmeltin/nothing/internal/script/heap"
)

func TestGetUnbound(t *testing.T) {
	s := New(heap.New())

	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected lookup of an unbound name to fail")
	}
}

func TestSetThenGet(t *testing.T) {
	h := heap.New()
	s := New(h)

	s.Set("x", h.Number(5))

	v, ok := s.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}

	if f := num.To(v).Float(); f != 5 {
		t.Fatalf("expected x to be 5; got %g", f)
	}
}

func TestSetKeepsNamesUnique(t *testing.T) {
	h := heap.New()
	s := New(h)

	s.Set("x", h.Number(1))
	s.Set("y", h.Number(2))
	s.Set("x", h.Number(3))

	if n := len(s.Names()); n != 2 {
		t.Fatalf("expected 2 bindings; got %d", n)
	}

	v, _ := s.Get("x")
	if f := num.To(v).Float(); f != 3 {
		t.Fatalf("expected the most recent binding to win; got %g", f)
	}
}

func TestBindingsSurviveCollection(t *testing.T) {
	h := heap.New()
	s := New(h)

	s.Set("x", h.Cons(h.Number(1), h.Number(2)))

	before := h.Size()

	h.Collect(s.Expr())

	if n := h.Size(); n != before {
		t.Fatalf("collection reclaimed bound cells: %d != %d", n, before)
	}

	if _, ok := s.Get("x"); !ok {
		t.Fatal("expected x to remain bound after collection")
	}
}
