package edit

import (
	"testing"

	"github.com/ashmeltin/nothing/internal/ui/color"
	"github.com/ashmeltin/nothing/internal/ui/event"
	"github.com/ashmeltin/nothing/internal/ui/surface"
)

func setup() *T {
	return New(surface.Font{GlyphWidth: 1, GlyphHeight: 1}, color.T{})
}

func typeText(e *T, s string) {
	for _, r := range s {
		_ = e.HandleEvent(event.Text(r))
	}
}

func TestTyping(t *testing.T) {
	e := setup()

	typeText(e, "hello")

	if s := e.AsText(); s != "hello" {
		t.Fatalf("expected %q; got %q", "hello", s)
	}
}

func TestInsertAtCursor(t *testing.T) {
	e := setup()

	typeText(e, "hllo")

	_ = e.HandleEvent(event.Key(event.Home))
	_ = e.HandleEvent(event.Key(event.Right))

	typeText(e, "e")

	if s := e.AsText(); s != "hello" {
		t.Fatalf("expected %q; got %q", "hello", s)
	}
}

func TestBackspaceAndDelete(t *testing.T) {
	e := setup()

	typeText(e, "abc")

	_ = e.HandleEvent(event.Key(event.Backspace))

	if s := e.AsText(); s != "ab" {
		t.Fatalf("expected %q; got %q", "ab", s)
	}

	_ = e.HandleEvent(event.Key(event.Home))
	_ = e.HandleEvent(event.Key(event.Delete))

	if s := e.AsText(); s != "b" {
		t.Fatalf("expected %q; got %q", "b", s)
	}

	// At the edges both are no-ops.
	_ = e.HandleEvent(event.Key(event.Backspace))
	_ = e.HandleEvent(event.Key(event.End))
	_ = e.HandleEvent(event.Key(event.Delete))

	if s := e.AsText(); s != "b" {
		t.Fatalf("expected %q; got %q", "b", s)
	}
}

func TestClean(t *testing.T) {
	e := setup()

	typeText(e, "something")
	e.Clean()

	if s := e.AsText(); s != "" {
		t.Fatalf("expected an empty buffer; got %q", s)
	}

	typeText(e, "x")

	if s := e.AsText(); s != "x" {
		t.Fatalf("expected %q; got %q", "x", s)
	}
}
