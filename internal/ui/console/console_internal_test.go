package console

import (
	"strings"
	"testing"

	"github.com/ashmeltin/nothing/internal/common/type/num"
	"github.com/ashmeltin/nothing/internal/game/level"
	"github.com/ashmeltin/nothing/internal/game/vec"
	"github.com/ashmeltin/nothing/internal/ui/color"
	"github.com/ashmeltin/nothing/internal/ui/event"
	"github.com/ashmeltin/nothing/internal/ui/log"
	"github.com/ashmeltin/nothing/internal/ui/surface"
)

type fakeSurface struct {
	w, h  int
	rects []surface.Rect
	texts []string
}

func (s *fakeSurface) Size() (w, h int) {
	return s.w, s.h
}

func (s *fakeSurface) FillRect(r surface.Rect, _ color.T) error {
	s.rects = append(s.rects, r)

	return nil
}

func (s *fakeSurface) Text(_, _ float64, _ color.T, t string) error {
	s.texts = append(s.texts, t)

	return nil
}

type harness struct {
	console *T
	diag    *strings.Builder
	level   *level.T
	t       *testing.T
}

func setup(t *testing.T) *harness {
	t.Helper()

	lvl := level.New()
	lvl.AddRigidRect("platform1")

	c, err := New(lvl, surface.Font{GlyphWidth: 1, GlyphHeight: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	t.Cleanup(c.Destroy)

	diag := &strings.Builder{}
	c.SetDiagnostics(diag)

	return &harness{console: c, diag: diag, level: lvl, t: t}
}

func (h *harness) commit(line string) {
	h.t.Helper()

	for _, r := range line {
		if err := h.console.HandleEvent(event.Text(r)); err != nil {
			h.t.Fatalf("unexpected error: %s", err)
		}
	}

	if err := h.console.HandleEvent(event.Key(event.Commit)); err != nil {
		h.t.Fatalf("unexpected error: %s", err)
	}
}

func (h *harness) lines() []log.Line {
	lines := []log.Line{}
	for i := 0; i < h.console.log.Len(); i++ {
		lines = append(lines, h.console.log.Line(i))
	}

	return lines
}

func TestNewRequiresLevel(t *testing.T) {
	if _, err := New(nil, surface.Font{GlyphWidth: 1, GlyphHeight: 1}); err == nil {
		t.Fatal("expected an error for a nil level")
	}
}

func TestNewRequiresUsableFont(t *testing.T) {
	if _, err := New(level.New(), surface.Font{}); err == nil {
		t.Fatal("expected an error for a zero font")
	}
}

// A failed parse appends exactly two error-colored lines and leaves
// the scope untouched.
func TestParseErrorEcho(t *testing.T) {
	h := setup(t)

	before := len(h.console.scope.Names())

	h.commit("(((")

	lines := h.lines()
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 log lines; got %d", len(lines))
	}

	if lines[0].Text != "(((" || lines[0].Color != Error {
		t.Fatalf("expected the input echoed in error color; got %v", lines[0])
	}

	if lines[1].Color != Error {
		t.Fatalf("expected the message in error color; got %v", lines[1])
	}

	if n := len(h.console.scope.Names()); n != before {
		t.Fatalf("parse error changed the scope: %d != %d", n, before)
	}

	if s := h.console.edit.AsText(); s != "" {
		t.Fatalf("expected the input line cleared; got %q", s)
	}
}

func TestEvalSuccessEcho(t *testing.T) {
	h := setup(t)

	h.commit("(set x 5)")

	lines := h.lines()
	if len(lines) != 1 {
		t.Fatalf("expected exactly 1 log line; got %d", len(lines))
	}

	if lines[0].Text != "(set x 5)" || lines[0].Color != Foreground {
		t.Fatalf("expected the input echoed normally; got %v", lines[0])
	}

	v, ok := h.console.scope.Get("x")
	if !ok {
		t.Fatal("expected x to be bound after the cycle")
	}

	if f := num.To(v).Float(); f != 5 {
		t.Fatalf("expected x to be 5; got %g", f)
	}
}

// Evaluation errors are echoed to the visible log and reported on the
// diagnostic stream.
func TestEvalErrorVisible(t *testing.T) {
	h := setup(t)

	h.commit("(boom)")

	lines := h.lines()
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 log lines; got %d", len(lines))
	}

	if lines[0].Text != "(boom)" || lines[0].Color != Error {
		t.Fatalf("expected the input echoed in error color; got %v", lines[0])
	}

	if !strings.Contains(lines[1].Text, "unbound symbol boom") {
		t.Fatalf("expected the error message logged; got %q", lines[1].Text)
	}

	if !strings.Contains(h.diag.String(), "unbound symbol boom") {
		t.Fatalf("expected a diagnostic notice; got %q", h.diag.String())
	}
}

// Heap growth is bounded by one pending command: repeating a command
// must not grow the heap between cycles.
func TestCollectionBoundsHeapGrowth(t *testing.T) {
	h := setup(t)

	h.commit("(quote (1 2 3))")

	size := h.console.heap.Size()

	for i := 0; i < 3; i++ {
		h.commit("(quote (1 2 3))")

		if n := h.console.heap.Size(); n != size {
			t.Fatalf("heap grew across cycles: %d != %d", n, size)
		}
	}
}

func TestSlide(t *testing.T) {
	h := setup(t)
	c := h.console

	c.SlideDown()

	if a := c.Progress(); a != 0 {
		t.Fatalf("expected slide progress 0; got %g", a)
	}

	// Mid-slide the panel is above the viewport.
	if err := c.Update(SlideDownTime / 2); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	s := &fakeSurface{w: 100, h: 100}
	if err := c.Render(s); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(s.rects) == 0 || s.rects[0].Y >= 0 {
		t.Fatalf("expected the panel above the viewport; got %v", s.rects)
	}

	// Progress never overshoots 1, however large the step.
	if err := c.Update(SlideDownTime); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if a := c.Progress(); a != 1.0 {
		t.Fatalf("expected slide progress exactly 1; got %g", a)
	}

	s = &fakeSurface{w: 100, h: 100}
	if err := c.Render(s); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if s.rects[0].Y != 0 {
		t.Fatalf("expected the panel flush at 0; got %g", s.rects[0].Y)
	}

	if s.rects[0].W != 100 {
		t.Fatalf("expected the panel to span the viewport; got %g", s.rects[0].W)
	}
}

func TestRectApplyForce(t *testing.T) {
	h := setup(t)

	h.commit(`(rect-apply-force "platform1" (10.0 . 5.0))`)

	r := h.level.RigidRect("platform1")
	if f := r.Force(); f != vec.New(10, 5) {
		t.Fatalf("expected force (10, 5); got (%g, %g)", f.X, f.Y)
	}

	lines := h.lines()
	if len(lines) != 1 {
		t.Fatalf("expected exactly 1 log line; got %d", len(lines))
	}

	expected := `(rect-apply-force "platform1" (10.0 . 5.0))`
	if lines[0].Text != expected || lines[0].Color != Foreground {
		t.Fatalf("expected the input echoed normally; got %v", lines[0])
	}
}

// A missing body is a diagnostic notice, not an error: no force is
// applied and the command still completes.
func TestRectApplyForceMissingBody(t *testing.T) {
	h := setup(t)

	h.commit(`(rect-apply-force "platform9" (1.0 . 2.0))`)

	if f := h.level.RigidRect("platform1").Force(); f != (vec.T{}) {
		t.Fatalf("expected no force applied; got (%g, %g)", f.X, f.Y)
	}

	if !strings.Contains(h.diag.String(), "platform9") {
		t.Fatalf("expected a diagnostic notice; got %q", h.diag.String())
	}

	lines := h.lines()
	if len(lines) != 1 || lines[0].Color != Foreground {
		t.Fatalf("expected a normal echo; got %v", lines)
	}
}

func TestRectApplyForceBadShape(t *testing.T) {
	h := setup(t)

	for _, text := range []string{
		`(rect-apply-force)`,
		`(rect-apply-force "platform1")`,
		`(rect-apply-force 1 (1.0 . 2.0))`,
		`(rect-apply-force "platform1" 5)`,
		`(rect-apply-force "platform1" (a . b))`,
	} {
		h.commit(text)

		if f := h.level.RigidRect("platform1").Force(); f != (vec.T{}) {
			t.Fatalf("%q: expected no force applied", text)
		}

		lines := h.lines()
		if len(lines) == 0 || lines[len(lines)-1].Color != Error {
			t.Fatalf("%q: expected an error-colored line", text)
		}
	}
}

func TestHeapSize(t *testing.T) {
	h := setup(t)

	h.commit("(heap-size)")

	if !strings.Contains(h.diag.String(), "cells") {
		t.Fatalf("expected a heap report; got %q", h.diag.String())
	}

	lines := h.lines()
	if len(lines) != 1 || lines[0].Color != Foreground {
		t.Fatalf("expected a normal echo; got %v", lines)
	}
}

func TestDestroyReleasesHeap(t *testing.T) {
	lvl := level.New()

	c, err := New(lvl, surface.Font{GlyphWidth: 1, GlyphHeight: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if c.heap.Size() == 0 {
		t.Fatal("expected the scope and natives to live in the heap")
	}

	c.Destroy()

	if n := c.heap.Size(); n != 0 {
		t.Fatalf("expected an empty heap after destroy; got %d cells", n)
	}

	// Destroy is idempotent.
	c.Destroy()
}
