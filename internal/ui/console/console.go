// Released under an MIT license. See LICENSE.

// Package console provides the in-game developer console.
//
// The console is a slide-in overlay with a bounded scroll-back log and
// an editable input line. Committed input is parsed and evaluated
// against a scope holding host-registered natives, and the expression
// heap is collected once per completed cycle, rooted at the scope.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ashmeltin/nothing/internal/common/type/pair"
	"github.com/ashmeltin/nothing/internal/game/level"
	"github.com/ashmeltin/nothing/internal/reader"
	"github.com/ashmeltin/nothing/internal/script/eval"
	"github.com/ashmeltin/nothing/internal/script/heap"
	"github.com/ashmeltin/nothing/internal/script/scope"
	"github.com/ashmeltin/nothing/internal/system/lt"
	"github.com/ashmeltin/nothing/internal/ui/color"
	"github.com/ashmeltin/nothing/internal/ui/edit"
	"github.com/ashmeltin/nothing/internal/ui/event"
	"github.com/ashmeltin/nothing/internal/ui/log"
	"github.com/ashmeltin/nothing/internal/ui/surface"
)

const (
	// FontWidthScale and FontHeightScale scale the host font's glyphs.
	FontWidthScale  = 3.0
	FontHeightScale = 3.0

	// LogCapacity is the number of scroll-back lines kept.
	LogCapacity = 10

	// SlideDownTime is how long the slide-in animation takes, in seconds.
	SlideDownTime = 0.4
)

// Console palette.
//
//nolint:gochecknoglobals
var (
	Background = color.New(0.20, 0.20, 0.20, 1.0)
	Foreground = color.New(0.80, 0.80, 0.80, 1.0)
	Error      = color.New(0.80, 0.50, 0.50, 1.0)
)

// T (console) owns the heap, scope, and widgets of one console.
type T struct {
	lt    *lt.T
	heap  *heap.T
	scope *scope.T
	edit  *edit.T
	log   *log.T

	// The level is borrowed host state. It must outlive the console.
	level *level.T

	diag io.Writer

	a            float64
	promptHeight float64
	logHeight    float64
	height       float64
}

type console = T

// New creates a console operating on the level lvl, rendered with the
// host font. Construction is guarded by a lifetime ledger: on failure
// everything acquired so far is released, in reverse order, and the
// error is returned.
func New(lvl *level.T, font surface.Font) (*T, error) {
	if lvl == nil {
		return nil, errors.New("console requires a level")
	}

	c := &console{
		lt:    lt.New(),
		level: lvl,
		diag:  os.Stderr,
	}

	c.heap = heap.New()
	c.lt.Push(func() {
		// Collecting against an empty root reclaims every cell.
		c.heap.Collect(pair.Null)
	})

	c.scope = scope.New(c.heap)
	c.scope.Set("rect-apply-force",
		c.heap.Native("rect-apply-force", c.rectApplyForce))
	c.scope.Set("heap-size",
		c.heap.Native("heap-size", c.heapSize))

	scaled := font.Scaled(FontWidthScale, FontHeightScale)
	if scaled.GlyphWidth <= 0 || scaled.GlyphHeight <= 0 {
		err := errors.New("console requires a font with positive glyph size")
		c.lt.Release()

		return nil, err
	}

	c.edit = edit.New(scaled, Foreground)
	c.lt.Push(c.edit.Clean)

	l, err := log.New(scaled, LogCapacity)
	if err != nil {
		c.lt.Release()

		return nil, err
	}

	c.log = l

	c.promptHeight = scaled.GlyphHeight
	c.logHeight = scaled.GlyphHeight * LogCapacity
	c.height = c.logHeight + c.promptHeight

	return c, nil
}

// Destroy releases everything the console owns. The borrowed level is
// untouched. Destroy is idempotent.
func (c *console) Destroy() {
	c.lt.Release()
}

// HandleEvent processes one input event. The commit key runs a full
// read-eval-log-collect cycle before returning; every other event is
// delegated to the edit line. Input is accepted in any slide state.
func (c *console) HandleEvent(ev *event.T) error {
	if ev.Kind == event.KeyDown && ev.Code == event.Commit {
		return c.commit()
	}

	return c.edit.HandleEvent(ev)
}

// Progress returns the slide progress, between 0 and 1.
func (c *console) Progress() float64 {
	return c.a
}

// Render draws the console to the surface s. The panel is offset above
// the viewport until the slide completes, with an ease-out curve that
// is applied only here.
func (c *console) Render(s surface.I) error {
	w, _ := s.Size()

	e := c.a * (2 - c.a)
	y := -(1 - e) * c.height

	err := s.FillRect(surface.Rect{
		X: 0,
		Y: y,
		W: float64(w),
		H: c.height,
	}, Background)
	if err != nil {
		return err
	}

	if err := c.log.Render(s, 0, y); err != nil {
		return err
	}

	return c.edit.Render(s, 0, y+c.logHeight)
}

// SetDiagnostics redirects the console's diagnostic stream, which
// defaults to standard error.
func (c *console) SetDiagnostics(w io.Writer) {
	c.diag = w
}

// SlideDown restarts the slide-in animation.
func (c *console) SlideDown() {
	c.a = 0
}

// Update advances the slide animation by dt seconds.
func (c *console) Update(dt float64) error {
	if c.a < 1 {
		c.a += dt / SlideDownTime

		if c.a > 1 {
			c.a = 1
		}
	}

	return nil
}

func (c *console) commit() error {
	source := c.edit.AsText()

	expr, perr := reader.Read(c.heap, source)
	if perr != nil {
		if err := c.log.PushLine(source, Error); err != nil {
			return err
		}

		if err := c.log.PushLine(perr.Error(), Error); err != nil {
			return err
		}

		c.edit.Clean()

		return nil
	}

	// The result is discarded. Side effects are externally visible.
	_, everr := eval.Eval(c.heap, c.scope, expr)
	if everr != nil {
		fmt.Fprintf(c.diag, "error:\t%s\n", everr)

		if err := c.log.PushLine(source, Error); err != nil {
			return err
		}

		if err := c.log.PushLine(everr.Error(), Error); err != nil {
			return err
		}
	} else if err := c.log.PushLine(source, Foreground); err != nil {
		return err
	}

	c.edit.Clean()

	// One collection per completed cycle, after the echo, rooted at
	// the scope. The log holds copied text, never cells, so it does
	// not need to be rooted.
	c.heap.Collect(c.scope.Expr())

	return nil
}
