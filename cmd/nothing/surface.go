// Released under an MIT license. See LICENSE.

package main

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/ashmeltin/nothing/internal/ui/color"
	"github.com/ashmeltin/nothing/internal/ui/console"
	"github.com/ashmeltin/nothing/internal/ui/surface"
)

// textSurface renders the console overlay as a character grid. One
// grid cell corresponds to one scaled glyph, so a pixel coordinate
// maps to a cell by dividing by the glyph size.
// stale is set from the resize watcher goroutine and cleared by the
// main loop, so it is atomic. Everything else is main-loop only.
type textSurface struct {
	cellW float64
	cellH float64
	cols  int
	rows  [][]texel
	stale atomic.Bool
}

type texel struct {
	r rune
	c color.T
}

func newTextSurface() *textSurface {
	s := &textSurface{
		cellW: console.FontWidthScale,
		cellH: console.FontHeightScale,
	}

	s.stale.Store(true)
	s.clear()

	return s
}

// Size returns the viewport size in pixels.
func (s *textSurface) Size() (w, h int) {
	return int(float64(s.cols) * s.cellW), int(float64(len(s.rows)) * s.cellH)
}

// FillRect fills the covered cells with the flat color c.
func (s *textSurface) FillRect(r surface.Rect, c color.T) error {
	top, bottom := s.row(r.Y), s.row(r.Y+r.H)
	left, right := s.col(r.X), s.col(r.X+r.W)

	for y := top; y < bottom && y < len(s.rows); y++ {
		if y < 0 {
			continue
		}

		for x := left; x < right && x < s.cols; x++ {
			if x < 0 {
				continue
			}

			s.rows[y][x] = texel{r: ' ', c: c}
		}
	}

	return nil
}

// Text draws the string t with its top-left corner at (x, y).
func (s *textSurface) Text(x, y float64, c color.T, t string) error {
	row := s.row(y)
	if row < 0 || row >= len(s.rows) {
		return nil
	}

	col := s.col(x)
	for _, r := range t {
		if col >= s.cols {
			break
		}

		if col >= 0 {
			s.rows[row][col] = texel{r: r, c: c}
		}

		col++
	}

	return nil
}

func (s *textSurface) clear() {
	if s.stale.Swap(false) {
		s.cols = width()
	}

	// The grid only needs to cover the overlay: the log plus the
	// prompt line.
	n := console.LogCapacity + 1

	s.rows = make([][]texel, n)
	for i := range s.rows {
		s.rows[i] = make([]texel, s.cols)
		for j := range s.rows[i] {
			s.rows[i][j] = texel{r: ' '}
		}
	}
}

func (s *textSurface) col(x float64) int {
	return int(x / s.cellW)
}

func (s *textSurface) row(y float64) int {
	return int(y / s.cellH)
}

// invalidate marks the cached terminal width stale.
// Called from the resize watcher goroutine.
func (s *textSurface) invalidate() {
	s.stale.Store(true)
}

func (s *textSurface) flush(w io.Writer) {
	b := &strings.Builder{}

	for _, row := range s.rows {
		current := ""

		for _, t := range row {
			code := ansi(t.c)
			if code != current {
				b.WriteString("\x1b[" + code + "m")
				current = code
			}

			b.WriteRune(t.r)
		}

		b.WriteString("\x1b[0m\n")
	}

	io.WriteString(w, b.String())
}

// ansi maps the console palette to terminal colors; error lines are
// red and everything else keeps the terminal's default.
func ansi(c color.T) string {
	if c == console.Error {
		return "31"
	}

	return "0"
}

func width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}

	return w
}
