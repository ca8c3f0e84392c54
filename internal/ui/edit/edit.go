// Released under an MIT license. See LICENSE.

// Package edit provides the console's editable input line.
package edit

import (
	"github.com/ashmeltin/nothing/internal/ui/color"
	"github.com/ashmeltin/nothing/internal/ui/event"
	"github.com/ashmeltin/nothing/internal/ui/surface"
)

// T (edit) is a single editable line of text with a cursor.
type T struct {
	buffer []rune
	cursor int
	color  color.T
	font   surface.Font
}

type edit = T

// New creates an empty edit line rendered with the font and color given.
func New(font surface.Font, c color.T) *T {
	return &edit{
		buffer: []rune{},
		color:  c,
		font:   font,
	}
}

// AsText returns the current contents of the edit line.
func (e *edit) AsText() string {
	return string(e.buffer)
}

// Clean resets the edit line to empty.
func (e *edit) Clean() {
	e.buffer = e.buffer[:0]
	e.cursor = 0
}

// HandleEvent applies one input event to the edit line.
// Events the edit line does not understand are ignored.
func (e *edit) HandleEvent(ev *event.T) error {
	switch ev.Kind {
	case event.TextInput:
		e.insert(ev.Rune)
	case event.KeyDown:
		switch ev.Code {
		case event.Backspace:
			if e.cursor > 0 {
				e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
				e.cursor--
			}
		case event.Delete:
			if e.cursor < len(e.buffer) {
				e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
			}
		case event.Left:
			if e.cursor > 0 {
				e.cursor--
			}
		case event.Right:
			if e.cursor < len(e.buffer) {
				e.cursor++
			}
		case event.Home:
			e.cursor = 0
		case event.End:
			e.cursor = len(e.buffer)
		}
	}

	return nil
}

// Render draws the edit line with its top-left corner at (x, y).
func (e *edit) Render(s surface.I, x, y float64) error {
	if err := s.Text(x, y, e.color, e.AsText()); err != nil {
		return err
	}

	// The cursor is a filled cell, not a glyph.
	return s.FillRect(surface.Rect{
		X: x + float64(e.cursor)*e.font.GlyphWidth,
		Y: y + e.font.GlyphHeight*0.85,
		W: e.font.GlyphWidth,
		H: e.font.GlyphHeight * 0.15,
	}, e.color)
}

func (e *edit) insert(r rune) {
	e.buffer = append(e.buffer, 0)
	copy(e.buffer[e.cursor+1:], e.buffer[e.cursor:])
	e.buffer[e.cursor] = r
	e.cursor++
}
