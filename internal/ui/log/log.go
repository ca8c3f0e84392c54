// Released under an MIT license. See LICENSE.

// Package log provides the console's bounded scroll-back.
//
// The log is a ring of at most capacity lines. Lines hold copied text,
// never heap cells, so the log does not participate in collection.
package log

import (
	"errors"

	"github.com/ashmeltin/nothing/internal/ui/color"
	"github.com/ashmeltin/nothing/internal/ui/surface"
)

// Line is one logged line of text and the color it is rendered with.
type Line struct {
	Text  string
	Color color.T
}

// T (log) is a fixed-capacity ordered sequence of lines.
type T struct {
	capacity int
	font     surface.Font
	lines    []Line
}

type log = T

// New creates an empty log holding at most capacity lines.
func New(font surface.Font, capacity int) (*T, error) {
	if capacity <= 0 {
		return nil, errors.New("log capacity must be positive")
	}

	return &log{
		capacity: capacity,
		font:     font,
	}, nil
}

// Len returns the number of lines currently in the log l.
func (l *log) Len() int {
	return len(l.lines)
}

// Line returns the nth oldest line in the log l.
func (l *log) Line(n int) Line {
	return l.lines[n]
}

// PushLine appends a line, evicting the oldest line when the log is full.
func (l *log) PushLine(text string, c color.T) error {
	l.lines = append(l.lines, Line{Text: text, Color: c})

	if len(l.lines) > l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.capacity]
	}

	return nil
}

// Render draws the log with its top-left corner at (x, y), oldest
// line first.
func (l *log) Render(s surface.I, x, y float64) error {
	for i, line := range l.lines {
		err := s.Text(x, y+float64(i)*l.font.GlyphHeight, line.Color, line.Text)
		if err != nil {
			return err
		}
	}

	return nil
}
