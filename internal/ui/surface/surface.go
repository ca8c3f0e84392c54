// Released under an MIT license. See LICENSE.

// Package surface defines the contract the console renders against.
//
// The rendering backend is an external collaborator. The console only
// needs to query the viewport, fill flat rectangles, and place text;
// any backend that can do those three things can host the console.
package surface

import (
	"github.com/ashmeltin/nothing/internal/ui/color"
)

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Font describes the glyph metrics text is laid out with.
type Font struct {
	GlyphWidth  float64
	GlyphHeight float64
}

// Scaled returns the font with both glyph dimensions scaled.
func (f Font) Scaled(w, h float64) Font {
	return Font{
		GlyphWidth:  f.GlyphWidth * w,
		GlyphHeight: f.GlyphHeight * h,
	}
}

// I (surface) is a render target.
type I interface {
	// Size returns the pixel width and height of the viewport.
	Size() (w, h int)

	// FillRect fills the rectangle r with the flat color c.
	FillRect(r Rect, c color.T) error

	// Text draws s with its top-left corner at (x, y).
	Text(x, y float64, c color.T, s string) error
}
