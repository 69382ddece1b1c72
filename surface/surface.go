// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/textflow/text"
)

// Surface is the drawing target used by text engines.
//
// Coordinates are in pixels with y growing downward. Surfaces are NOT
// thread-safe. Each surface should be used from a single goroutine, or
// external synchronization must be used.
type Surface interface {
	// Clip restricts subsequent drawing to r. Each call replaces the
	// previous clip rectangle.
	Clip(r Rect)

	// DrawText draws s with its baseline origin at (x, baseline).
	// font is a descriptor such as "16px Go".
	DrawText(s string, x, baseline float64, font string, fill color.Color)
}

// Canvas is a Surface that can be written out in some output format.
type Canvas interface {
	Surface

	// Encode writes the drawn content to w.
	Encode(w io.Writer) error
}

// Options configures a Canvas created through the registry.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width  int
	Height int

	// Background is painted before any text. Nil leaves the canvas
	// transparent where the format allows it.
	Background color.Color

	// Fonts resolves font descriptors for backends that draw glyphs.
	// Nil selects the Go font family.
	Fonts *text.Collection
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns X + Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the largest rectangle contained in both r and s.
// Disjoint rectangles yield the zero Rect.
func (r Rect) Intersect(s Rect) Rect {
	x0 := math.Max(r.X, s.X)
	y0 := math.Max(r.Y, s.Y)
	x1 := math.Min(r.Right(), s.Right())
	y1 := math.Min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}
