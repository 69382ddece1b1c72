// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textflow/metrics"
	"github.com/gogpu/textflow/text"
)

// ImageSurface is a CPU surface that renders text into an *image.RGBA
// with golang.org/x/image/font.
//
// Example:
//
//	s := surface.NewImageSurface(400, 100, text.NewGoCollection())
//	s.Clear(color.White)
//	s.DrawText("Hello", 10, 40, "16px Go", color.Black)
//	err := s.Encode(f)
type ImageSurface struct {
	img   *image.RGBA
	fonts *text.Collection
	clip  image.Rectangle

	// err is the first font resolution failure, reported by Err.
	err error
}

var _ Canvas = (*ImageSurface)(nil)

// NewImageSurface creates a surface with the given dimensions. A nil
// collection selects the Go font family.
func NewImageSurface(width, height int, fonts *text.Collection) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)), fonts)
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface renders into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA, fonts *text.Collection) *ImageSurface {
	if fonts == nil {
		fonts = text.NewGoCollection()
	}
	return &ImageSurface{
		img:   img,
		fonts: fonts,
		clip:  img.Bounds(),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// Clear fills the entire surface with the given color, ignoring the clip.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Clip implements Surface.
func (s *ImageSurface) Clip(r Rect) {
	s.clip = r.Image().Intersect(s.img.Bounds())
}

// ResetClip removes the clip rectangle.
func (s *ImageSurface) ResetClip() {
	s.clip = s.img.Bounds()
}

// DrawText implements Surface.
func (s *ImageSurface) DrawText(str string, x, baseline float64, desc string, fill color.Color) {
	if str == "" || s.clip.Empty() {
		return
	}
	dst, ok := s.img.SubImage(s.clip).(*image.RGBA)
	if !ok {
		return
	}

	err := s.fonts.WithFace(desc, func(f font.Face, _ metrics.FontSpec) {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(fill),
			Face: f,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(baseline * 64)},
		}
		d.DrawString(str)
	})
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("surface: draw text: %w", err)
	}
}

// Err returns the first error encountered by DrawText, if any.
func (s *ImageSurface) Err() error {
	return s.err
}

// Image returns the backing image. Modifications affect the surface.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	b := s.img.Bounds()
	out := image.NewRGBA(b)
	copy(out.Pix, s.img.Pix)
	return out
}

// Encode implements Canvas by writing a PNG.
func (s *ImageSurface) Encode(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("surface: encode png: %w", err)
	}
	return nil
}
