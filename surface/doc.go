// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the drawing target text engines paint onto.
//
// A Surface only needs two operations: restricting drawing to a rectangle
// and drawing a run of text at a baseline. That keeps the text engine
// independent of how pixels, cells or vector paths are produced.
//
// # Implementations
//
//   - ImageSurface: rasterizes into *image.RGBA with golang.org/x/image/font
//   - Recorder: captures calls for tests and replay
//   - backend/term and backend/vector provide terminal and PDF targets
//
// # Registry
//
// Output formats register a Canvas factory by name and file extension,
// so tools can pick a format at run time:
//
//	c, err := surface.NewCanvasByName("png", surface.Options{
//	    Width: 640, Height: 480, Fonts: text.NewGoCollection(),
//	})
//	engine.Paint(c, color.Black, 0, 0)
//	err = c.Encode(w)
package surface
