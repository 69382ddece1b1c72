// Package textflow measures and wraps text for canvas-based widgets.
//
// # Overview
//
// An Engine turns a mutable string plus font, width, tab and wrap settings
// into lines of render groups. A render group is a contiguous run of bytes
// sharing one right edge: either a natural run of glyphs measured through
// a metrics.Cache, or a tab, newline or collapsed run of blanks whose width
// is assigned by policy.
//
// The same structure serves painting and hit testing:
//
//	cache := metrics.NewCache(text.NewBoundsMeasurer(text.NewGoCollection()))
//	e := textflow.NewEngine(cache, textflow.WithFont("16px Go"))
//	e.SetText("Hello, world")
//	e.SetMaxWidth(80)
//
//	e.Paint(surf, color.Black, 10, 10)
//	caret := e.OffsetToIndex(mouseX-10, mouseY-10)
//
// # Laziness
//
// Setters only record which derived state went stale. Width, Height, Lines,
// the mapping functions and Paint bring the engine up to date on first use,
// so any number of edits between two reads costs one wrap pass.
//
// # Indices
//
// Indices are byte offsets into the engine text. Caret movement steps by
// grapheme cluster (see NextIndex and PrevIndex).
//
// # Concurrency
//
// An Engine is not safe for concurrent use. The metrics.Cache it is built
// with may be shared by engines on different goroutines.
package textflow
