// Package text loads OpenType fonts and measures strings with them.
//
// It provides two metrics.Measurer implementations over the same set of
// fonts:
//
//   - BoundsMeasurer reports the ink bounding box computed by
//     golang.org/x/image/font. It is exact for simple scripts and cheap.
//   - ShapingMeasurer shapes runs with the HarfBuzz port in
//     github.com/go-text/typesetting and reports the ink box of the
//     shaped glyphs, so kerning and ligatures are accounted for.
//
// Fonts are registered by family name in a Collection. Measurers resolve
// "<size>px <family>" descriptors against it.
//
//	col := text.NewGoCollection()
//	m := text.NewBoundsMeasurer(col)
//	ext := m.Measure("Hello", "16px Go")
package text
