// Package metrics wraps a glyph measurement primitive with the corrections
// and per-font caches the line wrapper relies on.
//
// The primitive (a Measurer) reports the ink bounding box of a string, which
// drops leading and trailing blanks. Cache brackets every measured string
// with a circumfix character on both sides and subtracts the width of the
// bare circumfix pair, recovering blank-inclusive widths at the cost of one
// extra measurement per font.
//
// A Cache is meant to be shared: it is created by whatever composes text
// engines and handed to each of them.
//
//	c := metrics.NewCache(measurer)
//	w := c.Measure("  indented", "16px Go").Width
package metrics
