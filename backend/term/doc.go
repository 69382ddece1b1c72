// Package term measures and draws text in terminal cells.
//
// The Measurer reports widths in cells: one per narrow grapheme cluster
// and two per wide one, with East Asian ambiguous characters resolved by
// a configurable policy. Every font descriptor measures the same, and a
// line is one cell high (ascent 1, descent 0), so an engine configured
// with this measurer lays out text on a character grid.
//
// Surface draws onto a tcell screen. Importing the package registers the
// "term" measurement backend and the "term" output canvas, which renders
// into an in-memory screen and encodes it as plain text.
package term
