// Package vector measures and draws text with github.com/tdewolff/canvas.
//
// Font descriptors resolve through a text.Collection; each font source is
// loaded once into a canvas.FontFamily. Widths are shaped advances and
// line metrics come from the font's horizontal header, both converted from
// millimetres to pixels at 96 DPI.
//
// Importing the package registers the "vector" measurement backend and
// the "pdf" output canvas.
package vector
