package metrics

// Extents is the result of one measurement.
type Extents struct {
	// Width is the horizontal extent in pixels.
	Width float64

	// Ascent is the distance from the baseline to the top of the ink (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the ink (positive).
	Descent float64
}

// Height returns Ascent + Descent.
func (e Extents) Height() float64 {
	return e.Ascent + e.Descent
}

// Measurer is the glyph measurement primitive.
//
// Measure returns the ink bounding box of text drawn in the given font.
// The font descriptor is opaque to callers; see ParseFont for the form the
// bundled measurers understand. Implementations must be safe for concurrent
// use when the Cache wrapping them is shared between goroutines.
type Measurer interface {
	Measure(text, font string) Extents
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text, font string) Extents

// Measure implements Measurer.
func (f MeasurerFunc) Measure(text, font string) Extents {
	return f(text, font)
}
