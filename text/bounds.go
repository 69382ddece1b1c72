package text

import (
	"golang.org/x/image/font"

	"github.com/gogpu/textflow/metrics"
)

// BoundsMeasurer measures the ink box of a string with font.BoundString.
//
// Blank glyphs have no ink, so leading and trailing blanks do not count.
// Wrap it in a metrics.Cache to recover blank-inclusive widths.
type BoundsMeasurer struct {
	col    *Collection
	config measurerConfig
}

var _ metrics.Measurer = (*BoundsMeasurer)(nil)

// NewBoundsMeasurer returns a measurer over the fonts in col.
func NewBoundsMeasurer(col *Collection, opts ...MeasurerOption) *BoundsMeasurer {
	config := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &BoundsMeasurer{col: col, config: config}
}

// Measure implements metrics.Measurer. Unresolvable fonts are logged and
// measure as zero.
func (m *BoundsMeasurer) Measure(s, desc string) metrics.Extents {
	var ext metrics.Extents
	err := m.col.WithFace(desc, func(f font.Face, _ metrics.FontSpec) {
		b, _ := font.BoundString(f, s)
		if b.Empty() {
			return
		}
		ext = metrics.Extents{
			Width:   fixedToFloat64(b.Max.X - b.Min.X),
			Ascent:  fixedToFloat64(-b.Min.Y),
			Descent: fixedToFloat64(b.Max.Y),
		}
	})
	if err != nil {
		m.config.logger.Warn("text: cannot measure", "font", desc, "err", err)
		return metrics.Extents{}
	}
	return ext
}
