package text

import (
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textflow/metrics"
)

// ShapingMeasurer measures the ink box of HarfBuzz-shaped text using
// go-text/typesetting. Kerning and ligatures are reflected in the result.
//
// ShapingMeasurer is safe for concurrent use. Each call wraps the shared
// parsed font in a fresh face and borrows a shaper from a pool.
type ShapingMeasurer struct {
	col    *Collection
	config measurerConfig
	lang   language.Language

	shaperPool sync.Pool
}

var _ metrics.Measurer = (*ShapingMeasurer)(nil)

// NewShapingMeasurer returns a shaping measurer over the fonts in col.
func NewShapingMeasurer(col *Collection, opts ...MeasurerOption) *ShapingMeasurer {
	config := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &ShapingMeasurer{
		col:    col,
		config: config,
		lang:   language.NewLanguage(config.language),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Measure implements metrics.Measurer. Unresolvable fonts are logged and
// measure as zero.
func (m *ShapingMeasurer) Measure(s, desc string) metrics.Extents {
	if s == "" {
		return metrics.Extents{}
	}
	src, spec, err := m.col.Source(desc)
	if err != nil {
		m.config.logger.Warn("text: cannot measure", "font", desc, "err", err)
		return metrics.Extents{}
	}
	f, err := src.shapingFont()
	if err != nil {
		m.config.logger.Warn("text: cannot shape", "font", desc, "err", err)
		return metrics.Extents{}
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(spec.Size),
		Script:    detectScript(runes),
		Language:  m.lang,
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	m.shaperPool.Put(hb)

	return inkExtents(output.Glyphs)
}

// inkExtents returns the union of the glyph ink boxes, laid out along the
// pen advance. Glyph extents are y-up; Height is usually negative.
func inkExtents(glyphs []shaping.Glyph) metrics.Extents {
	left, right := math.Inf(1), math.Inf(-1)
	var ascent, descent float64
	var pen float64

	for _, g := range glyphs {
		if g.Width != 0 && g.Height != 0 {
			x0 := pen + fixedToFloat64(g.XOffset+g.XBearing)
			x1 := x0 + fixedToFloat64(g.Width)
			top := fixedToFloat64(g.YOffset + g.YBearing)
			bottom := top + fixedToFloat64(g.Height)

			left = min(left, x0, x1)
			right = max(right, x0, x1)
			ascent = max(ascent, top, bottom)
			descent = max(descent, -top, -bottom)
		}
		pen += fixedToFloat64(g.Advance)
	}

	if right < left {
		return metrics.Extents{}
	}
	return metrics.Extents{Width: right - left, Ascent: ascent, Descent: descent}
}

// detectScript returns the script of the first non-space rune.
// Runs mixing scripts are measured with that one script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
