package textflow

import "math"

// Defaults applied by NewEngine.
const (
	// DefaultFont is the font descriptor of a new engine.
	DefaultFont = "16px Go"

	// DefaultTabWidth is the distance between tab stops, in spaces.
	DefaultTabWidth = 4
)

// Unbounded disables wrapping when passed to SetMaxWidth.
var Unbounded = math.Inf(1)

// Alignment ratios for SetAlign. Any value in [0, 1] is accepted.
const (
	AlignStart  = 0.0
	AlignCenter = 0.5
	AlignEnd    = 1.0
)

// Option configures an Engine during creation.
//
// Example:
//
//	e := textflow.NewEngine(cache,
//	    textflow.WithFont("14px Go Mono"),
//	    textflow.WithMaxWidth(320),
//	    textflow.WithWrapMode(textflow.WrapShrink),
//	)
type Option func(*engineConfig)

// engineConfig holds the initial property values of an Engine.
type engineConfig struct {
	text        string
	font        string
	maxWidth    float64
	lineHeight  float64
	lineSpacing float64
	tabWidth    float64
	wrapMode    WrapMode
	align       float64
}

// defaultConfig returns the default engine configuration.
func defaultConfig() engineConfig {
	return engineConfig{
		font:        DefaultFont,
		maxWidth:    Unbounded,
		lineHeight:  -1,
		lineSpacing: -1,
		tabWidth:    DefaultTabWidth,
		wrapMode:    WrapNormal,
		align:       AlignStart,
	}
}

// WithText sets the initial text.
func WithText(s string) Option {
	return func(c *engineConfig) {
		c.text = s
	}
}

// WithFont sets the initial font descriptor.
func WithFont(font string) Option {
	return func(c *engineConfig) {
		c.font = font
	}
}

// WithMaxWidth sets the initial wrap width.
func WithMaxWidth(w float64) Option {
	return func(c *engineConfig) {
		c.maxWidth = normalizeMaxWidth(w)
	}
}

// WithLineHeight sets an explicit line height. Negative means auto.
func WithLineHeight(h float64) Option {
	return func(c *engineConfig) {
		c.lineHeight = normalizeAuto(h)
	}
}

// WithLineSpacing sets explicit spacing between lines. Negative means auto.
func WithLineSpacing(s float64) Option {
	return func(c *engineConfig) {
		c.lineSpacing = normalizeAuto(s)
	}
}

// WithTabWidth sets the tab stop distance in spaces.
func WithTabWidth(n float64) Option {
	return func(c *engineConfig) {
		c.tabWidth = max(n, 0)
	}
}

// WithWrapMode sets how blanks at a wrap point are treated.
func WithWrapMode(m WrapMode) Option {
	return func(c *engineConfig) {
		c.wrapMode = m
	}
}

// WithAlign sets the horizontal alignment ratio.
func WithAlign(ratio float64) Option {
	return func(c *engineConfig) {
		c.align = clampAlign(ratio)
	}
}

func normalizeMaxWidth(w float64) float64 {
	switch {
	case math.IsNaN(w):
		return Unbounded
	case w < 0:
		return 0
	default:
		return w
	}
}

// normalizeAuto maps every negative value to -1 so switching between
// two "auto" values is not a change.
func normalizeAuto(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return -1
	}
	return v
}

func clampAlign(r float64) float64 {
	if math.IsNaN(r) {
		return AlignStart
	}
	return min(max(r, 0), 1)
}
