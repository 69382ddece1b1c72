package textflow

import (
	"github.com/gogpu/textflow/metrics"
)

// Engine measures, wraps, maps and paints one string in one font.
//
// The zero value is not usable; create engines with NewEngine. An Engine
// is not safe for concurrent use.
type Engine struct {
	metrics *metrics.Cache

	// Properties.
	text        string
	font        string
	maxWidth    float64
	lineHeight  float64 // negative: auto
	lineSpacing float64 // negative: auto
	tabWidth    float64
	wrapMode    WrapMode
	align       float64

	state   dirtyState
	repaint bool

	// Derived.
	lines             []Line
	width             float64
	height            float64
	ascent            float64
	descent           float64
	actualLineHeight  float64
	actualLineSpacing float64
	tabPx             float64
}

// NewEngine returns an engine measuring through cache. The cache is
// typically shared by every engine of an application.
// Panics if cache is nil.
func NewEngine(cache *metrics.Cache, opts ...Option) *Engine {
	if cache == nil {
		panic("textflow: NewEngine called with a nil metrics cache")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		metrics:     cache,
		text:        cfg.text,
		font:        cfg.font,
		maxWidth:    cfg.maxWidth,
		lineHeight:  cfg.lineHeight,
		lineSpacing: cfg.lineSpacing,
		tabWidth:    cfg.tabWidth,
		wrapMode:    cfg.wrapMode,
		align:       cfg.align,
		state:       stateContent | stateMetrics | stateTab,
		repaint:     true,
	}
}

// Metrics returns the cache the engine measures through.
func (e *Engine) Metrics() *metrics.Cache {
	return e.metrics
}

// SetText replaces the text.
func (e *Engine) SetText(s string) {
	if s == e.text {
		return
	}
	e.text = s
	e.invalidate(stateContent)
}

// Text returns the text.
func (e *Engine) Text() string {
	return e.text
}

// SetFont sets the font descriptor, e.g. "16px Go".
func (e *Engine) SetFont(font string) {
	if font == e.font {
		return
	}
	e.font = font
	e.invalidate(stateContent | stateMetrics | stateTab)
}

// Font returns the font descriptor.
func (e *Engine) Font() string {
	return e.font
}

// SetMaxWidth sets the wrap width in pixels. Unbounded disables wrapping.
// Negative widths are treated as 0 and NaN as Unbounded.
func (e *Engine) SetMaxWidth(w float64) {
	w = normalizeMaxWidth(w)
	if w == e.maxWidth {
		return
	}
	e.maxWidth = w
	e.invalidate(stateContent)
}

// MaxWidth returns the wrap width.
func (e *Engine) MaxWidth() float64 {
	return e.maxWidth
}

// SetLineHeight sets an explicit line height in pixels. Negative values
// select the ascent plus descent of the font.
func (e *Engine) SetLineHeight(h float64) {
	h = normalizeAuto(h)
	if h == e.lineHeight {
		return
	}
	e.lineHeight = h
	e.invalidate(stateMetrics)
}

// SetLineSpacing sets explicit spacing between lines in pixels. Negative
// values select automatic spacing, which is 0.
func (e *Engine) SetLineSpacing(s float64) {
	s = normalizeAuto(s)
	if s == e.lineSpacing {
		return
	}
	e.lineSpacing = s
	e.invalidate(stateMetrics)
}

// SetTabWidth sets the tab stop distance in multiples of a space.
func (e *Engine) SetTabWidth(n float64) {
	n = max(n, 0)
	if n == e.tabWidth {
		return
	}
	e.tabWidth = n
	e.invalidate(stateTab)
}

// TabWidth returns the tab stop distance in spaces.
func (e *Engine) TabWidth() float64 {
	return e.tabWidth
}

// SetWrapMode sets how blanks at wrap points are laid out.
func (e *Engine) SetWrapMode(m WrapMode) {
	if m == e.wrapMode {
		return
	}
	e.wrapMode = m
	e.invalidate(stateContent)
}

// WrapMode returns the wrap mode.
func (e *Engine) WrapMode() WrapMode {
	return e.wrapMode
}

// SetAlign sets the horizontal alignment ratio, clamped to [0, 1]:
// AlignStart, AlignCenter, AlignEnd or anything between. Alignment never
// requires re-measurement.
func (e *Engine) SetAlign(ratio float64) {
	ratio = clampAlign(ratio)
	if ratio == e.align {
		return
	}
	e.align = ratio
	e.repaint = true
}

// Align returns the alignment ratio.
func (e *Engine) Align() float64 {
	return e.align
}

// Dirty reports whether anything visible changed since the previous call
// and clears the flag. A new engine starts dirty.
func (e *Engine) Dirty() bool {
	d := e.repaint
	e.repaint = false
	return d
}

// Width returns the width of the text box: the wrap width when bounded,
// otherwise the widest line.
func (e *Engine) Width() float64 {
	e.ensureUpToDate()
	return e.width
}

// Height returns the line count times FullLineHeight.
func (e *Engine) Height() float64 {
	e.ensureUpToDate()
	return e.height
}

// Lines returns a deep copy of the wrapped lines.
func (e *Engine) Lines() []Line {
	e.ensureUpToDate()
	out := make([]Line, len(e.lines))
	for i, l := range e.lines {
		out[i] = l.Clone()
	}
	return out
}

// Range is a half-open byte range.
type Range struct {
	Start, End int
}

// LineRanges returns the byte range of every line. A line's range
// includes its trailing newline.
func (e *Engine) LineRanges() []Range {
	e.ensureUpToDate()
	out := make([]Range, len(e.lines))
	for i, l := range e.lines {
		out[i] = Range{Start: l.Start(), End: l.End()}
	}
	return out
}

// ActualLineHeight returns the resolved line height.
func (e *Engine) ActualLineHeight() float64 {
	e.ensureUpToDate()
	return e.actualLineHeight
}

// ActualLineSpacing returns the resolved line spacing.
func (e *Engine) ActualLineSpacing() float64 {
	e.ensureUpToDate()
	return e.actualLineSpacing
}

// ActualTabWidth returns the tab stop distance in pixels.
func (e *Engine) ActualTabWidth() float64 {
	e.ensureUpToDate()
	return e.tabPx
}

// FullLineHeight returns the vertical distance between baselines.
func (e *Engine) FullLineHeight() float64 {
	e.ensureUpToDate()
	return e.fullLineHeight()
}

func (e *Engine) fullLineHeight() float64 {
	return e.actualLineHeight + e.actualLineSpacing
}

// Baseline returns the offset of the first baseline from the top of the
// text box. The glyph box is centered vertically in the line height and
// half the spacing goes above it.
func (e *Engine) Baseline() float64 {
	e.ensureUpToDate()
	return e.actualLineSpacing/2 + (e.actualLineHeight-e.ascent-e.descent)/2 + e.ascent
}
