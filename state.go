package textflow

import "strings"

// dirtyState records which derived values are stale. The zero value is
// clean.
type dirtyState uint8

const (
	// stateContent: lines and width must be rebuilt by a wrap pass.
	stateContent dirtyState = 1 << iota

	// stateMetrics: line height, spacing, ascent and descent must be
	// resolved again.
	stateMetrics

	// stateTab: the tab stop distance in pixels must be resolved again.
	stateTab

	stateClean dirtyState = 0
)

// String lists the set flags, for logs and test failures.
func (s dirtyState) String() string {
	if s == stateClean {
		return "clean"
	}
	var parts []string
	if s&stateContent != 0 {
		parts = append(parts, "content")
	}
	if s&stateMetrics != 0 {
		parts = append(parts, "metrics")
	}
	if s&stateTab != 0 {
		parts = append(parts, "tab")
	}
	return strings.Join(parts, "|")
}

// invalidate marks flags stale and records that the owner should repaint.
func (e *Engine) invalidate(flags dirtyState) {
	e.state |= flags
	e.repaint = true
}

// ensureUpToDate resolves every stale value. Tab and metrics are resolved
// first because either may turn out to require a wrap pass.
func (e *Engine) ensureUpToDate() {
	if e.state == stateClean {
		return
	}

	if e.state&stateTab != 0 {
		e.resolveTab()
	}
	if e.state&stateMetrics != 0 {
		e.resolveMetrics()
	}
	if e.state&stateContent != 0 {
		e.wrap()
	}

	e.height = float64(len(e.lines)) * e.fullLineHeight()
	e.state = stateClean
}

// resolveTab recomputes the tab stop distance. Only text containing a tab
// needs rewrapping, and only if the distance actually changed.
func (e *Engine) resolveTab() {
	tab := e.metrics.TabWidth(e.font, e.tabWidth)
	if tab == e.tabPx {
		return
	}
	e.tabPx = tab
	if strings.IndexByte(e.text, '\t') >= 0 {
		e.state |= stateContent
	}
}

// resolveMetrics recomputes line height and spacing. A change of the probed
// ascent or descent forces a wrap pass; explicit height or spacing changes
// only move the derived height.
func (e *Engine) resolveMetrics() {
	lm := e.metrics.LineMetrics(e.font)
	if lm.Ascent != e.ascent || lm.Descent != e.descent {
		e.ascent, e.descent = lm.Ascent, lm.Descent
		e.state |= stateContent
	}

	e.actualLineHeight = e.lineHeight
	if e.lineHeight < 0 {
		e.actualLineHeight = e.ascent + e.descent
	}
	e.actualLineSpacing = e.lineSpacing
	if e.lineSpacing < 0 {
		e.actualLineSpacing = 0
	}
}
