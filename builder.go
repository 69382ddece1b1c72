package textflow

import (
	"math"
	"slices"
	"strings"
)

// measureRange re-measures text[start:end] onto the end of line.
//
// Existing groups from start on are discarded (see truncateGroups) and new
// groups are built from the corrected start: one per tab, one per newline
// and one per natural run between them. The range fits when it produced a
// single group of at most one grapheme cluster, or when its last right
// edge is within maxWidth. A lone cluster always fits so wrapping makes
// progress whatever the font size.
//
// On fit *line is replaced and true returned. Otherwise *line is left
// untouched. measureRange never writes into the backing array of *line,
// so callers may keep the previous slice to roll back.
func (e *Engine) measureRange(line *Line, start, end int, maxWidth float64) bool {
	kept, start := truncateGroups(*line, start, e.text)

	left := kept.Width()
	var groups Line

	for i := start; i < end; {
		switch e.text[i] {
		case '\t':
			right := e.nextTabStop(left)
			groups = append(groups, RenderGroup{Start: i, End: i + 1, RightEdge: right, OverridesWidth: true})
			left = right
			i++

		case '\n':
			groups = append(groups, RenderGroup{Start: i, End: i + 1, RightEdge: left, OverridesWidth: true})
			if i+1 < end {
				Logger().Warn("textflow: newline inside measured range, discarding rest",
					"index", i, "end", end, "discarded", end-i-1)
			}
			i = end

		default:
			j := end
			if k := strings.IndexAny(e.text[i:end], "\t\n"); k >= 0 {
				j = i + k
			}
			right := left + e.metrics.Width(e.text[i:j], e.font)
			groups = append(groups, RenderGroup{Start: i, End: j, RightEdge: right})
			left = right
			i = j
		}
	}

	if !rangeFits(groups, maxWidth, e.text) {
		return false
	}
	*line = append(slices.Clip(kept), groups...)
	return true
}

func rangeFits(groups Line, maxWidth float64, text string) bool {
	if len(groups) == 0 {
		return true
	}
	if len(groups) == 1 && clusterCount(text[groups[0].Start:groups[0].End]) <= 1 {
		return true
	}
	return groups.Width() <= maxWidth
}

// nextTabStop returns the first tab stop strictly right of left.
// A zero tab width makes tabs zero-width.
func (e *Engine) nextTabStop(left float64) float64 {
	tab := e.tabPx
	if tab <= 0 {
		return left
	}
	return math.Floor(left/tab+1) * tab
}
