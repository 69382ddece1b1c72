package textflow

import "math"

// Point is a pixel position relative to the top-left of the text box.
type Point struct {
	X, Y float64
}

// Caret is a hit-test result: a text index and the top-left position of
// the caret drawn before it.
type Caret struct {
	Index int
	X, Y  float64
}

// IndexToOffset returns the position of the caret before byte index i.
// Y is the top of the caret's line. Out-of-range indices clamp to the
// start or end of the text.
func (e *Engine) IndexToOffset(i int) Point {
	e.ensureUpToDate()

	li := e.lineIndex(i)
	line := e.lines[li]
	i = min(max(i, line.Start()), line.End())
	return Point{
		X: e.lineShift(line) + e.xInLine(line, i),
		Y: float64(li) * e.fullLineHeight(),
	}
}

// OffsetToIndex returns the caret closest to the pixel position (x, y):
// the line under y, then the character boundary nearest x.
func (e *Engine) OffsetToIndex(x, y float64) Caret {
	e.ensureUpToDate()

	li := 0
	if fl := e.fullLineHeight(); fl > 0 {
		li = int(math.Floor(y / fl))
	}
	li = min(max(li, 0), len(e.lines)-1)

	line := e.lines[li]
	top := float64(li) * e.fullLineHeight()
	shift := e.lineShift(line)

	if len(line) == 1 && line[0].RightEdge == 0 {
		return Caret{Index: line[0].Start, X: shift, Y: top}
	}

	// Linear scan over cluster boundaries; a binary search over the
	// groups would avoid re-measuring every prefix on long lines.
	x -= shift
	limit := e.lineLimit(li)
	best := line.Start()
	bestX := e.xInLine(line, best)
	for best < limit {
		next := nextBoundary(e.text[:limit], best)
		nextX := e.xInLine(line, next)
		if (bestX+nextX)/2 > x {
			break
		}
		best, bestX = next, nextX
	}
	return Caret{Index: best, X: bestX + shift, Y: top}
}

// lineIndex returns the line holding index i: the first line ending after
// i, or the last line.
func (e *Engine) lineIndex(i int) int {
	if i <= 0 {
		return 0
	}
	for li, line := range e.lines {
		if line.End() > i {
			return li
		}
	}
	return len(e.lines) - 1
}

// lineLimit returns the last caret index on line li: its end, or the
// position before a trailing newline. The end of a wrapped line equals the
// start of the next one; OffsetToIndex then reports the caret at the end
// of li while IndexToOffset places that index at the start of li+1.
func (e *Engine) lineLimit(li int) int {
	line := e.lines[li]
	end := line.End()
	if end > line.Start() && e.text[end-1] == '\n' {
		return end - 1
	}
	return end
}

// xInLine returns the unshifted x of index i, which must lie in line.
func (e *Engine) xInLine(line Line, i int) float64 {
	left := 0.0
	for _, g := range line {
		if i <= g.Start {
			return left
		}
		if i < g.End {
			if g.OverridesWidth {
				frac := float64(i-g.Start) / float64(g.Len())
				return left + (g.RightEdge-left)*frac
			}
			return left + e.metrics.Width(e.text[g.Start:i], e.font)
		}
		left = g.RightEdge
	}
	return left
}

// lineShift returns the alignment offset of line.
func (e *Engine) lineShift(line Line) float64 {
	if e.align == 0 {
		return 0
	}
	return (e.width - line.Width()) * e.align
}
