package textflow

import (
	"unicode/utf8"

	"github.com/gogpu/textflow/surface"
)

// NextIndex returns the index after the grapheme cluster at i.
func (e *Engine) NextIndex(i int) int {
	if i < 0 {
		return 0
	}
	return nextBoundary(e.text, i)
}

// PrevIndex returns the start of the grapheme cluster ending at i.
func (e *Engine) PrevIndex(i int) int {
	if i <= 0 {
		return 0
	}
	i = min(i, len(e.text))
	e.ensureUpToDate()
	// Line starts are cluster boundaries, so scan from there.
	return e.prevBoundary(i, e.lines[e.lineIndex(i-1)].Start())
}

// prevBoundary returns the last cluster boundary before i, scanning
// forward from from.
func (e *Engine) prevBoundary(i, from int) int {
	prev := from
	for b := from; b < i; {
		prev = b
		b = nextBoundary(e.text, b)
	}
	return prev
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	e.ensureUpToDate()
	return len(e.lines)
}

// LineIndex returns the line holding index i.
func (e *Engine) LineIndex(i int) int {
	e.ensureUpToDate()
	return e.lineIndex(i)
}

// LineStartIndex returns the first index of the line holding i.
func (e *Engine) LineStartIndex(i int) int {
	e.ensureUpToDate()
	return e.lines[e.lineIndex(i)].Start()
}

// LineEndIndex returns the last caret index of the line holding i, before
// its newline if it has one.
func (e *Engine) LineEndIndex(i int) int {
	e.ensureUpToDate()
	return e.lineLimit(e.lineIndex(i))
}

// IndexAbove returns the index one line up from i at the same x, or 0 on
// the first line.
func (e *Engine) IndexAbove(i int) int {
	e.ensureUpToDate()
	li := e.lineIndex(i)
	if li == 0 {
		return 0
	}
	return e.indexOnLine(i, li-1)
}

// IndexBelow returns the index one line down from i at the same x, or the
// end of the text on the last line.
func (e *Engine) IndexBelow(i int) int {
	e.ensureUpToDate()
	li := e.lineIndex(i)
	if li == len(e.lines)-1 {
		return len(e.text)
	}
	return e.indexOnLine(i, li+1)
}

func (e *Engine) indexOnLine(i, li int) int {
	fl := e.fullLineHeight()
	x := e.IndexToOffset(i).X
	return e.OffsetToIndex(x, (float64(li)+0.5)*fl).Index
}

// SelectionRects returns one highlight rectangle per line covered by the
// byte range [from, to). Lines where the range covers no width are
// skipped.
func (e *Engine) SelectionRects(from, to int) []surface.Rect {
	e.ensureUpToDate()
	if from > to {
		from, to = to, from
	}
	from = max(from, 0)
	to = min(to, len(e.text))
	if from >= to {
		return nil
	}

	fl := e.fullLineHeight()
	var rects []surface.Rect
	for li, line := range e.lines {
		if line.End() <= from || line.Start() >= to {
			continue
		}
		x0 := e.xInLine(line, max(from, line.Start()))
		x1 := e.xInLine(line, min(to, line.End()))
		if x1 <= x0 {
			continue
		}
		rects = append(rects, surface.Rect{
			X:      x0 + e.lineShift(line),
			Y:      float64(li) * fl,
			Width:  x1 - x0,
			Height: fl,
		})
	}
	return rects
}

// WordBounds returns the run of word characters or of blanks around i,
// for double-click selection. Blanks are the characters that break lines,
// so a no-break space belongs to the word. At the end of the text the run
// before i is used.
func (e *Engine) WordBounds(i int) (start, end int) {
	text := e.text
	if text == "" {
		return 0, 0
	}
	i = min(max(i, 0), len(text))

	var space bool
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		space = isBreakRune(r)
	} else {
		r, _ := utf8.DecodeLastRuneInString(text)
		space = isBreakRune(r)
	}

	start = i
	for start > 0 {
		r, n := utf8.DecodeLastRuneInString(text[:start])
		if isBreakRune(r) != space || r == '\n' {
			break
		}
		start -= n
	}
	end = i
	for end < len(text) {
		r, n := utf8.DecodeRuneInString(text[end:])
		if isBreakRune(r) != space || r == '\n' {
			break
		}
		end += n
	}
	return start, end
}
