package textflow

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// WrapMode controls how blanks at a wrap point are laid out.
type WrapMode uint8

const (
	// WrapNormal moves a blank that does not fit onto the next line, where
	// it keeps its natural width.
	WrapNormal WrapMode = iota

	// WrapShrink keeps blanks that do not fit at the end of the current
	// line, collapsed into one zero-advancing group, so wrapped lines never
	// start indented and alignment sees only the visible content.
	WrapShrink
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNormal:
		return "Normal"
	case WrapShrink:
		return "Shrink"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// isBreak reports whether c ends a word. Only ASCII space, tab and
// newline break; U+00A0 and the other Unicode spaces stay inside words,
// so a no-break space never starts a new line.
func isBreak(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// isBreakRune is isBreak for a decoded rune.
func isBreakRune(r rune) bool {
	return r < utf8.RuneSelf && isBreak(byte(r))
}

// wordBoundary returns the end of the grapheme cluster at i, cut short at
// a break character or end. "\r\n" is one cluster but must still break.
func wordBoundary(text string, i, end int) int {
	next := min(nextBoundary(text, i), end)
	for k := i + 1; k < next; k++ {
		if isBreak(text[k]) {
			return k
		}
	}
	return next
}

// wrap rebuilds e.lines and e.width from the text.
func (e *Engine) wrap() {
	switch {
	case e.text == "":
		e.lines = []Line{{{}}}
		e.width = 0
		if !math.IsInf(e.maxWidth, 1) {
			e.width = e.maxWidth
		}
	case math.IsInf(e.maxWidth, 1):
		e.lines = e.wrapUnbounded()
		e.width = 0
		for _, l := range e.lines {
			e.width = max(e.width, l.Width())
		}
	default:
		e.lines = e.wrapBounded()
		e.width = e.maxWidth
	}

	checkLines("wrap", e.lines)
	Logger().Debug("textflow: wrapped", "bytes", len(e.text), "lines", len(e.lines), "width", e.width)
}

// wrapUnbounded breaks only after newlines. A trailing newline opens a
// final empty line so a caret after it has somewhere to go.
func (e *Engine) wrapUnbounded() []Line {
	text := e.text
	lines := make([]Line, 0, strings.Count(text, "\n")+1)

	for pos := 0; pos < len(text); {
		end := len(text)
		if k := strings.IndexByte(text[pos:], '\n'); k >= 0 {
			end = pos + k + 1
		}
		var line Line
		e.measureRange(&line, pos, end, Unbounded)
		lines = append(lines, line)
		pos = end
	}

	if text[len(text)-1] == '\n' {
		n := len(text)
		lines = append(lines, Line{{Start: n, End: n}})
	}
	return lines
}

// lineWrapper holds the state of one bounded wrap pass.
type lineWrapper struct {
	e     *Engine
	lines []Line
	cur   Line

	// closed is set once blanks were collapsed at the end of cur; nothing
	// but more blanks or a newline may join it.
	closed bool
}

// wrapBounded performs word wrapping in a single forward scan.
func (e *Engine) wrapBounded() []Line {
	w := &lineWrapper{e: e}
	text := e.text

	wordStart := 0
	for i := 0; i < len(text); {
		if !isBreak(text[i]) {
			i = wordBoundary(text, i, len(text))
			continue
		}
		w.placeWord(wordStart, i)
		w.placeBlank(i)
		i++
		wordStart = i
	}
	w.placeWord(wordStart, len(text))

	if len(w.cur) == 0 {
		p := 0
		if n := len(w.lines); n > 0 {
			p = w.lines[n-1].End()
		}
		w.cur = Line{{Start: p, End: p}}
	}
	w.flush()
	return w.lines
}

func (w *lineWrapper) flush() {
	w.lines = append(w.lines, w.cur)
	w.cur = nil
	w.closed = false
}

// tryFit appends text[start:end] to the current line if it fits. Beyond the
// measureRange rule, a lone cluster only overflows an empty line.
func (w *lineWrapper) tryFit(start, end int) bool {
	before := w.cur
	if !w.e.measureRange(&w.cur, start, end, w.e.maxWidth) {
		return false
	}
	if len(before) > 0 && w.cur.Width() > w.e.maxWidth {
		w.cur = before
		return false
	}
	return true
}

// placeWord lays out the word text[start:end].
func (w *lineWrapper) placeWord(start, end int) {
	if start >= end {
		return
	}
	if !w.closed && w.tryFit(start, end) {
		return
	}

	// Alone on a fresh line.
	if len(w.cur) > 0 {
		var fresh Line
		if w.e.measureRange(&fresh, start, end, w.e.maxWidth) {
			w.flush()
			w.cur = fresh
			return
		}
	}
	if w.closed {
		w.flush()
	}

	// Wider than a whole line: fill cluster by cluster, moving forward only.
	text := w.e.text
	for i := start; i < end; {
		next := wordBoundary(text, i, end)
		if !w.tryFit(i, next) {
			w.flush()
			continue
		}
		i = next
	}
}

// placeBlank lays out the space, tab or newline at i.
func (w *lineWrapper) placeBlank(i int) {
	text := w.e.text

	if text[i] == '\n' {
		w.e.measureRange(&w.cur, i, i+1, Unbounded)
		w.flush()
		return
	}

	if w.closed {
		w.cur[len(w.cur)-1].End = i + 1
		return
	}
	if w.tryFit(i, i+1) {
		return
	}

	// Under WrapShrink the blank and every blank after it collapse into a
	// zero-advancing group, so the line keeps its content width.
	if w.e.wrapMode == WrapShrink {
		w.cur = append(w.cur, RenderGroup{
			Start:          i,
			End:            i + 1,
			RightEdge:      w.cur.Width(),
			OverridesWidth: true,
		})
		w.closed = true
		return
	}

	w.flush()
	w.e.measureRange(&w.cur, i, i+1, w.e.maxWidth)
}

// checkLines panics with an InvariantError if any line is empty, has gaps
// between groups or has decreasing edges.
func checkLines(op string, lines []Line) {
	if len(lines) == 0 {
		panic(&InvariantError{Op: op, Detail: "no lines"})
	}
	for li, line := range lines {
		if len(line) == 0 {
			panic(&InvariantError{Op: op, Detail: fmt.Sprintf("line %d has no groups", li)})
		}
		for k := 1; k < len(line); k++ {
			prev, g := line[k-1], line[k]
			if prev.End != g.Start {
				panic(&InvariantError{Op: op, Detail: fmt.Sprintf(
					"line %d: group %d ends at %d but group %d starts at %d", li, k-1, prev.End, k, g.Start)})
			}
			if g.RightEdge < prev.RightEdge {
				panic(&InvariantError{Op: op, Detail: fmt.Sprintf(
					"line %d: right edge decreases at group %d", li, k)})
			}
		}
	}
}
