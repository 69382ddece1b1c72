package textflow

import (
	"fmt"
	"math"
	"testing"
)

// assertRoundTrip checks that every caret index maps to a position that
// maps back to it. Inside collapsed blanks several indices may share a
// position, so only the position is compared there.
func assertRoundTrip(t *testing.T, e *Engine) {
	t.Helper()
	text := e.Text()
	half := e.FullLineHeight() / 2

	for i := 0; ; i = e.NextIndex(i) {
		p := e.IndexToOffset(i)
		c := e.OffsetToIndex(p.X, p.Y+half)

		if c.Index != i {
			if !inCollapsed(e, i) {
				t.Errorf("OffsetToIndex(IndexToOffset(%d) = %v) = %d", i, p, c.Index)
			} else if math.Abs(c.X-p.X) > 5 || c.Y != p.Y {
				t.Errorf("index %d at %v came back at (%v, %v)", i, p, c.X, c.Y)
			}
		}
		if i >= len(text) {
			break
		}
	}
}

// inCollapsed reports whether i lies in a zero-width group of collapsed
// blanks.
func inCollapsed(e *Engine, i int) bool {
	text := e.Text()
	for _, line := range e.Lines() {
		left := 0.0
		for _, g := range line {
			if g.OverridesWidth && g.RightEdge == left && text[g.Start] != '\n' &&
				g.Start <= i && i < g.End {
				return true
			}
			left = g.RightEdge
		}
	}
	return false
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"hello world",
		"a\tb c",
		"ab\n\ncd\n",
		"a  b  c",
		"abc  d",
		"héllo wörld",
	}
	widths := []struct {
		name     string
		maxWidth float64
		mode     WrapMode
	}{
		{"unbounded", Unbounded, WrapNormal},
		{"normal", 35, WrapNormal},
		{"shrink", 35, WrapShrink},
	}

	for _, s := range texts {
		for _, w := range widths {
			for _, align := range []float64{AlignStart, AlignCenter} {
				t.Run(fmt.Sprintf("%q/%s/%v", s, w.name, align), func(t *testing.T) {
					e, _ := newTestEngine(t,
						WithText(s),
						WithMaxWidth(w.maxWidth),
						WithWrapMode(w.mode),
						WithAlign(align),
					)
					assertRoundTrip(t, e)
				})
			}
		}
	}
}

func TestIndexToOffset(t *testing.T) {
	e, _ := newTestEngine(t, WithText("ab\tcd\nef"))

	tests := []struct {
		i    int
		want Point
	}{
		{-4, Point{0, 0}},
		{0, Point{0, 0}},
		{1, Point{10, 0}},
		{2, Point{20, 0}},
		{3, Point{40, 0}},
		{5, Point{60, 0}},
		{6, Point{0, 10}},
		{8, Point{20, 10}},
		{99, Point{20, 10}},
	}
	for _, tt := range tests {
		if got := e.IndexToOffset(tt.i); got != tt.want {
			t.Errorf("IndexToOffset(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestIndexToOffsetCollapsedBlanks(t *testing.T) {
	e, _ := newTestEngine(t, WithText("ab   cd"), WithMaxWidth(25), WithWrapMode(WrapShrink))

	// The three blanks after "ab" take no room.
	for i := 2; i < 5; i++ {
		if got := e.IndexToOffset(i); got != (Point{20, 0}) {
			t.Errorf("IndexToOffset(%d) = %v, want (20, 0)", i, got)
		}
	}
	if got := e.IndexToOffset(5); got != (Point{0, 10}) {
		t.Errorf("IndexToOffset(5) = %v, want start of the second line", got)
	}
}

func TestCollapsedBlanksDoNotShiftAlignment(t *testing.T) {
	// "abcd" is 40px; the blank after it overflows 45px and wraps.
	for _, mode := range []WrapMode{WrapNormal, WrapShrink} {
		t.Run(mode.String(), func(t *testing.T) {
			e, _ := newTestEngine(t,
				WithText("abcd efgh"),
				WithMaxWidth(45),
				WithWrapMode(mode),
				WithAlign(AlignCenter),
			)
			if got := e.IndexToOffset(0); got != (Point{2.5, 0}) {
				t.Errorf("IndexToOffset(0) = %v, want (2.5, 0)", got)
			}
			if got := e.IndexToOffset(5).X; got != 2.5 {
				t.Errorf("IndexToOffset(5).X = %v, want 2.5", got)
			}
		})
	}
}

func TestOffsetToIndex(t *testing.T) {
	e, _ := newTestEngine(t, WithText("hello world\nfoo"))

	tests := []struct {
		name string
		x, y float64
		want Caret
	}{
		{"origin", 0, 0, Caret{0, 0, 0}},
		{"before midpoint", 14, 3, Caret{1, 10, 0}},
		{"past midpoint", 16, 3, Caret{2, 20, 0}},
		{"right of line stops before newline", 500, 5, Caret{11, 110, 0}},
		{"second line", 21, 15, Caret{14, 20, 10}},
		{"above the box", 30, -40, Caret{3, 30, 0}},
		{"below the box", 500, 400, Caret{15, 30, 10}},
		{"left of the box", -20, 12, Caret{12, 0, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.OffsetToIndex(tt.x, tt.y); got != tt.want {
				t.Errorf("OffsetToIndex(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestOffsetToIndexEmpty(t *testing.T) {
	e, _ := newTestEngine(t, WithMaxWidth(100), WithAlign(AlignCenter))
	if got := e.OffsetToIndex(80, 3); got != (Caret{0, 50, 0}) {
		t.Errorf("OffsetToIndex on empty text = %+v, want {0 50 0}", got)
	}
	if got := e.IndexToOffset(0); got != (Point{50, 0}) {
		t.Errorf("IndexToOffset(0) on empty text = %v, want (50, 0)", got)
	}
}

func TestOffsetToIndexWrappedLineEnd(t *testing.T) {
	e, _ := newTestEngine(t, WithText("ab cd"), WithMaxWidth(35))

	// A click right of the first line lands after its trailing blank.
	if got := e.OffsetToIndex(100, 5); got != (Caret{3, 30, 0}) {
		t.Errorf("OffsetToIndex = %+v, want {3 30 0}", got)
	}
	// The same index is drawn at the start of the next line.
	if got := e.IndexToOffset(3); got != (Point{0, 10}) {
		t.Errorf("IndexToOffset(3) = %v, want (0, 10)", got)
	}
}

func TestOffsetsMonotonic(t *testing.T) {
	e, _ := newTestEngine(t,
		WithText("The quick\tbrown fox jumps over the lazy dog"),
		WithMaxWidth(95),
	)
	for li, line := range e.Lines() {
		prev := math.Inf(-1)
		for i := line.Start(); i <= e.LineEndIndex(line.Start()); i = e.NextIndex(i) {
			x := e.xInLine(line, i)
			if x < prev {
				t.Errorf("line %d: x(%d) = %v < %v", li, i, x, prev)
			}
			prev = x
			if i >= len(e.Text()) {
				break
			}
		}
	}
}

func TestAlignShift(t *testing.T) {
	e, _ := newTestEngine(t, WithText("ab\nabcd"), WithAlign(AlignCenter))

	lines := e.Lines()
	if got := e.lineShift(lines[0]); got != 10 {
		t.Errorf("lineShift(line 0) = %v, want 10", got)
	}
	if got := e.lineShift(lines[1]); got != 0 {
		t.Errorf("lineShift(line 1) = %v, want 0", got)
	}

	left, _ := newTestEngine(t, WithText("ab\nabcd"))
	for i := 0; i <= 2; i++ {
		got := e.IndexToOffset(i).X - left.IndexToOffset(i).X
		if got != 10 {
			t.Errorf("index %d shifted by %v, want 10", i, got)
		}
	}

	e.SetAlign(AlignEnd)
	if got := e.IndexToOffset(0); got != (Point{20, 0}) {
		t.Errorf("end aligned IndexToOffset(0) = %v, want (20, 0)", got)
	}
	if got := e.OffsetToIndex(31, 0); got.Index != 1 {
		t.Errorf("end aligned OffsetToIndex(31, 0) = %+v, want index 1", got)
	}
}
