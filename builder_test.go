package textflow

import (
	"slices"
	"testing"
)

// builderEngine returns an engine with text set and a 40px tab, without
// running a wrap pass.
func builderEngine(t *testing.T, s string) *Engine {
	t.Helper()
	e, _ := newTestEngine(t)
	e.text = s
	e.tabPx = 40
	return e
}

func TestMeasureRange(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     Line
	}{
		{
			name:     "natural run",
			text:     "hello",
			maxWidth: Unbounded,
			want:     Line{natural(0, 5, 50)},
		},
		{
			name:     "tab splits runs",
			text:     "ab\tcd",
			maxWidth: Unbounded,
			want:     Line{natural(0, 2, 20), override(2, 3, 40), natural(3, 5, 60)},
		},
		{
			name:     "tab on a stop moves to the next one",
			text:     "abcd\tx",
			maxWidth: Unbounded,
			want:     Line{natural(0, 4, 40), override(4, 5, 80), natural(5, 6, 90)},
		},
		{
			name:     "leading tab",
			text:     "\tx",
			maxWidth: Unbounded,
			want:     Line{override(0, 1, 40), natural(1, 2, 50)},
		},
		{
			name:     "newline is zero width",
			text:     "ab\n",
			maxWidth: Unbounded,
			want:     Line{natural(0, 2, 20), override(2, 3, 20)},
		},
		{
			name:     "text after newline is discarded",
			text:     "ab\ncd",
			maxWidth: Unbounded,
			want:     Line{natural(0, 2, 20), override(2, 3, 20)},
		},
		{
			name:     "lone cluster wider than max width fits",
			text:     "W",
			maxWidth: 5,
			want:     Line{natural(0, 1, 10)},
		},
		{
			name:     "lone combined cluster fits",
			text:     "é",
			maxWidth: 5,
			want:     Line{natural(0, 3, 10)},
		},
		{
			name:     "exact fit",
			text:     "abc",
			maxWidth: 30,
			want:     Line{natural(0, 3, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := builderEngine(t, tt.text)
			var line Line
			if !e.measureRange(&line, 0, len(tt.text), tt.maxWidth) {
				t.Fatal("measureRange reported no fit")
			}
			if !slices.Equal(line, tt.want) {
				t.Errorf("line = %v, want %v", line, tt.want)
			}
		})
	}
}

func TestMeasureRangeOverflowLeavesLine(t *testing.T) {
	e := builderEngine(t, "ab cd")
	line := Line{natural(0, 3, 30)}
	before := slices.Clone(line)

	if e.measureRange(&line, 3, 5, 40) {
		t.Fatal("\"ab cd\" (50px) should not fit in 40px")
	}
	if !slices.Equal(line, before) {
		t.Errorf("line modified on overflow: %v", line)
	}

	// Two tabs never count as a lone cluster.
	e = builderEngine(t, "\t\t")
	line = nil
	if e.measureRange(&line, 0, 2, 50) {
		t.Error("two tabs (80px) should not fit in 50px")
	}
}

func TestMeasureRangeFusesNaturalRuns(t *testing.T) {
	e := builderEngine(t, "hello world")
	line := Line{natural(0, 6, 60)}

	if !e.measureRange(&line, 6, 11, Unbounded) {
		t.Fatal("no fit")
	}
	want := Line{natural(0, 11, 110)}
	if !slices.Equal(line, want) {
		t.Errorf("line = %v, want %v", line, want)
	}
}

func TestMeasureRangeRemeasuresStaleTail(t *testing.T) {
	e := builderEngine(t, "ab\tcd")
	var line Line
	e.measureRange(&line, 0, 5, Unbounded)

	// The text after the tab grows; only the tail group is rebuilt.
	e.text = "ab\tcdef"
	if !e.measureRange(&line, 4, 7, Unbounded) {
		t.Fatal("no fit")
	}
	want := Line{natural(0, 2, 20), override(2, 3, 40), natural(3, 7, 80)}
	if !slices.Equal(line, want) {
		t.Errorf("line = %v, want %v", line, want)
	}
}

func TestMeasureRangeDoesNotAlias(t *testing.T) {
	e := builderEngine(t, "abc def")
	line := make(Line, 1, 8)
	line[0] = override(0, 0, 0)
	prev := line

	e.measureRange(&line, 0, 3, Unbounded)
	e.measureRange(&line, 3, 7, Unbounded)
	if prev[0] != override(0, 0, 0) {
		t.Errorf("previous backing array modified: %v", prev[:1])
	}
}

func TestNextTabStopZeroWidth(t *testing.T) {
	e := builderEngine(t, "")
	e.tabPx = 0
	if got := e.nextTabStop(25); got != 25 {
		t.Errorf("nextTabStop with zero tab = %v, want 25", got)
	}
}
