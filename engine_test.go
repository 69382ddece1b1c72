package textflow

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/textflow/metrics"
	"github.com/gogpu/textflow/metrics/metricstest"
	"github.com/gogpu/textflow/text"
)

// newTestEngine returns an engine over a Mono measurer: every grapheme
// cluster is 10px wide, ascent 8, descent 2.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *metricstest.Mono) {
	t.Helper()
	m := metricstest.NewMono()
	return NewEngine(metrics.NewCache(m), opts...), m
}

func natural(start, end int, right float64) RenderGroup {
	return RenderGroup{Start: start, End: end, RightEdge: right}
}

func override(start, end int, right float64) RenderGroup {
	return RenderGroup{Start: start, End: end, RightEdge: right, OverridesWidth: true}
}

func assertLines(t *testing.T, e *Engine, want []Line) {
	t.Helper()
	got := e.Lines()
	if !slices.EqualFunc(got, want, func(a, b Line) bool { return slices.Equal(a, b) }) {
		t.Errorf("lines mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e, _ := newTestEngine(t)

	if e.Font() != DefaultFont || e.TabWidth() != DefaultTabWidth {
		t.Errorf("Font/TabWidth = %q/%v", e.Font(), e.TabWidth())
	}
	if !math.IsInf(e.MaxWidth(), 1) {
		t.Errorf("MaxWidth() = %v, want Unbounded", e.MaxWidth())
	}
	if e.WrapMode() != WrapNormal || e.Align() != AlignStart || e.Text() != "" {
		t.Error("unexpected defaults")
	}
	if e.ActualLineHeight() != 10 || e.ActualLineSpacing() != 0 {
		t.Errorf("line height/spacing = %v/%v, want 10/0", e.ActualLineHeight(), e.ActualLineSpacing())
	}
	if e.ActualTabWidth() != 40 {
		t.Errorf("ActualTabWidth() = %v, want 40", e.ActualTabWidth())
	}
	if e.Metrics() == nil {
		t.Error("Metrics() = nil")
	}
}

func TestNewEngineOptions(t *testing.T) {
	e, _ := newTestEngine(t,
		WithText("abc"),
		WithFont("12px Mono"),
		WithMaxWidth(math.NaN()),
		WithLineHeight(20),
		WithLineSpacing(5),
		WithTabWidth(-3),
		WithWrapMode(WrapShrink),
		WithAlign(7),
	)

	if e.Text() != "abc" || e.Font() != "12px Mono" {
		t.Errorf("Text/Font = %q/%q", e.Text(), e.Font())
	}
	if !math.IsInf(e.MaxWidth(), 1) {
		t.Errorf("NaN max width should mean Unbounded, got %v", e.MaxWidth())
	}
	if e.FullLineHeight() != 25 {
		t.Errorf("FullLineHeight() = %v, want 25", e.FullLineHeight())
	}
	if e.TabWidth() != 0 || e.WrapMode() != WrapShrink || e.Align() != AlignEnd {
		t.Errorf("TabWidth/WrapMode/Align = %v/%v/%v", e.TabWidth(), e.WrapMode(), e.Align())
	}
}

func TestNewEngineNilCachePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewEngine(nil) did not panic")
		}
	}()
	NewEngine(nil)
}

// TestEngineWithGoFont exercises the engine with a real font through both
// measurers.
func TestEngineWithGoFont(t *testing.T) {
	col := text.NewGoCollection()
	measurers := map[string]metrics.Measurer{
		"bounds":  text.NewBoundsMeasurer(col),
		"shaping": text.NewShapingMeasurer(col),
	}
	const sample = "The quick brown fox jumps over the lazy dog"

	for name, m := range measurers {
		for _, mode := range []WrapMode{WrapNormal, WrapShrink} {
			t.Run(name+"/"+mode.String(), func(t *testing.T) {
				e := NewEngine(metrics.NewCache(m),
					WithText(sample),
					WithMaxWidth(120),
					WithWrapMode(mode),
				)

				if e.LineCount() < 3 {
					t.Errorf("LineCount() = %d, want at least 3 at 120px", e.LineCount())
				}
				for li, line := range e.Lines() {
					content := line
					if last := line[len(line)-1]; last.OverridesWidth && last.Len() > 0 {
						content = line[:len(line)-1]
					}
					if w := content.Width(); w > 120+1e-9 {
						t.Errorf("line %d content width %v exceeds 120", li, w)
					}
				}

				assertRoundTrip(t, e)
			})
		}
	}
}
