package textflow

import (
	"image/color"

	"github.com/gogpu/textflow/surface"
)

// Paint draws the text with its top-left corner at (x, y), clipped to the
// text box. Tabs, newlines and collapsed blanks are not drawn; each
// natural group is drawn with one DrawText call.
func (e *Engine) Paint(s surface.Surface, fill color.Color, x, y float64) {
	e.ensureUpToDate()

	s.Clip(surface.Rect{X: x, Y: y, Width: e.width, Height: e.height})

	fl := e.fullLineHeight()
	baseline := y + e.Baseline()
	for _, line := range e.lines {
		shift := e.lineShift(line)
		left := 0.0
		for _, g := range line {
			if !g.OverridesWidth && g.RightEdge > left {
				s.DrawText(e.text[g.Start:g.End], x+left+shift, baseline, e.font, fill)
			}
			left = g.RightEdge
		}
		baseline += fl
	}
}
