package term

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/gogpu/textflow/surface"
)

// Surface draws text onto a tcell screen, one grapheme cluster per cell
// (two for wide clusters). X is a column and the baseline is the row below
// the text, matching a Measurer with ascent 1.
type Surface struct {
	screen tcell.Screen
	m      *Measurer
	clip   surface.Rect
	mu     sync.Mutex
}

var _ surface.Surface = (*Surface)(nil)

// NewSurface returns a surface drawing on screen, which must be
// initialized. A nil measurer selects NewMeasurer().
func NewSurface(screen tcell.Screen, m *Measurer) *Surface {
	if m == nil {
		m = NewMeasurer()
	}
	w, h := screen.Size()
	return &Surface{
		screen: screen,
		m:      m,
		clip:   surface.Rect{Width: float64(w), Height: float64(h)},
	}
}

// Screen returns the underlying screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// Clip implements surface.Surface. The clip is intersected with the
// screen.
func (s *Surface) Clip(r surface.Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	s.clip = r.Intersect(surface.Rect{Width: float64(w), Height: float64(h)})
}

// DrawText implements surface.Surface. Cells outside the clip are left
// untouched; the font descriptor is ignored.
func (s *Surface) DrawText(str string, x, baseline float64, _ string, fill color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := int(math.Round(baseline)) - 1
	if float64(row) < s.clip.Y || float64(row) >= s.clip.Bottom() {
		return
	}

	style := convertStyle(fill)
	col := int(math.Round(x))
	state := -1
	for str != "" {
		var cluster string
		var w int
		cluster, str, w, state = uniseg.FirstGraphemeClusterInString(str, state)
		w = s.m.clusterWidth(cluster, w)
		if w == 0 {
			continue
		}
		if float64(col) >= s.clip.X && float64(col+w) <= s.clip.Right() {
			runes := []rune(cluster)
			s.screen.SetContent(col, row, runes[0], runes[1:], style)
		}
		col += w
	}
}

// convertStyle maps a fill color to a tcell foreground.
func convertStyle(fill color.Color) tcell.Style {
	style := tcell.StyleDefault
	if fill == nil {
		return style
	}
	r, g, b, a := fill.RGBA()
	if a == 0 {
		return style
	}
	return style.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

// Canvas is a Surface over an in-memory screen. Encode writes the screen
// contents as text, one line per row with trailing blanks removed.
type Canvas struct {
	*Surface
	sim tcell.SimulationScreen
}

var _ surface.Canvas = (*Canvas)(nil)

// NewCanvas returns a cols x rows canvas.
func NewCanvas(cols, rows int) (*Canvas, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	sim.SetSize(max(cols, 1), max(rows, 1))
	sim.Clear()
	return &Canvas{Surface: NewSurface(sim, nil), sim: sim}, nil
}

// Close releases the screen.
func (c *Canvas) Close() {
	c.sim.Fini()
}

// Text returns the screen contents.
func (c *Canvas) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sim.Show()
	w, h := c.sim.Size()
	var buf bytes.Buffer
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; {
			mainc, combc, _, width := c.sim.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, r := range combc {
				line.WriteRune(r)
			}
			x += max(width, 1)
		}
		buf.WriteString(strings.TrimRight(line.String(), " "))
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Encode implements surface.Canvas.
func (c *Canvas) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, c.Text()); err != nil {
		return fmt.Errorf("term: encode: %w", err)
	}
	return nil
}

func init() {
	surface.Register(surface.Format{
		Name:       "term",
		Priority:   5,
		Extensions: []string{".txt"},
		New: func(opts surface.Options) (surface.Canvas, error) {
			return NewCanvas(opts.Width, opts.Height)
		},
	})
}
