package vector

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/gogpu/textflow/surface"
)

// Surface draws text onto a canvas.Context whose coordinate system has
// its origin at the top left (canvas.CartesianIV). Coordinates are pixels
// and converted to millimetres.
//
// Runs entirely outside the clip are skipped. Runs crossing its edge are
// drawn whole. Surface is not safe for concurrent use.
type Surface struct {
	ctx   *canvas.Context
	fonts *Fonts
	clip  surface.Rect
	clips bool
	drawn int
	err   error
}

var _ surface.Surface = (*Surface)(nil)

// NewSurface returns a surface drawing on ctx.
func NewSurface(ctx *canvas.Context, fonts *Fonts) *Surface {
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &Surface{ctx: ctx, fonts: fonts}
}

// Clip implements surface.Surface.
func (s *Surface) Clip(r surface.Rect) {
	s.clip = r
	s.clips = true
}

// DrawText implements surface.Surface.
func (s *Surface) DrawText(str string, x, baseline float64, desc string, fill color.Color) {
	face, err := s.fonts.Face(desc)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}

	fm := face.Metrics()
	if s.clips {
		box := surface.Rect{
			X:      x,
			Y:      baseline - fm.Ascent*pxPerMm,
			Width:  face.TextWidth(str) * pxPerMm,
			Height: (fm.Ascent + fm.Descent) * pxPerMm,
		}
		if box.Intersect(s.clip).Empty() {
			return
		}
	}

	colored := *face
	if fill != nil {
		colored.Fill.Color = color.RGBAModel.Convert(fill).(color.RGBA)
	}
	s.ctx.DrawText(x*mmPerPx, baseline*mmPerPx, canvas.NewTextLine(&colored, str, canvas.Left))
	s.drawn++
}

// Drawn returns the number of runs drawn so far.
func (s *Surface) Drawn() int {
	return s.drawn
}

// Err returns the first font resolution error of a DrawText call.
func (s *Surface) Err() error {
	return s.err
}

// Document is a single-page vector canvas encoded as PDF.
type Document struct {
	*Surface
	c             *canvas.Canvas
	width, height float64 // mm
}

var _ surface.Canvas = (*Document)(nil)

// NewDocument returns a width x height pixel page. Nil fonts select the
// Go fonts.
func NewDocument(width, height int, fonts *Fonts) *Document {
	if fonts == nil {
		fonts = NewFonts(nil)
	}
	w := float64(max(width, 1)) * mmPerPx
	h := float64(max(height, 1)) * mmPerPx
	c := canvas.New(w, h)
	return &Document{
		Surface: NewSurface(canvas.NewContext(c), fonts),
		c:       c,
		width:   w,
		height:  h,
	}
}

// Fill paints the whole page with col.
func (d *Document) Fill(col color.Color) {
	d.ctx.SetFillColor(col)
	d.ctx.DrawPath(0, 0, canvas.Rectangle(d.width, d.height))
}

// Encode implements surface.Canvas by writing a one-page PDF. It fails if
// a DrawText call could not resolve its font.
func (d *Document) Encode(w io.Writer) error {
	if d.err != nil {
		return fmt.Errorf("vector: draw: %w", d.err)
	}
	out := pdf.New(w, d.width, d.height, nil)
	d.c.RenderTo(out)
	if err := out.Close(); err != nil {
		return fmt.Errorf("vector: write pdf: %w", err)
	}
	return nil
}

func init() {
	surface.Register(surface.Format{
		Name:       "pdf",
		Priority:   8,
		Extensions: []string{".pdf"},
		New: func(opts surface.Options) (surface.Canvas, error) {
			d := NewDocument(opts.Width, opts.Height, NewFonts(opts.Fonts))
			if opts.Background != nil {
				d.Fill(opts.Background)
			}
			return d, nil
		},
	})
}
