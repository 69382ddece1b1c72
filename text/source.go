package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	ot "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource is one parsed font file. Faces of any size are created from
// it by both measurers: BoundsMeasurer uses the x/image parse, and
// ShapingMeasurer a go-text parse made on first use.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data    []byte
	sfnt    *opentype.Font
	family  string
	hinting font.Hinting

	shapeOnce sync.Once
	shapeFont *ot.Font
	shapeErr  error
}

// NewFontSource parses TTF or OTF data. The data is copied.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	data = bytes.Clone(data)
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &FontSource{
		data:    data,
		sfnt:    f,
		family:  familyName(f),
		hinting: cfg.hinting,
	}, nil
}

// NewFontSourceFromFile reads and parses the font file at path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user supplied font path
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the family name recorded in the font, or "Unknown Font".
func (s *FontSource) Name() string {
	return s.family
}

// Data returns the font bytes. Callers must not modify them.
func (s *FontSource) Data() []byte {
	return s.data
}

// NewFace returns an x/image face with an em of size pixels. Faces are not
// safe for concurrent use.
func (s *FontSource) NewFace(size float64) (font.Face, error) {
	// At 72 DPI a point is a pixel.
	return opentype.NewFace(s.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: s.hinting,
	})
}

// shapingFont returns the go-text parse of the font, shared by all callers.
func (s *FontSource) shapingFont() (*ot.Font, error) {
	s.shapeOnce.Do(func() {
		face, err := ot.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.shapeErr = fmt.Errorf("text: parse %s for shaping: %w", s.family, err)
			return
		}
		s.shapeFont = face.Font
	})
	return s.shapeFont, s.shapeErr
}

func familyName(f *opentype.Font) string {
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(&buf, id); err == nil && name != "" {
			return name
		}
	}
	return "Unknown Font"
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
