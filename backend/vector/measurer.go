package vector

import (
	"sync"

	"github.com/gogpu/textflow/backend"
	"github.com/gogpu/textflow/metrics"
	"github.com/gogpu/textflow/text"
)

// Measurer implements metrics.Measurer with canvas font faces.
//
// Widths are advances, so blanks count and a metrics.Cache around the
// Measurer leaves them unchanged. Ascent and descent are the font's, not
// the ink's.
type Measurer struct {
	fonts *Fonts

	// The shaper behind canvas faces is not safe for concurrent use.
	mu sync.Mutex
}

var _ metrics.Measurer = (*Measurer)(nil)

// NewMeasurer returns a measurer over fonts.
func NewMeasurer(fonts *Fonts) *Measurer {
	return &Measurer{fonts: fonts}
}

// Measure implements metrics.Measurer. Unresolvable fonts are logged and
// measure as zero.
func (m *Measurer) Measure(s, desc string) metrics.Extents {
	if s == "" {
		return metrics.Extents{}
	}
	face, err := m.fonts.Face(desc)
	if err != nil {
		m.fonts.logger.Warn("vector: cannot measure", "font", desc, "err", err)
		return metrics.Extents{}
	}

	m.mu.Lock()
	w := face.TextWidth(s)
	fm := face.Metrics()
	m.mu.Unlock()

	return metrics.Extents{
		Width:   w * pxPerMm,
		Ascent:  fm.Ascent * pxPerMm,
		Descent: fm.Descent * pxPerMm,
	}
}

// vectorBackend exposes the Measurer through the backend registry.
type vectorBackend struct {
	initialized bool
}

func init() {
	backend.Register(backend.BackendVector, func() backend.MeasureBackend {
		return &vectorBackend{}
	})
}

func (b *vectorBackend) Name() string { return backend.BackendVector }

func (b *vectorBackend) Init() error {
	b.initialized = true
	return nil
}

func (b *vectorBackend) Close() { b.initialized = false }

func (b *vectorBackend) NewMeasurer(fonts *text.Collection) (metrics.Measurer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	return NewMeasurer(NewFonts(fonts)), nil
}
