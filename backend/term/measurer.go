package term

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/width"

	"github.com/gogpu/textflow/backend"
	"github.com/gogpu/textflow/metrics"
	"github.com/gogpu/textflow/text"
)

// Option configures a Measurer.
type Option func(*config)

type config struct {
	ambiguousWide bool
}

// WithAmbiguousWide makes East Asian ambiguous characters (such as "±" or
// Cyrillic letters in CJK locales) two cells wide.
func WithAmbiguousWide(wide bool) Option {
	return func(c *config) {
		c.ambiguousWide = wide
	}
}

// Measurer implements metrics.Measurer in terminal cells.
// It is stateless and safe for concurrent use.
type Measurer struct {
	config config
}

var _ metrics.Measurer = (*Measurer)(nil)

// NewMeasurer returns a cell measurer.
func NewMeasurer(opts ...Option) *Measurer {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Measurer{config: cfg}
}

// Measure implements metrics.Measurer. Blanks occupy cells, so unlike an
// ink measurer the result includes leading and trailing spaces.
func (m *Measurer) Measure(s, _ string) metrics.Extents {
	if s == "" {
		return metrics.Extents{}
	}
	return metrics.Extents{
		Width:  float64(m.Cells(s)),
		Ascent: 1,
	}
}

// Cells returns the number of cells s occupies.
func (m *Measurer) Cells(s string) int {
	n := 0
	state := -1
	for s != "" {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		n += m.clusterWidth(cluster, w)
	}
	return n
}

// clusterWidth applies the ambiguous width policy on top of the width
// uniseg reports, which treats ambiguous characters as narrow.
func (m *Measurer) clusterWidth(cluster string, w int) int {
	if !m.config.ambiguousWide || w != 1 {
		return w
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	if width.LookupRune(r).Kind() == width.EastAsianAmbiguous {
		return 2
	}
	return w
}

// termBackend exposes the Measurer through the backend registry.
type termBackend struct {
	initialized bool
}

func init() {
	backend.Register(backend.BackendTerm, func() backend.MeasureBackend {
		return &termBackend{}
	})
}

func (b *termBackend) Name() string { return backend.BackendTerm }

func (b *termBackend) Init() error {
	b.initialized = true
	return nil
}

func (b *termBackend) Close() { b.initialized = false }

// NewMeasurer ignores fonts: cells do not depend on the font.
func (b *termBackend) NewMeasurer(*text.Collection) (metrics.Measurer, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	return NewMeasurer(), nil
}
