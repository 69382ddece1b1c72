package backend

import (
	"log/slog"

	"github.com/gogpu/textflow/metrics"
	"github.com/gogpu/textflow/text"
)

// Backend name constants.
const (
	// BackendShaping measures HarfBuzz-shaped runs (go-text/typesetting).
	BackendShaping = "shaping"
	// BackendBounds measures ink bounds of x/image/font faces.
	BackendBounds = "bounds"
	// BackendVector measures tdewolff/canvas font faces (backend/vector).
	BackendVector = "vector"
	// BackendTerm measures terminal cells (backend/term).
	BackendTerm = "term"
)

// SoftwareBackend measures OpenType fonts on the CPU, either through the
// go-text shaper or through x/image ink bounds.
type SoftwareBackend struct {
	name        string
	logger      *slog.Logger
	initialized bool
}

// init registers the software backends on package import.
func init() {
	Register(BackendShaping, func() MeasureBackend {
		return NewSoftwareBackend(BackendShaping, nil)
	})
	Register(BackendBounds, func() MeasureBackend {
		return NewSoftwareBackend(BackendBounds, nil)
	})
}

// NewSoftwareBackend creates a software backend. name must be
// BackendShaping or BackendBounds. A nil logger discards font warnings.
func NewSoftwareBackend(name string, logger *slog.Logger) *SoftwareBackend {
	return &SoftwareBackend{name: name, logger: logger}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return b.name
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	if b.name != BackendShaping && b.name != BackendBounds {
		return ErrBackendNotAvailable
	}
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewMeasurer returns a text.ShapingMeasurer or text.BoundsMeasurer.
func (b *SoftwareBackend) NewMeasurer(fonts *text.Collection) (metrics.Measurer, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if fonts == nil {
		fonts = text.NewGoCollection()
	}

	var opts []text.MeasurerOption
	if b.logger != nil {
		opts = append(opts, text.WithLogger(b.logger))
	}
	if b.name == BackendBounds {
		return text.NewBoundsMeasurer(fonts, opts...), nil
	}
	return text.NewShapingMeasurer(fonts, opts...), nil
}
