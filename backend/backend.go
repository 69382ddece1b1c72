package backend

import (
	"errors"

	"github.com/gogpu/textflow/metrics"
	"github.com/gogpu/textflow/text"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// MeasureBackend is the interface for measurement backends.
// It abstracts how glyph extents are obtained, allowing engines to measure
// with shaped OpenType fonts, plain ink bounds, vector font faces or
// terminal cells.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type MeasureBackend interface {
	// Name returns the backend identifier (e.g., "shaping", "term").
	Name() string

	// Init initializes the backend.
	// This should be called before NewMeasurer.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewMeasurer returns a measurement primitive resolving font
	// descriptors through fonts. A nil collection selects the Go fonts.
	// Backends that do not read font files ignore it.
	NewMeasurer(fonts *text.Collection) (metrics.Measurer, error)
}
