package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when a family is not in the Collection
	// and no fallback is configured.
	ErrUnknownFamily = errors.New("text: unknown font family")
)

// FaceError is returned when a face cannot be created for a font size.
type FaceError struct {
	Family string
	Size   float64
	Err    error
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("text: face %s at %gpx: %v", e.Family, e.Size, e.Err)
}

func (e *FaceError) Unwrap() error {
	return e.Err
}
