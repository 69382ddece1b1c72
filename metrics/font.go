package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFont is returned by ParseFont for descriptors it cannot read.
var ErrInvalidFont = errors.New("metrics: invalid font descriptor")

// Unit conversions. Descriptors follow CSS: 1pt = 96/72 px.
const (
	pxPerPt = 96.0 / 72.0
)

// FontSpec is a parsed font descriptor.
type FontSpec struct {
	// Size is the font size in pixels.
	Size float64

	// Family is the font family name, without surrounding quotes.
	Family string
}

// Points returns the size in typographic points.
func (f FontSpec) Points() float64 {
	return f.Size / pxPerPt
}

// String returns the canonical "<size>px <family>" form.
func (f FontSpec) String() string {
	return strconv.FormatFloat(f.Size, 'g', -1, 64) + "px " + f.Family
}

// ParseFont parses a descriptor of the form "<size>px <family>" or
// "<size>pt <family>". The family may be quoted and may contain spaces.
//
//	ParseFont("16px Go Mono")     // {16, "Go Mono"}
//	ParseFont(`12pt "Noto Sans"`) // {16, "Noto Sans"}
func ParseFont(desc string) (FontSpec, error) {
	desc = strings.TrimSpace(desc)
	sizeStr, family, ok := strings.Cut(desc, " ")
	if !ok {
		return FontSpec{}, fmt.Errorf("%w: %q: missing family", ErrInvalidFont, desc)
	}

	var scale float64
	switch {
	case strings.HasSuffix(sizeStr, "px"):
		scale = 1
	case strings.HasSuffix(sizeStr, "pt"):
		scale = pxPerPt
	default:
		return FontSpec{}, fmt.Errorf("%w: %q: size needs px or pt unit", ErrInvalidFont, desc)
	}

	size, err := strconv.ParseFloat(sizeStr[:len(sizeStr)-2], 64)
	if err != nil || size <= 0 {
		return FontSpec{}, fmt.Errorf("%w: %q: bad size %q", ErrInvalidFont, desc, sizeStr)
	}

	family = strings.Trim(strings.TrimSpace(family), `"'`)
	if family == "" {
		return FontSpec{}, fmt.Errorf("%w: %q: missing family", ErrInvalidFont, desc)
	}

	return FontSpec{Size: size * scale, Family: family}, nil
}
