// Package metricstest provides a deterministic Measurer for tests.
package metricstest

import (
	"strings"
	"sync"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/gogpu/textflow/metrics"
)

// Mono is a monospaced stand-in for a real glyph measurer.
//
// Every grapheme cluster is Advance pixels wide. Like a real ink-box
// measurer, leading and trailing white space is not counted, so results are
// only whitespace-accurate behind a metrics.Cache. Mono counts its calls and
// is safe for concurrent use.
type Mono struct {
	Advance float64
	Ascent  float64
	Descent float64

	// Advances overrides Advance per font descriptor.
	Advances map[string]float64

	mu    sync.Mutex
	calls int
	log   []string
}

// NewMono returns a Mono with a 10px advance, ascent 8 and descent 2.
func NewMono() *Mono {
	return &Mono{Advance: 10, Ascent: 8, Descent: 2}
}

// Measure implements metrics.Measurer.
func (m *Mono) Measure(text, font string) metrics.Extents {
	m.mu.Lock()
	m.calls++
	m.log = append(m.log, text)
	adv := m.Advance
	if a, ok := m.Advances[font]; ok {
		adv = a
	}
	m.mu.Unlock()

	ink := strings.TrimFunc(text, unicode.IsSpace)
	if ink == "" {
		return metrics.Extents{}
	}
	return metrics.Extents{
		Width:   float64(uniseg.GraphemeClusterCount(ink)) * adv,
		Ascent:  m.Ascent,
		Descent: m.Descent,
	}
}

// SetAdvance changes the advance reported for font.
func (m *Mono) SetAdvance(font string, adv float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Advances == nil {
		m.Advances = make(map[string]float64)
	}
	m.Advances[font] = adv
}

// Calls returns the number of Measure calls so far.
func (m *Mono) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Measured returns a copy of every string passed to Measure, in order.
func (m *Mono) Measured() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.log...)
}

// Reset clears the call counter and log.
func (m *Mono) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = 0
	m.log = nil
}
