package text

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font"

	"github.com/gogpu/textflow/cache"
	"github.com/gogpu/textflow/metrics"
)

// Collection maps family names to font sources and caches faces per size.
//
// Family lookup is case-insensitive. Collection is safe for concurrent use.
type Collection struct {
	mu       sync.RWMutex
	sources  map[string]*FontSource
	fallback string

	faces *cache.ShardedCache[faceKey, *lockedFace]
}

type faceKey struct {
	family string
	size   float64
}

func hashFaceKey(k faceKey) uint64 {
	return cache.StringHasher(k.family) ^ math.Float64bits(k.size)
}

// lockedFace serializes use of an x/image face, which keeps scratch
// buffers and is not safe for concurrent use.
type lockedFace struct {
	mu   sync.Mutex
	face font.Face
	err  error
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		sources: make(map[string]*FontSource),
		faces:   cache.NewSharded[faceKey, *lockedFace](0, hashFaceKey),
	}
}

// Add registers src under family, replacing any previous source.
func (c *Collection) Add(family string, src *FontSource) {
	key := normalizeFamily(family)

	c.mu.Lock()
	c.sources[key] = src
	c.mu.Unlock()

	// Faces are keyed by family, so drop any built from the old source.
	c.faces.Clear()
}

// AddFile loads a font file and registers it under family. An empty family
// uses the name stored in the font.
func (c *Collection) AddFile(family, path string, opts ...SourceOption) error {
	src, err := NewFontSourceFromFile(path, opts...)
	if err != nil {
		return err
	}
	if family == "" {
		family = src.Name()
	}
	c.Add(family, src)
	return nil
}

// SetFallback names the family used for descriptors whose family is not
// registered. An empty name disables the fallback.
func (c *Collection) SetFallback(family string) {
	c.mu.Lock()
	c.fallback = normalizeFamily(family)
	c.mu.Unlock()
}

// Lookup returns the source registered under family, without fallback.
func (c *Collection) Lookup(family string) (*FontSource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if src, ok := c.sources[normalizeFamily(family)]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
}

// Families returns the registered family keys in sorted order.
func (c *Collection) Families() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	c.mu.RUnlock()
	slices.Sort(names)
	return names
}

// resolve returns the registered family key for family, applying the
// fallback when family is unknown.
func (c *Collection) resolve(family string) (string, *FontSource, error) {
	key := normalizeFamily(family)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if src, ok := c.sources[key]; ok {
		return key, src, nil
	}
	if src, ok := c.sources[c.fallback]; ok && c.fallback != "" {
		return c.fallback, src, nil
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
}

// Source parses desc and returns the font source it resolves to.
func (c *Collection) Source(desc string) (*FontSource, metrics.FontSpec, error) {
	spec, err := metrics.ParseFont(desc)
	if err != nil {
		return nil, spec, err
	}
	_, src, err := c.resolve(spec.Family)
	if err != nil {
		return nil, spec, err
	}
	return src, spec, nil
}

// WithFace parses desc, resolves its face and calls fn while holding the
// face's lock. fn must not retain the face.
func (c *Collection) WithFace(desc string, fn func(f font.Face, spec metrics.FontSpec)) error {
	spec, err := metrics.ParseFont(desc)
	if err != nil {
		return err
	}
	key, src, err := c.resolve(spec.Family)
	if err != nil {
		return err
	}

	lf := c.faces.GetOrCreate(faceKey{family: key, size: spec.Size}, func() *lockedFace {
		face, err := src.NewFace(spec.Size)
		if err != nil {
			return &lockedFace{err: &FaceError{Family: key, Size: spec.Size, Err: err}}
		}
		return &lockedFace{face: face}
	})
	if lf.err != nil {
		return lf.err
	}

	lf.mu.Lock()
	defer lf.mu.Unlock()
	fn(lf.face, spec)
	return nil
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
