// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// CanvasFactory creates a Canvas sized and filled according to opts.
type CanvasFactory func(opts Options) (Canvas, error)

// Format describes an output format a Canvas can be encoded to.
type Format struct {
	// Name identifies the format ("png", "pdf", "term").
	Name string

	// Priority orders formats for NewCanvas (higher first).
	Priority int

	// Extensions lists file name extensions written in this format,
	// including the dot.
	Extensions []string

	// New creates canvases.
	New CanvasFactory

	// Available reports whether the format works on this system.
	// Nil means always.
	Available func() bool
}

func (f *Format) available() bool {
	return f.Available == nil || f.Available()
}

// Registry maps format names to canvas factories.
//
// Packages providing a format register it from init:
//
//	func init() {
//	    surface.Register(surface.Format{Name: "pdf", Priority: 8, Extensions: []string{".pdf"}, New: newDocument})
//	}
type Registry struct {
	mu      sync.RWMutex
	formats map[string]*Format
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]*Format)}
}

var defaultRegistry = NewRegistry()

// Register adds f to the default registry.
func Register(f Format) { defaultRegistry.Register(f) }

// Unregister removes a format from the default registry.
func Unregister(name string) { defaultRegistry.Unregister(name) }

// Formats lists the default registry's format names, highest priority first.
func Formats() []string { return defaultRegistry.Formats() }

// Lookup returns the named format of the default registry.
func Lookup(name string) (Format, bool) { return defaultRegistry.Lookup(name) }

// FormatForPath returns the default registry's format writing path's extension.
func FormatForPath(path string) (string, bool) { return defaultRegistry.FormatForPath(path) }

// NewCanvas creates a canvas in the best available format of the default registry.
func NewCanvas(opts Options) (Canvas, error) { return defaultRegistry.NewCanvas(opts) }

// NewCanvasByName creates a canvas in the named format of the default registry.
func NewCanvasByName(name string, opts Options) (Canvas, error) {
	return defaultRegistry.NewCanvasByName(name, opts)
}

// Register adds f, replacing a format of the same name. Extensions are
// matched case-insensitively.
func (r *Registry) Register(f Format) {
	exts := make([]string, len(f.Extensions))
	for i, e := range f.Extensions {
		exts[i] = strings.ToLower(e)
	}
	f.Extensions = exts

	r.mu.Lock()
	r.formats[f.Name] = &f
	r.mu.Unlock()
}

// Unregister removes the named format.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.formats, name)
	r.mu.Unlock()
}

// Formats lists every registered name, highest priority first and ties
// by name.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for _, f := range r.ordered() {
		names = append(names, f.Name)
	}
	return names
}

// Lookup returns a copy of the named format.
func (r *Registry) Lookup(name string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[name]
	if !ok {
		return Format{}, false
	}
	out := *f
	out.Extensions = slices.Clone(f.Extensions)
	return out, true
}

// FormatForPath returns the highest priority format listing the extension
// of path.
func (r *Registry) FormatForPath(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.ordered() {
		if slices.Contains(f.Extensions, ext) {
			return f.Name, true
		}
	}
	return "", false
}

// NewCanvas tries available formats in priority order and returns the
// first canvas created without error.
func (r *Registry) NewCanvas(opts Options) (Canvas, error) {
	r.mu.RLock()
	var candidates []*Format
	for _, f := range r.ordered() {
		if f.available() {
			candidates = append(candidates, f)
		}
	}
	r.mu.RUnlock()

	var errs []error
	for _, f := range candidates {
		c, err := f.New(opts)
		if err == nil {
			return c, nil
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, ErrNoFormatAvailable
}

// NewCanvasByName creates a canvas in the named format.
func (r *Registry) NewCanvasByName(name string, opts Options) (Canvas, error) {
	r.mu.RLock()
	f, ok := r.formats[name]
	r.mu.RUnlock()

	switch {
	case !ok:
		return nil, &UnknownFormatError{Name: name}
	case !f.available():
		return nil, &FormatUnavailableError{Name: name}
	}
	return f.New(opts)
}

// ordered requires r.mu.
func (r *Registry) ordered() []*Format {
	out := make([]*Format, 0, len(r.formats))
	for _, f := range r.formats {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b *Format) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// ErrNoFormatAvailable is returned by NewCanvas when nothing usable is
// registered.
var ErrNoFormatAvailable = errors.New("surface: no output format available")

// UnknownFormatError reports a format name that is not registered.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return "surface: unknown output format " + e.Name
}

// FormatUnavailableError reports a registered format that cannot be used
// on this system.
type FormatUnavailableError struct {
	Name string
}

func (e *FormatUnavailableError) Error() string {
	return "surface: output format unavailable: " + e.Name
}

func init() {
	Register(Format{
		Name:       "png",
		Priority:   10,
		Extensions: []string{".png"},
		New: func(opts Options) (Canvas, error) {
			s := NewImageSurface(opts.Width, opts.Height, opts.Fonts)
			if opts.Background != nil {
				s.Clear(opts.Background)
			}
			return s, nil
		},
	})
	Register(Format{
		Name:       "commands",
		Extensions: []string{".cmd", ".log"},
		New: func(Options) (Canvas, error) {
			return NewRecorder(), nil
		},
	})
}
