package backend

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// BackendFactory creates a new, uninitialized backend.
type BackendFactory func() MeasureBackend

var (
	registryMu sync.RWMutex
	factories  = make(map[string]BackendFactory)

	// preferred lists the bundled backends from most to least faithful.
	// Backends registered under other names follow in name order.
	preferred = []string{BackendShaping, BackendBounds, BackendVector, BackendTerm}
)

// Register makes a backend available under name, replacing any previous
// factory. Backend packages call it from init.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	factories[name] = factory
	registryMu.Unlock()
}

// Unregister removes the backend registered under name.
func Unregister(name string) {
	registryMu.Lock()
	delete(factories, name)
	registryMu.Unlock()
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return sortedNames()
}

// IsRegistered reports whether name has a factory.
func IsRegistered(name string) bool {
	registryMu.RLock()
	_, ok := factories[name]
	registryMu.RUnlock()
	return ok
}

// Get creates the backend registered under name, or returns nil.
func Get(name string) MeasureBackend {
	registryMu.RLock()
	factory := factories[name]
	registryMu.RUnlock()

	if factory == nil {
		return nil
	}
	return factory()
}

// Default creates the most preferred registered backend, or returns nil
// when nothing is registered.
func Default() MeasureBackend {
	for _, name := range candidates() {
		if b := Get(name); b != nil {
			return b
		}
	}
	return nil
}

// MustDefault is like Default but panics when no backend is registered.
func MustDefault() MeasureBackend {
	b := Default()
	if b == nil {
		panic("backend: no backend registered")
	}
	return b
}

// InitDefault initializes backends in preference order and returns the
// first one whose Init succeeds.
func InitDefault() (MeasureBackend, error) {
	var errs []error
	for _, name := range candidates() {
		b := Get(name)
		if b == nil {
			continue
		}
		if err := b.Init(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		return b, nil
	}
	if len(errs) == 0 {
		return nil, ErrBackendNotAvailable
	}
	return nil, fmt.Errorf("%w: %w", ErrBackendNotAvailable, errors.Join(errs...))
}

// InitByName creates and initializes the backend registered under name.
func InitByName(name string) (MeasureBackend, error) {
	b := Get(name)
	if b == nil {
		return nil, fmt.Errorf("%w: %q is not registered", ErrBackendNotAvailable, name)
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("backend %s: %w", name, err)
	}
	return b, nil
}

// candidates returns every registered name, preferred ones first.
func candidates() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for _, name := range preferred {
		if _, ok := factories[name]; ok {
			names = append(names, name)
		}
	}
	for _, name := range sortedNames() {
		if !slices.Contains(preferred, name) {
			names = append(names, name)
		}
	}
	return names
}

// sortedNames requires registryMu.
func sortedNames() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
