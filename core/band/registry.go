package band

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownBand is returned when a band name is not registered.
var ErrUnknownBand = errors.New("unknown band")

// Registry holds band profiles keyed by name.
type Registry struct {
	mu    sync.RWMutex
	bands map[Name]Band
}

// NewRegistry creates a registry holding the given bands. Invalid bands are
// reported as an error.
func NewRegistry(bands ...Band) (*Registry, error) {
	r := &Registry{bands: make(map[Name]Band, len(bands))}
	for _, b := range bands {
		if err := r.Register(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a registry containing the builtin bands.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("builtin bands: %v", err))
	}
	return r
}

// Register validates b and adds it, replacing any band with the same name.
func (r *Registry) Register(b Band) error {
	if err := b.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bands[b.Name] = b.clone()
	return nil
}

// Get returns the band registered under name.
func (r *Registry) Get(name Name) (Band, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bands[name]
	if !ok {
		return Band{}, fmt.Errorf("%w: %s", ErrUnknownBand, name)
	}
	return b.clone(), nil
}

// Names lists the registered band names in lexical order.
func (r *Registry) Names() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]Name, 0, len(r.bands))
	for n := range r.bands {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
