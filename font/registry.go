package font

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when looking up an unknown font name.
var ErrNotFound = errors.New("font: not found")

// Registry maps names to fonts.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]Font
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[string]Font)}
}

// Standard returns a new registry with the fonts shipped in this package.
func Standard() *Registry {
	r := NewRegistry()
	r.Register("classic", Classic)
	r.Register("oled5x8", Classic.Pack(printable))
	r.Register("TomThumb", TomThumb)
	r.Register("basic7x13", Basic7x13())
	return r
}

// printable lists the printable ASCII characters.
const printable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// Register adds (or replaces) a font.
func (r *Registry) Register(name string, f Font) {
	r.mu.Lock()
	r.fonts[name] = f
	r.mu.Unlock()
}

// Lookup returns the font registered as name.
func (r *Registry) Lookup(name string) (Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.fonts[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("font: %q: %w", name, ErrNotFound)
}

// Names returns the sorted font names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
