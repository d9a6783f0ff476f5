package modifier

import (
	"fmt"
	"sync"
)

// Registry manages the active modifier set. Registration order is
// preserved: contributions must combine in a deterministic, reproducible
// order across runs, so GetAll returns modifiers as they were registered.
type Registry struct {
	modifiers []Modifier
	index     map[string]Modifier
	mu        sync.RWMutex
}

// NewRegistry creates a new empty modifier registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]Modifier),
	}
}

// Register appends a modifier to the registry.
// Returns an error if a modifier with the same ID already exists.
func (r *Registry) Register(m Modifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[m.ID()]; exists {
		return fmt.Errorf("modifier %s already registered", m.ID())
	}

	r.modifiers = append(r.modifiers, m)
	r.index[m.ID()] = m
	return nil
}

// Get returns a modifier by ID, or nil if it doesn't exist.
func (r *Registry) Get(id string) Modifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.index[id]
}

// GetAll returns all registered modifiers in registration order.
func (r *Registry) GetAll() []Modifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Modifier, len(r.modifiers))
	copy(out, r.modifiers)
	return out
}

// Count returns the number of registered modifiers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.modifiers)
}
