package figure

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores figures by name, providing discovery and duplication
// safeguards. The zero value is not usable; call NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	figures map[string]Figure
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		figures: make(map[string]Figure),
	}
}

// Register adds a figure by its Name(). Duplicate names return an error.
func (r *Registry) Register(fig Figure) error {
	if fig == nil {
		return fmt.Errorf("figure: figure is required")
	}
	name := fig.Name()
	if name == "" {
		return fmt.Errorf("figure: figure name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.figures[name]; exists {
		return fmt.Errorf("figure: figure %q already registered", name)
	}

	r.figures[name] = fig
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(fig Figure) {
	if err := r.Register(fig); err != nil {
		panic(err)
	}
}

// Get retrieves a figure by name.
func (r *Registry) Get(name string) (Figure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fig, ok := r.figures[name]
	if !ok {
		return nil, fmt.Errorf("figure: figure %q not found", name)
	}
	return fig, nil
}

// List returns a sorted list of figure names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.figures))
	for name := range r.figures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a figure is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.figures[name]
	return ok
}

// Len reports the number of registered figures.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.figures)
}
