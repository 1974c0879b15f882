package plugin

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered plugin descriptors keyed by name.
// It is safe for concurrent registration from package init functions.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Descriptor

	// active gates discovery. When nil every registered plugin is
	// discoverable; the CLI installs a manifest-backed predicate so that
	// only activated plugins are returned.
	active func(name string) bool
}

// NewRegistry creates an empty registry with no activation gate.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Descriptor)}
}

// Register adds a descriptor to the registry. Registering a nil constructor,
// an empty name, or a name that is already taken is an error.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}
	if d.New == nil {
		return fmt.Errorf("plugin %q has no constructor", d.Name)
	}
	if d.Capability != CapabilityGame && d.Capability != CapabilityGameAgent {
		return fmt.Errorf("plugin %q has unknown capability %q", d.Name, d.Capability)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plugins[d.Name]; exists {
		return fmt.Errorf("plugin %q is already registered", d.Name)
	}
	r.plugins[d.Name] = d
	return nil
}

// SetActivation installs the predicate gating discovery. A nil predicate
// makes every registered plugin discoverable.
func (r *Registry) SetActivation(active func(name string) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = active
}

// Discover returns the descriptors matching capability, keyed by name.
// A non-empty selection restricts the result to that single name.
// Plugins filtered out by the activation predicate are not returned.
func (r *Registry) Discover(capability Capability, selection string) map[string]Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[string]Descriptor)
	for name, d := range r.plugins {
		if d.Capability != capability {
			continue
		}
		if selection != "" && name != selection {
			continue
		}
		if r.active != nil && !r.active(name) {
			continue
		}
		found[name] = d
	}
	return found
}

// Names returns all registered plugin names in sorted order, ignoring the
// activation gate. Used for listing.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process-global registry that plugin packages register into.
var Default = NewRegistry()

// Register adds a descriptor to the default registry.
// Plugin packages call this from init.
func Register(d Descriptor) error {
	return Default.Register(d)
}

// Discover queries the default registry.
func Discover(capability Capability, selection string) map[string]Descriptor {
	return Default.Discover(capability, selection)
}
