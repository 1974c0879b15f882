// Package plugin implements the capability-tagged plugin registry used to
// discover game and game agent plugins by name at runtime.
//
// Plugins self-register a Descriptor from an init function in their own
// package; importing the plugin package into the final binary is what makes
// it discoverable. The registry never inspects plugin internals beyond the
// declared capability: discovery returns constructors, and callers assert
// the capability interface they need on the constructed instance.
package plugin

import "fmt"

// Capability tags the interface a plugin implements.
type Capability string

const (
	CapabilityGame      Capability = "Game"
	CapabilityGameAgent Capability = "GameAgent"
)

// Constructor builds a fresh plugin instance. The concrete type is opaque to
// the registry; callers assert the capability interface they require.
type Constructor func() any

// Descriptor describes a registered plugin. Immutable once registered.
type Descriptor struct {
	// Name is the plugin's class name, e.g. "SerpentMyGameGame".
	Name string

	// Capability declares the interface the constructed instance implements.
	Capability Capability

	// New constructs a fresh plugin instance.
	New Constructor
}

// NotFoundError is returned when discovery yields no plugin for a name.
// It carries the attempted name so callers can report which plugin is missing.
type NotFoundError struct {
	Name       string
	Capability Capability
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s plugin %q wasn't found — make sure the plugin is installed and activated", e.Capability, e.Name)
}
