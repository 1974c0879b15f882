// Package lifecycle resolves game plugins by name and enforces the
// launch → operate → terminate state machine on the single active game.
//
// Exactly one Handle exists per process invocation. States only advance
// forward; Playing is reachable only from a launched state, and Terminate
// is safe from every state so commands can defer it unconditionally.
package lifecycle

import (
	"fmt"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/entity53/SerpentAI/pkg/game"
	"github.com/entity53/SerpentAI/pkg/mode"
	"github.com/entity53/SerpentAI/pkg/plugin"
)

// State is the lifecycle state of a game handle.
type State string

const (
	StateUninitialized  State = "UNINITIALIZED"
	StateLaunchedDryRun State = "LAUNCHED_DRY_RUN"
	StateLaunchedLive   State = "LAUNCHED_LIVE"
	StatePlaying        State = "PLAYING"
	StateTerminated     State = "TERMINATED"
)

// Launched reports whether the state is one of the launched states,
// from which play is permitted.
func (s State) Launched() bool {
	return s == StateLaunchedDryRun || s == StateLaunchedLive
}

// Handle is the single active game of an invocation. It owns the constructed
// plugin instance; all state transitions go through the Controller.
type Handle struct {
	// Name is the resolved plugin class name, e.g. "SerpentPongGame".
	Name string

	// Game is the constructed plugin instance.
	Game game.Game

	state State
}

// State returns the handle's current lifecycle state.
func (h *Handle) State() State {
	return h.state
}

// TransitionError reports an operation attempted from a state that does not
// permit it.
type TransitionError struct {
	Op   string
	From State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a game from lifecycle state %s", e.Op, e.From)
}

// LaunchError reports a game that failed to launch. The handle is terminated;
// the failure is unrecoverable for this invocation.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %s failed: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// GameClassName derives the plugin class name for a game per the framework
// naming convention.
func GameClassName(gameName string) string {
	return fmt.Sprintf("Serpent%sGame", gameName)
}

// Controller resolves game plugins and drives handle state transitions.
type Controller struct {
	registry *plugin.Registry
}

// NewController returns a Controller backed by registry.
func NewController(registry *plugin.Registry) *Controller {
	return &Controller{registry: registry}
}

// Resolve looks up the game plugin for gameName by its derived class name,
// constructs it, and returns an Uninitialized handle. Returns
// *plugin.NotFoundError when no matching plugin is registered and active.
func (c *Controller) Resolve(gameName string) (*Handle, error) {
	className := GameClassName(gameName)

	found := c.registry.Discover(plugin.CapabilityGame, className)
	descriptor, ok := found[className]
	if !ok {
		return nil, &plugin.NotFoundError{Name: className, Capability: plugin.CapabilityGame}
	}

	instance := descriptor.New()
	g, ok := instance.(game.Game)
	if !ok {
		return nil, fmt.Errorf("plugin %s does not implement the Game capability", className)
	}

	return &Handle{Name: className, Game: g, state: StateUninitialized}, nil
}

// ResolveAgent verifies that a game agent plugin is registered and active
// under agentName. The agent itself is constructed later by the game.
func (c *Controller) ResolveAgent(agentName string) error {
	found := c.registry.Discover(plugin.CapabilityGameAgent, agentName)
	if _, ok := found[agentName]; !ok {
		return &plugin.NotFoundError{Name: agentName, Capability: plugin.CapabilityGameAgent}
	}
	return nil
}

// Launch starts the game. Permitted only from Uninitialized; any other state
// yields a *TransitionError. On launch failure the handle is terminated and
// a *LaunchError is returned.
func (c *Controller) Launch(h *Handle, dryRun bool) error {
	if h.state != StateUninitialized {
		return &TransitionError{Op: "launch", From: h.state}
	}

	if err := h.Game.Launch(dryRun); err != nil {
		h.state = StateTerminated
		return &LaunchError{Name: h.Name, Err: err}
	}

	if dryRun {
		h.state = StateLaunchedDryRun
	} else {
		h.state = StateLaunchedLive
	}
	return nil
}

// Play hands the operating mode to the game instance. Permitted only from a
// launched state.
func (c *Controller) Play(h *Handle, m mode.Mode) error {
	if !h.state.Launched() {
		return &TransitionError{Op: "play", From: h.state}
	}
	h.state = StatePlaying
	return h.Game.Play(m)
}

// Terminate releases the handle's game. Safe to call from any state and a
// no-op once terminated, so command paths defer it unconditionally and the
// external game never leaks on error propagation.
func (c *Controller) Terminate(h *Handle) {
	if h == nil || h.state == StateTerminated {
		return
	}
	if h.state != StateUninitialized {
		if err := h.Game.Stop(); err != nil {
			log.Warning(fmt.Sprintf("stopping %s: %v", h.Name, err))
		}
	}
	h.state = StateTerminated
}
