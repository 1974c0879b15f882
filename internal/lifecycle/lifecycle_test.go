package lifecycle_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/entity53/SerpentAI/internal/lifecycle"
	"github.com/entity53/SerpentAI/pkg/mode"
	"github.com/entity53/SerpentAI/pkg/plugin"
)

// stubGame records the calls the controller makes against it.
type stubGame struct {
	launches  []bool // dryRun values, in order
	played    []mode.Mode
	stops     int
	launchErr error
	playErr   error
	stopErr   error
}

func (g *stubGame) Launch(dryRun bool) error {
	g.launches = append(g.launches, dryRun)
	return g.launchErr
}

func (g *stubGame) Play(m mode.Mode) error {
	g.played = append(g.played, m)
	return g.playErr
}

func (g *stubGame) Stop() error {
	g.stops++
	return g.stopErr
}

// newTestController registers a single game plugin "SerpentTestGame" backed
// by the returned stub.
func newTestController(t *testing.T, stub *stubGame) *lifecycle.Controller {
	t.Helper()
	registry := plugin.NewRegistry()
	err := registry.Register(plugin.Descriptor{
		Name:       "SerpentTestGame",
		Capability: plugin.CapabilityGame,
		New:        func() any { return stub },
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return lifecycle.NewController(registry)
}

func TestResolve_DerivesClassName(t *testing.T) {
	controller := newTestController(t, &stubGame{})

	h, err := controller.Resolve("Test")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.Name != "SerpentTestGame" {
		t.Errorf("Name = %q, want SerpentTestGame", h.Name)
	}
	if h.State() != lifecycle.StateUninitialized {
		t.Errorf("State = %s, want Uninitialized", h.State())
	}
}

func TestResolve_UnknownGame(t *testing.T) {
	controller := newTestController(t, &stubGame{})

	_, err := controller.Resolve("Missing")
	var nf *plugin.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *plugin.NotFoundError, got %v", err)
	}
	if nf.Name != "SerpentMissingGame" {
		t.Errorf("NotFoundError.Name = %q, want the attempted class name", nf.Name)
	}
}

func TestResolve_WrongCapabilityShape(t *testing.T) {
	registry := plugin.NewRegistry()
	err := registry.Register(plugin.Descriptor{
		Name:       "SerpentBrokenGame",
		Capability: plugin.CapabilityGame,
		New:        func() any { return struct{}{} }, // not a game.Game
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = lifecycle.NewController(registry).Resolve("Broken")
	if err == nil {
		t.Fatal("expected error for plugin that does not implement Game")
	}
}

func TestLaunch_DryRunTransition(t *testing.T) {
	stub := &stubGame{}
	controller := newTestController(t, stub)

	h, err := controller.Resolve("Test")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := controller.Launch(h, true); err != nil {
		t.Fatalf("Launch(dryRun): %v", err)
	}
	if h.State() != lifecycle.StateLaunchedDryRun {
		t.Errorf("State = %s, want LaunchedDryRun", h.State())
	}
	if len(stub.launches) != 1 || stub.launches[0] != true {
		t.Errorf("game saw launches %v, want one dry run", stub.launches)
	}

	// A second launch from any launched state is an invalid transition.
	err = controller.Launch(h, true)
	var te *lifecycle.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransitionError on second launch, got %v", err)
	}
	if te.From != lifecycle.StateLaunchedDryRun {
		t.Errorf("TransitionError.From = %s", te.From)
	}
	if len(stub.launches) != 1 {
		t.Errorf("second launch reached the game: %v", stub.launches)
	}
}

func TestLaunch_LiveTransition(t *testing.T) {
	stub := &stubGame{}
	controller := newTestController(t, stub)

	h, _ := controller.Resolve("Test")
	if err := controller.Launch(h, false); err != nil {
		t.Fatalf("Launch(live): %v", err)
	}
	if h.State() != lifecycle.StateLaunchedLive {
		t.Errorf("State = %s, want LaunchedLive", h.State())
	}
}

func TestLaunch_FailureTerminatesHandle(t *testing.T) {
	stub := &stubGame{launchErr: fmt.Errorf("window not found")}
	controller := newTestController(t, stub)

	h, _ := controller.Resolve("Test")
	err := controller.Launch(h, false)

	var le *lifecycle.LaunchError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LaunchError, got %v", err)
	}
	if h.State() != lifecycle.StateTerminated {
		t.Errorf("State = %s, want Terminated after launch failure", h.State())
	}

	// The game never launched, so Terminate must not call Stop.
	controller.Terminate(h)
	if stub.stops != 0 {
		t.Errorf("Stop called %d times after failed launch, want 0", stub.stops)
	}
}

func TestPlay_RequiresLaunchedState(t *testing.T) {
	stub := &stubGame{}
	controller := newTestController(t, stub)

	h, _ := controller.Resolve("Test")

	err := controller.Play(h, mode.CollectFrames{Interval: 1})
	var te *lifecycle.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransitionError for play before launch, got %v", err)
	}
	if len(stub.played) != 0 {
		t.Error("play reached the game before launch")
	}

	if err := controller.Launch(h, true); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	m := mode.Record{AgentName: "SerpentTestGameAgent", FrameCount: 4, FrameSpacing: 4}
	if err := controller.Play(h, m); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if h.State() != lifecycle.StatePlaying {
		t.Errorf("State = %s, want Playing", h.State())
	}
	if len(stub.played) != 1 || stub.played[0] != mode.Mode(m) {
		t.Errorf("game saw modes %v, want the record mode", stub.played)
	}
}

func TestTerminate_Idempotent(t *testing.T) {
	stub := &stubGame{}
	controller := newTestController(t, stub)

	h, _ := controller.Resolve("Test")
	if err := controller.Launch(h, true); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	controller.Terminate(h)
	controller.Terminate(h)

	if h.State() != lifecycle.StateTerminated {
		t.Errorf("State = %s, want Terminated", h.State())
	}
	if stub.stops != 1 {
		t.Errorf("Stop called %d times, want 1", stub.stops)
	}
}

func TestTerminate_NilAndUninitialized(t *testing.T) {
	stub := &stubGame{}
	controller := newTestController(t, stub)

	controller.Terminate(nil) // must not panic

	h, _ := controller.Resolve("Test")
	controller.Terminate(h)
	if h.State() != lifecycle.StateTerminated {
		t.Errorf("State = %s, want Terminated", h.State())
	}
	if stub.stops != 0 {
		t.Errorf("Stop called %d times for an unlaunched game, want 0", stub.stops)
	}
}

func TestResolveAgent(t *testing.T) {
	registry := plugin.NewRegistry()
	err := registry.Register(plugin.Descriptor{
		Name:       "SerpentTestGameAgent",
		Capability: plugin.CapabilityGameAgent,
		New:        func() any { return nil },
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	controller := lifecycle.NewController(registry)

	if err := controller.ResolveAgent("SerpentTestGameAgent"); err != nil {
		t.Errorf("ResolveAgent: %v", err)
	}

	err = controller.ResolveAgent("SerpentOtherGameAgent")
	var nf *plugin.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected *plugin.NotFoundError for unknown agent, got %v", err)
	}
}
