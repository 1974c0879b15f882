// Package game defines the Game capability interface implemented by game
// plugins, plus the Base scaffolding that generated plugins embed.
package game

import (
	"errors"
	"fmt"

	"github.com/entity53/SerpentAI/pkg/game/launchers"
	"github.com/entity53/SerpentAI/pkg/mode"
)

// ErrPlayNotImplemented is returned by Base.Play when the plugin neither
// overrides Play nor sets PlayFunc.
var ErrPlayNotImplemented = errors.New("game does not implement a play loop")

// Game is the capability interface implemented by game plugins.
type Game interface {
	// Launch binds and starts the game. A dry run performs the launch
	// side effects (window and process binding) without entering live play.
	Launch(dryRun bool) error

	// Play drives the game in the given operating mode until the mode
	// completes or fails. Requires a prior Launch.
	Play(m mode.Mode) error

	// Stop releases whatever Launch acquired.
	Stop() error
}

// Options configures how a game is identified and launched. Only the fields
// for the game's platform are meaningful; generated plugins carry just those.
type Options struct {
	Name       string
	Platform   string
	WindowName string

	// Steam platform.
	AppID   string
	AppArgs []string

	// Executable platform.
	ExecutablePath string

	// Web browser platform.
	URL     string
	Browser launchers.Browser
}

// Base provides default Game behavior for generated plugins: platform
// launcher selection and a pluggable play loop. Plugins embed Base and
// either override Play or set PlayFunc.
type Base struct {
	Options Options

	// PlayFunc handles Play for plugins that do not override it.
	PlayFunc func(m mode.Mode) error
}

// NewBase returns a Base bound to options.
func NewBase(options Options) Base {
	return Base{Options: options}
}

// Launch starts the game via its platform launcher. A dry run skips the
// launcher entirely; the binding side effects are the plugin's to perform
// in its own Launch override before delegating here.
func (b *Base) Launch(dryRun bool) error {
	if dryRun {
		return nil
	}

	launcher, err := launchers.ForPlatform(b.Options.Platform)
	if err != nil {
		return fmt.Errorf("game %s: %w", b.Options.Name, err)
	}

	target := launchers.Target{
		AppID:          b.Options.AppID,
		AppArgs:        b.Options.AppArgs,
		ExecutablePath: b.Options.ExecutablePath,
		URL:            b.Options.URL,
		Browser:        b.Options.Browser,
	}
	if err := launcher.Launch(target); err != nil {
		return fmt.Errorf("game %s: %w", b.Options.Name, err)
	}
	return nil
}

// Play delegates to PlayFunc when set.
func (b *Base) Play(m mode.Mode) error {
	if b.PlayFunc != nil {
		return b.PlayFunc(m)
	}
	return ErrPlayNotImplemented
}

// Stop is a no-op by default; plugins holding process or window resources
// override it.
func (b *Base) Stop() error {
	return nil
}
