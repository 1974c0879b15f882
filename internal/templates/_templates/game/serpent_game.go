package serpent_game

import (
	"github.com/entity53/SerpentAI/pkg/game"
	"github.com/entity53/SerpentAI/pkg/game/launchers"
	"github.com/entity53/SerpentAI/pkg/mode"
	"github.com/entity53/SerpentAI/pkg/plugin"
)

// SerpentGame launches and binds the game for agents to play.
type SerpentGame struct {
	game.Base
}

// NewSerpentGame constructs the game with its platform launch options.
func NewSerpentGame() *SerpentGame {
	options := game.Options{
		Name:       "SerpentGame",
		Platform:   "PLATFORM",
		WindowName: "WINDOW_NAME",
	}

	options.AppID = "APP_ID"
	options.AppArgs = nil
	options.ExecutablePath = "EXECUTABLE_PATH"
	options.URL = "URL"
	options.Browser = launchers.DefaultBrowser

	g := &SerpentGame{Base: game.NewBase(options)}
	g.PlayFunc = g.play
	return g
}

// play drives one operating mode against the live game.
func (g *SerpentGame) play(m mode.Mode) error {
	// TODO: wire the frame grabber and input controller for this game.
	_ = m
	return game.ErrPlayNotImplemented
}

// API returns the game-specific helper API exposed to game agents.
func (g *SerpentGame) API() *MyGameAPI {
	return NewMyGameAPI()
}

func init() {
	_ = plugin.Register(plugin.Descriptor{
		Name:       "SerpentGame",
		Capability: plugin.CapabilityGame,
		New:        func() any { return NewSerpentGame() },
	})
}
