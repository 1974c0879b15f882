package serpent_game_agent

import (
	"github.com/entity53/SerpentAI/pkg/agent"
	"github.com/entity53/SerpentAI/pkg/plugin"
)

// SerpentGameAgent reacts to game frames and decides on inputs.
type SerpentGameAgent struct {
	agent.Base
}

// NewSerpentGameAgent constructs the agent with its frame handlers.
func NewSerpentGameAgent() *SerpentGameAgent {
	ga := &SerpentGameAgent{Base: agent.NewBase()}

	ga.AddFrameHandler("PLAY", ga.handleFramePlay)
	_ = ga.SetFrameHandler("PLAY")

	return ga
}

// handleFramePlay receives the latest game frame on every tick.
func (ga *SerpentGameAgent) handleFramePlay(frame agent.GameFrame) error {
	_ = frame
	return nil
}

func init() {
	_ = plugin.Register(plugin.Descriptor{
		Name:       "SerpentGameAgent",
		Capability: plugin.CapabilityGameAgent,
		New:        func() any { return NewSerpentGameAgent() },
	})
}
