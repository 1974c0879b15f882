package cmd

import (
	"fmt"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/entity53/SerpentAI/pkg/mode"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <game_name> <game_agent_name> [frame_handler]",
	Short: "Play a game with a game agent",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	handle, err := ws.controller.Resolve(args[0])
	if err != nil {
		return err
	}
	defer ws.controller.Terminate(handle)

	if err := ws.controller.ResolveAgent(args[1]); err != nil {
		return err
	}

	modeArgs := map[string]string{"game_agent_name": args[1]}
	if len(args) == 3 {
		modeArgs["frame_handler"] = args[2]
	}
	m, err := mode.Build("play", modeArgs)
	if err != nil {
		return err
	}

	if err := ws.controller.Launch(handle, true); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("Playing %s with %s", handle.Name, args[1]))
	return ws.controller.Play(handle, m)
}
