package cmd

import (
	"fmt"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/entity53/SerpentAI/pkg/mode"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <game_name> <game_agent_name> [frame_count] [frame_spacing]",
	Short: "Record game input while a game agent observes frames",
	Args:  cobra.RangeArgs(2, 4),
	RunE:  runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
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
	if len(args) > 2 {
		modeArgs["frame_count"] = args[2]
	}
	if len(args) > 3 {
		modeArgs["frame_spacing"] = args[3]
	}
	m, err := mode.Build("record", modeArgs)
	if err != nil {
		return err
	}

	if err := ws.controller.Launch(handle, true); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("Recording %s with %s", handle.Name, args[1]))
	return ws.controller.Play(handle, m)
}
