package cmd

import (
	"fmt"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/entity53/SerpentAI/pkg/mode"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture <frame|context|region> <game_name> [interval] [extra] [extra_2]",
	Short: "Capture frames, context frames or frame regions from a game",
	Args:  cobra.RangeArgs(2, 5),
	RunE:  runCapture,
}

func runCapture(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	handle, err := ws.controller.Resolve(args[1])
	if err != nil {
		return err
	}
	defer ws.controller.Terminate(handle)

	modeArgs := map[string]string{"capture_type": args[0]}
	if len(args) > 2 {
		modeArgs["interval"] = args[2]
	}
	if len(args) > 3 {
		modeArgs["extra"] = args[3]
	}
	if len(args) > 4 {
		modeArgs["extra_2"] = args[4]
	}
	m, err := mode.Build("capture", modeArgs)
	if err != nil {
		return err
	}

	if err := ws.controller.Launch(handle, true); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("Capturing %s frames from %s", args[0], handle.Name))
	return ws.controller.Play(handle, m)
}
