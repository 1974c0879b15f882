package cmd

import (
	"fmt"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch <game_name>",
	Short: "Launch a game through a Serpent.AI game plugin",
	Args:  cobra.ExactArgs(1),
	RunE:  runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	handle, err := ws.controller.Resolve(args[0])
	if err != nil {
		return err
	}
	defer ws.controller.Terminate(handle)

	if err := ws.controller.Launch(handle, false); err != nil {
		return err
	}

	log.Success(fmt.Sprintf("Launched %s", handle.Name))
	return nil
}
