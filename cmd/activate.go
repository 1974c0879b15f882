package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/entity53/SerpentAI/pkg/plugin"
	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <plugin_name>",
	Short: "Activate an installed plugin",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <plugin_name>",
	Short: "Deactivate a plugin",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeactivate,
}

func runActivate(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	name := args[0]
	info, err := os.Stat(filepath.Join(ws.cfg.PluginsPath, name))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("plugin %q is not installed under %s", name, ws.cfg.PluginsPath)
	}

	ws.manifest.Activate(name, pluginCapability(name))
	if err := ws.saveManifest(); err != nil {
		return err
	}

	log.Success(fmt.Sprintf("Activated %s", name))
	return nil
}

func runDeactivate(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	if err := ws.manifest.Deactivate(args[0]); err != nil {
		return err
	}
	if err := ws.saveManifest(); err != nil {
		return err
	}

	log.Success(fmt.Sprintf("Deactivated %s", args[0]))
	return nil
}

// pluginCapability infers the capability from the plugin directory naming
// convention: game agent plugins end in GameAgentPlugin.
func pluginCapability(name string) plugin.Capability {
	if strings.HasSuffix(name, "GameAgentPlugin") {
		return plugin.CapabilityGameAgent
	}
	return plugin.CapabilityGame
}
