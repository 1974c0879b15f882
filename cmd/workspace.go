package cmd

import (
	"fmt"
	"os"

	"github.com/entity53/SerpentAI/internal/config"
	"github.com/entity53/SerpentAI/internal/lifecycle"
	"github.com/entity53/SerpentAI/pkg/plugin"
)

// workspace bundles the per-invocation collaborators the game commands need:
// the loaded config, the activation manifest, and a lifecycle controller
// whose discovery is gated on that manifest.
type workspace struct {
	root       string
	cfg        *config.Config
	manifest   *plugin.Manifest
	controller *lifecycle.Controller
}

// openWorkspace loads config and manifest from the current working directory
// and wires manifest activation into the default plugin registry.
func openWorkspace() (*workspace, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	manifest, err := plugin.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("load plugin manifest: %w", err)
	}

	// Plugin directories are named after the class with a Plugin suffix
	// (SerpentXGame lives in SerpentXGamePlugin), so the activation gate
	// maps registry names onto manifest entries by appending it.
	plugin.Default.SetActivation(func(name string) bool {
		return manifest.IsActive(name + "Plugin")
	})

	return &workspace{
		root:       root,
		cfg:        cfg,
		manifest:   manifest,
		controller: lifecycle.NewController(plugin.Default),
	}, nil
}

// saveManifest persists manifest mutations made by a command.
func (ws *workspace) saveManifest() error {
	if err := plugin.SaveManifest(ws.cfg.ManifestPath, ws.manifest); err != nil {
		return fmt.Errorf("save plugin manifest: %w", err)
	}
	return nil
}

// parseBoolArg converts a CLI boolean argument from the fixed vocabulary
// {"True", "False"}; anything else is a descriptive error naming the field.
func parseBoolArg(field, value string) (bool, error) {
	switch value {
	case "True":
		return true, nil
	case "False":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s %q: must be 'True' or 'False'", field, value)
	}
}
