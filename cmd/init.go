package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Serpent.AI workspace",
	Long:  "Scaffold a Serpent.AI workspace with config/config.yml, plugins.yml, and the plugins and datasets directories.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	return initWorkspace(dir, initFlags.force)
}

// initWorkspace is the testable core of the init command. It lays out the
// workspace directories and writes the starter config and plugin manifest.
func initWorkspace(dir string, force bool) error {
	// Guard: refuse to re-initialize an existing workspace unless --force is set.
	if !force {
		if _, statErr := os.Stat(filepath.Join(dir, "plugins.yml")); statErr == nil {
			return fmt.Errorf("plugins.yml already exists — workspace appears to be already initialized; use --force to overwrite")
		}
	}

	for _, sub := range []string{
		"config",
		"plugins",
		filepath.Join("datasets", "collect_frames"),
		filepath.Join("datasets", "collect_frames_for_context"),
		filepath.Join("datasets", "current"),
	} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", sub, err)
		}
	}

	type fileSpec struct {
		name    string
		content string
	}
	specs := []fileSpec{
		{filepath.Join("config", "config.yml"), configYMLContent()},
		{"plugins.yml", manifestYMLContent()},
	}

	for _, spec := range specs {
		path := filepath.Join(dir, spec.name)
		if !force {
			if _, statErr := os.Stat(path); statErr == nil {
				log.Warning(fmt.Sprintf("%s already exists — skipping (use --force to overwrite)", spec.name))
				continue
			}
		}
		if err := os.WriteFile(path, []byte(spec.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", spec.name, err)
		}
		log.Success(fmt.Sprintf("created %s", spec.name))
	}

	log.Info("workspace initialized — run 'serpent generate game' to create your first plugin")
	return nil
}

// configYMLContent returns the starter config/config.yml with inline YAML
// comments documenting each path.
func configYMLContent() string {
	return `# config.yml — Serpent.AI framework configuration
plugins_path: plugins    # Directory game and game agent plugins are installed in
datasets_path: datasets  # Directory captured frames and datasets are written to
manifest_path: plugins.yml  # Plugin activation manifest
`
}

// manifestYMLContent returns an empty plugin activation manifest.
func manifestYMLContent() string {
	return `plugins: {}
`
}
