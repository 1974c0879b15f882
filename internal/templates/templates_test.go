package templates_test

import (
	"testing"

	"github.com/entity53/SerpentAI/internal/templates"
)

func TestFS_ContainsGameTemplateFiles(t *testing.T) {
	expectedFiles := []string{
		"_templates/game/plugin.yml",
		"_templates/game/serpent_game.go",
		"_templates/game/api.go",
	}
	for _, path := range expectedFiles {
		f, err := templates.FS.Open(path)
		if err != nil {
			t.Errorf("expected file %q not found in embedded FS: %v", path, err)
			continue
		}
		f.Close()
	}
}

func TestFS_ContainsGameAgentTemplateFiles(t *testing.T) {
	expectedFiles := []string{
		"_templates/agent/plugin.yml",
		"_templates/agent/serpent_game_agent.go",
	}
	for _, path := range expectedFiles {
		f, err := templates.FS.Open(path)
		if err != nil {
			t.Errorf("expected file %q not found in embedded FS: %v", path, err)
			continue
		}
		f.Close()
	}
}
