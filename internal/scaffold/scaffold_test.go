package scaffold_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/entity53/SerpentAI/internal/scaffold"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestGenerate_GamePlugin_Steam(t *testing.T) {
	pluginsDir := t.TempDir()

	dest, err := scaffold.Generate(scaffold.Spec{
		Kind:     scaffold.KindGame,
		Name:     "Foo",
		Platform: scaffold.PlatformSteam,
	}, pluginsDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if dest != filepath.Join(pluginsDir, "SerpentFooGamePlugin") {
		t.Errorf("destination = %q", dest)
	}

	// The implementation file is renamed along with its tokens.
	gameFile := filepath.Join(dest, "serpent_foo_game.go")
	if _, err := os.Stat(gameFile); err != nil {
		t.Fatalf("expected renamed implementation file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "serpent_game.go")); !errors.Is(err, os.ErrNotExist) {
		t.Error("template-named implementation file still present")
	}

	contents := readFile(t, gameFile)

	// Class and package tokens substituted.
	for _, want := range []string{
		"package serpent_foo_game",
		"type SerpentFooGame struct",
		"func NewSerpentFooGame()",
		"*FooAPI",
	} {
		if !strings.Contains(contents, want) {
			t.Errorf("game file missing %q", want)
		}
	}
	if strings.Contains(contents, "SerpentGame ") || strings.Contains(contents, "MyGameAPI") {
		t.Error("game file contains uninstantiated tokens")
	}

	// Platform placeholder rewritten to the literal platform.
	if !strings.Contains(contents, `Platform:   "steam"`) {
		t.Error("PLATFORM placeholder not rewritten to steam")
	}

	// Zero residual lines from the other two platform branches.
	for _, forbidden := range []string{"EXECUTABLE_PATH", "URL", "launchers", "web_browser"} {
		if strings.Contains(contents, forbidden) {
			t.Errorf("steam scaffold contains %q from another platform branch", forbidden)
		}
	}

	// Steam's own lines survive.
	for _, want := range []string{`options.AppID = "APP_ID"`, `options.AppArgs = nil`} {
		if !strings.Contains(contents, want) {
			t.Errorf("steam scaffold missing its own line %q", want)
		}
	}

	// Descriptor file rewritten.
	descriptor := readFile(t, filepath.Join(dest, "plugin.yml"))
	if !strings.Contains(descriptor, "name: SerpentFooGamePlugin") {
		t.Errorf("descriptor not rewritten: %q", descriptor)
	}
	if !strings.Contains(descriptor, "serpent_foo_game.go") {
		t.Errorf("descriptor file reference not rewritten: %q", descriptor)
	}

	// API file rewritten.
	api := readFile(t, filepath.Join(dest, "api.go"))
	if !strings.Contains(api, "type FooAPI struct") || !strings.Contains(api, "func NewFooAPI()") {
		t.Errorf("api file not rewritten: %q", api)
	}
}

func TestGenerate_GamePlugin_PlatformBranches(t *testing.T) {
	tests := []struct {
		platform scaffold.Platform
		want     []string
		banned   []string
	}{
		{
			platform: scaffold.PlatformExecutable,
			want:     []string{`options.ExecutablePath = "EXECUTABLE_PATH"`, `Platform:   "executable"`},
			banned:   []string{"APP_ID", `options.URL`, "launchers"},
		},
		{
			platform: scaffold.PlatformWebBrowser,
			want: []string{
				`options.URL = "URL"`,
				`options.Browser = launchers.DefaultBrowser`,
				`"github.com/entity53/SerpentAI/pkg/game/launchers"`,
				`Platform:   "web_browser"`,
			},
			banned: []string{"APP_ID", "EXECUTABLE_PATH"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			dest, err := scaffold.Generate(scaffold.Spec{
				Kind:     scaffold.KindGame,
				Name:     "Bar",
				Platform: tt.platform,
			}, t.TempDir())
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			contents := readFile(t, filepath.Join(dest, "serpent_bar_game.go"))
			for _, want := range tt.want {
				if !strings.Contains(contents, want) {
					t.Errorf("missing %q", want)
				}
			}
			for _, banned := range tt.banned {
				if strings.Contains(contents, banned) {
					t.Errorf("contains %q from another platform branch", banned)
				}
			}
		})
	}
}

func TestGenerate_GameAgentPlugin(t *testing.T) {
	pluginsDir := t.TempDir()

	dest, err := scaffold.Generate(scaffold.Spec{
		Kind: scaffold.KindGameAgent,
		Name: "Foo",
	}, pluginsDir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if dest != filepath.Join(pluginsDir, "SerpentFooGameAgentPlugin") {
		t.Errorf("destination = %q", dest)
	}

	agentFile := filepath.Join(dest, "serpent_foo_game_agent.go")
	contents := readFile(t, agentFile)
	for _, want := range []string{
		"package serpent_foo_game_agent",
		"type SerpentFooGameAgent struct",
		"func NewSerpentFooGameAgent()",
	} {
		if !strings.Contains(contents, want) {
			t.Errorf("agent file missing %q", want)
		}
	}

	descriptor := readFile(t, filepath.Join(dest, "plugin.yml"))
	if !strings.Contains(descriptor, "name: SerpentFooGameAgentPlugin") {
		t.Errorf("descriptor not rewritten: %q", descriptor)
	}
}

func TestGenerate_Conflict(t *testing.T) {
	pluginsDir := t.TempDir()
	spec := scaffold.Spec{Kind: scaffold.KindGame, Name: "Foo", Platform: scaffold.PlatformSteam}

	dest, err := scaffold.Generate(spec, pluginsDir)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	before := readFile(t, filepath.Join(dest, "serpent_foo_game.go"))

	_, err = scaffold.Generate(spec, pluginsDir)
	var conflict *scaffold.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}

	// The first output is untouched.
	after := readFile(t, filepath.Join(dest, "serpent_foo_game.go"))
	if before != after {
		t.Error("conflicting Generate modified the existing scaffold")
	}
}

func TestGenerate_SpecValidation(t *testing.T) {
	tests := []struct {
		name string
		spec scaffold.Spec
	}{
		{"empty name", scaffold.Spec{Kind: scaffold.KindGame, Platform: scaffold.PlatformSteam}},
		{"name with spaces", scaffold.Spec{Kind: scaffold.KindGame, Name: "My Game", Platform: scaffold.PlatformSteam}},
		{"bad platform", scaffold.Spec{Kind: scaffold.KindGame, Name: "Foo", Platform: "console"}},
		{"bad kind", scaffold.Spec{Kind: "widget", Name: "Foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := scaffold.Generate(tt.spec, t.TempDir()); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
