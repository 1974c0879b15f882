package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/entity53/SerpentAI/internal/scaffold"
	"github.com/entity53/SerpentAI/pkg/plugin"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <game|game_agent>",
	Short: "Generate a new game or game agent plugin skeleton",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	log.Banner(version)

	spec, err := promptSpec(scaffold.Kind(args[0]), cmd.InOrStdin())
	if err != nil {
		return err
	}

	dest, err := scaffold.Generate(spec, ws.cfg.PluginsPath)
	if err != nil {
		return err
	}
	log.Success(fmt.Sprintf("Generated %s", dest))

	// Generation leaves the plugin inactive; activating it here is the
	// explicit follow-up so the plugin is discoverable right away.
	capability := plugin.CapabilityGame
	if spec.Kind == scaffold.KindGameAgent {
		capability = plugin.CapabilityGameAgent
	}
	ws.manifest.Activate(spec.PluginDirName(), capability)
	if err := ws.saveManifest(); err != nil {
		return err
	}
	log.Success(fmt.Sprintf("Activated %s", spec.PluginDirName()))

	return nil
}

// promptSpec interactively collects the scaffold spec for kind from in.
func promptSpec(kind scaffold.Kind, in io.Reader) (scaffold.Spec, error) {
	spec := scaffold.Spec{Kind: kind}
	if kind != scaffold.KindGame && kind != scaffold.KindGameAgent {
		return spec, fmt.Errorf("%q is not a valid plugin type: must be 'game' or 'game_agent'", kind)
	}

	reader := bufio.NewReader(in)

	subject := "game"
	if kind == scaffold.KindGameAgent {
		subject = "game agent"
	}
	fmt.Printf("What is the name of the %s? (Titleized, No Spaces i.e. AwesomeGame): ", subject)
	name, err := readLine(reader)
	if err != nil {
		return spec, err
	}
	spec.Name = name

	if kind == scaffold.KindGame {
		fmt.Print("How is the game launched? ('steam', 'executable' or 'web_browser'): ")
		platform, err := readLine(reader)
		if err != nil {
			return spec, err
		}
		spec.Platform = scaffold.Platform(platform)
	}

	return spec, spec.Validate()
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
