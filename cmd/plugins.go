package cmd

import (
	"errors"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List installed plugins and their activation status",
	Args:  cobra.NoArgs,
	RunE:  runPlugins,
}

func runPlugins(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	installed, err := installedPlugins(ws.cfg.PluginsPath)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Plugin", "Status"})
	for _, name := range installed {
		status := "INACTIVE"
		if ws.manifest.IsActive(name) {
			status = "ACTIVE"
		}
		t.AppendRow(table.Row{name, status})
	}
	t.Render()

	return nil
}

// installedPlugins returns the sorted directory names under pluginsPath.
// A missing plugins directory means no plugins are installed yet.
func installedPlugins(pluginsPath string) ([]string, error) {
	entries, err := os.ReadDir(pluginsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
