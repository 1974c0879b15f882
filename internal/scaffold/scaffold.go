// Package scaffold generates new plugin skeletons from the embedded template
// trees: a recursive copy followed by deterministic text rewriting — token
// substitution, tokenized file renames, and platform-conditional line
// stripping for game plugins.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/entity53/SerpentAI/internal/templates"
)

// Kind selects which plugin template tree to instantiate.
type Kind string

const (
	KindGame      Kind = "game"
	KindGameAgent Kind = "game_agent"
)

// Platform identifies how a game plugin launches its game.
type Platform string

const (
	PlatformSteam      Platform = "steam"
	PlatformExecutable Platform = "executable"
	PlatformWebBrowser Platform = "web_browser"
)

// Valid reports whether p is one of the three supported platforms.
func (p Platform) Valid() bool {
	return p == PlatformSteam || p == PlatformExecutable || p == PlatformWebBrowser
}

// Spec describes one plugin to generate. Platform is meaningful only for
// KindGame. Never mutated after construction.
type Spec struct {
	Kind     Kind
	Name     string
	Platform Platform
}

// ErrTemplateMissing is returned when the template tree for a kind is absent
// from the embedded filesystem.
var ErrTemplateMissing = errors.New("plugin template not found")

// ConflictError reports a destination that already exists. Generation never
// overwrites a prior scaffold.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("plugin directory %s already exists", e.Path)
}

// Validate checks the spec invariants: a non-empty name without spaces, and
// a supported platform for game plugins.
func (s Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}
	if strings.ContainsAny(s.Name, " \t") {
		return fmt.Errorf("plugin name %q must not contain spaces", s.Name)
	}
	switch s.Kind {
	case KindGame:
		if !s.Platform.Valid() {
			return fmt.Errorf("invalid game platform %q: must be one of 'steam', 'executable', 'web_browser'", s.Platform)
		}
	case KindGameAgent:
	default:
		return fmt.Errorf("invalid plugin kind %q", s.Kind)
	}
	return nil
}

// PluginDirName returns the deterministic destination directory name for
// the spec, e.g. "SerpentAwesomeGamePlugin".
func (s Spec) PluginDirName() string {
	if s.Kind == KindGameAgent {
		return fmt.Sprintf("Serpent%sGameAgentPlugin", s.Name)
	}
	return fmt.Sprintf("Serpent%sGamePlugin", s.Name)
}

func (s Spec) templateRoot() string {
	if s.Kind == KindGameAgent {
		return templates.GameAgentRoot
	}
	return templates.GameRoot
}

// Generate instantiates the template tree for spec under pluginsDir and
// returns the destination path. It fails with *ConflictError when the
// destination already exists and with ErrTemplateMissing when the template
// tree is absent. Any I/O failure aborts the whole operation; partial output
// may be left behind but is reported as a hard error.
//
// Generate does not register the new plugin; activation is the caller's
// explicit follow-up.
func Generate(spec Spec, pluginsDir string) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	dest := filepath.Join(pluginsDir, spec.PluginDirName())
	if _, err := os.Stat(dest); err == nil {
		return "", &ConflictError{Path: dest}
	}

	root := spec.templateRoot()
	if _, err := fs.Stat(templates.FS, root); err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateMissing, root)
	}

	subs := spec.substitutions()

	err := fs.WalkDir(templates.FS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Tokenized names are rewritten during the copy, covering the
		// file-rename half of the substitution contract.
		rel := strings.TrimPrefix(path, root)
		rel = strings.TrimPrefix(rel, "/")
		target := filepath.Join(dest, applySubstitutions(filepath.FromSlash(rel), subs))

		if d.IsDir() {
			if mkErr := os.MkdirAll(target, 0o755); mkErr != nil {
				return fmt.Errorf("create directory %s: %w", target, mkErr)
			}
			return nil
		}

		data, readErr := fs.ReadFile(templates.FS, path)
		if readErr != nil {
			return fmt.Errorf("read template %s: %w", path, readErr)
		}

		contents := applySubstitutions(string(data), subs)
		if spec.Kind == KindGame {
			contents = stripPlatformLines(contents, spec.Platform)
			contents = strings.ReplaceAll(contents, platformToken, string(spec.Platform))
		}

		if writeErr := os.WriteFile(target, []byte(contents), 0o644); writeErr != nil {
			return fmt.Errorf("write %s: %w", target, writeErr)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", dest, err)
	}

	return dest, nil
}
