package plugin

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotActivated is returned by Manifest.Deactivate for unknown plugins.
var ErrNotActivated = errors.New("plugin is not activated")

// Manifest records which plugins are activated in a workspace. It is stored
// as plugins.yml and consulted by discovery: plugins present on disk but
// absent from the manifest stay inactive.
type Manifest struct {
	Plugins map[string]ManifestEntry `yaml:"plugins"`
}

// ManifestEntry is a single activation record.
type ManifestEntry struct {
	Capability  Capability `yaml:"capability,omitempty"`
	ActivatedAt string     `yaml:"activated_at"`
}

// ParseError is returned when a manifest file exists but cannot be unmarshalled.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadManifest reads the manifest at path. A missing file yields an empty
// manifest without error, so a fresh workspace needs no prior setup.
func LoadManifest(path string) (*Manifest, error) {
	m := &Manifest{Plugins: make(map[string]ManifestEntry)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if m.Plugins == nil {
		m.Plugins = make(map[string]ManifestEntry)
	}
	return m, nil
}

// SaveManifest atomically writes the manifest to path.
// It writes to path+".tmp" first, then renames to path.
func SaveManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup on rename failure
		return fmt.Errorf("rename %s -> %s: %w", tmp, path, err)
	}
	return nil
}

// Activate records a plugin as active. Re-activating is a no-op that keeps
// the original timestamp.
func (m *Manifest) Activate(name string, capability Capability) {
	if _, exists := m.Plugins[name]; exists {
		return
	}
	m.Plugins[name] = ManifestEntry{
		Capability:  capability,
		ActivatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Deactivate removes a plugin's activation record.
// Returns ErrNotActivated if the plugin was not active.
func (m *Manifest) Deactivate(name string) error {
	if _, exists := m.Plugins[name]; !exists {
		return fmt.Errorf("%q: %w", name, ErrNotActivated)
	}
	delete(m.Plugins, name)
	return nil
}

// IsActive reports whether name has an activation record.
func (m *Manifest) IsActive(name string) bool {
	_, exists := m.Plugins[name]
	return exists
}

// Names returns the activated plugin names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Plugins))
	for name := range m.Plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
