// Package templates holds the embedded plugin scaffolding trees consumed by
// the generate command. All templates are compiled into the binary at build
// time via //go:embed.
//
// The template directory is underscore-prefixed so the toolchain never tries
// to compile the template sources; the all: pattern embeds it regardless.
package templates

import "embed"

// FS holds the plugin template trees.
//
//go:embed all:_templates
var FS embed.FS

// Roots of the template trees inside FS.
const (
	GameRoot      = "_templates/game"
	GameAgentRoot = "_templates/agent"
)
