// Package agent defines the GameAgent capability surface and the Base
// scaffolding that generated game agent plugins embed.
package agent

import (
	"fmt"
	"time"
)

// GameFrame is one captured frame handed to a frame handler. The capture
// pipeline that produces frames lives outside this module; agents only
// consume them.
type GameFrame struct {
	Timestamp time.Time
	Width     int
	Height    int
	Pixels    []byte
}

// FrameHandlerFunc reacts to a single game frame.
type FrameHandlerFunc func(frame GameFrame) error

// Base provides frame handler registration and dispatch for game agents.
// Generated agent plugins embed Base, register handlers in their
// constructor, and select the active one.
type Base struct {
	handlers map[string]FrameHandlerFunc
	current  string
}

// NewBase returns a Base with no handlers registered.
func NewBase() Base {
	return Base{handlers: make(map[string]FrameHandlerFunc)}
}

// AddFrameHandler registers a named frame handler, replacing any previous
// handler of the same name.
func (b *Base) AddFrameHandler(name string, h FrameHandlerFunc) {
	b.handlers[name] = h
}

// SetFrameHandler selects the active frame handler by name.
func (b *Base) SetFrameHandler(name string) error {
	if _, ok := b.handlers[name]; !ok {
		return fmt.Errorf("no frame handler named %q", name)
	}
	b.current = name
	return nil
}

// FrameHandler returns the name of the active frame handler.
func (b *Base) FrameHandler() string {
	return b.current
}

// OnFrame dispatches a frame to the active handler.
func (b *Base) OnFrame(frame GameFrame) error {
	h, ok := b.handlers[b.current]
	if !ok {
		return fmt.Errorf("no active frame handler")
	}
	return h(frame)
}
