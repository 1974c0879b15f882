// Package mode defines the mutually exclusive operating modes a game can be
// driven in for a single invocation, and the validation that turns raw
// command arguments into one of them.
//
// Exactly one Mode is built per invocation and handed opaquely to the active
// game instance, which keys its play loop off the mode's frame handler tag.
package mode

// Canonical frame handler tags understood by game plugins.
const (
	FrameHandlerRecord         = "RECORD"
	FrameHandlerCollectFrames  = "COLLECT_FRAMES"
	FrameHandlerCollectContext = "COLLECT_FRAMES_FOR_CONTEXT"
	FrameHandlerCollectRegions = "COLLECT_FRAME_REGIONS"
)

// Defaults applied when optional arguments are omitted.
const (
	DefaultFrameCount      = 4
	DefaultFrameSpacing    = 4
	DefaultCaptureInterval = 1.0
)

// Mode is the sealed set of operating mode variants.
type Mode interface {
	// FrameHandler returns the canonical frame handler tag for the variant.
	// For Play it is the caller-supplied override, possibly empty.
	FrameHandler() string

	isMode()
}

// Play drives the game with a game agent.
type Play struct {
	// AgentName is the game agent plugin class name.
	AgentName string

	// Handler optionally overrides the agent's default frame handler.
	// Passed through uninterpreted.
	Handler string
}

// Record captures player input alongside frames for later training.
type Record struct {
	AgentName    string
	FrameCount   int
	FrameSpacing int
}

// CollectFrames captures raw frames at a fixed interval.
type CollectFrames struct {
	Interval float64
}

// CollectFramesForContext captures frames labelled with a context identifier,
// restricted to a named screen region. Both strings are opaque to the core.
type CollectFramesForContext struct {
	Interval     float64
	Context      string
	ScreenRegion string
}

// CollectFrameRegions captures crops of a named screen region.
type CollectFrameRegions struct {
	Interval float64
	Region   string
}

func (m Play) FrameHandler() string                    { return m.Handler }
func (m Record) FrameHandler() string                  { return FrameHandlerRecord }
func (m CollectFrames) FrameHandler() string           { return FrameHandlerCollectFrames }
func (m CollectFramesForContext) FrameHandler() string { return FrameHandlerCollectContext }
func (m CollectFrameRegions) FrameHandler() string     { return FrameHandlerCollectRegions }

func (Play) isMode()                    {}
func (Record) isMode()                  {}
func (CollectFrames) isMode()           {}
func (CollectFramesForContext) isMode() {}
func (CollectFrameRegions) isMode()     {}
