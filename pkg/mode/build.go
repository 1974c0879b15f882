package mode

import (
	"fmt"
	"strconv"
)

// ArgumentError reports a mode argument that failed validation.
// Field names the offending argument so the CLI message points at it.
type ArgumentError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Build validates raw string arguments for command and returns the
// corresponding Mode. Recognized commands and argument keys:
//
//	play:    game_agent_name (required), frame_handler (optional)
//	record:  game_agent_name (required), frame_count, frame_spacing
//	         (optional positive integers, default 4 and 4)
//	capture: capture_type (one of frame|context|region), interval
//	         (optional positive number, default 1), extra, extra_2
//	         (capture-type specific)
//
// Omitted optional keys take their defaults. Any value that fails to parse
// as its declared type yields an *ArgumentError naming the field.
func Build(command string, args map[string]string) (Mode, error) {
	switch command {
	case "play":
		return buildPlay(args)
	case "record":
		return buildRecord(args)
	case "capture":
		return buildCapture(args)
	default:
		return nil, &ArgumentError{Field: "command", Value: command, Reason: "no such operating mode"}
	}
}

func buildPlay(args map[string]string) (Mode, error) {
	agent := args["game_agent_name"]
	if agent == "" {
		return nil, &ArgumentError{Field: "game_agent_name", Reason: "a game agent name is required"}
	}
	return Play{AgentName: agent, Handler: args["frame_handler"]}, nil
}

func buildRecord(args map[string]string) (Mode, error) {
	agent := args["game_agent_name"]
	if agent == "" {
		return nil, &ArgumentError{Field: "game_agent_name", Reason: "a game agent name is required"}
	}

	frameCount, err := positiveInt(args, "frame_count", DefaultFrameCount)
	if err != nil {
		return nil, err
	}
	frameSpacing, err := positiveInt(args, "frame_spacing", DefaultFrameSpacing)
	if err != nil {
		return nil, err
	}

	return Record{AgentName: agent, FrameCount: frameCount, FrameSpacing: frameSpacing}, nil
}

func buildCapture(args map[string]string) (Mode, error) {
	interval, err := positiveFloat(args, "interval", DefaultCaptureInterval)
	if err != nil {
		return nil, err
	}

	switch args["capture_type"] {
	case "frame":
		return CollectFrames{Interval: interval}, nil

	case "context":
		// The context label and screen region are opaque; only their
		// presence is validated.
		context := args["extra"]
		if context == "" {
			return nil, &ArgumentError{Field: "context", Reason: "context capture requires a context label"}
		}
		region := args["extra_2"]
		if region == "" {
			return nil, &ArgumentError{Field: "screen_region", Reason: "context capture requires a screen region"}
		}
		return CollectFramesForContext{Interval: interval, Context: context, ScreenRegion: region}, nil

	case "region":
		return CollectFrameRegions{Interval: interval, Region: args["extra"]}, nil

	default:
		return nil, &ArgumentError{
			Field:  "capture_type",
			Value:  args["capture_type"],
			Reason: "must be one of 'frame', 'context', 'region'",
		}
	}
}

func positiveInt(args map[string]string, field string, def int) (int, error) {
	raw, ok := args[field]
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ArgumentError{Field: field, Value: raw, Reason: "must be an integer"}
	}
	if n <= 0 {
		return 0, &ArgumentError{Field: field, Value: raw, Reason: "must be positive"}
	}
	return n, nil
}

func positiveFloat(args map[string]string, field string, def float64) (float64, error) {
	raw, ok := args[field]
	if !ok || raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ArgumentError{Field: field, Value: raw, Reason: "must be a number"}
	}
	if f <= 0 {
		return 0, &ArgumentError{Field: field, Value: raw, Reason: "must be positive"}
	}
	return f, nil
}
