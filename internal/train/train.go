// Package train is the control-layer seam to the machine-learning training
// collaborators. The training algorithms themselves live outside this module;
// here we validate training parameters, construct a Trainer through a
// replaceable factory, and thread interrupt-driven cancellation into it so a
// trainer can persist partial state before the process exits.
package train

import (
	"context"
	"fmt"
)

// Trainer is the external training collaborator. Train blocks until training
// completes or ctx is cancelled; on cancellation the trainer persists partial
// state before returning.
type Trainer interface {
	Train(ctx context.Context) error
}

// ContextSpec holds the parameters for context classifier training.
type ContextSpec struct {
	Epochs   int
	Validate bool
	Autosave bool
}

// ObjectSpec holds the parameters for object recognition training.
type ObjectSpec struct {
	Name      string
	Algorithm string
	Classes   []string
}

// Default parameter values for context classifier training.
const (
	DefaultEpochs   = 3
	DefaultValidate = true
	DefaultAutosave = false
)

// UnavailableError reports a training module that is not wired into this
// binary.
type UnavailableError struct {
	Module string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("the %s training module is not available in this build", e.Module)
}

// NewContextTrainer constructs the context classifier trainer. It is a
// package-level variable so the ML module (or a test) can install a real
// implementation; the default reports the module as unavailable.
var NewContextTrainer = func(spec ContextSpec) (Trainer, error) {
	return nil, &UnavailableError{Module: "context classification"}
}

// NewObjectTrainer constructs the object recognition trainer. Same seam as
// NewContextTrainer.
var NewObjectTrainer = func(spec ObjectSpec) (Trainer, error) {
	return nil, &UnavailableError{Module: "object recognition"}
}

// Run executes the trainer under ctx. The caller derives ctx from the
// process interrupt signals, so cancellation reaches the trainer as the
// graceful-shutdown path rather than an error.
func Run(ctx context.Context, t Trainer) error {
	if err := t.Train(ctx); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	return nil
}
