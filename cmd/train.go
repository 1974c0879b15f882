package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/entity53/SerpentAI/internal/log"
	"github.com/entity53/SerpentAI/internal/train"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train <context|object> [args...]",
	Short: "Train a machine learning model on captured frames",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrain,
}

func runTrain(cmd *cobra.Command, args []string) error {
	// An interrupt cancels the context so the trainer can persist partial
	// state before the process exits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "context":
		spec, err := parseContextSpec(args[1:])
		if err != nil {
			return err
		}
		trainer, err := train.NewContextTrainer(spec)
		if err != nil {
			return err
		}
		log.Info(fmt.Sprintf("Training context classifier for %d epochs", spec.Epochs))
		return train.Run(ctx, trainer)
	case "object":
		if len(args) < 3 {
			return fmt.Errorf("train object requires a model name and an algorithm")
		}
		spec := train.ObjectSpec{Name: args[1], Algorithm: args[2], Classes: args[3:]}
		trainer, err := train.NewObjectTrainer(spec)
		if err != nil {
			return err
		}
		log.Info(fmt.Sprintf("Training object model %q with %s", spec.Name, spec.Algorithm))
		return train.Run(ctx, trainer)
	default:
		return fmt.Errorf("%q is not a valid training type: must be 'context' or 'object'", args[0])
	}
}

// parseContextSpec fills a ContextSpec from positional arguments, applying
// the documented defaults for anything omitted.
func parseContextSpec(args []string) (train.ContextSpec, error) {
	spec := train.ContextSpec{
		Epochs:   train.DefaultEpochs,
		Validate: train.DefaultValidate,
		Autosave: train.DefaultAutosave,
	}

	if len(args) > 0 {
		epochs, err := strconv.Atoi(args[0])
		if err != nil || epochs <= 0 {
			return spec, fmt.Errorf("invalid epochs %q: must be a positive integer", args[0])
		}
		spec.Epochs = epochs
	}
	if len(args) > 1 {
		validate, err := parseBoolArg("validate", args[1])
		if err != nil {
			return spec, err
		}
		spec.Validate = validate
	}
	if len(args) > 2 {
		autosave, err := parseBoolArg("autosave", args[2])
		if err != nil {
			return spec, err
		}
		spec.Autosave = autosave
	}

	return spec, nil
}
