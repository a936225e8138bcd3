package commands

import (
	"fmt"
	"io"

	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
	"github.com/SheLesTT/open-place-recognition/pkg/model"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }

// CheckpointSourceProvider builds the checkpoint sources a Weightsfile
// configures.
//
//counterfeiter:generate -o ./fakes/checkpoint_source_provider.go --fake-name CheckpointSourceProvider . CheckpointSourceProvider
type CheckpointSourceProvider func(weights.Weightsfile) (weights.SourceList, error)

// assembleModel builds the model a parsed configuration describes and
// reports problems with the document before any component construction.
func assembleModel(root *blueprint.Node) (*model.ComposedModel, error) {
	if errs := blueprint.Validate(root); len(errs) > 0 {
		return nil, errorList(errs)
	}

	built, err := model.NewRegistry().Assemble(root)
	if err != nil {
		return nil, err
	}

	composed, ok := built.(*model.ComposedModel)
	if !ok {
		return nil, fmt.Errorf("configuration root must be a ComposedModel, got %q", root.Target)
	}
	return composed, nil
}
