package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/SheLesTT/open-place-recognition/internal/builder"
	"github.com/SheLesTT/open-place-recognition/internal/commands/flags"
	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

type Validate struct {
	Options struct {
		flags.Standard
	}

	logger     *log.Logger
	filesystem billy.Filesystem
}

var _ jhanda.Command = (*Validate)(nil)

func NewValidate(logger *log.Logger, filesystem billy.Filesystem) Validate {
	return Validate{
		logger:     logger,
		filesystem: filesystem,
	}
}

func (v Validate) Execute(args []string) error {
	_, err := flags.LoadFlagsWithDefaults(&v.Options, args, v.filesystem.Stat)
	if err != nil {
		return err
	}
	if v.Options.ModelConfig == "" {
		return errors.New("missing model configuration: set --model-config")
	}

	variablesService := builder.NewTemplateVariablesService(v.filesystem)
	templateVariables, err := variablesService.FromPathsAndPairs(v.Options.VariableFiles, v.Options.Variables)
	if err != nil {
		return fmt.Errorf("failed to parse template variables: %s", err)
	}

	var errs []error

	composed, configErrs := v.validateModelConfig(templateVariables)
	errs = append(errs, configErrs...)

	if v.Options.Weightsfile != "" {
		weightsfile, lock, err := v.Options.Standard.LoadWeightsfiles(v.filesystem, nil)
		if err != nil {
			errs = append(errs, fmt.Errorf("error loading Weightsfiles: %w", err))
		} else {
			errs = append(errs, weights.Validate(weightsfile, lock)...)
			if composed != nil {
				errs = append(errs, weights.ValidateModelCheckpoints(composed.PretrainedCheckpoints(), lock)...)
			}
		}
	} else if composed != nil && len(composed.PretrainedCheckpoints()) > 0 {
		errs = append(errs, fmt.Errorf("the model expects pretrained checkpoints %v but no Weightsfile was found", composed.PretrainedCheckpoints()))
	}

	if len(errs) > 0 {
		return errorList(errs)
	}

	v.logger.Println("configuration is valid")
	return nil
}

func (v Validate) validateModelConfig(templateVariables map[string]any) (composed interface{ PretrainedCheckpoints() []string }, errs []error) {
	configFP, err := v.filesystem.Open(v.Options.ModelConfig)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to open model configuration: %w", err)}
	}
	defer closeAndIgnoreError(configFP)

	configYAML, err := io.ReadAll(configFP)
	if err != nil {
		return nil, []error{err}
	}

	interpolated, err := builder.NewInterpolator().Interpolate(builder.InterpolateInput{
		Variables: templateVariables,
	}, v.Options.ModelConfig, configYAML)
	if err != nil {
		return nil, []error{fmt.Errorf("encountered a configuration file error with %s: %w", v.Options.ModelConfig, err)}
	}

	root, err := blueprint.Parse(bytes.NewReader(interpolated))
	if err != nil {
		return nil, []error{err}
	}

	model, err := assembleModel(root)
	if err != nil {
		var list errorList
		if errors.As(err, &list) {
			return nil, list
		}
		return nil, []error{err}
	}
	return model, nil
}

type errorList []error

func (list errorList) Error() string {
	messages := make([]string, 0, len(list))
	for _, err := range list {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

func (v Validate) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Validate checks for common model configuration, Weightsfile, and Weightsfile.lock mistakes",
		ShortDescription: "validate the model configuration and Weightsfiles",
		Flags:            v.Options,
	}
}
