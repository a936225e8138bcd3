package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/SheLesTT/open-place-recognition/internal/builder"
	"github.com/SheLesTT/open-place-recognition/internal/commands/flags"
	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
	"github.com/SheLesTT/open-place-recognition/pkg/report"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

type Assemble struct {
	Options struct {
		flags.Standard

		Report     string `short:"r" long:"report"      description:"path to write the model card to instead of printing it"`
		AllowDirty bool   `          long:"allow-dirty" description:"record DEVELOPMENT instead of failing when the configuration worktree is dirty"`
	}

	output     io.Writer
	logger     *log.Logger
	filesystem billy.Filesystem
}

func NewAssemble(output io.Writer, logger *log.Logger, filesystem billy.Filesystem) Assemble {
	return Assemble{
		output:     output,
		logger:     logger,
		filesystem: filesystem,
	}
}

func (a Assemble) Execute(args []string) error {
	_, err := flags.LoadFlagsWithDefaults(&a.Options, args, a.filesystem.Stat)
	if err != nil {
		return err
	}
	if a.Options.ModelConfig == "" {
		return errors.New("missing model configuration: set --model-config")
	}

	variablesService := builder.NewTemplateVariablesService(a.filesystem)
	templateVariables, err := variablesService.FromPathsAndPairs(a.Options.VariableFiles, a.Options.Variables)
	if err != nil {
		return fmt.Errorf("failed to parse template variables: %s", err)
	}

	configSHA, err := a.configGitSHA()
	if err != nil {
		return err
	}

	root, err := a.parseModelConfig(templateVariables, configSHA)
	if err != nil {
		return err
	}

	composed, err := assembleModel(root)
	if err != nil {
		return err
	}

	locks, err := a.checkpointLocks(composed.PretrainedCheckpoints())
	if err != nil {
		return err
	}

	a.logger.Printf("assembled model with descriptor width %d", composed.DescriptorDim())

	card, err := report.Data{
		GeneratedAt:        time.Now(),
		ConfigPath:         a.Options.ModelConfig,
		ConfigSHA:          configSHA,
		ImageDescriptorDim: composed.Image.DescriptorDim(),
		CloudDescriptorDim: composed.Cloud.DescriptorDim(),
		DescriptorDim:      composed.DescriptorDim(),
		Components:         report.Describe(root),
		Checkpoints:        locks,
	}.WriteModelCard()
	if err != nil {
		return err
	}

	if a.Options.Report == "" {
		_, err = io.WriteString(a.output, card)
		return err
	}

	reportFile, err := a.filesystem.Create(a.Options.Report)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer closeAndIgnoreError(reportFile)
	if _, err := io.WriteString(reportFile, card); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	a.logger.Printf("wrote model card to %s", a.Options.Report)
	return nil
}

// configGitSHA resolves the revision of the repository holding the model
// configuration. A configuration outside any repository is fine; the
// card just records no revision.
func (a Assemble) configGitSHA() (string, error) {
	sha, err := builder.ConfigGitSHA(filepath.Dir(a.Options.ModelConfig), a.Options.AllowDirty)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve the configuration revision: %w", err)
	}
	return sha, nil
}

func (a Assemble) parseModelConfig(templateVariables map[string]any, configSHA string) (*blueprint.Node, error) {
	configFP, err := a.filesystem.Open(a.Options.ModelConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open model configuration: %w", err)
	}
	defer closeAndIgnoreError(configFP)

	configYAML, err := io.ReadAll(configFP)
	if err != nil {
		return nil, err
	}

	interpolator := builder.NewInterpolator()
	interpolated, err := interpolator.Interpolate(builder.InterpolateInput{
		Variables: templateVariables,
		ConfigGitSHA: func() (string, error) {
			return configSHA, nil
		},
	}, a.Options.ModelConfig, configYAML)
	if err != nil {
		return nil, fmt.Errorf("encountered a configuration file error with %s: %w", a.Options.ModelConfig, err)
	}

	return blueprint.Parse(bytes.NewReader(interpolated))
}

func (a Assemble) checkpointLocks(names []string) ([]weights.CheckpointLock, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if a.Options.Weightsfile == "" {
		return nil, fmt.Errorf("the model expects pretrained checkpoints %v but no Weightsfile was found", names)
	}

	_, lock, err := a.Options.Standard.LoadWeightsfiles(a.filesystem, nil)
	if err != nil {
		return nil, fmt.Errorf("error loading Weightsfiles: %w", err)
	}

	if errs := weights.ValidateModelCheckpoints(names, lock); len(errs) > 0 {
		return nil, errorList(errs)
	}

	locks := make([]weights.CheckpointLock, 0, len(names))
	for _, name := range names {
		checkpointLock, err := lock.FindCheckpointWithName(name)
		if err != nil {
			return nil, err // unreachable, ValidateModelCheckpoints covers it
		}
		locks = append(locks, checkpointLock)
	}
	return locks, nil
}

func (a Assemble) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Builds the model a configuration describes and renders its model card",
		ShortDescription: "assemble a model from a configuration",
		Flags:            a.Options,
	}
}
