package flags

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"
	"gopkg.in/yaml.v3"

	"github.com/SheLesTT/open-place-recognition/internal/builder"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

type (
	StatFunc func(string) (os.FileInfo, error)

	FileSystem interface {
		billy.Basic
		billy.Dir
	}

	// ConfigDirectory is implemented by option structs so default file
	// paths resolve relative to the configuration they belong to.
	ConfigDirectory interface {
		ConfigDirectory() string
	}

	VariablesService interface {
		FromPathsAndPairs(paths []string, pairs []string) (templateVariables map[string]any, err error)
	}
)

// Standard holds the flags almost every command takes: where the model
// configuration and Weightsfile live and which variables to interpolate.
type Standard struct {
	ModelConfig   string   `short:"mc" long:"model-config"   default:"configs/place_recognition_multimodal.yml" description:"path to the model configuration"`
	Weightsfile   string   `short:"wf" long:"weightsfile"    default:"Weightsfile"                              description:"path to Weightsfile"`
	VariableFiles []string `short:"vf" long:"variables-file"                                                    description:"path to a file containing variables to interpolate"`
	Variables     []string `short:"vr" long:"variable"                                                          description:"key value pairs of variables to interpolate"`
}

// LoadWeightsfiles parses and interpolates the Weightsfile and parses the
// Weightsfile.lock. The function parameters are for overriding default
// services. These parameters are helpful for testing, in most cases nil
// can be passed for both.
func (options *Standard) LoadWeightsfiles(fsOverride billy.Filesystem, variablesServiceOverride VariablesService) (_ weights.Weightsfile, _ weights.WeightsfileLock, err error) {
	fs := fsOverride
	if fs == nil {
		fs = osfs.New("")
	}
	variablesService := variablesServiceOverride
	if variablesService == nil {
		variablesService = builder.NewTemplateVariablesService(fs)
	}

	templateVariables, err := variablesService.FromPathsAndPairs(options.VariableFiles, options.Variables)
	if err != nil {
		return weights.Weightsfile{}, weights.WeightsfileLock{}, fmt.Errorf("failed to parse template variables: %s", err)
	}

	weightsfileFP, err := fs.Open(options.Weightsfile)
	if err != nil {
		return weights.Weightsfile{}, weights.WeightsfileLock{}, fmt.Errorf("failed to open Weightsfile: %w", err)
	}
	defer closeAndIgnoreError(weightsfileFP)

	weightsfile, err := weights.InterpolateAndParseWeightsfile(weightsfileFP, templateVariables)
	if err != nil {
		return weights.Weightsfile{}, weights.WeightsfileLock{}, err
	}

	lockFP, err := fs.Open(options.WeightsfileLockPath())
	if err != nil {
		return weights.Weightsfile{}, weights.WeightsfileLock{}, fmt.Errorf("failed to open Weightsfile.lock: %w", err)
	}
	defer closeAndIgnoreError(lockFP)

	lock, err := weights.ParseWeightsfileLock(lockFP)
	if err != nil {
		return weights.Weightsfile{}, weights.WeightsfileLock{}, err
	}

	return weightsfile, lock, nil
}

func (options Standard) SaveWeightsfileLock(fsOverride billy.Basic, lock weights.WeightsfileLock) error {
	fs := fsOverride
	if fs == nil {
		fs = osfs.New("")
	}

	updatedLockFileYAML, err := yaml.Marshal(lock)
	if err != nil {
		return fmt.Errorf("error marshaling the Weightsfile.lock: %w", err) // untestable
	}

	lockFile, err := fs.Create(options.WeightsfileLockPath()) // overwrites the file
	if err != nil {
		return fmt.Errorf("error reopening the Weightsfile.lock for writing: %w", err)
	}

	_, err = lockFile.Write(updatedLockFileYAML)
	if err != nil {
		return fmt.Errorf("error writing to Weightsfile.lock: %w", err)
	}

	return nil
}

func (options Standard) WeightsfileLockPath() string {
	return options.Weightsfile + ".lock"
}

func (options Standard) ConfigDirectory() string {
	if options.Weightsfile != "" {
		if filepath.Base(options.Weightsfile) == "Weightsfile" {
			return filepath.Dir(options.Weightsfile)
		}
		return options.Weightsfile
	}
	currentWorkingDirectory, _ := os.Getwd()
	return currentWorkingDirectory
}

// LoadFlagsWithDefaults only resolves default values if the flag is not
// set. This permits explicitly setting "zero values" for arguments
// without them being overwritten. Default paths that do not exist on
// disk become zero values rather than errors, so a command can tell a
// missing default apart from a missing explicit path.
func LoadFlagsWithDefaults(options ConfigDirectory, args []string, stat StatFunc) ([]string, error) {
	if stat == nil {
		stat = os.Stat
	}
	argsAfterFlags, err := jhanda.Parse(options, args)
	if err != nil {
		return nil, err
	}

	v := reflect.ValueOf(options).Elem()

	configDir := options.ConfigDirectory()

	configurePathDefaults(v, configDir, stat)

	return argsAfterFlags, nil
}

func configurePathDefaults(v reflect.Value, pathPrefix string, stat StatFunc) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		fieldType := t.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		fieldValue := v.Field(i)

		switch fieldType.Type.Kind() {
		default:
			continue
		case reflect.Struct:
			configurePathDefaults(fieldValue, pathPrefix, stat)
			continue
		case reflect.String:
			defaultValue, ok := fieldType.Tag.Lookup("default")
			if !ok {
				continue
			}

			value := fieldValue.Interface().(string)
			if defaultValue != value {
				continue
			}

			if pathPrefix != "" && pathPrefix != "." {
				value = filepath.Join(pathPrefix, value)
			}

			if _, err := stat(value); err != nil {
				fieldValue.Set(reflect.Zero(fieldValue.Type()))
				continue
			}

			fieldValue.Set(reflect.ValueOf(value))
		}
	}
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
