// Package weights pins and fetches the pretrained checkpoints that
// model components initialize from. A Weightsfile names checkpoint
// sources and version constraints; a Weightsfile.lock records the exact
// resolved versions, checksums, and remote locations.
package weights

import (
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/SheLesTT/open-place-recognition/internal/builder"
)

type Weightsfile struct {
	Sources     SourceConfigList `yaml:"sources"`
	Checkpoints []CheckpointSpec `yaml:"checkpoints"`
}

// CheckpointSpec names a pretrained checkpoint and constrains which
// versions of it are acceptable.
type CheckpointSpec struct {
	// Name is required and must match the checkpoint name a model
	// component declares.
	Name string `yaml:"name"`

	// Version is a constraint; when empty it defaults to ">0".
	// See https://github.com/Masterminds/semver for syntax.
	Version string `yaml:"version,omitempty"`

	// Source pins the checkpoint to one source ID. When empty any
	// configured source may serve it.
	Source string `yaml:"source,omitempty"`
}

func (spec CheckpointSpec) VersionConstraints() (*semver.Constraints, error) {
	if spec.Version == "" {
		spec.Version = ">0"
	}
	c, err := semver.NewConstraint(spec.Version)
	if err != nil {
		return nil, fmt.Errorf("expected version to be a constraint: %w", err)
	}
	return c, nil
}

func (wf Weightsfile) CheckpointSpec(name string) (CheckpointSpec, bool) {
	for _, spec := range wf.Checkpoints {
		if spec.Name == name {
			return spec, true
		}
	}
	return CheckpointSpec{}, false
}

type WeightsfileLock struct {
	Checkpoints []CheckpointLock `yaml:"checkpoints"`
}

// CheckpointLock records an exact resolved checkpoint: the version that
// satisfied the spec, its checksum, and where it came from.
//
// All fields are comparable so the struct can key a map.
type CheckpointLock struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	SHA1    string `yaml:"sha1"`

	RemoteSource string `yaml:"remote_source"`
	RemotePath   string `yaml:"remote_path"`
}

func (lock CheckpointLock) WithSHA1(sum string) CheckpointLock {
	lock.SHA1 = sum
	return lock
}

func (lock CheckpointLock) WithRemote(source, path string) CheckpointLock {
	lock.RemoteSource = source
	lock.RemotePath = path
	return lock
}

// FileName is the conventional on-disk name for a locked checkpoint.
func (lock CheckpointLock) FileName() string {
	return fmt.Sprintf("%s-v%s.pth", lock.Name, lock.Version)
}

func (wl WeightsfileLock) FindCheckpointWithName(name string) (CheckpointLock, error) {
	for _, lock := range wl.Checkpoints {
		if lock.Name == name {
			return lock, nil
		}
	}
	return CheckpointLock{}, fmt.Errorf("failed to find checkpoint with name %q", name)
}

func (wl *WeightsfileLock) UpdateCheckpointWithName(name string, lock CheckpointLock) error {
	for i, existing := range wl.Checkpoints {
		if existing.Name == name {
			wl.Checkpoints[i] = lock
			return nil
		}
	}
	return fmt.Errorf("failed to find checkpoint with name %q", name)
}

// ConfigFileError decorates parse failures with the file they came from.
type ConfigFileError struct {
	HumanReadableConfigFileName string
	err                         error
}

func (err ConfigFileError) Unwrap() error {
	return err.err
}

func (err ConfigFileError) Error() string {
	return fmt.Sprintf("encountered a configuration file error with %s: %s", err.HumanReadableConfigFileName, err.err.Error())
}

// InterpolateAndParseWeightsfile renders variable references in a
// Weightsfile before parsing it, so credentials never live in the file
// itself.
func InterpolateAndParseWeightsfile(in io.Reader, templateVariables map[string]any) (Weightsfile, error) {
	weightsfileYAML, err := io.ReadAll(in)
	if err != nil {
		return Weightsfile{}, fmt.Errorf("unable to read Weightsfile: %w", err)
	}

	interpolator := builder.NewInterpolator()
	interpolatedYAML, err := interpolator.Interpolate(builder.InterpolateInput{
		Variables: templateVariables,
	}, "Weightsfile", weightsfileYAML)
	if err != nil {
		return Weightsfile{}, ConfigFileError{HumanReadableConfigFileName: "Weightsfile", err: err}
	}

	var weightsfile Weightsfile
	if err := yaml.Unmarshal(interpolatedYAML, &weightsfile); err != nil {
		return Weightsfile{}, ConfigFileError{HumanReadableConfigFileName: "Weightsfile", err: err}
	}
	return weightsfile, nil
}

// ParseWeightsfileLock parses a Weightsfile.lock document.
func ParseWeightsfileLock(in io.Reader) (WeightsfileLock, error) {
	buf, err := io.ReadAll(in)
	if err != nil {
		return WeightsfileLock{}, fmt.Errorf("unable to read Weightsfile.lock: %w", err)
	}
	var lock WeightsfileLock
	if err := yaml.Unmarshal(buf, &lock); err != nil {
		return WeightsfileLock{}, ConfigFileError{HumanReadableConfigFileName: "Weightsfile.lock", err: err}
	}
	return lock, nil
}
