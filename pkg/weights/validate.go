package weights

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Validate checks a Weightsfile and its lock against each other and
// accumulates every problem found.
func Validate(wf Weightsfile, lock WeightsfileLock) []error {
	var result []error

	sourceIDs := make(map[string]struct{}, len(wf.Sources))
	for i, config := range wf.Sources {
		for _, err := range config.ConfigurationErrors() {
			result = append(result, fmt.Errorf("source at index %d: %w", i, err))
		}
		if _, dup := sourceIDs[config.SourceID()]; dup {
			result = append(result, fmt.Errorf("duplicate source ID %q", config.SourceID()))
		}
		sourceIDs[config.SourceID()] = struct{}{}
	}

	for index, spec := range wf.Checkpoints {
		if spec.Name == "" {
			result = append(result, fmt.Errorf("checkpoint at index %d missing name in spec", index))
			continue
		}
		if spec.Source != "" {
			if _, ok := sourceIDs[spec.Source]; !ok {
				result = append(result, fmt.Errorf("checkpoint %q references unknown source %q", spec.Name, spec.Source))
			}
		}

		checkpointLock, err := lock.FindCheckpointWithName(spec.Name)
		if err != nil {
			result = append(result, fmt.Errorf("checkpoint %q not found in lock", spec.Name))
			continue
		}

		if err := checkVersionsAndConstraint(spec, checkpointLock, index); err != nil {
			result = append(result, err)
		}
		if checkpointLock.SHA1 == "" {
			result = append(result, fmt.Errorf("checkpoint %q has no sha1 in lock", spec.Name))
		}
		if _, ok := sourceIDs[checkpointLock.RemoteSource]; !ok {
			result = append(result, fmt.Errorf("remote source %q for checkpoint lock %q not found in Weightsfile", checkpointLock.RemoteSource, checkpointLock.Name))
		}
	}

	for index, checkpointLock := range lock.Checkpoints {
		if checkpointLock.Name == "" {
			result = append(result, fmt.Errorf("checkpoint at index %d missing name in lock", index))
			continue
		}
		if _, ok := wf.CheckpointSpec(checkpointLock.Name); !ok {
			result = append(result, fmt.Errorf("checkpoint %q not found in spec", checkpointLock.Name))
		}
	}

	if len(result) > 0 {
		return result
	}
	return nil
}

// ValidateModelCheckpoints checks that every pretrained checkpoint a
// model's components expect is pinned in the lock.
func ValidateModelCheckpoints(names []string, lock WeightsfileLock) []error {
	var result []error
	for _, name := range names {
		if _, err := lock.FindCheckpointWithName(name); err != nil {
			result = append(result, fmt.Errorf("pretrained checkpoint %q required by the model is not pinned in Weightsfile.lock", name))
		}
	}
	if len(result) > 0 {
		return result
	}
	return nil
}

func checkVersionsAndConstraint(spec CheckpointSpec, lock CheckpointLock, index int) error {
	v, err := semver.NewVersion(lock.Version)
	if err != nil {
		return fmt.Errorf("checkpoint %s (index %d in Weightsfile.lock) has invalid lock version %q: %w",
			spec.Name, index, lock.Version, err)
	}

	if spec.Version != "" {
		c, err := semver.NewConstraint(spec.Version)
		if err != nil {
			return fmt.Errorf("checkpoint %s (index %d in Weightsfile) has invalid version constraint: %w",
				spec.Name, index, err)
		}

		matches, errs := c.Validate(v)
		if !matches {
			return fmt.Errorf("checkpoint %s version in lock %q does not match constraint %q: %v",
				spec.Name, lock.Version, spec.Version, errs)
		}
	}

	return nil
}
