package weights

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type stringError string

func (str stringError) Error() string { return string(str) }

// ErrNotFound is returned when a source has no checkpoint matching a
// spec.
const ErrNotFound stringError = "checkpoint not found"

func IsErrNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// ErrorUnexpectedStatus is returned when a remote responds with a
// status the source cannot act on.
type ErrorUnexpectedStatus struct {
	Want, Got int
}

func checkStatus(want, got int) error {
	if want != got {
		return ErrorUnexpectedStatus{Want: want, Got: got}
	}
	return nil
}

func (err ErrorUnexpectedStatus) Error() string {
	return fmt.Sprintf("request responded with %s (%d)", http.StatusText(err.Got), err.Got)
}

// LocalCheckpoint is a checkpoint file on disk with its computed
// checksum. Callers verify the sum against the lock; sources only
// report it.
type LocalCheckpoint struct {
	Lock      CheckpointLock
	LocalPath string
}

// Source is a place pretrained checkpoints come from.
//
//counterfeiter:generate -o ./fakes/checkpoint_source.go --fake-name CheckpointSource . Source
type Source interface {
	ID() string
	Type() string

	// FindCheckpointVersion returns the best available version
	// satisfying the spec's constraint.
	FindCheckpointVersion(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error)

	// GetMatchedCheckpoint confirms that an exact version exists and
	// returns its remote location.
	GetMatchedCheckpoint(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error)

	// DownloadCheckpoint fetches a locked checkpoint into dir. The
	// returned lock carries the SHA1 of the downloaded bytes; the
	// caller verifies it against the pinned sum.
	DownloadCheckpoint(ctx context.Context, dir string, lock CheckpointLock) (LocalCheckpoint, error)
}

// NewSource builds a Source from one Weightsfile entry.
func NewSource(config SourceConfig, logger *log.Logger) (Source, error) {
	if errs := config.ConfigurationErrors(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s source %q: %w", config.SourceType(), config.SourceID(), errs[0])
	}
	switch c := config.(type) {
	case S3SourceConfig:
		return NewS3Source(c, logger), nil
	case GitHubSourceConfig:
		return NewGitHubSource(c, logger), nil
	case HTTPSourceConfig:
		return NewHTTPSource(c, logger), nil
	}
	return nil, fmt.Errorf("no source implementation for type %q", config.SourceType())
}

// SourceList aggregates the configured sources.
type SourceList []Source

// NewSourceList builds every source configured in a Weightsfile.
func NewSourceList(wf Weightsfile, logger *log.Logger) (SourceList, error) {
	list := make(SourceList, 0, len(wf.Sources))
	for _, config := range wf.Sources {
		source, err := NewSource(config, logger)
		if err != nil {
			return nil, err
		}
		list = append(list, source)
	}
	return list, nil
}

func (list SourceList) FindByID(id string) (Source, error) {
	var ids []string
	for _, source := range list {
		if source.ID() == id {
			return source, nil
		}
		ids = append(ids, source.ID())
	}
	return nil, fmt.Errorf("could not find a source with ID %q, available sources: %v", id, ids)
}

// SourceFor returns the source a spec pins, or the whole list's first
// source holding the checkpoint when the spec does not pin one.
func (list SourceList) SourceFor(ctx context.Context, spec CheckpointSpec) (Source, error) {
	if spec.Source != "" {
		return list.FindByID(spec.Source)
	}
	for _, source := range list {
		if _, err := source.FindCheckpointVersion(ctx, spec); err == nil {
			return source, nil
		}
	}
	return nil, fmt.Errorf("checkpoint %q: %w in any configured source", spec.Name, ErrNotFound)
}
