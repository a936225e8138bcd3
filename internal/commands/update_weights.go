package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/SheLesTT/open-place-recognition/internal/commands/flags"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

type UpdateWeights struct {
	Options struct {
		flags.Standard

		Name             string `short:"n"  long:"name"              required:"true"   description:"name of the checkpoint to update"`
		Version          string `short:"v"  long:"version"                             description:"desired version constraint, defaults to the constraint in the Weightsfile"`
		WeightsDirectory string `short:"wd" long:"weights-directory" default:"weights" description:"path to a directory to download checkpoints into"`
		WithoutDownload  bool   `           long:"without-download"                    description:"update the lock without downloading the checkpoint"`
	}

	logger                   *log.Logger
	filesystem               billy.Filesystem
	checkpointSourceProvider CheckpointSourceProvider
}

func NewUpdateWeights(logger *log.Logger, filesystem billy.Filesystem, checkpointSourceProvider CheckpointSourceProvider) UpdateWeights {
	return UpdateWeights{
		logger:                   logger,
		filesystem:               filesystem,
		checkpointSourceProvider: checkpointSourceProvider,
	}
}

func (u UpdateWeights) Execute(args []string) error {
	_, err := flags.LoadFlagsWithDefaults(&u.Options, args, u.filesystem.Stat)
	if err != nil {
		return err
	}

	weightsfile, lock, err := u.Options.Standard.LoadWeightsfiles(u.filesystem, nil)
	if err != nil {
		return fmt.Errorf("error loading Weightsfiles: %w", err)
	}

	checkpointLock, err := lock.FindCheckpointWithName(u.Options.Name)
	if err != nil {
		return fmt.Errorf("no checkpoint named %q exists in your Weightsfile.lock", u.Options.Name)
	}
	spec, ok := weightsfile.CheckpointSpec(u.Options.Name)
	if !ok {
		return fmt.Errorf("no checkpoint named %q exists in your Weightsfile", u.Options.Name)
	}
	if u.Options.Version != "" {
		spec.Version = u.Options.Version
	}

	sources, err := u.checkpointSourceProvider(weightsfile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	source, err := sources.SourceFor(ctx, spec)
	if err != nil {
		return err
	}

	u.logger.Println("searching for the checkpoint...")

	var updated weights.CheckpointLock
	if u.Options.WithoutDownload {
		updated, err = source.FindCheckpointVersion(ctx, spec)
		if err != nil {
			return fmt.Errorf("error finding the checkpoint: %w", err)
		}
		// the sum can only be computed from the bytes, keep the pinned one
		// when the remote location did not change
		if updated.RemotePath == checkpointLock.RemotePath && updated.RemoteSource == checkpointLock.RemoteSource {
			updated.SHA1 = checkpointLock.SHA1
		}
	} else {
		found, err := source.FindCheckpointVersion(ctx, spec)
		if err != nil {
			return fmt.Errorf("error finding the checkpoint: %w", err)
		}

		local, err := source.DownloadCheckpoint(ctx, u.Options.WeightsDirectory, found)
		if err != nil {
			return fmt.Errorf("error downloading the checkpoint: %w", err)
		}
		updated = local.Lock
	}

	if updated == checkpointLock {
		u.logger.Println("neither the version nor remote location of the checkpoint changed, no changes made")
		return nil
	}

	_ = lock.UpdateCheckpointWithName(u.Options.Name, updated)

	if err := u.Options.Standard.SaveWeightsfileLock(u.filesystem, lock); err != nil {
		return err
	}

	u.logger.Printf("updated %s to %s, don't forget to make a commit and PR\n", u.Options.Name, updated.Version)
	return nil
}

func (u UpdateWeights) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Bumps a checkpoint to a new version in Weightsfile.lock",
		ShortDescription: "bumps a checkpoint to a new version",
		Flags:            u.Options,
	}
}
