package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"
	"golang.org/x/sync/errgroup"

	"github.com/SheLesTT/open-place-recognition/internal/commands/flags"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

type Fetch struct {
	Options struct {
		flags.Standard

		WeightsDirectory string `short:"wd" long:"weights-directory" default:"weights" description:"path to a directory to download checkpoints into"`
		DownloadThreads  int    `short:"dt" long:"download-threads"                    description:"number of checkpoints to download in parallel"`
		NoConfirm        bool   `short:"n"  long:"no-confirm"                          description:"non-interactive mode, will delete unexpected files in the weights directory without prompting"`
	}

	logger                   *log.Logger
	filesystem               billy.Filesystem
	checkpointSourceProvider CheckpointSourceProvider
}

func NewFetch(logger *log.Logger, filesystem billy.Filesystem, checkpointSourceProvider CheckpointSourceProvider) Fetch {
	return Fetch{
		logger:                   logger,
		filesystem:               filesystem,
		checkpointSourceProvider: checkpointSourceProvider,
	}
}

func (f Fetch) Execute(args []string) error {
	_, err := flags.LoadFlagsWithDefaults(&f.Options, args, f.filesystem.Stat)
	if err != nil {
		return err
	}
	if f.Options.WeightsDirectory == "" {
		f.Options.WeightsDirectory = "weights"
	}
	if err := f.filesystem.MkdirAll(f.Options.WeightsDirectory, 0o777); err != nil {
		return fmt.Errorf("error with weights directory %s: %s", f.Options.WeightsDirectory, err)
	}

	weightsfile, lock, err := f.Options.Standard.LoadWeightsfiles(f.filesystem, nil)
	if err != nil {
		return fmt.Errorf("error loading Weightsfiles: %w", err)
	}

	store := weights.NewStore(f.filesystem, f.Options.WeightsDirectory, f.logger)
	have, missing, extra, err := store.Partition(lock.Checkpoints)
	if err != nil {
		return err
	}
	for _, local := range have {
		f.logger.Printf("%s is already downloaded", local.Lock.FileName())
	}

	if err := store.DeleteExtra(extra, f.Options.NoConfirm); err != nil {
		f.logger.Println("failed deleting some files:", err.Error())
	}

	if len(missing) == 0 {
		return nil
	}
	f.logger.Printf("found %d missing checkpoint(s) to download", len(missing))

	sources, err := f.checkpointSourceProvider(weightsfile)
	if err != nil {
		return err
	}

	return f.downloadMissingCheckpoints(sources, store, missing)
}

func (f Fetch) downloadMissingCheckpoints(sources weights.SourceList, store weights.Store, missing []weights.CheckpointLock) error {
	group, ctx := errgroup.WithContext(context.Background())
	if f.Options.DownloadThreads > 0 {
		group.SetLimit(f.Options.DownloadThreads)
	} else {
		group.SetLimit(1)
	}

	for _, checkpointLock := range missing {
		group.Go(func() error {
			source, err := sources.FindByID(checkpointLock.RemoteSource)
			if err != nil {
				return err
			}

			local, err := source.DownloadCheckpoint(ctx, f.Options.WeightsDirectory, checkpointLock)
			if err != nil {
				return fmt.Errorf("download failed: %w", err)
			}

			if err := store.VerifyChecksum(local, checkpointLock.SHA1); err != nil {
				return err
			}

			f.logger.Printf("downloaded %s", local.Lock.FileName())
			return nil
		})
	}

	return group.Wait()
}

func (f Fetch) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Fetches the checkpoints pinned in Weightsfile.lock and downloads them locally",
		ShortDescription: "fetches pinned checkpoints",
		Flags:            f.Options,
	}
}
