package commands

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/SheLesTT/open-place-recognition/internal/commands/flags"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

type InspectCheckpoint struct {
	Options struct {
		flags.Standard

		Name string `short:"n" long:"name" description:"inspect the checkpoint pinned under this name in Weightsfile.lock"`
	}

	logger *log.Logger

	filesystem billy.Filesystem

	// Client defaults to http.DefaultClient; tests override it.
	Client *http.Client
}

func NewInspectCheckpoint(logger *log.Logger, filesystem billy.Filesystem) InspectCheckpoint {
	return InspectCheckpoint{
		logger:     logger,
		filesystem: filesystem,
		Client:     http.DefaultClient,
	}
}

func (i InspectCheckpoint) Execute(args []string) error {
	args, err := flags.LoadFlagsWithDefaults(&i.Options, args, i.filesystem.Stat)
	if err != nil {
		return err
	}

	checkpointURL, err := i.resolveURL(args)
	if err != nil {
		return err
	}

	archive, err := weights.InspectRemoteCheckpoint(i.Client, checkpointURL)
	if err != nil {
		return err
	}

	i.logger.Printf("%s (%d bytes)", checkpointURL, archive.Size)
	for _, entry := range archive.Entries {
		i.logger.Printf("  %s", entry)
	}
	return nil
}

func (i InspectCheckpoint) resolveURL(args []string) (string, error) {
	if len(args) > 0 {
		if i.Options.Name != "" {
			return "", errors.New("pass either a checkpoint URL or --name, not both")
		}
		return args[0], nil
	}
	if i.Options.Name == "" {
		return "", errors.New("missing checkpoint: pass a URL or --name")
	}

	_, lock, err := i.Options.Standard.LoadWeightsfiles(i.filesystem, nil)
	if err != nil {
		return "", fmt.Errorf("error loading Weightsfiles: %w", err)
	}
	checkpointLock, err := lock.FindCheckpointWithName(i.Options.Name)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(checkpointLock.RemotePath, "http://") && !strings.HasPrefix(checkpointLock.RemotePath, "https://") {
		return "", fmt.Errorf("checkpoint %q is pinned to %q which is not an HTTP location", i.Options.Name, checkpointLock.RemotePath)
	}
	return checkpointLock.RemotePath, nil
}

func (i InspectCheckpoint) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Lists the archive entries of a remote checkpoint using range requests, without downloading it",
		ShortDescription: "inspect a remote checkpoint archive",
		Flags:            i.Options,
	}
}
