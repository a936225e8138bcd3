package weights

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"strings"

	bufra "github.com/avvmoto/buf-readerat"
	"github.com/snabb/httpreaderat"
)

// CheckpointArchive describes a PyTorch checkpoint without its tensor
// payload. Checkpoints are zip archives whose directory can be read
// over HTTP range requests, so inspection never downloads the blob.
type CheckpointArchive struct {
	Size    int64
	Entries []string
}

// HasDataPickle reports whether the archive carries the data.pkl entry
// every torch.save checkpoint has.
func (a CheckpointArchive) HasDataPickle() bool {
	for _, entry := range a.Entries {
		if entry == "data.pkl" || strings.HasSuffix(entry, "/data.pkl") {
			return true
		}
	}
	return false
}

const inspectBufferSize = 256 * 1024

// InspectRemoteCheckpoint reads the archive directory of a remote
// checkpoint. The server must support range requests.
func InspectRemoteCheckpoint(client *http.Client, checkpointURL string) (CheckpointArchive, error) {
	request, err := http.NewRequest(http.MethodGet, checkpointURL, nil)
	if err != nil {
		return CheckpointArchive{}, err
	}

	readerAt, err := httpreaderat.New(client, request, nil)
	if err != nil {
		return CheckpointArchive{}, fmt.Errorf("unable to read %s over range requests: %w", checkpointURL, err)
	}
	buffered := bufra.NewBufReaderAt(readerAt, inspectBufferSize)

	return inspectArchive(buffered, readerAt.Size())
}

func inspectArchive(ra io.ReaderAt, size int64) (CheckpointArchive, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return CheckpointArchive{}, fmt.Errorf("checkpoint is not a readable archive: %w", err)
	}

	archive := CheckpointArchive{Size: size}
	for _, file := range zr.File {
		archive.Entries = append(archive.Entries, file.Name)
	}
	if !archive.HasDataPickle() {
		return archive, fmt.Errorf("archive has no data.pkl entry, this does not look like a checkpoint")
	}
	return archive, nil
}
