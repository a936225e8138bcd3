package weights

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-git/go-billy/v5"
)

// Store is the local checkpoint directory the fetch command fills.
type Store struct {
	fs     billy.Filesystem
	dir    string
	logger *log.Logger
}

func NewStore(fs billy.Filesystem, dir string, logger *log.Logger) Store {
	return Store{fs: fs, dir: dir, logger: logger}
}

func (s Store) Directory() string { return s.dir }

// Partition splits the lock into checkpoints already present with a
// matching checksum and checkpoints that must be downloaded, and
// reports files in the directory no lock entry accounts for.
func (s Store) Partition(locks []CheckpointLock) (have []LocalCheckpoint, missing []CheckpointLock, extra []string, err error) {
	missing = make([]CheckpointLock, len(locks))
	copy(missing, locks)

	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, missing, nil, nil
		}
		return nil, nil, nil, fmt.Errorf("error reading checkpoint directory %q: %w", s.dir, err)
	}

nextFile:
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		localPath := s.fs.Join(s.dir, entry.Name())
		for j, lock := range missing {
			if entry.Name() != lock.FileName() {
				continue
			}
			sum, err := s.checksum(localPath)
			if err != nil {
				return nil, nil, nil, err
			}
			if sum != lock.SHA1 {
				break
			}
			have = append(have, LocalCheckpoint{Lock: lock, LocalPath: localPath})
			missing = append(missing[:j], missing[j+1:]...)
			continue nextFile
		}
		extra = append(extra, localPath)
	}

	return have, missing, extra, nil
}

// DeleteExtra removes files the lock does not account for. Without
// noConfirm the files are only reported, never deleted.
func (s Store) DeleteExtra(extra []string, noConfirm bool) error {
	if len(extra) == 0 {
		return nil
	}
	if !noConfirm {
		s.logger.Printf("found %d extra file(s) in %q, pass --no-confirm to delete them", len(extra), s.dir)
		for _, path := range extra {
			s.logger.Printf("  %s", path)
		}
		return nil
	}
	for _, path := range extra {
		s.logger.Printf("deleting extra file %s", path)
		if err := s.fs.Remove(path); err != nil {
			return fmt.Errorf("error deleting %q: %w", path, err)
		}
	}
	return nil
}

// VerifyChecksum confirms a downloaded file matches its lock entry.
func (s Store) VerifyChecksum(local LocalCheckpoint, want string) error {
	if local.Lock.SHA1 == want {
		return nil
	}
	if err := s.fs.Remove(local.LocalPath); err != nil {
		return fmt.Errorf("error deleting bad checkpoint file %q: %w", local.LocalPath, err)
	}
	return fmt.Errorf("downloaded checkpoint %q had an incorrect SHA1 - expected %q, got %q",
		local.LocalPath, want, local.Lock.SHA1)
}

func (s Store) checksum(path string) (string, error) {
	file, err := s.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening %q: %w", path, err)
	}
	defer closeAndIgnoreError(file)

	hash := sha1.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("error hashing %q: %w", path, err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
