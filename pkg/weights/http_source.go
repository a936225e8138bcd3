package weights

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// HTTPSource serves checkpoints from a plain HTTP hub. The hub lays
// files out as <base_url>/<name>/<name>-v<version>.pth and publishes
// the available versions of each checkpoint at
// <base_url>/<name>/versions.yaml (a YAML list of version strings).
type HTTPSource struct {
	config HTTPSourceConfig
	logger *log.Logger

	// Client defaults to http.DefaultClient; tests override it.
	Client *http.Client
}

func NewHTTPSource(config HTTPSourceConfig, logger *log.Logger) *HTTPSource {
	return &HTTPSource{config: config, logger: logger, Client: http.DefaultClient}
}

func (src *HTTPSource) ID() string   { return src.config.SourceID() }
func (src *HTTPSource) Type() string { return SourceTypeHTTP }

func (src *HTTPSource) hubURL(elem ...string) (string, error) {
	base, err := url.Parse(src.config.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base_url: %w", err)
	}
	base.Path = path.Join(append([]string{base.Path}, elem...)...)
	return base.String(), nil
}

func (src *HTTPSource) listVersions(ctx context.Context, name string) ([]string, error) {
	indexURL, err := src.hubURL(name, "versions.yaml")
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, err
	}
	response, err := src.Client.Do(request)
	if err != nil {
		return nil, err
	}
	defer closeAndIgnoreError(response.Body)
	if response.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if err := checkStatus(http.StatusOK, response.StatusCode); err != nil {
		return nil, err
	}

	var versions []string
	if err := yaml.NewDecoder(response.Body).Decode(&versions); err != nil {
		return nil, fmt.Errorf("unable to parse version index at %s: %w", indexURL, err)
	}
	return versions, nil
}

func (src *HTTPSource) FindCheckpointVersion(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error) {
	constraints, err := spec.VersionConstraints()
	if err != nil {
		return CheckpointLock{}, err
	}

	versions, err := src.listVersions(ctx, spec.Name)
	if err != nil {
		return CheckpointLock{}, err
	}

	var best *semver.Version
	for _, raw := range versions {
		version, err := semver.NewVersion(raw)
		if err != nil || !constraints.Check(version) {
			continue
		}
		if best == nil || version.GreaterThan(best) {
			best = version
		}
	}
	if best == nil {
		return CheckpointLock{}, ErrNotFound
	}

	lock := CheckpointLock{Name: spec.Name, Version: best.Original(), RemoteSource: src.ID()}
	lock.RemotePath, err = src.hubURL(spec.Name, lock.FileName())
	if err != nil {
		return CheckpointLock{}, err
	}
	return lock, nil
}

func (src *HTTPSource) GetMatchedCheckpoint(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error) {
	lock := CheckpointLock{Name: spec.Name, Version: spec.Version, RemoteSource: src.ID()}
	remote, err := src.hubURL(spec.Name, lock.FileName())
	if err != nil {
		return CheckpointLock{}, err
	}
	lock.RemotePath = remote

	request, err := http.NewRequestWithContext(ctx, http.MethodHead, remote, nil)
	if err != nil {
		return CheckpointLock{}, err
	}
	response, err := src.Client.Do(request)
	if err != nil {
		return CheckpointLock{}, err
	}
	closeAndIgnoreError(response.Body)
	if response.StatusCode == http.StatusNotFound {
		return CheckpointLock{}, ErrNotFound
	}
	if err := checkStatus(http.StatusOK, response.StatusCode); err != nil {
		return CheckpointLock{}, err
	}
	return lock, nil
}

func (src *HTTPSource) DownloadCheckpoint(ctx context.Context, dir string, lock CheckpointLock) (LocalCheckpoint, error) {
	src.logger.Printf(logLineDownload, lock.Name, SourceTypeHTTP, src.ID())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, lock.RemotePath, nil)
	if err != nil {
		return LocalCheckpoint{}, err
	}
	response, err := src.Client.Do(request)
	if err != nil {
		return LocalCheckpoint{}, err
	}
	defer closeAndIgnoreError(response.Body)
	if response.StatusCode == http.StatusNotFound {
		return LocalCheckpoint{}, ErrNotFound
	}
	if err := checkStatus(http.StatusOK, response.StatusCode); err != nil {
		return LocalCheckpoint{}, err
	}

	localPath := filepath.Join(dir, lock.FileName())
	file, err := os.Create(localPath)
	if err != nil {
		return LocalCheckpoint{}, err
	}
	defer closeAndIgnoreError(file)

	hash := sha1.New()
	if _, err := io.Copy(io.MultiWriter(file, hash), response.Body); err != nil {
		return LocalCheckpoint{}, fmt.Errorf("error writing checkpoint file: %w", err)
	}

	lock.SHA1 = hex.EncodeToString(hash.Sum(nil))
	return LocalCheckpoint{Lock: lock, LocalPath: localPath}, nil
}
