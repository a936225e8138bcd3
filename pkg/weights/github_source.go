package weights

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// RepositoryReleaseLister is the part of the GitHub releases API the
// source touches.
//
//counterfeiter:generate -o ./fakes/repository_release_lister.go --fake-name RepositoryReleaseLister . RepositoryReleaseLister
type RepositoryReleaseLister interface {
	ListReleases(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.RepositoryRelease, *github.Response, error)
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, *github.Response, error)
}

// GitHubSource serves checkpoints published as release assets: one
// release per version tag, one <name>-v<version>.pth asset per
// checkpoint.
type GitHubSource struct {
	config GitHubSourceConfig
	logger *log.Logger

	releases   RepositoryReleaseLister
	downloader *http.Client
}

func NewGitHubSource(config GitHubSourceConfig, logger *log.Logger) *GitHubSource {
	httpClient := http.DefaultClient
	if config.Token != "" {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token})
		httpClient = oauth2.NewClient(context.Background(), tokenSource)
	}
	client := github.NewClient(httpClient)
	return &GitHubSource{
		config:     config,
		logger:     logger,
		releases:   client.Repositories,
		downloader: httpClient,
	}
}

// SetReleaseLister overrides the releases API, for tests.
func (src *GitHubSource) SetReleaseLister(lister RepositoryReleaseLister) {
	src.releases = lister
}

func (src *GitHubSource) ID() string   { return src.config.SourceID() }
func (src *GitHubSource) Type() string { return SourceTypeGitHub }

func (src *GitHubSource) GetMatchedCheckpoint(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error) {
	release, response, err := src.releases.GetReleaseByTag(ctx, src.config.Org, src.config.Repository, "v"+spec.Version)
	if err != nil {
		if response != nil && response.StatusCode == http.StatusNotFound {
			return CheckpointLock{}, ErrNotFound
		}
		return CheckpointLock{}, err
	}
	if err := checkStatus(http.StatusOK, response.StatusCode); err != nil {
		return CheckpointLock{}, err
	}
	return src.lockFromRelease(release, spec.Name, spec.Version)
}

func (src *GitHubSource) FindCheckpointVersion(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error) {
	constraints, err := spec.VersionConstraints()
	if err != nil {
		return CheckpointLock{}, err
	}

	var (
		bestVersion *semver.Version
		bestLock    CheckpointLock
	)
	opts := &github.ListOptions{PerPage: 100}
	for {
		releases, response, err := src.releases.ListReleases(ctx, src.config.Org, src.config.Repository, opts)
		if err != nil {
			return CheckpointLock{}, err
		}
		for _, release := range releases {
			version, err := semver.NewVersion(release.GetTagName())
			if err != nil || !constraints.Check(version) {
				continue
			}
			if bestVersion != nil && !version.GreaterThan(bestVersion) {
				continue
			}
			lock, err := src.lockFromRelease(release, spec.Name, version.Original())
			if err != nil {
				continue
			}
			bestVersion = version
			bestLock = lock
		}
		if response.NextPage == 0 {
			break
		}
		opts.Page = response.NextPage
	}

	if bestVersion == nil {
		return CheckpointLock{}, ErrNotFound
	}
	return bestLock, nil
}

func (src *GitHubSource) lockFromRelease(release *github.RepositoryRelease, name, version string) (CheckpointLock, error) {
	expectedAssetName := fmt.Sprintf("%s-v%s.pth", name, version)
	for _, asset := range release.Assets {
		if asset.GetName() != expectedAssetName {
			continue
		}
		return CheckpointLock{
			Name:         name,
			Version:      version,
			RemoteSource: src.ID(),
			RemotePath:   asset.GetBrowserDownloadURL(),
		}, nil
	}
	return CheckpointLock{}, ErrNotFound
}

func (src *GitHubSource) DownloadCheckpoint(ctx context.Context, dir string, lock CheckpointLock) (LocalCheckpoint, error) {
	src.logger.Printf(logLineDownload, lock.Name, SourceTypeGitHub, src.ID())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, lock.RemotePath, nil)
	if err != nil {
		return LocalCheckpoint{}, err
	}
	response, err := src.downloader.Do(request)
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
