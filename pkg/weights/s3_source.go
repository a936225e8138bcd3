package weights

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the part of the S3 surface the source touches.
//
//counterfeiter:generate -o ./fakes/s3_api.go --fake-name S3API . S3API
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Source serves checkpoints out of a bucket. Object keys come from
// rendering the configured path template with a checkpoint's name and
// version.
type S3Source struct {
	config S3SourceConfig
	logger *log.Logger

	initOnce sync.Once
	initErr  error
	client   S3API
}

func NewS3Source(config S3SourceConfig, logger *log.Logger) *S3Source {
	return &S3Source{config: config, logger: logger}
}

// SetClient overrides the S3 client, for tests.
func (src *S3Source) SetClient(client S3API) {
	src.initOnce.Do(func() {})
	src.client = client
}

func (src *S3Source) ID() string   { return src.config.SourceID() }
func (src *S3Source) Type() string { return SourceTypeS3 }

func (src *S3Source) init(ctx context.Context) error {
	src.initOnce.Do(func() {
		var loadOptions []func(*awsconfig.LoadOptions) error
		if src.config.Region != "" {
			loadOptions = append(loadOptions, awsconfig.WithRegion(src.config.Region))
		}
		if src.config.AccessKeyID != "" {
			loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(src.config.AccessKeyID, src.config.SecretAccessKey, ""),
			))
		}

		cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
		if err != nil {
			src.initErr = err
			return
		}

		src.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			if src.config.Endpoint != "" { // for acceptance testing
				o.BaseEndpoint = aws.String(src.config.Endpoint)
				o.UsePathStyle = true
			}
		})
	})
	return src.initErr
}

// RemotePath renders the object key for a checkpoint name and version.
func (src *S3Source) RemotePath(name, version string) (string, error) {
	t, err := template.New("path_template").
		Option("missingkey=error").
		Parse(src.config.PathTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse path_template: %w", err)
	}

	var rendered bytes.Buffer
	err = t.Execute(&rendered, struct{ Name, Version string }{Name: name, Version: version})
	if err != nil {
		return "", fmt.Errorf("unable to render path_template: %w", err)
	}
	return rendered.String(), nil
}

func (src *S3Source) GetMatchedCheckpoint(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error) {
	if err := src.init(ctx); err != nil {
		return CheckpointLock{}, err
	}

	remotePath, err := src.RemotePath(spec.Name, spec.Version)
	if err != nil {
		return CheckpointLock{}, err
	}

	_, err = src.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(src.config.Bucket),
		Key:    aws.String(remotePath),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return CheckpointLock{}, ErrNotFound
		}
		return CheckpointLock{}, err
	}

	return CheckpointLock{
		Name:         spec.Name,
		Version:      spec.Version,
		RemoteSource: src.ID(),
		RemotePath:   remotePath,
	}, nil
}

func (src *S3Source) FindCheckpointVersion(ctx context.Context, spec CheckpointSpec) (CheckpointLock, error) {
	if err := src.init(ctx); err != nil {
		return CheckpointLock{}, err
	}

	constraints, err := spec.VersionConstraints()
	if err != nil {
		return CheckpointLock{}, err
	}

	prefix := pathTemplatePrefix(src.config.PathTemplate, spec.Name)
	result, err := src.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(src.config.Bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return CheckpointLock{}, err
	}

	var (
		bestVersion *semver.Version
		bestKey     string
	)
	for _, object := range result.Contents {
		key := aws.ToString(object.Key)
		version, err := versionFromFileName(spec.Name, filepath.Base(key))
		if err != nil {
			continue
		}
		if !constraints.Check(version) {
			continue
		}
		if bestVersion == nil || version.GreaterThan(bestVersion) {
			bestVersion = version
			bestKey = key
		}
	}
	if bestVersion == nil {
		return CheckpointLock{}, ErrNotFound
	}

	return CheckpointLock{
		Name:         spec.Name,
		Version:      bestVersion.Original(),
		RemoteSource: src.ID(),
		RemotePath:   bestKey,
	}, nil
}

func (src *S3Source) DownloadCheckpoint(ctx context.Context, dir string, lock CheckpointLock) (LocalCheckpoint, error) {
	if err := src.init(ctx); err != nil {
		return LocalCheckpoint{}, err
	}

	src.logger.Printf(logLineDownload, lock.Name, SourceTypeS3, src.ID())

	object, err := src.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(src.config.Bucket),
		Key:    aws.String(lock.RemotePath),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return LocalCheckpoint{}, ErrNotFound
		}
		return LocalCheckpoint{}, err
	}
	defer closeAndIgnoreError(object.Body)

	localPath := filepath.Join(dir, lock.FileName())
	file, err := os.Create(localPath)
	if err != nil {
		return LocalCheckpoint{}, err
	}
	defer closeAndIgnoreError(file)

	hash := sha1.New()
	if _, err := io.Copy(io.MultiWriter(file, hash), object.Body); err != nil {
		return LocalCheckpoint{}, fmt.Errorf("error writing checkpoint file: %w", err)
	}

	lock.SHA1 = hex.EncodeToString(hash.Sum(nil))
	return LocalCheckpoint{Lock: lock, LocalPath: localPath}, nil
}

// pathTemplatePrefix is the longest literal key prefix before the first
// template action, narrowed to the checkpoint name when the template
// starts with it.
func pathTemplatePrefix(pathTemplate, name string) string {
	prefix := pathTemplate
	if i := strings.Index(prefix, "{{"); i >= 0 {
		prefix = prefix[:i]
	}
	if prefix == "" {
		return name + "/"
	}
	return prefix
}

// versionFromFileName extracts the version out of the conventional
// <name>-v<version>.pth file name.
func versionFromFileName(name, fileName string) (*semver.Version, error) {
	base := strings.TrimSuffix(fileName, ".pth")
	if base == fileName {
		return nil, fmt.Errorf("file name %q does not follow %s-v<version>.pth", fileName, name)
	}
	version := strings.TrimPrefix(base, name+"-v")
	if version == base || version == "" {
		return nil, fmt.Errorf("file name %q does not follow %s-v<version>.pth", fileName, name)
	}
	return semver.NewVersion(version)
}

const logLineDownload = "downloading %s from %s source %s"

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
