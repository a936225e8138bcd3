package weights_test

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/pkg/weights"
	"github.com/SheLesTT/open-place-recognition/pkg/weights/fakes"
)

func testS3Source(t *testing.T) (*weights.S3Source, *fakes.S3API) {
	t.Helper()
	source := weights.NewS3Source(weights.S3SourceConfig{
		Bucket:       "checkpoint-bucket",
		Region:       "us-west-1",
		PathTemplate: "checkpoints/{{.Name}}-v{{.Version}}.pth",
	}, log.New(io.Discard, "", 0))
	client := new(fakes.S3API)
	source.SetClient(client)
	return source, client
}

func TestS3SourceRemotePath(t *testing.T) {
	source, _ := testS3Source(t)

	remotePath, err := source.RemotePath("resnet18-imagenet", "1.0.2")
	require.NoError(t, err)
	assert.Equal(t, "checkpoints/resnet18-imagenet-v1.0.2.pth", remotePath)
}

func TestS3SourceGetMatchedCheckpoint(t *testing.T) {
	source, client := testS3Source(t)
	client.HeadObjectReturns(&s3.HeadObjectOutput{}, nil)

	lock, err := source.GetMatchedCheckpoint(context.Background(), weights.CheckpointSpec{
		Name:    "resnet18-imagenet",
		Version: "1.0.2",
	})
	require.NoError(t, err)
	assert.Equal(t, weights.CheckpointLock{
		Name:         "resnet18-imagenet",
		Version:      "1.0.2",
		RemoteSource: "checkpoint-bucket",
		RemotePath:   "checkpoints/resnet18-imagenet-v1.0.2.pth",
	}, lock)

	require.Equal(t, 1, client.HeadObjectCallCount())
	_, input, _ := client.HeadObjectArgsForCall(0)
	assert.Equal(t, "checkpoint-bucket", aws.ToString(input.Bucket))
	assert.Equal(t, "checkpoints/resnet18-imagenet-v1.0.2.pth", aws.ToString(input.Key))
}

func TestS3SourceGetMatchedCheckpoint_notFound(t *testing.T) {
	source, client := testS3Source(t)
	client.HeadObjectReturns(nil, &s3types.NotFound{})

	_, err := source.GetMatchedCheckpoint(context.Background(), weights.CheckpointSpec{
		Name:    "resnet18-imagenet",
		Version: "9.9.9",
	})
	assert.True(t, weights.IsErrNotFound(err))
}

func TestS3SourceFindCheckpointVersion(t *testing.T) {
	source, client := testS3Source(t)
	client.ListObjectsV2Returns(&s3.ListObjectsV2Output{
		Contents: []s3types.Object{
			{Key: aws.String("checkpoints/resnet18-imagenet-v1.0.0.pth")},
			{Key: aws.String("checkpoints/resnet18-imagenet-v1.0.2.pth")},
			{Key: aws.String("checkpoints/resnet18-imagenet-v2.0.0.pth")},
			{Key: aws.String("checkpoints/notes.txt")},
		},
	}, nil)

	lock, err := source.FindCheckpointVersion(context.Background(), weights.CheckpointSpec{
		Name:    "resnet18-imagenet",
		Version: "~1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.0.2", lock.Version)
	assert.Equal(t, "checkpoints/resnet18-imagenet-v1.0.2.pth", lock.RemotePath)
	assert.Equal(t, "checkpoint-bucket", lock.RemoteSource)

	_, input, _ := client.ListObjectsV2ArgsForCall(0)
	assert.Equal(t, "checkpoints/", aws.ToString(input.Prefix))
}

func TestS3SourceFindCheckpointVersion_noMatch(t *testing.T) {
	source, client := testS3Source(t)
	client.ListObjectsV2Returns(&s3.ListObjectsV2Output{}, nil)

	_, err := source.FindCheckpointVersion(context.Background(), weights.CheckpointSpec{
		Name: "resnet18-imagenet",
	})
	assert.True(t, weights.IsErrNotFound(err))
}

func TestS3SourceDownloadCheckpoint(t *testing.T) {
	source, client := testS3Source(t)

	contents := "pretend this is a few hundred megabytes of tensors"
	client.GetObjectReturns(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(contents)),
	}, nil)

	dir := t.TempDir()
	local, err := source.DownloadCheckpoint(context.Background(), dir, weights.CheckpointLock{
		Name:       "resnet18-imagenet",
		Version:    "1.0.2",
		RemotePath: "checkpoints/resnet18-imagenet-v1.0.2.pth",
	})
	require.NoError(t, err)

	sum := sha1.Sum([]byte(contents))
	assert.Equal(t, hex.EncodeToString(sum[:]), local.Lock.SHA1)

	written, err := os.ReadFile(local.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, contents, string(written))

	_, input, _ := client.GetObjectArgsForCall(0)
	assert.Equal(t, "checkpoints/resnet18-imagenet-v1.0.2.pth", aws.ToString(input.Key))
}

func TestS3SourceDownloadCheckpoint_noSuchKey(t *testing.T) {
	source, client := testS3Source(t)
	client.GetObjectReturns(nil, &s3types.NoSuchKey{})

	_, err := source.DownloadCheckpoint(context.Background(), t.TempDir(), weights.CheckpointLock{
		Name:       "resnet18-imagenet",
		Version:    "1.0.2",
		RemotePath: "checkpoints/resnet18-imagenet-v1.0.2.pth",
	})
	assert.True(t, weights.IsErrNotFound(err))
}
