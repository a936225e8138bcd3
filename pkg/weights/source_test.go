package weights_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/pkg/weights"
	"github.com/SheLesTT/open-place-recognition/pkg/weights/fakes"
)

func TestNewSourceList(t *testing.T) {
	wf := weights.Weightsfile{
		Sources: weights.SourceConfigList{
			weights.S3SourceConfig{Bucket: "checkpoint-bucket", PathTemplate: "{{.Name}}-v{{.Version}}.pth"},
			weights.GitHubSourceConfig{Org: "SheLesTT", Repository: "opr-checkpoints"},
			weights.HTTPSourceConfig{Identifier: "hub", BaseURL: "https://hub.example.com"},
		},
	}

	list, err := weights.NewSourceList(wf, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, weights.SourceTypeS3, list[0].Type())
	assert.Equal(t, weights.SourceTypeGitHub, list[1].Type())
	assert.Equal(t, weights.SourceTypeHTTP, list[2].Type())

	found, err := list.FindByID("hub")
	require.NoError(t, err)
	assert.Equal(t, "hub", found.ID())

	_, err = list.FindByID("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available sources")
}

func TestNewSource_invalidConfig(t *testing.T) {
	_, err := weights.NewSource(weights.S3SourceConfig{Identifier: "incomplete"}, log.New(io.Discard, "", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid s3 source "incomplete"`)
}

func TestSourceListSourceFor(t *testing.T) {
	t.Run("pinned source", func(t *testing.T) {
		pinned := new(fakes.CheckpointSource)
		pinned.IDReturns("pinned")
		other := new(fakes.CheckpointSource)
		other.IDReturns("other")
		list := weights.SourceList{other, pinned}

		source, err := list.SourceFor(context.Background(), weights.CheckpointSpec{Name: "x", Source: "pinned"})
		require.NoError(t, err)
		assert.Equal(t, "pinned", source.ID())
		assert.Zero(t, other.FindCheckpointVersionCallCount())
	})

	t.Run("first source holding the checkpoint", func(t *testing.T) {
		empty := new(fakes.CheckpointSource)
		empty.IDReturns("empty")
		empty.FindCheckpointVersionReturns(weights.CheckpointLock{}, weights.ErrNotFound)
		holder := new(fakes.CheckpointSource)
		holder.IDReturns("holder")
		holder.FindCheckpointVersionReturns(weights.CheckpointLock{Name: "x", Version: "1.0.0"}, nil)
		list := weights.SourceList{empty, holder}

		source, err := list.SourceFor(context.Background(), weights.CheckpointSpec{Name: "x"})
		require.NoError(t, err)
		assert.Equal(t, "holder", source.ID())
	})

	t.Run("no source holds the checkpoint", func(t *testing.T) {
		empty := new(fakes.CheckpointSource)
		empty.FindCheckpointVersionReturns(weights.CheckpointLock{}, weights.ErrNotFound)
		list := weights.SourceList{empty}

		_, err := list.SourceFor(context.Background(), weights.CheckpointSpec{Name: "x"})
		require.Error(t, err)
		assert.True(t, weights.IsErrNotFound(err))
	})
}
