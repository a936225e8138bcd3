package weights_test

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

const checkpointHubContents = "http hub checkpoint bytes"

func checkpointHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	router.GET("/checkpoints/resnet18-imagenet/versions.yaml", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		_, _ = w.Write([]byte("- 1.0.0\n- 1.0.2\n- 2.0.0\n"))
	})
	router.HEAD("/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
	router.GET("/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		_, _ = w.Write([]byte(checkpointHubContents))
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func testHTTPSource(t *testing.T) *weights.HTTPSource {
	t.Helper()
	server := checkpointHubServer(t)
	source := weights.NewHTTPSource(weights.HTTPSourceConfig{
		Identifier: "hub",
		BaseURL:    server.URL + "/checkpoints",
	}, log.New(io.Discard, "", 0))
	source.Client = server.Client()
	return source
}

func TestHTTPSourceFindCheckpointVersion(t *testing.T) {
	source := testHTTPSource(t)

	lock, err := source.FindCheckpointVersion(context.Background(), weights.CheckpointSpec{
		Name:    "resnet18-imagenet",
		Version: "~1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "resnet18-imagenet", lock.Name)
	assert.Equal(t, "1.0.2", lock.Version)
	assert.Equal(t, "hub", lock.RemoteSource)
	assert.Contains(t, lock.RemotePath, "/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth")
}

func TestHTTPSourceFindCheckpointVersion_unknownCheckpoint(t *testing.T) {
	source := testHTTPSource(t)

	_, err := source.FindCheckpointVersion(context.Background(), weights.CheckpointSpec{
		Name: "minkloc3d-baseline",
	})
	assert.True(t, weights.IsErrNotFound(err))
}

func TestHTTPSourceGetMatchedCheckpoint(t *testing.T) {
	source := testHTTPSource(t)

	lock, err := source.GetMatchedCheckpoint(context.Background(), weights.CheckpointSpec{
		Name:    "resnet18-imagenet",
		Version: "1.0.2",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.0.2", lock.Version)

	_, err = source.GetMatchedCheckpoint(context.Background(), weights.CheckpointSpec{
		Name:    "resnet18-imagenet",
		Version: "9.9.9",
	})
	assert.True(t, weights.IsErrNotFound(err))
}

func TestHTTPSourceDownloadCheckpoint(t *testing.T) {
	source := testHTTPSource(t)

	lock, err := source.GetMatchedCheckpoint(context.Background(), weights.CheckpointSpec{
		Name:    "resnet18-imagenet",
		Version: "1.0.2",
	})
	require.NoError(t, err)

	local, err := source.DownloadCheckpoint(context.Background(), t.TempDir(), lock)
	require.NoError(t, err)

	sum := sha1.Sum([]byte(checkpointHubContents))
	assert.Equal(t, hex.EncodeToString(sum[:]), local.Lock.SHA1)

	written, err := os.ReadFile(local.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, checkpointHubContents, string(written))
}
