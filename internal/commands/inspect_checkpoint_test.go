package commands_test

import (
	"archive/zip"
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/util"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/internal/commands"
)

func checkpointServer(t *testing.T, path string) *httptest.Server {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"archive/data.pkl", "archive/data/0"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte("payload"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	router := httprouter.New()
	handle := func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		http.ServeContent(w, req, path, time.Now(), bytes.NewReader(buf.Bytes()))
	}
	router.GET(path, handle)
	router.HEAD(path, handle)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestInspectCheckpoint_url(t *testing.T) {
	fs := testFilesystem(t)
	server := checkpointServer(t, "/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth")

	var out bytes.Buffer
	inspect := commands.NewInspectCheckpoint(log.New(&out, "", 0), fs)
	inspect.Client = server.Client()

	checkpointURL := server.URL + "/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth"
	require.NoError(t, inspect.Execute([]string{checkpointURL}))

	require.Contains(t, out.String(), checkpointURL)
	require.Contains(t, out.String(), "archive/data.pkl")
	require.Contains(t, out.String(), "archive/data/0")
}

func TestInspectCheckpoint_name(t *testing.T) {
	fs := testFilesystem(t)
	server := checkpointServer(t, "/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth")

	lock := `---
checkpoints:
  - name: resnet18-imagenet
    version: 1.0.2
    sha1: deadbeefdeadbeefdeadbeefdeadbeefdeadbeef
    remote_source: hub
    remote_path: ` + server.URL + `/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth
`
	require.NoError(t, util.WriteFile(fs, "Weightsfile.lock", []byte(lock), 0o644))

	var out bytes.Buffer
	inspect := commands.NewInspectCheckpoint(log.New(&out, "", 0), fs)
	inspect.Client = server.Client()

	require.NoError(t, inspect.Execute([]string{"--name", "resnet18-imagenet"}))
	require.Contains(t, out.String(), "archive/data.pkl")
}

func TestInspectCheckpoint_notHTTP(t *testing.T) {
	fs := testFilesystem(t)

	lock := `---
checkpoints:
  - name: resnet18-imagenet
    version: 1.0.2
    sha1: deadbeefdeadbeefdeadbeefdeadbeefdeadbeef
    remote_source: bucket
    remote_path: checkpoints/resnet18-imagenet-v1.0.2.pth
`
	require.NoError(t, util.WriteFile(fs, "Weightsfile.lock", []byte(lock), 0o644))

	inspect := commands.NewInspectCheckpoint(discardLogger(), fs)

	err := inspect.Execute([]string{"--name", "resnet18-imagenet"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not an HTTP location")
}

func TestInspectCheckpoint_badArguments(t *testing.T) {
	fs := testFilesystem(t)
	inspect := commands.NewInspectCheckpoint(discardLogger(), fs)

	err := inspect.Execute([]string{"--name", "resnet18-imagenet", "https://example.com/checkpoint.pth"})
	require.EqualError(t, err, "pass either a checkpoint URL or --name, not both")

	err = inspect.Execute(nil)
	require.EqualError(t, err, "missing checkpoint: pass a URL or --name")
}
