package commands_test

import (
	"io"
	"log"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

const testModelConfig = `_target_: ComposedModel

image_module:
  _target_: ImageModule
  backbone:
    _target_: ResNet18FPNExtractor
    lateral_dim: 128
    fh_num_bottom_up: 4
    fh_num_top_down: 0
    pretrained: true
  head:
    _target_: GeM
    p: 3
    eps: 1.0e-6

cloud_module:
  _target_: CloudModule
  backbone:
    _target_: MinkResNetFPNExtractor
    out_channels: 128
    num_top_down: 1
    conv0_kernel_size: 5
    block: ECABasicBlock
    layers: [1, 1, 1]
    planes: [32, 64, 64]
  head:
    _target_: MinkGeM
    p: 3
    eps: 1.0e-6

fusion_module:
  _target_: Concat
`

const testWeightsfile = `---
sources:
  - type: http
    id: hub
    base_url: https://hub.example.com/checkpoints
checkpoints:
  - name: resnet18-imagenet
    version: "~1.0"
    source: hub
`

const testWeightsfileLock = `---
checkpoints:
  - name: resnet18-imagenet
    version: 1.0.2
    sha1: deadbeefdeadbeefdeadbeefdeadbeefdeadbeef
    remote_source: hub
    remote_path: https://hub.example.com/checkpoints/resnet18-imagenet/resnet18-imagenet-v1.0.2.pth
`

func testFilesystem(t *testing.T) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "configs/place_recognition_multimodal.yml", []byte(testModelConfig), 0o644))
	require.NoError(t, util.WriteFile(fs, "Weightsfile", []byte(testWeightsfile), 0o644))
	require.NoError(t, util.WriteFile(fs, "Weightsfile.lock", []byte(testWeightsfileLock), 0o644))
	return fs
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
