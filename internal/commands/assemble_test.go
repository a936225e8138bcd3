package commands_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/internal/commands"
)

func TestAssemble(t *testing.T) {
	fs := testFilesystem(t)
	var output bytes.Buffer
	assemble := commands.NewAssemble(&output, discardLogger(), fs)

	err := assemble.Execute(nil)
	require.NoError(t, err)

	card := output.String()
	assert.Contains(t, card, "# Model Card")
	assert.Contains(t, card, "| image | 128 |")
	assert.Contains(t, card, "| cloud | 128 |")
	assert.Contains(t, card, "**256**")
	assert.Contains(t, card, "### `model.image_module.backbone`: ResNet18FPNExtractor")
	assert.Contains(t, card, "### `model.cloud_module.head`: MinkGeM")
	assert.Contains(t, card, "| resnet18-imagenet | 1.0.2 |")
}

func TestAssemble_reportFlag(t *testing.T) {
	fs := testFilesystem(t)
	var output bytes.Buffer
	assemble := commands.NewAssemble(&output, discardLogger(), fs)

	err := assemble.Execute([]string{"--report", "model-card.md"})
	require.NoError(t, err)
	assert.Empty(t, output.String())

	cardFP, err := fs.Open("model-card.md")
	require.NoError(t, err)
	defer func() { _ = cardFP.Close() }()
	card, err := io.ReadAll(cardFP)
	require.NoError(t, err)
	assert.Contains(t, string(card), "# Model Card")
}

func TestAssemble_badComponentParameter(t *testing.T) {
	fs := testFilesystem(t)
	badConfig := []byte(`_target_: GeM
p: -1
`)
	require.NoError(t, util.WriteFile(fs, "configs/bad.yml", badConfig, 0o644))

	assemble := commands.NewAssemble(io.Discard, discardLogger(), fs)
	err := assemble.Execute([]string{"--model-config", "configs/bad.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p must be positive")
}

func TestAssemble_checkpointNotPinned(t *testing.T) {
	fs := testFilesystem(t)
	require.NoError(t, util.WriteFile(fs, "Weightsfile.lock", []byte("checkpoints: []\n"), 0o644))

	assemble := commands.NewAssemble(io.Discard, discardLogger(), fs)
	err := assemble.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"resnet18-imagenet" required by the model is not pinned`)
}

func TestAssemble_missingConfig(t *testing.T) {
	fs := testFilesystem(t)

	assemble := commands.NewAssemble(io.Discard, discardLogger(), fs)
	err := assemble.Execute([]string{"--model-config", "configs/nope.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open model configuration")
}
