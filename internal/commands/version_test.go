package commands_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/internal/commands"
)

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	version := commands.NewVersion(log.New(&out, "", 0), "1.2.3-build.4")

	require.NoError(t, version.Execute(nil))
	require.Equal(t, "opr version 1.2.3-build.4\n", out.String())
}
