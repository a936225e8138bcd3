package commands_test

import (
	"bytes"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/pivotal-cf/jhanda"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/internal/commands"
)

func helpCommandSet() (jhanda.CommandSet, map[string][]string) {
	fs := memfs.New()
	commandSet := jhanda.CommandSet{
		"assemble": commands.NewAssemble(new(bytes.Buffer), discardLogger(), fs),
		"validate": commands.NewValidate(discardLogger(), fs),
	}
	groups := map[string][]string{
		"model configuration": {"assemble", "validate"},
	}
	return commandSet, groups
}

func TestHelp_global(t *testing.T) {
	var out bytes.Buffer
	commandSet, groups := helpCommandSet()

	help := commands.NewHelp(&out, "--help  prints this usage information", commandSet, groups)
	require.NoError(t, help.Execute(nil))

	require.Contains(t, out.String(), "opr assembles place-recognition models from declarative configurations")
	require.Contains(t, out.String(), "Usage: opr [options] <command> [<args>]")
	require.Contains(t, out.String(), "model configuration:")
	require.Contains(t, out.String(), "assemble")
	require.Contains(t, out.String(), "validate the model configuration and Weightsfiles")
}

func TestHelp_command(t *testing.T) {
	var out bytes.Buffer
	commandSet, groups := helpCommandSet()

	help := commands.NewHelp(&out, "--help  prints this usage information", commandSet, groups)
	require.NoError(t, help.Execute([]string{"assemble"}))

	require.Contains(t, out.String(), "opr assemble")
	require.Contains(t, out.String(), "Usage: opr [options] assemble [<args>]")
	require.Contains(t, out.String(), "--model-config")
	require.Contains(t, out.String(), "--report")
}

func TestHelp_unknownCommand(t *testing.T) {
	var out bytes.Buffer
	commandSet, groups := helpCommandSet()

	help := commands.NewHelp(&out, "", commandSet, groups)
	require.Error(t, help.Execute([]string{"bake"}))
}
