package main

import (
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/SheLesTT/open-place-recognition/internal/commands"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

var version = "unknown"

func main() {
	errLogger := log.New(os.Stderr, "", 0)
	outLogger := log.New(os.Stdout, "", 0)

	fs := osfs.New("")

	var global struct {
		Help    bool `short:"h" long:"help"    description:"prints this usage information"  default:"false"`
		Version bool `short:"v" long:"version" description:"prints the opr release version" default:"false"`
	}

	args, err := jhanda.Parse(&global, os.Args[1:])
	if err != nil {
		errLogger.Fatal(err)
	}

	globalFlagsUsage, err := jhanda.PrintUsage(global)
	if err != nil {
		errLogger.Fatal(err)
	}

	var command string
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if global.Version {
		command = "version"
	}

	if global.Help {
		command = "help"
	}

	if command == "" {
		command = "help"
	}

	checkpointSourceProvider := func(wf weights.Weightsfile) (weights.SourceList, error) {
		return weights.NewSourceList(wf, outLogger)
	}

	commandSet := jhanda.CommandSet{}
	commandSet["version"] = commands.NewVersion(outLogger, version)
	commandSet["assemble"] = commands.NewAssemble(os.Stdout, errLogger, fs)
	commandSet["validate"] = commands.NewValidate(outLogger, fs)
	commandSet["fetch"] = commands.NewFetch(outLogger, fs, checkpointSourceProvider)
	commandSet["update-weights"] = commands.NewUpdateWeights(outLogger, fs, checkpointSourceProvider)
	commandSet["inspect-checkpoint"] = commands.NewInspectCheckpoint(outLogger, fs)

	groups := map[string][]string{
		"model configuration":    {"assemble", "validate"},
		"pretrained checkpoints": {"fetch", "update-weights", "inspect-checkpoint"},
		"basic":                  {"help", "version"},
	}
	commandSet["help"] = commands.NewHelp(os.Stdout, globalFlagsUsage, commandSet, groups)

	err = commandSet.Execute(command, args)
	if err != nil {
		errLogger.Fatal(err)
	}
}
