package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pivotal-cf/jhanda"
)

type Help struct {
	output   io.Writer
	flags    string
	commands jhanda.CommandSet
	groups   map[string][]string
}

func NewHelp(output io.Writer, flags string, commands jhanda.CommandSet, groups map[string][]string) Help {
	return Help{
		output:   output,
		flags:    flags,
		commands: commands,
		groups:   groups,
	}
}

func (h Help) Execute(args []string) error {
	if len(args) > 0 {
		return h.printCommandUsage(args[0])
	}
	return h.printGlobalUsage()
}

func (h Help) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints helpful usage information.",
		ShortDescription: "prints this usage information",
	}
}

func (h Help) printGlobalUsage() error {
	var sb strings.Builder

	sb.WriteString("opr assembles place-recognition models from declarative configurations\n\n")
	sb.WriteString("Usage: opr [options] <command> [<args>]\n")
	h.writeGlobalFlags(&sb)

	groupNames := make([]string, 0, len(h.groups))
	for name := range h.groups {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	for _, groupName := range groupNames {
		commandNames := h.groups[groupName]
		if len(commandNames) == 0 {
			continue
		}
		sort.Strings(commandNames)

		width := 0
		for _, name := range commandNames {
			if len(name) > width {
				width = len(name)
			}
		}

		fmt.Fprintf(&sb, "\n%s:\n", groupName)
		for _, name := range commandNames {
			fmt.Fprintf(&sb, "  %-*s  %s\n", width, name, h.commands[name].Usage().ShortDescription)
		}
	}

	_, err := fmt.Fprintln(h.output, sb.String())
	return err
}

func (h Help) printCommandUsage(command string) error {
	usage, err := h.commands.Usage(command)
	if err != nil {
		return err
	}

	var flagList string
	if usage.Flags != nil {
		flagList, err = jhanda.PrintUsage(usage.Flags)
		if err != nil {
			return err
		}
		flagList = strings.TrimSpace(flagList)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "\nopr %s\n\n", command)
	sb.WriteString(usage.Description)
	sb.WriteString("\n\n")

	if flagList == "" {
		fmt.Fprintf(&sb, "Usage: opr [options] %s\n", command)
		h.writeGlobalFlags(&sb)
	} else {
		fmt.Fprintf(&sb, "Usage: opr [options] %s [<args>]\n", command)
		h.writeGlobalFlags(&sb)
		sb.WriteString("\nFlags\n")
		for _, flag := range strings.Split(flagList, "\n") {
			fmt.Fprintf(&sb, "  %s\n", flag)
		}
	}

	_, err = fmt.Fprintln(h.output, sb.String())
	return err
}

func (h Help) writeGlobalFlags(sb *strings.Builder) {
	for _, flag := range strings.Split(h.flags, "\n") {
		fmt.Fprintf(sb, "  %s\n", flag)
	}
}
