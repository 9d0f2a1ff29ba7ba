package commands

import (
	"os"

	"github.com/activecm/droplog/reporting"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-top-ports",
		Usage:     "Print the destination ports making up at least 1% of all hits",
		ArgsUsage: "[FILE...]",
		Flags:     reportFlags,
		Action:    showTopPorts,
	}

	bootstrapCommands(command)
}

func showTopPorts(c *cli.Context) error {
	return runReport(c, os.Stdout, reporting.SectionTopPorts)
}
