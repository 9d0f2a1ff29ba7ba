package commands

import (
	"os"

	"github.com/activecm/droplog/reporting"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-source-ports",
		Usage:     "Print connections by source port",
		ArgsUsage: "[FILE...]",
		Flags:     reportFlags,
		Action:    showSourcePorts,
	}

	bootstrapCommands(command)
}

func showSourcePorts(c *cli.Context) error {
	return runReport(c, os.Stdout, reporting.SectionSourcePorts)
}
