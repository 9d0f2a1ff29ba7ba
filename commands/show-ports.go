package commands

import (
	"os"

	"github.com/activecm/droplog/reporting"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-ports",
		Usage:     "Print connections by destination port",
		ArgsUsage: "[FILE...]",
		Flags:     reportFlags,
		Action:    showPorts,
	}

	bootstrapCommands(command)
}

func showPorts(c *cli.Context) error {
	return runReport(c, os.Stdout, reporting.SectionPorts)
}
