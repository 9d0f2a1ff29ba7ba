package commands

import (
	"os"

	"github.com/activecm/droplog/reporting"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-connections",
		Usage:     "Print connections by source and destination port with their timing",
		ArgsUsage: "[FILE...]",
		Flags:     reportFlags,
		Action:    showConnections,
	}

	bootstrapCommands(command)
}

func showConnections(c *cli.Context) error {
	return runReport(c, os.Stdout, reporting.SectionConnections)
}
