package commands

import (
	"os"

	"github.com/activecm/droplog/reporting"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-hosts",
		Usage:     "Print connections by source address",
		ArgsUsage: "[FILE...]",
		Flags:     reportFlags,
		Action:    showHosts,
	}

	bootstrapCommands(command)
}

func showHosts(c *cli.Context) error {
	return runReport(c, os.Stdout, reporting.SectionHosts)
}
