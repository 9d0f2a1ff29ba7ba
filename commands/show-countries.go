package commands

import (
	"os"

	"github.com/activecm/droplog/reporting"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-countries",
		Usage:     "Print connections by source country",
		ArgsUsage: "[FILE...]",
		Flags:     reportFlags,
		Action:    showCountries,
	}

	bootstrapCommands(command)
}

func showCountries(c *cli.Context) error {
	return runReport(c, os.Stdout, reporting.SectionCountries)
}
