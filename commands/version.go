package commands

import (
	"fmt"

	"github.com/activecm/droplog/config"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:   "version",
		Usage:  "Show droplog version",
		Action: showVersion,
	}

	bootstrapCommands(command)
}

func showVersion(c *cli.Context) error {
	fmt.Printf("%s version %s\n", c.App.Name, config.ExactVersion)
	return nil
}
