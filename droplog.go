package main

import (
	"os"

	"github.com/activecm/droplog/commands"
	"github.com/activecm/droplog/config"
	"github.com/urfave/cli"
)

// Entry point of droplog
func main() {
	app := cli.NewApp()
	app.Name = "droplog"
	app.Usage = "Summarize the packets dropped by a netfilter firewall."
	app.ArgsUsage = "[FILE...]"

	// Change the version string with updates so that a quick help command will
	// let the testers know what version of droplog they're on
	app.Version = config.Version

	// With no command the whole report is printed, reading stdin when no
	// files are given
	app.Flags = commands.GlobalFlags()
	app.Action = commands.DefaultAction

	// Define commands used with this application
	app.Commands = commands.Commands()
	app.EnableBashCompletion = true

	app.Run(os.Args)
}
