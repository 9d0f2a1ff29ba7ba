package commands

import (
	"github.com/activecm/droplog/config"
	"github.com/urfave/cli"
)

var allCommands []cli.Command

// bootstrapCommands registers commands with the front end
func bootstrapCommands(commands ...cli.Command) {
	allCommands = append(allCommands, commands...)
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	return allCommands
}

var (
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "Use a given `CONFIG_FILE` when running this command",
		Value: "",
	}

	formatFlag = cli.StringFlag{
		Name:  "format, f",
		Usage: "Print the report as `FORMAT`: text, table, csv or json",
		Value: "",
	}

	geoipFlag = cli.StringFlag{
		Name:  "geoip-db",
		Usage: "Resolve source countries with the MaxMind `DATABASE`",
		Value: "",
	}

	exitAddressesFlag = cli.StringFlag{
		Name:  "exit-addresses",
		Usage: "Mark sources listed in the Tor exit-addresses `FILE`",
		Value: "",
	}

	yearFlag = cli.IntFlag{
		Name:  "year",
		Usage: "Place the log timestamps in `YEAR` instead of the current year",
	}

	strictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "Abort when a drop record lacks SRC, DPT or SPT instead of skipping it",
	}

	progressFlag = cli.BoolFlag{
		Name:  "progress",
		Usage: "Show a progress bar on stderr while reading files",
	}
)

// reportFlags are accepted by every command which reads logs
var reportFlags = []cli.Flag{
	configFlag,
	formatFlag,
	geoipFlag,
	exitAddressesFlag,
	yearFlag,
	strictFlag,
	progressFlag,
}

// GlobalFlags are the flags of the default report command
func GlobalFlags() []cli.Flag {
	return reportFlags
}

// flagString reads a flag given either to the command or to the application
func flagString(c *cli.Context, name string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return c.GlobalString(name)
}

func flagInt(c *cli.Context, name string) int {
	if c.IsSet(name) {
		return c.Int(name)
	}
	return c.GlobalInt(name)
}

func flagBool(c *cli.Context, name string) bool {
	return c.Bool(name) || c.GlobalBool(name)
}

// loadConfig reads the configuration file and applies the command line
// overrides on top of it
func loadConfig(c *cli.Context) (*config.Config, error) {
	conf, err := config.GetConfig(flagString(c, "config"))
	if err != nil {
		return nil, err
	}

	if path := flagString(c, "geoip-db"); path != "" {
		conf.S.GeoIP.DatabasePath = path
	}
	if path := flagString(c, "exit-addresses"); path != "" {
		conf.S.ExitNodes.AddressesPath = path
	}
	if format := flagString(c, "format"); format != "" {
		conf.S.Output.Format = format
	}
	if year := flagInt(c, "year"); year != 0 {
		if err := conf.SetYear(year); err != nil {
			return nil, err
		}
	}
	if flagBool(c, "strict") {
		conf.S.Parsing.StrictFields = true
	}
	if flagBool(c, "progress") {
		conf.S.Parsing.Progress = true
	}
	return conf, nil
}
