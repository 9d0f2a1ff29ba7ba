package commands

import (
	"fmt"
	"os"

	"github.com/activecm/droplog/reporting"
	"github.com/activecm/droplog/resources"
	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

func init() {
	command := cli.Command{
		Name:   "test-config",
		Usage:  "Check the configuration file for validity",
		Flags:  reportFlags,
		Action: testConfiguration,
	}

	bootstrapCommands(command)
}

// testConfiguration prints out the result of parsing the config file
func testConfiguration(c *cli.Context) error {
	// First, print out the config as it was parsed
	conf, err := loadConfig(c)
	if err != nil {
		return cli.NewExitError("Failed to load config: "+err.Error(), -1)
	}

	staticConfig, err := yaml.Marshal(conf.S)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\n%s\n", string(staticConfig))

	if _, err := reporting.ParseFormat(conf.S.Output.Format); err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	// Then test opening the lookup files
	res, err := resources.InitResources(conf)
	if err != nil {
		return cli.NewExitError("Failed to initialize: "+err.Error(), -1)
	}
	defer res.Close()

	fmt.Fprintf(os.Stdout, "Parsing year: %d (%s)\n", conf.R.Parsing.Year, conf.R.Parsing.Location)
	fmt.Fprintf(os.Stdout, "Exit nodes loaded: %d\n", res.ExitNodes.Len())
	return nil
}
