package commands

import (
	"fmt"

	"github.com/activecm/droplog/reporting"
	"github.com/activecm/droplog/resources"
	"github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "html-report",
		Usage:     "Write the report as a set of HTML pages and open it in a browser",
		ArgsUsage: "[FILE...]",
		Flags: append([]cli.Flag{
			cli.StringFlag{
				Name:  "output, o",
				Usage: "Write the pages to `DIRECTORY`",
				Value: "droplog-html-report",
			},
			cli.BoolFlag{
				Name:  "no-browser",
				Usage: "Do not open the report after writing it",
			},
		}, reportFlags...),
		Action: htmlReport,
	}

	bootstrapCommands(command)
}

func htmlReport(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.NewExitError("Failed to load config: "+err.Error(), -1)
	}

	res, err := resources.InitResources(conf)
	if err != nil {
		return cli.NewExitError("Failed to initialize: "+err.Error(), -1)
	}
	defer res.Close()

	rep, err := analyze(res, c.Args())
	if err != nil {
		res.Log.Error(err)
		return cli.NewExitError(err.Error(), -1)
	}

	index, err := reporting.PrintHTML(rep, c.String("output"))
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
	}
	fmt.Println("[-] Wrote outputs, check " + index)

	finishRun(res)

	if !c.Bool("no-browser") {
		if err := open.Run(index); err != nil {
			res.Log.WithField("error", err.Error()).Warn("Could not open the report in a browser")
		}
	}
	return nil
}
