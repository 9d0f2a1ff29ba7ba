package commands

import (
	"io"
	"os"
	"time"

	"github.com/activecm/droplog/parser"
	pt "github.com/activecm/droplog/parser/parsetypes"
	"github.com/activecm/droplog/pkg/aggregate"
	"github.com/activecm/droplog/reporting"
	"github.com/activecm/droplog/resources"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "report",
		Usage:     "Print every report section (the default when no command is given)",
		ArgsUsage: "[FILE...]",
		Flags:     reportFlags,
		Action:    DefaultAction,
	}

	bootstrapCommands(command)
}

// DefaultAction reads the logs named on the command line, or standard input,
// and prints the whole report
func DefaultAction(c *cli.Context) error {
	return runReport(c, os.Stdout, reporting.AllSections...)
}

// runReport loads the configuration, analyzes the input and renders the
// selected sections. Nothing is written to out if the analysis fails.
func runReport(c *cli.Context, out io.Writer, sections ...reporting.Section) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.NewExitError("Failed to load config: "+err.Error(), -1)
	}

	format, err := reporting.ParseFormat(conf.S.Output.Format)
	if err != nil {
		return cli.NewExitError(err.Error(), -1)
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

	if err := reporting.Render(out, rep, format, sections...); err != nil {
		return cli.NewExitError(err.Error(), -1)
	}

	finishRun(res)
	return nil
}

// analyze ingests the input paths and aggregates the drop records
func analyze(res *resources.Resources, paths []string) (*reporting.Report, error) {
	lineParser := parser.NewLineParser(res.Config.R.Parsing.Year, res.Config.R.Parsing.Location)
	ingestor := parser.NewIngestor(lineParser, res.Log, res.Metrics)
	filtering := res.Config.R.Filtering
	ingestor.SetFilter(parser.NewSourceFilter(filtering.AlwaysIncluded, filtering.NeverIncluded))

	records, stats, err := ingestor.IngestPaths(paths, res.Config.S.Parsing.Progress)
	if err != nil {
		return nil, err
	}
	return buildReport(res, records, stats)
}

// buildReport aggregates ingested records into a report
func buildReport(res *resources.Resources, records []pt.DropRecord, stats parser.IngestStats) (*reporting.Report, error) {
	res.Log.WithFields(log.Fields{
		"lines":          stats.Lines,
		"records":        stats.Records,
		"ignored":        stats.Ignored,
		"bad_timestamps": stats.BadTimestamps,
		"filtered":       stats.Filtered,
	}).Info("Finished reading logs")

	engine := aggregate.NewEngine(res.Geo, res.Config.S.Parsing.StrictFields, res.Log, res.Metrics)
	tables, err := engine.Aggregate(records)
	if err != nil {
		return nil, err
	}

	if tables.Skipped > 0 {
		res.Log.WithFields(log.Fields{
			"skipped": tables.Skipped,
			"counted": tables.Records,
		}).Warn("Some drop records were left out of the report")
	}

	return reporting.Build(reporting.Input{
		Tables:    tables,
		Ingest:    stats,
		Geo:       res.Geo,
		ExitNodes: res.ExitNodes,
		Metrics:   res.Metrics,
		Generated: time.Now(),
	}), nil
}

// finishRun records the end of a successful run
func finishRun(res *resources.Resources) {
	res.Metrics.LastRunSeconds.SetToCurrentTime()
	if err := res.WriteMetrics(); err != nil {
		res.Log.WithFields(log.Fields{
			"path":  res.Config.S.Metrics.TextfilePath,
			"error": err.Error(),
		}).Error("Could not write metrics")
	}
}
