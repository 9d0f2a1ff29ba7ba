package reporting

import (
	"time"

	"github.com/activecm/droplog/parser"
	"github.com/activecm/droplog/pkg/aggregate"
	"github.com/activecm/droplog/pkg/beacon"
	"github.com/activecm/droplog/pkg/data"
	"github.com/activecm/droplog/pkg/geo"
	"github.com/activecm/droplog/pkg/metrics"
)

type (
	//Report is the presentation view of one run. Every renderer works
	//from a Report so all formats agree on ordering.
	Report struct {
		Summary     Summary         `json:"summary"`
		Connections []ConnectionRow `json:"connections"`
		Hosts       []HostRow       `json:"hosts"`
		Countries   []CountryRow    `json:"countries"`
		Ports       []PortRow       `json:"ports"`
		SourcePorts []PortRow       `json:"source_ports"`
		TopPorts    []PortRow       `json:"top_ports"`
	}

	//Summary describes the input of the run
	Summary struct {
		Generated     time.Time `json:"generated"`
		Lines         int64     `json:"lines"`
		Ignored       int64     `json:"ignored"`
		BadTimestamps int64     `json:"bad_timestamps"`
		Records       int64     `json:"records"`
		Filtered      int64     `json:"filtered"`
		Skipped       int64     `json:"skipped"`
		Aggregated    int64     `json:"aggregated"`
	}

	//ConnectionRow is one source address and destination port pair.
	//Intervals are given in minutes.
	ConnectionRow struct {
		Src           string  `json:"src"`
		Port          int     `json:"port"`
		Hits          int64   `json:"hits"`
		Intervals     int     `json:"intervals"`
		MeanMinutes   float64 `json:"mean_minutes"`
		StdDevMinutes float64 `json:"stddev_minutes"`
		Country       string  `json:"country"`
		Latitude      float64 `json:"latitude,omitempty"`
		Longitude     float64 `json:"longitude,omitempty"`
		ExitNode      bool    `json:"exit_node"`
	}

	//HostRow is one source address
	HostRow struct {
		Src       string  `json:"src"`
		Hits      int64   `json:"hits"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude,omitempty"`
		Longitude float64 `json:"longitude,omitempty"`
		ExitNode  bool    `json:"exit_node"`
	}

	//CountryRow is one source country
	CountryRow struct {
		Country string `json:"country"`
		Hits    int64  `json:"hits"`
	}

	//PortRow is one port along with its share of all hits
	PortRow struct {
		Port  int     `json:"port"`
		Hits  int64   `json:"hits"`
		Share float64 `json:"share"`
	}

	//Input gathers what Build needs
	Input struct {
		Tables    *aggregate.Tables
		Ingest    parser.IngestStats
		Geo       geo.Resolver
		ExitNodes data.StringSet
		// Metrics may be nil
		Metrics   *metrics.Metrics
		Generated time.Time
	}
)

//Build ranks the aggregation tables into a Report
func Build(in Input) *Report {
	resolver := in.Geo
	if resolver == nil {
		resolver = geo.NewUnknownResolver()
	}
	exitNodes := in.ExitNodes
	if exitNodes == nil {
		exitNodes = data.NewStringSet()
	}
	t := in.Tables

	rep := &Report{
		Summary: Summary{
			Generated:     in.Generated,
			Lines:         in.Ingest.Lines,
			Ignored:       in.Ingest.Ignored,
			BadTimestamps: in.Ingest.BadTimestamps,
			Records:       in.Ingest.Records,
			Filtered:      in.Ingest.Filtered,
			Skipped:       t.Skipped,
			Aggregated:    t.Records,
		},
	}

	timing := beacon.NewTimingAnalyzer(t.Times)
	connections := t.ByConnection.MostCommon()
	rep.Connections = make([]ConnectionRow, 0, len(connections))
	for _, entry := range connections {
		loc := resolver.Resolve(entry.Key.Src)
		summary := timing.Summary(entry.Key)
		row := ConnectionRow{
			Src:           entry.Key.Src,
			Port:          entry.Key.Dpt,
			Hits:          entry.Hits,
			Intervals:     summary.Intervals,
			MeanMinutes:   summary.Mean / 60.0,
			StdDevMinutes: summary.StdDev / 60.0,
			Country:       loc.Country,
			Latitude:      loc.Latitude,
			Longitude:     loc.Longitude,
			ExitNode:      exitNodes.Contains(entry.Key.Src),
		}
		// counted once per connection key, not per record
		if row.ExitNode && in.Metrics != nil {
			in.Metrics.ExitNodeHits.Inc()
		}
		rep.Connections = append(rep.Connections, row)
	}

	hosts := t.ByAddress.MostCommon()
	rep.Hosts = make([]HostRow, 0, len(hosts))
	for _, entry := range hosts {
		loc := resolver.Resolve(entry.Key)
		rep.Hosts = append(rep.Hosts, HostRow{
			Src:       entry.Key,
			Hits:      entry.Hits,
			Country:   loc.Country,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			ExitNode:  exitNodes.Contains(entry.Key),
		})
	}

	countries := t.ByCountry.MostCommon()
	rep.Countries = make([]CountryRow, 0, len(countries))
	for _, entry := range countries {
		rep.Countries = append(rep.Countries, CountryRow{Country: entry.Key, Hits: entry.Hits})
	}

	rep.Ports = portRows(aggregate.ByPortNumber(t.ByPort), t.ByPort.Total())
	rep.SourcePorts = portRows(aggregate.ByPortNumber(t.BySourcePort), t.BySourcePort.Total())
	rep.TopPorts = portRows(aggregate.TopFraction(t.ByPort, aggregate.TopPortsCutoff), t.ByPort.Total())

	return rep
}

func portRows(entries []data.Entry[int], total int64) []PortRow {
	rows := make([]PortRow, 0, len(entries))
	for _, entry := range entries {
		row := PortRow{Port: entry.Key, Hits: entry.Hits}
		if total > 0 {
			row.Share = float64(entry.Hits) / float64(total)
		}
		rows = append(rows, row)
	}
	return rows
}
