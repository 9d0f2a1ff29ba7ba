package metrics

import "github.com/prometheus/client_golang/prometheus"

// Values of the "reason" label
const (
	// LinesIgnored reasons
	ReasonNoMatch      = "no_match"
	ReasonBadTimestamp = "bad_timestamp"
	ReasonTooLong      = "too_long"

	// RecordsSkipped reasons
	ReasonMissingField = "missing_field"
	ReasonInvalidPort  = "invalid_port"
	ReasonFiltered     = "filtered"
)

//Metrics holds the counters of one droplog run. They are registered on a
//private registry since a run is a batch job, not a long lived exporter.
type Metrics struct {
	Registry *prometheus.Registry

	LinesRead      prometheus.Counter
	RecordsParsed  prometheus.Counter
	LinesIgnored   *prometheus.CounterVec
	RecordsSkipped *prometheus.CounterVec
	GeoMisses      prometheus.Counter
	ExitNodeHits   prometheus.Counter
	ExitNodesKnown prometheus.Gauge
	LastRunSeconds prometheus.Gauge
}

//New creates and registers the run counters
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		LinesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "droplog_lines_read_total",
			Help: "Log lines read from the input",
		}),
		RecordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "droplog_records_parsed_total",
			Help: "Drop records parsed from the input",
		}),
		LinesIgnored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "droplog_lines_ignored_total",
			Help: "Lines which were not readable drop entries",
		}, []string{"reason"}),
		RecordsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "droplog_records_skipped_total",
			Help: "Drop records left out of the aggregation",
		}, []string{"reason"}),
		GeoMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "droplog_geo_misses_total",
			Help: "Source addresses with no geolocation data",
		}),
		ExitNodeHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "droplog_exit_node_connections_total",
			Help: "Reported connection keys (source, destination port) originating from known exit nodes",
		}),
		ExitNodesKnown: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "droplog_exit_nodes_known",
			Help: "Exit node addresses loaded for the run",
		}),
		LastRunSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "droplog_last_run_timestamp_seconds",
			Help: "Unix time the last report was produced",
		}),
	}

	m.Registry.MustRegister(
		m.LinesRead,
		m.RecordsParsed,
		m.LinesIgnored,
		m.RecordsSkipped,
		m.GeoMisses,
		m.ExitNodeHits,
		m.ExitNodesKnown,
		m.LastRunSeconds,
	)
	return m
}

//WriteTextfile dumps the counters in the node_exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
