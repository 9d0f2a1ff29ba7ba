package resources

import (
	"errors"
	"io"
	"os"

	"github.com/activecm/droplog/config"
	"github.com/activecm/droplog/pkg/data"
	"github.com/activecm/droplog/pkg/exitnode"
	"github.com/activecm/droplog/pkg/geo"
	"github.com/activecm/droplog/pkg/metrics"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type (
	// Resources provides a data structure for passing system Resources
	Resources struct {
		Config    *config.Config
		Log       *log.Logger
		Geo       geo.Resolver
		ExitNodes data.StringSet
		Metrics   *metrics.Metrics
		RunID     string

		closers []io.Closer
	}
)

// InitResources opens the lookup data named in the configuration and
// returns a *Resources object holding everything a run needs. Missing
// lookup data only degrades the report and is logged as a warning.
func InitResources(conf *config.Config) (*Resources, error) {
	runID := uuid.New().String()

	// Fire up the logging system
	logger, closers, err := initLogger(&conf.S.Log, conf.R.LogLevel, runID)
	if err != nil {
		return nil, err
	}

	r := &Resources{
		Config:  conf,
		Log:     logger,
		Metrics: metrics.New(),
		RunID:   runID,
		closers: closers,
	}

	r.Geo = r.openGeo(conf.S.GeoIP.DatabasePath)
	r.ExitNodes = r.loadExitNodes(conf.S.ExitNodes.AddressesPath)
	r.Metrics.ExitNodesKnown.Set(float64(r.ExitNodes.Len()))

	logger.WithFields(log.Fields{
		"version":    conf.S.ExactVersion,
		"year":       conf.R.Parsing.Year,
		"time_zone":  conf.R.Parsing.Location.String(),
		"exit_nodes": r.ExitNodes.Len(),
	}).Info("Initialized droplog")

	return r, nil
}

func (r *Resources) openGeo(path string) geo.Resolver {
	if path == "" {
		return geo.NewUnknownResolver()
	}

	db, err := geo.Open(path)
	if err != nil {
		r.Log.WithFields(log.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("Could not open GeoIP database, countries will be reported as " + geo.Unknown)
		return geo.NewUnknownResolver()
	}

	r.closers = append(r.closers, db)
	return geo.NewCached(db)
}

func (r *Resources) loadExitNodes(path string) data.StringSet {
	if path == "" {
		return data.NewStringSet()
	}

	nodes, err := exitnode.LoadFile(path)
	if err != nil {
		entry := r.Log.WithFields(log.Fields{
			"path":  path,
			"error": err.Error(),
		})
		if errors.Is(err, os.ErrNotExist) {
			entry.Warn("Exit node list not found, no connections will be marked as Tor")
		} else {
			entry.Error("Could not read exit node list")
		}
		return data.NewStringSet()
	}
	return nodes
}

// WriteMetrics dumps the run metrics if a textfile path is configured
func (r *Resources) WriteMetrics() error {
	path := r.Config.S.Metrics.TextfilePath
	if path == "" {
		return nil
	}
	return r.Metrics.WriteTextfile(path)
}

// Close releases the GeoIP database and the log files
func (r *Resources) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	return first
}
