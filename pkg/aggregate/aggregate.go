package aggregate

import (
	"errors"

	pt "github.com/activecm/droplog/parser/parsetypes"
	"github.com/activecm/droplog/pkg/data"
	"github.com/activecm/droplog/pkg/geo"
	"github.com/activecm/droplog/pkg/metrics"
	log "github.com/sirupsen/logrus"
)

type (
	//Tables holds the frequency counts of one run. Counters only grow.
	Tables struct {
		ByAddress    *data.Counter[string]
		ByConnection *data.Counter[data.ConnectionKey]
		ByPort       *data.Counter[int]
		ByCountry    *data.Counter[string]
		BySourcePort *data.Counter[int]

		// Times holds the timestamps of each connection in the order they were added
		Times map[data.ConnectionKey][]int64

		// Records is the number of records counted
		Records int64
		// Skipped is the number of records left out for missing or invalid fields
		Skipped int64
	}

	//Engine fills Tables from drop records
	Engine struct {
		geo     geo.Resolver
		strict  bool
		log     *log.Logger
		metrics *metrics.Metrics
	}
)

//NewTables returns empty Tables
func NewTables() *Tables {
	return &Tables{
		ByAddress:    data.NewCounter[string](),
		ByConnection: data.NewCounter[data.ConnectionKey](),
		ByPort:       data.NewCounter[int](),
		ByCountry:    data.NewCounter[string](),
		BySourcePort: data.NewCounter[int](),
		Times:        make(map[data.ConnectionKey][]int64),
	}
}

//NewEngine creates an Engine. In strict mode the first record with a
//missing or invalid field aborts the aggregation, otherwise the record is
//skipped and logged. The metrics argument may be nil.
func NewEngine(resolver geo.Resolver, strict bool, logger *log.Logger, m *metrics.Metrics) *Engine {
	if resolver == nil {
		resolver = geo.NewUnknownResolver()
	}
	return &Engine{geo: resolver, strict: strict, log: logger, metrics: m}
}

//Aggregate counts time ordered records. The error is always a
//*MissingFieldError and is only returned in strict mode.
func (e *Engine) Aggregate(records []pt.DropRecord) (*Tables, error) {
	tables := NewTables()
	for _, rec := range records {
		if err := e.add(tables, rec); err != nil {
			if e.strict {
				return nil, err
			}
			tables.Skipped++
			e.skipped(rec, err)
		}
	}
	return tables, nil
}

func (e *Engine) add(t *Tables, rec pt.DropRecord) error {
	src, ok := rec.Field(pt.Src)
	if !ok {
		return &MissingFieldError{Field: pt.Src, Timestamp: rec.Timestamp, Err: ErrMissingField}
	}
	dpt, err := requirePort(rec, pt.Dpt)
	if err != nil {
		return err
	}
	spt, err := requirePort(rec, pt.Spt)
	if err != nil {
		return err
	}

	loc := e.geo.Resolve(src)
	if !loc.Found && e.metrics != nil {
		e.metrics.GeoMisses.Inc()
	}

	key := data.NewConnectionKey(src, dpt)
	t.ByAddress.Inc(src)
	t.ByConnection.Inc(key)
	t.ByPort.Inc(dpt)
	t.ByCountry.Inc(loc.Country)
	t.BySourcePort.Inc(spt)
	t.Times[key] = append(t.Times[key], rec.Timestamp)
	t.Records++
	return nil
}

func requirePort(rec pt.DropRecord, name string) (int, error) {
	port, ok, err := rec.Port(name)
	if !ok {
		return 0, &MissingFieldError{Field: name, Timestamp: rec.Timestamp, Err: ErrMissingField}
	}
	if err != nil {
		return 0, &MissingFieldError{Field: name, Value: rec.Fields[name], Timestamp: rec.Timestamp, Err: ErrInvalidPort}
	}
	return port, nil
}

func (e *Engine) skipped(rec pt.DropRecord, err error) {
	reason := metrics.ReasonMissingField
	if errors.Is(err, ErrInvalidPort) {
		reason = metrics.ReasonInvalidPort
	}
	if e.metrics != nil {
		e.metrics.RecordsSkipped.WithLabelValues(reason).Inc()
	}
	e.log.WithFields(log.Fields{
		"timestamp": rec.Timestamp,
		"host":      rec.Host,
		"reason":    reason,
		"error":     err.Error(),
	}).Warn("Skipping drop record")
}
