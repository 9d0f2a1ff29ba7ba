package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	pt "github.com/activecm/droplog/parser/parsetypes"
	"github.com/activecm/droplog/pkg/metrics"
	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb"
)

type (
	//Ingestor reads whole log streams into memory as DropRecords
	Ingestor struct {
		parser  *LineParser
		filter  *SourceFilter
		log     *log.Logger
		metrics *metrics.Metrics
	}

	//IngestStats counts what happened to the lines read by an Ingestor.
	//BadTimestamps and TooLong lines are included in Ignored, Filtered
	//records are included in Records.
	IngestStats struct {
		Lines         int64
		Records       int64
		Ignored       int64
		BadTimestamps int64
		TooLong       int64
		Filtered      int64
	}
)

//NewIngestor creates an Ingestor. The metrics argument may be nil.
func NewIngestor(p *LineParser, logger *log.Logger, m *metrics.Metrics) *Ingestor {
	return &Ingestor{parser: p, log: logger, metrics: m}
}

//SetFilter drops the records matched by filter from later reads
func (i *Ingestor) SetFilter(filter *SourceFilter) {
	i.filter = filter
}

//Ingest reads every line of every reader in order and returns the drop
//records sorted by timestamp. Records sharing a timestamp keep their
//input order. Lines which are not drop entries are counted and skipped.
func (i *Ingestor) Ingest(readers ...io.Reader) ([]pt.DropRecord, IngestStats, error) {
	var records []pt.DropRecord
	var stats IngestStats

	for _, r := range readers {
		var err error
		records, err = i.scan(r, records, &stats)
		if err != nil {
			return nil, stats, err
		}
	}

	sortByTime(records)
	return records, stats, nil
}

//IngestPaths opens each path (StdinPath selects standard input) and ingests
//them in order. When progress is set a bar is shown for every regular file.
func (i *Ingestor) IngestPaths(paths []string, progress bool) ([]pt.DropRecord, IngestStats, error) {
	if len(paths) == 0 {
		paths = []string{StdinPath}
	}
	i.warnOnSize(paths)

	var p *mpb.Progress
	if progress {
		p = newProgress()
	}

	var records []pt.DropRecord
	var stats IngestStats

	for _, path := range paths {
		reader, size, closer, err := openInput(path)
		if err != nil {
			if p != nil {
				p.Wait()
			}
			return nil, stats, fmt.Errorf("could not open %s: %w", path, err)
		}

		var tracked *progressReader
		if p != nil && size > 0 && path != StdinPath {
			tracked = &progressReader{Reader: reader, bar: addFileBar(p, path, size)}
			reader = tracked
		}

		records, err = i.scan(reader, records, &stats)
		if tracked != nil {
			tracked.finish(size)
		}
		closeErr := closer()
		if err == nil && closeErr != nil {
			err = closeErr
		}
		if err != nil {
			if p != nil {
				p.Wait()
			}
			return nil, stats, fmt.Errorf("could not read %s: %w", path, err)
		}

		i.log.WithFields(log.Fields{
			"path":    path,
			"lines":   stats.Lines,
			"records": stats.Records,
		}).Debug("Finished reading input")
	}

	if p != nil {
		p.Wait()
	}

	sortByTime(records)
	return records, stats, nil
}

func (i *Ingestor) scan(r io.Reader, records []pt.DropRecord, stats *IngestStats) ([]pt.DropRecord, error) {
	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		stats.Lines++
		if i.metrics != nil {
			i.metrics.LinesRead.Inc()
		}

		if scanner.TooLong() {
			stats.Ignored++
			stats.TooLong++
			i.log.WithFields(log.Fields{
				"line_number": stats.Lines,
				"max_bytes":   maxLineBytes,
			}).Warn("Ignoring line longer than the line limit")
			if i.metrics != nil {
				i.metrics.LinesIgnored.WithLabelValues(metrics.ReasonTooLong).Inc()
			}
			continue
		}

		rec, err := i.parser.parse(line)
		if err != nil {
			stats.Ignored++
			reason := metrics.ReasonNoMatch
			if errors.Is(err, errBadTimestamp) {
				stats.BadTimestamps++
				reason = metrics.ReasonBadTimestamp
				i.log.WithFields(log.Fields{
					"line_number": stats.Lines,
					"error":       err.Error(),
				}).Debug("Ignoring drop line with unreadable timestamp")
			}
			if i.metrics != nil {
				i.metrics.LinesIgnored.WithLabelValues(reason).Inc()
			}
			continue
		}

		stats.Records++
		if i.metrics != nil {
			i.metrics.RecordsParsed.Inc()
		}

		if i.filter.Ignore(rec) {
			stats.Filtered++
			if i.metrics != nil {
				i.metrics.RecordsSkipped.WithLabelValues(metrics.ReasonFiltered).Inc()
			}
			continue
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

//warnOnSize logs a warning when the inputs together are larger than the
//installed memory. Every record is held until the report is printed.
func (i *Ingestor) warnOnSize(paths []string) {
	total := memory.TotalMemory()
	if total == 0 {
		return
	}

	var size uint64
	for _, path := range paths {
		if path == StdinPath {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			size += uint64(info.Size())
		}
	}

	if size > total {
		i.log.WithFields(log.Fields{
			"input_bytes":  size,
			"memory_bytes": total,
		}).Warn("Input is larger than system memory, analysis may run out of memory")
	}
}

//sortByTime orders records by timestamp keeping input order for ties
func sortByTime(records []pt.DropRecord) {
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Timestamp < records[b].Timestamp
	})
}
