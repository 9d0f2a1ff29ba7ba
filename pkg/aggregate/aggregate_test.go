package aggregate

import (
	"errors"
	"testing"

	pt "github.com/activecm/droplog/parser/parsetypes"
	"github.com/activecm/droplog/pkg/data"
	"github.com/activecm/droplog/pkg/geo"
	"github.com/activecm/droplog/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver map[string]string

func (f fakeResolver) Resolve(ip string) geo.Location {
	if country, ok := f[ip]; ok {
		return geo.Location{Country: country, Found: true}
	}
	return geo.UnknownLocation()
}

func record(ts int64, fields map[string]string) pt.DropRecord {
	return pt.DropRecord{Timestamp: ts, Host: "gw", Fields: fields, Flags: []string{"SYN"}}
}

func conn(ts int64, src, dpt, spt string) pt.DropRecord {
	return record(ts, map[string]string{pt.Src: src, pt.Dpt: dpt, pt.Spt: spt, pt.Proto: "TCP"})
}

func testEngine(strict bool) (*Engine, *test.Hook, *metrics.Metrics) {
	logger, hook := test.NewNullLogger()
	m := metrics.New()
	resolver := fakeResolver{"1.1.1.1": "Australia", "2.2.2.2": "France"}
	return NewEngine(resolver, strict, logger, m), hook, m
}

func TestAggregate(t *testing.T) {
	records := []pt.DropRecord{
		conn(100, "1.1.1.1", "23", "40000"),
		conn(110, "2.2.2.2", "22", "40001"),
		conn(160, "1.1.1.1", "23", "40000"),
		conn(170, "3.3.3.3", "80", "40002"),
		conn(220, "1.1.1.1", "23", "40003"),
		conn(230, "2.2.2.2", "23", "40001"),
	}

	engine, _, m := testEngine(false)
	tables, err := engine.Aggregate(records)
	require.NoError(t, err)

	assert.Equal(t, int64(6), tables.Records)
	assert.Equal(t, int64(0), tables.Skipped)
	assert.Equal(t, int64(len(records)), tables.ByPort.Total(), "hits by port should add up to the record count")

	assert.Equal(t, int64(3), tables.ByAddress.Get("1.1.1.1"))
	assert.Equal(t, int64(3), tables.ByConnection.Get(data.NewConnectionKey("1.1.1.1", 23)))
	assert.Equal(t, int64(4), tables.ByPort.Get(23))
	assert.Equal(t, int64(3), tables.ByCountry.Get("Australia"))
	assert.Equal(t, int64(1), tables.ByCountry.Get(geo.Unknown), "unresolved addresses are counted as Unknown")
	assert.Equal(t, int64(2), tables.BySourcePort.Get(40000))
	assert.Equal(t, []int64{100, 160, 220}, tables.Times[data.NewConnectionKey("1.1.1.1", 23)])
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GeoMisses))

	ranked := tables.ByAddress.MostCommon()
	assert.Equal(t, []data.Entry[string]{
		{Key: "1.1.1.1", Hits: 3},
		{Key: "2.2.2.2", Hits: 2},
		{Key: "3.3.3.3", Hits: 1},
	}, ranked)
}

func TestAggregateSkipsIncompleteRecords(t *testing.T) {
	records := []pt.DropRecord{
		conn(100, "1.1.1.1", "23", "40000"),
		record(101, map[string]string{pt.Src: "1.1.1.1", pt.Spt: "40000"}),
		record(102, map[string]string{pt.Dpt: "23", pt.Spt: "40000"}),
		conn(103, "1.1.1.1", "telnet", "40000"),
		record(104, map[string]string{pt.Src: "1.1.1.1", pt.Proto: "ICMP"}),
	}

	engine, hook, m := testEngine(false)
	tables, err := engine.Aggregate(records)
	require.NoError(t, err)

	assert.Equal(t, int64(1), tables.Records)
	assert.Equal(t, int64(4), tables.Skipped)
	assert.Equal(t, tables.Records, tables.ByPort.Total())
	assert.Len(t, hook.AllEntries(), 4, "every skipped record is logged")
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, float64(3), testutil.ToFloat64(m.RecordsSkipped.WithLabelValues(metrics.ReasonMissingField)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RecordsSkipped.WithLabelValues(metrics.ReasonInvalidPort)))
}

func TestAggregateStrict(t *testing.T) {
	testCases := []struct {
		rec      pt.DropRecord
		field    string
		sentinel error
		msg      string
	}{
		{record(1, map[string]string{pt.Dpt: "23", pt.Spt: "1"}), pt.Src, ErrMissingField, "missing SRC"},
		{record(1, map[string]string{pt.Src: "1.1.1.1", pt.Spt: "1"}), pt.Dpt, ErrMissingField, "missing DPT"},
		{record(1, map[string]string{pt.Src: "1.1.1.1", pt.Dpt: "23"}), pt.Spt, ErrMissingField, "missing SPT"},
		{conn(1, "1.1.1.1", "x", "1"), pt.Dpt, ErrInvalidPort, "non numeric DPT"},
	}

	for _, test := range testCases {
		engine, _, _ := testEngine(true)
		tables, err := engine.Aggregate([]pt.DropRecord{conn(0, "2.2.2.2", "22", "1"), test.rec})
		assert.Nil(t, tables, test.msg)

		var mfe *MissingFieldError
		require.True(t, errors.As(err, &mfe), test.msg)
		assert.Equal(t, test.field, mfe.Field, test.msg)
		assert.ErrorIs(t, err, test.sentinel, test.msg)
	}
}

func TestTopFraction(t *testing.T) {
	c := data.NewCounter[int]()
	c.Add(80, 50)
	c.Add(443, 40)
	c.Add(22, 1)

	assert.Equal(t, []data.Entry[int]{{Key: 80, Hits: 50}, {Key: 443, Hits: 40}, {Key: 22, Hits: 1}},
		TopFraction(c, TopPortsCutoff), "every port above 1% is listed")

	boundary := data.NewCounter[int]()
	boundary.Add(80, 99)
	boundary.Add(22, 1)
	assert.Len(t, TopFraction(boundary, TopPortsCutoff), 2, "a port at exactly 1% is kept")

	tail := data.NewCounter[int]()
	tail.Add(80, 150)
	tail.Add(22, 49)
	tail.Add(23, 1)
	tail.Add(25, 3)
	assert.Equal(t, []data.Entry[int]{{Key: 80, Hits: 150}, {Key: 22, Hits: 49}, {Key: 25, Hits: 3}},
		TopFraction(tail, TopPortsCutoff), "the long tail is cut at the first port below 1%")

	assert.Empty(t, TopFraction(data.NewCounter[int](), TopPortsCutoff))
}

func TestByPortNumber(t *testing.T) {
	c := data.NewCounter[int]()
	c.Inc(443)
	c.Inc(22)
	c.Inc(8080)
	c.Inc(22)

	assert.Equal(t, []data.Entry[int]{{Key: 22, Hits: 2}, {Key: 443, Hits: 1}, {Key: 8080, Hits: 1}}, ByPortNumber(c))
}
