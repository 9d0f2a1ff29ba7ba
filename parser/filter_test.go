package parser

import (
	"net"
	"strings"
	"testing"

	pt "github.com/activecm/droplog/parser/parsetypes"
	"github.com/activecm/droplog/pkg/metrics"
	"github.com/activecm/droplog/util"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSubnets(t *testing.T, nets ...string) []*net.IPNet {
	subnets, err := util.ParseSubnets(nets)
	require.NoError(t, err)
	return subnets
}

func srcRecord(src string) pt.DropRecord {
	return pt.DropRecord{Fields: map[string]string{pt.Src: src}}
}

func TestSourceFilterIgnore(t *testing.T) {
	filter := NewSourceFilter(
		mustSubnets(t, "10.1.1.1"),
		mustSubnets(t, "10.0.0.0/8", "2001:db8::/32"),
	)

	testCases := []struct {
		rec    pt.DropRecord
		ignore bool
		msg    string
	}{
		{srcRecord("10.2.3.4"), true, "never included network"},
		{srcRecord("2001:db8::5"), true, "never included IPv6 network"},
		{srcRecord("10.1.1.1"), false, "always included wins over never included"},
		{srcRecord("8.8.8.8"), false, "unlisted address"},
		{srcRecord("not-an-ip"), false, "unreadable address is kept"},
		{pt.DropRecord{Fields: map[string]string{}}, false, "missing SRC is kept"},
	}

	for _, test := range testCases {
		assert.Equal(t, test.ignore, filter.Ignore(test.rec), test.msg)
	}
}

func TestEmptySourceFilterKeepsEverything(t *testing.T) {
	var nilFilter *SourceFilter
	assert.False(t, nilFilter.Ignore(srcRecord("10.0.0.1")))
	assert.False(t, NewSourceFilter(mustSubnets(t, "10.0.0.0/8"), nil).Ignore(srcRecord("10.0.0.1")))
}

func TestIngestFiltersSources(t *testing.T) {
	input := strings.Join([]string{
		dropLine("Jan  1 00:00:00", "10.0.0.5", 22),
		dropLine("Jan  1 00:00:01", "1.1.1.1", 22),
		dropLine("Jan  1 00:00:02", "10.0.0.6", 22),
	}, "\n")

	ing, m := testIngestor()
	ing.SetFilter(NewSourceFilter(nil, mustSubnets(t, "10.0.0.0/8")))

	records, stats, err := ing.Ingest(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1.1.1.1", records[0].Fields[pt.Src])
	assert.Equal(t, IngestStats{Lines: 3, Records: 3, Filtered: 2}, stats)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.RecordsSkipped.WithLabelValues(metrics.ReasonFiltered)))
}
