package parser

import (
	"sort"
	"strings"
	"testing"
	"time"

	pt "github.com/activecm/droplog/parser/parsetypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDropLine = "Dec  5 16:44:12 PAROUTER kern.warn kernel: DROP IN=vlan1 OUT= " +
	"MAC=00:11:22:33:44:55:66:77:88:99:aa:bb:08:00 SRC=1.2.3.4 DST=5.6.7.8 LEN=44 TOS=0x00 " +
	"PREC=0x00 TTL=48 ID=40229 PROTO=TCP SPT=44249 DPT=23 WINDOW=14600 RES=0x00 SYN URGP=0"

func testParser() *LineParser {
	return NewLineParser(2020, time.UTC)
}

func TestParseSampleLine(t *testing.T) {
	rec, ok := testParser().ParseLine(sampleDropLine)
	require.True(t, ok, "sample line should be recognized as a drop entry")

	expected := time.Date(2020, time.December, 5, 16, 44, 12, 0, time.UTC).Unix()
	assert.Equal(t, expected, rec.Timestamp, "timestamp should be placed in the configured year")
	assert.Equal(t, "PAROUTER", rec.Host)
	assert.Equal(t, "1.2.3.4", rec.Fields[pt.Src])
	assert.Equal(t, "5.6.7.8", rec.Fields[pt.Dst])
	assert.Equal(t, "23", rec.Fields[pt.Dpt])
	assert.Equal(t, "44249", rec.Fields[pt.Spt])
	assert.Equal(t, "vlan1", rec.Fields[pt.In])
	assert.True(t, rec.HasFlag("SYN"), "SYN should be a flag")

	out, present := rec.Field(pt.Out)
	assert.True(t, present, "OUT= should be a field with an empty value")
	assert.Equal(t, "", out)
	assert.False(t, rec.HasFlag("OUT="), "OUT= must not be a flag")

	port, present, err := rec.Port(pt.Dpt)
	assert.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 23, port)
}

func TestParseLineRejects(t *testing.T) {
	testCases := []struct {
		line string
		msg  string
	}{
		{"", "empty line is not a drop entry"},
		{"Dec  5 16:44:12 PAROUTER kern.info dhcpd: DHCPACK on 10.0.0.2", "lines without DROP are ignored"},
		{"Dec  5 16:44:12 PAROUTER kernel DROP SRC=1.2.3.4", "header without a colon is ignored"},
		{"5 Dec 16:44:12 PAROUTER kern.warn kernel: DROP SRC=1.2.3.4", "day first header is ignored"},
		{"Foo  5 16:44:12 PAROUTER kern.warn kernel: DROP SRC=1.2.3.4", "unknown month is ignored"},
		{"Dec 45 16:44:12 PAROUTER kern.warn kernel: DROP SRC=1.2.3.4", "impossible day is ignored"},
		{"Feb 29 10:00:00 PAROUTER kern.warn kernel: DROP SRC=1.2.3.4", "leap day in a non leap year is ignored"},
	}

	p := NewLineParser(2021, time.UTC)
	for _, test := range testCases {
		_, ok := p.ParseLine(test.line)
		assert.False(t, ok, test.msg)
	}
}

func TestParseLeapDay(t *testing.T) {
	rec, ok := testParser().ParseLine("Feb 29 10:00:00 PAROUTER kern.warn kernel: DROP SRC=1.2.3.4")
	require.True(t, ok, "2020 is a leap year")
	assert.Equal(t, time.Date(2020, time.February, 29, 10, 0, 0, 0, time.UTC).Unix(), rec.Timestamp)
}

func TestBadTimestampIsDistinguished(t *testing.T) {
	_, err := testParser().parse("Foo  5 16:44:12 PAROUTER kern.warn kernel: DROP SRC=1.2.3.4")
	assert.ErrorIs(t, err, errBadTimestamp)

	_, err = testParser().parse("not a syslog line")
	assert.ErrorIs(t, err, errNoMatch)
}

func TestSplitParams(t *testing.T) {
	testCases := []struct {
		params string
		fields map[string]string
		flags  []string
		msg    string
	}{
		{"A=1 B=2", map[string]string{"A": "1", "B": "2"}, nil, "plain fields"},
		{"A=1 A=2", map[string]string{"A": "2"}, nil, "later duplicates overwrite earlier ones"},
		{"URL=a=b=c", map[string]string{"URL": "a=b=c"}, nil, "values are split on the first '=' only"},
		{"SYN DF", map[string]string{}, []string{"SYN", "DF"}, "bare tokens are flags in order"},
		{"=x A=1", map[string]string{"A": "1"}, []string{"=x"}, "tokens with an empty key are flags"},
		{"OUT= IN=eth0", map[string]string{"OUT": "", "IN": "eth0"}, nil, "empty values are valid"},
		{"A=1  SYN ", map[string]string{"A": "1"}, []string{"", "SYN"}, "empty tokens between spaces are flags"},
		{"", map[string]string{}, []string{""}, "empty parameter string"},
	}

	for _, test := range testCases {
		fields, flags := splitParams(test.params)
		assert.Equal(t, test.fields, fields, test.msg)
		assert.Equal(t, test.flags, flags, test.msg)
	}
}

func TestTokensRoundTrip(t *testing.T) {
	lines := []string{
		sampleDropLine,
		"Jan 10 01:02:03 gw kern.warn kernel: DROP IN=eth0 OUT= SRC=10.0.0.1 DPT=80 SPT=1234 ACK PSH",
		"Jan 10 01:02:03 gw kern.warn kernel: DROP SYN SYN X=1",
	}

	// runs of spaces survive a rejoin of the tokens
	rec, ok := testParser().ParseLine("Jan 10 01:02:03 gw kern.warn kernel: DROP SYN  DF")
	require.True(t, ok)
	assert.Equal(t, []string{"SYN", "", "DF"}, rec.Flags)
	assert.Equal(t, "SYN  DF", strings.Join(rec.Tokens(), " "))

	p := testParser()
	for _, line := range lines {
		rec, ok := p.ParseLine(line)
		require.True(t, ok, line)

		original := strings.Fields(line[strings.Index(line, ": DROP ")+len(": DROP "):])
		rebuilt := rec.Tokens()

		sort.Strings(original)
		sort.Strings(rebuilt)
		assert.Equal(t, original, rebuilt, "tokens should rebuild the parameter set of %q", line)

		// flag order is preserved
		fields, flags := splitParams(strings.Join(rec.Tokens(), " "))
		assert.Equal(t, rec.Fields, fields)
		assert.Equal(t, rec.Flags, flags)
	}
}
