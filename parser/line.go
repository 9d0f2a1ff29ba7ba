package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	pt "github.com/activecm/droplog/parser/parsetypes"
)

// dropLineRegex matches the syslog header written by the kernel followed by
// a DROP prefix, e.g.
//
//	Dec  5 16:44:12 PAROUTER kern.warn kernel: DROP IN=vlan1 OUT= SRC=...
//
// Groups: (1) timestamp without a year (2) hostname (3) LOG parameters
var dropLineRegex = regexp.MustCompile(`^(\w+ +\d+ \d+:\d+:\d+) ([\w.]*) .*?: DROP (.*)$`)

// syslogTimeLayout is applied after runs of spaces have been collapsed
const syslogTimeLayout = "Jan 2 15:04:05"

var (
	//errNoMatch marks a line which is not a drop entry. This is the common
	//case for a syslog stream and is never reported as an error.
	errNoMatch = errors.New("not a drop line")

	//errBadTimestamp marks a drop line whose header date could not be read
	errBadTimestamp = errors.New("unreadable syslog timestamp")
)

//LineParser turns kernel log lines into DropRecords. Syslog timestamps do not
//carry a year, so the year the entries belong to must be supplied. Logs which
//cross a year boundary will have their earlier entries misdated.
type LineParser struct {
	Year     int
	Location *time.Location
}

//NewLineParser returns a parser placing every timestamp in the given year
//and location. A nil location is treated as time.Local.
func NewLineParser(year int, loc *time.Location) *LineParser {
	if loc == nil {
		loc = time.Local
	}
	return &LineParser{Year: year, Location: loc}
}

//ParseLine converts one log line into a DropRecord. The boolean is false for
//any line which is not a readable drop entry.
func (p *LineParser) ParseLine(line string) (pt.DropRecord, bool) {
	rec, err := p.parse(line)
	return rec, err == nil
}

func (p *LineParser) parse(line string) (pt.DropRecord, error) {
	m := dropLineRegex.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return pt.DropRecord{}, errNoMatch
	}

	ts, err := p.parseTimestamp(m[1])
	if err != nil {
		return pt.DropRecord{}, err
	}

	fields, flags := splitParams(m[3])
	return pt.DropRecord{
		Timestamp: ts.Unix(),
		Host:      m[2],
		Fields:    fields,
		Flags:     flags,
	}, nil
}

func (p *LineParser) parseTimestamp(stamp string) (time.Time, error) {
	stamp = strings.Join(strings.Fields(stamp), " ")
	t, err := time.ParseInLocation(syslogTimeLayout, stamp, p.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", errBadTimestamp, stamp, err)
	}

	dated := time.Date(p.Year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, p.Location)
	// Feb 29 parses fine on its own but does not exist in every year
	if dated.Day() != t.Day() {
		return time.Time{}, fmt.Errorf("%w: %q does not exist in %d", errBadTimestamp, stamp, p.Year)
	}
	return dated, nil
}

//splitParams splits the LOG parameters on single spaces. Each token is split
//once on its first '='; tokens with no '=' or with an empty key are flags.
//Runs of spaces leave empty flags so the tokens rejoin to the same string.
func splitParams(params string) (map[string]string, []string) {
	fields := make(map[string]string)
	var flags []string

	for _, token := range strings.Split(strings.TrimSpace(params), " ") {
		key, value, found := strings.Cut(token, "=")
		if !found || key == "" {
			flags = append(flags, token)
			continue
		}
		fields[key] = value
	}
	return fields, flags
}
