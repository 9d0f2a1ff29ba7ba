package reporting

import (
	"fmt"
	"io"
	"strings"
)

//Format selects a renderer
type Format string

// Supported output formats
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// Formats lists the supported output formats
var Formats = []Format{FormatText, FormatTable, FormatCSV, FormatJSON}

//ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q, expected one of text, table, csv, json", name)
}

//Render writes the given sections of a report. All sections are written
//when none are given.
func Render(w io.Writer, rep *Report, format Format, sections ...Section) error {
	if len(sections) == 0 {
		sections = AllSections
	}

	switch format {
	case FormatText:
		return renderText(w, rep, sections)
	case FormatTable:
		return renderTable(w, rep, sections)
	case FormatCSV:
		return renderCSV(w, rep, sections)
	case FormatJSON:
		return renderJSON(w, rep, sections)
	}
	return fmt.Errorf("unknown output format %q", format)
}
