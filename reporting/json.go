package reporting

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// renderJSON writes the summary and the selected sections as one document
func renderJSON(w io.Writer, rep *Report, sections []Section) error {
	doc := map[string]interface{}{
		"summary": rep.Summary,
	}
	for _, section := range sections {
		switch section {
		case SectionConnections:
			doc["connections"] = rep.Connections
		case SectionHosts:
			doc["hosts"] = rep.Hosts
		case SectionCountries:
			doc["countries"] = rep.Countries
		case SectionPorts:
			doc["ports"] = rep.Ports
		case SectionSourcePorts:
			doc["source_ports"] = rep.SourcePorts
		case SectionTopPorts:
			doc["top_ports"] = rep.TopPorts
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
