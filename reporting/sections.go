package reporting

import (
	"fmt"
	"strings"
)

//Section names one part of the report
type Section string

// Report sections in the order they are printed
const (
	SectionConnections Section = "connections"
	SectionHosts       Section = "hosts"
	SectionCountries   Section = "countries"
	SectionPorts       Section = "ports"
	SectionSourcePorts Section = "source-ports"
	SectionTopPorts    Section = "top-ports"
)

// AllSections lists every section in print order
var AllSections = []Section{
	SectionConnections,
	SectionHosts,
	SectionCountries,
	SectionPorts,
	SectionSourcePorts,
	SectionTopPorts,
}

var sectionTitles = map[Section]string{
	SectionConnections: "Connections by host and port",
	SectionHosts:       "Connections by host",
	SectionCountries:   "Connections by country",
	SectionPorts:       "Connection by port",
	SectionSourcePorts: "Connection by source port",
	SectionTopPorts:    "Top popular ports",
}

//Title returns the heading printed above the section
func (s Section) Title() string {
	return sectionTitles[s]
}

//ParseSection validates a section name
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := sectionTitles[s]; !ok {
		return "", fmt.Errorf("unknown report section %q", name)
	}
	return s, nil
}
