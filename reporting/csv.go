package reporting

import (
	"encoding/csv"
	"io"
	"strconv"
)

// renderCSV writes every section as a header row followed by its records.
// The first column names the section so the output can be split with grep.
// Sections differ in width, so readers must allow a variable field count.
func renderCSV(w io.Writer, rep *Report, sections []Section) error {
	csvWriter := csv.NewWriter(w)

	for _, section := range sections {
		name := string(section)
		switch section {
		case SectionConnections:
			csvWriter.Write([]string{"Section", "Source IP", "Port", "Hits", "Mean Interval Minutes", "Interval Std Dev Minutes", "Country", "Latitude", "Longitude", "Tor Exit"})
			for _, row := range rep.Connections {
				csvWriter.Write([]string{
					name, row.Src, strconv.Itoa(row.Port), i(row.Hits),
					strconv.FormatFloat(row.MeanMinutes, 'g', 6, 64),
					strconv.FormatFloat(row.StdDevMinutes, 'g', 6, 64),
					row.Country,
					strconv.FormatFloat(row.Latitude, 'g', -1, 64),
					strconv.FormatFloat(row.Longitude, 'g', -1, 64),
					strconv.FormatBool(row.ExitNode),
				})
			}
		case SectionHosts:
			csvWriter.Write([]string{"Section", "Source IP", "Hits", "Country", "Latitude", "Longitude", "Tor Exit"})
			for _, row := range rep.Hosts {
				csvWriter.Write([]string{
					name, row.Src, i(row.Hits), row.Country,
					strconv.FormatFloat(row.Latitude, 'g', -1, 64),
					strconv.FormatFloat(row.Longitude, 'g', -1, 64),
					strconv.FormatBool(row.ExitNode),
				})
			}
		case SectionCountries:
			csvWriter.Write([]string{"Section", "Country", "Hits"})
			for _, row := range rep.Countries {
				csvWriter.Write([]string{name, row.Country, i(row.Hits)})
			}
		case SectionPorts:
			writeCSVPorts(csvWriter, name, rep.Ports)
		case SectionSourcePorts:
			writeCSVPorts(csvWriter, name, rep.SourcePorts)
		case SectionTopPorts:
			writeCSVPorts(csvWriter, name, rep.TopPorts)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func writeCSVPorts(csvWriter *csv.Writer, name string, rows []PortRow) {
	csvWriter.Write([]string{"Section", "Port", "Hits", "Share"})
	for _, row := range rows {
		csvWriter.Write([]string{name, strconv.Itoa(row.Port), i(row.Hits), strconv.FormatFloat(row.Share, 'g', 6, 64)})
	}
}
