package reporting

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// helper functions for formatting floats and integers
func f(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
func i(i int64) string {
	return strconv.FormatInt(i, 10)
}
func pct(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 2, 64) + "%"
}

// renderTable writes one human readable table per section
func renderTable(w io.Writer, rep *Report, sections []Section) error {
	for _, section := range sections {
		if _, err := fmt.Fprintf(w, "\n%s\n", section.Title()); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		switch section {
		case SectionConnections:
			table.SetHeader([]string{"Source IP", "Port", "Hits", "Mean Intvl. (min)", "Intvl. Std. Dev. (min)", "Country", "Tor Exit"})
			for _, row := range rep.Connections {
				table.Append([]string{
					row.Src, strconv.Itoa(row.Port), i(row.Hits),
					f(row.MeanMinutes), f(row.StdDevMinutes),
					row.Country, strconv.FormatBool(row.ExitNode),
				})
			}
		case SectionHosts:
			table.SetHeader([]string{"Source IP", "Hits", "Country", "Latitude", "Longitude", "Tor Exit"})
			for _, row := range rep.Hosts {
				table.Append([]string{
					row.Src, i(row.Hits), row.Country,
					strconv.FormatFloat(row.Latitude, 'f', 4, 64),
					strconv.FormatFloat(row.Longitude, 'f', 4, 64),
					strconv.FormatBool(row.ExitNode),
				})
			}
		case SectionCountries:
			table.SetHeader([]string{"Country", "Hits"})
			for _, row := range rep.Countries {
				table.Append([]string{row.Country, i(row.Hits)})
			}
		case SectionPorts:
			appendPortTable(table, "Port", rep.Ports)
		case SectionSourcePorts:
			appendPortTable(table, "Source Port", rep.SourcePorts)
		case SectionTopPorts:
			appendPortTable(table, "Port", rep.TopPorts)
		}
		table.Render()
	}
	return nil
}

func appendPortTable(table *tablewriter.Table, name string, rows []PortRow) {
	table.SetHeader([]string{name, "Hits", "Share"})
	for _, row := range rows {
		table.Append([]string{strconv.Itoa(row.Port), i(row.Hits), pct(row.Share)})
	}
}
