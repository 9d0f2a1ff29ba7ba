package reporting

import (
	"bufio"
	"fmt"
	"io"
)

// exitNodeMarker follows the country of connections from Tor exit nodes
const exitNodeMarker = " (TOR)"

// renderText writes the classic fixed width report
func renderText(w io.Writer, rep *Report, sections []Section) error {
	out := bufio.NewWriter(w)

	for _, section := range sections {
		fmt.Fprintf(out, "\n*** %s ***\n\n", section.Title())

		switch section {
		case SectionConnections:
			for _, row := range rep.Connections {
				extra := ""
				if row.ExitNode {
					extra = exitNodeMarker
				}
				fmt.Fprintf(out, "%15s -> %5d | %3d | %6.1f %6.1f | %s%s\n",
					row.Src, row.Port, row.Hits,
					row.MeanMinutes, row.StdDevMinutes,
					row.Country, extra)
			}
		case SectionHosts:
			for _, row := range rep.Hosts {
				fmt.Fprintf(out, "%15s -- %3d (%s)\n", row.Src, row.Hits, row.Country)
			}
		case SectionCountries:
			for _, row := range rep.Countries {
				fmt.Fprintf(out, "%-20s -- %-3d\n", row.Country, row.Hits)
			}
		case SectionPorts:
			writeTextPorts(out, rep.Ports)
		case SectionSourcePorts:
			writeTextPorts(out, rep.SourcePorts)
		case SectionTopPorts:
			writeTextPorts(out, rep.TopPorts)
		}
	}

	return out.Flush()
}

func writeTextPorts(out io.Writer, rows []PortRow) {
	for _, row := range rows {
		fmt.Fprintf(out, "%5d -- %3d\n", row.Port, row.Hits)
	}
}
