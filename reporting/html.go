package reporting

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"time"

	htmlTempl "github.com/activecm/droplog/reporting/templates"
	"github.com/activecm/droplog/util"
)

// row templates, one per page
const (
	summaryRowTempl    = "<tr><td>{{.Name}}</td><td>{{.Value}}</td></tr>\n"
	connectionRowTempl = "<tr><td>{{.Src}}</td><td>{{.Port}}</td><td>{{.Hits}}</td><td>{{printf \"%.1f\" .MeanMinutes}}</td><td>{{printf \"%.1f\" .StdDevMinutes}}</td><td>{{.Country}}{{if .ExitNode}} <span class=\"tor\">(TOR)</span>{{end}}</td></tr>\n"
	hostRowTempl       = "<tr><td>{{.Src}}</td><td>{{.Hits}}</td><td>{{.Country}}{{if .ExitNode}} <span class=\"tor\">(TOR)</span>{{end}}</td><td>{{printf \"%.4f\" .Latitude}}</td><td>{{printf \"%.4f\" .Longitude}}</td></tr>\n"
	countryRowTempl    = "<tr><td>{{.Country}}</td><td>{{.Hits}}</td></tr>\n"
	portRowTempl       = "<tr><td>{{.Port}}</td><td>{{.Hits}}</td><td>{{printf \"%.2f\" (percent .Share)}}%</td></tr>\n"
)

var rowFuncs = template.FuncMap{
	"percent": func(share float64) float64 { return share * 100 },
}

type summaryRow struct {
	Name  string
	Value string
}

//PrintHTML writes the report as a set of linked HTML pages. The pages are
//written to outFolder, or to outFolder with a counter appended if it
//already exists. The path of the index page is returned.
func PrintHTML(rep *Report, outFolder string) (string, error) {
	folder := outFolder
	for counter := 1; util.Exists(folder); counter++ {
		folder = outFolder + strconv.Itoa(counter)
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(folder, "style.css"), htmlTempl.CSStempl, 0644); err != nil {
		return "", err
	}

	generated := rep.Summary.Generated.Format(time.RFC1123)

	pages := []struct {
		file  string
		title string
		page  string
		row   string
		rows  interface{}
	}{
		{"index.html", "Summary", htmlTempl.HomeTempl, summaryRowTempl, summaryRows(rep.Summary)},
		{"connections.html", SectionConnections.Title(), htmlTempl.ConnectionsTempl, connectionRowTempl, rep.Connections},
		{"hosts.html", SectionHosts.Title(), htmlTempl.HostsTempl, hostRowTempl, rep.Hosts},
		{"countries.html", SectionCountries.Title(), htmlTempl.CountriesTempl, countryRowTempl, rep.Countries},
		{"ports.html", SectionPorts.Title(), htmlTempl.PortsTempl, portRowTempl, rep.Ports},
		{"source-ports.html", SectionSourcePorts.Title(), htmlTempl.PortsTempl, portRowTempl, rep.SourcePorts},
		{"top-ports.html", SectionTopPorts.Title(), htmlTempl.PortsTempl, portRowTempl, rep.TopPorts},
	}

	for _, p := range pages {
		rows, err := getRowWriter(p.row, p.rows)
		if err != nil {
			return "", err
		}
		info := htmlTempl.ReportingInfo{Title: p.title, Generated: generated, Writer: template.HTML(rows)}
		if err := writePage(filepath.Join(folder, p.file), p.page, info); err != nil {
			return "", err
		}
	}

	return filepath.Join(folder, "index.html"), nil
}

func summaryRows(s Summary) []summaryRow {
	return []summaryRow{
		{"Lines read", i(s.Lines)},
		{"Lines ignored", i(s.Ignored)},
		{"Unreadable timestamps", i(s.BadTimestamps)},
		{"Drop records", i(s.Records)},
		{"Records filtered", i(s.Filtered)},
		{"Records skipped", i(s.Skipped)},
		{"Records counted", i(s.Aggregated)},
	}
}

// getRowWriter executes the row template for every element of rows
func getRowWriter(tmpl string, rows interface{}) (string, error) {
	out, err := template.New("row").Funcs(rowFuncs).Parse("{{range .}}" + tmpl + "{{end}}")
	if err != nil {
		return "", err
	}

	w := new(bytes.Buffer)
	if err := out.Execute(w, rows); err != nil {
		return "", err
	}
	return w.String(), nil
}

func writePage(path string, page string, info htmlTempl.ReportingInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out, err := template.New(filepath.Base(path)).Parse(page)
	if err != nil {
		return err
	}
	return out.Execute(f, info)
}
