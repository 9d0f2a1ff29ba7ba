package templates

import "html/template"

//ReportingInfo fills the section page templates
type ReportingInfo struct {
	Title     string
	Generated string
	Writer    template.HTML
}

var header = `
<head>
<meta content="text/html;charset=utf-8" http-equiv="Content-Type">
<meta content="utf-8" http-equiv="encoding">
<title>droplog: {{.Title}}</title>
<link rel="stylesheet" type="text/css" href="./style.css">
</head>

<ul>
  <li><a href="index.html">droplog</a></li>
  <li><a href="connections.html">Connections</a></li>
  <li><a href="hosts.html">Hosts</a></li>
  <li><a href="countries.html">Countries</a></li>
  <li><a href="ports.html">Ports</a></li>
  <li><a href="source-ports.html">Source Ports</a></li>
  <li><a href="top-ports.html">Top Ports</a></li>
  <li style="float:right"><a>{{.Generated}}</a></li>
</ul>
`

// HomeTempl lists the input summary
var HomeTempl = header + `
<p>
  <div class="info">To view results, click on any of the links above.</div>
</p>
<div class="container">
  <table class="summary">
    {{.Writer}}
  </table>
</div>
`

// ConnectionsTempl is the connections by host and port page
var ConnectionsTempl = header + `
<div class="container">
  <table>
    <tr><th>Source</th><th>Port</th><th>Hits</th><th>Mean Intvl. (min)</th><th>Intvl. Std. Dev. (min)</th><th>Country</th></tr>
      {{.Writer}}
  </table>
</div>
`

// HostsTempl is the connections by host page
var HostsTempl = header + `
<div class="container">
  <table>
    <tr><th>Source</th><th>Hits</th><th>Country</th><th>Latitude</th><th>Longitude</th></tr>
      {{.Writer}}
  </table>
</div>
`

// CountriesTempl is the connections by country page
var CountriesTempl = header + `
<div class="container">
  <table>
    <tr><th>Country</th><th>Hits</th></tr>
      {{.Writer}}
  </table>
</div>
`

// PortsTempl is shared by the port pages
var PortsTempl = header + `
<div class="container">
  <table>
    <tr><th>Port</th><th>Hits</th><th>Share</th></tr>
      {{.Writer}}
  </table>
</div>
`
