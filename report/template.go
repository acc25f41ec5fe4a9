package report

import (
	"html/template"
	"io"
	"os"
)

// reportTemplate renders a Report as a standalone HTML page: the static
// fallback spec.md's CLI writes to --save-to when -v is not passed. Kept
// deliberately plain (a single named template, no nested ViewComponents)
// since a one-shot report has none of the live server's per-view wiring
// concerns.
const reportTemplateSource = `
{{ define "report" }}
<!DOCTYPE html>
<html>
<head>
	<title>boardline report</title>
	<link rel="icon" href="data:,">
	<style>
		body { font-family: sans-serif; margin: 2em; }
		table { border-collapse: collapse; }
		td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: right; }
	</style>
</head>
<body>
	<h1>Line summary</h1>
	<table>
		<tr><th>total_time (s)</th><td>{{ printf "%.1f" .Summary.TotalTime }}</td></tr>
		<tr><th>total_fasteners</th><td>{{ .Summary.TotalFasteners }}</td></tr>
		<tr><th>processed_feet</th><td>{{ printf "%.2f" .Summary.ProcessedFeet }}</td></tr>
		<tr><th>throughput_feet_per_8h</th><td>{{ printf "%.2f" .Summary.ThroughputFeetPer8h }}</td></tr>
		<tr><th>board_feet_per_8h_2x12</th><td>{{ printf "%.2f" .Summary.BoardFeetPer8h2x12 }}</td></tr>
	</table>

	<h1>Robots</h1>
	<table>
		<tr><th>cell_id</th><th>surface</th><th>type</th><th>work_time_ratio</th><th>wait_time_ratio</th><th>n_picked</th></tr>
		{{ range .Robots }}
		<tr>
			<td>{{ .CellID }}</td>
			<td>{{ .Surface }}</td>
			<td>{{ .TypeName }}</td>
			<td>{{ printf "%.3f" .WorkTimeRatio }}</td>
			<td>{{ printf "%.3f" .WaitTimeRatio }}</td>
			<td>{{ .NPickedFasteners }}</td>
		</tr>
		{{ end }}
	</table>

	<h1>Missed fasteners</h1>
	<table>
		<tr><th>kind</th><th>count</th></tr>
		{{ range $kind, $count := .MissedFasteners }}
		<tr><td>{{ $kind }}</td><td>{{ $count }}</td></tr>
		{{ end }}
	</table>
</body>
</html>
{{ end }}
`

var reportTemplate = template.Must(template.New("root").Parse(reportTemplateSource))

// WriteHTML renders r as a standalone HTML page to w.
func WriteHTML(w io.Writer, r Report) error {
	return reportTemplate.ExecuteTemplate(w, "report", r)
}

// SaveHTML renders r and writes it to path, per the CLI's --save-to flag.
func SaveHTML(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteHTML(f, r)
}
