package report

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"csvqc/internal/quality"
	"csvqc/internal/utils"
)

// reportTemplate is a self-contained document: inline CSS, no external
// resources.
var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"joinSamples": func(vals []string) string { return strings.Join(vals, ", ") },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<title>Data Quality Report</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; background: #f5f5f5; }
.container { max-width: 1000px; margin: 0 auto; background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
h1 { color: #333; border-bottom: 3px solid #4CAF50; padding-bottom: 10px; }
h2 { color: #555; margin-top: 30px; }
.summary { background: #e8f5e9; padding: 15px; border-radius: 5px; margin: 20px 0; }
.warning { background: #fff3cd; padding: 15px; border-radius: 5px; margin: 10px 0; }
.error { background: #f8d7da; padding: 15px; border-radius: 5px; margin: 10px 0; }
.success { background: #d4edda; padding: 15px; border-radius: 5px; margin: 10px 0; }
table { width: 100%; border-collapse: collapse; margin: 20px 0; }
th { background: #4CAF50; color: white; padding: 12px; text-align: left; }
td { padding: 10px; border-bottom: 1px solid #ddd; }
tr:hover { background: #f5f5f5; }
.metric { font-size: 24px; font-weight: bold; color: #4CAF50; }
.meta { color: #888; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<h1>Data Quality Report</h1>
<p><strong>File:</strong> {{.Source}}</p>
<p><strong>Generated:</strong> {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
<p class="meta">Report ID: {{.ID}}</p>

<div class="summary">
<h2>Summary</h2>
<p><span class="metric">{{.TotalRows}}</span> rows</p>
<p><span class="metric">{{.TotalColumns}}</span> columns</p>
</div>

<h2>Missing Values</h2>
{{if .MissingValues}}
<div class="warning">
<table>
<tr><th>Column</th><th>Missing Count</th><th>Percentage</th></tr>
{{range .MissingValues}}<tr><td>{{.Column}}</td><td>{{.Count}}</td><td>{{.Percentage}}%</td></tr>
{{end}}</table>
</div>
{{else}}
<div class="success">No missing values found.</div>
{{end}}

<h2>Duplicate Rows</h2>
{{if gt .Duplicates.Rows 0}}
<div class="warning">
<p>Found <strong>{{.Duplicates.Rows}}</strong> duplicate rows ({{.Duplicates.Percentage}}% of data)</p>
</div>
{{else}}
<div class="success">No duplicate rows found.</div>
{{end}}

<h2>Data Types</h2>
<table>
<tr><th>Column</th><th>Type</th><th>Unique Values</th><th>Sample</th></tr>
{{range .DataTypes}}<tr><td>{{.Column}}</td><td>{{.DataType}}</td><td>{{.UniqueValues}}</td><td>{{joinSamples .SampleValues}}</td></tr>
{{end}}</table>

<h2>Outliers</h2>
{{if .Outliers}}
<div class="error">
<table>
<tr><th>Column</th><th>Outlier Count</th><th>Percentage</th><th>Valid Range</th></tr>
{{range .Outliers}}<tr><td>{{.Column}}</td><td>{{.Count}}</td><td>{{.Percentage}}%</td><td>{{.LowerBound}} to {{.UpperBound}}</td></tr>
{{end}}</table>
</div>
{{else}}
<div class="success">No outliers detected in numeric columns.</div>
{{end}}
</div>
</body>
</html>
`))

// HTML renders the result as a standalone HTML document.
func HTML(res *quality.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, res); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHTML renders the result and writes it atomically to path.
func WriteHTML(path string, res *quality.Result) error {
	b, err := HTML(res)
	if err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// DefaultOutputPath derives the report path from the input file's base name
// plus suffix, in the current directory.
func DefaultOutputPath(input, suffix string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + suffix
}
