package export

import (
	"html/template"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"user-registry-backend/internal/user"
)

// The report is a plain HTML table handed to wkhtmltopdf. html/template
// escapes every cell value, so user-supplied text cannot inject markup
// into the rendering engine.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: DejaVu Sans, sans-serif; font-size: 10px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; font-weight: bold; }
h1 { text-align: center; color: #333; }
</style>
</head>
<body>
<h1>Users Report</h1>
<table>
<thead>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>`))

func reportHTML(users []user.User) (string, error) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, reportRow(u))
	}

	var b strings.Builder
	err := reportTemplate.Execute(&b, struct {
		Columns []string
		Rows    [][]string
	}{Columns: reportColumns, Rows: rows})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func writePDF(users []user.User) ([]byte, error) {
	html, err := reportHTML(users)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, err
	}
	pdfg.Orientation.Set(wkhtmltopdf.OrientationLandscape)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))

	if err := pdfg.Create(); err != nil {
		return nil, err
	}
	return pdfg.Bytes(), nil
}
