package report

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"
)

//go:embed templates/report.html.tmpl
var htmlTemplate string

// HTMLRenderer renders the report as a self-contained HTML page. Rendering
// a PDF from it is a sink-side concern and lives outside this package.
type HTMLRenderer struct{}

// Ext implements Renderer.
func (r *HTMLRenderer) Ext() string { return "html" }

// Render implements Renderer.
func (r *HTMLRenderer) Render(m *Model) ([]byte, error) {
	tmpl, err := template.New("report.html").Funcs(template.FuncMap{
		"joinPath": func(parts []string) string { return strings.Join(parts, " → ") },
	}).Parse(htmlTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
