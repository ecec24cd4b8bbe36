package report

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed templates/report.md.tmpl
var markdownTemplate string

// MarkdownRenderer renders the report as Markdown with an embedded Mermaid
// diagram of the term schedule.
type MarkdownRenderer struct{}

// Ext implements Renderer.
func (r *MarkdownRenderer) Ext() string { return "md" }

// Render implements Renderer.
func (r *MarkdownRenderer) Render(m *Model) ([]byte, error) {
	tmpl, err := template.New("report.md").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(markdownTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		*Model
		Diagram string
	}{Model: m, Diagram: TermDiagram(m)}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
