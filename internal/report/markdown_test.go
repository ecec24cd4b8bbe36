package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRender(t *testing.T) {
	m := composedFixture(t)

	out, err := (&MarkdownRenderer{}).Render(m)
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, "# Computer Science"))
	assert.Contains(t, doc, "| Total Structural Complexity |")
	assert.Contains(t, doc, "## Term Schedule")
	assert.Contains(t, doc, "| Semester | Courses | Credits |")
	assert.Contains(t, doc, "CS201 - Data Structures")
	assert.Contains(t, doc, "## Course Metrics")
	assert.Contains(t, doc, "```mermaid")
}

func TestMarkdownRenderUnscheduled(t *testing.T) {
	m := composedFixture(t)
	m.Unscheduled = []string{"LOST101"}

	out, err := (&MarkdownRenderer{}).Render(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "| Unscheduled | LOST101 | - |")
}

func TestHTMLRender(t *testing.T) {
	m := composedFixture(t)

	out, err := (&HTMLRenderer{}).Render(m)
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "<h1>Computer Science</h1>")
	assert.Contains(t, doc, "Total Complexity")
	assert.Contains(t, doc, "CS201L")
}

func TestHTMLRenderEscapes(t *testing.T) {
	m := composedFixture(t)
	m.PlanName = `<script>alert("x")</script>`

	out, err := (&HTMLRenderer{}).Render(m)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>alert")
}

func TestRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	for _, name := range []string{"markdown", "md", "MARKDOWN"} {
		ren, err := r.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, "md", ren.Ext())
	}

	ren, err := r.Lookup("html")
	require.NoError(t, err)
	assert.Equal(t, "html", ren.Ext())

	_, err = r.Lookup("pdf")
	assert.ErrorContains(t, err, "unknown report format")
}

func TestTermDiagram(t *testing.T) {
	m := composedFixture(t)
	diagram := TermDiagram(m)

	assert.True(t, strings.HasPrefix(diagram, "```mermaid\nflowchart LR\n"))
	assert.Contains(t, diagram, `subgraph term1["Semester 1"]`)
	assert.Contains(t, diagram, "CS101 --> CS201")
	assert.Contains(t, diagram, "CS201 -.-> CS201L")
	assert.True(t, strings.HasSuffix(diagram, "```\n"))
}
