package report

import (
	"fmt"
	"strings"
)

// TermDiagram renders a Mermaid flowchart of the schedule: one subgraph per
// term with requisite edges drawn between scheduled courses. Prerequisites
// are solid arrows, corequisites dashed. The fenced block renders directly
// in GitHub, GitLab, and VS Code Markdown previews.
func TermDiagram(m *Model) string {
	var b strings.Builder
	b.WriteString("```mermaid\nflowchart LR\n")

	scheduled := make(map[string]bool)
	for _, term := range m.Terms {
		if len(term.Courses) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    subgraph term%d[\"%s %d\"]\n", term.Index, m.TermLabel, term.Index)
		for _, c := range term.Courses {
			scheduled[c.StorageKey] = true
			fmt.Fprintf(&b, "        %s[\"%s\"]\n", sanitizeID(c.StorageKey), nodeLabel(m, c.StorageKey))
		}
		b.WriteString("    end\n\n")
	}

	for _, e := range m.Edges.Prereq {
		if scheduled[e.From] && scheduled[e.To] {
			fmt.Fprintf(&b, "    %s --> %s\n", sanitizeID(e.From), sanitizeID(e.To))
		}
	}
	for _, e := range m.Edges.Coreq {
		if scheduled[e.From] && scheduled[e.To] {
			fmt.Fprintf(&b, "    %s -.-> %s\n", sanitizeID(e.From), sanitizeID(e.To))
		}
	}
	for _, e := range m.Edges.StrictCoreq {
		if scheduled[e.From] && scheduled[e.To] {
			fmt.Fprintf(&b, "    %s -.-> %s\n", sanitizeID(e.From), sanitizeID(e.To))
		}
	}

	b.WriteString("```\n")
	return b.String()
}

func nodeLabel(m *Model, key string) string {
	for i := range m.Rows {
		if m.Rows[i].StorageKey == key {
			return fmt.Sprintf("%s (%d)", escapeLabel(key), m.Rows[i].Metrics.Complexity)
		}
	}
	return escapeLabel(key)
}

// escapeLabel keeps node labels inside their surrounding double quotes.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

// sanitizeID maps a storage key to a Mermaid-safe node identifier.
func sanitizeID(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
