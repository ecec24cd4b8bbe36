package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Metric columns appended to the input header.
var metricColumns = []string{"Complexity", "Blocking", "Delay", "Centrality"}

// Columns that are always emitted quoted; everything else (numeric and
// relationship fields included) stays bare. The fixed quoting is part of
// the byte-level contract with the reference corpus, which is why this
// writer does not go through encoding/csv and its adaptive quoting.
var quotedColumns = map[string]bool{
	"prefix":         true,
	"number":         true,
	"institution":    true,
	"canonical name": true,
}

// RenderMetricsCSV emits the metrics CSV for a plan: the metadata block in
// its literal field order, the aggregates block, the Courses marker, the
// input header extended with the metric columns, and one data row per
// course in input order.
func RenderMetricsCSV(m *Model) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Curriculum,%s\n", m.PlanName)
	fmt.Fprintf(&buf, "Institution,%s\n", m.Institution)
	fmt.Fprintf(&buf, "Degree Type,%s\n", quote(m.DegreeType))
	if m.Year != "" {
		fmt.Fprintf(&buf, "Year,%s\n", m.Year)
	}
	fmt.Fprintf(&buf, "System Type,%s\n", m.SystemType)
	fmt.Fprintf(&buf, "CIP,%s\n", quote(m.CIPCode))

	fmt.Fprintf(&buf, "Total Structural Complexity,%d\n", m.Summary.TotalComplexity)
	fmt.Fprintf(&buf, "Longest Delay,%d", m.Summary.LongestDelay)
	if len(m.Summary.CriticalPath) > 0 {
		fmt.Fprintf(&buf, ",%s", strings.Join(m.Summary.CriticalPath, "->"))
	}
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "Highest Centrality Course,%s,%d\n",
		quote(m.Summary.HighestCentralityCourse), m.Summary.HighestCentrality)

	buf.WriteString("Courses\n")
	header := append(append([]string(nil), m.Header...), metricColumns...)
	buf.WriteString(strings.Join(header, ","))
	buf.WriteByte('\n')

	for i := range m.Rows {
		writeCourseRow(&buf, m.Header, &m.Rows[i])
	}

	return buf.Bytes()
}

func writeCourseRow(buf *bytes.Buffer, header []string, row *CourseRow) {
	fields := make([]string, 0, len(header)+len(metricColumns))
	for _, col := range header {
		name := strings.ToLower(col)
		value := columnValue(name, row)
		if quotedColumns[name] {
			value = quote(value)
		}
		fields = append(fields, value)
	}
	m := row.Metrics
	fields = append(fields,
		strconv.Itoa(m.Complexity),
		strconv.Itoa(m.Blocking),
		strconv.Itoa(m.Delay),
		strconv.Itoa(m.Centrality),
	)
	buf.WriteString(strings.Join(fields, ","))
	buf.WriteByte('\n')
}

func columnValue(lowerName string, row *CourseRow) string {
	switch lowerName {
	case "course id":
		return row.CSVID
	case "course name":
		return row.Name
	case "prefix":
		return row.Prefix
	case "number":
		return row.Number
	case "prerequisites":
		return strings.Join(row.Prerequisites, ";")
	case "corequisites":
		return strings.Join(row.Corequisites, ";")
	case "strict-corequisites":
		return strings.Join(row.StrictCorequisites, ";")
	case "credit hours":
		return formatCredits(row.CreditHours)
	case "institution":
		return row.Institution
	case "canonical name":
		return row.CanonicalName
	default:
		return ""
	}
}

func formatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
