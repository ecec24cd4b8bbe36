package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCurriculum = `Curriculum,Test CS
Institution,Test U
Degree Type,BS
System Type,semester
CIP,11.0701
Courses
Course ID,Course Name,Prefix,Number,Prerequisites,Corequisites,Strict-Corequisites,Credit Hours,Institution,Canonical Name
1,Intro,CS,101,,,,4,Test U,
2,Data Structures,CS,201,1,,,4,Test U,
3,Data Lab,CS,201L,,,2,1,Test U,
4,Algorithms,CS,301,2,,,4,Test U,
5,Elective,XXXX,,,,,3,Test U,
6,Elective,XXXX,,,,,3,Test U,
`

func testApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	cfg.LogLevel = "error"
	cfg.LogFormat = "text"
	if cfg.TargetCredits == 0 {
		cfg.TargetCredits = 15
	}
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = "markdown"
	}
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	return NewApp(&out, &out, validated), &out
}

func TestRunAnalyzesBatch(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test_cs.csv")
	require.NoError(t, os.WriteFile(input, []byte(sampleCurriculum), 0o644))

	a, out := testApp(t, Config{
		Inputs:     []string{input},
		MetricsDir: filepath.Join(dir, "out"),
		ReportsDir: filepath.Join(dir, "out", "reports"),
	})

	require.NoError(t, a.Run(context.Background()))

	metricsPath := filepath.Join(dir, "out", "test_cs_w_metrics.csv")
	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	csv := string(data)
	assert.Contains(t, csv, "Curriculum,Test CS")
	assert.Contains(t, csv, "Total Structural Complexity,")
	assert.Contains(t, csv, "Complexity,Blocking,Delay,Centrality")
	// Colliding electives materialize under suffixed storage keys but keep
	// their csv ids in the output rows.
	assert.Contains(t, csv, "5,Elective,")
	assert.Contains(t, csv, "6,Elective,")

	reportPath := filepath.Join(dir, "out", "reports", "test_cs_report.md")
	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "# Test CS")
	assert.Contains(t, string(report), "```mermaid")

	assert.Contains(t, out.String(), "1/1 curricula analyzed")
}

func TestRunSuppressionSwitches(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "plan.csv")
	require.NoError(t, os.WriteFile(input, []byte(sampleCurriculum), 0o644))

	a, _ := testApp(t, Config{
		Inputs:     []string{input},
		MetricsDir: filepath.Join(dir, "out"),
		ReportsDir: filepath.Join(dir, "reports"),
		NoCSV:      true,
		NoReport:   true,
	})

	require.NoError(t, a.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "reports"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunContinuesPastFailedFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "a_bad.csv")
	good := filepath.Join(dir, "b_good.csv")
	require.NoError(t, os.WriteFile(bad, []byte("Curriculum,Broken\nno courses marker\n"), 0o644))
	require.NoError(t, os.WriteFile(good, []byte(sampleCurriculum), 0o644))

	a, out := testApp(t, Config{
		Inputs:     []string{dir},
		MetricsDir: filepath.Join(dir, "out"),
		ReportsDir: filepath.Join(dir, "out", "reports"),
	})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	// The good file still produced output.
	_, statErr := os.Stat(filepath.Join(dir, "out", "b_good_w_metrics.csv"))
	assert.NoError(t, statErr)
	// No partial output for the bad file.
	_, statErr = os.Stat(filepath.Join(dir, "out", "a_bad_w_metrics.csv"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Contains(t, out.String(), "1/2 curricula analyzed")
}

func TestRunNoInputsFound(t *testing.T) {
	dir := t.TempDir()
	a, _ := testApp(t, Config{
		Inputs:     []string{dir},
		MetricsDir: filepath.Join(dir, "out"),
		ReportsDir: filepath.Join(dir, "reports"),
	})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no curriculum csv files found")
}

func TestRunUnknownReportFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "plan.csv")
	require.NoError(t, os.WriteFile(input, []byte(sampleCurriculum), 0o644))

	a, _ := testApp(t, Config{
		Inputs:       []string{input},
		MetricsDir:   filepath.Join(dir, "out"),
		ReportsDir:   filepath.Join(dir, "reports"),
		ReportFormat: "docx",
	})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "unknown report format")
}
