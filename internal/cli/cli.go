package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/curricula/internal/app"
	"github.com/vk/curricula/internal/settings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating the program should exit cleanly (help or
// no input), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("curricula", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
curricula - curriculum analytics for degree plans.

Reads curriculum plan CSV files, computes structural complexity metrics
per course, packs courses into terms, and writes a metrics CSV plus an
optional report per plan.

Usage:
  curricula [options] FILE_OR_DIR [...]

Arguments:
  FILE_OR_DIR
    Curriculum CSV files, or directories searched recursively for them.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the HCL settings file. Defaults to curricula.hcl when present.")
	creditsFlag := flagSet.Float64("target-credits", 0, "Target credit hours per term.")
	metricsDirFlag := flagSet.String("metrics-dir", "", "Output directory for metrics CSVs.")
	reportsDirFlag := flagSet.String("reports-dir", "", "Output directory for reports.")
	formatFlag := flagSet.String("report-format", "", "Report format. Options: 'markdown' or 'html'.")
	noCSVFlag := flagSet.Bool("no-csv", false, "Suppress the metrics CSV output.")
	noReportFlag := flagSet.Bool("no-report", false, "Suppress the report output.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	defaults, err := settings.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Flags override file values only when set on the command line.
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["target-credits"] {
		defaults.TargetCredits = *creditsFlag
	}
	if set["metrics-dir"] {
		defaults.MetricsDir = *metricsDirFlag
	}
	if set["reports-dir"] {
		defaults.ReportsDir = *reportsDirFlag
	}
	if set["report-format"] {
		defaults.ReportFormat = *formatFlag
	}
	if set["no-csv"] {
		defaults.NoCSV = *noCSVFlag
	}
	if set["no-report"] {
		defaults.NoReport = *noReportFlag
	}
	if set["log-format"] {
		defaults.LogFormat = *logFormatFlag
	}
	if set["log-level"] {
		defaults.LogLevel = *logLevelFlag
	}

	logFormat := strings.ToLower(defaults.LogFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(defaults.LogLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	switch strings.ToLower(defaults.ReportFormat) {
	case "markdown", "md", "html", "htm":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid report-format: must be 'markdown' or 'html'"}
	}

	config, err := app.NewConfig(app.Config{
		Inputs:        flagSet.Args(),
		TargetCredits: defaults.TargetCredits,
		MetricsDir:    defaults.MetricsDir,
		ReportsDir:    defaults.ReportsDir,
		ReportFormat:  defaults.ReportFormat,
		NoCSV:         defaults.NoCSV,
		NoReport:      defaults.NoReport,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
