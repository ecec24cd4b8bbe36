package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/curricula/internal/schedule"
)

// DefaultFileName is looked for in the working directory when no settings
// path is given.
const DefaultFileName = "curricula.hcl"

// Settings is the resolved configuration after defaults and file values.
type Settings struct {
	TargetCredits float64
	MetricsDir    string
	ReportsDir    string
	ReportFormat  string
	NoCSV         bool
	NoReport      bool

	LogLevel  string
	LogFormat string
}

// Defaults returns the built-in settings used when no file is present.
func Defaults() Settings {
	return Settings{
		TargetCredits: schedule.DefaultTargetCredits,
		MetricsDir:    "out",
		ReportsDir:    "out/reports",
		ReportFormat:  "markdown",
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load reads an HCL settings file and overlays it on the defaults. A
// missing explicit path is an error; pass "" to probe for DefaultFileName
// and fall back to pure defaults when absent.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path == "" {
		if _, err := os.Stat(DefaultFileName); err != nil {
			return s, nil
		}
		path = DefaultFileName
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return s, fmt.Errorf("parsing settings file %s: %w", path, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &schema); diags.HasErrors() {
		return s, fmt.Errorf("decoding settings file %s: %w", path, diags)
	}

	if d := schema.Defaults; d != nil {
		if d.TargetCredits != nil {
			s.TargetCredits = *d.TargetCredits
		}
		if d.MetricsDir != nil {
			s.MetricsDir = *d.MetricsDir
		}
		if d.ReportsDir != nil {
			s.ReportsDir = *d.ReportsDir
		}
		if d.ReportFormat != nil {
			s.ReportFormat = *d.ReportFormat
		}
		if d.NoCSV != nil {
			s.NoCSV = *d.NoCSV
		}
		if d.NoReport != nil {
			s.NoReport = *d.NoReport
		}
	}
	if l := schema.Logging; l != nil {
		if l.Level != nil {
			s.LogLevel = *l.Level
		}
		if l.Format != nil {
			s.LogFormat = *l.Format
		}
	}

	return s, nil
}

// evalContext exposes the process environment to settings expressions as
// the env object.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, pair := range os.Environ() {
		if k, v, ok := strings.Cut(pair, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
