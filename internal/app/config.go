package app

import "errors"

// Config holds everything an App instance needs to run a batch.
type Config struct {
	// Inputs are the curriculum CSV files or directories to analyze.
	Inputs []string

	TargetCredits float64
	MetricsDir    string
	ReportsDir    string
	ReportFormat  string
	NoCSV         bool
	NoReport      bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one input file or directory is required")
	}
	if cfg.TargetCredits <= 0 {
		return nil, errors.New("target credits must be positive")
	}
	return &cfg, nil
}
