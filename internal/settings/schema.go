package settings

// fileSchema mirrors the HCL settings file structure.
type fileSchema struct {
	Defaults *defaultsBlock `hcl:"defaults,block"`
	Logging  *loggingBlock  `hcl:"logging,block"`
}

// defaultsBlock is the `defaults` block: batch-wide knobs.
type defaultsBlock struct {
	TargetCredits *float64 `hcl:"target_credits,optional"`
	MetricsDir    *string  `hcl:"metrics_dir,optional"`
	ReportsDir    *string  `hcl:"reports_dir,optional"`
	ReportFormat  *string  `hcl:"report_format,optional"`
	NoCSV         *bool    `hcl:"no_csv,optional"`
	NoReport      *bool    `hcl:"no_report,optional"`
}

// loggingBlock is the `logging` block.
type loggingBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}
