package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/curricula/internal/ctxlog"
	"github.com/vk/curricula/internal/curriculum"
	"github.com/vk/curricula/internal/dag"
	"github.com/vk/curricula/internal/fsutil"
	"github.com/vk/curricula/internal/metrics"
	"github.com/vk/curricula/internal/report"
	"github.com/vk/curricula/internal/schedule"
)

// fileResult records one file's outcome for the batch summary.
type fileResult struct {
	Path        string
	PlanName    string
	Courses     int
	TermsUsed   int
	Unscheduled int
	Summary     metrics.Summary
	Err         error
}

// Run executes the batch. Files are processed sequentially and
// independently; cancellation is honored at file boundaries. The returned
// error is non-nil when any file failed, which the CLI maps to a non-zero
// exit code.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.ExpandInputs(a.config.Inputs, ".csv")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no curriculum csv files found under %s", strings.Join(a.config.Inputs, ", "))
	}

	var renderer report.Renderer
	if !a.config.NoReport {
		renderer, err = a.registry.Lookup(a.config.ReportFormat)
		if err != nil {
			return err
		}
	}

	results := make([]fileResult, 0, len(files))
	failed := 0
	for _, path := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		res := a.processFile(ctx, path, renderer)
		if res.Err != nil {
			failed++
			a.logger.Error("curriculum analysis failed", "file", path, "error", res.Err)
		}
		results = append(results, res)
	}

	a.printSummary(results)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// processFile drives one curriculum through the whole pipeline. Each output
// file is written atomically, so a failed write leaves no partial file; a
// metrics CSV already written stays in place if the report step fails.
func (a *App) processFile(ctx context.Context, path string, renderer report.Renderer) fileResult {
	logger := a.logger.With("file", path)
	res := fileResult{Path: path}

	f, err := os.Open(path)
	if err != nil {
		res.Err = err
		return res
	}
	plan, err := curriculum.LoadPlan(f)
	f.Close()
	if err != nil {
		res.Err = err
		return res
	}
	res.PlanName = plan.Name
	res.Courses = plan.Len()
	logger.Debug("plan loaded", "courses", plan.Len(), "system", plan.SystemType)

	graph, err := dag.Build(ctx, plan)
	if err != nil {
		res.Err = err
		return res
	}

	table := metrics.Compute(graph, plan.IsQuarter())
	summary := metrics.Summarize(plan, graph, table)
	res.Summary = summary

	termPlan := schedule.Assign(ctx, plan, graph, table, a.config.TargetCredits)
	res.TermsUsed = termPlan.TermsUsed()
	res.Unscheduled = len(termPlan.Unscheduled)

	model := report.Compose(plan, graph, table, termPlan, summary)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if !a.config.NoCSV {
		out := filepath.Join(a.config.MetricsDir, stem+"_w_metrics.csv")
		if err := fsutil.WriteFileAtomic(out, report.RenderMetricsCSV(model), 0o644); err != nil {
			res.Err = fmt.Errorf("writing metrics csv: %w", err)
			return res
		}
		logger.Info("metrics exported", "output", out)
	}

	if renderer != nil {
		data, err := renderer.Render(model)
		if err != nil {
			res.Err = fmt.Errorf("rendering report: %w", err)
			return res
		}
		out := filepath.Join(a.config.ReportsDir, stem+"_report."+renderer.Ext())
		if err := fsutil.WriteFileAtomic(out, data, 0o644); err != nil {
			res.Err = fmt.Errorf("writing report: %w", err)
			return res
		}
		logger.Info("report written", "output", out)
	}

	return res
}
