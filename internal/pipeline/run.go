// Package pipeline runs the load, aggregate and report stages for one passenger file.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/titanic-survival/internal/dataset"
	"github.com/jonathan/titanic-survival/internal/observability"
	"github.com/jonathan/titanic-survival/internal/report"
	"github.com/jonathan/titanic-survival/internal/survival"
	"github.com/jonathan/titanic-survival/internal/types"
)

// Step names reported in progress events
const (
	StepLoad      = "load"
	StepAggregate = "aggregate"
	StepReport    = "report"
	StepExport    = "export"
	StepChart     = "chart"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for one run
type RunOptions struct {
	InputPath  string
	JSONPath   string // optional machine-readable report
	ChartPath  string // optional survival-rate chart
	Verbose    bool
	Out        io.Writer // text report destination; os.Stdout when nil
	Logger     *zap.Logger
	OnProgress ProgressCallback
	Now        func() time.Time
}

// Result holds everything a run produced
type Result struct {
	RunID    uuid.UUID
	Dataset  *types.Dataset
	Analysis *types.SurvivalAnalysis
}

func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
		})
	}
}

// Run loads the input file, computes the survival analysis and writes the reports.
// The context is only consulted between stages.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))

	// Step 1: Load
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Debug("Loading passenger file", zap.String("path", opts.InputPath))
	ds, err := dataset.Load(opts.InputPath)
	if err != nil {
		logger.Error("Failed to load passenger file", zap.String("path", opts.InputPath), zap.Error(err))
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if !ds.ByName {
		logger.Warn("Header names not recognised, using legacy column positions", zap.String("path", opts.InputPath))
	}
	logger.Info("Loaded passengers", zap.Int("passengers", ds.Len()), zap.Bool("by_name", ds.ByName))
	emitProgress(&opts, runID, StepLoad, fmt.Sprintf("loaded %d passengers", ds.Len()))

	if opts.Verbose {
		observability.NewPrinter(out).PrintDatasetProfile(ds)
	}

	// Step 2: Aggregate
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	analysis, err := survival.Analyze(ds)
	if err != nil {
		logger.Error("Failed to compute survival rates", zap.Error(err))
		return nil, fmt.Errorf("failed to compute survival rates: %w", err)
	}
	logger.Debug("Computed survival rates",
		zap.Float64("overall", analysis.Overall.Rate),
		zap.Float64("female_ratio", analysis.FemaleRatio))
	emitProgress(&opts, runID, StepAggregate, fmt.Sprintf("overall survival rate %.4f", analysis.Overall.Rate))

	// Step 3: Report
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := report.WriteText(out, analysis); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	emitProgress(&opts, runID, StepReport, "wrote contingency tables")

	// Optional exports
	if opts.JSONPath != "" {
		doc := report.BuildReport(analysis, ds.Source, runID, now())
		if err := report.WriteJSON(opts.JSONPath, doc); err != nil {
			return nil, fmt.Errorf("failed to export JSON report: %w", err)
		}
		logger.Info("Wrote JSON report", zap.String("path", opts.JSONPath))
		emitProgress(&opts, runID, StepExport, opts.JSONPath)
	}

	if opts.ChartPath != "" {
		if err := report.SaveChart(opts.ChartPath, analysis); err != nil {
			return nil, fmt.Errorf("failed to save chart: %w", err)
		}
		logger.Info("Wrote chart", zap.String("path", opts.ChartPath))
		emitProgress(&opts, runID, StepChart, opts.ChartPath)
	}

	return &Result{RunID: runID, Dataset: ds, Analysis: analysis}, nil
}
