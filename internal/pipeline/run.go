// Package pipeline provides the high-level orchestration for a validation run:
// stream leads from the input file, dispatch them to rule handlers, and write
// verdicts and a run report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/lead-validator/internal/ingestion"
	"github.com/jonathan/lead-validator/internal/types"
	"github.com/jonathan/lead-validator/internal/validation"
)

// DefaultBatchSize is the number of rows validated per batch when none is set.
const DefaultBatchSize = 256

// Pipeline steps reported through ProgressEvent.Step.
const (
	StepOpen     = "open"
	StepValidate = "validate"
	StepReport   = "report"
	StepDone     = "done"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Rows    int    `json:"rows"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Input      string
	Output     string
	ReportPath string
	Workers    int
	BatchSize  int
	Dispatcher *validation.Dispatcher // defaults to validation.DefaultOptions
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

func (o *RunOptions) withDefaults() RunOptions {
	opts := *o
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Dispatcher == nil {
		dopts := validation.DefaultOptions()
		dopts.Logger = opts.Logger
		opts.Dispatcher = validation.NewDispatcher(dopts)
	}
	return opts
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, report *types.RunReport, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   report.RunID.String(),
			Rows:    report.Rows,
			Content: content,
		})
	}
}

// Run validates every lead in opts.Input and writes the leads with their
// verdicts to opts.Output in input order. The output path is guarded by a
// "<output>.lock" file for the duration of the run.
func Run(ctx context.Context, opts RunOptions) (*types.RunReport, error) {
	if opts.Input == "" || opts.Output == "" {
		return nil, fmt.Errorf("input and output paths are required")
	}
	opts = opts.withDefaults()
	log := opts.Logger

	report := types.NewRunReport(uuid.New(), opts.Input, opts.Output)
	report.StartedAt = time.Now().UTC()
	log = log.With(zap.String("run_id", report.RunID.String()))

	lock, err := acquireLock(opts.Output)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("failed to release output lock", zap.String("path", lock.Path()), zap.Error(err))
		}
	}()

	reader, err := ingestion.Open(opts.Input)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	writer, err := ingestion.Create(opts.Output)
	if err != nil {
		return nil, err
	}

	log.Info("validation run started",
		zap.String("input", opts.Input),
		zap.String("output", opts.Output),
		zap.Int("workers", opts.Workers),
		zap.Int("batch_size", opts.BatchSize))
	emitProgress(&opts, report, StepOpen, fmt.Sprintf("Reading %s", opts.Input), nil)

	if err := processBatches(ctx, &opts, reader, writer, report); err != nil {
		_ = writer.Close()
		return report, err
	}
	if err := writer.Close(); err != nil {
		return report, err
	}

	report.FinishedAt = time.Now().UTC()

	if opts.ReportPath != "" {
		if err := WriteReport(opts.ReportPath, report, log); err != nil {
			return report, err
		}
		emitProgress(&opts, report, StepReport, fmt.Sprintf("Wrote report %s", opts.ReportPath), nil)
	}

	log.Info("validation run finished",
		zap.Int("rows", report.Rows),
		zap.Int("valid", report.Results[types.ResultValid]),
		zap.Int("invalid", report.Results[types.ResultInvalid]),
		zap.Int("recheck", report.Results[types.ResultRecheck]),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))
	emitProgress(&opts, report, StepDone, fmt.Sprintf("Validated %d rows", report.Rows), report.Results)

	return report, nil
}

func acquireLock(output string) (*flock.Flock, error) {
	lock := flock.New(output + ".lock")
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, &LockError{Path: lock.Path(), Cause: err}
	}
	ok, err := lock.TryLock()
	if err != nil {
		return nil, &LockError{Path: lock.Path(), Cause: err}
	}
	if !ok {
		return nil, &LockError{Path: lock.Path()}
	}
	return lock, nil
}

// processBatches reads rows until EOF, validating each batch concurrently and
// writing it before the next batch is read.
func processBatches(ctx context.Context, opts *RunOptions, reader ingestion.RowReader, writer ingestion.RowWriter, report *types.RunReport) error {
	batch := make([]types.Lead, 0, opts.BatchSize)
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var eof bool
		var err error
		batch, eof, err = readBatch(reader, batch[:0], opts.BatchSize)
		if err != nil {
			return err
		}
		if len(batch) > 0 {
			verdicts, err := validateBatch(ctx, opts, batch)
			if err != nil {
				return err
			}
			for i, lead := range batch {
				if err := writer.Write(lead, verdicts[i]); err != nil {
					return err
				}
				report.Record(lead.SubStatus, verdicts[i])
			}
			opts.Logger.Debug("batch validated", zap.Int("batch", n), zap.Int("size", len(batch)), zap.Int("rows", report.Rows))
			emitProgress(opts, report, StepValidate, fmt.Sprintf("Batch %d: %d rows", n, len(batch)), nil)
		}
		if eof {
			return nil
		}
	}
}

func readBatch(reader ingestion.RowReader, batch []types.Lead, size int) ([]types.Lead, bool, error) {
	for len(batch) < size {
		lead, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return batch, true, nil
		}
		if err != nil {
			return batch, false, err
		}
		batch = append(batch, lead)
	}
	return batch, false, nil
}

// validateBatch dispatches every lead with at most opts.Workers goroutines.
// Verdicts are indexed by position so output order matches input order.
func validateBatch(ctx context.Context, opts *RunOptions, batch []types.Lead) ([]types.Verdict, error) {
	verdicts := make([]types.Verdict, len(batch))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range batch {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			verdicts[i] = opts.Dispatcher.Validate(batch[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
