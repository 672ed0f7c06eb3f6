// Package runner validates configuration documents on disk, many at a time, and
// watches them for changes.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andyballingall/curvecheck/internal/curve"
	"github.com/andyballingall/curvecheck/internal/document"
)

// ErrStopValidation signals that a document failed and the run should stop so the report can be shown.
var ErrStopValidation = errors.New("stopping after first failure")

// Validator validates a document as a given class. *curve.Catalog implements it.
type Validator interface {
	ValidateAs(class curve.Class, doc document.Value) error
}

// Runner manages a run of validations over a set of files.
type Runner struct {
	validator Validator
	logger    *slog.Logger

	// Run options
	class           curve.Class
	continueOnError bool
	numWorkers      int

	readFile func(string) ([]byte, error)
}

// New creates a Runner which validates documents with v.
func New(v Validator, logger *slog.Logger) *Runner {
	return &Runner{
		validator:  v,
		logger:     logger.With("component", "runner"),
		numWorkers: runtime.GOMAXPROCS(0),
		readFile:   os.ReadFile,
	}
}

// SetClass forces every document to be validated as class c. The empty class,
// the default, picks the class of each document from its keys.
func (r *Runner) SetClass(c curve.Class) {
	r.class = c
}

// SetContinueOnError controls whether the run carries on after a document fails.
// It defaults to false.
func (r *Runner) SetContinueOnError(b bool) {
	r.continueOnError = b
}

// SetNumWorkers controls how many documents are validated in parallel.
func (r *Runner) SetNumWorkers(n int) {
	if n > 0 {
		r.numWorkers = n
	}
}

// Run validates every file in paths and returns the report. Unless continue-on-error
// is set, the run stops after the first failing document; documents already in
// flight still finish and are reported. The context can be used to cancel the run
// early (e.g., on Ctrl+C), in which case the partial report is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	report := NewReport()
	report.StartTime = time.Now()
	defer func() { report.EndTime = time.Now() }()
	logger := r.logger.With("run", report.ID)
	logger.Debug("Validation run started", "documents", len(paths), "workers", r.numWorkers)

	g, runCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.numWorkers)

Loop:
	for _, path := range paths {
		// Before taking a worker slot, check if we've been told to stop
		select {
		case <-runCtx.Done():
			break Loop
		default:
		}

		g.Go(func() error {
			if runCtx.Err() != nil {
				return nil
			}
			res := r.ValidateFile(path)
			report.Add(res)
			if !res.Passed() {
				logger.Debug("Document failed", "path", path, "error", res.Err)
				if !r.continueOnError {
					return ErrStopValidation
				}
			}
			return nil
		})
	}

	err := g.Wait()

	// If ctx was cancelled by the caller (not by a failing document), prioritise returning that error.
	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	if err != nil && !errors.Is(err, ErrStopValidation) {
		return report, err
	}

	passed, failed := report.Counts()
	logger.Debug("Validation run finished", "passed", passed, "failed", failed)
	return report, nil
}

// ValidateFile reads, parses and validates a single document. Read and parse
// failures are reported as a failed Result rather than stopping the run.
func (r *Runner) ValidateFile(path string) Result {
	res := Result{Path: path}

	data, err := r.readFile(path)
	if err != nil {
		res.Err = &ReadError{Path: path, Wrapped: err}
		return res
	}

	doc, err := document.Parse(path, data)
	if err != nil {
		res.Err = err
		return res
	}

	class := r.class
	if class == "" {
		if class, err = curve.Classify(doc); err != nil {
			res.Err = err
			return res
		}
	}
	res.Class = class
	res.Err = r.validator.ValidateAs(class, doc)
	return res
}
