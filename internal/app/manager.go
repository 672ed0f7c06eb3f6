package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/andyballingall/curvecheck/internal/config"
	"github.com/andyballingall/curvecheck/internal/curve"
	"github.com/andyballingall/curvecheck/internal/fs"
	"github.com/andyballingall/curvecheck/internal/report"
	"github.com/andyballingall/curvecheck/internal/repo"
	"github.com/andyballingall/curvecheck/internal/runner"
	"github.com/andyballingall/curvecheck/internal/validator"
)

// schemaBaseURL identifies exported schemas inside the compiler.
const schemaBaseURL = "https://curvecheck.local/schemas/"

// ValidateOptions controls a validation run. Zero values fall back to the configuration.
type ValidateOptions struct {
	Paths           []string
	Class           curve.Class // "" picks each document's class from its keys
	Strict          bool
	Format          config.OutputFormat
	Verbose         bool
	UseColour       bool
	ContinueOnError bool
	Since           repo.Revision // when set, only documents changed since this revision are validated
}

// Manager defines the business logic behind the CLI commands.
type Manager interface {
	Config() *config.Config
	Validate(ctx context.Context, opts ValidateOptions) error
	WatchValidation(ctx context.Context, opts ValidateOptions, readyChan chan<- struct{}) error
	RenderSchema(ctx context.Context, class curve.Class, strict bool) ([]byte, error)
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Config() *config.Config {
	return l.check().Config()
}

func (l *LazyManager) Validate(ctx context.Context, opts ValidateOptions) error {
	return l.check().Validate(ctx, opts)
}

func (l *LazyManager) WatchValidation(ctx context.Context, opts ValidateOptions, readyChan chan<- struct{}) error {
	return l.check().WatchValidation(ctx, opts, readyChan)
}

func (l *LazyManager) RenderSchema(ctx context.Context, class curve.Class, strict bool) ([]byte, error) {
	return l.check().RenderSchema(ctx, class, strict)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	cfg            *config.Config
	resolver       fs.PathResolver
	compiler       validator.Compiler
	gitter         repo.Gitter
	reporterWriter io.Writer
}

func NewCLIManager(l *slog.Logger, cfg *config.Config, r fs.PathResolver, c validator.Compiler) *CLIManager {
	return &CLIManager{
		logger:         l,
		cfg:            cfg,
		resolver:       r,
		compiler:       c,
		gitter:         repo.NewCLIGitter(),
		reporterWriter: os.Stdout,
	}
}

// SetReporterWriter redirects reports, which go to stdout by default.
func (m *CLIManager) SetReporterWriter(w io.Writer) {
	m.reporterWriter = w
}

// SetGitter replaces the git CLI used to find changed documents.
func (m *CLIManager) SetGitter(g repo.Gitter) {
	m.gitter = g
}

func (m *CLIManager) Config() *config.Config {
	return m.cfg
}

// catalog returns the default catalog, or a strict one when asked.
func (m *CLIManager) catalog(strict bool) *curve.Catalog {
	if strict {
		return curve.NewCatalog(curve.WithStrict())
	}
	return curve.Default()
}

func (m *CLIManager) newRunner(opts ValidateOptions) *runner.Runner {
	r := runner.New(m.catalog(opts.Strict), m.logger)
	r.SetClass(opts.Class)
	r.SetContinueOnError(opts.ContinueOnError)
	r.SetNumWorkers(m.cfg.Workers)
	return r
}

// Validate validates every document under opts.Paths and writes the report. It
// returns a ValidationFailedError when any document is invalid.
func (m *CLIManager) Validate(ctx context.Context, opts ValidateOptions) error {
	m.logger.Debug("validating documents", "paths", opts.Paths, "class", opts.Class, "strict", opts.Strict,
		"format", opts.Format, "continueOnError", opts.ContinueOnError, "since", opts.Since)

	paths, err := m.findDocuments(opts.Paths)
	if err != nil {
		return err
	}

	if opts.Since != "" {
		if paths, err = m.changedSince(ctx, opts.Since, opts.Paths, paths); err != nil {
			return err
		}
		m.logger.Info("Validating changed documents", "since", opts.Since, "count", len(paths))
	}

	rep, err := m.newRunner(opts).Run(ctx, paths)
	if err != nil {
		return err
	}
	return m.writeReport(opts, rep)
}

func (m *CLIManager) findDocuments(roots []string) ([]string, error) {
	if len(roots) == 0 {
		return nil, &NoPathsError{}
	}
	paths, err := m.resolver.FindDocuments(roots, m.cfg.Extensions)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, &NoDocumentsError{Paths: roots}
	}
	return paths, nil
}

// changedSince keeps the documents git reports as added or modified since rev.
func (m *CLIManager) changedSince(ctx context.Context, rev repo.Revision, roots, paths []string) ([]string, error) {
	changed := make(map[string]bool)
	for _, root := range roots {
		changes, err := m.gitter.Changes(ctx, rev, root)
		if err != nil {
			return nil, err
		}
		for _, c := range changes {
			if p, err := m.resolver.CanonicalPath(c.Path); err == nil {
				changed[p] = true
			}
		}
	}

	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		canonical, err := m.resolver.CanonicalPath(p)
		if err != nil {
			return nil, err
		}
		if changed[canonical] {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func (m *CLIManager) writeReport(opts ValidateOptions, rep *runner.Report) error {
	reporter, err := report.New(opts.Format, opts.Verbose, opts.UseColour)
	if err != nil {
		return err
	}
	if err = reporter.Write(m.reporterWriter, rep); err != nil {
		return err
	}

	if passed, failed := rep.Counts(); failed > 0 {
		return &ValidationFailedError{Failed: failed, Total: passed + failed}
	}
	return nil
}

// WatchValidation validates opts.Paths once, then again for each batch of changed
// documents until ctx is cancelled. If you want to know when the watcher is ready
// to start listening to changes, pass a non-nil readyChan to be notified.
func (m *CLIManager) WatchValidation(ctx context.Context, opts ValidateOptions, readyChan chan<- struct{}) error {
	m.logger.Debug("watching validation", "paths", opts.Paths, "class", opts.Class, "strict", opts.Strict)

	if err := m.Validate(ctx, opts); err != nil {
		var failed *ValidationFailedError
		var empty *NoDocumentsError
		if !errors.As(err, &failed) && !errors.As(err, &empty) {
			return err
		}
	}

	watcher := runner.NewWatcher(m.logger, m.cfg.Extensions)

	callback := func(event runner.WatchEvent) {
		m.logger.Info("Documents changed", "paths", event.Paths)

		// A fresh runner per event keeps each report to the changed documents
		rep, err := m.newRunner(opts).Run(ctx, event.Paths)
		if err != nil {
			m.logger.Error("Validation failed", "error", err)
			return
		}
		if wErr := m.writeReport(opts, rep); wErr != nil {
			var failed *ValidationFailedError
			if !errors.As(wErr, &failed) {
				m.logger.Error("Failed to write report", "error", wErr)
			}
		}
	}

	// Forward watcher Ready signal if caller wants notification
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			readyChan <- struct{}{}
		}()
	}

	return watcher.Watch(ctx, opts.Paths, callback)
}

// RenderSchema exports the JSON Schema for class, checks that it compiles and returns it indented.
func (m *CLIManager) RenderSchema(_ context.Context, class curve.Class, strict bool) ([]byte, error) {
	m.logger.Debug("rendering schema", "class", class, "strict", strict)

	s, err := m.catalog(strict).JSONSchema(class)
	if err != nil {
		return nil, err
	}

	doc, err := validator.Normalise(s)
	if err != nil {
		return nil, err
	}

	id := schemaBaseURL + string(class) + ".schema.json"
	m.compiler.Clear()
	if err = m.compiler.AddSchema(id, doc); err != nil {
		return nil, &InvalidSchemaExportError{Class: string(class), Wrapped: err}
	}
	if _, err = m.compiler.Compile(id); err != nil {
		return nil, &InvalidSchemaExportError{Class: string(class), Wrapped: err}
	}

	return json.MarshalIndent(s, "", "  ")
}
