// Package report renders validation reports for people and for machines.
package report

import (
	"io"

	"github.com/andyballingall/curvecheck/internal/config"
	"github.com/andyballingall/curvecheck/internal/runner"
)

// Reporter writes a formatted validation report.
type Reporter interface {
	Write(w io.Writer, report *runner.Report) error
}

// New returns the Reporter for the given output format.
func New(format config.OutputFormat, verbose, useColour bool) (Reporter, error) {
	switch format {
	case config.OutputText:
		return &TextReporter{Verbose: verbose, UseColour: useColour}, nil
	case config.OutputJSON:
		return &JSONReporter{}, nil
	default:
		return nil, &config.InvalidOutputFormatError{Value: string(format)}
	}
}
