package app

import (
	"fmt"
	"strings"
)

// ValidationFailedError is returned when one or more documents are invalid, so the
// process exits with a non-zero status after the report has been written.
type ValidationFailedError struct {
	Failed int
	Total  int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%d of %d documents failed validation", e.Failed, e.Total)
}

// NoDocumentsError is returned when the given paths contain no documents.
type NoDocumentsError struct {
	Paths []string
}

func (e *NoDocumentsError) Error() string {
	return fmt.Sprintf("no documents found in %s", strings.Join(e.Paths, ", "))
}

// NoPathsError is returned when validate is run without a path.
type NoPathsError struct{}

func (e *NoPathsError) Error() string {
	return "no paths given: pass one or more document files or directories"
}

// InvalidSchemaExportError is returned when an exported JSON Schema fails to compile.
type InvalidSchemaExportError struct {
	Class   string
	Wrapped error
}

func (e *InvalidSchemaExportError) Error() string {
	return fmt.Sprintf("the JSON Schema for %s does not compile: %v", e.Class, e.Wrapped)
}

func (e *InvalidSchemaExportError) Unwrap() error {
	return e.Wrapped
}
