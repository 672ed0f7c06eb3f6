package runner

import (
	"fmt"
)

// ReadError is returned when a document file cannot be read.
type ReadError struct {
	Path    string
	Wrapped error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Wrapped)
}

func (e *ReadError) Unwrap() error {
	return e.Wrapped
}
