package validator

import (
	"fmt"
)

type InvalidJSONError struct {
	Wrapped error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Wrapped)
}

func (e *InvalidJSONError) Unwrap() error {
	return e.Wrapped
}
