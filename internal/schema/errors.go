package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andyballingall/curvecheck/internal/document"
)

// Kind names reported by KindOf and Chain for the leaf failures of this package.
const (
	KindFormat       = "FormatError"
	KindEnum         = "EnumError"
	KindType         = "TypeError"
	KindMissingField = "MissingFieldError"
	KindUnknownField = "UnknownFieldError"
)

// maxValueLen bounds how much of an offending value is quoted in a message.
const maxValueLen = 60

// Format names used by FormatError.
const (
	FormatDate  = "date"
	FormatTenor = "tenor"
)

type FormatError struct {
	Format string
	Value  string
}

func (e *FormatError) Error() string {
	switch e.Format {
	case FormatTenor:
		return fmt.Sprintf("the tenor %q is invalid, expected digits followed by one of D, W, M or Y", e.Value)
	case FormatDate:
		return fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD", e.Value)
	}
	return fmt.Sprintf("%q is not a valid %s", e.Value, e.Format)
}

func (e *FormatError) Kind() string { return KindFormat }

type EnumError struct {
	Value   document.Value
	Enum    string
	Allowed []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s is not a valid %s, expected one of [%s]",
		abbreviate(e.Value), e.Enum, strings.Join(e.Allowed, ", "))
}

func (e *EnumError) Kind() string { return KindEnum }

type TypeError struct {
	Value document.Value
	Want  document.Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("the value %s is not an instance of %s (got %s)", abbreviate(e.Value), e.Want, e.Value.Kind())
}

func (e *TypeError) Kind() string { return KindType }

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("the required key %q is missing", e.Field)
}

func (e *MissingFieldError) Kind() string { return KindMissingField }

type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("the key %q is not allowed here", e.Field)
}

func (e *UnknownFieldError) Kind() string { return KindUnknownField }

// Link is one element of a validation error's cause chain.
type Link struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type kinded interface {
	Kind() string
}

// summarizer is implemented by wrapping errors whose Error() also renders their cause.
type summarizer interface {
	Summary() string
}

// KindOf returns the kind name of err itself, without looking at its causes.
// Errors that do not name their kind are reported as "error".
func KindOf(err error) string {
	if k, ok := err.(kinded); ok {
		return k.Kind()
	}
	return "error"
}

// Chain returns the cause chain of err from the outermost error to the innermost.
func Chain(err error) []Link {
	var links []Link
	for err != nil {
		msg := err.Error()
		if s, ok := err.(summarizer); ok {
			msg = s.Summary()
		}
		links = append(links, Link{Kind: KindOf(err), Message: msg})
		err = errors.Unwrap(err)
	}
	return links
}

// Root returns the innermost error of err's cause chain.
func Root(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

func abbreviate(v document.Value) string {
	s := v.String()
	if len(s) > maxValueLen {
		return s[:maxValueLen-3] + "..."
	}
	return s
}
