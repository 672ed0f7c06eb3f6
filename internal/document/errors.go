package document

import (
	"fmt"
)

type InvalidJSONError struct {
	Name string
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("%s is not valid JSON", e.Name)
}

type InvalidYAMLError struct {
	Name    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Name, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

// ExcessiveAliasingError reports a document whose aliases expand to more nodes
// than its size allows.
type ExcessiveAliasingError struct {
	Limit int
}

func (e *ExcessiveAliasingError) Error() string {
	return fmt.Sprintf("aliases expand to more than %d nodes", e.Limit)
}

type EmptyDocumentError struct {
	Name string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("%s is empty", e.Name)
}

type DuplicateKeyError struct {
	Name string
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s contains the key %q more than once in the same mapping", e.Name, e.Key)
}

type InvalidNumberError struct {
	Name    string
	Lexeme  string
	Wrapped error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s contains the number %s which cannot be represented: %v", e.Name, e.Lexeme, e.Wrapped)
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Wrapped
}

type NonScalarKeyError struct {
	Name string
	Line int
}

func (e *NonScalarKeyError) Error() string {
	return fmt.Sprintf("%s has a non-scalar mapping key at line %d", e.Name, e.Line)
}

type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("values of type %T cannot be part of a configuration document", e.Value)
}

type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s is not a .json, .yaml or .yml file", e.Name)
}

type NonFiniteNumberError struct {
	Value float64
}

func (e *NonFiniteNumberError) Error() string {
	return fmt.Sprintf("%v cannot be encoded as JSON", e.Value)
}
