// Package schema holds the primitive validators and the structural checker that
// interprets declarative schemas against document trees.
package schema

import (
	"regexp"
	"slices"

	"github.com/andyballingall/curvecheck/internal/document"
)

var (
	dateRegex  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	tenorRegex = regexp.MustCompile(`^[0-9]+[DWMY]$`)
)

// Validator checks a single document value.
type Validator interface {
	Validate(v document.Value) error
}

// ValidatorFunc adapts a plain function to a Validator.
type ValidatorFunc func(v document.Value) error

func (f ValidatorFunc) Validate(v document.Value) error {
	return f(v)
}

// CheckDate accepts text in the YYYY-MM-DD form. Only the layout is checked, so
// 2021-02-30 is accepted.
func CheckDate(v document.Value) error {
	s, ok := v.Str()
	if !ok {
		return &TypeError{Value: v, Want: document.Text}
	}
	if !dateRegex.MatchString(s) {
		return &FormatError{Format: FormatDate, Value: s}
	}
	return nil
}

// CheckTenor accepts a single period such as 3M or 52W. Compound tenors are rejected.
func CheckTenor(v document.Value) error {
	s, ok := v.Str()
	if !ok {
		return &TypeError{Value: v, Want: document.Text}
	}
	if !tenorRegex.MatchString(s) {
		return &FormatError{Format: FormatTenor, Value: s}
	}
	return nil
}

// CheckIsInEnum requires v to be text exactly equal to one of e's values.
func CheckIsInEnum(v document.Value, e Enum) error {
	s, ok := v.Str()
	if !ok || !e.Contains(s) {
		return &EnumError{Value: v, Enum: e.Name, Allowed: e.Values}
	}
	return nil
}

// CheckInstance compares the kind tag of v with want. There is no coercion
// between kinds.
func CheckInstance(v document.Value, want document.Kind) error {
	if v.Kind() != want {
		return &TypeError{Value: v, Want: want}
	}
	return nil
}

type Date struct{}

func (Date) Validate(v document.Value) error { return CheckDate(v) }

type Tenor struct{}

func (Tenor) Validate(v document.Value) error { return CheckTenor(v) }

// Enum is a named closed set of case-sensitive text values.
type Enum struct {
	Name   string
	Values []string
}

func (e Enum) Validate(v document.Value) error { return CheckIsInEnum(v, e) }

func (e Enum) Contains(s string) bool {
	return slices.Contains(e.Values, s)
}

// Instance requires a value of the given kind.
type Instance struct {
	Kind document.Kind
}

func (i Instance) Validate(v document.Value) error { return CheckInstance(v, i.Kind) }

var (
	IsInteger = Instance{Kind: document.Integer}
	IsReal    = Instance{Kind: document.Real}
	IsBoolean = Instance{Kind: document.Boolean}
	IsText    = Instance{Kind: document.Text}
)
