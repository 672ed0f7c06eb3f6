package app

import (
	"fmt"

	"github.com/andyballingall/curvecheck/internal/config"
	"github.com/andyballingall/curvecheck/internal/curve"
)

// ClassAuto asks for each document's class to be worked out from its keys.
const ClassAuto = "auto"

// formatValue implements pflag.Value to provide a custom type name in help text
// and validation for output formats.
type formatValue string

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(v string) error {
	if v != string(config.OutputJSON) && v != string(config.OutputText) {
		return fmt.Errorf("must be 'text' or 'json'")
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string {
	return "<format>"
}

// classValue implements pflag.Value for a document class, or "auto".
type classValue string

func (c *classValue) String() string {
	return string(*c)
}

func (c *classValue) Set(v string) error {
	if v != ClassAuto {
		if _, err := curve.ParseClass(v); err != nil {
			return err
		}
	}
	*c = classValue(v)
	return nil
}

func (c *classValue) Type() string {
	return "<class>"
}

// Class returns the selected class, or "" for auto.
func (c *classValue) Class() curve.Class {
	if *c == ClassAuto {
		return ""
	}
	return curve.Class(*c)
}

// pathValue implements pflag.Value to provide a custom type name in help text.
type pathValue string

func (p *pathValue) String() string {
	return string(*p)
}

func (p *pathValue) Set(v string) error {
	*p = pathValue(v)
	return nil
}

func (p *pathValue) Type() string {
	return "<path>"
}
