package config

import (
	"fmt"
)

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("configuration file %s does not exist", e.Path)
}

type InvalidYAMLError struct {
	Path    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid curvecheck configuration: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s is missing required property: %s", ConfigFile, e.Property)
}

type InvalidOutputFormatError struct {
	Value string
}

func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("%s property output has invalid value '%s'. Supported formats are: %v",
		ConfigFile, e.Value, OutputFormats)
}

type InvalidWorkersError struct {
	Value int
}

func (e *InvalidWorkersError) Error() string {
	return fmt.Sprintf("%s property workers must be at least 1, got %d", ConfigFile, e.Value)
}

type InvalidExtensionError struct {
	Value string
}

func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("%s property extensions has invalid value '%s'. Extensions look like '.json'",
		ConfigFile, e.Value)
}
