package curve

import (
	"fmt"
	"strings"
)

// Kind names reported by schema.KindOf and schema.Chain for the errors of this package.
const (
	KindConfiguration = "ConfigurationError"
	KindRateIndex     = "RateIndexError"
	KindRateHelper    = "RateHelperConfigurationError"
	KindMarket        = "MarketConfigurationError"
	KindUnknownClass  = "UnknownDocumentClassError"
)

// ConfigurationError is the base kind of every failure reported by a Catalog.
// It carries a summary of the stage that failed and the error that caused it.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Summary returns the message without the cause.
func (e *ConfigurationError) Summary() string { return e.Message }

func (e *ConfigurationError) Unwrap() error { return e.Cause }

func (e *ConfigurationError) Kind() string { return KindConfiguration }

// RateIndexError reports an invalid index document.
type RateIndexError struct {
	ConfigurationError
}

func (e *RateIndexError) Kind() string { return KindRateIndex }

// As lets errors.As find the embedded ConfigurationError.
func (e *RateIndexError) As(target any) bool {
	return asConfigurationError(&e.ConfigurationError, target)
}

// RateHelperConfigurationError reports an invalid rate helper or helperConfig.
type RateHelperConfigurationError struct {
	ConfigurationError
}

func (e *RateHelperConfigurationError) Kind() string { return KindRateHelper }

// As lets errors.As find the embedded ConfigurationError.
func (e *RateHelperConfigurationError) As(target any) bool {
	return asConfigurationError(&e.ConfigurationError, target)
}

// MarketConfigurationError reports an invalid marketConfig or price.
type MarketConfigurationError struct {
	ConfigurationError
}

func (e *MarketConfigurationError) Kind() string { return KindMarket }

// As lets errors.As find the embedded ConfigurationError.
func (e *MarketConfigurationError) As(target any) bool {
	return asConfigurationError(&e.ConfigurationError, target)
}

func asConfigurationError(e *ConfigurationError, target any) bool {
	if t, ok := target.(**ConfigurationError); ok {
		*t = e
		return true
	}
	return false
}

func configurationError(msg string, cause error) error {
	return &ConfigurationError{Message: msg, Cause: cause}
}

func rateIndexError(msg string, cause error) error {
	return &RateIndexError{ConfigurationError{Message: msg, Cause: cause}}
}

func rateHelperError(msg string, cause error) error {
	return &RateHelperConfigurationError{ConfigurationError{Message: msg, Cause: cause}}
}

func marketError(msg string, cause error) error {
	return &MarketConfigurationError{ConfigurationError{Message: msg, Cause: cause}}
}

// UnknownDocumentClassError is returned by Classify when no discriminator key is present.
type UnknownDocumentClassError struct {
	Keys []string
}

func (e *UnknownDocumentClassError) Error() string {
	return fmt.Sprintf("cannot tell what kind of document this is: expected one of the keys %s, found [%s]",
		strings.Join(classKeys(), ", "), strings.Join(e.Keys, ", "))
}

func (e *UnknownDocumentClassError) Kind() string { return KindUnknownClass }

type UnknownClassNameError struct {
	Name string
}

func (e *UnknownClassNameError) Error() string {
	return fmt.Sprintf("%q is not a document class, expected one of %s", e.Name, strings.Join(classNames(), ", "))
}
