// Package validator compiles exported JSON Schemas and validates documents against them.
package validator

// Draft represents a JSON Schema draft version.
type Draft string

const (
	// Draft2019_09 represents JSON Schema Draft 2019-09.
	Draft2019_09 Draft = "https://json-schema.org/draft/2019-09/schema"
	// Draft2020_12 represents JSON Schema Draft 2020-12. Exported schemas use this draft.
	Draft2020_12 Draft = "https://json-schema.org/draft/2020-12/schema"
)

// A JSONDocument is a parsed JSON document in the form produced by UnmarshalJSON.
type JSONDocument interface{}

// A JSONSchema is a parsed JSON document representing a JSON Schema.
// A Compiler must compile it before use, which identifies any JSON Schema issues.
type JSONSchema JSONDocument

// Validator represents something which can be used to validate a JSON document.
type Validator interface {
	// Validate validates a JSON document.
	Validate(v JSONDocument) error
}

// Compiler defines a JSON Schema compiler. Schemas referenced by $ref from another
// resource must be added before the referencing schema is compiled.
type Compiler interface {
	// AddSchema registers a JSONSchema with the compiler under the given URL.
	AddSchema(id string, data JSONSchema) error

	// Compile creates a Validator from the JSONSchema previously added with the given ID.
	// An error is produced if the JSONSchema cannot be compiled.
	Compile(id string) (Validator, error)

	// SupportedSchemaVersions returns the drafts the compiler understands.
	SupportedSchemaVersions() []Draft

	// Clear resets the compiler state, removing all registered schemas.
	Clear()
}
