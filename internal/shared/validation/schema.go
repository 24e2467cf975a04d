// Package validation checks request bodies against JSON schemas before they
// are decoded into typed structs.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformed is returned when the body is not JSON at all.
var ErrMalformed = errors.New("malformed JSON body")

// FieldError is one schema violation.
type FieldError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// Error carries every violation found in a body.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Issue)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Schema is a compiled JSON schema.
type Schema struct {
	schema *gojsonschema.Schema
}

// MustCompile compiles a schema literal and panics if it is invalid.
func MustCompile(schemaJSON string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("validation: compile schema: %v", err))
	}
	return &Schema{schema: s}
}

// Decode validates raw and, when it conforms, unmarshals it into dst.
// An empty body is treated as an empty object.
func (s *Schema) Decode(raw []byte, dst any) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		raw = []byte("{}")
	}
	if !json.Valid(raw) {
		return ErrMalformed
	}
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !result.Valid() {
		fields := make([]FieldError, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fields = append(fields, FieldError{Field: fieldName(desc), Issue: desc.Description()})
		}
		return &Error{Fields: fields}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// fieldName reports the offending property. Depending on the library version
// a missing required property is reported against its parent, so the property
// name is appended from the error details when absent.
func fieldName(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if desc.Type() != "required" {
		return field
	}
	prop, ok := desc.Details()["property"].(string)
	if !ok || field == prop || strings.HasSuffix(field, "."+prop) {
		return field
	}
	if field == "(root)" || field == "" {
		return prop
	}
	return field + "." + prop
}
