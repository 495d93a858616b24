// Package schemas validates raw JSON input against JSON Schemas before it is decoded.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	cvschema "github.com/jonathan/cv-composer/schemas"
)

// ResolveSchemaPath returns the absolute path of a schema file, looking in the
// working directory and then up to two parents so commands and tests resolve
// repository paths alike. It returns "" when no candidate exists.
func ResolveSchemaPath(path string) string {
	for _, prefix := range []string{"", "..", filepath.Join("..", "..")} {
		candidate := path
		if prefix != "" {
			if filepath.IsAbs(path) {
				break
			}
			candidate = filepath.Join(prefix, path)
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && !info.IsDir() {
			return abs
		}
	}
	return ""
}

// FieldError is one schema violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema or the document could not be loaded, as
// opposed to the document violating the schema.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateCVRecord validates raw CV record JSON against the embedded CV
// record schema.
func ValidateCVRecord(data []byte) error {
	return validate(gojsonschema.NewStringLoader(cvschema.CVRecord), cvschema.CVRecordPath, data)
}

// ValidateFile validates raw JSON against the schema file at schemaPath,
// resolved with ResolveSchemaPath. Relative $refs resolve against the schema's
// directory.
func ValidateFile(schemaPath string, data []byte) error {
	abs := ResolveSchemaPath(schemaPath)
	if abs == "" {
		return &SchemaLoadError{Path: schemaPath, Message: "schema file not found"}
	}
	return validate(gojsonschema.NewReferenceLoader("file://"+filepath.ToSlash(abs)), abs, data)
}

func validate(schema gojsonschema.JSONLoader, source string, data []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaLoadError{Path: source, Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
