// Package loader reads CV records and override files from disk.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/cv-composer/internal/types"
)

// LoadError is returned when an input file cannot be read or decoded.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadCVRecord reads a CV record from a .json, .yaml or .yml file.
func LoadCVRecord(path string) (*types.CVRecord, error) {
	data, err := LoadRaw(path)
	if err != nil {
		return nil, err
	}
	return DecodeCVRecord(data)
}

// LoadRaw reads path and returns its content as JSON. YAML files are
// converted so every consumer sees the same representation.
func LoadRaw(path string) ([]byte, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Message: "path is empty"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		converted, err := YAMLToJSON(data)
		if err != nil {
			return nil, &LoadError{Path: path, Message: "invalid YAML", Cause: err}
		}
		return converted, nil
	case ".json", "":
		if !json.Valid(data) {
			return nil, &LoadError{Path: path, Message: "invalid JSON"}
		}
		return data, nil
	default:
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("unsupported file extension %q", filepath.Ext(path))}
	}
}

// DecodeCVRecord decodes a JSON CV record.
func DecodeCVRecord(data []byte) (*types.CVRecord, error) {
	var cv types.CVRecord
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, &LoadError{Message: "failed to decode CV record", Cause: err}
	}
	return &cv, nil
}

// YAMLToJSON converts a YAML document into JSON. Mapping keys are
// stringified since JSON objects only have string keys.
func YAMLToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if v == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalize(v)); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	}
	return v
}
