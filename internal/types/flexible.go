//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes from a JSON number or a numeric string. Anything else decodes
// to zero instead of failing the whole record.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(int(n))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexInt(int(v))
		}
	}
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int { return int(f) }

// FlexString decodes from a JSON string, number or bool, keeping the literal text.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	*f = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if data[0] == '{' || data[0] == '[' {
		return nil
	}
	*f = FlexString(data)
	return nil
}

// String returns the trimmed text.
func (f FlexString) String() string { return strings.TrimSpace(string(f)) }

// StringList decodes from either a single JSON string or an array of strings.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		var items []FlexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		for _, item := range items {
			if s := item.String(); s != "" {
				*l = append(*l, s)
			}
		}
		return nil
	}

	var single FlexString
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if s := single.String(); s != "" {
		*l = StringList{s}
	}
	return nil
}

// Join concatenates the list with sep.
func (l StringList) Join(sep string) string {
	return strings.Join(l, sep)
}

// Split splits every element on commas, returning trimmed non-empty parts.
// It is used for tag-like lists that users often type as "Go, Rust".
func (l StringList) Split() []string {
	var out []string
	for _, item := range l {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
