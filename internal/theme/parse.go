package theme

import (
	"bytes"
	"encoding/json"
)

// ParseOverride decodes a stored override. raw may be a JSON object or a JSON
// string whose content is a JSON object. Anything else returns nil, which
// Resolve treats as "use the preset verbatim".
func ParseOverride(raw []byte) *Override {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil
		}
		raw = bytes.TrimSpace([]byte(inner))
	}

	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var o Override
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil
	}
	return &o
}
