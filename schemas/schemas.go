// Package schemas holds the JSON Schemas shipped with the binary.
package schemas

import _ "embed"

// CVRecordPath is the repository-relative path of the CV record schema.
const CVRecordPath = "schemas/cv_record.schema.json"

// CVRecord is the JSON Schema for raw CV records.
//
//go:embed cv_record.schema.json
var CVRecord string
