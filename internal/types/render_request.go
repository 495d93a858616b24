//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// RenderRequest is the body accepted by the render endpoints. ThemeData and
// SectionOrder, when present, replace the values stored on the CV.
type RenderRequest struct {
	CV           *CVRecord       `json:"cv" validate:"required"`
	ThemeID      string          `json:"themeId,omitempty" validate:"omitempty,max=64"`
	ThemeData    json.RawMessage `json:"themeData,omitempty"`
	SectionOrder json.RawMessage `json:"sectionOrder,omitempty"`
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
