// Package sections decides which sections a CV renders and in what order.
package sections

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/jonathan/cv-composer/internal/types"
)

// Built-in section ids.
const (
	Experience     = "experience"
	Education      = "education"
	Publications   = "publications"
	Skills         = "skills"
	Projects       = "projects"
	Certifications = "certifications"
	Awards         = "awards"
	Languages      = "languages"
	References     = "references"
)

// BuiltIn lists the built-in sections in canonical order.
var BuiltIn = []string{
	Experience, Education, Publications, Skills, Projects,
	Certifications, Awards, Languages, References,
}

// Entry is one row of the section order.
type Entry struct {
	ID       string        `json:"id"`
	Title    string        `json:"title,omitempty"`
	Enabled  *bool         `json:"enabled,omitempty"`
	Order    types.FlexInt `json:"order"`
	IsCustom bool          `json:"isCustom,omitempty"`
}

// IsEnabled treats a missing enabled flag as enabled.
func (e Entry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// ParseOrder decodes a stored section order. raw may be a JSON array or a JSON
// string containing one. Malformed input returns nil.
func ParseOrder(raw []byte) []Entry {
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
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

// Default synthesizes the order used when none is stored: built-ins first, then
// custom sections in collection order.
func Default(cv *types.CVRecord) []Entry {
	out := make([]Entry, 0, len(BuiltIn)+len(cv.CustomSections))
	for i, id := range BuiltIn {
		out = append(out, Entry{ID: id, Enabled: boolPtr(true), Order: types.FlexInt(i)})
	}
	for i, cs := range cv.CustomSections {
		out = append(out, Entry{
			ID:       cs.ID,
			Title:    cs.Title,
			Enabled:  boolPtr(true),
			Order:    types.FlexInt(len(BuiltIn) + i),
			IsCustom: true,
		})
	}
	return out
}

// Resolve returns the enabled sections of cv sorted by order.
func Resolve(cv *types.CVRecord) []Entry {
	if cv == nil {
		cv = &types.CVRecord{}
	}

	candidates := ParseOrder(cv.SectionOrder)
	if len(candidates) == 0 {
		candidates = Default(cv)
	} else {
		candidates = relink(candidates, cv.CustomSections)
	}

	out := make([]Entry, 0, len(candidates))
	for _, e := range candidates {
		if e.IsEnabled() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// relink syncs custom entries with the live custom sections, matching by id
// first and then by exact title. Unmatched entries keep their stored title.
func relink(entries []Entry, custom []types.CustomSection) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	for i := range out {
		if !out[i].IsCustom {
			continue
		}
		if cs, ok := findCustom(out[i], custom); ok {
			out[i].ID = cs.ID
			out[i].Title = cs.Title
			out[i].IsCustom = true
		}
	}
	return out
}

func findCustom(e Entry, custom []types.CustomSection) (types.CustomSection, bool) {
	if e.ID != "" {
		for _, cs := range custom {
			if cs.ID == e.ID {
				return cs, true
			}
		}
	}
	if e.Title != "" {
		for _, cs := range custom {
			if cs.Title == e.Title {
				return cs, true
			}
		}
	}
	return types.CustomSection{}, false
}

func boolPtr(b bool) *bool { return &b }
