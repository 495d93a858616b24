// Package document assembles a CV record, its theme and its section order into
// a ResolvedDocument, the one value every renderer consumes.
package document

import (
	"strconv"

	"github.com/jonathan/cv-composer/internal/blocks"
	"github.com/jonathan/cv-composer/internal/contacts"
	"github.com/jonathan/cv-composer/internal/formatting"
	"github.com/jonathan/cv-composer/internal/sections"
	"github.com/jonathan/cv-composer/internal/theme"
	"github.com/jonathan/cv-composer/internal/types"
)

// Header is the identity block at the top of the document.
type Header struct {
	Name      string               `json:"name"`
	Headline  string               `json:"headline,omitempty"`
	Summary   *formatting.RichText `json:"summary,omitempty"`
	Photo     *PhotoDescriptor     `json:"photo,omitempty"`
	Primary   []contacts.Entry     `json:"primaryContacts"`
	Secondary []contacts.Entry     `json:"secondaryContacts"`
	Metrics   []blocks.Node        `json:"metrics,omitempty"`
}

// ResolvedDocument is the fully formatted, renderer-agnostic document.
type ResolvedDocument struct {
	Header   Header         `json:"header"`
	Sections []blocks.Block `json:"sections"`
	Theme    theme.Resolved `json:"theme"`
}

// Assemble builds the document for cv. When themeOverride or sectionOrder is
// non-nil it replaces the value stored on the record. Assemble does not modify
// cv and gives identical output for identical input.
func Assemble(cv *types.CVRecord, themeOverride, sectionOrder []byte) *ResolvedDocument {
	rec := cv.Normalized()
	if themeOverride != nil {
		rec.ThemeData = themeOverride
	}
	if sectionOrder != nil {
		rec.SectionOrder = sectionOrder
	}

	resolved := theme.Resolve(rec.PresetID(), theme.ParseOverride(rec.ThemeData))
	order := sections.Resolve(rec)
	contactList := contacts.Aggregate(rec)

	built := make([]blocks.Block, 0, len(order))
	visible := 0
	for _, entry := range order {
		b := blocks.Build(blocks.Input{CV: rec, Theme: resolved, Entry: entry, Index: visible})
		if b == nil {
			continue
		}
		built = append(built, *b)
		visible++
	}

	return &ResolvedDocument{
		Header: Header{
			Name:      rec.DisplayName(),
			Headline:  rec.DisplayHeadline(),
			Summary:   formatting.ParseRichText(rec.Summary),
			Photo:     NewPhotoDescriptor(types.FirstNonEmpty(rec.ProfileImage), resolved),
			Primary:   contactList.Primary,
			Secondary: contactList.Secondary,
			Metrics:   metrics(rec),
		},
		Sections: built,
		Theme:    resolved,
	}
}

func metrics(cv *types.CVRecord) []blocks.Node {
	var out []blocks.Node
	add := func(label string, v *types.FlexInt) {
		if v == nil {
			return
		}
		out = append(out, blocks.Node{Kind: blocks.NodeKeyValue, Label: label, Value: strconv.Itoa(v.Int())})
	}
	add("Citations", cv.TotalCitations)
	add("h-index", cv.HIndex)
	add("i10-index", cv.I10Index)
	return out
}

// SectionKinds lists the kinds of the rendered sections in order.
func (d *ResolvedDocument) SectionKinds() []blocks.Kind {
	out := make([]blocks.Kind, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.Kind)
	}
	return out
}
