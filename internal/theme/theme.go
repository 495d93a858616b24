// Package theme resolves a named preset plus a partial user override into a fully
// populated theme. Resolution never fails: unknown presets fall back to the
// default preset and malformed overrides are ignored.
package theme

import "reflect"

// DefaultPresetID is used whenever a requested preset is not in the catalogue.
const DefaultPresetID = "modern-blue"

// BaseFont is the computed default for heading and body fonts.
const BaseFont = "Helvetica"

// Colors holds the ten named color roles.
type Colors struct {
	Primary          string `json:"primary"`
	Secondary        string `json:"secondary"`
	Accent           string `json:"accent"`
	Text             string `json:"text"`
	TextLight        string `json:"textLight"`
	Background       string `json:"background"`
	HeaderBackground string `json:"headerBackground"`
	HeaderText       string `json:"headerText"`
	Border           string `json:"border"`
	Link             string `json:"link"`
}

// Layout holds spacing values in CSS pixels.
type Layout struct {
	SectionSpacing int `json:"sectionSpacing"`
	ItemSpacing    int `json:"itemSpacing"`
	PagePadding    int `json:"pagePadding"`
	BorderRadius   int `json:"borderRadius"`
}

// Typography holds font, size and case settings. Sizes are CSS pixels.
type Typography struct {
	HeadingFont      string `json:"headingFont"`
	BodyFont         string `json:"bodyFont"`
	BaseFontSize     string `json:"baseFontSize"`
	HeadingSize      int    `json:"headingSize"`
	BodySize         int    `json:"bodySize"`
	SmallSize        int    `json:"smallSize"`
	LineHeight       string `json:"lineHeight"`
	HeadingTransform string `json:"headingTransform"`
	LetterSpacing    string `json:"letterSpacing"`
	HeadingWeight    string `json:"headingWeight"`
}

// Style holds visual-mode flags.
type Style struct {
	SectionDividers bool   `json:"sectionDividers"`
	SkillPills      bool   `json:"skillPills"`
	HeadingStyle    string `json:"headingStyle"`
	DateFormat      string `json:"dateFormat"`
	HeaderLayout    string `json:"headerLayout"`
	ShowIcons       bool   `json:"showIcons"`
	CompactMode     bool   `json:"compactMode"`
	ColoredHeadings bool   `json:"coloredHeadings"`
	BulletStyle     string `json:"bulletStyle"`
}

// Photo holds the flat photo display fields.
type Photo struct {
	ShowPhoto        bool   `json:"showPhoto"`
	PhotoSize        string `json:"photoSize"`
	PhotoAspect      string `json:"photoAspect"`
	PhotoBorderWidth int    `json:"photoBorderWidth"`
	PhotoBorderColor string `json:"photoBorderColor"`
	PhotoShadow      bool   `json:"photoShadow"`
	PhotoGrayscale   bool   `json:"photoGrayscale"`
}

// Resolved is a theme with every field present.
type Resolved struct {
	PresetID   string     `json:"presetId"`
	PresetName string     `json:"presetName"`
	Colors     Colors     `json:"colors"`
	Layout     Layout     `json:"layout"`
	Typography Typography `json:"typography"`
	Style      Style      `json:"style"`
	Photo
}

// ColorsOverride mirrors Colors with optional fields.
type ColorsOverride struct {
	Primary          *string `json:"primary,omitempty"`
	Secondary        *string `json:"secondary,omitempty"`
	Accent           *string `json:"accent,omitempty"`
	Text             *string `json:"text,omitempty"`
	TextLight        *string `json:"textLight,omitempty"`
	Background       *string `json:"background,omitempty"`
	HeaderBackground *string `json:"headerBackground,omitempty"`
	HeaderText       *string `json:"headerText,omitempty"`
	Border           *string `json:"border,omitempty"`
	Link             *string `json:"link,omitempty"`
}

// LayoutOverride mirrors Layout with optional fields.
type LayoutOverride struct {
	SectionSpacing *int `json:"sectionSpacing,omitempty"`
	ItemSpacing    *int `json:"itemSpacing,omitempty"`
	PagePadding    *int `json:"pagePadding,omitempty"`
	BorderRadius   *int `json:"borderRadius,omitempty"`
}

// TypographyOverride mirrors Typography with optional fields.
type TypographyOverride struct {
	HeadingFont      *string `json:"headingFont,omitempty"`
	BodyFont         *string `json:"bodyFont,omitempty"`
	BaseFontSize     *string `json:"baseFontSize,omitempty"`
	HeadingSize      *int    `json:"headingSize,omitempty"`
	BodySize         *int    `json:"bodySize,omitempty"`
	SmallSize        *int    `json:"smallSize,omitempty"`
	LineHeight       *string `json:"lineHeight,omitempty"`
	HeadingTransform *string `json:"headingTransform,omitempty"`
	LetterSpacing    *string `json:"letterSpacing,omitempty"`
	HeadingWeight    *string `json:"headingWeight,omitempty"`
}

// StyleOverride mirrors Style with optional fields.
type StyleOverride struct {
	SectionDividers *bool   `json:"sectionDividers,omitempty"`
	SkillPills      *bool   `json:"skillPills,omitempty"`
	HeadingStyle    *string `json:"headingStyle,omitempty"`
	DateFormat      *string `json:"dateFormat,omitempty"`
	HeaderLayout    *string `json:"headerLayout,omitempty"`
	ShowIcons       *bool   `json:"showIcons,omitempty"`
	CompactMode     *bool   `json:"compactMode,omitempty"`
	ColoredHeadings *bool   `json:"coloredHeadings,omitempty"`
	BulletStyle     *string `json:"bulletStyle,omitempty"`
}

// PhotoOverride mirrors Photo with optional fields.
type PhotoOverride struct {
	ShowPhoto        *bool   `json:"showPhoto,omitempty"`
	PhotoSize        *string `json:"photoSize,omitempty"`
	PhotoAspect      *string `json:"photoAspect,omitempty"`
	PhotoBorderWidth *int    `json:"photoBorderWidth,omitempty"`
	PhotoBorderColor *string `json:"photoBorderColor,omitempty"`
	PhotoShadow      *bool   `json:"photoShadow,omitempty"`
	PhotoGrayscale   *bool   `json:"photoGrayscale,omitempty"`
}

// Override is a partial theme. A nil field means "absent"; explicit false and
// zero values are kept.
type Override struct {
	Colors     *ColorsOverride     `json:"colors,omitempty"`
	Layout     *LayoutOverride     `json:"layout,omitempty"`
	Typography *TypographyOverride `json:"typography,omitempty"`
	Style      *StyleOverride      `json:"style,omitempty"`
	PhotoOverride
}

// Preset is a catalogue entry. Values only carries what differs from the base
// defaults.
type Preset struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values Override `json:"values"`
}

// Clone returns a copy of o that shares no pointers with it.
func (o Override) Clone() Override {
	out := o
	out.Colors = cloneFields(o.Colors)
	out.Layout = cloneFields(o.Layout)
	out.Typography = cloneFields(o.Typography)
	out.Style = cloneFields(o.Style)
	out.PhotoOverride = *cloneFields(&o.PhotoOverride)
	return out
}

// cloneFields copies a struct of optional fields, giving every set pointer a
// fresh target.
func cloneFields[T any](src *T) *T {
	if src == nil {
		return nil
	}
	dst := new(T)
	sv, dv := reflect.ValueOf(src).Elem(), reflect.ValueOf(dst).Elem()
	for i := 0; i < sv.NumField(); i++ {
		f := sv.Field(i)
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			c := reflect.New(f.Elem().Type())
			c.Elem().Set(f.Elem())
			dv.Field(i).Set(c)
			continue
		}
		dv.Field(i).Set(f)
	}
	return dst
}

func (o *Override) colors() ColorsOverride {
	if o == nil || o.Colors == nil {
		return ColorsOverride{}
	}
	return *o.Colors
}

func (o *Override) layout() LayoutOverride {
	if o == nil || o.Layout == nil {
		return LayoutOverride{}
	}
	return *o.Layout
}

func (o *Override) typography() TypographyOverride {
	if o == nil || o.Typography == nil {
		return TypographyOverride{}
	}
	return *o.Typography
}

func (o *Override) style() StyleOverride {
	if o == nil || o.Style == nil {
		return StyleOverride{}
	}
	return *o.Style
}

func (o *Override) photo() PhotoOverride {
	if o == nil {
		return PhotoOverride{}
	}
	return o.PhotoOverride
}
