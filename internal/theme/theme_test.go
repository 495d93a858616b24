package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NilEqualsEmpty(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.ID, func(t *testing.T) {
			assert.Equal(t, Resolve(p.ID, nil), Resolve(p.ID, &Override{}))
		})
	}
}

func TestResolve_UnknownPresetFallsBack(t *testing.T) {
	got := Resolve("does-not-exist", nil)
	assert.Equal(t, DefaultPresetID, got.PresetID)
	assert.Equal(t, Resolve(DefaultPresetID, nil), got)
}

func TestResolve_SingleColorOverride(t *testing.T) {
	base := Resolve("modern-blue", nil)
	got := Resolve("modern-blue", &Override{Colors: &ColorsOverride{Primary: ptr("#111111")}})

	assert.Equal(t, "#111111", got.Colors.Primary)

	expected := base.Colors
	expected.Primary = "#111111"
	assert.Equal(t, expected, got.Colors)
	assert.Equal(t, base.Layout, got.Layout)
	assert.Equal(t, base.Typography, got.Typography)
	assert.Equal(t, base.Style, got.Style)
	assert.Equal(t, base.Photo, got.Photo)
}

func TestResolve_ExplicitFalseAndZeroPreserved(t *testing.T) {
	require.True(t, Resolve("modern-blue", nil).Style.SkillPills)

	got := Resolve("modern-blue", &Override{
		Style:         &StyleOverride{SkillPills: ptr(false)},
		Layout:        &LayoutOverride{PagePadding: ptr(0)},
		PhotoOverride: PhotoOverride{ShowPhoto: ptr(false), PhotoBorderWidth: ptr(0)},
	})

	assert.False(t, got.Style.SkillPills)
	assert.Equal(t, 0, got.Layout.PagePadding)
	assert.False(t, got.ShowPhoto)
	assert.Equal(t, 0, got.PhotoBorderWidth)
}

func TestResolve_ComputedDefaults(t *testing.T) {
	got := Resolve("modern-blue", nil)

	assert.Equal(t, BaseFont, got.Typography.HeadingFont)
	assert.Equal(t, BaseFont, got.Typography.BodyFont)
	assert.Equal(t, "14px", got.Typography.BaseFontSize)
	assert.Equal(t, "1.5", got.Typography.LineHeight)
	assert.Equal(t, "uppercase", got.Typography.HeadingTransform)
	assert.Equal(t, "0.5px", got.Typography.LetterSpacing)
	assert.True(t, got.Style.SectionDividers)
	assert.Equal(t, "bold", got.Style.HeadingStyle)
	assert.Equal(t, "short", got.Style.DateFormat)
	assert.True(t, got.ShowPhoto)
	assert.Equal(t, "medium", got.PhotoSize)
	assert.Equal(t, "square", got.PhotoAspect)
	assert.Equal(t, 2, got.PhotoBorderWidth)
	assert.Equal(t, "#ffffff", got.PhotoBorderColor)
	assert.False(t, got.PhotoShadow)
	assert.False(t, got.PhotoGrayscale)
}

func TestResolve_BaseFontSizeFollowsBodySize(t *testing.T) {
	got := Resolve("modern-blue", &Override{Typography: &TypographyOverride{BodySize: ptr(16)}})
	assert.Equal(t, "16px", got.Typography.BaseFontSize)

	academic := Resolve("academic", nil)
	assert.Equal(t, "13px", academic.Typography.BaseFontSize)
}

func TestResolve_InvalidEnumFallsThrough(t *testing.T) {
	got := Resolve("academic", &Override{
		Style:         &StyleOverride{DateFormat: ptr("weird")},
		PhotoOverride: PhotoOverride{PhotoSize: ptr("gigantic")},
	})
	assert.Equal(t, "numeric", got.Style.DateFormat)
	assert.Equal(t, "small", got.PhotoSize)
}

func TestExplain_Provenance(t *testing.T) {
	_, trace := Explain("classic", &Override{Colors: &ColorsOverride{Accent: ptr("#abcdef")}})

	assert.Equal(t, SourceOverride, trace["colors.accent"])
	assert.Equal(t, SourcePreset, trace["colors.primary"])
	assert.Equal(t, SourceDefault, trace["colors.text"])
	assert.Equal(t, SourcePreset, trace["showPhoto"])
	assert.Equal(t, SourceDefault, trace["typography.baseFontSize"])
}

func TestParseOverride(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantNil bool
	}{
		{name: "empty", raw: "", wantNil: true},
		{name: "null", raw: "null", wantNil: true},
		{name: "array", raw: `[1,2]`, wantNil: true},
		{name: "number", raw: `42`, wantNil: true},
		{name: "unparsable", raw: `{"colors":`, wantNil: true},
		{name: "wrong field type", raw: `{"style":{"skillPills":"yes"}}`, wantNil: true},
		{name: "serialized garbage", raw: `"not json"`, wantNil: true},
		{name: "object", raw: `{"colors":{"primary":"#111111"}}`},
		{name: "serialized object", raw: `"{\"style\":{\"skillPills\":false}}"`},
		{name: "empty object", raw: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOverride([]byte(tt.raw))
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
		})
	}
}

func TestParseOverride_FlatPhotoFields(t *testing.T) {
	o := ParseOverride([]byte(`{"showPhoto":false,"photoSize":"xlarge","style":{"skillPills":false}}`))
	require.NotNil(t, o)

	got := Resolve("modern-blue", o)
	assert.False(t, got.ShowPhoto)
	assert.Equal(t, "xlarge", got.PhotoSize)
	assert.False(t, got.Style.SkillPills)
}

func TestPresets_Catalogue(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 8)

	_, ok := Lookup(DefaultPresetID)
	assert.True(t, ok)

	for i := 1; i < len(presets); i++ {
		assert.Less(t, presets[i-1].ID, presets[i].ID)
	}
}

func TestLookup_ReturnsIndependentCopies(t *testing.T) {
	first, ok := Lookup(DefaultPresetID)
	require.True(t, ok)
	require.NotNil(t, first.Values.Colors)
	require.NotNil(t, first.Values.Colors.Primary)
	want := *first.Values.Colors.Primary

	*first.Values.Colors.Primary = "#000000"
	first.Values.Colors.Secondary = nil

	second, _ := Lookup(DefaultPresetID)
	assert.Equal(t, want, *second.Values.Colors.Primary)
	assert.NotNil(t, second.Values.Colors.Secondary)
	assert.Equal(t, want, Resolve(DefaultPresetID, nil).Colors.Primary)

	for _, p := range Presets() {
		if p.ID == DefaultPresetID {
			*p.Values.Colors.Primary = "#111111"
		}
	}
	third, _ := Lookup(DefaultPresetID)
	assert.Equal(t, want, *third.Values.Colors.Primary)
}

func TestOverrideClone_KeepsPhotoFields(t *testing.T) {
	width := 3
	o := Override{PhotoOverride: PhotoOverride{PhotoBorderWidth: &width}}
	c := o.Clone()
	require.NotNil(t, c.PhotoBorderWidth)
	*c.PhotoBorderWidth = 9
	assert.Equal(t, 3, width)
	assert.Nil(t, c.Colors)
}
