package theme

import "strconv"

// Source names where a resolved field came from.
type Source string

const (
	SourceOverride Source = "override"
	SourcePreset   Source = "preset"
	SourceDefault  Source = "default"
)

var (
	photoSizes       = map[string]bool{"small": true, "medium": true, "large": true, "xlarge": true}
	photoAspects     = map[string]bool{"square": true, "portrait": true, "landscape": true}
	dateFormats      = map[string]bool{"short": true, "long": true, "numeric": true}
	headingTransform = map[string]bool{"uppercase": true, "lowercase": true, "capitalize": true, "first-capital": true, "none": true}
	headingStyles    = map[string]bool{"bold": true, "underline": true, "border-left": true, "background": true}
	headerLayouts    = map[string]bool{"centered": true, "left": true, "split": true}
	bulletStyles     = map[string]bool{"disc": true, "dash": true, "none": true}
)

// Resolve merges the preset identified by presetID with override. A nil override
// and an empty override give the same result.
func Resolve(presetID string, override *Override) Resolved {
	return resolve(presetID, override, nil)
}

// Explain resolves like Resolve and additionally reports, per dotted field path,
// whether the value came from the override, the preset or a computed default.
func Explain(presetID string, override *Override) (Resolved, map[string]Source) {
	trace := make(map[string]Source)
	r := resolve(presetID, override, trace)
	return r, trace
}

type merger struct {
	trace map[string]Source
}

func pick[T any](m merger, path string, def T, override, preset *T) T {
	switch {
	case override != nil:
		m.record(path, SourceOverride)
		return *override
	case preset != nil:
		m.record(path, SourcePreset)
		return *preset
	default:
		m.record(path, SourceDefault)
		return def
	}
}

// pickEnum is pick restricted to a closed set of values; out-of-set values are
// skipped in favor of the next layer.
func pickEnum(m merger, path, def string, allowed map[string]bool, override, preset *string) string {
	if override != nil && !allowed[*override] {
		override = nil
	}
	if preset != nil && !allowed[*preset] {
		preset = nil
	}
	return pick(m, path, def, override, preset)
}

func (m merger) record(path string, src Source) {
	if m.trace != nil {
		m.trace[path] = src
	}
}

func resolve(presetID string, override *Override, trace map[string]Source) Resolved {
	preset, ok := Lookup(presetID)
	if !ok {
		preset, _ = Lookup(DefaultPresetID)
	}
	m := merger{trace: trace}
	p := &preset.Values

	oc, pc := override.colors(), p.colors()
	ol, pl := override.layout(), p.layout()
	ot, pt := override.typography(), p.typography()
	ostyle, pstyle := override.style(), p.style()
	op, pp := override.photo(), p.photo()

	r := Resolved{PresetID: preset.ID, PresetName: preset.Name}

	r.Colors = Colors{
		Primary:          pick(m, "colors.primary", "#2563eb", oc.Primary, pc.Primary),
		Secondary:        pick(m, "colors.secondary", "#1e40af", oc.Secondary, pc.Secondary),
		Accent:           pick(m, "colors.accent", "#3b82f6", oc.Accent, pc.Accent),
		Text:             pick(m, "colors.text", "#1f2937", oc.Text, pc.Text),
		TextLight:        pick(m, "colors.textLight", "#6b7280", oc.TextLight, pc.TextLight),
		Background:       pick(m, "colors.background", "#ffffff", oc.Background, pc.Background),
		HeaderBackground: pick(m, "colors.headerBackground", "#1e3a8a", oc.HeaderBackground, pc.HeaderBackground),
		HeaderText:       pick(m, "colors.headerText", "#ffffff", oc.HeaderText, pc.HeaderText),
		Border:           pick(m, "colors.border", "#e5e7eb", oc.Border, pc.Border),
		Link:             pick(m, "colors.link", "#2563eb", oc.Link, pc.Link),
	}

	r.Layout = Layout{
		SectionSpacing: pick(m, "layout.sectionSpacing", 24, ol.SectionSpacing, pl.SectionSpacing),
		ItemSpacing:    pick(m, "layout.itemSpacing", 12, ol.ItemSpacing, pl.ItemSpacing),
		PagePadding:    pick(m, "layout.pagePadding", 40, ol.PagePadding, pl.PagePadding),
		BorderRadius:   pick(m, "layout.borderRadius", 8, ol.BorderRadius, pl.BorderRadius),
	}

	r.Typography = Typography{
		HeadingFont:      pick(m, "typography.headingFont", BaseFont, ot.HeadingFont, pt.HeadingFont),
		BodyFont:         pick(m, "typography.bodyFont", BaseFont, ot.BodyFont, pt.BodyFont),
		HeadingSize:      pick(m, "typography.headingSize", 18, ot.HeadingSize, pt.HeadingSize),
		BodySize:         pick(m, "typography.bodySize", 14, ot.BodySize, pt.BodySize),
		SmallSize:        pick(m, "typography.smallSize", 12, ot.SmallSize, pt.SmallSize),
		LineHeight:       pick(m, "typography.lineHeight", "1.5", ot.LineHeight, pt.LineHeight),
		HeadingTransform: pickEnum(m, "typography.headingTransform", "uppercase", headingTransform, ot.HeadingTransform, pt.HeadingTransform),
		LetterSpacing:    pick(m, "typography.letterSpacing", "0.5px", ot.LetterSpacing, pt.LetterSpacing),
		HeadingWeight:    pick(m, "typography.headingWeight", "700", ot.HeadingWeight, pt.HeadingWeight),
	}
	// baseFontSize follows the resolved body size unless set explicitly.
	r.Typography.BaseFontSize = pick(m, "typography.baseFontSize",
		strconv.Itoa(r.Typography.BodySize)+"px", ot.BaseFontSize, pt.BaseFontSize)

	r.Style = Style{
		SectionDividers: pick(m, "style.sectionDividers", true, ostyle.SectionDividers, pstyle.SectionDividers),
		SkillPills:      pick(m, "style.skillPills", true, ostyle.SkillPills, pstyle.SkillPills),
		HeadingStyle:    pickEnum(m, "style.headingStyle", "bold", headingStyles, ostyle.HeadingStyle, pstyle.HeadingStyle),
		DateFormat:      pickEnum(m, "style.dateFormat", "short", dateFormats, ostyle.DateFormat, pstyle.DateFormat),
		HeaderLayout:    pickEnum(m, "style.headerLayout", "centered", headerLayouts, ostyle.HeaderLayout, pstyle.HeaderLayout),
		ShowIcons:       pick(m, "style.showIcons", true, ostyle.ShowIcons, pstyle.ShowIcons),
		CompactMode:     pick(m, "style.compactMode", false, ostyle.CompactMode, pstyle.CompactMode),
		ColoredHeadings: pick(m, "style.coloredHeadings", true, ostyle.ColoredHeadings, pstyle.ColoredHeadings),
		BulletStyle:     pickEnum(m, "style.bulletStyle", "disc", bulletStyles, ostyle.BulletStyle, pstyle.BulletStyle),
	}

	r.Photo = Photo{
		ShowPhoto:        pick(m, "showPhoto", true, op.ShowPhoto, pp.ShowPhoto),
		PhotoSize:        pickEnum(m, "photoSize", "medium", photoSizes, op.PhotoSize, pp.PhotoSize),
		PhotoAspect:      pickEnum(m, "photoAspect", "square", photoAspects, op.PhotoAspect, pp.PhotoAspect),
		PhotoBorderWidth: pick(m, "photoBorderWidth", 2, op.PhotoBorderWidth, pp.PhotoBorderWidth),
		PhotoBorderColor: pick(m, "photoBorderColor", "#ffffff", op.PhotoBorderColor, pp.PhotoBorderColor),
		PhotoShadow:      pick(m, "photoShadow", false, op.PhotoShadow, pp.PhotoShadow),
		PhotoGrayscale:   pick(m, "photoGrayscale", false, op.PhotoGrayscale, pp.PhotoGrayscale),
	}

	return r
}
