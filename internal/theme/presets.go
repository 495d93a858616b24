package theme

import "sort"

func ptr[T any](v T) *T { return &v }

// catalogue is built once and never mutated. Lookup hands out copies.
var catalogue = map[string]Preset{
	"modern-blue": {
		ID:   "modern-blue",
		Name: "Modern Blue",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#2563eb"),
				Secondary:        ptr("#1e40af"),
				Accent:           ptr("#3b82f6"),
				HeaderBackground: ptr("#1e3a8a"),
				HeaderText:       ptr("#ffffff"),
				Link:             ptr("#2563eb"),
			},
			Style: &StyleOverride{HeaderLayout: ptr("split")},
		},
	},
	"classic": {
		ID:   "classic",
		Name: "Classic",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#111827"),
				Secondary:        ptr("#374151"),
				Accent:           ptr("#6b7280"),
				HeaderBackground: ptr("#ffffff"),
				HeaderText:       ptr("#111827"),
				Link:             ptr("#1f2937"),
			},
			Typography: &TypographyOverride{
				HeadingFont:      ptr("Times-Roman"),
				BodyFont:         ptr("Times-Roman"),
				HeadingTransform: ptr("none"),
				LetterSpacing:    ptr("0px"),
			},
			Style: &StyleOverride{
				SkillPills:      ptr(false),
				HeadingStyle:    ptr("underline"),
				DateFormat:      ptr("long"),
				ColoredHeadings: ptr(false),
			},
			PhotoOverride: PhotoOverride{ShowPhoto: ptr(false)},
		},
	},
	"minimal": {
		ID:   "minimal",
		Name: "Minimal",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#000000"),
				Secondary:        ptr("#404040"),
				Accent:           ptr("#737373"),
				HeaderBackground: ptr("#ffffff"),
				HeaderText:       ptr("#000000"),
				Border:           ptr("#e5e5e5"),
				Link:             ptr("#000000"),
			},
			Layout:     &LayoutOverride{BorderRadius: ptr(0), PagePadding: ptr(48)},
			Typography: &TypographyOverride{HeadingTransform: ptr("lowercase"), HeadingWeight: ptr("500")},
			Style: &StyleOverride{
				SectionDividers: ptr(false),
				SkillPills:      ptr(false),
				ShowIcons:       ptr(false),
				HeaderLayout:    ptr("left"),
				BulletStyle:     ptr("dash"),
			},
		},
	},
	"elegant": {
		ID:   "elegant",
		Name: "Elegant",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#7c2d12"),
				Secondary:        ptr("#9a3412"),
				Accent:           ptr("#c2410c"),
				Background:       ptr("#fffbf5"),
				HeaderBackground: ptr("#fffbf5"),
				HeaderText:       ptr("#7c2d12"),
				Border:           ptr("#fed7aa"),
				Link:             ptr("#9a3412"),
			},
			Typography: &TypographyOverride{
				HeadingFont:      ptr("Times-Roman"),
				HeadingTransform: ptr("capitalize"),
				LetterSpacing:    ptr("1px"),
			},
			Style: &StyleOverride{HeadingStyle: ptr("border-left"), DateFormat: ptr("long")},
			PhotoOverride: PhotoOverride{
				PhotoAspect:      ptr("portrait"),
				PhotoBorderColor: ptr("#fed7aa"),
			},
		},
	},
	"academic": {
		ID:   "academic",
		Name: "Academic",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#1f2937"),
				Secondary:        ptr("#4b5563"),
				Accent:           ptr("#0f766e"),
				HeaderBackground: ptr("#ffffff"),
				HeaderText:       ptr("#111827"),
				Link:             ptr("#0f766e"),
			},
			Layout: &LayoutOverride{SectionSpacing: ptr(18), ItemSpacing: ptr(8)},
			Typography: &TypographyOverride{
				HeadingFont:      ptr("Times-Roman"),
				BodyFont:         ptr("Times-Roman"),
				BodySize:         ptr(13),
				HeadingTransform: ptr("first-capital"),
			},
			Style: &StyleOverride{
				SkillPills:   ptr(false),
				DateFormat:   ptr("numeric"),
				HeaderLayout: ptr("centered"),
				ShowIcons:    ptr(false),
				CompactMode:  ptr(true),
			},
			PhotoOverride: PhotoOverride{PhotoSize: ptr("small")},
		},
	},
	"creative": {
		ID:   "creative",
		Name: "Creative",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#db2777"),
				Secondary:        ptr("#7c3aed"),
				Accent:           ptr("#f59e0b"),
				HeaderBackground: ptr("#7c3aed"),
				HeaderText:       ptr("#ffffff"),
				Link:             ptr("#db2777"),
			},
			Layout: &LayoutOverride{BorderRadius: ptr(16)},
			Style:  &StyleOverride{HeadingStyle: ptr("background"), BulletStyle: ptr("none")},
			PhotoOverride: PhotoOverride{
				PhotoSize:   ptr("large"),
				PhotoShadow: ptr(true),
			},
		},
	},
	"executive": {
		ID:   "executive",
		Name: "Executive",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#0f172a"),
				Secondary:        ptr("#334155"),
				Accent:           ptr("#b45309"),
				HeaderBackground: ptr("#0f172a"),
				HeaderText:       ptr("#f8fafc"),
				Link:             ptr("#b45309"),
			},
			Typography: &TypographyOverride{HeadingSize: ptr(20), LetterSpacing: ptr("1.5px")},
			Style:      &StyleOverride{HeadingStyle: ptr("underline"), HeaderLayout: ptr("left")},
			PhotoOverride: PhotoOverride{
				PhotoAspect:    ptr("landscape"),
				PhotoGrayscale: ptr(true),
			},
		},
	},
	"tech-dark": {
		ID:   "tech-dark",
		Name: "Tech Dark",
		Values: Override{
			Colors: &ColorsOverride{
				Primary:          ptr("#22d3ee"),
				Secondary:        ptr("#a78bfa"),
				Accent:           ptr("#34d399"),
				Text:             ptr("#e5e7eb"),
				TextLight:        ptr("#9ca3af"),
				Background:       ptr("#111827"),
				HeaderBackground: ptr("#030712"),
				HeaderText:       ptr("#22d3ee"),
				Border:           ptr("#374151"),
				Link:             ptr("#22d3ee"),
			},
			Typography: &TypographyOverride{
				HeadingFont: ptr("Courier"),
				LineHeight:  ptr("1.6"),
			},
			Style:         &StyleOverride{BulletStyle: ptr("dash")},
			PhotoOverride: PhotoOverride{PhotoBorderColor: ptr("#22d3ee")},
		},
	},
}

// Lookup returns the preset with the given id.
func Lookup(id string) (Preset, bool) {
	p, ok := catalogue[id]
	p.Values = p.Values.Clone()
	return p, ok
}

// Presets returns every preset sorted by id.
func Presets() []Preset {
	out := make([]Preset, 0, len(catalogue))
	for _, p := range catalogue {
		p.Values = p.Values.Clone()
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
