package rendering

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/cv-composer/internal/document"
)

// Class names shared by every adapter. The HTML page uses them as CSS classes,
// the preview as element classes and the PDF tree as style lookups.
const (
	ClassPage          = "cv-page"
	ClassHeader        = "cv-header"
	ClassIdentity      = "cv-identity"
	ClassPhoto         = "cv-photo"
	ClassName          = "cv-name"
	ClassHeadline      = "cv-headline"
	ClassSummary       = "cv-summary"
	ClassContacts      = "cv-contacts"
	ClassContactCard   = "cv-contact-card"
	ClassContactLabel  = "cv-contact-label"
	ClassContactChips  = "cv-contact-chips"
	ClassContactChip   = "cv-contact-chip"
	ClassIcon          = "cv-icon"
	ClassMetrics       = "cv-metrics"
	ClassMetric        = "cv-metric"
	ClassSection       = "cv-section"
	ClassSectionTitle  = "cv-section-title"
	ClassSubheading    = "cv-subheading"
	ClassEntry         = "cv-entry"
	ClassEntryHeader   = "cv-entry-header"
	ClassEntryNumber   = "cv-entry-number"
	ClassEntryTitle    = "cv-entry-title"
	ClassEntryDate     = "cv-entry-date"
	ClassEntrySubtitle = "cv-entry-subtitle"
	ClassEntryMeta     = "cv-entry-meta"
	ClassEntryText     = "cv-entry-text"
	ClassLink          = "cv-link"
	ClassParagraph     = "cv-paragraph"
	ClassRichHeading   = "cv-rich-heading"
	ClassList          = "cv-list"
	ClassListItem      = "cv-list-item"
	ClassListMarker    = "cv-list-marker"
	ClassTags          = "cv-tags"
	ClassPill          = "cv-pill"
	ClassKeyValue      = "cv-key-value"
	ClassKeyLabel      = "cv-key-label"
	ClassBold          = "cv-bold"
	ClassItalic        = "cv-italic"
)

// Declaration is one CSS property and its value.
type Declaration struct {
	Property string
	Value    string
}

// Rule is an ordered list of declarations.
type Rule []Declaration

// CSS returns the rule body, e.g. "color: #000; margin: 0".
func (r Rule) CSS() string {
	parts := make([]string, 0, len(r))
	for _, d := range r {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Props returns the rule keyed by camelCase property name, the form the
// preview and the PDF tree use.
func (r Rule) Props() map[string]string {
	out := make(map[string]string, len(r))
	for _, d := range r {
		out[camelCase(d.Property)] = d.Value
	}
	return out
}

func camelCase(prop string) string {
	parts := strings.Split(prop, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// decl builds a rule from property/value pairs, skipping empty values.
func decl(pairs ...string) Rule {
	r := make(Rule, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		r = append(r, Declaration{Property: pairs[i], Value: pairs[i+1]})
	}
	return r
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

// StyleSheet is the visual vocabulary of one document, derived once from its
// resolved theme and photo descriptor.
type StyleSheet struct {
	rules map[string]Rule
	order []string

	// BulletMarker is prefixed to bullet list items; empty means no marker.
	BulletMarker string
	// CenteredHeader is true when the header stacks and centers its content.
	CenteredHeader bool
	// ShowIcons mirrors the theme flag.
	ShowIcons bool
}

func (s *StyleSheet) set(class string, r Rule) {
	if _, ok := s.rules[class]; !ok {
		s.order = append(s.order, class)
	}
	s.rules[class] = r
}

// Rule returns the rule for class, or nil when the class is unstyled.
func (s *StyleSheet) Rule(class string) Rule {
	return s.rules[class]
}

// CSS renders every rule as a class selector block in definition order.
func (s *StyleSheet) CSS() string {
	var b strings.Builder
	for _, class := range s.order {
		r := s.rules[class]
		if len(r) == 0 {
			continue
		}
		b.WriteString(".")
		b.WriteString(class)
		b.WriteString(" { ")
		b.WriteString(r.CSS())
		b.WriteString("; }\n")
	}
	return b.String()
}

// NewStyleSheet derives the stylesheet for doc. Color, length and font values
// coming from the theme are sanitized before use.
func NewStyleSheet(doc *document.ResolvedDocument) *StyleSheet {
	t := doc.Theme
	c := t.Colors
	ty := t.Typography
	l := t.Layout

	text := SafeColor(c.Text, "#1f2937")
	textLight := SafeColor(c.TextLight, "#6b7280")
	primary := SafeColor(c.Primary, "#2563eb")
	secondary := SafeColor(c.Secondary, "#475569")
	accent := SafeColor(c.Accent, "#0ea5e9")
	background := SafeColor(c.Background, "#ffffff")
	headerBg := SafeColor(c.HeaderBackground, background)
	headerText := SafeColor(c.HeaderText, text)
	border := SafeColor(c.Border, "#e5e7eb")
	link := SafeColor(c.Link, primary)

	headingFont := FontStack(ty.HeadingFont)
	bodyFont := FontStack(ty.BodyFont)
	headingWeight := SafeWeight(ty.HeadingWeight, "700")
	lineHeight := SafeLength(ty.LineHeight, "1.5")
	letterSpacing := SafeLength(ty.LetterSpacing, "0")

	sectionSpacing, itemSpacing := l.SectionSpacing, l.ItemSpacing
	if t.Style.CompactMode {
		sectionSpacing, itemSpacing = sectionSpacing/2, itemSpacing/2
		lineHeight = "1.3"
	}
	half := itemSpacing / 2
	radius := px(l.BorderRadius)

	s := &StyleSheet{
		rules:          make(map[string]Rule),
		BulletMarker:   bulletMarker(t.Style.BulletStyle),
		CenteredHeader: t.Style.HeaderLayout == "centered" || t.Style.HeaderLayout == "",
		ShowIcons:      t.Style.ShowIcons,
	}

	s.set(ClassPage, decl(
		"font-family", bodyFont,
		"font-size", px(ty.BodySize),
		"line-height", lineHeight,
		"color", text,
		"background-color", background,
		"padding", px(l.PagePadding),
	))

	header := decl(
		"display", "flex",
		"background-color", headerBg,
		"color", headerText,
		"padding", px(itemSpacing*2),
		"border-radius", radius,
		"margin-bottom", px(sectionSpacing),
		"gap", "16px",
	)
	switch t.Style.HeaderLayout {
	case "split":
		header = append(header, decl("flex-direction", "row", "justify-content", "space-between", "align-items", "flex-start")...)
	case "left":
		header = append(header, decl("flex-direction", "row", "align-items", "center")...)
	default:
		header = append(header, decl("flex-direction", "column", "align-items", "center", "text-align", "center")...)
	}
	s.set(ClassHeader, header)
	s.set(ClassIdentity, decl("display", "flex", "flex-direction", "column", "gap", "4px"))
	s.set(ClassPhoto, photoRule(doc.Header.Photo))
	s.set(ClassName, decl(
		"font-family", headingFont,
		"font-size", px(int(math.Round(float64(ty.HeadingSize)*1.6))),
		"font-weight", headingWeight,
		"letter-spacing", letterSpacing,
		"margin", "0",
	))
	s.set(ClassHeadline, decl("font-size", px(ty.BodySize+2), "margin", "0"))
	s.set(ClassSummary, decl("font-size", px(ty.BodySize), "margin-top", px(half)))

	justify := "flex-start"
	if s.CenteredHeader {
		justify = "center"
	}
	s.set(ClassContacts, decl("display", "flex", "flex-wrap", "wrap", "gap", "8px", "justify-content", justify, "margin-top", px(half)))
	s.set(ClassContactCard, decl(
		"display", "flex",
		"flex-direction", "column",
		"padding", "6px 10px",
		"border", "1px solid "+border,
		"border-radius", radius,
		"background-color", background,
		"color", text,
	))
	s.set(ClassContactLabel, decl("font-size", px(ty.SmallSize), "color", textLight))
	s.set(ClassContactChips, decl("display", "flex", "flex-wrap", "wrap", "gap", "6px", "justify-content", justify, "margin-top", "6px"))
	s.set(ClassContactChip, decl(
		"font-size", px(ty.SmallSize),
		"padding", "2px 8px",
		"border", "1px solid "+border,
		"border-radius", radius,
	))
	s.set(ClassIcon, decl("font-size", px(ty.SmallSize), "margin-right", "4px"))
	s.set(ClassMetrics, decl("display", "flex", "gap", "16px", "justify-content", justify, "margin-top", "6px", "font-size", px(ty.SmallSize)))
	s.set(ClassMetric, decl("font-weight", "400"))

	section := decl("margin-bottom", px(sectionSpacing))
	if t.Style.SectionDividers {
		section = append(section, decl("padding-bottom", px(sectionSpacing/2), "border-bottom", "1px solid "+border)...)
	}
	s.set(ClassSection, section)

	headingColor := text
	if t.Style.ColoredHeadings {
		headingColor = primary
	}
	title := decl(
		"font-family", headingFont,
		"font-size", px(ty.HeadingSize),
		"font-weight", headingWeight,
		"letter-spacing", letterSpacing,
		"color", headingColor,
		"margin", "0 0 "+px(itemSpacing),
	)
	switch t.Style.HeadingStyle {
	case "underline":
		title = append(title, decl("padding-bottom", "4px", "border-bottom", "2px solid "+primary)...)
	case "border-left":
		title = append(title, decl("padding-left", "8px", "border-left", "4px solid "+primary)...)
	case "background":
		title = append(title, decl("padding", "4px 8px", "background-color", primary, "color", background, "border-radius", radius)...)
	}
	s.set(ClassSectionTitle, title)
	s.set(ClassSubheading, decl(
		"font-weight", "700",
		"font-size", px(ty.BodySize+1),
		"color", secondary,
		"margin", px(half)+" 0 "+px(half),
	))

	s.set(ClassEntry, decl("margin-bottom", px(itemSpacing)))
	s.set(ClassEntryHeader, decl("display", "flex", "justify-content", "space-between", "align-items", "baseline", "gap", "8px"))
	s.set(ClassEntryNumber, decl("font-weight", "700", "color", primary, "margin-right", "6px"))
	s.set(ClassEntryTitle, decl("font-weight", "700", "color", text))
	s.set(ClassEntryDate, decl("font-size", px(ty.SmallSize), "color", textLight, "white-space", "nowrap"))
	s.set(ClassEntrySubtitle, decl("color", secondary))
	s.set(ClassEntryMeta, decl("font-size", px(ty.SmallSize), "color", textLight))
	s.set(ClassEntryText, decl("margin-top", "2px"))
	s.set(ClassLink, decl("color", link, "text-decoration", "none", "font-size", px(ty.SmallSize)))

	s.set(ClassParagraph, decl("margin", "0 0 "+px(half)))
	s.set(ClassRichHeading, decl("font-weight", "700", "font-size", px(ty.BodySize+1), "margin", "0 0 "+px(half)))
	s.set(ClassList, decl("margin", "0 0 "+px(half), "padding", "0"))
	s.set(ClassListItem, decl("display", "flex", "flex-direction", "row", "gap", "6px"))
	s.set(ClassListMarker, decl("color", primary))

	s.set(ClassTags, decl("display", "flex", "flex-wrap", "wrap", "gap", "6px", "margin-bottom", px(half)))
	s.set(ClassPill, decl(
		"background-color", accent,
		"color", background,
		"padding", "2px 8px",
		"border-radius", radius,
		"font-size", px(ty.SmallSize),
	))
	s.set(ClassKeyValue, decl("margin-bottom", "2px"))
	s.set(ClassKeyLabel, decl("font-weight", "700", "margin-right", "4px"))
	s.set(ClassBold, decl("font-weight", "700"))
	s.set(ClassItalic, decl("font-style", "italic"))

	return s
}

func photoRule(p *document.PhotoDescriptor) Rule {
	if p == nil {
		return nil
	}
	r := decl(
		"width", px(p.Width),
		"height", px(p.Height),
		"border-radius", px(p.BorderRadius),
		"object-fit", "cover",
	)
	if p.BorderWidth > 0 {
		r = append(r, decl("border", px(p.BorderWidth)+" solid "+SafeColor(p.BorderColor, "#ffffff"))...)
	}
	if p.Shadow {
		r = append(r, decl("box-shadow", "0 2px 6px rgba(0, 0, 0, 0.25)")...)
	}
	if p.Grayscale {
		r = append(r, decl("filter", "grayscale(100%)")...)
	}
	return r
}

// bulletMarker maps the theme bullet style to the glyph shown before items.
func bulletMarker(style string) string {
	switch style {
	case "dash":
		return "-"
	case "none":
		return ""
	default:
		return "•"
	}
}
