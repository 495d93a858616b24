package rendering

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cv-composer/internal/blocks"
	"github.com/jonathan/cv-composer/internal/contacts"
	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/formatting"
)

// PxToPt converts CSS pixels to PDF points.
const PxToPt = 0.75

// PageSizeA4 is the only page size the PDF layout produces.
const PageSizeA4 = "A4"

// PDFNodeType is the primitive a PDF layout node maps to.
type PDFNodeType string

const (
	PDFView  PDFNodeType = "view"
	PDFText  PDFNodeType = "text"
	PDFImage PDFNodeType = "image"
	PDFLink  PDFNodeType = "link"
)

// PDFStyle holds camelCase style properties. Lengths are float64 points;
// everything else is a string.
type PDFStyle map[string]any

// TextRun is a styled span inside a text node.
type TextRun struct {
	Text   string `json:"text,omitempty"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Break  bool   `json:"break,omitempty"`
}

// PDFNode is one element of the PDF layout tree. Text nodes carry either Text
// or Runs; image nodes carry Src; link nodes carry Href and Text.
type PDFNode struct {
	Type     PDFNodeType       `json:"type"`
	Style    PDFStyle          `json:"style,omitempty"`
	Text     string            `json:"text,omitempty"`
	Runs     []TextRun         `json:"runs,omitempty"`
	Src      string            `json:"src,omitempty"`
	Href     string            `json:"href,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*PDFNode        `json:"children,omitempty"`
}

// PlainText returns the visible text of n and its descendants.
func (n *PDFNode) PlainText() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(n.Text)
	for _, r := range n.Runs {
		if r.Break {
			b.WriteString("\n")
			continue
		}
		b.WriteString(r.Text)
	}
	for _, c := range n.Children {
		b.WriteString(c.PlainText())
	}
	return b.String()
}

// PDFPage is a page that wraps its content onto as many physical pages as
// needed. Padding is the page margin in points.
type PDFPage struct {
	Size     string     `json:"size"`
	Wrap     bool       `json:"wrap"`
	Padding  float64    `json:"padding"`
	Style    PDFStyle   `json:"style,omitempty"`
	Children []*PDFNode `json:"children"`
}

// PDFDocument is the paginated layout handed to a PDF encoder.
type PDFDocument struct {
	Title   string     `json:"title"`
	Author  string     `json:"author,omitempty"`
	Creator string     `json:"creator"`
	Pages   []*PDFPage `json:"pages"`
}

// Sections returns the section nodes of every page in order.
func (d *PDFDocument) Sections() []*PDFNode {
	if d == nil {
		return nil
	}
	var out []*PDFNode
	var walk func(*PDFNode)
	walk = func(n *PDFNode) {
		if _, ok := n.Attrs["section"]; ok {
			out = append(out, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, p := range d.Pages {
		for _, c := range p.Children {
			walk(c)
		}
	}
	return out
}

var pxTokenRe = regexp.MustCompile(`(-?\d*\.?\d+)px`)

// toPDFStyle converts a CSS rule to PDF style properties, turning pixel
// lengths into points.
func toPDFStyle(r Rule) PDFStyle {
	if len(r) == 0 {
		return nil
	}
	out := make(PDFStyle, len(r))
	for _, d := range r {
		key := camelCase(d.Property)
		switch {
		case d.Property == "font-family":
			out[key] = primaryFamily(d.Value)
		case pxTokenRe.FindString(d.Value) == d.Value:
			out[key] = pxToPt(d.Value)
		case strings.Contains(d.Value, "px"):
			out[key] = pxTokenRe.ReplaceAllStringFunc(d.Value, func(tok string) string {
				return strconv.FormatFloat(pxToPt(tok), 'f', -1, 64) + "pt"
			})
		default:
			out[key] = d.Value
		}
	}
	return out
}

func pxToPt(tok string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
	if err != nil {
		return 0
	}
	return math.Round(v*PxToPt*100) / 100
}

// primaryFamily extracts the first family name from a CSS font stack.
func primaryFamily(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	return strings.ReplaceAll(strings.Trim(strings.TrimSpace(first), `"`), `\"`, `"`)
}

type pdfLayout struct {
	sheet *StyleSheet
}

func (p *pdfLayout) view(class string, children ...*PDFNode) *PDFNode {
	n := &PDFNode{Type: PDFView, Style: toPDFStyle(p.sheet.Rule(class))}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func (p *pdfLayout) text(class, s string) *PDFNode {
	if s == "" {
		return nil
	}
	return &PDFNode{Type: PDFText, Style: toPDFStyle(p.sheet.Rule(class)), Text: s}
}

func (p *pdfLayout) link(class, href, s string) *PDFNode {
	return &PDFNode{Type: PDFLink, Style: toPDFStyle(p.sheet.Rule(class)), Href: href, Text: s}
}

// RenderPDFTree lays doc out as a wrapping A4 page in points. Section views
// carry section, index and id attributes.
func RenderPDFTree(doc *document.ResolvedDocument) *PDFDocument {
	sheet := NewStyleSheet(doc)
	p := &pdfLayout{sheet: sheet}

	pageStyle := toPDFStyle(sheet.Rule(ClassPage))
	padding, _ := pageStyle["padding"].(float64)
	delete(pageStyle, "padding")

	page := &PDFPage{
		Size:     PageSizeA4,
		Wrap:     true,
		Padding:  padding,
		Style:    pageStyle,
		Children: []*PDFNode{p.header(doc.Header)},
	}
	for _, s := range doc.Sections {
		page.Children = append(page.Children, p.section(s))
	}

	return &PDFDocument{
		Title:   doc.Header.Name,
		Author:  doc.Header.Name,
		Creator: "cv-composer",
		Pages:   []*PDFPage{page},
	}
}

func (p *pdfLayout) header(h document.Header) *PDFNode {
	var photo *PDFNode
	if h.Photo != nil {
		photo = &PDFNode{Type: PDFImage, Style: toPDFStyle(p.sheet.Rule(ClassPhoto)), Src: h.Photo.Src}
	}

	identity := p.view(ClassIdentity,
		p.text(ClassName, h.Name),
		p.text(ClassHeadline, h.Headline),
	)
	if h.Summary != nil {
		identity.Children = append(identity.Children, p.view(ClassSummary, p.rich(h.Summary)...))
	}
	if len(h.Primary) > 0 {
		cards := p.view(ClassContacts)
		for _, c := range h.Primary {
			cards.Children = append(cards.Children, p.contact(c, ClassContactCard, true))
		}
		identity.Children = append(identity.Children, cards)
	}
	if len(h.Secondary) > 0 {
		chips := p.view(ClassContactChips)
		for _, c := range h.Secondary {
			chips.Children = append(chips.Children, p.contact(c, ClassContactChip, false))
		}
		identity.Children = append(identity.Children, chips)
	}
	if len(h.Metrics) > 0 {
		m := p.view(ClassMetrics)
		for _, n := range h.Metrics {
			m.Children = append(m.Children, p.text(ClassMetric, n.Label+": "+n.Value))
		}
		identity.Children = append(identity.Children, m)
	}

	return p.view(ClassHeader, photo, identity)
}

func (p *pdfLayout) contact(c contacts.Entry, class string, withLabel bool) *PDFNode {
	value := &PDFNode{Type: PDFText}
	if c.Href != "" {
		value.Type = PDFLink
		value.Href = c.Href
	}
	for i, line := range strings.Split(c.Value, "\n") {
		if i > 0 {
			value.Runs = append(value.Runs, TextRun{Break: true})
		}
		value.Runs = append(value.Runs, TextRun{Text: line})
	}

	n := p.view(class)
	n.Attrs = map[string]string{"contact": c.IconKey}
	if label := p.text(ClassContactLabel, c.Label); withLabel && label != nil {
		n.Children = append(n.Children, label)
	}
	n.Children = append(n.Children, value)
	return n
}

func (p *pdfLayout) section(b blocks.Block) *PDFNode {
	n := p.view(ClassSection, p.text(ClassSectionTitle, b.Title))
	n.Attrs = map[string]string{
		"section": string(b.Kind),
		"index":   strconv.Itoa(b.Index),
		"id":      b.ID,
	}
	for _, node := range b.Nodes {
		n.Children = append(n.Children, nonNil(p.nodes(node))...)
	}
	return n
}

func (p *pdfLayout) nodes(node blocks.Node) []*PDFNode {
	switch node.Kind {
	case blocks.NodeHeading:
		return []*PDFNode{p.text(ClassSubheading, node.Text)}
	case blocks.NodeEntry:
		if node.Entry == nil {
			return nil
		}
		return []*PDFNode{p.entry(node.Entry)}
	case blocks.NodeParagraph:
		return p.rich(node.Rich)
	case blocks.NodeTagList:
		if !node.Pills {
			return []*PDFNode{p.text(ClassParagraph, TagText(node))}
		}
		tags := p.view(ClassTags)
		for _, t := range node.Tags {
			tags.Children = append(tags.Children, p.text(ClassPill, t))
		}
		return []*PDFNode{tags}
	case blocks.NodeKeyValue:
		kv := p.view(ClassKeyValue, p.text(ClassKeyLabel, KeyLabel(node)))
		kv.Style = withRow(kv.Style)
		if node.Href != "" {
			kv.Children = append(kv.Children, p.link(ClassLink, node.Href, node.Value))
		} else if node.Value != "" {
			kv.Children = append(kv.Children, &PDFNode{Type: PDFText, Text: node.Value})
		}
		return []*PDFNode{kv}
	}
	return nil
}

// withRow lays a view's children out horizontally, as inline HTML would.
func withRow(s PDFStyle) PDFStyle {
	if s == nil {
		s = PDFStyle{}
	}
	s["flexDirection"] = "row"
	return s
}

func (p *pdfLayout) entry(e *blocks.Entry) *PDFNode {
	var heading *PDFNode
	if e.Number != "" || e.Title != "" {
		heading = &PDFNode{Type: PDFView, Style: withRow(nil)}
		for _, c := range []*PDFNode{p.text(ClassEntryNumber, e.Number), p.text(ClassEntryTitle, e.Title)} {
			if c != nil {
				heading.Children = append(heading.Children, c)
			}
		}
	}

	n := p.view(ClassEntry,
		p.view(ClassEntryHeader, heading, p.text(ClassEntryDate, e.DateRange)),
		p.text(ClassEntrySubtitle, e.Subtitle),
		p.text(ClassEntryMeta, e.Meta),
		p.text(ClassEntryText, e.Text),
	)
	if e.Link != "" {
		n.Children = append(n.Children, p.link(ClassLink, e.Link, LinkLabel(e.Link)))
	}
	for _, c := range e.Children {
		n.Children = append(n.Children, nonNil(p.nodes(c))...)
	}
	return n
}

func (p *pdfLayout) rich(rt *formatting.RichText) []*PDFNode {
	if rt == nil {
		return nil
	}
	var out []*PDFNode
	for _, b := range rt.Blocks {
		switch b.Kind {
		case formatting.BlockHeading:
			out = append(out, &PDFNode{Type: PDFText, Style: toPDFStyle(p.sheet.Rule(ClassRichHeading)), Runs: runs(b.Inlines)})
		case formatting.BlockBulletList, formatting.BlockNumberedList:
			list := p.view(ClassList)
			for i, item := range b.Items {
				li := p.view(ClassListItem)
				if marker := ListMarker(b, i, p.sheet.BulletMarker); marker != "" {
					li.Children = append(li.Children, p.text(ClassListMarker, marker))
				}
				li.Children = append(li.Children, &PDFNode{Type: PDFText, Runs: runs(item)})
				list.Children = append(list.Children, li)
			}
			out = append(out, list)
		default:
			out = append(out, &PDFNode{Type: PDFText, Style: toPDFStyle(p.sheet.Rule(ClassParagraph)), Runs: runs(b.Inlines)})
		}
	}
	return out
}

func runs(in []formatting.Inline) []TextRun {
	out := make([]TextRun, 0, len(in))
	for _, r := range in {
		out = append(out, TextRun{Text: r.Text, Bold: r.Bold, Italic: r.Italic, Break: r.Break})
	}
	return out
}
