package rendering

import (
	"strconv"
	"strings"

	"github.com/jonathan/cv-composer/internal/blocks"
	"github.com/jonathan/cv-composer/internal/contacts"
	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/formatting"
)

// PreviewNode is one element of the editor preview. A node with an empty Tag
// is a text node.
type PreviewNode struct {
	Tag      string            `json:"tag,omitempty"`
	Class    string            `json:"class,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*PreviewNode    `json:"children,omitempty"`
}

// TextContent concatenates the text of n and its descendants.
func (n *PreviewNode) TextContent() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.walkText(&b)
	return b.String()
}

func (n *PreviewNode) walkText(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.walkText(b)
	}
}

// Find returns every descendant of n, n included, whose attribute key is set.
func (n *PreviewNode) Find(attr string) []*PreviewNode {
	var out []*PreviewNode
	var walk func(*PreviewNode)
	walk = func(p *PreviewNode) {
		if _, ok := p.Attrs[attr]; ok {
			out = append(out, p)
		}
		for _, c := range p.Children {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

type previewer struct {
	sheet *StyleSheet
}

// el creates an element styled by the given classes, skipping nil children.
func (p *previewer) el(tag string, classes []string, attrs map[string]string, children ...*PreviewNode) *PreviewNode {
	n := &PreviewNode{Tag: tag, Attrs: attrs}
	if len(classes) > 0 {
		n.Class = strings.Join(classes, " ")
		n.Style = make(map[string]string)
		for _, class := range classes {
			for k, v := range p.sheet.Rule(class).Props() {
				n.Style[k] = v
			}
		}
		if len(n.Style) == 0 {
			n.Style = nil
		}
	}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func (p *previewer) tx(tag, class, text string) *PreviewNode {
	if text == "" {
		return nil
	}
	return p.el(tag, []string{class}, nil, &PreviewNode{Text: text})
}

// RenderPreview lays doc out as an element tree with inline styles for the
// interactive editor. Every section element carries data-section and
// data-index attributes.
func RenderPreview(doc *document.ResolvedDocument) *PreviewNode {
	p := &previewer{sheet: NewStyleSheet(doc)}

	root := p.el("div", []string{ClassPage}, map[string]string{"data-theme": doc.Theme.PresetID}, p.header(doc.Header))
	for _, s := range doc.Sections {
		root.Children = append(root.Children, p.section(s))
	}
	return root
}

func (p *previewer) header(h document.Header) *PreviewNode {
	var photo *PreviewNode
	if h.Photo != nil {
		photo = p.el("img", []string{ClassPhoto}, map[string]string{
			"src":    h.Photo.Src,
			"alt":    h.Name,
			"width":  strconv.Itoa(h.Photo.Width),
			"height": strconv.Itoa(h.Photo.Height),
		})
	}

	identity := p.el("div", []string{ClassIdentity}, nil,
		p.tx("h1", ClassName, h.Name),
		p.tx("p", ClassHeadline, h.Headline),
	)
	if h.Summary != nil {
		identity.Children = append(identity.Children, p.el("div", []string{ClassSummary}, nil, p.rich(h.Summary)...))
	}
	if len(h.Primary) > 0 {
		cards := p.el("div", []string{ClassContacts}, nil)
		for _, c := range h.Primary {
			cards.Children = append(cards.Children, p.contact(c, ClassContactCard, true))
		}
		identity.Children = append(identity.Children, cards)
	}
	if len(h.Secondary) > 0 {
		chips := p.el("div", []string{ClassContactChips}, nil)
		for _, c := range h.Secondary {
			chips.Children = append(chips.Children, p.contact(c, ClassContactChip, false))
		}
		identity.Children = append(identity.Children, chips)
	}
	if len(h.Metrics) > 0 {
		m := p.el("div", []string{ClassMetrics}, nil)
		for _, n := range h.Metrics {
			m.Children = append(m.Children, p.tx("span", ClassMetric, n.Label+": "+n.Value))
		}
		identity.Children = append(identity.Children, m)
	}

	return p.el("header", []string{ClassHeader}, nil, photo, identity)
}

func (p *previewer) contact(c contacts.Entry, class string, withLabel bool) *PreviewNode {
	tag := "span"
	if withLabel {
		tag = "div"
	}
	attrs := map[string]string{"data-contact": c.IconKey}
	if c.Href != "" {
		tag = "a"
		attrs["href"] = c.Href
		if c.IsExternal {
			attrs["target"] = "_blank"
			attrs["rel"] = "noopener noreferrer"
		}
	}

	n := p.el(tag, []string{class}, attrs)
	if p.sheet.ShowIcons {
		n.Children = append(n.Children, p.el("span", []string{ClassIcon}, map[string]string{"data-icon": c.IconKey}))
	}
	if label := p.tx("span", ClassContactLabel, c.Label); withLabel && label != nil {
		n.Children = append(n.Children, label)
	}
	value := p.el("span", nil, nil)
	for i, line := range strings.Split(c.Value, "\n") {
		if i > 0 {
			value.Children = append(value.Children, &PreviewNode{Tag: "br"})
		}
		value.Children = append(value.Children, &PreviewNode{Text: line})
	}
	n.Children = append(n.Children, value)
	return n
}

func (p *previewer) section(b blocks.Block) *PreviewNode {
	n := p.el("section", []string{ClassSection}, map[string]string{
		"data-section": string(b.Kind),
		"data-index":   strconv.Itoa(b.Index),
		"data-id":      b.ID,
	}, p.tx("h2", ClassSectionTitle, b.Title))
	for _, node := range b.Nodes {
		n.Children = append(n.Children, nonNil(p.nodes(node))...)
	}
	return n
}

func (p *previewer) nodes(node blocks.Node) []*PreviewNode {
	switch node.Kind {
	case blocks.NodeHeading:
		return []*PreviewNode{p.tx("h3", ClassSubheading, node.Text)}
	case blocks.NodeEntry:
		return []*PreviewNode{p.entry(node.Entry)}
	case blocks.NodeParagraph:
		return p.rich(node.Rich)
	case blocks.NodeTagList:
		if !node.Pills {
			return []*PreviewNode{p.tx("p", ClassParagraph, TagText(node))}
		}
		tags := p.el("div", []string{ClassTags}, nil)
		for _, t := range node.Tags {
			tags.Children = append(tags.Children, p.tx("span", ClassPill, t))
		}
		return []*PreviewNode{tags}
	case blocks.NodeKeyValue:
		kv := p.el("div", []string{ClassKeyValue}, nil, p.tx("span", ClassKeyLabel, KeyLabel(node)))
		if node.Href != "" {
			kv.Children = append(kv.Children, p.el("a", []string{ClassLink}, map[string]string{"href": node.Href}, &PreviewNode{Text: node.Value}))
		} else if node.Value != "" {
			kv.Children = append(kv.Children, p.el("span", nil, nil, &PreviewNode{Text: node.Value}))
		}
		return []*PreviewNode{kv}
	}
	return nil
}

func (p *previewer) entry(e *blocks.Entry) *PreviewNode {
	if e == nil {
		return nil
	}
	heading := p.el("div", nil, nil,
		p.tx("span", ClassEntryNumber, e.Number),
		p.tx("span", ClassEntryTitle, e.Title),
	)
	if len(heading.Children) == 0 {
		heading = nil
	}
	n := p.el("div", []string{ClassEntry}, nil,
		p.el("div", []string{ClassEntryHeader}, nil, heading, p.tx("span", ClassEntryDate, e.DateRange)),
		p.tx("div", ClassEntrySubtitle, e.Subtitle),
		p.tx("div", ClassEntryMeta, e.Meta),
		p.tx("div", ClassEntryText, e.Text),
	)
	if e.Link != "" {
		n.Children = append(n.Children, p.el("a", []string{ClassLink}, map[string]string{
			"href":   e.Link,
			"target": "_blank",
			"rel":    "noopener noreferrer",
		}, &PreviewNode{Text: LinkLabel(e.Link)}))
	}
	for _, c := range e.Children {
		n.Children = append(n.Children, nonNil(p.nodes(c))...)
	}
	return n
}

func (p *previewer) rich(rt *formatting.RichText) []*PreviewNode {
	if rt == nil {
		return nil
	}
	var out []*PreviewNode
	for _, b := range rt.Blocks {
		switch b.Kind {
		case formatting.BlockHeading:
			out = append(out, p.el(RichHeadingTag(b.Level), []string{ClassRichHeading}, nil, p.inlines(b.Inlines)...))
		case formatting.BlockBulletList, formatting.BlockNumberedList:
			tag := "ul"
			if b.Kind == formatting.BlockNumberedList {
				tag = "ol"
			}
			list := p.el(tag, []string{ClassList}, nil)
			for i, item := range b.Items {
				li := p.el("li", []string{ClassListItem}, nil)
				if marker := ListMarker(b, i, p.sheet.BulletMarker); marker != "" {
					li.Children = append(li.Children, p.tx("span", ClassListMarker, marker))
				}
				li.Children = append(li.Children, p.el("span", nil, nil, p.inlines(item)...))
				list.Children = append(list.Children, li)
			}
			out = append(out, list)
		default:
			out = append(out, p.el("p", []string{ClassParagraph}, nil, p.inlines(b.Inlines)...))
		}
	}
	return out
}

func (p *previewer) inlines(in []formatting.Inline) []*PreviewNode {
	out := make([]*PreviewNode, 0, len(in))
	for _, run := range in {
		if run.Break {
			out = append(out, &PreviewNode{Tag: "br"})
			continue
		}
		classes := inlineClasses(run)
		if len(classes) == 0 {
			out = append(out, &PreviewNode{Text: run.Text})
			continue
		}
		out = append(out, p.el("span", classes, nil, &PreviewNode{Text: run.Text}))
	}
	return out
}

func inlineClasses(run formatting.Inline) []string {
	var classes []string
	if run.Bold {
		classes = append(classes, ClassBold)
	}
	if run.Italic {
		classes = append(classes, ClassItalic)
	}
	return classes
}
