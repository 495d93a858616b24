package formatting

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// RichBlockKind is the kind of a rich text block.
type RichBlockKind string

const (
	BlockParagraph    RichBlockKind = "paragraph"
	BlockHeading      RichBlockKind = "heading"
	BlockBulletList   RichBlockKind = "bullet-list"
	BlockNumberedList RichBlockKind = "numbered-list"
)

// Inline is a run of text sharing the same emphasis, or a line break.
type Inline struct {
	Text   string `json:"text,omitempty"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Break  bool   `json:"break,omitempty"`
}

// RichBlock is one block of rich text. Paragraphs and headings use Inlines;
// lists use Items. Start is the first number of a numbered list.
type RichBlock struct {
	Kind    RichBlockKind `json:"kind"`
	Level   int           `json:"level,omitempty"`
	Start   int           `json:"start,omitempty"`
	Inlines []Inline      `json:"inlines,omitempty"`
	Items   [][]Inline    `json:"items,omitempty"`
}

// RichText is the structured form of a markdown-lite text.
type RichText struct {
	Blocks []RichBlock `json:"blocks"`
}

// markdown is goldmark's CommonMark parser without setext headings and
// thematic breaks, so a "---" or "===" line under text stays text.
var markdown = parser.NewParser(
	parser.WithBlockParsers(
		util.Prioritized(parser.NewListParser(), 300),
		util.Prioritized(parser.NewListItemParser(), 400),
		util.Prioritized(parser.NewCodeBlockParser(), 500),
		util.Prioritized(parser.NewATXHeadingParser(), 600),
		util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
		util.Prioritized(parser.NewBlockquoteParser(), 800),
		util.Prioritized(parser.NewHTMLBlockParser(), 900),
		util.Prioritized(parser.NewParagraphParser(), 1000),
	),
	parser.WithInlineParsers(parser.DefaultInlineParsers()...),
	parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
)

// ParseRichText parses the restricted markdown subset used in descriptions:
// **bold**, *italic*, #/##/### headings, "- " bullets, "N. " numbered lines and
// blank-line separated paragraphs. Anything else degrades to plain text.
// Blank input returns nil.
func ParseRichText(src string) *RichText {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	source := []byte(strings.ReplaceAll(src, "\r\n", "\n"))
	doc := markdown.Parse(text.NewReader(source))

	rt := &RichText{}
	appendBlocks(rt, doc, source)
	if len(rt.Blocks) == 0 {
		return nil
	}
	return rt
}

func appendBlocks(rt *RichText, parent ast.Node, src []byte) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			level := node.Level
			if level > 3 {
				level = 3
			}
			if in := inlines(node, src); len(in) > 0 {
				rt.Blocks = append(rt.Blocks, RichBlock{Kind: BlockHeading, Level: level, Inlines: in})
			}
		case *ast.List:
			block := RichBlock{Kind: BlockBulletList}
			if node.IsOrdered() {
				block.Kind = BlockNumberedList
				block.Start = node.Start
			}
			appendItems(&block, node, src)
			if len(block.Items) == 0 {
				continue
			}
			if !supportedMarker(node) {
				block = literalList(node, block)
			}
			rt.Blocks = append(rt.Blocks, block)
		case *ast.Blockquote:
			appendBlocks(rt, node, src)
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			if in := literalLines(node, src); len(in) > 0 {
				rt.Blocks = append(rt.Blocks, RichBlock{Kind: BlockParagraph, Inlines: in})
			}
		case *ast.ThematicBreak:
		default:
			if in := inlines(node, src); len(in) > 0 {
				rt.Blocks = append(rt.Blocks, RichBlock{Kind: BlockParagraph, Inlines: in})
			}
		}
	}
}

// supportedMarker reports whether the list uses "- " bullets or "N. " numbers.
// "*", "+" and "N)" lists are kept as text.
func supportedMarker(list *ast.List) bool {
	if list.IsOrdered() {
		return list.Marker == '.'
	}
	return list.Marker == '-'
}

// literalList turns a parsed list back into one paragraph, one line per item,
// with the markers written out.
func literalList(list *ast.List, parsed RichBlock) RichBlock {
	out := RichBlock{Kind: BlockParagraph}
	for i, item := range parsed.Items {
		if i > 0 {
			out.Inlines = append(out.Inlines, Inline{Break: true})
		}
		marker := string(list.Marker) + " "
		if list.IsOrdered() {
			marker = strconv.Itoa(list.Start+i) + string(list.Marker) + " "
		}
		appendText(&out.Inlines, marker, false, false)
		for _, run := range item {
			if run.Break {
				out.Inlines = append(out.Inlines, run)
				continue
			}
			appendText(&out.Inlines, run.Text, run.Bold, run.Italic)
		}
	}
	return out
}

// appendItems flattens nested lists into the outer list's items.
func appendItems(block *RichBlock, list *ast.List, src []byte) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var line []Inline
		var nested []*ast.List
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if l, ok := c.(*ast.List); ok {
				nested = append(nested, l)
				continue
			}
			in := inlines(c, src)
			if len(in) == 0 {
				continue
			}
			if len(line) > 0 {
				line = append(line, Inline{Break: true})
			}
			line = append(line, in...)
		}
		if len(line) > 0 {
			block.Items = append(block.Items, line)
		}
		for _, l := range nested {
			appendItems(block, l, src)
		}
	}
}

func inlines(n ast.Node, src []byte) []Inline {
	var out []Inline
	collect(n, src, false, false, &out)
	for len(out) > 0 && out[len(out)-1].Break {
		out = out[:len(out)-1]
	}
	return out
}

func collect(n ast.Node, src []byte, bold, italic bool, out *[]Inline) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			appendText(out, string(node.Segment.Value(src)), bold, italic)
			if node.SoftLineBreak() || node.HardLineBreak() {
				*out = append(*out, Inline{Break: true})
			}
		case *ast.String:
			appendText(out, string(node.Value), bold, italic)
		case *ast.Emphasis:
			collect(node, src, bold || node.Level >= 2, italic || node.Level == 1, out)
		case *ast.AutoLink:
			appendText(out, string(node.Label(src)), bold, italic)
		case *ast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				appendText(out, string(seg.Value(src)), bold, italic)
			}
		default:
			collect(node, src, bold, italic, out)
		}
	}
}

func literalLines(n ast.Node, src []byte) []Inline {
	var out []Inline
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\n")
		if i > 0 {
			out = append(out, Inline{Break: true})
		}
		appendText(&out, line, false, false)
	}
	return out
}

// appendText merges runs that share emphasis.
func appendText(out *[]Inline, s string, bold, italic bool) {
	if s == "" {
		return
	}
	if n := len(*out); n > 0 {
		last := &(*out)[n-1]
		if !last.Break && last.Bold == bold && last.Italic == italic {
			last.Text += s
			return
		}
	}
	*out = append(*out, Inline{Text: s, Bold: bold, Italic: italic})
}

// PlainText flattens the rich text, one line per paragraph, heading or item.
func (r *RichText) PlainText() string {
	if r == nil {
		return ""
	}
	var lines []string
	for _, b := range r.Blocks {
		switch b.Kind {
		case BlockBulletList, BlockNumberedList:
			for _, item := range b.Items {
				lines = append(lines, InlineText(item))
			}
		default:
			lines = append(lines, InlineText(b.Inlines))
		}
	}
	return strings.Join(lines, "\n")
}

// InlineText concatenates runs, rendering breaks as newlines.
func InlineText(in []Inline) string {
	var b strings.Builder
	for _, r := range in {
		if r.Break {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(r.Text)
	}
	return b.String()
}
