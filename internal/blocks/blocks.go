// Package blocks turns raw CV sub-records into renderer-agnostic content blocks.
// Every formatting decision (dates, citations, heading case, numbering, rich
// text) is made here so the renderers only lay out what they receive.
package blocks

import (
	"github.com/jonathan/cv-composer/internal/formatting"
	"github.com/jonathan/cv-composer/internal/sections"
	"github.com/jonathan/cv-composer/internal/theme"
	"github.com/jonathan/cv-composer/internal/types"
)

// Kind identifies the section a block was built for.
type Kind string

const (
	KindExperience     Kind = sections.Experience
	KindEducation      Kind = sections.Education
	KindPublications   Kind = sections.Publications
	KindSkills         Kind = sections.Skills
	KindProjects       Kind = sections.Projects
	KindCertifications Kind = sections.Certifications
	KindAwards         Kind = sections.Awards
	KindLanguages      Kind = sections.Languages
	KindReferences     Kind = sections.References
	KindCustom         Kind = "custom"
)

// NodeKind identifies a content node.
type NodeKind string

const (
	NodeHeading   NodeKind = "heading"
	NodeEntry     NodeKind = "entry"
	NodeParagraph NodeKind = "paragraph"
	NodeTagList   NodeKind = "tag-list"
	NodeKeyValue  NodeKind = "key-value"
)

// Node is one element of a block. Which fields are set depends on Kind:
// heading uses Text; entry uses Entry; paragraph uses Rich; tag-list uses Tags
// and Pills; key-value uses Label, Value and Href.
type Node struct {
	Kind  NodeKind             `json:"kind"`
	Text  string               `json:"text,omitempty"`
	Entry *Entry               `json:"entry,omitempty"`
	Rich  *formatting.RichText `json:"rich,omitempty"`
	Tags  []string             `json:"tags,omitempty"`
	Pills bool                 `json:"pills,omitempty"`
	Label string               `json:"label,omitempty"`
	Value string               `json:"value,omitempty"`
	Href  string               `json:"href,omitempty"`
}

// Entry is a titled item such as a job, degree or publication.
type Entry struct {
	Number    string `json:"number,omitempty"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	Meta      string `json:"meta,omitempty"`
	DateRange string `json:"dateRange,omitempty"`
	// Text carries a pre-formatted body line, e.g. a citation.
	Text     string `json:"text,omitempty"`
	Link     string `json:"link,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Block is one rendered section.
type Block struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Title string `json:"title"`
	// Index is the 0-based position among rendered sections.
	Index int    `json:"index"`
	Nodes []Node `json:"nodes"`
}

// Input is what every builder receives.
type Input struct {
	CV    *types.CVRecord
	Theme theme.Resolved
	Entry sections.Entry
	Index int
}

// Builder builds one section. It returns nil when the section has nothing to show.
type Builder func(in Input) *Block

var registry = map[Kind]Builder{
	KindExperience:     buildExperience,
	KindEducation:      buildEducation,
	KindPublications:   buildPublications,
	KindSkills:         buildSkills,
	KindProjects:       buildProjects,
	KindCertifications: buildCertifications,
	KindAwards:         buildAwards,
	KindLanguages:      buildLanguages,
	KindReferences:     buildReferences,
	KindCustom:         buildCustom,
}

// DefaultTitles are used when the order entry does not rename a built-in section.
var DefaultTitles = map[Kind]string{
	KindExperience:     "Experience",
	KindEducation:      "Education",
	KindPublications:   "Publications",
	KindSkills:         "Skills",
	KindProjects:       "Projects",
	KindCertifications: "Certifications",
	KindAwards:         "Awards",
	KindLanguages:      "Languages",
	KindReferences:     "References",
}

// For returns the builder for kind.
func For(kind Kind) (Builder, bool) {
	b, ok := registry[kind]
	return b, ok
}

// Build dispatches in to the builder for its order entry. Unknown built-in ids
// yield nil.
func Build(in Input) *Block {
	kind := Kind(in.Entry.ID)
	if in.Entry.IsCustom {
		kind = KindCustom
	}
	b, ok := For(kind)
	if !ok {
		return nil
	}
	return b(in)
}

func (in Input) title(kind Kind) string {
	t := types.FirstNonEmpty(in.Entry.Title, DefaultTitles[kind])
	return formatting.TransformHeading(in.Theme.Typography.HeadingTransform, t)
}

func (in Input) block(kind Kind, nodes []Node) *Block {
	if len(nodes) == 0 {
		return nil
	}
	return &Block{
		Kind:  kind,
		ID:    string(kind),
		Title: in.title(kind),
		Index: in.Index,
		Nodes: nodes,
	}
}

func (in Input) date(value string) string {
	return formatting.FormatDate(in.Theme.Style.DateFormat, value)
}

func (in Input) dateRange(start, end string, current bool) string {
	return formatting.FormatDateRange(in.Theme.Style.DateFormat, start, end, current)
}

func entryNode(e Entry) Node {
	return Node{Kind: NodeEntry, Entry: &e}
}

func headingNode(text string) Node {
	return Node{Kind: NodeHeading, Text: text}
}

// paragraphNodes returns a paragraph node for src, or nothing when src is blank.
func paragraphNodes(src string) []Node {
	rt := formatting.ParseRichText(src)
	if rt == nil {
		return nil
	}
	return []Node{{Kind: NodeParagraph, Rich: rt}}
}

func keyValueNode(label, value, href string) Node {
	return Node{Kind: NodeKeyValue, Label: label, Value: value, Href: href}
}

func tagListNodes(tags []string, pills bool) []Node {
	if len(tags) == 0 {
		return nil
	}
	return []Node{{Kind: NodeTagList, Tags: tags, Pills: pills}}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
