package blocks

import (
	"github.com/jonathan/cv-composer/internal/formatting"
	"github.com/jonathan/cv-composer/internal/types"
)

func buildCustom(in Input) *Block {
	cs, ok := findCustomSection(in.CV.CustomSections, in.Entry.ID, in.Entry.Title)
	if !ok {
		return nil
	}

	nodes := paragraphNodes(cs.Content)
	for _, item := range cs.Items {
		title := types.FirstNonEmpty(item.Title)
		if title == "" {
			continue
		}
		nodes = append(nodes, entryNode(Entry{
			Title:     title,
			Subtitle:  types.FirstNonEmpty(item.Subtitle),
			DateRange: in.date(item.Date),
			Children:  paragraphNodes(item.Description),
		}))
	}
	if len(nodes) == 0 {
		return nil
	}

	return &Block{
		Kind:  KindCustom,
		ID:    cs.ID,
		Title: formatting.TransformHeading(in.Theme.Typography.HeadingTransform, types.FirstNonEmpty(cs.Title, in.Entry.Title)),
		Index: in.Index,
		Nodes: nodes,
	}
}

func findCustomSection(custom []types.CustomSection, id, title string) (types.CustomSection, bool) {
	if id != "" {
		for _, cs := range custom {
			if cs.ID == id {
				return cs, true
			}
		}
	}
	if title != "" {
		for _, cs := range custom {
			if cs.Title == title {
				return cs, true
			}
		}
	}
	return types.CustomSection{}, false
}
