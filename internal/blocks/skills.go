package blocks

import (
	"strings"

	"github.com/jonathan/cv-composer/internal/types"
)

// GeneralCategory is the bucket for uncategorized skills. It renders without a
// sub-heading.
const GeneralCategory = "General"

type skillGroup struct {
	category string
	skills   []types.Skill
}

func buildSkills(in Input) *Block {
	var groups []*skillGroup
	byCategory := make(map[string]*skillGroup)

	for _, s := range in.CV.Skills {
		if s.SkillName() == "" {
			continue
		}
		category := types.FirstNonEmpty(s.Category, GeneralCategory)
		key := strings.ToLower(category)
		g, ok := byCategory[key]
		if !ok {
			g = &skillGroup{category: category}
			byCategory[key] = g
			groups = append(groups, g)
		}
		g.skills = append(g.skills, s)
	}

	pills := in.Theme.Style.SkillPills
	var nodes []Node
	for _, g := range groups {
		if !strings.EqualFold(g.category, GeneralCategory) {
			nodes = append(nodes, headingNode(g.category))
		}
		if pills {
			tags := make([]string, 0, len(g.skills))
			for _, s := range g.skills {
				tags = append(tags, s.SkillName())
			}
			nodes = append(nodes, tagListNodes(tags, true)...)
			continue
		}
		for _, s := range g.skills {
			nodes = append(nodes, keyValueNode(s.SkillName(), s.LevelName(), ""))
		}
	}
	return in.block(KindSkills, nodes)
}
