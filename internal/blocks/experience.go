package blocks

import (
	"github.com/jonathan/cv-composer/internal/contacts"
	"github.com/jonathan/cv-composer/internal/types"
)

func buildExperience(in Input) *Block {
	var nodes []Node
	for _, e := range in.CV.Experience {
		position, company := e.PositionName(), e.CompanyName()
		description := types.FirstNonEmpty(e.Description)
		if position == "" && company == "" && description == "" {
			continue
		}

		entry := Entry{
			Title:     position,
			Subtitle:  company,
			Meta:      types.FirstNonEmpty(e.Location),
			DateRange: in.dateRange(e.StartDate, e.EndDate, e.Current),
			Children:  paragraphNodes(description),
		}
		if entry.Title == "" {
			entry.Title, entry.Subtitle = company, ""
		}
		nodes = append(nodes, entryNode(entry))
	}
	return in.block(KindExperience, nodes)
}

func buildEducation(in Input) *Block {
	var nodes []Node
	for _, e := range in.CV.Education {
		school, degree := e.SchoolName(), types.FirstNonEmpty(e.Degree)
		if school == "" && degree == "" {
			continue
		}

		title := joinNonEmpty(" in ", degree, e.FieldName())
		entry := Entry{
			Title:     title,
			Subtitle:  school,
			Meta:      types.FirstNonEmpty(e.Location),
			DateRange: in.dateRange(e.StartDate, e.EndDate, e.Current),
		}
		if entry.Title == "" {
			entry.Title, entry.Subtitle = school, ""
		}
		if grade := e.GradeValue(); grade != "" {
			entry.Children = append(entry.Children, keyValueNode("GPA", grade, ""))
		}
		entry.Children = append(entry.Children, paragraphNodes(e.Description)...)
		nodes = append(nodes, entryNode(entry))
	}
	return in.block(KindEducation, nodes)
}

func buildProjects(in Input) *Block {
	var nodes []Node
	for _, p := range in.CV.Projects {
		name, description := p.ProjectName(), types.FirstNonEmpty(p.Description)
		if name == "" && description == "" {
			continue
		}

		entry := Entry{
			Title:     name,
			Subtitle:  types.FirstNonEmpty(p.Role),
			DateRange: in.dateRange(p.StartDate, p.EndDate, p.Current),
			Link:      contacts.EnsureProtocol(p.ProjectURL()),
		}
		entry.Children = append(entry.Children, paragraphNodes(description)...)
		entry.Children = append(entry.Children, tagListNodes(p.Technologies.Split(), in.Theme.Style.SkillPills)...)
		nodes = append(nodes, entryNode(entry))
	}
	return in.block(KindProjects, nodes)
}
