package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-composer/internal/sections"
	"github.com/jonathan/cv-composer/internal/theme"
	"github.com/jonathan/cv-composer/internal/types"
)

func input(cv *types.CVRecord, id string) Input {
	return Input{
		CV:    cv,
		Theme: theme.Resolve(theme.DefaultPresetID, nil),
		Entry: sections.Entry{ID: id},
	}
}

func boolPtr(b bool) *bool { return &b }

func entries(b *Block) []*Entry {
	var out []*Entry
	for _, n := range b.Nodes {
		if n.Kind == NodeEntry {
			out = append(out, n.Entry)
		}
	}
	return out
}

func TestBuildExperience_AdaExample(t *testing.T) {
	cv := &types.CVRecord{
		Experience: []types.Experience{
			{Company: "Analytical Engines", Position: "Engineer", StartDate: "1843-01", Current: true},
		},
	}

	b := Build(input(cv, sections.Experience))

	require.NotNil(t, b)
	assert.Equal(t, KindExperience, b.Kind)
	assert.Equal(t, "EXPERIENCE", b.Title)
	es := entries(b)
	require.Len(t, es, 1)
	assert.Equal(t, "Engineer", es[0].Title)
	assert.Equal(t, "Analytical Engines", es[0].Subtitle)
	assert.Equal(t, "Jan 1843 - Present", es[0].DateRange)
}

func TestBuildExperience_AliasesAndRequiredFields(t *testing.T) {
	cv := &types.CVRecord{
		Experience: []types.Experience{
			{Location: "Nowhere"},
			{Title: "Analyst", Employer: "Babbage & Co", Description: "Did **things**"},
			{Organization: "Royal Society"},
		},
	}

	es := entries(Build(input(cv, sections.Experience)))

	require.Len(t, es, 2)
	assert.Equal(t, "Analyst", es[0].Title)
	assert.Equal(t, "Babbage & Co", es[0].Subtitle)
	require.Len(t, es[0].Children, 1)
	assert.Equal(t, NodeParagraph, es[0].Children[0].Kind)
	assert.Equal(t, "Royal Society", es[1].Title)
	assert.Empty(t, es[1].Subtitle)
}

func TestBuild_EmptyCollectionsReturnNil(t *testing.T) {
	cv := &types.CVRecord{}
	for _, id := range sections.BuiltIn {
		t.Run(id, func(t *testing.T) {
			assert.Nil(t, Build(input(cv, id)))
		})
	}
}

func TestBuild_UnknownSectionReturnsNil(t *testing.T) {
	assert.Nil(t, Build(input(&types.CVRecord{}, "hobbies")))
}

func TestBuild_RenamedTitleIsTransformed(t *testing.T) {
	cv := &types.CVRecord{Awards: []types.Award{{Name: "Medal"}}}
	in := input(cv, sections.Awards)
	in.Entry.Title = "Honours"

	b := Build(in)
	require.NotNil(t, b)
	assert.Equal(t, "HONOURS", b.Title)
}

func TestBuildEducation(t *testing.T) {
	cv := &types.CVRecord{
		Education: []types.Education{
			{Institution: "Cambridge", Degree: "BSc", FieldOfStudy: "Mathematics", StartDate: "1830", EndDate: "1834", GPA: "3.9"},
			{Major: "Poetry"},
		},
	}

	es := entries(Build(input(cv, sections.Education)))

	require.Len(t, es, 1)
	assert.Equal(t, "BSc in Mathematics", es[0].Title)
	assert.Equal(t, "Cambridge", es[0].Subtitle)
	assert.Equal(t, "Jan 1830 - Jan 1834", es[0].DateRange)
	require.Len(t, es[0].Children, 1)
	assert.Equal(t, "GPA", es[0].Children[0].Label)
	assert.Equal(t, "3.9", es[0].Children[0].Value)
}

func TestBuildReferences_EscapeHatch(t *testing.T) {
	cv := &types.CVRecord{
		ReferencesAvailableOnRequest: true,
		References:                   []types.Reference{{Name: "Charles Babbage"}},
	}

	b := Build(input(cv, sections.References))

	require.NotNil(t, b)
	require.Len(t, b.Nodes, 1)
	assert.Equal(t, NodeParagraph, b.Nodes[0].Kind)
	assert.Equal(t, ReferencesOnRequestText, b.Nodes[0].Rich.PlainText())

	legacy := &types.CVRecord{AvailableOnDemand: true}
	b = Build(input(legacy, sections.References))
	require.NotNil(t, b)
	assert.Equal(t, ReferencesOnRequestText, b.Nodes[0].Rich.PlainText())
}

func TestBuildReferences_List(t *testing.T) {
	cv := &types.CVRecord{
		References: []types.Reference{
			{Name: "Charles Babbage", Title: "Professor", Organization: "Cambridge", Email: "cb@x.com", Phone: "+44 1"},
			{Email: "nameless@x.com"},
		},
	}

	es := entries(Build(input(cv, sections.References)))

	require.Len(t, es, 1)
	assert.Equal(t, "Professor, Cambridge", es[0].Subtitle)
	require.Len(t, es[0].Children, 2)
	assert.Equal(t, "mailto:cb@x.com", es[0].Children[0].Href)
	assert.Equal(t, "tel:+441", es[0].Children[1].Href)
}

func TestBuildSkills_GroupsAndPills(t *testing.T) {
	cv := &types.CVRecord{
		Skills: []types.Skill{
			{Name: "Go", Category: "Languages"},
			{Name: "Mathematics"},
			{Skill: "Rust", Category: "languages"},
			{Name: ""},
			{Name: "Poetry", Category: "General"},
		},
	}

	b := Build(input(cv, sections.Skills))

	require.NotNil(t, b)
	require.Len(t, b.Nodes, 3)
	assert.Equal(t, headingNode("Languages"), b.Nodes[0])
	assert.Equal(t, NodeTagList, b.Nodes[1].Kind)
	assert.True(t, b.Nodes[1].Pills)
	assert.Equal(t, []string{"Go", "Rust"}, b.Nodes[1].Tags)
	assert.Equal(t, []string{"Mathematics", "Poetry"}, b.Nodes[2].Tags)
}

func TestBuildSkills_PlainLines(t *testing.T) {
	cv := &types.CVRecord{Skills: []types.Skill{{Name: "Go", Level: "Expert"}}}
	in := input(cv, sections.Skills)
	in.Theme.Style.SkillPills = false

	b := Build(in)

	require.NotNil(t, b)
	require.Len(t, b.Nodes, 1)
	assert.Equal(t, keyValueNode("Go", "Expert", ""), b.Nodes[0])
}

func TestBuildProjects(t *testing.T) {
	cv := &types.CVRecord{
		Projects: []types.Project{
			{Name: "Engine", Link: "engine.dev", Technologies: types.StringList{"Brass, Steam"}},
		},
	}

	es := entries(Build(input(cv, sections.Projects)))

	require.Len(t, es, 1)
	assert.Equal(t, "https://engine.dev", es[0].Link)
	require.Len(t, es[0].Children, 1)
	assert.Equal(t, []string{"Brass", "Steam"}, es[0].Children[0].Tags)
}

func TestBuildCertificationsAwardsLanguages(t *testing.T) {
	cv := &types.CVRecord{
		Certifications: []types.Certification{{Title: "CKA", Authority: "CNCF", IssueDate: "2020-01", ExpiryDate: "2023-01", CredentialID: "X1"}},
		Awards:         []types.Award{{Name: "Medal", Awarder: "Society", Date: "1850-06"}},
		Languages:      []types.Language{{Name: "French", Level: "Fluent"}, {Proficiency: "Native"}},
	}

	certs := entries(Build(input(cv, sections.Certifications)))
	require.Len(t, certs, 1)
	assert.Equal(t, "CNCF", certs[0].Subtitle)
	assert.Equal(t, "Jan 2020 - Jan 2023", certs[0].DateRange)
	assert.Equal(t, "Credential ID: X1", certs[0].Meta)

	awards := entries(Build(input(cv, sections.Awards)))
	require.Len(t, awards, 1)
	assert.Equal(t, "Jun 1850", awards[0].DateRange)

	langs := Build(input(cv, sections.Languages))
	require.NotNil(t, langs)
	require.Len(t, langs.Nodes, 1)
	assert.Equal(t, "French", langs.Nodes[0].Label)
	assert.Equal(t, "Fluent", langs.Nodes[0].Value)
}

func TestBuildCustom(t *testing.T) {
	cv := &types.CVRecord{
		CustomSections: []types.CustomSection{
			{ID: "c1", Title: "Talks", Content: "Invited talks"},
			{ID: "c2", Title: "Empty"},
		},
	}

	in := input(cv, "c1")
	in.Entry.IsCustom = true
	b := Build(in)
	require.NotNil(t, b)
	assert.Equal(t, KindCustom, b.Kind)
	assert.Equal(t, "c1", b.ID)
	assert.Equal(t, "TALKS", b.Title)

	in = input(cv, "c2")
	in.Entry.IsCustom = true
	assert.Nil(t, Build(in))

	in = input(cv, "stale")
	in.Entry.IsCustom = true
	assert.Nil(t, Build(in))
}
