package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "", FirstNonEmpty())
	assert.Equal(t, "", FirstNonEmpty("", "  ", "\t"))
	assert.Equal(t, "b", FirstNonEmpty(" ", " b ", "c"))
	assert.Equal(t, "a", FirstNonEmpty("a", "b"))
}

func TestAliasChains(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"experience role last", Experience{Role: "Lead"}.PositionName(), "Lead"},
		{"experience position first", Experience{Position: "Engineer", Title: "Other"}.PositionName(), "Engineer"},
		{"experience organization", Experience{Organization: "Royal Society"}.CompanyName(), "Royal Society"},
		{"education university", Education{University: "Oxford"}.SchoolName(), "Oxford"},
		{"education major", Education{Major: "Physics"}.FieldName(), "Physics"},
		{"education grade", Education{Grade: "First"}.GradeValue(), "First"},
		{"education gpa first", Education{GPA: "3.9", Grade: "A"}.GradeValue(), "3.9"},
		{"project title", Project{Title: "Engine"}.ProjectName(), "Engine"},
		{"project link", Project{Link: "example.com"}.ProjectURL(), "example.com"},
		{"publication year", Publication{Year: "1843", Date: "2000"}.YearValue(), "1843"},
		{"publication year from date", Publication{Date: "May 2019"}.YearValue(), "2019"},
		{"publication no year", Publication{Date: "soon"}.YearValue(), ""},
		{"publication type lowercased", Publication{Type: "Journal"}.KindName(), "journal"},
		{"publication booktitle", Publication{BookTitle: "NeurIPS"}.ConferenceName(), "NeurIPS"},
		{"publication number", Publication{Number: "4"}.IssueNumber(), "4"},
		{"skill alias", Skill{Skill: "Go"}.SkillName(), "Go"},
		{"skill proficiency", Skill{Proficiency: "Expert"}.LevelName(), "Expert"},
		{"cert title", Certification{Title: "CKA"}.CertName(), "CKA"},
		{"cert authority", Certification{Authority: "CNCF"}.IssuerName(), "CNCF"},
		{"cert date", Certification{Date: "2020-01"}.Issued(), "2020-01"},
		{"cert expiration", Certification{ExpirationDate: "2023-01"}.Expires(), "2023-01"},
		{"cert credential url", Certification{CredentialURL: "cncf.io/x"}.CertURL(), "cncf.io/x"},
		{"award name", Award{Name: "Medal"}.AwardTitle(), "Medal"},
		{"award awarder", Award{Awarder: "Society"}.IssuerName(), "Society"},
		{"language name", Language{Name: "French"}.LanguageName(), "French"},
		{"language level", Language{Level: "B2"}.ProficiencyName(), "B2"},
		{"reference title", Reference{Title: "Professor"}.PositionName(), "Professor"},
		{"reference organization", Reference{Organization: "MIT"}.CompanyName(), "MIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
