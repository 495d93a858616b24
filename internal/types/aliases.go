package types

import (
	"strings"
	"unicode"
)

// Stored records carry several names for the same field. Each accessor below
// resolves one canonical value from an ordered alias chain so builders never
// look at the raw aliases.

// FirstNonEmpty returns the first value that is non-empty after trimming
// whitespace, trimmed.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// PositionName resolves position|title|role.
func (e Experience) PositionName() string {
	return FirstNonEmpty(e.Position, e.Title, e.Role)
}

// CompanyName resolves company|employer|organization.
func (e Experience) CompanyName() string {
	return FirstNonEmpty(e.Company, e.Employer, e.Organization)
}

// SchoolName resolves school|institution|university.
func (e Education) SchoolName() string {
	return FirstNonEmpty(e.School, e.Institution, e.University)
}

// FieldName resolves field|fieldOfStudy|major.
func (e Education) FieldName() string {
	return FirstNonEmpty(e.Field, e.FieldOfStudy, e.Major)
}

// GradeValue resolves gpa|grade.
func (e Education) GradeValue() string {
	return FirstNonEmpty(e.GPA.String(), e.Grade.String())
}

// ProjectName resolves name|title.
func (p Project) ProjectName() string {
	return FirstNonEmpty(p.Name, p.Title)
}

// ProjectURL resolves url|link.
func (p Project) ProjectURL() string {
	return FirstNonEmpty(p.URL, p.Link)
}

// YearValue returns the year, falling back to the first four-digit run in date.
func (p Publication) YearValue() string {
	if y := p.Year.String(); y != "" {
		return y
	}
	return yearOf(p.Date)
}

func yearOf(date string) string {
	run := 0
	for i, r := range date {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			run = 0
			continue
		}
		run++
		if run == 4 && (i+1 == len(date) || !isASCIIDigit(date[i+1])) {
			return date[i-3 : i+1]
		}
	}
	return ""
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// KindName resolves type|publicationType, lowercased.
func (p Publication) KindName() string {
	return strings.ToLower(FirstNonEmpty(p.Type, p.PublicationType))
}

// ConferenceName resolves conference|booktitle.
func (p Publication) ConferenceName() string {
	return FirstNonEmpty(p.Conference, p.BookTitle)
}

// IssueNumber resolves issue|number.
func (p Publication) IssueNumber() string {
	return FirstNonEmpty(p.Issue.String(), p.Number.String())
}

// SkillName resolves name|skill.
func (s Skill) SkillName() string {
	return FirstNonEmpty(s.Name, s.Skill)
}

// LevelName resolves level|proficiency.
func (s Skill) LevelName() string {
	return FirstNonEmpty(s.Level, s.Proficiency)
}

// CertName resolves name|title.
func (c Certification) CertName() string {
	return FirstNonEmpty(c.Name, c.Title)
}

// IssuerName resolves issuer|organization|authority.
func (c Certification) IssuerName() string {
	return FirstNonEmpty(c.Issuer, c.Organization, c.Authority)
}

// Issued resolves issueDate|date.
func (c Certification) Issued() string {
	return FirstNonEmpty(c.IssueDate, c.Date)
}

// Expires resolves expiryDate|expirationDate.
func (c Certification) Expires() string {
	return FirstNonEmpty(c.ExpiryDate, c.ExpirationDate)
}

// CertURL resolves url|credentialUrl.
func (c Certification) CertURL() string {
	return FirstNonEmpty(c.URL, c.CredentialURL)
}

// AwardTitle resolves title|name.
func (a Award) AwardTitle() string {
	return FirstNonEmpty(a.Title, a.Name)
}

// IssuerName resolves issuer|awarder.
func (a Award) IssuerName() string {
	return FirstNonEmpty(a.Issuer, a.Awarder)
}

// LanguageName resolves language|name.
func (l Language) LanguageName() string {
	return FirstNonEmpty(l.Language, l.Name)
}

// ProficiencyName resolves proficiency|level.
func (l Language) ProficiencyName() string {
	return FirstNonEmpty(l.Proficiency, l.Level)
}

// PositionName resolves position|title.
func (r Reference) PositionName() string {
	return FirstNonEmpty(r.Position, r.Title)
}

// CompanyName resolves company|organization.
func (r Reference) CompanyName() string {
	return FirstNonEmpty(r.Company, r.Organization)
}
