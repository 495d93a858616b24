// Package types provides type definitions for structured data used throughout the cv-composer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// CVRecord is the raw CV document together with every owned sub-collection.
// Field aliases (e.g. Position/Title on experience) are kept side by side because
// stored records drift between schema versions; builders resolve them.
type CVRecord struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	Title    string `json:"title,omitempty"`
	Summary  string `json:"summary,omitempty"`

	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`

	LinkedIn      string `json:"linkedin,omitempty"`
	GitHub        string `json:"github,omitempty"`
	GoogleScholar string `json:"googleScholar,omitempty"`
	Twitter       string `json:"twitter,omitempty"`

	HIndex         *FlexInt `json:"hIndex,omitempty"`
	TotalCitations *FlexInt `json:"totalCitations,omitempty"`
	I10Index       *FlexInt `json:"i10Index,omitempty"`

	ProfileImage string `json:"profileImage,omitempty"`

	ThemeID  string `json:"themeId,omitempty"`
	Template string `json:"template,omitempty"`
	// ThemeData and SectionOrder arrive either as native JSON values or as
	// JSON-encoded strings; the resolvers accept both.
	ThemeData    json.RawMessage `json:"themeData,omitempty"`
	SectionOrder json.RawMessage `json:"sectionOrder,omitempty"`

	CitationStyle       string `json:"citationStyle,omitempty"`
	PublicationsGroupBy string `json:"publicationsGroupBy,omitempty"`
	PublicationsSortBy  string `json:"publicationsSortBy,omitempty"`
	ShowNumbering       *bool  `json:"showNumbering,omitempty"`
	NumberingStyle      string `json:"numberingStyle,omitempty"`

	ReferencesAvailableOnRequest bool `json:"referencesAvailableOnRequest,omitempty"`
	AvailableOnDemand            bool `json:"availableOnDemand,omitempty"`

	Education      []Education     `json:"education,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Publications   []Publication   `json:"publications,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Awards         []Award         `json:"awards,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	References     []Reference     `json:"references,omitempty"`
	ContactInfo    []ContactInfo   `json:"contactInfo,omitempty"`
	CustomSections []CustomSection `json:"customSections,omitempty"`
	SocialLinks    []SocialLink    `json:"socialLinks,omitempty"`
}

// Experience is a single work history item.
type Experience struct {
	ID           string  `json:"id,omitempty"`
	Order        FlexInt `json:"order,omitempty"`
	Position     string  `json:"position,omitempty"`
	Title        string  `json:"title,omitempty"`
	Role         string  `json:"role,omitempty"`
	Company      string  `json:"company,omitempty"`
	Employer     string  `json:"employer,omitempty"`
	Organization string  `json:"organization,omitempty"`
	Location     string  `json:"location,omitempty"`
	StartDate    string  `json:"startDate,omitempty"`
	EndDate      string  `json:"endDate,omitempty"`
	Current      bool    `json:"current,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// Education is a single degree or course of study.
type Education struct {
	ID           string     `json:"id,omitempty"`
	Order        FlexInt    `json:"order,omitempty"`
	School       string     `json:"school,omitempty"`
	Institution  string     `json:"institution,omitempty"`
	University   string     `json:"university,omitempty"`
	Degree       string     `json:"degree,omitempty"`
	Field        string     `json:"field,omitempty"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty"`
	Major        string     `json:"major,omitempty"`
	Location     string     `json:"location,omitempty"`
	StartDate    string     `json:"startDate,omitempty"`
	EndDate      string     `json:"endDate,omitempty"`
	Current      bool       `json:"current,omitempty"`
	GPA          FlexString `json:"gpa,omitempty"`
	Grade        FlexString `json:"grade,omitempty"`
	Description  string     `json:"description,omitempty"`
}

// Publication is a bibliographic entry.
type Publication struct {
	ID              string     `json:"id,omitempty"`
	Order           FlexInt    `json:"order,omitempty"`
	Title           string     `json:"title,omitempty"`
	Authors         StringList `json:"authors,omitempty"`
	Journal         string     `json:"journal,omitempty"`
	Conference      string     `json:"conference,omitempty"`
	BookTitle       string     `json:"booktitle,omitempty"`
	Publisher       string     `json:"publisher,omitempty"`
	Volume          FlexString `json:"volume,omitempty"`
	Issue           FlexString `json:"issue,omitempty"`
	Number          FlexString `json:"number,omitempty"`
	Pages           FlexString `json:"pages,omitempty"`
	Year            FlexString `json:"year,omitempty"`
	Date            string     `json:"date,omitempty"`
	DOI             string     `json:"doi,omitempty"`
	URL             string     `json:"url,omitempty"`
	Type            string     `json:"type,omitempty"`
	PublicationType string     `json:"publicationType,omitempty"`
}

// Skill is one flat skill record; Category groups skills in the rendered section.
type Skill struct {
	ID          string  `json:"id,omitempty"`
	Order       FlexInt `json:"order,omitempty"`
	Name        string  `json:"name,omitempty"`
	Skill       string  `json:"skill,omitempty"`
	Level       string  `json:"level,omitempty"`
	Proficiency string  `json:"proficiency,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// Project is a portfolio item.
type Project struct {
	ID           string     `json:"id,omitempty"`
	Order        FlexInt    `json:"order,omitempty"`
	Name         string     `json:"name,omitempty"`
	Title        string     `json:"title,omitempty"`
	Role         string     `json:"role,omitempty"`
	URL          string     `json:"url,omitempty"`
	Link         string     `json:"link,omitempty"`
	Technologies StringList `json:"technologies,omitempty"`
	StartDate    string     `json:"startDate,omitempty"`
	EndDate      string     `json:"endDate,omitempty"`
	Current      bool       `json:"current,omitempty"`
	Description  string     `json:"description,omitempty"`
}

// Certification is a credential with an optional expiry.
type Certification struct {
	ID             string  `json:"id,omitempty"`
	Order          FlexInt `json:"order,omitempty"`
	Name           string  `json:"name,omitempty"`
	Title          string  `json:"title,omitempty"`
	Issuer         string  `json:"issuer,omitempty"`
	Organization   string  `json:"organization,omitempty"`
	Authority      string  `json:"authority,omitempty"`
	IssueDate      string  `json:"issueDate,omitempty"`
	Date           string  `json:"date,omitempty"`
	ExpiryDate     string  `json:"expiryDate,omitempty"`
	ExpirationDate string  `json:"expirationDate,omitempty"`
	CredentialID   string  `json:"credentialId,omitempty"`
	URL            string  `json:"url,omitempty"`
	CredentialURL  string  `json:"credentialUrl,omitempty"`
}

// Award is an honor or prize.
type Award struct {
	ID          string  `json:"id,omitempty"`
	Order       FlexInt `json:"order,omitempty"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"`
	Issuer      string  `json:"issuer,omitempty"`
	Awarder     string  `json:"awarder,omitempty"`
	Date        string  `json:"date,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Language is a spoken language with proficiency.
type Language struct {
	ID          string  `json:"id,omitempty"`
	Order       FlexInt `json:"order,omitempty"`
	Language    string  `json:"language,omitempty"`
	Name        string  `json:"name,omitempty"`
	Proficiency string  `json:"proficiency,omitempty"`
	Level       string  `json:"level,omitempty"`
}

// Reference is a referee contact.
type Reference struct {
	ID           string  `json:"id,omitempty"`
	Order        FlexInt `json:"order,omitempty"`
	Name         string  `json:"name,omitempty"`
	Position     string  `json:"position,omitempty"`
	Title        string  `json:"title,omitempty"`
	Company      string  `json:"company,omitempty"`
	Organization string  `json:"organization,omitempty"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Relationship string  `json:"relationship,omitempty"`
}

// ContactInfo is one structured contact row.
type ContactInfo struct {
	ID        string  `json:"id,omitempty"`
	Order     FlexInt `json:"order,omitempty"`
	Type      string  `json:"type,omitempty"`
	Label     string  `json:"label,omitempty"`
	Value     string  `json:"value,omitempty"`
	IsPrimary bool    `json:"isPrimary,omitempty"`
}

// CustomSection is a user-named free-form section.
type CustomSection struct {
	ID      string       `json:"id,omitempty"`
	Order   FlexInt      `json:"order,omitempty"`
	Title   string       `json:"title,omitempty"`
	Content string       `json:"content,omitempty"`
	Items   []CustomItem `json:"items,omitempty"`
}

// CustomItem is an optional structured entry inside a custom section.
type CustomItem struct {
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// SocialLink is a free-form platform/url pair.
type SocialLink struct {
	ID       string  `json:"id,omitempty"`
	Order    FlexInt `json:"order,omitempty"`
	Platform string  `json:"platform,omitempty"`
	URL      string  `json:"url,omitempty"`
}
