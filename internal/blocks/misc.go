package blocks

import (
	"strings"

	"github.com/jonathan/cv-composer/internal/contacts"
	"github.com/jonathan/cv-composer/internal/types"
)

// ReferencesOnRequestText replaces the reference list when the CV opts out of
// listing referees.
const ReferencesOnRequestText = "Available upon request"

func buildCertifications(in Input) *Block {
	var nodes []Node
	for _, c := range in.CV.Certifications {
		name := c.CertName()
		if name == "" {
			continue
		}
		entry := Entry{
			Title:     name,
			Subtitle:  c.IssuerName(),
			DateRange: in.dateRange(c.Issued(), c.Expires(), false),
			Link:      contacts.EnsureProtocol(c.CertURL()),
		}
		if id := types.FirstNonEmpty(c.CredentialID); id != "" {
			entry.Meta = "Credential ID: " + id
		}
		nodes = append(nodes, entryNode(entry))
	}
	return in.block(KindCertifications, nodes)
}

func buildAwards(in Input) *Block {
	var nodes []Node
	for _, a := range in.CV.Awards {
		title := a.AwardTitle()
		if title == "" {
			continue
		}
		nodes = append(nodes, entryNode(Entry{
			Title:     title,
			Subtitle:  a.IssuerName(),
			DateRange: in.date(a.Date),
			Children:  paragraphNodes(a.Description),
		}))
	}
	return in.block(KindAwards, nodes)
}

func buildLanguages(in Input) *Block {
	var nodes []Node
	for _, l := range in.CV.Languages {
		name := l.LanguageName()
		if name == "" {
			continue
		}
		nodes = append(nodes, keyValueNode(name, l.ProficiencyName(), ""))
	}
	return in.block(KindLanguages, nodes)
}

func buildReferences(in Input) *Block {
	if in.CV.ReferencesOnRequest() {
		return in.block(KindReferences, paragraphNodes(ReferencesOnRequestText))
	}

	var nodes []Node
	for _, r := range in.CV.References {
		name := types.FirstNonEmpty(r.Name)
		if name == "" {
			continue
		}
		entry := Entry{
			Title:    name,
			Subtitle: joinNonEmpty(", ", r.PositionName(), r.CompanyName()),
			Meta:     types.FirstNonEmpty(r.Relationship),
		}
		if email := types.FirstNonEmpty(r.Email); email != "" {
			entry.Children = append(entry.Children, keyValueNode("Email", email, "mailto:"+email))
		}
		if phone := types.FirstNonEmpty(r.Phone); phone != "" {
			entry.Children = append(entry.Children, keyValueNode("Phone", phone, telHref(phone)))
		}
		nodes = append(nodes, entryNode(entry))
	}
	return in.block(KindReferences, nodes)
}

func telHref(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	return "tel:" + digits
}
