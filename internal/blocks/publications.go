package blocks

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/cv-composer/internal/contacts"
	"github.com/jonathan/cv-composer/internal/formatting"
	"github.com/jonathan/cv-composer/internal/types"
)

// Publication sort and group modes.
const (
	GroupByNone = "none"
	GroupByType = "type"

	SortByDate   = "date"
	SortByRank   = "rank"
	SortByCustom = "custom"
)

type publication struct {
	record types.Publication
	kind   formatting.PublicationKind
	year   int
}

func buildPublications(in Input) *Block {
	var pubs []publication
	for _, p := range in.CV.Publications {
		if types.FirstNonEmpty(p.Title) == "" {
			continue
		}
		year, _ := strconv.Atoi(p.YearValue())
		pubs = append(pubs, publication{
			record: p,
			kind:   formatting.ClassifyPublication(p.KindName(), p.Journal, p.ConferenceName()),
			year:   year,
		})
	}
	if len(pubs) == 0 {
		return nil
	}

	sortPublications(pubs, in.CV.PublicationsSortBy)

	style := formatting.NormalizeCitationStyle(in.CV.CitationStyle)
	numbering := formatting.NormalizeNumberingStyle(in.CV.NumberingStyle)
	showNumbers := in.CV.ShowNumbering != nil && *in.CV.ShowNumbering

	n := numberer{style: numbering, perKind: make(map[formatting.PublicationKind]int)}

	var nodes []Node
	if strings.EqualFold(strings.TrimSpace(in.CV.PublicationsGroupBy), GroupByType) {
		for _, kind := range []formatting.PublicationKind{formatting.KindJournal, formatting.KindConference} {
			var group []Node
			for _, p := range pubs {
				if p.kind == kind {
					group = append(group, publicationNode(p, style, n.next(p.kind, showNumbers)))
				}
			}
			if len(group) > 0 {
				nodes = append(nodes, headingNode(kind.GroupLabel()))
				nodes = append(nodes, group...)
			}
		}
	} else {
		for _, p := range pubs {
			nodes = append(nodes, publicationNode(p, style, n.next(p.kind, showNumbers)))
		}
	}

	return in.block(KindPublications, nodes)
}

// sortPublications orders in place. "custom" keeps stored order. "rank" has no
// ranking source yet and sorts like "date".
func sortPublications(pubs []publication, sortBy string) {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case SortByCustom:
		return
	default:
		sort.SliceStable(pubs, func(i, j int) bool {
			return pubs[i].year > pubs[j].year
		})
	}
}

// numberer hands out labels in display order.
type numberer struct {
	style   string
	total   int
	perKind map[formatting.PublicationKind]int
}

func (n *numberer) next(kind formatting.PublicationKind, enabled bool) string {
	if !enabled {
		return ""
	}
	var label string
	if n.style == formatting.NumberingGrouped {
		label = formatting.PublicationNumber(n.perKind[kind], kind, n.style)
	} else {
		label = formatting.PublicationNumber(n.total, kind, n.style)
	}
	n.total++
	n.perKind[kind]++
	return label
}

func publicationNode(p publication, style, number string) Node {
	r := p.record
	venue := types.FirstNonEmpty(r.Journal, r.ConferenceName(), r.Publisher)
	if p.kind == formatting.KindConference {
		venue = types.FirstNonEmpty(r.ConferenceName(), r.Journal, r.Publisher)
	}

	citation := formatting.FormatCitation(formatting.Citation{
		Authors: r.Authors.Join(", "),
		Title:   r.Title,
		Venue:   venue,
		Volume:  r.Volume.String(),
		Issue:   r.IssueNumber(),
		Pages:   r.Pages.String(),
		Year:    r.YearValue(),
		DOI:     r.DOI,
	}, style)

	link := formatting.DOIURL(r.DOI)
	if link == "" {
		link = contacts.EnsureProtocol(r.URL)
	}

	return entryNode(Entry{Number: number, Text: citation, Link: link})
}
