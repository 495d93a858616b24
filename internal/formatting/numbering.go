package formatting

import (
	"strconv"
	"strings"
)

// Numbering styles.
const (
	NumberingSequential = "sequential"
	NumberingGrouped    = "grouped"
)

// PublicationKind partitions publications for grouping and grouped numbering.
type PublicationKind string

const (
	KindJournal    PublicationKind = "journal"
	KindConference PublicationKind = "conference"
)

// Prefix is the grouped-numbering letter for the kind.
func (k PublicationKind) Prefix() string {
	if k == KindConference {
		return "C"
	}
	return "J"
}

// GroupLabel is the sub-heading used when publications are grouped by type.
func (k PublicationKind) GroupLabel() string {
	if k == KindConference {
		return "Conference Papers"
	}
	return "Journal Articles"
}

// ClassifyPublication decides the kind from the stored type, falling back to
// which venue field is filled.
func ClassifyPublication(kind, journal, conference string) PublicationKind {
	switch k := strings.ToLower(strings.TrimSpace(kind)); {
	case strings.Contains(k, "conference"), strings.Contains(k, "proceeding"), k == "inproceedings", k == "workshop":
		return KindConference
	case k != "":
		return KindJournal
	}
	if strings.TrimSpace(journal) == "" && strings.TrimSpace(conference) != "" {
		return KindConference
	}
	return KindJournal
}

// NormalizeNumberingStyle defaults unknown styles to sequential.
func NormalizeNumberingStyle(style string) string {
	if strings.EqualFold(strings.TrimSpace(style), NumberingGrouped) {
		return NumberingGrouped
	}
	return NumberingSequential
}

// PublicationNumber formats a numbering label. For sequential numbering index is
// the 0-based position in the whole list; for grouped numbering it is the
// 0-based position within the item's own kind.
func PublicationNumber(index int, kind PublicationKind, style string) string {
	n := strconv.Itoa(index + 1)
	if NormalizeNumberingStyle(style) == NumberingGrouped {
		return "[" + kind.Prefix() + n + "]"
	}
	return "[" + n + "]"
}
