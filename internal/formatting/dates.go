// Package formatting holds the pure, theme-aware formatters shared by every
// section builder: dates, heading case, citations, numbering labels and the
// markdown-lite rich text parser.
package formatting

import (
	"fmt"
	"strings"
	"time"
)

// Date styles.
const (
	DateShort   = "short"
	DateLong    = "long"
	DateNumeric = "numeric"
)

// PresentLabel is shown for ongoing ranges.
const PresentLabel = "Present"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	"2006/01",
	"01/2006",
	"1/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

// ParseDate parses the date shapes stored on CV records.
func ParseDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders value in the given style. Empty or unparsable input gives "".
func FormatDate(style, value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	switch style {
	case DateNumeric:
		return fmt.Sprintf("%02d/%04d", int(t.Month()), t.Year())
	case DateLong:
		return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
	default:
		return fmt.Sprintf("%s %d", t.Month().String()[:3], t.Year())
	}
}

// FormatDateRange renders "start - end". current, or an end value spelling
// "present", renders the end as PresentLabel. A missing side is dropped, and a
// range with nothing but PresentLabel renders empty.
func FormatDateRange(style, start, end string, current bool) string {
	from := FormatDate(style, start)

	var to string
	switch {
	case current, isPresentWord(end):
		to = PresentLabel
	default:
		to = FormatDate(style, end)
	}

	switch {
	case from != "" && to != "":
		return from + " - " + to
	case from != "":
		return from
	case to == PresentLabel:
		return ""
	default:
		return to
	}
}

func isPresentWord(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "current", "now", "ongoing":
		return true
	}
	return false
}
