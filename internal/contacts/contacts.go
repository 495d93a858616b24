// Package contacts collects contact and social data from the redundant places a
// CV stores it, then normalizes, deduplicates and ranks the result.
package contacts

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-composer/internal/types"
)

// PrimaryLimit is the number of entries rendered as primary contact cards.
const PrimaryLimit = 4

// Entry is one rendered contact line.
type Entry struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	IconKey    string `json:"iconKey"`
	Href       string `json:"href,omitempty"`
	IsExternal bool   `json:"isExternal"`
	IsPrimary  bool   `json:"isPrimary"`
}

// Result splits entries into primary cards and secondary chips.
type Result struct {
	Primary   []Entry `json:"primary"`
	Secondary []Entry `json:"secondary"`
}

// All returns primary followed by secondary entries.
func (r Result) All() []Entry {
	out := make([]Entry, 0, len(r.Primary)+len(r.Secondary))
	out = append(out, r.Primary...)
	return append(out, r.Secondary...)
}

var (
	urlLikeRe  = regexp.MustCompile(`^[^\s@]+\.[a-zA-Z]{2,}(?:[/?#]\S*)?$`)
	emailSepRe = regexp.MustCompile(`[,;]`)
	phoneKeep  = regexp.MustCompile(`[^0-9+]`)
)

// EnsureProtocol prefixes https:// when value carries no scheme.
func EnsureProtocol(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	lower := strings.ToLower(v)
	if strings.Contains(v, "://") || strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:") {
		return v
	}
	return "https://" + strings.TrimPrefix(v, "//")
}

// LooksLikeURL reports whether value has a scheme or ends in a dotted
// TLD-like suffix.
func LooksLikeURL(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if strings.Contains(v, "://") {
		return true
	}
	return urlLikeRe.MatchString(v)
}

// Aggregate builds the contact list for cv. Sources are visited in precedence
// order and the first occurrence of a duplicate wins.
func Aggregate(cv *types.CVRecord) Result {
	if cv == nil {
		return Result{}
	}
	c := &collector{seen: make(map[string]bool)}

	c.addEmails(cv.Email)
	c.add(Entry{Label: "Phone", Value: cv.Phone, IconKey: "phone", Href: telHref(cv.Phone)})
	c.add(Entry{Label: "Location", Value: cv.Location, IconKey: "map-pin"})
	c.add(urlEntry("Website", "globe", cv.Website))

	for _, s := range socialScalars(cv) {
		c.add(socialEntry(s.platform, s.value))
	}

	for _, info := range cv.ContactInfo {
		c.add(contactInfoEntry(info))
	}

	for _, link := range cv.SocialLinks {
		c.add(socialEntry(link.Platform, link.URL))
	}

	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[i].IsPrimary && !c.entries[j].IsPrimary
	})

	var res Result
	for i, e := range c.entries {
		if i < PrimaryLimit {
			res.Primary = append(res.Primary, e)
		} else {
			res.Secondary = append(res.Secondary, e)
		}
	}
	return res
}

type collector struct {
	entries []Entry
	seen    map[string]bool
}

func (c *collector) add(e Entry) {
	e.Value = strings.TrimSpace(e.Value)
	if e.Value == "" {
		return
	}
	key := strings.ToLower(e.Label) + "|" + e.Value
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.entries = append(c.entries, e)
}

func (c *collector) addEmails(raw string) {
	var addrs []string
	for _, part := range emailSepRe.Split(raw, -1) {
		if a := strings.TrimSpace(part); a != "" {
			addrs = append(addrs, a)
		}
	}
	if len(addrs) == 0 {
		return
	}
	e := Entry{Label: "Email", Value: strings.Join(addrs, "\n"), IconKey: "mail"}
	if len(addrs) == 1 {
		e.Href = "mailto:" + addrs[0]
	}
	c.add(e)
}

func telHref(phone string) string {
	digits := phoneKeep.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}
	return "tel:" + digits
}

func urlEntry(label, icon, value string) Entry {
	href := EnsureProtocol(value)
	return Entry{Label: label, Value: value, IconKey: icon, Href: href, IsExternal: href != ""}
}

type socialScalar struct {
	platform string
	value    string
}

func socialScalars(cv *types.CVRecord) []socialScalar {
	return []socialScalar{
		{"linkedin", cv.LinkedIn},
		{"github", cv.GitHub},
		{"googlescholar", cv.GoogleScholar},
		{"twitter", cv.Twitter},
	}
}

func socialEntry(platform, value string) Entry {
	key := normalizeType(platform)
	e := urlEntry(Humanize(platform), IconFor(platform), value)
	if isHandle(value) {
		if href := profileURL(key, strings.TrimPrefix(strings.TrimSpace(value), "@")); href != "" {
			e.Href = href
		}
	}
	return e
}

func contactInfoEntry(info types.ContactInfo) Entry {
	kind := normalizeType(info.Type)
	label := strings.TrimSpace(info.Label)
	if label == "" {
		label = Humanize(info.Type)
	}
	e := Entry{
		Label:     label,
		Value:     info.Value,
		IconKey:   IconFor(info.Type),
		IsPrimary: info.IsPrimary,
	}

	value := strings.TrimSpace(info.Value)
	switch {
	case kind == "email":
		e.Href = "mailto:" + value
	case kind == "phone" || kind == "mobile":
		e.Href = telHref(value)
	case LooksLikeURL(value):
		e.Href = EnsureProtocol(value)
		e.IsExternal = true
	case isHandle(value):
		if href := profileURL(kind, strings.TrimPrefix(value, "@")); href != "" {
			e.Href = href
			e.IsExternal = true
		}
	}
	return e
}

// isHandle reports whether value looks like a bare username rather than a URL.
func isHandle(value string) bool {
	v := strings.TrimPrefix(strings.TrimSpace(value), "@")
	return v != "" && !strings.ContainsAny(v, "./:@ ")
}
