package contacts

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

var iconByType = map[string]string{
	"email":         "mail",
	"phone":         "phone",
	"mobile":        "phone",
	"address":       "map-pin",
	"location":      "map-pin",
	"website":       "globe",
	"url":           "globe",
	"portfolio":     "globe",
	"blog":          "globe",
	"linkedin":      "linkedin",
	"github":        "github",
	"gitlab":        "gitlab",
	"twitter":       "twitter",
	"x":             "twitter",
	"googlescholar": "graduation-cap",
	"scholar":       "graduation-cap",
	"orcid":         "orcid",
	"researchgate":  "book-open",
	"skype":         "message-circle",
	"whatsapp":      "message-circle",
	"telegram":      "send",
}

var labelByType = map[string]string{
	"email":         "Email",
	"linkedin":      "LinkedIn",
	"github":        "GitHub",
	"gitlab":        "GitLab",
	"googlescholar": "Google Scholar",
	"orcid":         "ORCID",
	"researchgate":  "ResearchGate",
	"x":             "X",
	"whatsapp":      "WhatsApp",
}

var profileBase = map[string]string{
	"linkedin":      "https://www.linkedin.com/in/",
	"github":        "https://github.com/",
	"gitlab":        "https://gitlab.com/",
	"twitter":       "https://twitter.com/",
	"x":             "https://x.com/",
	"googlescholar": "https://scholar.google.com/citations?user=",
	"orcid":         "https://orcid.org/",
}

// normalizeType folds "Google Scholar", "google_scholar" and "googleScholar"
// to the same lookup key.
func normalizeType(t string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(t)))
}

// IconFor returns the icon key for a contact type or platform name.
func IconFor(t string) string {
	if icon, ok := iconByType[normalizeType(t)]; ok {
		return icon
	}
	return "link"
}

// Humanize turns a contact type into a display label.
func Humanize(t string) string {
	if label, ok := labelByType[normalizeType(t)]; ok {
		return label
	}
	t = strings.TrimSpace(t)
	if t == "" {
		return "Link"
	}

	var words []string
	for _, w := range strings.FieldsFunc(splitCamel(t), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}) {
		r, size := utf8.DecodeRuneInString(w)
		words = append(words, string(unicode.ToUpper(r))+strings.ToLower(w[size:]))
	}
	return strings.Join(words, " ")
}

func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := s[i-1]
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func profileURL(kind, handle string) string {
	base, ok := profileBase[kind]
	if !ok || handle == "" {
		return ""
	}
	return base + url.PathEscape(handle)
}
