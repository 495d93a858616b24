package formatting

import "strings"

// Citation styles.
const (
	StyleAPA       = "APA"
	StyleIEEE      = "IEEE"
	StyleMLA       = "MLA"
	StyleChicago   = "Chicago"
	StyleHarvard   = "Harvard"
	StyleVancouver = "Vancouver"
)

// CitationStyles lists the supported styles.
var CitationStyles = []string{StyleAPA, StyleIEEE, StyleMLA, StyleChicago, StyleHarvard, StyleVancouver}

// Citation is the already-resolved bibliographic data of one publication.
// Venue is the journal or conference name.
type Citation struct {
	Authors string
	Title   string
	Venue   string
	Volume  string
	Issue   string
	Pages   string
	Year    string
	DOI     string
}

// NormalizeCitationStyle maps a stored style name onto a supported style,
// defaulting to APA.
func NormalizeCitationStyle(style string) string {
	for _, s := range CitationStyles {
		if strings.EqualFold(strings.TrimSpace(style), s) {
			return s
		}
	}
	return StyleAPA
}

// FormatCitation renders c in the given style. Missing fields drop their slot
// together with the punctuation that belongs to it.
func FormatCitation(c Citation, style string) string {
	c = trimCitation(c)
	switch NormalizeCitationStyle(style) {
	case StyleIEEE:
		return ieee(c)
	case StyleMLA:
		return mla(c)
	case StyleChicago:
		return chicago(c)
	case StyleHarvard:
		return harvard(c)
	case StyleVancouver:
		return vancouver(c)
	default:
		return apa(c)
	}
}

func trimCitation(c Citation) Citation {
	return Citation{
		Authors: strings.TrimSpace(c.Authors),
		Title:   strings.TrimSpace(c.Title),
		Venue:   strings.TrimSpace(c.Venue),
		Volume:  strings.TrimSpace(c.Volume),
		Issue:   strings.TrimSpace(c.Issue),
		Pages:   strings.TrimSpace(c.Pages),
		Year:    strings.TrimSpace(c.Year),
		DOI:     strings.TrimSpace(c.DOI),
	}
}

// sentence joins non-empty parts with sep.
func sentence(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func wrap(prefix, value, suffix string) string {
	if value == "" {
		return ""
	}
	return prefix + value + suffix
}

// DOIURL turns a bare DOI into a resolvable URL.
func DOIURL(doi string) string {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return ""
	}
	lower := strings.ToLower(doi)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return doi
	}
	if strings.HasPrefix(lower, "doi:") {
		doi = strings.TrimSpace(doi[len("doi:"):])
	}
	return "https://doi.org/" + doi
}

// Lovelace, A. (1843). On Computation. Annals, 1(2), 1-10. https://doi.org/x
func apa(c Citation) string {
	head := sentence(" ", c.Authors, wrap("(", c.Year, ")"))
	venue := c.Venue
	if venue != "" {
		venue += wrap(", ", c.Volume, "") + wrap("(", c.Issue, ")") + wrap(", ", c.Pages, "")
	}
	return periods(head, c.Title, venue, DOIURL(c.DOI))
}

// periods joins the non-empty segments with a space, closing every segment
// but the last with a period.
func periods(segments ...string) string {
	kept := segments[:0:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	for i := 0; i < len(kept)-1; i++ {
		kept[i] = endWith(kept[i], ".")
	}
	return strings.Join(kept, " ")
}

// A. Lovelace, "On Computation," Annals, vol. 1, no. 2, pp. 1-10, 1843.
func ieee(c Citation) string {
	tail := sentence(", ", c.Venue, wrap("vol. ", c.Volume, ""), wrap("no. ", c.Issue, ""), wrap("pp. ", c.Pages, ""), c.Year)
	var title string
	switch {
	case c.Title != "" && tail != "" && !terminal(c.Title):
		title = `"` + c.Title + `,"`
	case c.Title != "":
		title = `"` + endWith(c.Title, ".") + `"`
	}
	out := sentence(" ", wrap("", c.Authors, ","), title, wrap("", tail, "."))
	return strings.TrimSuffix(out, ",")
}

// Lovelace, A. "On Computation." Annals, vol. 1, no. 2, 1843, pp. 1-10.
func mla(c Citation) string {
	tail := sentence(", ", c.Venue, wrap("vol. ", c.Volume, ""), wrap("no. ", c.Issue, ""), c.Year, wrap("pp. ", c.Pages, ""))
	return sentence(" ", endWith(c.Authors, "."), wrap(`"`, endWith(c.Title, "."), `"`), wrap("", tail, "."))
}

// Lovelace, A. "On Computation." Annals 1, no. 2 (1843): 1-10.
func chicago(c Citation) string {
	venue := sentence(", ", sentence(" ", c.Venue, c.Volume), wrap("no. ", c.Issue, ""))
	venue = sentence(" ", venue, wrap("(", c.Year, ")"))
	if c.Pages != "" {
		venue = sentence(": ", venue, c.Pages)
	}
	return sentence(" ", endWith(c.Authors, "."), wrap(`"`, endWith(c.Title, "."), `"`), wrap("", venue, "."))
}

// Lovelace, A. (1843) 'On Computation', Annals, 1(2), pp. 1-10.
func harvard(c Citation) string {
	head := sentence(" ", c.Authors, wrap("(", c.Year, ")"))
	volume := c.Volume + wrap("(", c.Issue, ")")
	tail := sentence(", ", wrap("'", c.Title, "'"), c.Venue, volume, wrap("pp. ", c.Pages, ""))
	if c.Title == "" && tail != "" {
		head = endWith(head, ".")
	}
	return wrap("", sentence(" ", head, tail), ".")
}

// Lovelace A. On Computation. Annals. 1843;1(2):1-10.
func vancouver(c Citation) string {
	issue := c.Year
	if vol := c.Volume + wrap("(", c.Issue, ")"); vol != "" {
		issue = sentence(";", issue, vol)
	}
	if c.Pages != "" {
		issue = sentence(":", issue, c.Pages)
	}
	return sentence(" ", endWith(c.Authors, "."), endWith(c.Title, "."), endWith(c.Venue, "."), endWith(issue, "."))
}

// endWith appends punct unless s is empty or already ends in terminal
// punctuation.
func endWith(s, punct string) string {
	if s == "" || strings.HasSuffix(s, punct) {
		return s
	}
	if punct == "." && terminal(s) {
		return s
	}
	return s + punct
}

func terminal(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "?") || strings.HasSuffix(s, "!")
}
