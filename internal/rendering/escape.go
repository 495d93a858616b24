package rendering

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-composer/internal/theme"
)

var (
	hexColorRe   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorRe  = regexp.MustCompile(`^(?:rgba?|hsla?)\(\s*[0-9.]+%?(?:\s*[,/ ]\s*[0-9.]+%?){2,3}\s*\)$`)
	namedColorRe = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
	lengthRe     = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:px|pt|em|rem|%)?$`)
	weightRe     = regexp.MustCompile(`^(?:[1-9]00|normal|bold|lighter|bolder)$`)
)

// SafeColor returns value when it is a hex, rgb(), hsl() or named CSS color,
// and fallback otherwise.
func SafeColor(value, fallback string) string {
	v := strings.TrimSpace(value)
	if hexColorRe.MatchString(v) || funcColorRe.MatchString(v) || namedColorRe.MatchString(v) {
		return v
	}
	return fallback
}

// SafeLength returns value when it is a plain number or a px, pt, em, rem or
// percent length, and fallback otherwise.
func SafeLength(value, fallback string) string {
	v := strings.TrimSpace(value)
	if lengthRe.MatchString(v) {
		return v
	}
	return fallback
}

// SafeWeight returns value when it is a CSS font-weight keyword or hundred.
func SafeWeight(value, fallback string) string {
	v := strings.TrimSpace(value)
	if weightRe.MatchString(v) {
		return v
	}
	return fallback
}

// EscapeCSSString escapes text for use inside a double-quoted CSS string.
func EscapeCSSString(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + 8)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\\`)
		case '"':
			result.WriteString(`\"`)
		case '\n':
			result.WriteString(`\A `)
		case '<':
			result.WriteString(`\3C `)
		case '>':
			result.WriteString(`\3E `)
		case '{', '}', ';':
			// dropped: never meaningful inside a font name
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// FontStack returns a CSS font-family list for a theme font name, ending in a
// generic family so unknown fonts still render.
func FontStack(name string) string {
	family := strings.TrimSpace(name)
	if family == "" {
		family = theme.BaseFont
	}
	lower := strings.ToLower(family)
	generic := "sans-serif"
	switch {
	case strings.Contains(lower, "mono") || strings.Contains(lower, "courier"):
		generic = "monospace"
	case strings.Contains(lower, "sans"):
	case strings.Contains(lower, "serif") || strings.Contains(lower, "times") ||
		strings.Contains(lower, "georgia") || strings.Contains(lower, "garamond"):
		generic = "serif"
	}
	return `"` + EscapeCSSString(family) + `", ` + generic
}
