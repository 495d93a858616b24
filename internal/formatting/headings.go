package formatting

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Heading transforms.
const (
	TransformUppercase    = "uppercase"
	TransformLowercase    = "lowercase"
	TransformCapitalize   = "capitalize"
	TransformFirstCapital = "first-capital"
	TransformNone         = "none"
)

// TransformHeading applies a heading case transform to text.
func TransformHeading(transform, text string) string {
	switch transform {
	case TransformUppercase:
		return strings.ToUpper(text)
	case TransformLowercase:
		return strings.ToLower(text)
	case TransformCapitalize:
		return capitalizeWords(text)
	case TransformFirstCapital:
		return upperFirst(strings.ToLower(text))
	default:
		return text
	}
}

// capitalizeWords upper-cases the first letter of each word and leaves the rest
// untouched, matching CSS text-transform: capitalize.
func capitalizeWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	startOfWord := true
	for _, r := range text {
		if startOfWord && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		startOfWord = unicode.IsSpace(r) || r == '-' || r == '/'
	}
	return b.String()
}

func upperFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}
