package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeCSSString_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeCSSString(""))
}

func TestEscapeCSSString_NoSpecialCharacters(t *testing.T) {
	text := "Source Sans Pro"
	assert.Equal(t, text, EscapeCSSString(text))
}

func TestEscapeCSSString_Quote(t *testing.T) {
	assert.Equal(t, `Evil\" font`, EscapeCSSString(`Evil" font`))
}

func TestEscapeCSSString_Backslash(t *testing.T) {
	assert.Equal(t, `a\\b`, EscapeCSSString(`a\b`))
}

func TestEscapeCSSString_AngleBrackets(t *testing.T) {
	assert.Equal(t, `\3C /style\3E `, EscapeCSSString("</style>"))
}

func TestEscapeCSSString_RuleBreakers(t *testing.T) {
	assert.Equal(t, "Arialbodycolor: red", EscapeCSSString("Arial}body{color: red;"))
}

func TestSafeColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#fff", "#fff"},
		{"#2563eb", "#2563eb"},
		{"#2563ebcc", "#2563ebcc"},
		{"rgb(1, 2, 3)", "rgb(1, 2, 3)"},
		{"hsla(120, 50%, 50%, 0.5)", "hsla(120, 50%, 50%, 0.5)"},
		{"navy", "navy"},
		{"red; background: url(x)", "#000"},
		{"#12", "#000"},
		{"", "#000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeColor(tt.in, "#000"))
		})
	}
}

func TestSafeLength(t *testing.T) {
	assert.Equal(t, "1.5", SafeLength("1.5", "1"))
	assert.Equal(t, "0.5px", SafeLength(" 0.5px ", "0"))
	assert.Equal(t, "-1em", SafeLength("-1em", "0"))
	assert.Equal(t, "0", SafeLength("1px; color: red", "0"))
	assert.Equal(t, "0", SafeLength("wide", "0"))
}

func TestSafeWeight(t *testing.T) {
	assert.Equal(t, "700", SafeWeight("700", "400"))
	assert.Equal(t, "bold", SafeWeight("bold", "400"))
	assert.Equal(t, "400", SafeWeight("750", "400"))
}

func TestFontStack(t *testing.T) {
	assert.Equal(t, `"Helvetica", sans-serif`, FontStack(""))
	assert.Equal(t, `"Times-Roman", serif`, FontStack("Times-Roman"))
	assert.Equal(t, `"Courier", monospace`, FontStack("Courier"))
	assert.Equal(t, `"Source Sans Pro", sans-serif`, FontStack("Source Sans Pro"))
}
