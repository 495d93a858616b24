// Package parity checks that every renderer shows the same sections, in the
// same order, with the same titles as the document they were given.
package parity

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/rendering"
)

// Renderer names used in mismatch reports.
const (
	RendererPreview = "preview"
	RendererHTML    = "html"
	RendererPDFTree = "pdf-tree"
	RendererPDF     = "pdf"
)

// Section is the expected identity of one rendered section.
type Section struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// MismatchError describes the first divergence between a renderer and the
// document.
type MismatchError struct {
	Renderer string
	Position int
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("parity mismatch in %s at section %d: expected %q, got %q",
		e.Renderer, e.Position, e.Expected, e.Actual)
}

// SectionSequence lists the sections every renderer must show.
func SectionSequence(doc *document.ResolvedDocument) []Section {
	out := make([]Section, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, Section{Kind: string(s.Kind), Title: s.Title})
	}
	return out
}

// compare checks actual against expected, section by section.
func compare(renderer string, expected, actual []Section) error {
	for i := 0; i < len(expected) || i < len(actual); i++ {
		switch {
		case i >= len(actual):
			return &MismatchError{Renderer: renderer, Position: i, Expected: describe(expected[i]), Actual: "<missing>"}
		case i >= len(expected):
			return &MismatchError{Renderer: renderer, Position: i, Expected: "<end>", Actual: describe(actual[i])}
		case expected[i] != actual[i]:
			return &MismatchError{Renderer: renderer, Position: i, Expected: describe(expected[i]), Actual: describe(actual[i])}
		}
	}
	return nil
}

func describe(s Section) string {
	return s.Kind + ":" + s.Title
}

// CheckPreview verifies the preview tree.
func CheckPreview(doc *document.ResolvedDocument, root *rendering.PreviewNode) error {
	var actual []Section
	for i, n := range root.Find("data-section") {
		if err := checkIndex(RendererPreview, i, n.Attrs["data-index"]); err != nil {
			return err
		}
		title := ""
		if len(n.Children) > 0 {
			title = n.Children[0].TextContent()
		}
		actual = append(actual, Section{Kind: n.Attrs["data-section"], Title: title})
	}
	return compare(RendererPreview, SectionSequence(doc), actual)
}

// CheckPDFTree verifies the PDF layout tree.
func CheckPDFTree(doc *document.ResolvedDocument, tree *rendering.PDFDocument) error {
	var actual []Section
	for i, n := range tree.Sections() {
		if err := checkIndex(RendererPDFTree, i, n.Attrs["index"]); err != nil {
			return err
		}
		title := ""
		if len(n.Children) > 0 {
			title = n.Children[0].PlainText()
		}
		actual = append(actual, Section{Kind: n.Attrs["section"], Title: title})
	}
	return compare(RendererPDFTree, SectionSequence(doc), actual)
}

// CheckHTML verifies an HTML page, either the print page or the serialized
// PDF tree. The first child of each [data-section] element is its title.
func CheckHTML(doc *document.ResolvedDocument, html string) error {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}

	var actual []Section
	var indexErr error
	page.Find("[data-section]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		index, _ := s.Attr("data-index")
		if indexErr = checkIndex(RendererHTML, i, index); indexErr != nil {
			return false
		}
		kind, _ := s.Attr("data-section")
		title := strings.TrimSpace(s.Children().First().Text())
		actual = append(actual, Section{Kind: kind, Title: title})
		return true
	})
	if indexErr != nil {
		return indexErr
	}
	return compare(RendererHTML, SectionSequence(doc), actual)
}

// CheckPDF extracts the text of a printed PDF and verifies that the header
// name and every section title appear in document order. Whitespace is
// ignored because text extraction does not preserve it reliably.
func CheckPDF(doc *document.ResolvedDocument, data []byte) error {
	text, err := ExtractText(data)
	if err != nil {
		return err
	}
	haystack := squash(text)

	cursor := 0
	if name := squash(doc.Header.Name); name != "" {
		i := strings.Index(haystack, name)
		if i < 0 {
			return &MismatchError{Renderer: RendererPDF, Position: -1, Expected: doc.Header.Name, Actual: "<missing>"}
		}
		cursor = i + len(name)
	}
	for i, s := range SectionSequence(doc) {
		title := squash(s.Title)
		j := strings.Index(haystack[cursor:], title)
		if j < 0 {
			return &MismatchError{Renderer: RendererPDF, Position: i, Expected: describe(s), Actual: "<missing>"}
		}
		cursor += j + len(title)
	}
	return nil
}

// ExtractText returns the plain text of every page of a PDF.
func ExtractText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var b strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return b.String(), nil
}

func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func checkIndex(renderer string, want int, got string) error {
	if got != strconv.Itoa(want) {
		return &MismatchError{Renderer: renderer, Position: want, Expected: "index " + strconv.Itoa(want), Actual: "index " + got}
	}
	return nil
}

// Result is the outcome of one renderer check.
type Result struct {
	Renderer string `json:"renderer"`
	Sections int    `json:"sections"`
	Err      error  `json:"-"`
}

// OK reports whether the renderer matched the document.
func (r Result) OK() bool { return r.Err == nil }

// Verify checks every output present in out. PDF bytes are only checked when
// they were produced.
func Verify(doc *document.ResolvedDocument, out *rendering.Outputs) []Result {
	n := len(doc.Sections)
	results := []Result{
		{Renderer: RendererPreview, Sections: n, Err: CheckPreview(doc, out.Preview)},
		{Renderer: RendererHTML, Sections: n, Err: CheckHTML(doc, out.HTML)},
		{Renderer: RendererPDFTree, Sections: n, Err: CheckPDFTree(doc, out.PDFTree)},
	}
	if out.PDF != nil {
		results = append(results, Result{Renderer: RendererPDF, Sections: n, Err: CheckPDF(doc, out.PDF)})
	}
	return results
}

// FirstError returns the first failed result's error.
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
