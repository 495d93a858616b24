package rendering

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/types"
)

func sampleRecord() *types.CVRecord {
	return &types.CVRecord{
		FullName:     "Ada Lovelace",
		Headline:     "Mathematician",
		Summary:      "First **programmer**.\n\n- Engines\n- Poetry",
		Email:        "ada@x.com",
		Phone:        "+44 1",
		Website:      "ada.dev",
		ProfileImage: "https://img.example/ada.png",
		Experience: []types.Experience{
			{Company: "Analytical Engines", Position: "Engineer", StartDate: "1843-01", Current: true, Description: "Wrote <notes> & tables"},
		},
		Publications: []types.Publication{
			{Title: "On Computation", Authors: types.StringList{"Lovelace, A."}, Journal: "Annals", Year: "1843", DOI: "10.1/ada"},
		},
		Skills:    []types.Skill{{Name: "Mathematics"}, {Name: "Poetry"}},
		Languages: []types.Language{{Name: "French", Level: "Fluent"}},
	}
}

func sampleDoc() *document.ResolvedDocument {
	return document.Assemble(sampleRecord(), nil, nil)
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.html.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderPreview_SectionsTagged(t *testing.T) {
	doc := sampleDoc()
	root := RenderPreview(doc)

	sections := root.Find("data-section")
	require.Len(t, sections, len(doc.Sections))
	for i, s := range sections {
		assert.Equal(t, string(doc.Sections[i].Kind), s.Attrs["data-section"])
		assert.Equal(t, doc.Sections[i].Title, s.Children[0].TextContent())
	}
	assert.Equal(t, "0", sections[0].Attrs["data-index"])
}

func TestRenderPreview_InlineStylesFromTheme(t *testing.T) {
	doc := sampleDoc()
	root := RenderPreview(doc)

	assert.Equal(t, "#ffffff", root.Style["backgroundColor"])
	assert.Equal(t, "40px", root.Style["padding"])

	header := root.Children[0]
	assert.Equal(t, "header", header.Tag)
	photo := header.Children[0]
	assert.Equal(t, "img", photo.Tag)
	assert.Equal(t, "112px", photo.Style["width"])
	assert.Equal(t, "56px", photo.Style["borderRadius"])
}

func TestRenderPreview_RichSummary(t *testing.T) {
	root := RenderPreview(sampleDoc())
	text := root.Children[0].TextContent()

	assert.Contains(t, text, "First programmer.")
	assert.Contains(t, text, "•Engines")
}

func TestRenderPreview_HiddenPhoto(t *testing.T) {
	doc := document.Assemble(sampleRecord(), []byte(`{"showPhoto":false}`), nil)
	header := RenderPreview(doc).Children[0]

	for _, c := range header.Children {
		assert.NotEqual(t, "img", c.Tag)
	}
}

func TestRenderHTML_Document(t *testing.T) {
	html, err := RenderHTML(sampleDoc())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "@page { size: A4; margin: 0; }")
	assert.Contains(t, html, `data-section="experience" data-index="0"`)
	assert.Contains(t, html, "Jan 1843 - Present")
	assert.Contains(t, html, "Lovelace, A. (1843). On Computation. Annals")
	assert.Contains(t, html, `href="https://doi.org/10.1/ada"`)
	assert.Contains(t, html, `class="cv-pill">Mathematics</span>`)
	assert.Contains(t, html, `width="112" height="112"`)
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	html, err := RenderHTML(sampleDoc())
	require.NoError(t, err)

	assert.Contains(t, html, "&lt;notes&gt; &amp; tables")
	assert.NotContains(t, html, "<notes>")
}

func TestRenderHTML_RejectsUnsafeColor(t *testing.T) {
	doc := document.Assemble(sampleRecord(), []byte(`{"colors":{"primary":"red;}</style><script>x</script>"}}`), nil)

	html, err := RenderHTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderHTML_NilDocument(t *testing.T) {
	_, err := RenderHTML(nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderHTMLWithTemplate_Valid(t *testing.T) {
	path := writeTemplate(t, `<h1>{{.Doc.Header.Name}}</h1>{{range .Doc.Sections}}<p>{{.Title}}</p>{{end}}`)

	html, err := RenderHTMLWithTemplate(sampleDoc(), path)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Ada Lovelace</h1>")
	assert.Contains(t, html, "<p>EXPERIENCE</p>")
}

func TestRenderHTMLWithTemplate_InvalidPath(t *testing.T) {
	_, err := RenderHTMLWithTemplate(sampleDoc(), "/nonexistent/template.html")
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestRenderHTMLWithTemplate_InvalidTemplate(t *testing.T) {
	path := writeTemplate(t, `<h1>{{.InvalidSyntax{{}}</h1>`)

	_, err := RenderHTMLWithTemplate(sampleDoc(), path)
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestRenderHTMLWithTemplate_ExecutionError(t *testing.T) {
	path := writeTemplate(t, `{{.Doc.NoSuchField}}`)

	_, err := RenderHTMLWithTemplate(sampleDoc(), path)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderPDFTree_PhotoInPoints(t *testing.T) {
	tree := RenderPDFTree(sampleDoc())

	require.Len(t, tree.Pages, 1)
	page := tree.Pages[0]
	assert.Equal(t, PageSizeA4, page.Size)
	assert.True(t, page.Wrap)
	assert.Equal(t, 30.0, page.Padding)

	photo := page.Children[0].Children[0]
	assert.Equal(t, PDFImage, photo.Type)
	assert.Equal(t, 84.0, photo.Style["width"])
	assert.Equal(t, 84.0, photo.Style["height"])
	assert.Equal(t, 42.0, photo.Style["borderRadius"])
}

func TestRenderPDFTree_SectionsMatchDocument(t *testing.T) {
	doc := sampleDoc()
	tree := RenderPDFTree(doc)

	sections := tree.Sections()
	require.Len(t, sections, len(doc.Sections))
	for i, s := range sections {
		assert.Equal(t, string(doc.Sections[i].Kind), s.Attrs["section"])
		assert.Equal(t, doc.Sections[i].Title, s.Children[0].Text)
	}
	assert.Contains(t, sections[0].PlainText(), "Jan 1843 - Present")
}

func TestRenderPDFTree_FontAndRuns(t *testing.T) {
	doc := document.Assemble(sampleRecord(), nil, nil)
	doc.Theme.Typography.BodyFont = "Times-Roman"
	tree := RenderPDFTree(doc)

	assert.Equal(t, "Times-Roman", tree.Pages[0].Style["fontFamily"])

	var bold bool
	var walk func(*PDFNode)
	walk = func(n *PDFNode) {
		for _, r := range n.Runs {
			if r.Bold && r.Text == "programmer" {
				bold = true
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree.Pages[0].Children[0])
	assert.True(t, bold)
}

func TestToPDFStyle(t *testing.T) {
	s := toPDFStyle(decl(
		"font-size", "16px",
		"margin", "0 0 12px",
		"line-height", "1.5",
		"color", "#000",
	))

	assert.Equal(t, 12.0, s["fontSize"])
	assert.Equal(t, "0 0 9pt", s["margin"])
	assert.Equal(t, "1.5", s["lineHeight"])
	assert.Equal(t, "#000", s["color"])
	assert.Nil(t, toPDFStyle(nil))
}

func TestPDFTreeHTML(t *testing.T) {
	html, err := PDFTreeHTML(RenderPDFTree(sampleDoc()))
	require.NoError(t, err)

	assert.Contains(t, html, "@page { size: A4; margin: 30pt; }")
	assert.Contains(t, html, `data-section="experience"`)
	assert.Contains(t, html, "width: 84pt")
	assert.Contains(t, html, "EXPERIENCE")

	_, err = PDFTreeHTML(&PDFDocument{})
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

type fakeEncoder struct {
	calls int
	err   error
}

func (f *fakeEncoder) Encode(_ context.Context, d *PDFDocument) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 " + d.Title), nil
}

func TestRenderAll(t *testing.T) {
	enc := &fakeEncoder{}
	out, err := RenderAll(context.Background(), sampleDoc(), enc)
	require.NoError(t, err)

	assert.NotNil(t, out.Preview)
	assert.Contains(t, out.HTML, "Ada Lovelace")
	assert.NotNil(t, out.PDFTree)
	assert.Equal(t, "%PDF-1.4 Ada Lovelace", string(out.PDF))
	assert.Equal(t, 1, enc.calls)
}

func TestRenderAll_WithoutEncoder(t *testing.T) {
	out, err := RenderAll(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)
	assert.Nil(t, out.PDF)
	assert.NotNil(t, out.PDFTree)
}

func TestRenderAll_EncoderFailure(t *testing.T) {
	boom := errors.New("chrome exploded")
	_, err := RenderAll(context.Background(), sampleDoc(), &fakeEncoder{err: boom})

	assert.ErrorIs(t, err, boom)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestStyleSheet_HeadingStyles(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"underline", "border-bottom: 2px solid #2563eb"},
		{"border-left", "border-left: 4px solid #2563eb"},
		{"background", "background-color: #2563eb"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			doc := sampleDoc()
			doc.Theme.Style.HeadingStyle = tt.style
			assert.Contains(t, NewStyleSheet(doc).Rule(ClassSectionTitle).CSS(), tt.want)
		})
	}
}

func TestStyleSheet_CompactHalvesSpacing(t *testing.T) {
	doc := sampleDoc()
	doc.Theme.Style.CompactMode = true
	sheet := NewStyleSheet(doc)

	assert.Equal(t, "margin-bottom: 6px", sheet.Rule(ClassEntry).CSS())
	assert.Contains(t, sheet.Rule(ClassPage).CSS(), "line-height: 1.3")
}

func TestStyleSheet_BulletMarker(t *testing.T) {
	doc := sampleDoc()
	doc.Theme.Style.BulletStyle = "dash"
	assert.Equal(t, "-", NewStyleSheet(doc).BulletMarker)
	doc.Theme.Style.BulletStyle = "none"
	assert.Equal(t, "", NewStyleSheet(doc).BulletMarker)
}

func TestLinkLabel(t *testing.T) {
	assert.Equal(t, "doi.org/10.1/ada", LinkLabel("https://doi.org/10.1/ada"))
	assert.Equal(t, "ada.dev", LinkLabel("http://www.ada.dev/"))
	assert.Equal(t, "ada@x.com", LinkLabel("mailto:ada@x.com"))
}
