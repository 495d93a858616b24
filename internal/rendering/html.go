package rendering

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/cv-composer/internal/blocks"
	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/formatting"
)

//go:embed templates/cv.html.tmpl
var defaultTemplate string

// pageCSS sets up an A4 print page ahead of the theme rules.
const pageCSS = `@page { size: A4; margin: 0; }
* { box-sizing: border-box; }
html, body { margin: 0; padding: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.cv-page { width: 210mm; min-height: 297mm; }
.cv-list { list-style: none; }
.cv-section, .cv-entry { break-inside: avoid-page; }
a { color: inherit; }
`

// TemplateData is the value the HTML template executes against.
type TemplateData struct {
	Title     string
	CSS       template.CSS
	Doc       *document.ResolvedDocument
	ShowIcons bool
}

// RenderHTML renders doc as a complete, print-ready HTML page using the
// built-in template.
func RenderHTML(doc *document.ResolvedDocument) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}
	sheet := NewStyleSheet(doc)
	tmpl, err := parseTemplate("cv", defaultTemplate, sheet)
	if err != nil {
		return "", err
	}
	return executeTemplate(tmpl, doc, sheet)
}

// RenderHTMLWithTemplate renders doc with the template at templatePath. The
// template sees the same data and helper functions as the built-in one.
func RenderHTMLWithTemplate(doc *document.ResolvedDocument, templatePath string) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}
	content, err := loadTemplate(templatePath)
	if err != nil {
		return "", err
	}
	sheet := NewStyleSheet(doc)
	tmpl, err := parseTemplate("cv", content, sheet)
	if err != nil {
		return "", err
	}
	return executeTemplate(tmpl, doc, sheet)
}

func executeTemplate(tmpl *template.Template, doc *document.ResolvedDocument, sheet *StyleSheet) (string, error) {
	data := TemplateData{
		Title:     doc.Header.Name,
		CSS:       template.CSS(pageCSS + sheet.CSS()),
		Doc:       doc,
		ShowIcons: sheet.ShowIcons,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &RenderError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

// loadTemplate reads a template file from disk
func loadTemplate(templatePath string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return string(content), nil
}

// parseTemplate parses content with the helper functions bound to sheet
func parseTemplate(name, content string, sheet *StyleSheet) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs(sheet)).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func templateFuncs(sheet *StyleSheet) template.FuncMap {
	return template.FuncMap{
		"marker": func(b formatting.RichBlock, i int) string {
			return ListMarker(b, i, sheet.BulletMarker)
		},
		"inlineClass": func(run formatting.Inline) string {
			return strings.Join(inlineClasses(run), " ")
		},
		"linkLabel": LinkLabel,
		"tagText":   func(n blocks.Node) string { return TagText(n) },
		"keyLabel":  func(n blocks.Node) string { return KeyLabel(n) },
		"lines":     func(s string) []string { return strings.Split(s, "\n") },
		"imgSrc":    imageSource,
	}
}

// imageSource lets inline data images through the URL sanitizer; any other
// source is left to html/template.
func imageSource(src string) any {
	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "data:image/") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://") {
		return template.URL(src)
	}
	return src
}
