package rendering

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"
)

const pdfTreeTemplate = `{{define "runs"}}{{range .}}{{if .Break}}<br>{{else if or .Bold .Italic}}<span style="{{runCSS .}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}{{end}}
{{define "node"}}
{{- if eq .Type "image"}}<img src="{{imgSrc .Src}}" style="{{css .Style}}">
{{- else if eq .Type "link"}}<a href="{{.Href}}" style="{{css .Style}}">{{.Text}}{{template "runs" .Runs}}</a>
{{- else if eq .Type "text"}}<div style="{{css .Style}}">{{.Text}}{{template "runs" .Runs}}</div>
{{- else}}<div style="{{css .Style}}"{{with .Attrs.section}} data-section="{{.}}"{{end}}{{with .Attrs.index}} data-index="{{.}}"{{end}}>{{range .Children}}{{template "node" .}}{{end}}</div>
{{- end}}
{{- end}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{pageCSS .}}
</style>
</head>
<body>
{{range .Pages}}<div class="pdf-page" style="{{css .Style}}">{{range .Children}}{{template "node" .}}{{end}}</div>
{{end}}
</body>
</html>`

// PDFTreeHTML serializes a PDF layout tree into a fixed-unit HTML page an
// encoder can print. It adds no content of its own.
func PDFTreeHTML(d *PDFDocument) (string, error) {
	if d == nil || len(d.Pages) == 0 {
		return "", &RenderError{Message: "pdf document has no pages"}
	}

	tmpl, err := template.New("pdf").Funcs(template.FuncMap{
		"css":     styleCSS,
		"runCSS":  runCSS,
		"pageCSS": pdfPageCSS,
		"imgSrc":  imageSource,
	}).Parse(pdfTreeTemplate)
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse pdf template",
			Cause:   err,
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", &RenderError{
			Message: "failed to serialize pdf tree",
			Cause:   err,
		}
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

// styleCSS renders a PDF style as an inline CSS declaration list with point
// units. Keys are sorted so output is stable.
func styleCSS(s PDFStyle) template.CSS {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var value string
		switch v := s[k].(type) {
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64) + "pt"
		case string:
			value = v
			if k == "fontFamily" {
				value = FontStack(v)
			}
		default:
			value = fmt.Sprint(v)
		}
		parts = append(parts, kebabCase(k)+": "+value)
	}
	return template.CSS(strings.Join(parts, "; "))
}

func runCSS(r TextRun) template.CSS {
	var parts []string
	if r.Bold {
		parts = append(parts, "font-weight: 700")
	}
	if r.Italic {
		parts = append(parts, "font-style: italic")
	}
	return template.CSS(strings.Join(parts, "; "))
}

// pdfPageCSS maps the first page's size and padding onto the print page so
// wrapped content keeps its margins on every physical page.
func pdfPageCSS(d *PDFDocument) template.CSS {
	p := d.Pages[0]
	size := p.Size
	if size == "" {
		size = PageSizeA4
	}
	margin := strconv.FormatFloat(p.Padding, 'f', -1, 64) + "pt"
	return template.CSS(fmt.Sprintf(`@page { size: %s; margin: %s; }
* { box-sizing: border-box; }
html, body { margin: 0; padding: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.pdf-page { display: block; }
a { color: inherit; }`, size, margin))
}

func kebabCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
