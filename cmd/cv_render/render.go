package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/rendering"
)

// Formats accepted by render --format.
const (
	formatPreview = "preview"
	formatHTML    = "html"
	formatPDFTree = "pdf-tree"
	formatPDF     = "pdf"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV in one output format",
	Long:  "Renders a CV as the editor preview tree (preview), a print-ready HTML page (html), the paginated PDF layout tree (pdf-tree) or PDF bytes (pdf).",
	RunE:  runRender,
}

var (
	renderInput    inputFlags
	renderFormat   string
	renderTemplate string
	renderOutput   string
)

func init() {
	renderInput.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", formatHTML, "Output format: preview, html, pdf-tree or pdf")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Custom HTML template (defaults to config template, then the built-in one)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	switch renderFormat {
	case formatPreview, formatHTML, formatPDFTree, formatPDF:
	default:
		return fmt.Errorf("unknown format %q (want preview, html, pdf-tree or pdf)", renderFormat)
	}

	doc, err := renderInput.assemble(cmd.Context())
	if err != nil {
		return err
	}

	var data []byte
	switch renderFormat {
	case formatPreview:
		data, err = marshalJSON(rendering.RenderPreview(doc))
	case formatHTML:
		var html string
		html, err = renderHTML(doc, renderTemplate)
		data = []byte(html)
	case formatPDFTree:
		data, err = marshalJSON(rendering.RenderPDFTree(doc))
	case formatPDF:
		if renderOutput == "" {
			return fmt.Errorf("--out is required for pdf output")
		}
		enc, encErr := newEncoder()
		if encErr != nil {
			return encErr
		}
		data, err = enc.Encode(cmd.Context(), rendering.RenderPDFTree(doc))
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", renderFormat, err)
	}

	if err := writeOutput(cmd, renderOutput, data); err != nil {
		return err
	}
	if renderOutput != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %s (%d sections) to %s\n", renderFormat, len(doc.Sections), renderOutput)
	}
	return nil
}

// renderHTML uses the flag template, then the configured one, then the
// built-in template.
func renderHTML(doc *document.ResolvedDocument, templatePath string) (string, error) {
	if templatePath == "" {
		templatePath = cfg.Template
	}
	if templatePath == "" {
		return rendering.RenderHTML(doc)
	}
	return rendering.RenderHTMLWithTemplate(doc, templatePath)
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
