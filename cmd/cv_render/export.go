package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/observability"
	"github.com/jonathan/cv-composer/internal/parity"
	"github.com/jonathan/cv-composer/internal/rendering"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every output format and verify they agree",
	Long:  "Renders the preview tree, HTML page, PDF layout tree and (unless --no-pdf) PDF bytes concurrently from one document, writes them to --out-dir and checks that every renderer shows the same sections in the same order.",
	RunE:  runExport,
}

var (
	exportInput  inputFlags
	exportOutDir string
	exportNoPDF  bool
)

func init() {
	exportInput.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", "", "Directory to write outputs to (required)")
	exportCmd.Flags().BoolVar(&exportNoPDF, "no-pdf", false, "Skip PDF printing (no browser needed)")
	_ = exportCmd.MarkFlagRequired("out-dir")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	doc, err := exportInput.assemble(ctx)
	if err != nil {
		return err
	}

	var enc rendering.PDFEncoder
	if !exportNoPDF {
		e, err := newEncoder()
		if err != nil {
			return err
		}
		enc = e
	}

	out, err := rendering.RenderAll(ctx, doc, enc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	documentJSON, err := marshalJSON(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	previewJSON, err := marshalJSON(out.Preview)
	if err != nil {
		return fmt.Errorf("failed to marshal preview: %w", err)
	}
	treeJSON, err := marshalJSON(out.PDFTree)
	if err != nil {
		return fmt.Errorf("failed to marshal pdf tree: %w", err)
	}

	files := map[string][]byte{
		"document.json": documentJSON,
		"preview.json":  previewJSON,
		"cv.html":       []byte(out.HTML),
		"pdf-tree.json": treeJSON,
	}
	if out.PDF != nil {
		files["cv.pdf"] = out.PDF
	}

	sizes := make(map[string]int, len(files))
	for name, data := range files {
		path := filepath.Join(exportOutDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		sizes[path] = len(data)
	}

	results := parity.Verify(doc, out)
	if cfg.Verbose {
		p := observability.NewPrinter(os.Stderr)
		p.PrintOutputs(sizes)
		p.PrintParity(results)
	}
	if err := parity.FirstError(results); err != nil {
		return fmt.Errorf("renderers diverged: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files with %d sections to %s\n", len(files), len(doc.Sections), exportOutDir)
	return nil
}
