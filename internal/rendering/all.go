package rendering

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-composer/internal/document"
)

// PDFEncoder turns a PDF layout tree into PDF bytes.
type PDFEncoder interface {
	Encode(ctx context.Context, d *PDFDocument) ([]byte, error)
}

// Outputs holds every rendering of one document.
type Outputs struct {
	Preview *PreviewNode
	HTML    string
	PDFTree *PDFDocument
	// PDF is nil when RenderAll ran without an encoder.
	PDF []byte
}

// RenderAll runs the three adapters concurrently over the same document. The
// document is only read. With a nil encoder the PDF tree is built but not
// encoded.
func RenderAll(ctx context.Context, doc *document.ResolvedDocument, enc PDFEncoder) (*Outputs, error) {
	if doc == nil {
		return nil, &RenderError{Message: "document is nil"}
	}

	start := time.Now()
	out := &Outputs{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Preview = RenderPreview(doc)
		return nil
	})
	g.Go(func() error {
		html, err := RenderHTML(doc)
		if err != nil {
			return err
		}
		out.HTML = html
		return nil
	})
	g.Go(func() error {
		tree := RenderPDFTree(doc)
		out.PDFTree = tree
		if enc == nil {
			return nil
		}
		pdf, err := enc.Encode(gctx, tree)
		if err != nil {
			return &RenderError{Message: "failed to encode pdf", Cause: err}
		}
		out.PDF = pdf
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Printf("[RENDER] rendered %d sections in %s", len(doc.Sections), time.Since(start).Round(time.Millisecond))
	return out, nil
}
