package pdf

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/cv-composer/internal/rendering"
)

// ChromedpEncoder prints through a chromedp-driven headless Chrome. Each
// Encode starts and stops its own browser.
type ChromedpEncoder struct {
	opts Options
}

// NewChromedpEncoder creates a chromedp encoder.
func NewChromedpEncoder(opts Options) *ChromedpEncoder {
	return &ChromedpEncoder{opts: opts}
}

// Encode renders d and prints it to an A4 PDF.
func (e *ChromedpEncoder) Encode(ctx context.Context, d *rendering.PDFDocument) ([]byte, error) {
	html, err := documentHTML(EngineChromedp, d)
	if err != nil {
		return nil, err
	}
	return e.PrintHTML(ctx, html)
}

// PrintHTML loads html into a blank page and prints it.
func (e *ChromedpEncoder) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	start := time.Now()
	if e.opts.Verbose {
		log.Printf("[PDF] Starting headless browser (chromedp), %d bytes of HTML", len(html))
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.opts.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.opts.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, e.opts.timeout())
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(A4WidthInches).
				WithPaperHeight(A4HeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &EncodeError{Engine: EngineChromedp, Message: "browser printing failed", Cause: err}
	}

	if e.opts.Verbose {
		log.Printf("[PDF] Printed %d bytes in %s", len(pdf), time.Since(start).Round(time.Millisecond))
	}
	return pdf, nil
}
