package pdf

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/jonathan/cv-composer/internal/rendering"
)

// RodEncoder prints through a go-rod controlled Chromium.
type RodEncoder struct {
	opts Options
}

// NewRodEncoder creates a go-rod encoder.
func NewRodEncoder(opts Options) *RodEncoder {
	return &RodEncoder{opts: opts}
}

// Encode renders d and prints it to a PDF sized by the page's CSS.
func (e *RodEncoder) Encode(ctx context.Context, d *rendering.PDFDocument) ([]byte, error) {
	html, err := documentHTML(EngineRod, d)
	if err != nil {
		return nil, err
	}
	return e.PrintHTML(ctx, html)
}

// PrintHTML sets html as the content of a new page and prints it.
func (e *RodEncoder) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	start := time.Now()
	if e.opts.Verbose {
		log.Printf("[PDF] Starting headless browser (rod), %d bytes of HTML", len(html))
	}

	launch := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true)
	if e.opts.ChromePath != "" {
		launch = launch.Bin(e.opts.ChromePath)
	} else if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	controlURL, err := launch.Launch()
	if err != nil {
		return nil, &EncodeError{Engine: EngineRod, Message: "failed to launch chromium", Cause: err}
	}
	defer launch.Cleanup()

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, &EncodeError{Engine: EngineRod, Message: "failed to connect browser", Cause: err}
	}
	defer func() {
		_ = browser.Close()
	}()

	timeout := e.opts.timeout()
	page, err := browser.Timeout(timeout).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, &EncodeError{Engine: EngineRod, Message: "failed to create page", Cause: err}
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(timeout)
	if err := page.SetDocumentContent(html); err != nil {
		return nil, &EncodeError{Engine: EngineRod, Message: "failed to set document content", Cause: err}
	}
	if err := page.WaitLoad(); err != nil {
		return nil, &EncodeError{Engine: EngineRod, Message: "failed waiting for load", Cause: err}
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, &EncodeError{Engine: EngineRod, Message: "failed to export pdf", Cause: err}
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &EncodeError{Engine: EngineRod, Message: "failed to read pdf bytes", Cause: err}
	}

	if e.opts.Verbose {
		log.Printf("[PDF] Printed %d bytes in %s", len(data), time.Since(start).Round(time.Millisecond))
	}
	return data, nil
}
