// Package pdf encodes a PDF layout tree into PDF bytes with a headless Chrome.
// Two engines are available: chromedp (default) and go-rod.
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/cv-composer/internal/rendering"
)

// Engine names accepted by NewEncoder.
const (
	EngineChromedp = "chromedp"
	EngineRod      = "rod"
)

// DefaultTimeout bounds one encode, browser start-up included.
const DefaultTimeout = 60 * time.Second

// A4 paper size in inches.
const (
	A4WidthInches  = 8.27
	A4HeightInches = 11.69
)

// Encoder turns a PDF layout tree into PDF bytes.
type Encoder interface {
	Encode(ctx context.Context, d *rendering.PDFDocument) ([]byte, error)
}

// EncodeError represents a failure while producing PDF bytes.
type EncodeError struct {
	Engine  string
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf encode error (%s): %s: %v", e.Engine, e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf encode error (%s): %s", e.Engine, e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Options configures an encoder.
type Options struct {
	// ChromePath overrides browser discovery when set.
	ChromePath string
	Timeout    time.Duration
	Verbose    bool
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// NewEncoder returns the encoder for engine. An empty engine selects chromedp.
func NewEncoder(engine string, opts Options) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineChromedp:
		return NewChromedpEncoder(opts), nil
	case EngineRod:
		return NewRodEncoder(opts), nil
	default:
		return nil, &EncodeError{Engine: engine, Message: "unknown pdf engine"}
	}
}

// documentHTML serializes d for printing.
func documentHTML(engine string, d *rendering.PDFDocument) (string, error) {
	if d == nil {
		return "", &EncodeError{Engine: engine, Message: "pdf document is nil"}
	}
	html, err := rendering.PDFTreeHTML(d)
	if err != nil {
		return "", &EncodeError{Engine: engine, Message: "failed to serialize layout", Cause: err}
	}
	return html, nil
}
