// Package observability provides formatted output for verbose CLI mode and
// the prometheus metrics exported by the server.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/parity"
	"github.com/jonathan/cv-composer/internal/theme"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintDocument outputs a summary of an assembled document: header, theme and
// the rendered section order.
func (p *Printer) PrintDocument(doc *document.ResolvedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Header.Name))
	if doc.Header.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", doc.Header.Headline))
	}
	sb.WriteString(fmt.Sprintf("Theme:    %s (%s)\n", doc.Theme.PresetName, doc.Theme.PresetID))
	sb.WriteString(fmt.Sprintf("Contacts: %d primary, %d secondary\n", len(doc.Header.Primary), len(doc.Header.Secondary)))
	if doc.Header.Photo != nil {
		sb.WriteString(fmt.Sprintf("Photo:    %dx%d px\n", doc.Header.Photo.Width, doc.Header.Photo.Height))
	}
	sb.WriteString("\n")

	if len(doc.Sections) == 0 {
		sb.WriteString("No sections to render")
	} else {
		sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(doc.Sections)))
		for _, s := range doc.Sections {
			sb.WriteString(fmt.Sprintf("  %d. %s [%s] %d nodes\n", s.Index+1, s.Title, s.Kind, len(s.Nodes)))
		}
	}

	p.printBox("RESOLVED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintThemeSources outputs which theme fields came from the user override
// and how many fell back to the preset or the defaults.
func (p *Printer) PrintThemeSources(resolved theme.Resolved, sources map[string]theme.Source) {
	if len(sources) == 0 {
		return
	}

	counts := make(map[theme.Source]int)
	var overridden []string
	for path, src := range sources {
		counts[src]++
		if src == theme.SourceOverride {
			overridden = append(overridden, path)
		}
	}
	sort.Strings(overridden)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Preset: %s\n", resolved.PresetID))
	sb.WriteString(fmt.Sprintf("Fields: %d override, %d preset, %d default\n",
		counts[theme.SourceOverride], counts[theme.SourcePreset], counts[theme.SourceDefault]))

	if len(overridden) > 0 {
		sb.WriteString("\nOverridden:\n")
		count := min(len(overridden), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", overridden[i]))
		}
		if len(overridden) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(overridden)-maxItemsToShow))
		}
	}

	p.printBox("THEME RESOLUTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParity outputs the per-renderer parity verdicts.
func (p *Printer) PrintParity(results []parity.Result) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, r := range results {
		if r.OK() {
			sb.WriteString(fmt.Sprintf("✓ %-9s %d sections\n", r.Renderer, r.Sections))
			continue
		}
		failed++
		sb.WriteString(fmt.Sprintf("✗ %-9s %v\n", r.Renderer, r.Err))
	}

	if failed == 0 {
		sb.WriteString("\nAll renderers agree")
	} else {
		sb.WriteString(fmt.Sprintf("\n%d of %d renderers diverged", failed, len(results)))
	}

	p.printBox("RENDERER PARITY", sb.String())
}

// PrintOutputs lists the files written by an export.
func (p *Printer) PrintOutputs(files map[string]int) {
	if len(files) == 0 {
		return
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%s (%s)\n", name, humanBytes(files[name])))
	}

	p.printBox("WRITTEN FILES", strings.TrimSuffix(sb.String(), "\n"))
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
