package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/db"
	"github.com/jonathan/cv-composer/internal/document"
	"github.com/jonathan/cv-composer/internal/loader"
	"github.com/jonathan/cv-composer/internal/observability"
	"github.com/jonathan/cv-composer/internal/pdf"
	"github.com/jonathan/cv-composer/internal/theme"
	"github.com/jonathan/cv-composer/internal/types"
)

// inputFlags are shared by every command that assembles a document.
type inputFlags struct {
	cvPath    string
	cvID      string
	dbURL     string
	themeID   string
	themeFile string
	orderFile string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.cvPath, "cv", "", "Path to CV record (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&f.cvID, "cv-id", "", "ID of a stored CV record (requires --db-url or DATABASE_URL)")
	cmd.Flags().StringVar(&f.dbURL, "db-url", "", "Database URL (defaults to config database_url)")
	cmd.Flags().StringVarP(&f.themeID, "theme", "t", "", "Theme preset id, replacing the one stored on the CV")
	cmd.Flags().StringVar(&f.themeFile, "theme-file", "", "Theme override file, replacing the stored themeData")
	cmd.Flags().StringVar(&f.orderFile, "order-file", "", "Section order file, replacing the stored sectionOrder")
}

// load reads the CV from a file or the database.
func (f *inputFlags) load(ctx context.Context) (*types.CVRecord, error) {
	if f.cvPath != "" && f.cvID != "" {
		return nil, fmt.Errorf("cannot use --cv with --cv-id")
	}
	if f.cvPath == "" && f.cvID == "" {
		return nil, fmt.Errorf("must provide either --cv or --cv-id")
	}

	if f.cvPath != "" {
		return loader.LoadCVRecord(f.cvPath)
	}

	id, err := uuid.Parse(f.cvID)
	if err != nil {
		return nil, fmt.Errorf("invalid cv-id: %w", err)
	}
	database, err := connect(ctx, f.dbURL)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	cv, err := database.GetCVRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load cv from database: %w", err)
	}
	return cv, nil
}

// assemble loads the CV and builds the resolved document, honoring the
// override files and the configured default theme.
func (f *inputFlags) assemble(ctx context.Context) (*document.ResolvedDocument, error) {
	cv, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	rec := *cv
	if f.themeID != "" {
		rec.ThemeID = f.themeID
	}
	if rec.PresetID() == "" {
		rec.ThemeID = cfg.DefaultTheme
	}

	themeData, err := optionalRaw(f.themeFile)
	if err != nil {
		return nil, err
	}
	sectionOrder, err := optionalRaw(f.orderFile)
	if err != nil {
		return nil, err
	}

	doc := document.Assemble(&rec, themeData, sectionOrder)

	if cfg.Verbose {
		p := observability.NewPrinter(os.Stderr)
		raw := rec.ThemeData
		if themeData != nil {
			raw = themeData
		}
		p.PrintThemeSources(theme.Explain(rec.PresetID(), theme.ParseOverride(raw)))
		p.PrintDocument(doc)
	}
	return doc, nil
}

func optionalRaw(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return loader.LoadRaw(path)
}

func connect(ctx context.Context, url string) (*db.DB, error) {
	if url == "" {
		url = cfg.DatabaseURL
	}
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL not set and --db-url not provided")
	}
	database, err := db.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// newEncoder builds the configured PDF encoder.
func newEncoder() (pdf.Encoder, error) {
	return pdf.NewEncoder(cfg.PDFEngine, pdf.Options{
		ChromePath: cfg.ChromePath,
		Timeout:    cfg.Timeout(),
		Verbose:    cfg.Verbose,
	})
}

// writeOutput writes data to path, creating parent directories, or to the
// command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
