package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/rendering"
	"github.com/jonathan/cv-composer/internal/server"
)

var (
	servePort  int
	serveNoPDF bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that renders CVs posted to it or loaded from the database.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to config port)")
	serveCmd.Flags().BoolVar(&serveNoPDF, "no-pdf", false, "Disable PDF routes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	port := servePort
	if port == 0 {
		port = cfg.Port
	}

	var store server.Store
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		database, err := connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return err
		}
		store = database
	} else {
		log.Printf("[SERVER] DATABASE_URL not set, /cvs routes disabled")
	}

	var enc rendering.PDFEncoder
	if !serveNoPDF {
		e, err := newEncoder()
		if err != nil {
			return err
		}
		enc = e
	}

	srv := server.New(server.Config{
		Port:                  port,
		DefaultTheme:          cfg.DefaultTheme,
		RateLimitPDFPerMinute: cfg.RateLimitPDFPerMinute,
		RenderTimeout:         cfg.Timeout(),
	}, store, enc)

	return srv.Start()
}
