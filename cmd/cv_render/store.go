package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/loader"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Store a CV record in the database",
	Long:  "Loads a CV record from a file and inserts it into cv_records, creating the tables when missing. A record whose id is a UUID replaces the stored row.",
	RunE:  runStore,
}

var (
	storeCVPath string
	storeDBURL  string
)

func init() {
	storeCmd.Flags().StringVar(&storeCVPath, "cv", "", "Path to CV record (.json, .yaml, .yml)")
	storeCmd.Flags().StringVar(&storeDBURL, "db-url", "", "Database URL (defaults to config database_url)")
	_ = storeCmd.MarkFlagRequired("cv")
	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cv, err := loader.LoadCVRecord(storeCVPath)
	if err != nil {
		return err
	}

	database, err := connect(ctx, storeDBURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err := database.SaveCVRecord(ctx, cv)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored CV %s\n", id)
	return nil
}
