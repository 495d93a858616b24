package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/loader"
	"github.com/jonathan/cv-composer/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CV record against the record schema",
	Long:  "Checks the types of the known CV fields. YAML records are converted to JSON first. --schema validates against a different JSON Schema file instead of the built-in one.",
	RunE:  runValidate,
}

var (
	validateCVPath string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVar(&validateCVPath, "cv", "", "Path to CV record (.json, .yaml, .yml)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to an alternative JSON Schema")
	_ = validateCmd.MarkFlagRequired("cv")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	data, err := loader.LoadRaw(validateCVPath)
	if err != nil {
		return err
	}

	if validateSchema == "" {
		err = schemas.ValidateCVRecord(data)
	} else {
		err = schemas.ValidateFile(validateSchema, data)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", validateCVPath)
	return nil
}
