package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a CV into a resolved document",
	Long:  "Resolves the theme, contacts and section order of a CV record and prints the renderer-agnostic document as JSON.",
	RunE:  runAssemble,
}

var (
	assembleInput  inputFlags
	assembleOutput string
)

func init() {
	assembleInput.register(assembleCmd)
	assembleCmd.Flags().StringVarP(&assembleOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, _ []string) error {
	doc, err := assembleInput.assemble(cmd.Context())
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	return writeOutput(cmd, assembleOutput, append(data, '\n'))
}
