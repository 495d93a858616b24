package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/observability"
	"github.com/jonathan/cv-composer/internal/parity"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check rendered files against a CV",
	Long:  "Assembles the CV and checks that previously rendered HTML and/or PDF files show its sections in the same order.",
	RunE:  runVerify,
}

var (
	verifyInput inputFlags
	verifyHTML  string
	verifyPDF   string
)

func init() {
	verifyInput.register(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyHTML, "html", "", "Rendered HTML file")
	verifyCmd.Flags().StringVar(&verifyPDF, "pdf", "", "Rendered PDF file")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	if verifyHTML == "" && verifyPDF == "" {
		return fmt.Errorf("must provide --html and/or --pdf")
	}

	doc, err := verifyInput.assemble(cmd.Context())
	if err != nil {
		return err
	}

	var results []parity.Result
	if verifyHTML != "" {
		data, err := os.ReadFile(verifyHTML)
		if err != nil {
			return fmt.Errorf("failed to read html file: %w", err)
		}
		results = append(results, parity.Result{
			Renderer: parity.RendererHTML,
			Sections: len(doc.Sections),
			Err:      parity.CheckHTML(doc, string(data)),
		})
	}
	if verifyPDF != "" {
		data, err := os.ReadFile(verifyPDF)
		if err != nil {
			return fmt.Errorf("failed to read pdf file: %w", err)
		}
		results = append(results, parity.Result{
			Renderer: parity.RendererPDF,
			Sections: len(doc.Sections),
			Err:      parity.CheckPDF(doc, data),
		})
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintParity(results)
	return parity.FirstError(results)
}
