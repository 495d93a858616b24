package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-composer/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the theme presets",
	RunE:  runThemes,
}

var themesJSON bool

func init() {
	themesCmd.Flags().BoolVar(&themesJSON, "json", false, "Print fully resolved presets as JSON")
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, _ []string) error {
	presets := theme.Presets()

	if themesJSON {
		resolved := make([]theme.Resolved, 0, len(presets))
		for _, p := range presets {
			resolved = append(resolved, theme.Resolve(p.ID, nil))
		}
		data, err := marshalJSON(resolved)
		if err != nil {
			return fmt.Errorf("failed to marshal themes: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tDEFAULT")
	for _, p := range presets {
		mark := ""
		if p.ID == cfg.DefaultTheme {
			mark = "*"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, mark)
	}
	return w.Flush()
}
