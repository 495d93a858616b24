package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleCV = `{
  "fullName": "Ada Lovelace",
  "headline": "Mathematician",
  "summary": "First **programmer**.",
  "email": "ada@example.com",
  "github": "ada",
  "themeId": "classic",
  "experience": [
    {"company": "Analytical Engines", "position": "Engineer", "startDate": "1843-01", "current": true}
  ],
  "skills": [{"name": "Mathematics"}, {"name": "Poetry"}],
  "customSections": [{"id": "c1", "title": "Talks", "content": "Royal Society, 1843"}]
}`

const sampleCVYAML = `fullName: Ada Lovelace
email: ada@example.com
skills:
  - name: Mathematics
`

// executeCommand runs the root command in-process with args and returns
// what it wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	for _, key := range []string{"CV_DEFAULT_THEME", "CV_PDF_ENGINE", "CV_PDF_TIMEOUT", "DATABASE_URL", "PORT", "CHROME_PATH"} {
		t.Setenv(key, "")
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

// resetFlags restores every flag to its default since flag variables are
// package-level and survive between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
