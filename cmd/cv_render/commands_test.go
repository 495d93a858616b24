package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleCommand_PrintsDocument(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	out, err := executeCommand(t, "assemble", "--cv", cvPath)
	require.NoError(t, err)

	var doc struct {
		Header struct {
			Name string `json:"name"`
		} `json:"header"`
		Sections []struct {
			Kind string `json:"kind"`
		} `json:"sections"`
		Theme struct {
			PresetID string `json:"presetId"`
		} `json:"theme"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Ada Lovelace", doc.Header.Name)
	assert.Equal(t, "classic", doc.Theme.PresetID)
	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, "experience", doc.Sections[0].Kind)
}

func TestAssembleCommand_ThemeFlagReplacesStoredTheme(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	out, err := executeCommand(t, "assemble", "--cv", cvPath, "--theme", "minimal")
	require.NoError(t, err)
	assert.Contains(t, out, `"presetId": "minimal"`)
}

func TestAssembleCommand_UnknownThemeFallsBack(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	out, err := executeCommand(t, "assemble", "--cv", cvPath, "--theme", "no-such-theme")
	require.NoError(t, err)
	assert.Contains(t, out, `"presetId": "modern-blue"`)
}

func TestAssembleCommand_YAMLInputAndOutFile(t *testing.T) {
	cvPath := writeFixture(t, "cv.yaml", sampleCVYAML)
	outPath := filepath.Join(t.TempDir(), "nested", "doc.json")

	_, err := executeCommand(t, "assemble", "--cv", cvPath, "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada Lovelace")
	assert.Contains(t, string(data), `"kind": "skills"`)
}

func TestAssembleCommand_OrderFile(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)
	orderPath := writeFixture(t, "order.json", `[{"id": "skills", "order": 0}, {"id": "experience", "order": 1, "enabled": false}]`)

	out, err := executeCommand(t, "assemble", "--cv", cvPath, "--order-file", orderPath)
	require.NoError(t, err)

	var doc struct {
		Sections []struct {
			Kind string `json:"kind"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, "skills", doc.Sections[0].Kind)
	for _, s := range doc.Sections {
		assert.NotEqual(t, "experience", s.Kind)
	}
}

func TestAssembleCommand_InputErrors(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no input", []string{"assemble"}, "must provide either --cv or --cv-id"},
		{"both inputs", []string{"assemble", "--cv", cvPath, "--cv-id", "x"}, "cannot use --cv with --cv-id"},
		{"bad id", []string{"assemble", "--cv-id", "not-a-uuid"}, "invalid cv-id"},
		{"no database", []string{"assemble", "--cv-id", "6f1c7a52-4c2e-4a57-9d7e-0a3b1b1a2c3d"}, "DATABASE_URL not set"},
		{"missing file", []string{"assemble", "--cv", filepath.Join(t.TempDir(), "none.json")}, "file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderCommand_HTML(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	out, err := executeCommand(t, "render", "--cv", cvPath, "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, `data-section="experience"`)
}

func TestRenderCommand_CustomTemplate(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)
	tmplPath := writeFixture(t, "cv.html.tmpl", `<p>{{.Doc.Header.Name}}</p>`)

	out, err := executeCommand(t, "render", "--cv", cvPath, "--template", tmplPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>Ada Lovelace</p>\n", out)
}

func TestRenderCommand_TreeFormats(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	preview, err := executeCommand(t, "render", "--cv", cvPath, "--format", "preview")
	require.NoError(t, err)
	assert.Contains(t, preview, `"data-section": "experience"`)
	assert.True(t, json.Valid([]byte(preview)))

	tree, err := executeCommand(t, "render", "--cv", cvPath, "--format", "pdf-tree")
	require.NoError(t, err)
	assert.Contains(t, tree, "Ada Lovelace")
	assert.True(t, json.Valid([]byte(tree)))
}

func TestRenderCommand_Errors(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	_, err := executeCommand(t, "render", "--cv", cvPath, "--format", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, err = executeCommand(t, "render", "--cv", cvPath, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out is required")
}

func TestExportCommand_WritesAllOutputsWithoutPDF(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)
	outDir := filepath.Join(t.TempDir(), "export")

	out, err := executeCommand(t, "export", "--cv", cvPath, "--out-dir", outDir, "--no-pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 4 files")

	for _, name := range []string{"document.json", "preview.json", "cv.html", "pdf-tree.json"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	assert.NoFileExists(t, filepath.Join(outDir, "cv.pdf"))
}

func TestExportCommand_MissingOutDir(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	_, err := executeCommand(t, "export", "--cv", cvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "out-dir" not set`)
}

func TestVerifyCommand_ExportedHTML(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)
	outDir := t.TempDir()

	_, err := executeCommand(t, "export", "--cv", cvPath, "--out-dir", outDir, "--no-pdf")
	require.NoError(t, err)

	out, err := executeCommand(t, "verify", "--cv", cvPath, "--html", filepath.Join(outDir, "cv.html"))
	require.NoError(t, err)
	assert.Contains(t, out, "All renderers agree")
}

func TestVerifyCommand_DetectsReorderedSections(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)
	outDir := t.TempDir()
	orderPath := writeFixture(t, "order.json", `[{"id": "skills", "order": 0}, {"id": "experience", "order": 1}]`)

	_, err := executeCommand(t, "export", "--cv", cvPath, "--out-dir", outDir, "--no-pdf", "--order-file", orderPath)
	require.NoError(t, err)

	_, err = executeCommand(t, "verify", "--cv", cvPath, "--html", filepath.Join(outDir, "cv.html"))
	require.Error(t, err)
}

func TestVerifyCommand_RequiresRenderedFile(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	_, err := executeCommand(t, "verify", "--cv", cvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must provide --html and/or --pdf")
}

func TestThemesCommand(t *testing.T) {
	out, err := executeCommand(t, "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "modern-blue")
	assert.Contains(t, out, "Tech Dark")
	assert.Contains(t, out, "*")

	out, err = executeCommand(t, "themes", "--json")
	require.NoError(t, err)

	var resolved []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resolved))
	assert.Len(t, resolved, 8)
	assert.Equal(t, "academic", resolved[0]["presetId"])
}

func TestValidateCommand(t *testing.T) {
	valid := writeFixture(t, "cv.json", sampleCV)
	out, err := executeCommand(t, "validate", "--cv", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	yamlPath := writeFixture(t, "cv.yml", sampleCVYAML)
	_, err = executeCommand(t, "validate", "--cv", yamlPath)
	require.NoError(t, err)

	invalid := writeFixture(t, "bad.json", `{"fullName": "Ada", "experience": "not a list"}`)
	_, err = executeCommand(t, "validate", "--cv", invalid)
	require.Error(t, err)
}

func TestValidateCommand_CustomSchema(t *testing.T) {
	schema := writeFixture(t, "schema.json", `{"type": "object", "required": ["orcid"]}`)
	cvPath := writeFixture(t, "cv.json", sampleCV)

	_, err := executeCommand(t, "validate", "--cv", cvPath, "--schema", schema)
	require.Error(t, err)

	named := writeFixture(t, "named.json", `{"type": "object", "required": ["fullName"], "properties": {"skills": {"type": "array"}}}`)
	yamlPath := writeFixture(t, "cv.yaml", sampleCVYAML)
	out, err := executeCommand(t, "validate", "--cv", yamlPath, "--schema", named)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = executeCommand(t, "validate", "--cv", cvPath, "--schema", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	cfgPath := writeFixture(t, "config.json", `{"default_theme": "no-such-theme"}`)

	_, err := executeCommand(t, "themes", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestRootCommand_ConfigDefaultTheme(t *testing.T) {
	cfgPath := writeFixture(t, "config.json", `{"default_theme": "academic"}`)
	cvPath := writeFixture(t, "cv.yaml", sampleCVYAML)

	out, err := executeCommand(t, "assemble", "--cv", cvPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"presetId": "academic"`)
}

func TestStoreCommand_RequiresDatabase(t *testing.T) {
	cvPath := writeFixture(t, "cv.json", sampleCV)

	_, err := executeCommand(t, "store", "--cv", cvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL not set")
}
