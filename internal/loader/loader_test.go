package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCVRecord_JSON(t *testing.T) {
	path := writeFile(t, "cv.json", `{
		"fullName": "Ada Lovelace",
		"hIndex": "7",
		"experience": [{"position": "Analyst", "company": "Engine Co", "order": "2"}],
		"sectionOrder": "[{\"id\":\"experience\"}]"
	}`)

	cv, err := LoadCVRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", cv.FullName)
	require.NotNil(t, cv.HIndex)
	assert.Equal(t, 7, cv.HIndex.Int())
	require.Len(t, cv.Experience, 1)
	assert.Equal(t, 2, cv.Experience[0].Order.Int())
	assert.NotEmpty(t, cv.SectionOrder)
}

func TestLoadCVRecord_YAML(t *testing.T) {
	path := writeFile(t, "cv.yaml", `
fullName: Ada Lovelace
headline: Mathematician
publications:
  - title: Notes on the Analytical Engine
    authors: [Ada Lovelace, L. F. Menabrea]
    year: 1843
themeData:
  colors:
    primary: "#123456"
sectionOrder:
  - id: publications
    visible: true
`)

	cv, err := LoadCVRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "Mathematician", cv.Headline)
	require.Len(t, cv.Publications, 1)
	assert.Equal(t, "1843", string(cv.Publications[0].Year))
	assert.Len(t, cv.Publications[0].Authors, 2)
	assert.JSONEq(t, `{"colors":{"primary":"#123456"}}`, string(cv.ThemeData))
	assert.JSONEq(t, `[{"id":"publications","visible":true}]`, string(cv.SectionOrder))
}

func TestLoadCVRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		message string
	}{
		{"empty path", func(t *testing.T) string { return "" }, "path is empty"},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.json") }, "file not found"},
		{"invalid json", func(t *testing.T) string { return writeFile(t, "cv.json", "{ nope") }, "invalid JSON"},
		{"invalid yaml", func(t *testing.T) string { return writeFile(t, "cv.yml", "a: [1, 2") }, "invalid YAML"},
		{"unsupported extension", func(t *testing.T) string { return writeFile(t, "cv.toml", "a = 1") }, "unsupported file extension"},
		{"wrong shape", func(t *testing.T) string { return writeFile(t, "cv.json", `[1, 2]`) }, "failed to decode CV record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := LoadCVRecord(tt.path(t))
			assert.Nil(t, cv)
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadRaw_EmptyYAML(t *testing.T) {
	data, err := LoadRaw(writeFile(t, "theme.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestYAMLToJSON_NonStringKeys(t *testing.T) {
	data, err := YAMLToJSON([]byte("1: one\ntrue: \"yes\"\nnested:\n  2: two\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":"one","true":"yes","nested":{"2":"two"}}`, string(data))
}

func TestYAMLToJSON_KeepsMarkup(t *testing.T) {
	data, err := YAMLToJSON([]byte("summary: \"<b>bold</b> & more\"\n"))
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"<b>bold</b> & more"}`, string(data))
}
