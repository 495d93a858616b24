package db

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-composer/internal/types"
)

func TestDecodeRecord_ColumnsOverrideDocument(t *testing.T) {
	id := uuid.New()
	themeID := "academic"
	data := []byte(`{"fullName": "Ada", "themeId": "classic", "themeData": {"colors": {"primary": "#000"}}}`)

	cv, err := decodeRecord(id, data, &themeID, []byte(`{"colors":{"primary":"#fff"}}`), []byte(`[{"id":"skills"}]`))
	require.NoError(t, err)

	assert.Equal(t, id.String(), cv.ID)
	assert.Equal(t, "Ada", cv.FullName)
	assert.Equal(t, "academic", cv.ThemeID)
	assert.JSONEq(t, `{"colors":{"primary":"#fff"}}`, string(cv.ThemeData))
	assert.JSONEq(t, `[{"id":"skills"}]`, string(cv.SectionOrder))
}

func TestDecodeRecord_NullColumnsKeepDocument(t *testing.T) {
	id := uuid.New()
	data := []byte(`{"themeId": "classic", "sectionOrder": "[]"}`)

	cv, err := decodeRecord(id, data, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "classic", cv.ThemeID)
	assert.Equal(t, `"[]"`, string(cv.SectionOrder))
}

func TestDecodeRecord_InvalidData(t *testing.T) {
	_, err := decodeRecord(uuid.New(), []byte(`[1]`), nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode cv record")
}

func TestRecordID(t *testing.T) {
	id := uuid.New()

	got, err := recordID(&types.CVRecord{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	generated, err := recordID(&types.CVRecord{})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, generated)

	_, err = recordID(&types.CVRecord{ID: "cv-1"})
	assert.Error(t, err)

	_, err = recordID(nil)
	assert.Error(t, err)
}

func TestNullableJSON(t *testing.T) {
	assert.Nil(t, nullableJSON(nil))
	assert.Nil(t, nullableJSON(json.RawMessage("null")))
	assert.Equal(t, []byte(`{}`), nullableJSON(json.RawMessage(`{}`)))
	assert.Nil(t, nullable(""))
	assert.Equal(t, "x", *nullable("x"))
}

func TestArtifactContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", (&Artifact{Format: FormatPDF}).ContentType())
	assert.Equal(t, "text/html; charset=utf-8", (&Artifact{Format: FormatHTML}).ContentType())
	assert.Equal(t, "application/octet-stream", (&Artifact{Format: "zip"}).ContentType())
}
