//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVRecord_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"fullName": "Ada Lovelace",
		"email": "ada@x.com, ada@work.com",
		"hIndex": "12",
		"totalCitations": 340,
		"themeData": "{\"colors\":{\"primary\":\"#111111\"}}",
		"sectionOrder": [{"id": "experience", "order": 0}],
		"experience": [
			{"company": "Analytical Engines", "position": "Engineer", "startDate": "1843-01", "current": true, "order": "3"}
		],
		"publications": [
			{"title": "On Computation", "authors": ["Lovelace, A.", "Babbage, C."], "year": 1843, "volume": 2}
		],
		"projects": [
			{"name": "Engine", "technologies": "Brass, Steam"}
		]
	}`

	var cv CVRecord
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &cv))

	assert.Equal(t, "Ada Lovelace", cv.DisplayName())
	require.NotNil(t, cv.HIndex)
	assert.Equal(t, 12, cv.HIndex.Int())
	require.NotNil(t, cv.TotalCitations)
	assert.Equal(t, 340, cv.TotalCitations.Int())
	assert.Nil(t, cv.I10Index)

	assert.Equal(t, byte('"'), cv.ThemeData[0])
	assert.Equal(t, byte('['), cv.SectionOrder[0])

	require.Len(t, cv.Experience, 1)
	assert.Equal(t, 3, cv.Experience[0].Order.Int())
	assert.True(t, cv.Experience[0].Current)

	require.Len(t, cv.Publications, 1)
	assert.Equal(t, "Lovelace, A., Babbage, C.", cv.Publications[0].Authors.Join(", "))
	assert.Equal(t, "1843", cv.Publications[0].YearValue())
	assert.Equal(t, "2", cv.Publications[0].Volume.String())

	assert.Equal(t, []string{"Brass", "Steam"}, cv.Projects[0].Technologies.Split())
}

func TestFlexInt_Lenient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "number", input: `7`, want: 7},
		{name: "float", input: `7.9`, want: 7},
		{name: "numeric string", input: `" 4 "`, want: 4},
		{name: "garbage string", input: `"n/a"`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "object", input: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.want, f.Int())
		})
	}
}

func TestStringList_SingleString(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"Lovelace, A."`), &l))
	assert.Equal(t, StringList{"Lovelace, A."}, l)
	assert.Equal(t, "Lovelace, A.", l.Join(", "))
}

func TestNormalized_StableSortByOrder(t *testing.T) {
	cv := &CVRecord{
		Experience: []Experience{
			{ID: "a", Order: 2},
			{ID: "b", Order: 1},
			{ID: "c", Order: 2},
			{ID: "d", Order: 0},
		},
	}

	out := cv.Normalized()

	ids := make([]string, 0, len(out.Experience))
	for _, e := range out.Experience {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, ids)
	// input untouched
	assert.Equal(t, "a", cv.Experience[0].ID)
}

func TestNormalized_NilRecord(t *testing.T) {
	var cv *CVRecord
	out := cv.Normalized()
	require.NotNil(t, out)
	assert.Empty(t, out.Experience)
}

func TestAliasResolution(t *testing.T) {
	exp := Experience{Title: "  Engineer ", Employer: "Engines"}
	assert.Equal(t, "Engineer", exp.PositionName())
	assert.Equal(t, "Engines", exp.CompanyName())

	edu := Education{Institution: "Cambridge", FieldOfStudy: "Mathematics"}
	assert.Equal(t, "Cambridge", edu.SchoolName())
	assert.Equal(t, "Mathematics", edu.FieldName())

	pub := Publication{Date: "2021-05-01", PublicationType: "Conference"}
	assert.Equal(t, "2021", pub.YearValue())
	assert.Equal(t, "conference", pub.KindName())

	cv := &CVRecord{Template: "classic", AvailableOnDemand: true}
	assert.Equal(t, "classic", cv.PresetID())
	assert.True(t, cv.ReferencesOnRequest())
}

func TestRenderRequest_Validate(t *testing.T) {
	assert.Error(t, (&RenderRequest{}).Validate())
	assert.NoError(t, (&RenderRequest{CV: &CVRecord{FullName: "Ada"}}).Validate())
}
