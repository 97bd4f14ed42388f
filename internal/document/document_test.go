package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/ontoline/internal/errors"
	"github.com/mcncl/ontoline/internal/models"
)

func loadFixture(t *testing.T) *Document {
	t.Helper()
	root := models.JSONObject{
		"a": models.JSONObject{"b": "x"},
		"c": json.Number("1"),
	}
	doc := Load("Fixture", root)
	require.Len(t, doc.Nodes, 3)
	return doc
}

func TestLoad(t *testing.T) {
	doc := loadFixture(t)

	assert.Equal(t, "Fixture", doc.Name)
	assert.Empty(t, doc.Source)
	for _, n := range doc.Nodes {
		assert.Nil(t, n.IsMatch, "rows start unchecked")
	}
	assert.NotNil(t, doc.Root)
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"reports/annual_summary.json", "AnnualSummary"},
		{"data.json", "Data"},
		{"my-doc.v2.json", "MyDocV2"},
		{"", "Document"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultName(tt.path))
		})
	}
}

func TestSetSource_ChecksEveryRow(t *testing.T) {
	doc := loadFixture(t)
	doc.SetSource("the value x appears here")

	// Container row and number row are vacuous, string row is present.
	for i, n := range doc.Nodes {
		require.NotNil(t, n.IsMatch, "row %d unchecked after SetSource", i)
		assert.True(t, *n.IsMatch)
	}

	// Replacing the source re-checks the string row.
	doc.SetSource("nothing relevant")
	assert.False(t, *doc.Nodes[1].IsMatch)
	assert.True(t, *doc.Nodes[0].IsMatch)
	assert.True(t, *doc.Nodes[2].IsMatch)
}

func TestSetValue_RechecksAgainstCurrentSource(t *testing.T) {
	doc := loadFixture(t)
	doc.SetSource("...y appears here...")
	id := doc.Nodes[1].ID

	require.NoError(t, doc.SetValue(id, "y"))
	assert.Equal(t, models.StringValue("y"), doc.Nodes[1].Value)
	require.NotNil(t, doc.Nodes[1].IsMatch)
	assert.True(t, *doc.Nodes[1].IsMatch)

	require.NoError(t, doc.SetValue(id, "zebra"))
	require.NotNil(t, doc.Nodes[1].IsMatch)
	assert.False(t, *doc.Nodes[1].IsMatch)
}

func TestSetKeyAndDepth_DoNotTouchMatchFlag(t *testing.T) {
	doc := loadFixture(t)
	id := doc.Nodes[1].ID

	require.NoError(t, doc.SetKey(id, "renamed"))
	assert.Equal(t, "renamed", doc.Nodes[1].Key)
	assert.Nil(t, doc.Nodes[1].IsMatch)

	require.NoError(t, doc.SetDepthToken(id, "###"))
	assert.Equal(t, 2, doc.Nodes[1].Depth)
	assert.Nil(t, doc.Nodes[1].IsMatch)

	// A token with no markers lands at the top level, never below it.
	require.NoError(t, doc.SetDepthToken(id, ""))
	assert.Equal(t, 0, doc.Nodes[1].Depth)
}

func TestEdits_PreserveRowIDs(t *testing.T) {
	doc := loadFixture(t)
	ids := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		ids[i] = n.ID
	}

	require.NoError(t, doc.SetValue(ids[1], "edited"))
	require.NoError(t, doc.SetKey(ids[0], "renamed"))
	doc.SetSource("edited")

	for i, n := range doc.Nodes {
		assert.Equal(t, ids[i], n.ID, "row %d id changed across edits", i)
	}
}

func TestEdits_UnknownID(t *testing.T) {
	doc := loadFixture(t)

	for _, err := range []error{
		doc.SetKey("missing", "k"),
		doc.SetValue("missing", "v"),
		doc.SetDepthToken("missing", "##"),
	} {
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNodeNotFound)
	}
}

func TestNest_ReflectsEdits(t *testing.T) {
	doc := loadFixture(t)

	// Untouched document nests back to the original shape.
	expected := models.JSONObject{
		"a": models.JSONObject{"b": "x"},
		"c": json.Number("1"),
	}
	assert.Equal(t, expected, doc.Nest())

	require.NoError(t, doc.SetValue(doc.Nodes[1].ID, "y"))
	edited := models.JSONObject{
		"a": models.JSONObject{"b": "y"},
		"c": json.Number("1"),
	}
	assert.Equal(t, edited, doc.Nest())

	// The retained original value is not rewritten by edits.
	assert.Equal(t, models.JSONObject{
		"a": models.JSONObject{"b": "x"},
		"c": json.Number("1"),
	}, doc.Root)
}
