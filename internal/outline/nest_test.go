package outline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/ontoline/internal/models"
)

func leaf(key string, val models.Value, depth int) models.FlatNode {
	return models.FlatNode{ID: key + "-id", Key: key, Value: val, Depth: depth}
}

func TestNest_FlatObjectRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		root models.JSONObject
	}{
		{
			"scalars of every kind",
			models.JSONObject{
				"name":   "John",
				"age":    json.Number("30"),
				"active": true,
				"note":   nil,
			},
		},
		{"empty object", models.JSONObject{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.root, Nest(Flatten(tt.root)))
		})
	}
}

func TestNest_NestedObjectRoundTrip(t *testing.T) {
	root := models.JSONObject{
		"a": models.JSONObject{"b": "x"},
		"c": json.Number("1"),
	}
	assert.Equal(t, root, Nest(Flatten(root)))
}

func TestNest_ContainmentIgnoresStatedValue(t *testing.T) {
	// Row "a" claims a scalar payload but is followed by a deeper row, so
	// the lookahead wins and it nests as a container.
	nodes := []models.FlatNode{
		leaf("a", models.StringValue("edited away"), 0),
		leaf("b", models.StringValue("x"), 1),
	}

	expected := models.JSONObject{
		"a": models.JSONObject{"b": "x"},
	}
	assert.Equal(t, expected, Nest(nodes))
}

func TestNest_EmptyInput(t *testing.T) {
	result := Nest(nil)
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestNest_DepthGapAttachesToNearestAncestor(t *testing.T) {
	// A manual structure edit can leave a child several levels deeper than
	// its true parent; it still attaches under that parent.
	nodes := []models.FlatNode{
		leaf("a", models.EmptyValue(), 0),
		leaf("b", models.StringValue("x"), 3),
		leaf("c", models.StringValue("y"), 0),
	}

	expected := models.JSONObject{
		"a": models.JSONObject{"b": "x"},
		"c": "y",
	}
	assert.Equal(t, expected, Nest(nodes))
}

func TestNest_SiblingKeyCollisionLastWriteWins(t *testing.T) {
	nodes := []models.FlatNode{
		leaf("k", models.StringValue("first"), 0),
		leaf("k", models.StringValue("second"), 0),
	}

	assert.Equal(t, models.JSONObject{"k": "second"}, Nest(nodes))
}

func TestNest_ArraysDegradeToObjects(t *testing.T) {
	// Array shape is not recovered from synthetic index keys: a flattened
	// array nests back as an object. This is required behavior, not a bug.
	result := Nest(Flatten(models.JSONArray{"x", "y"}))

	expected := models.JSONObject{
		"[0]": "x",
		"[1]": "y",
	}
	assert.Equal(t, expected, result)
}

func TestNest_ArrayOfObjectsDegrades(t *testing.T) {
	root := models.JSONArray{
		models.JSONObject{"id": json.Number("1")},
		models.JSONObject{"id": json.Number("2")},
	}

	expected := models.JSONObject{
		"[0]": models.JSONObject{"id": json.Number("1")},
		"[1]": models.JSONObject{"id": json.Number("2")},
	}
	assert.Equal(t, expected, Nest(Flatten(root)))
}

func TestNest_TrailingChildlessContainerBecomesEmptyString(t *testing.T) {
	// A payload-less row with no deeper successor reads back as "".
	nodes := []models.FlatNode{
		leaf("a", models.EmptyValue(), 0),
	}

	assert.Equal(t, models.JSONObject{"a": ""}, Nest(nodes))
}

func TestNest_PopReturnsToCorrectAncestor(t *testing.T) {
	nodes := []models.FlatNode{
		leaf("a", models.EmptyValue(), 0),
		leaf("b", models.EmptyValue(), 1),
		leaf("c", models.StringValue("deep"), 2),
		leaf("d", models.StringValue("sibling of b"), 1),
		leaf("e", models.StringValue("top"), 0),
	}

	expected := models.JSONObject{
		"a": models.JSONObject{
			"b": models.JSONObject{"c": "deep"},
			"d": "sibling of b",
		},
		"e": "top",
	}
	assert.Equal(t, expected, Nest(nodes))
}
