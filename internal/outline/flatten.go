// Package outline implements the bidirectional transform between a nested
// JSON value and its flat, depth-annotated row form.
package outline

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mcncl/ontoline/internal/models"
)

// Flatten converts a parsed JSON value into an ordered sequence of outline
// rows: one row per object key or array element, pre-order, with Depth
// recording the nesting level. Every row receives a fresh id and an unset
// match flag.
//
// A scalar or null at the top level has no row representation and yields an
// empty sequence. This is a documented limitation of the outline form, not
// an error.
func Flatten(root models.JSONValue) []models.FlatNode {
	nodes := make([]models.FlatNode, 0)
	switch v := root.(type) {
	case models.JSONObject:
		nodes = flattenObject(nodes, v, 0)
	case models.JSONArray:
		nodes = flattenArray(nodes, v, 0)
	}
	return nodes
}

// flattenObject emits rows for each key in sorted order so that output is
// deterministic regardless of map iteration order.
func flattenObject(nodes []models.FlatNode, obj models.JSONObject, depth int) []models.FlatNode {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		nodes = flattenEntry(nodes, k, obj[k], depth)
	}
	return nodes
}

func flattenArray(nodes []models.FlatNode, arr models.JSONArray, depth int) []models.FlatNode {
	for i, el := range arr {
		nodes = flattenEntry(nodes, fmt.Sprintf("[%d]", i), el, depth)
	}
	return nodes
}

func flattenEntry(nodes []models.FlatNode, key string, val models.JSONValue, depth int) []models.FlatNode {
	switch v := val.(type) {
	case models.JSONObject:
		nodes = append(nodes, newNode(key, models.EmptyValue(), depth))
		return flattenObject(nodes, v, depth+1)
	case models.JSONArray:
		nodes = append(nodes, newNode(key, models.EmptyValue(), depth))
		return flattenArray(nodes, v, depth+1)
	default:
		return append(nodes, newNode(key, models.ValueOf(val), depth))
	}
}

func newNode(key string, val models.Value, depth int) models.FlatNode {
	return models.FlatNode{
		ID:    uuid.NewString(),
		Key:   key,
		Value: val,
		Depth: depth,
	}
}

// IsContainer reports whether the row at index i is a container under the
// adjacency rule: it either carries no payload of its own, or the
// immediately following row is deeper. Containment is always computed from
// the sequence on demand, never cached on the row.
func IsContainer(nodes []models.FlatNode, i int) bool {
	if i < 0 || i >= len(nodes) {
		return false
	}
	if nodes[i].Value.Kind == models.KindEmpty {
		return true
	}
	return i+1 < len(nodes) && nodes[i+1].Depth > nodes[i].Depth
}

// Children returns the index range [start, end) of the rows forming the
// child run of the container at index i: the maximal run of immediately
// following rows strictly deeper than it.
func Children(nodes []models.FlatNode, i int) (int, int) {
	if i < 0 || i >= len(nodes) {
		return 0, 0
	}
	start := i + 1
	end := start
	for end < len(nodes) && nodes[end].Depth > nodes[i].Depth {
		end++
	}
	return start, end
}
