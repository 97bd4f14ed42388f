package outline

import "github.com/mcncl/ontoline/internal/models"

// Nest rebuilds a nested JSON value from an ordered row sequence. It is the
// approximate inverse of Flatten: objects and scalars survive the round
// trip, while array shape does not — containers are always rebuilt as
// objects, so rows flattened from an array come back as an object keyed by
// the synthetic "[i]" keys. Downstream consumers rely on that exact
// behavior; do not "repair" it here.
//
// A row counts as a container iff the next row is strictly deeper. The
// stated value is deliberately ignored, so a row whose payload was edited
// to non-empty but which still has deeper rows below it keeps its children.
//
// Depth gaps larger than one, which manual structure edits can produce, are
// absorbed by the stack: the row attaches to the nearest ancestor whose
// depth is strictly smaller. The empty sequence nests to an empty object.
// Sibling rows sharing a key overwrite each other, last write wins.
func Nest(nodes []models.FlatNode) models.JSONObject {
	root := models.JSONObject{}

	type frame struct {
		target models.JSONObject
		depth  int
	}
	// Sentinel frame at depth -1 is never popped.
	stack := []frame{{target: root, depth: -1}}

	for i, n := range nodes {
		for len(stack) > 1 && stack[len(stack)-1].depth >= n.Depth {
			stack = stack[:len(stack)-1]
		}
		target := stack[len(stack)-1].target

		if i+1 < len(nodes) && nodes[i+1].Depth > n.Depth {
			child := models.JSONObject{}
			target[n.Key] = child
			stack = append(stack, frame{target: child, depth: n.Depth})
			continue
		}
		target[n.Key] = n.Value.ToJSON()
	}

	return root
}
