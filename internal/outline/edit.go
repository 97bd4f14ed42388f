package outline

import "github.com/mcncl/ontoline/internal/models"

// ReplaceRow returns a copy of nodes with fn applied to the single row
// carrying the given id; all other rows, and every row's id, are untouched.
// The boolean result is false when no row has that id, in which case the
// returned slice is nil.
//
// Edits always go through a wholesale copy rather than mutating the input
// slice, so callers can hold on to a previous sequence safely.
func ReplaceRow(nodes []models.FlatNode, id string, fn func(*models.FlatNode)) ([]models.FlatNode, bool) {
	for i := range nodes {
		if nodes[i].ID != id {
			continue
		}
		out := make([]models.FlatNode, len(nodes))
		copy(out, nodes)
		fn(&out[i])
		return out, true
	}
	return nil, false
}
