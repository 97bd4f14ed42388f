// Package document ties a parsed JSON value, its editable outline form, and
// an optional source text together into one editing session.
package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/ontoline/internal/errors"
	"github.com/mcncl/ontoline/internal/match"
	"github.com/mcncl/ontoline/internal/models"
	"github.com/mcncl/ontoline/internal/outline"
)

// Document is one loaded JSON document. Nodes is the canonical editable
// state; the nested form is re-derived from it on demand rather than kept
// in sync incrementally. Root retains the originally parsed value for
// reference and is never updated by edits.
type Document struct {
	Name   string
	Nodes  []models.FlatNode
	Source string
	Root   models.JSONValue
}

// Load flattens a parsed JSON value into a new document. The outline rows
// start with unset match flags; call SetSource to check them against a
// source text.
func Load(name string, root models.JSONValue) *Document {
	return &Document{
		Name:  name,
		Nodes: outline.Flatten(root),
		Root:  root,
	}
}

// DefaultName derives a document name from a file path, e.g.
// "reports/annual_summary.json" becomes "AnnualSummary".
func DefaultName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := strcase.ToCamel(base)
	if name == "" {
		return "Document"
	}
	return name
}

// SetSource replaces the source text and re-checks every row against it.
// Rows with non-string payloads are vacuously matched.
func (d *Document) SetSource(text string) {
	d.Source = text
	nodes := make([]models.FlatNode, len(d.Nodes))
	copy(nodes, d.Nodes)
	for i := range nodes {
		m := match.Matches(nodes[i].Value, text)
		nodes[i].IsMatch = &m
	}
	d.Nodes = nodes
}

// SetKey replaces a row's key verbatim. Keys are not validated for
// uniqueness or emptiness; colliding siblings resolve last-write-wins when
// the document is nested.
func (d *Document) SetKey(id, key string) error {
	nodes, ok := outline.ReplaceRow(d.Nodes, id, func(n *models.FlatNode) {
		n.Key = key
	})
	if !ok {
		return d.unknownRow(id)
	}
	d.Nodes = nodes
	return nil
}

// SetValue replaces a row's payload with the given string verbatim and
// immediately re-checks the row against the current source text. The row
// keeps its id.
func (d *Document) SetValue(id, value string) error {
	nodes, ok := outline.ReplaceRow(d.Nodes, id, func(n *models.FlatNode) {
		n.Value = models.StringValue(value)
		m := match.Matches(n.Value, d.Source)
		n.IsMatch = &m
	})
	if !ok {
		return d.unknownRow(id)
	}
	d.Nodes = nodes
	return nil
}

// SetDepthToken applies a structure edit: the row's depth becomes the count
// of leading depth markers in token, minus one, never negative. The match
// flag is left alone; containment is re-derived from the sequence whenever
// it is needed, so no cached state goes stale.
func (d *Document) SetDepthToken(id, token string) error {
	depth := outline.ParseDepth(token)
	nodes, ok := outline.ReplaceRow(d.Nodes, id, func(n *models.FlatNode) {
		n.Depth = depth
	})
	if !ok {
		return d.unknownRow(id)
	}
	d.Nodes = nodes
	return nil
}

// Nest rebuilds the nested JSON value from the current outline rows.
func (d *Document) Nest() models.JSONObject {
	return outline.Nest(d.Nodes)
}

func (d *Document) unknownRow(id string) error {
	return errors.NewEditError(
		fmt.Sprintf("document '%s' has no row with id '%s'", d.Name, id),
		errors.ErrNodeNotFound,
	)
}
