// Package render produces the user-facing representations of a document:
// indented outline text, a CSV report, and re-nested JSON.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mcncl/ontoline/internal/document"
	"github.com/mcncl/ontoline/internal/errors"
	"github.com/mcncl/ontoline/internal/outline"
)

// Supported output formats.
const (
	FormatOutline = "outline"
	FormatJSON    = "json"
	FormatCSV     = "csv"
)

// Renderer turns a document into one of the supported output formats.
type Renderer struct {
	// ShowMatch controls whether outline and CSV output carry the
	// per-row source-match flag.
	ShowMatch bool
}

// NewRenderer creates a Renderer with match flags enabled.
func NewRenderer() *Renderer {
	return &Renderer{ShowMatch: true}
}

// Render produces the document in the requested format.
func (r *Renderer) Render(doc *document.Document, format string) (string, error) {
	switch format {
	case FormatOutline:
		return r.renderOutline(doc), nil
	case FormatJSON:
		return r.renderJSON(doc)
	case FormatCSV:
		return r.renderCSV(doc)
	default:
		return "", errors.NewExportError(fmt.Sprintf("unknown output format '%s'", format), nil)
	}
}

// renderOutline writes one line per row: the depth token, the key, and for
// leaf rows the payload. Rows checked against a source and found missing
// are flagged; unchecked rows carry no flag either way.
func (r *Renderer) renderOutline(doc *document.Document) string {
	var buf bytes.Buffer
	for i, n := range doc.Nodes {
		buf.WriteString(outline.FormatDepth(n.Depth))
		buf.WriteByte(' ')
		buf.WriteString(n.Key)
		if !outline.IsContainer(doc.Nodes, i) {
			buf.WriteString(": ")
			buf.WriteString(n.Value.String())
		}
		if r.ShowMatch && n.IsMatch != nil && !*n.IsMatch {
			buf.WriteString(" [no match]")
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// renderJSON re-nests the outline and serializes it. The nested value is
// rebuilt from the rows on every call, so edits are always reflected.
func (r *Renderer) renderJSON(doc *document.Document) (string, error) {
	data, err := json.MarshalIndent(doc.Nest(), "", "  ")
	if err != nil {
		return "", errors.NewExportError("failed to serialize nested document", err)
	}
	return string(data) + "\n", nil
}

// renderCSV writes a report row per outline row. The match column is empty
// for rows that were never checked against a source text.
func (r *Renderer) renderCSV(doc *document.Document) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"token", "key", "value"}
	if r.ShowMatch {
		header = append(header, "match")
	}
	if err := w.Write(header); err != nil {
		return "", errors.NewExportError("failed to write CSV header", err)
	}

	for _, n := range doc.Nodes {
		record := []string{outline.FormatDepth(n.Depth), n.Key, n.Value.String()}
		if r.ShowMatch {
			flag := ""
			if n.IsMatch != nil {
				flag = strconv.FormatBool(*n.IsMatch)
			}
			record = append(record, flag)
		}
		if err := w.Write(record); err != nil {
			return "", errors.NewExportError("failed to write CSV record", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.NewExportError("failed to flush CSV output", err)
	}
	return buf.String(), nil
}
