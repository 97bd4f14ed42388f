// Package match implements the substring presence check between an outline
// row's value and a document's source text.
package match

import (
	"strings"

	"github.com/mcncl/ontoline/internal/models"
)

// Matches reports whether a row value is accounted for by the source text.
// Only string payloads are actually checked; numbers, booleans, nulls and
// payload-less container rows are vacuously matched. A string whose trimmed
// form is empty also matches.
//
// The check is an exact contiguous substring test: case-sensitive, internal
// whitespace preserved, with only the ends of the value itself trimmed. The
// source text is never normalized.
func Matches(v models.Value, source string) bool {
	if v.Kind != models.KindString {
		return true
	}
	needle := strings.TrimSpace(v.Str)
	if needle == "" {
		return true
	}
	return strings.Contains(source, needle)
}
