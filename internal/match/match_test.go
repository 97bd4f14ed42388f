package match

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/ontoline/internal/models"
)

func TestMatches_NonStringValuesAreVacuous(t *testing.T) {
	tests := []struct {
		name  string
		value models.Value
	}{
		{"empty payload", models.EmptyValue()},
		{"null", models.NullValue()},
		{"zero number", models.NumberValue(json.Number("0"))},
		{"false boolean", models.BoolValue(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Matches(tt.value, "some source"))
			assert.True(t, Matches(tt.value, ""))
		})
	}
}

func TestMatches_BlankStringsAreVacuous(t *testing.T) {
	assert.True(t, Matches(models.StringValue(""), ""))
	assert.True(t, Matches(models.StringValue("   "), ""))
	assert.True(t, Matches(models.StringValue("\t\n"), "unrelated"))
}

func TestMatches_ExactSubstring(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		source   string
		expected bool
	}{
		{"present", "hello world", "say hello world now", true},
		{"internal whitespace not collapsed", "hello  world", "say hello world now", false},
		{"case sensitive", "Hello", "hello", false},
		{"value ends trimmed", "  hello world  ", "say hello world now", true},
		{"absent", "goodbye", "say hello world now", false},
		{"empty source", "hello", "", false},
		{"full source match", "abc", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(models.StringValue(tt.value), tt.source))
		})
	}
}
