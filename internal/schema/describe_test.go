package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/curvecheck/internal/document"
)

func TestDescribePrimitives(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]any{"type": "string", "pattern": `^[0-9]+[DWMY]$`}, Describe(Tenor{}))
	assert.Equal(t, map[string]any{"type": "string", "pattern": `^[0-9]{4}-[0-9]{2}-[0-9]{2}$`}, Describe(Date{}))
	assert.Equal(t, map[string]any{"type": "number", "not": map[string]any{"type": "integer"}}, Describe(IsReal))
	assert.Equal(t, map[string]any{"type": "integer"}, Describe(IsInteger))
	assert.Equal(t,
		map[string]any{"type": "string", "enum": []any{"A", "B"}},
		Describe(Enum{Name: "E", Values: []string{"A", "B"}}))
	assert.Equal(t, map[string]any{}, Describe(ValidatorFunc(func(document.Value) error { return nil })))
}

func TestDescribeSchema(t *testing.T) {
	t.Parallel()

	s := bondLike()
	s.Strict = true
	got := s.JSONSchema()

	assert.Equal(t, "object", got["type"])
	assert.Equal(t, "bond", got["title"])
	assert.Equal(t, []any{"calendar", "settlementDays"}, got["required"])
	assert.Equal(t, false, got["unevaluatedProperties"])

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "ticker")

	all, ok := got["allOf"].([]any)
	require.True(t, ok)
	require.Len(t, all, 1)

	cond, ok := all[0].(map[string]any)
	require.True(t, ok)
	then, ok := cond["then"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"startDate", "endDate"}, then["required"])

	// The tenor alternative is reached through its own presence test and as the fallback.
	next, ok := cond["else"].(map[string]any)
	require.True(t, ok)
	fallback, ok := next["else"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"tenor"}, fallback["required"])
}
