package parser

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepCopyNil(t *testing.T) {
	var s *Schema
	assert.Nil(t, s.DeepCopy())
}

func TestDeepCopyEquality(t *testing.T) {
	data := []byte(`{
		"type": "object",
		"title": "Gateway",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"mode": {
				"oneOf": [
					{"const": "a", "title": "A"},
					{"type": "null", "title": "(none)"}
				]
			},
			"tags": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["name"],
		"additionalProperties": false,
		"unevaluatedProperties": false,
		"enum": ["x", null],
		"default": {"name": "gw"},
		"dependentRequired": {"a": ["b"]},
		"markdownDescription": "docs"
	}`)

	var original Schema
	require.NoError(t, json.Unmarshal(data, &original))

	clone := original.DeepCopy()

	origJSON, err := json.Marshal(&original)
	require.NoError(t, err)
	cloneJSON, err := json.Marshal(clone)
	require.NoError(t, err)

	var origMap, cloneMap map[string]any
	require.NoError(t, json.Unmarshal(origJSON, &origMap))
	require.NoError(t, json.Unmarshal(cloneJSON, &cloneMap))
	if diff := cmp.Diff(origMap, cloneMap); diff != "" {
		t.Errorf("copy differs from original (-want +got):\n%s", diff)
	}
}

func TestDeepCopyIsolation(t *testing.T) {
	minLen := 1
	original := &Schema{
		Type:  "object",
		Title: "Gateway",
		Properties: map[string]*Schema{
			"name": {Type: "string", MinLength: &minLen},
		},
		Required: []string{"name"},
		Enum:     []any{"a", "b"},
		OneOf: []*Schema{
			{Const: "a", Title: "A"},
		},
		Items:                &Schema{Type: "string"},
		AdditionalProperties: false,
		Default:              map[string]any{"name": "gw"},
		Extra:                map[string]any{"markdownDescription": "docs"},
		DependentRequired:    map[string][]string{"a": {"b"}},
	}

	clone := original.DeepCopy()

	// Mutate every shared-looking structure on the clone
	clone.Properties["name"].Type = "integer"
	*clone.Properties["name"].MinLength = 99
	clone.Required[0] = "mutated"
	clone.Enum[0] = "mutated"
	clone.OneOf[0].Title = "Mutated"
	clone.Items.(*Schema).Type = "number"
	clone.Default.(map[string]any)["name"] = "mutated"
	clone.Extra["markdownDescription"] = "mutated"
	clone.DependentRequired["a"][0] = "mutated"

	assert.Equal(t, "string", original.Properties["name"].Type)
	assert.Equal(t, 1, *original.Properties["name"].MinLength)
	assert.Equal(t, "name", original.Required[0])
	assert.Equal(t, "a", original.Enum[0])
	assert.Equal(t, "A", original.OneOf[0].Title)
	assert.Equal(t, "string", original.Items.(*Schema).Type)
	assert.Equal(t, "gw", original.Default.(map[string]any)["name"])
	assert.Equal(t, "docs", original.Extra["markdownDescription"])
	assert.Equal(t, "b", original.DependentRequired["a"][0])
}

func TestDeepCopyBooleanKeywords(t *testing.T) {
	original := &Schema{
		Items:                 true,
		AdditionalProperties:  false,
		UnevaluatedProperties: false,
	}

	clone := original.DeepCopy()
	assert.Equal(t, true, clone.Items)
	assert.Equal(t, false, clone.AdditionalProperties)
	assert.Equal(t, false, clone.UnevaluatedProperties)
}

func TestDeepCopyTypeArray(t *testing.T) {
	original := &Schema{Type: []any{"string", "null"}}
	clone := original.DeepCopy()

	clone.Type.([]any)[0] = "integer"
	assert.Equal(t, "string", original.Type.([]any)[0])
}
