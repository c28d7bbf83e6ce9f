package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaUnmarshalCoercesSubschemas(t *testing.T) {
	data := []byte(`{
		"type": "array",
		"items": {"$ref": "#/$defs/Widget"},
		"additionalProperties": {"type": "string"},
		"unevaluatedProperties": {"type": "number"}
	}`)

	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))

	items, ok := s.Items.(*Schema)
	require.True(t, ok, "items holding an object should decode as *Schema, got %T", s.Items)
	assert.Equal(t, "#/$defs/Widget", items.Ref)

	ap, ok := s.AdditionalProperties.(*Schema)
	require.True(t, ok, "additionalProperties object should decode as *Schema, got %T", s.AdditionalProperties)
	assert.Equal(t, "string", ap.TypeString())

	up, ok := s.UnevaluatedProperties.(*Schema)
	require.True(t, ok, "unevaluatedProperties object should decode as *Schema, got %T", s.UnevaluatedProperties)
	assert.Equal(t, "number", up.TypeString())
}

func TestSchemaUnmarshalBooleanKeywords(t *testing.T) {
	data := []byte(`{
		"type": "object",
		"items": true,
		"additionalProperties": false,
		"unevaluatedProperties": false
	}`)

	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))

	assert.Equal(t, true, s.Items)
	assert.Equal(t, false, s.AdditionalProperties)
	assert.Equal(t, false, s.UnevaluatedProperties)
}

func TestSchemaMarshalPreservesAdditionalPropertiesFalse(t *testing.T) {
	s := &Schema{
		Type:                 "object",
		AdditionalProperties: false,
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	v, present := m["additionalProperties"]
	require.True(t, present, "additionalProperties:false must not be dropped")
	assert.Equal(t, false, v)
}

func TestSchemaRoundTripUnknownKeywords(t *testing.T) {
	data := []byte(`{
		"type": "string",
		"title": "Name",
		"markdownDescription": "**The** name",
		"errorMessage": {"minLength": "too short"}
	}`)

	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))

	require.NotNil(t, s.Extra)
	assert.Equal(t, "**The** name", s.Extra["markdownDescription"])

	out, err := json.Marshal(&s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "string", m["type"])
	assert.Equal(t, "Name", m["title"])
	assert.Equal(t, "**The** name", m["markdownDescription"])
	assert.Equal(t, map[string]any{"minLength": "too short"}, m["errorMessage"])
}

func TestSchemaRoundTripKnownKeywordsOnly(t *testing.T) {
	data := []byte(`{
		"type": "object",
		"title": "Gateway",
		"description": "A gateway.",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"mode": {"enum": ["a", "b", null]}
		},
		"required": ["name"],
		"oneOf": [
			{"const": "x", "title": "X"},
			{"const": "y"}
		],
		"minProperties": 1,
		"deprecated": true
	}`)

	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Nil(t, s.Extra, "fully modeled documents should have no extras")

	out, err := json.Marshal(&s)
	require.NoError(t, err)

	var got, want map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.NoError(t, json.Unmarshal(data, &want))
	assert.Equal(t, want, got, "marshal output should match the source document")
}

func TestSchemaMarshalWithExtrasIncludesModeledFields(t *testing.T) {
	minLen := 2
	s := &Schema{
		Type:      "string",
		MinLength: &minLen,
		Enum:      []any{"a", nil},
		Extra:     map[string]any{"markdownDescription": "doc"},
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "string", m["type"])
	assert.Equal(t, float64(2), m["minLength"])
	assert.Equal(t, []any{"a", nil}, m["enum"])
	assert.Equal(t, "doc", m["markdownDescription"])
}

func TestSchemaNullEnumMember(t *testing.T) {
	data := []byte(`{"type": ["string", "null"], "enum": ["debug", null]}`)

	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))

	require.Len(t, s.Enum, 2)
	assert.Equal(t, "debug", s.Enum[0])
	assert.Nil(t, s.Enum[1])
	assert.True(t, s.HasType("null"))
	assert.True(t, s.HasType("string"))
	assert.Equal(t, "", s.TypeString(), "union types have no single type string")
}

func TestSchemaTypeHelpers(t *testing.T) {
	tests := []struct {
		name       string
		schema     *Schema
		typeString string
		hasString  bool
	}{
		{"bare string", &Schema{Type: "string"}, "string", true},
		{"single element array", &Schema{Type: []any{"string"}}, "string", true},
		{"union", &Schema{Type: []any{"string", "null"}}, "", true},
		{"absent", &Schema{}, "", false},
		{"nil receiver", nil, "", false},
		{"other type", &Schema{Type: "integer"}, "integer", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typeString, tt.schema.TypeString())
			assert.Equal(t, tt.hasString, tt.schema.HasType("string"))
		})
	}
}

func TestSchemaAccessorHelpers(t *testing.T) {
	sub := &Schema{Type: "string"}

	s := &Schema{Items: sub, AdditionalProperties: sub}
	got, ok := s.ItemsSchema()
	assert.True(t, ok)
	assert.Same(t, sub, got)
	got, ok = s.AdditionalPropertiesSchema()
	assert.True(t, ok)
	assert.Same(t, sub, got)

	boolSchema := &Schema{Items: true, AdditionalProperties: false}
	_, ok = boolSchema.ItemsSchema()
	assert.False(t, ok)
	_, ok = boolSchema.AdditionalPropertiesSchema()
	assert.False(t, ok)

	var nilSchema *Schema
	_, ok = nilSchema.ItemsSchema()
	assert.False(t, ok)
}

func TestSchemaUnmarshalNestedDefs(t *testing.T) {
	data := []byte(`{
		"$defs": {
			"Outer": {
				"type": "object",
				"properties": {
					"inner": {
						"type": "array",
						"items": {"additionalProperties": false}
					}
				}
			}
		}
	}`)

	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))

	outer := s.Defs["Outer"]
	require.NotNil(t, outer)
	inner := outer.Properties["inner"]
	require.NotNil(t, inner)
	items, ok := inner.Items.(*Schema)
	require.True(t, ok)
	assert.Equal(t, false, items.AdditionalProperties,
		"coercion must apply recursively through $defs and properties")
}
