package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formshape/formshape/parser"
)

func TestNormalizeStringEnum(t *testing.T) {
	schema := &parser.Schema{
		Type: "string",
		Enum: []any{"HTTP", "HTTPS", "TCP"},
	}

	result := Normalize(schema)

	require.Len(t, result.Changes, 1)
	assert.Equal(t, ChangeTypeEnumPromoted, result.Changes[0].Type)
	assert.Equal(t, "$", result.Changes[0].Path)

	assert.Nil(t, schema.Enum, "enum should be replaced by oneOf")
	require.Len(t, schema.OneOf, 3)

	expected := []struct {
		constValue string
		title      string
	}{
		{"HTTP", "HTTP"},
		{"HTTPS", "HTTPS"},
		{"TCP", "TCP"},
	}
	for i, want := range expected {
		assert.Equal(t, want.constValue, schema.OneOf[i].Const, "choice %d const", i)
		assert.Equal(t, want.title, schema.OneOf[i].Title, "choice %d title", i)
	}
}

func TestNormalizeFormatsChoiceTitles(t *testing.T) {
	schema := &parser.Schema{
		Type: "string",
		Enum: []any{"roundRobin", "leastConn"},
	}

	Normalize(schema)

	require.Len(t, schema.OneOf, 2)
	assert.Equal(t, "Round Robin", schema.OneOf[0].Title)
	assert.Equal(t, "Least Conn", schema.OneOf[1].Title)
}

func TestNormalizeNullableEnum(t *testing.T) {
	schema := &parser.Schema{
		Type: []any{"string", "null"},
		Enum: []any{"B", nil, "A"},
	}

	Normalize(schema)

	require.Len(t, schema.OneOf, 3)

	// Strings keep their original order; the null entry is always last.
	assert.Equal(t, "B", schema.OneOf[0].Const)
	assert.Equal(t, "A", schema.OneOf[1].Const)
	assert.Nil(t, schema.OneOf[2].Const)
	assert.Equal(t, "null", schema.OneOf[2].Type)
	assert.Equal(t, NullChoiceTitle, schema.OneOf[2].Title)
}

func TestNormalizeLeavesUnsupportedEnums(t *testing.T) {
	tests := []struct {
		name string
		enum []any
	}{
		{name: "mixed string and number", enum: []any{"A", int64(1)}},
		{name: "all numbers", enum: []any{int64(1), int64(2)}},
		{name: "null only", enum: []any{nil}},
		{name: "boolean member", enum: []any{"on", true}},
		{name: "empty", enum: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := &parser.Schema{Enum: tt.enum}

			result := Normalize(schema)

			assert.False(t, result.HasChanges())
			assert.Equal(t, tt.enum, schema.Enum, "enum should be untouched")
			assert.Nil(t, schema.OneOf)
		})
	}
}

func TestNormalizePreservesDuplicates(t *testing.T) {
	schema := &parser.Schema{
		Type: "string",
		Enum: []any{"A", "A"},
	}

	Normalize(schema)

	require.Len(t, schema.OneOf, 2)
	assert.Equal(t, "A", schema.OneOf[0].Const)
	assert.Equal(t, "A", schema.OneOf[1].Const)
}

func TestNormalizeRecursesNestedFragments(t *testing.T) {
	doc := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"mode": {Type: "string", Enum: []any{"Terminate", "Passthrough"}},
		},
		OneOf: []*parser.Schema{
			{Type: "object"},
			{Type: "string", Enum: []any{"a"}},
		},
		Items: &parser.Schema{Type: "string", Enum: []any{"x", "y"}},
		Defs: map[string]*parser.Schema{
			"Widget": {
				Type: "object",
				Properties: map[string]*parser.Schema{
					"level": {Type: "string", Enum: []any{"debug", "info"}},
				},
			},
		},
	}

	result := Normalize(doc)

	var paths []string
	for _, change := range result.Changes {
		require.Equal(t, ChangeTypeEnumPromoted, change.Type)
		paths = append(paths, change.Path)
	}
	assert.Equal(t, []string{
		"$.properties.mode",
		"$.oneOf[1]",
		"$.items",
		"$.$defs.Widget.properties.level",
	}, paths)

	assert.Len(t, doc.Properties["mode"].OneOf, 2)
	assert.Len(t, doc.OneOf[1].OneOf, 1)
	items, ok := doc.ItemsSchema()
	require.True(t, ok)
	assert.Len(t, items.OneOf, 2)
	assert.Len(t, doc.Defs["Widget"].Properties["level"].OneOf, 2)
}

func TestNormalizeIdempotent(t *testing.T) {
	schema := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"protocol": {Type: "string", Enum: []any{"HTTP", "TCP", nil}},
		},
	}

	first := Normalize(schema)
	require.True(t, first.HasChanges())

	second := Normalize(schema)
	assert.Equal(t, 0, second.Count(), "second pass should change nothing")
	assert.Len(t, schema.Properties["protocol"].OneOf, 3)
}

func TestNormalizeNilSchema(t *testing.T) {
	result := Normalize(nil)
	require.NotNil(t, result)
	assert.False(t, result.HasChanges())
}
