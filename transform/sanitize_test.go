package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formshape/formshape/parser"
)

func TestIsStandardFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected bool
	}{
		{"date-time", true},
		{"date", true},
		{"uuid", true},
		{"ipv4", true},
		{"ipv6", true},
		{"uri", true},
		{"regex", true},
		{"relative-json-pointer", true},
		{"int32", false},
		{"int64", false},
		{"byte", false},
		{"password", false},
		{"k8s-short-name", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStandardFormat(tt.format))
		})
	}
}

func TestSanitizeRemovesUnevaluatedProperties(t *testing.T) {
	doc := &parser.Schema{
		Type:                  "object",
		UnevaluatedProperties: false,
		Properties: map[string]*parser.Schema{
			"tls": {
				Type:                  "object",
				UnevaluatedProperties: &parser.Schema{Type: "string"},
			},
		},
		Defs: map[string]*parser.Schema{
			"Listener": {
				Type: "object",
				Items: &parser.Schema{
					UnevaluatedProperties: false,
				},
			},
		},
	}

	result := Sanitize(doc)

	assert.Nil(t, doc.UnevaluatedProperties)
	assert.Nil(t, doc.Properties["tls"].UnevaluatedProperties)
	items, ok := doc.Defs["Listener"].ItemsSchema()
	require.True(t, ok)
	assert.Nil(t, items.UnevaluatedProperties)

	count := 0
	for _, change := range result.Changes {
		if change.Type == ChangeTypeUnevaluatedPropertiesRemoved {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestSanitizeFormatAllowList(t *testing.T) {
	doc := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"created": {Type: "string", Format: "date-time"},
			"id":      {Type: "string", Format: "uuid"},
			"name":    {Type: "string", Format: "k8s-short-name"},
			"port":    {Type: "integer", Format: "int32"},
		},
	}

	result := Sanitize(doc)

	assert.Equal(t, "date-time", doc.Properties["created"].Format)
	assert.Equal(t, "uuid", doc.Properties["id"].Format)
	assert.Empty(t, doc.Properties["name"].Format)
	assert.Empty(t, doc.Properties["port"].Format)

	var paths []string
	for _, change := range result.Changes {
		if change.Type == ChangeTypeFormatRemoved {
			paths = append(paths, change.Path)
		}
	}
	assert.Equal(t, []string{"$.properties.name", "$.properties.port"}, paths)
}

func TestSanitizeOpensChoiceBranches(t *testing.T) {
	doc := &parser.Schema{
		Type:                 "object",
		AdditionalProperties: false,
		OneOf: []*parser.Schema{
			{
				Type:                 "object",
				AdditionalProperties: false,
				Properties: map[string]*parser.Schema{
					"nested": {Type: "object", AdditionalProperties: false},
				},
			},
		},
		AnyOf: []*parser.Schema{
			{Type: "object", AdditionalProperties: false},
		},
		AllOf: []*parser.Schema{
			{Type: "object", AdditionalProperties: false},
		},
	}

	result := Sanitize(doc)

	// Only immediate oneOf/anyOf members are opened; the root, nested
	// objects, and allOf members keep their closed-properties constraint.
	assert.Equal(t, false, doc.AdditionalProperties)
	assert.Nil(t, doc.OneOf[0].AdditionalProperties)
	assert.Equal(t, false, doc.OneOf[0].Properties["nested"].AdditionalProperties)
	assert.Nil(t, doc.AnyOf[0].AdditionalProperties)
	assert.Equal(t, false, doc.AllOf[0].AdditionalProperties)

	count := 0
	for _, change := range result.Changes {
		if change.Type == ChangeTypeChoiceBranchOpened {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestSanitizeKeepsOpenAdditionalProperties(t *testing.T) {
	doc := &parser.Schema{
		OneOf: []*parser.Schema{
			{Type: "object", AdditionalProperties: true},
			{Type: "object", AdditionalProperties: &parser.Schema{Type: "string"}},
		},
	}

	result := Sanitize(doc)

	assert.Equal(t, true, doc.OneOf[0].AdditionalProperties)
	_, ok := doc.OneOf[1].AdditionalPropertiesSchema()
	assert.True(t, ok)
	assert.False(t, result.HasChanges())
}

func TestSanitizeFiltersSentinelBranches(t *testing.T) {
	raw := &parser.Schema{Type: "string", Enum: []any{sentinelValue}}
	promoted := &parser.Schema{
		Type:  "string",
		OneOf: []*parser.Schema{{Const: sentinelValue, Title: "Invalid"}},
	}
	keeper := &parser.Schema{
		Type:       "object",
		Properties: map[string]*parser.Schema{"mode": {Type: "string"}},
	}

	doc := &parser.Schema{
		OneOf: []*parser.Schema{keeper, raw},
		AnyOf: []*parser.Schema{promoted, keeper},
	}

	result := Sanitize(doc)

	require.Len(t, doc.OneOf, 1)
	assert.Same(t, keeper, doc.OneOf[0])
	require.Len(t, doc.AnyOf, 1)
	assert.Same(t, keeper, doc.AnyOf[0])

	var paths []string
	for _, change := range result.Changes {
		if change.Type == ChangeTypeSentinelBranchRemoved {
			paths = append(paths, change.Path)
		}
	}
	assert.Equal(t, []string{"$.oneOf[1]", "$.anyOf[0]"}, paths)
}

func TestSanitizeDeletesEmptiedComposition(t *testing.T) {
	doc := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"variant": {
				OneOf: []*parser.Schema{
					{Type: "string", Enum: []any{sentinelValue}},
				},
			},
		},
	}

	Sanitize(doc)

	assert.Nil(t, doc.Properties["variant"].OneOf, "emptied oneOf should be deleted, not left as []")
}

func TestSanitizeSentinelShapePrecision(t *testing.T) {
	tests := []struct {
		name   string
		branch *parser.Schema
		kept   bool
	}{
		{
			name:   "raw sentinel",
			branch: &parser.Schema{Type: "string", Enum: []any{"invalid"}},
			kept:   false,
		},
		{
			name:   "promoted sentinel",
			branch: &parser.Schema{OneOf: []*parser.Schema{{Const: "invalid"}}},
			kept:   false,
		},
		{
			name:   "sentinel value among others",
			branch: &parser.Schema{Type: "string", Enum: []any{"invalid", "other"}},
			kept:   true,
		},
		{
			name:   "sentinel value on non-string type",
			branch: &parser.Schema{Type: "integer", Enum: []any{"invalid"}},
			kept:   true,
		},
		{
			name:   "different single value",
			branch: &parser.Schema{Type: "string", Enum: []any{"valid"}},
			kept:   true,
		},
		{
			name:   "multi-entry promoted choice",
			branch: &parser.Schema{OneOf: []*parser.Schema{{Const: "invalid"}, {Const: "x"}}},
			kept:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &parser.Schema{OneOf: []*parser.Schema{tt.branch}}

			Sanitize(doc)

			if tt.kept {
				require.Len(t, doc.OneOf, 1)
			} else {
				assert.Nil(t, doc.OneOf)
			}
		})
	}
}

func TestSanitizeReachesEveryDepth(t *testing.T) {
	leaf := &parser.Schema{
		Type:                  "object",
		Format:                "custom-format",
		UnevaluatedProperties: false,
	}
	doc := &parser.Schema{
		Defs: map[string]*parser.Schema{
			"Route": {
				Properties: map[string]*parser.Schema{
					"rules": {
						Items: &parser.Schema{
							AnyOf: []*parser.Schema{
								{
									AllOf: []*parser.Schema{
										{Not: leaf},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	Sanitize(doc)

	assert.Nil(t, leaf.UnevaluatedProperties)
	assert.Empty(t, leaf.Format)
}

func TestSanitizeAfterNormalizeIdempotent(t *testing.T) {
	build := func() *parser.Schema {
		return &parser.Schema{
			Type:                  "object",
			UnevaluatedProperties: false,
			Properties: map[string]*parser.Schema{
				"protocol": {Type: "string", Enum: []any{"HTTP", "TCP"}},
				"name":     {Type: "string", Format: "k8s-short-name"},
				"backend": {
					OneOf: []*parser.Schema{
						{Type: "object", AdditionalProperties: false},
						{Type: "string", Enum: []any{sentinelValue}},
					},
				},
			},
		}
	}

	doc := build()
	require.True(t, Normalize(doc).HasChanges())
	require.True(t, Sanitize(doc).HasChanges())

	assert.False(t, Normalize(doc).HasChanges(), "second normalize should be a no-op")
	assert.False(t, Sanitize(doc).HasChanges(), "second sanitize should be a no-op")
}

func TestSanitizeNilSchema(t *testing.T) {
	result := Sanitize(nil)
	require.NotNil(t, result)
	assert.False(t, result.HasChanges())
}
