package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formshape/formshape/parser"
)

func TestEnhanceTitleFromKey(t *testing.T) {
	schema := &parser.Schema{Type: "object"}

	result := Enhance(schema, "backendRef", nil, nil)

	assert.Equal(t, "Backend Ref", schema.Title)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, ChangeTypeTitleFilled, result.Changes[0].Type)
	assert.Equal(t, "$", result.Changes[0].Path)
}

func TestEnhanceKeepsExistingTitle(t *testing.T) {
	schema := &parser.Schema{Type: "object", Title: "My Gateway"}

	result := Enhance(schema, "gateway", nil, nil)

	assert.Equal(t, "My Gateway", schema.Title)
	assert.False(t, result.HasChanges())
}

func TestEnhanceEmptyKey(t *testing.T) {
	schema := &parser.Schema{Type: "object"}

	Enhance(schema, "", nil, nil)

	assert.Empty(t, schema.Title)
}

func TestEnhanceChoiceTitles(t *testing.T) {
	defs := map[string]*parser.Schema{
		"TLSConfig": {Type: "object"},
	}

	tests := []struct {
		name     string
		member   *parser.Schema
		expected string
	}{
		{
			name:     "const value",
			member:   &parser.Schema{Const: "passthrough"},
			expected: "Passthrough",
		},
		{
			name:     "non-string const",
			member:   &parser.Schema{Const: int64(8080)},
			expected: "8080",
		},
		{
			name: "single property",
			member: &parser.Schema{
				Properties: map[string]*parser.Schema{"weight": {Type: "integer"}},
			},
			expected: "Weight",
		},
		{
			name: "multiple properties",
			member: &parser.Schema{
				Properties: map[string]*parser.Schema{
					"host": {Type: "string"},
					"port": {Type: "integer"},
				},
			},
			expected: "Option 1",
		},
		{
			name:     "reference to known definition",
			member:   &parser.Schema{Ref: "#/$defs/TLSConfig"},
			expected: "TLS Config",
		},
		{
			name:     "reference to unknown definition",
			member:   &parser.Schema{Ref: "#/$defs/Missing"},
			expected: "Option 1",
		},
		{
			name:     "null type",
			member:   &parser.Schema{Type: "null"},
			expected: NullChoiceTitle,
		},
		{
			name:     "bare member",
			member:   &parser.Schema{Type: "string"},
			expected: "Option 1",
		},
		{
			name:     "already titled",
			member:   &parser.Schema{Const: "x", Title: "Custom"},
			expected: "Custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := &parser.Schema{OneOf: []*parser.Schema{tt.member}}

			Enhance(schema, "", defs, nil)

			assert.Equal(t, tt.expected, tt.member.Title)
		})
	}
}

func TestEnhanceChoicePositionalTitles(t *testing.T) {
	schema := &parser.Schema{
		OneOf: []*parser.Schema{
			{Type: "string"},
			{Type: "integer"},
			{Type: "boolean"},
		},
	}

	result := Enhance(schema, "", nil, nil)

	assert.Equal(t, "Option 1", schema.OneOf[0].Title)
	assert.Equal(t, "Option 2", schema.OneOf[1].Title)
	assert.Equal(t, "Option 3", schema.OneOf[2].Title)

	var paths []string
	for _, change := range result.Changes {
		paths = append(paths, change.Path)
	}
	assert.Equal(t, []string{"$.oneOf[0]", "$.oneOf[1]", "$.oneOf[2]"}, paths)
}

func TestEnhanceAlternativeTitles(t *testing.T) {
	defs := map[string]*parser.Schema{
		"GatewayListener": {Type: "object"},
	}
	nullMember := &parser.Schema{Type: "null"}
	propsMember := &parser.Schema{
		Properties: map[string]*parser.Schema{
			"weight": {Type: "integer"},
			"group":  {Type: "string"},
		},
	}
	refMember := &parser.Schema{Ref: "#/$defs/GatewayListener"}
	bareMember := &parser.Schema{Type: "string"}

	schema := &parser.Schema{
		AnyOf: []*parser.Schema{nullMember, propsMember, refMember, bareMember},
	}

	Enhance(schema, "", defs, nil)

	assert.Empty(t, nullMember.Title, "null alternatives stay untitled")
	assert.Equal(t, "Group", propsMember.Title, "first property key in sorted order")
	assert.Equal(t, "Gateway Listener", refMember.Title)
	assert.Empty(t, bareMember.Title, "alternatives with no usable shape stay untitled")
}

func TestEnhancePropertyRecursion(t *testing.T) {
	schema := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"port": {Type: "integer"},
			"tls": {
				Type: "object",
				Properties: map[string]*parser.Schema{
					"minTLSVersion": {Type: "string"},
				},
			},
			"described": {
				Type:        "string",
				Description: "Already documented.",
			},
		},
	}

	result := Enhance(schema, "Gateway", nil, DefaultFieldDescriptions)

	assert.Equal(t, "Gateway", schema.Title)
	assert.Equal(t, "Port", schema.Properties["port"].Title)
	assert.Equal(t, DefaultFieldDescriptions["port"], schema.Properties["port"].Description)
	assert.Equal(t, "Tls", schema.Properties["tls"].Title)
	assert.Equal(t, DefaultFieldDescriptions["tls"], schema.Properties["tls"].Description)

	nested := schema.Properties["tls"].Properties["minTLSVersion"]
	assert.Equal(t, "Min TLS Version", nested.Title)
	assert.Empty(t, nested.Description, "unknown fields get no description")

	assert.Equal(t, "Already documented.", schema.Properties["described"].Description)

	titleCount := 0
	for _, change := range result.Changes {
		if change.Type == ChangeTypeTitleFilled {
			titleCount++
		}
	}
	assert.Equal(t, 5, titleCount)
}

func TestEnhanceDoesNotDescendBeyondProperties(t *testing.T) {
	choiceProp := &parser.Schema{Type: "string"}
	itemProp := &parser.Schema{Type: "string"}
	defProp := &parser.Schema{Type: "string"}
	allOfProp := &parser.Schema{Type: "string"}

	schema := &parser.Schema{
		Type: "object",
		OneOf: []*parser.Schema{
			{
				Type:       "object",
				Title:      "Variant",
				Properties: map[string]*parser.Schema{"inner": choiceProp},
			},
		},
		Items: &parser.Schema{
			Properties: map[string]*parser.Schema{"inner": itemProp},
		},
		AllOf: []*parser.Schema{
			{Properties: map[string]*parser.Schema{"inner": allOfProp}},
		},
		Defs: map[string]*parser.Schema{
			"Inner": {Properties: map[string]*parser.Schema{"inner": defProp}},
		},
	}

	Enhance(schema, "Root", nil, nil)

	assert.Empty(t, choiceProp.Title)
	assert.Empty(t, itemProp.Title)
	assert.Empty(t, defProp.Title)
	assert.Empty(t, allOfProp.Title)
}

func TestEnhanceDoesNotDereference(t *testing.T) {
	target := &parser.Schema{Type: "object"}
	defs := map[string]*parser.Schema{"GatewayListener": target}

	schema := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"listener": {Ref: "#/$defs/GatewayListener"},
		},
	}

	Enhance(schema, "Gateway", defs, nil)

	// The property itself gets a title from its key; the referenced
	// definition is never touched.
	assert.Equal(t, "Listener", schema.Properties["listener"].Title)
	assert.Empty(t, target.Title)
}

func TestEnhanceIdempotent(t *testing.T) {
	schema := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"port": {Type: "integer"},
			"mode": {
				OneOf: []*parser.Schema{
					{Const: "Terminate"},
					{Type: "null"},
				},
			},
		},
	}

	first := Enhance(schema, "Gateway", nil, DefaultFieldDescriptions)
	require.True(t, first.HasChanges())

	second := Enhance(schema, "Gateway", nil, DefaultFieldDescriptions)
	assert.Equal(t, 0, second.Count(), "second pass should change nothing")
}

func TestEnhanceNilSchema(t *testing.T) {
	result := Enhance(nil, "x", nil, nil)
	require.NotNil(t, result)
	assert.False(t, result.HasChanges())
}
