package walker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formshape/formshape/parser"
)

// TestContextPool_FieldsCleared verifies that WalkContext fields are properly
// cleared when returned to the pool, preventing data leakage between walks.
func TestContextPool_FieldsCleared(t *testing.T) {
	// First walk populates name and definition scope on pooled contexts
	first := gatewayDoc()
	err := Walk(first,
		WithParentTracking(),
		WithSchemaHandler(func(_ *WalkContext, _ *parser.Schema) Action {
			return Continue
		}),
	)
	require.NoError(t, err)

	// Second walk over a bare schema must see no residue from the first
	bare := &parser.ParseResult{Document: &parser.Schema{Type: "string"}}
	err = Walk(bare,
		WithSchemaHandler(func(wc *WalkContext, _ *parser.Schema) Action {
			assert.Equal(t, "$", wc.JSONPath)
			assert.Empty(t, wc.Name)
			assert.Empty(t, wc.DefinitionName)
			assert.False(t, wc.InDefinitions)
			assert.Nil(t, wc.Parent)
			return Continue
		}),
	)
	require.NoError(t, err)
}

// TestContextPool_CopySurvivesRelease verifies the documented handler
// contract: copies of context fields remain valid after the handler returns
// even though the context itself is recycled.
func TestContextPool_CopySurvivesRelease(t *testing.T) {
	var copies []WalkContext

	err := Walk(gatewayDoc(),
		WithSchemaHandler(func(wc *WalkContext, _ *parser.Schema) Action {
			copies = append(copies, WalkContext{
				JSONPath:       wc.JSONPath,
				DefinitionName: wc.DefinitionName,
				Name:           wc.Name,
				InDefinitions:  wc.InDefinitions,
			})
			return Continue
		}),
	)
	require.NoError(t, err)
	require.Len(t, copies, 5)

	assert.Equal(t, "$", copies[0].JSONPath)
	assert.Equal(t, "$.$defs['Gateway']", copies[1].JSONPath)
	assert.Equal(t, "Gateway", copies[1].Name)
	assert.True(t, copies[1].InDefinitions)
	assert.Equal(t, "$.properties['gateways'].items", copies[4].JSONPath)
	assert.False(t, copies[4].InDefinitions)
}

func TestWalkContextDefaultContext(t *testing.T) {
	wc := &WalkContext{}
	assert.NotNil(t, wc.Context())
	assert.Equal(t, context.Background(), wc.Context())
}

func TestWalkContextWithContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	wc := &WalkContext{JSONPath: "$.properties['name']"}
	wc2 := wc.WithContext(ctx)

	assert.Equal(t, "value", wc2.Context().Value(key{}))
	assert.Equal(t, wc.JSONPath, wc2.JSONPath)
	// Original is untouched
	assert.Equal(t, context.Background(), wc.Context())
}

func TestInDefinitionScope(t *testing.T) {
	wc := &WalkContext{}
	assert.False(t, wc.InDefinitionScope())

	wc.DefinitionName = "Gateway"
	assert.True(t, wc.InDefinitionScope())
}
