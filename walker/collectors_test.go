package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formshape/formshape/parser"
)

func parseGatewayFixture(t *testing.T) *parser.ParseResult {
	t.Helper()
	p := parser.New()
	result, err := p.Parse("../testdata/gateway.json")
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	return result
}

func TestCollectSchemas(t *testing.T) {
	result := parseGatewayFixture(t)

	collector, err := CollectSchemas(result)
	require.NoError(t, err)

	// Root, two root properties plus the gateways items schema are inline;
	// everything else lives under $defs.
	assert.Len(t, collector.Inline, 4)
	assert.Len(t, collector.All, 53)
	assert.Len(t, collector.Definitions, len(collector.All)-len(collector.Inline))

	gateway, ok := collector.ByName["Gateway"]
	require.True(t, ok, "ByName should contain the Gateway definition")
	assert.Equal(t, "$.$defs['Gateway']", gateway.JSONPath)
	assert.Equal(t, "Gateway", gateway.DefinitionName)
	assert.True(t, gateway.InDefinitions)

	root, ok := collector.ByPath["$"]
	require.True(t, ok)
	assert.False(t, root.InDefinitions)
	assert.Equal(t, result.Document, root.Schema)

	listeners, ok := collector.ByPath["$.$defs['Gateway'].properties['listeners']"]
	require.True(t, ok)
	assert.Equal(t, "listeners", listeners.Name)
	assert.Equal(t, "Gateway", listeners.DefinitionName)

	// Traversal order is deterministic: definitions in sorted order before
	// the root's own properties.
	assert.Equal(t, "$", collector.All[0].JSONPath)
	assert.Equal(t, "$.$defs['BackendRef']", collector.All[1].JSONPath)
}

func TestCollectRefs(t *testing.T) {
	result := parseGatewayFixture(t)

	refs, err := CollectRefs(result)
	require.NoError(t, err)
	assert.Len(t, refs, 12)

	// Every ref in the fixture uses the #/$defs/ form, so every RefInfo
	// carries a definition name.
	byTarget := make(map[string]int)
	for _, ref := range refs {
		assert.NotEmpty(t, ref.DefinitionName, "ref %s at %s", ref.Ref, ref.SourcePath)
		byTarget[ref.DefinitionName]++
	}

	assert.Equal(t, 2, byTarget["BackendRef"], "HTTPRoute and TCPRoute both point at BackendRef")
	assert.Equal(t, 1, byTarget["Gateway"])
	assert.Equal(t, 1, byTarget["TLSTerminate"])

	// Definitions walk before root properties, and CyclicA sorts before any
	// other definition that carries a ref.
	assert.Equal(t, "#/$defs/CyclicB", refs[0].Ref)
	assert.Equal(t, "$.$defs['CyclicA'].properties['b']", refs[0].SourcePath)
	assert.Equal(t, "#/$defs/LogLevel", refs[len(refs)-1].Ref)
}

func TestCollectSchemaRefs(t *testing.T) {
	result := parseGatewayFixture(t)

	gateway, ok := result.Definition("Gateway")
	require.True(t, ok)

	refs, err := CollectSchemaRefs(gateway)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	// Properties walk in sorted order: listeners before tls.
	assert.Equal(t, "GatewayListener", refs[0].DefinitionName)
	assert.Equal(t, "$.properties['listeners'].items", refs[0].SourcePath)
	assert.Equal(t, "TLSConfig", refs[1].DefinitionName)
	assert.Equal(t, "$.properties['tls']", refs[1].SourcePath)
}

func TestCollectSchemaRefsNil(t *testing.T) {
	_, err := CollectSchemaRefs(nil)
	assert.Error(t, err)
}
