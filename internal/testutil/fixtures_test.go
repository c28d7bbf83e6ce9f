package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formshape/formshape/parser"
)

// TestNewSimpleDocument verifies that a minimal document is created correctly.
func TestNewSimpleDocument(t *testing.T) {
	doc := NewSimpleDocument()

	assert.Equal(t, parser.DefaultDialectURI, doc.Dialect, "dialect should default to Draft 2020-12")
	assert.NotNil(t, doc.Defs, "definitions table should be initialized")
	assert.Empty(t, doc.Defs, "definitions table should be empty")
}

// TestNewGatewayDocument verifies the gateway fixture covers the features
// the pipeline rewrites.
func TestNewGatewayDocument(t *testing.T) {
	doc := NewGatewayDocument()

	require.Contains(t, doc.Defs, "Gateway")
	require.Contains(t, doc.Defs, "GatewayListener")
	require.Contains(t, doc.Defs, "TLSConfig")

	gateway := doc.Defs["Gateway"]
	require.Contains(t, gateway.Properties, "listeners")
	items, ok := gateway.Properties["listeners"].Items.(*parser.Schema)
	require.True(t, ok, "listeners items should be a schema")
	assert.Equal(t, "#/$defs/GatewayListener", items.Ref)

	assert.NotEmpty(t, gateway.Properties["logLevel"].Enum, "fixture should carry a promotable enum")
	assert.Equal(t, false, doc.Defs["GatewayListener"].UnevaluatedProperties)
	assert.Equal(t, "int32", doc.Defs["GatewayListener"].Properties["port"].Format)
}

// TestGatewayDocumentParses verifies the fixture round-trips through the parser.
func TestGatewayDocumentParses(t *testing.T) {
	path := WriteTempJSON(t, NewGatewayDocument())

	result, err := parser.New().Parse(path)
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	assert.Equal(t, parser.DialectDraft202012, result.Dialect)
	assert.Len(t, result.Definitions(), 4)
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewSimpleDocument())

	require.True(t, strings.HasSuffix(path, ".yaml"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "$schema")
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, NewSimpleDocument())

	require.True(t, strings.HasSuffix(path, ".json"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "$schema")
}
