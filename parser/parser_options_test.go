package parser

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithOptionsFilePath(t *testing.T) {
	result, err := ParseWithOptions(
		WithFilePath("../testdata/gateway.json"),
	)
	require.NoError(t, err)
	assert.Equal(t, "../testdata/gateway.json", result.SourcePath)
	assert.Equal(t, 13, result.Stats.DefinitionCount)
}

func TestParseWithOptionsBytes(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(`{"$defs": {"Widget": {"type": "object"}}}`)),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.DefinitionCount)
}

func TestParseWithOptionsReader(t *testing.T) {
	result, err := ParseWithOptions(
		WithReader(strings.NewReader(`{"$defs": {"Widget": {"type": "object"}}}`)),
	)
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.json", result.SourcePath)
}

func TestParseWithOptionsNoSource(t *testing.T) {
	_, err := ParseWithOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify an input source")
}

func TestParseWithOptionsMultipleSources(t *testing.T) {
	_, err := ParseWithOptions(
		WithFilePath("../testdata/gateway.json"),
		WithBytes([]byte(`{}`)),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify exactly one input source")
}

func TestParseWithOptionsNilReader(t *testing.T) {
	_, err := ParseWithOptions(WithReader(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reader cannot be nil")
}

func TestParseWithOptionsNilBytes(t *testing.T) {
	_, err := ParseWithOptions(WithBytes(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bytes cannot be nil")
}

func TestParseWithOptionsSourceName(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(`{"$defs": {"Widget": {}}}`)),
		WithSourceName("stdin"),
	)
	require.NoError(t, err)
	assert.Equal(t, "stdin", result.SourcePath)
}

func TestParseWithOptionsValidateStructureDisabled(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(`{"$defs": {"Widget": null}}`)),
		WithValidateStructure(false),
	)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestParseWithOptionsLogger(t *testing.T) {
	var buf strings.Builder
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	_, err := ParseWithOptions(
		WithBytes([]byte(`{"$defs": {"Widget": {}}}`)),
		WithLogger(logger),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "parsed schema document")
}
