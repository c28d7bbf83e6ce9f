// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/formshape/formshape/parser"
)

// NewSimpleDocument creates a minimal schema document for testing.
// Declares the Draft 2020-12 dialect and an empty definitions table.
func NewSimpleDocument() *parser.Schema {
	return &parser.Schema{
		Dialect: parser.DefaultDialectURI,
		Defs:    make(map[string]*parser.Schema),
	}
}

// NewGatewayDocument creates a schema document with a small gateway-shaped
// definitions table for testing. The table exercises the features the
// pipeline rewrites: cross-references, string enums, non-portable formats,
// and an unevaluatedProperties constraint.
func NewGatewayDocument() *parser.Schema {
	doc := NewSimpleDocument()
	doc.Defs = map[string]*parser.Schema{
		"Gateway": {
			Type:        "object",
			Description: "Gateway configuration.",
			Properties: map[string]*parser.Schema{
				"listeners": {
					Type:  "array",
					Items: &parser.Schema{Ref: "#/$defs/GatewayListener"},
				},
				"logLevel": {
					Type: "string",
					Enum: []any{"debug", "info", "warn"},
				},
			},
		},
		"GatewayListener": {
			Type:                  "object",
			UnevaluatedProperties: false,
			Properties: map[string]*parser.Schema{
				"port": {Type: "integer", Format: "int32"},
				"tls":  {Ref: "#/$defs/TLSConfig"},
			},
		},
		"TLSConfig": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"mode": {
					Type: "string",
					Enum: []any{"Terminate", "Passthrough"},
				},
			},
		},
		"HTTPRoute": {
			Type: "object",
			Properties: map[string]*parser.Schema{
				"hostname": {Type: "string", Format: "hostname"},
			},
		},
	}
	return doc
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
