// Package formshape provides tools for deriving standalone, form-renderer-safe
// JSON Schemas from large machine-generated configuration schemas.
//
// A machine-generated configuration schema typically arrives as one document
// with every type of the system collected in its $defs table. Form renderers
// and documentation generators want the opposite shape: one self-contained
// schema per type, carrying only the definitions that type actually reaches,
// with human-readable titles and descriptions and without the validation
// keywords that strict renderers reject.
//
// # Overview
//
// The library consists of the following packages:
//
//   - parser: Parse JSON Schema documents from files, URLs, readers, or bytes
//   - walker: Traverse schema trees with visitor callbacks
//   - naming: Derive display titles and descriptions from type names
//   - transform: Normalize enums, sanitize renderer-hostile keywords, enhance titles
//   - discovery: Resolve type-name patterns against a definitions table
//   - extractor: Extract one type into a standalone schema document
//   - generator: Drive extraction for whole categories and write output files
//   - validator: Check generated documents against the form renderer contract
//   - config: Load and validate generation manifests
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/formshape/formshape
//
// # Quick Start
//
// Parse a schema document:
//
//	import "github.com/formshape/formshape/parser"
//
//	p := parser.New()
//	result, err := p.Parse("config-schema.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Definitions: %d\n", result.Stats.DefinitionCount)
//
// Extract a single type as a standalone schema:
//
//	import "github.com/formshape/formshape/extractor"
//
//	ex := extractor.New()
//	extracted, err := ex.Extract(result.Document, "Gateway")
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := json.MarshalIndent(extracted.Document, "", "  ")
//
// Generate schemas for every category in a manifest:
//
//	import "github.com/formshape/formshape/generator"
//
//	genResult, err := generator.GenerateWithOptions(
//		generator.WithFilePath("config-schema.json"),
//		generator.WithConfigFile("formshape.yaml"),
//		generator.WithOutputDir("site/static/schemas"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("wrote %d documents\n", genResult.TypeCount)
//
// # Command Line
//
// The formshape command exposes the same functionality:
//
//	formshape generate -config formshape.yaml -o site/static/schemas config-schema.json
//	formshape discover -config formshape.yaml config-schema.json
//	formshape extract -type Gateway config-schema.json
//	formshape inspect config-schema.json
//	formshape validate site/static/schemas/gateways/Gateway.json
//
// # Logging
//
// All packages accept an optional structured logger compatible with log/slog.
// See the parser.Logger interface for adapter examples.
package formshape
