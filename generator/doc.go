// Package generator drives the full transformation pipeline from a parsed
// base document to renderer-ready schema files.
//
// For each configured category the generator discovers the member types,
// extracts one standalone document per type, stamps the discovery entry's
// display name and description onto it, and renders the documents plus a
// per-category index. Writing is a separate step so callers can inspect or
// test results entirely in memory.
//
// # Quick Start
//
// Generate documents using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("schema.json"),
//		generator.WithConfigFile("categories.yaml"),
//		generator.WithOutputDir("./schemas"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.FromConfig(cfg)
//	result, _ := g.Generate("schema.json")
//	result.WriteFiles("./schemas")
//
// # Output Layout
//
// Outputs are grouped one directory per category under the output root:
//
//	schemas/
//	  gateways/
//	    Gateway.json
//	    GatewayListener.json
//	    index.json
//	  routes/
//	    HTTPRoute.json
//	    index.json
//
// Each type document is standalone: a dialect identifier, the type's
// fragment at top level, and every transitively referenced definition
// embedded under $defs. The index lists the category's types with their
// display names, descriptions, and file names.
//
// # Stale-Output Reclamation
//
// WriteFiles deletes any .json file in a category directory that the
// current run did not produce, so a type removed from the base document or
// renamed between runs does not leave its old document behind. Files
// without a .json suffix and subdirectories are never touched.
//
// # Failure Model
//
// A discovered type missing from the definitions table is skipped and
// recorded as a warning issue; the run continues. Rendering and write
// failures abort the run, write failures matching schemaerrors.ErrWrite so
// callers can tell them apart from extraction problems.
//
// See the exported GenerateResult and GenerateIssue types for complete details.
package generator
