// Package extractor derives standalone, renderer-ready documents from a
// base document's definitions table.
//
// A machine-generated base document holds every type in one $defs table,
// cross-linked by $ref. A renderer wants one self-contained document per
// type: the type's own fragment at top level plus exactly the definitions
// it transitively references, embedded under its own $defs.
//
// # Quick Start
//
//	result, err := parser.New().Parse("schema.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	x := extractor.New()
//	extracted, err := x.Extract(result.Document, "HTTPRoute")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("embedded %d definitions, %d rewrites\n",
//		len(extracted.Closure), extracted.Changes.Count())
//
// # Extraction Order
//
// Extract always works in the same order: deep-copy the named definition,
// compute its reference closure against the original table, deep-copy the
// closure members, apply overrides wholesale, enhance everything not
// overridden, assemble the standalone document, then normalize and sanitize
// it as a whole. The order matters: overrides never see enhancement, and
// sanitization's sentinel detection relies on normalization having already
// promoted enums.
//
// # Missing Types
//
// Extracting a name absent from the table returns a
// [schemaerrors.TypeNotFoundError] and logs a warning. Batch callers match
// it with errors.Is(err, schemaerrors.ErrTypeNotFound) and continue with
// the next type.
//
// # Related Packages
//
//   - [github.com/formshape/formshape/parser] - Parse base documents
//   - [github.com/formshape/formshape/transform] - The enhancement, normalization, and sanitization passes
//   - [github.com/formshape/formshape/discovery] - Decide which types to extract
//   - [github.com/formshape/formshape/generator] - Run extraction across whole categories
package extractor
