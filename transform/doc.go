// Package transform rewrites schema fragments so that any UI renderer can
// present them safely. It provides three passes: Normalize promotes string
// enums into titled choice lists, Sanitize strips keywords renderers cannot
// handle, and Enhance fills in missing titles and descriptions.
//
// All passes mutate the given schema in place and return a [Result]
// describing every change made. Passes are idempotent; applying one twice
// yields the same document and an empty second Result.
//
// # Quick Start
//
// Apply the passes in pipeline order:
//
//	doc := buildStandaloneSchema()
//	transform.Enhance(doc, "Gateway", defs, transform.DefaultFieldDescriptions)
//	transform.Normalize(doc)
//	result := transform.Sanitize(doc)
//	for _, change := range result.Changes {
//		fmt.Printf("%s at %s: %s\n", change.Type, change.Path, change.Description)
//	}
//
// # Normalize
//
// Machine-generated schemas express fixed value sets as bare enums:
//
//	{"type": "string", "enum": ["HTTP", "HTTPS", "TCP"]}
//
// Renderers want one entry per value with a display label. Normalize
// rewrites any enum whose values are all strings (optionally with null) into
// a oneOf of const entries:
//
//	{"oneOf": [
//	  {"const": "HTTP", "title": "HTTP"},
//	  {"const": "HTTPS", "title": "HTTPS"},
//	  {"const": "TCP", "title": "TCP"}
//	]}
//
// A null in the enum becomes a trailing {"type": "null", "title": "(none)"}
// entry. Enums with non-string members are left untouched.
//
// # Sanitize
//
// Sanitize removes keywords that break strict renderers: every
// unevaluatedProperties, format values outside the standard set (see
// [IsStandardFormat]), additionalProperties: false on immediate oneOf and
// anyOf members, and generator sentinel branches whose only content is the
// literal "invalid". Composition arrays emptied by sentinel removal are
// deleted rather than left empty.
//
// # Enhance
//
// Enhance fills gaps without overwriting anything already present: a title
// derived from the name a fragment was reached under, titles for untitled
// oneOf and anyOf members, and descriptions for well-known field names from
// a caller-supplied table (see [DefaultFieldDescriptions]). It never
// dereferences $ref and never descends into $defs, items, or allOf.
//
// # Change Reporting
//
// Each pass reports what it did through [Result]. A [Change] carries the
// change type, the dotted path to the rewritten fragment, and the before and
// after values where they are meaningful:
//
//	enum-promoted at $.properties.protocol: promoted 3-value enum to choice list
//
// Results from several passes can be combined with [Result.Merge].
//
// # Related Packages
//
// The transform package sits between extraction and output:
//   - [github.com/formshape/formshape/parser] - Parse schema documents
//   - [github.com/formshape/formshape/extractor] - Extract standalone per-type schemas
//   - [github.com/formshape/formshape/naming] - Display-name formatting used for titles
//   - [github.com/formshape/formshape/generator] - Write extracted schemas to disk
package transform
