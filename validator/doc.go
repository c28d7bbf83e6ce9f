// Package validator checks standalone schema documents against the form
// renderer's contract.
//
// The generator's transformation passes guarantee the contract for
// documents they produce; the validator exists for everything else:
// documents edited by hand, outputs of older runs, and regression checks
// in tests. It reports one issue per violation with the JSON path of the
// offending fragment.
//
// # Checks
//
//   - Every $ref resolves to an entry in the document's own $defs table
//     (standalone documents are self-contained; the renderer cannot fetch
//     anything else)
//   - No unevaluatedProperties at any depth
//   - Every format value belongs to the standard allow-list
//   - No additionalProperties: false on an immediate oneOf/anyOf member
//   - No fragment carries both enum and oneOf
//
// With warnings enabled (the default), string enums that were never
// promoted to labeled choices are reported too; they render, but without
// choice titles.
//
// # Quick Start
//
//	result, err := validator.ValidateWithOptions(
//		validator.WithFilePath("schemas/gateways/Gateway.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e.String())
//		}
//	}
//
// # Related Packages
//
//   - [github.com/formshape/formshape/parser] - Parse documents before validation
//   - [github.com/formshape/formshape/transform] - The passes that establish the contract
//   - [github.com/formshape/formshape/generator] - Produce documents that pass by construction
package validator
