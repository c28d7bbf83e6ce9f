// Package schemaerrors provides structured error types for the formshape library.
//
// Import path: github.com/formshape/formshape/schemaerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ParseError]: JSON/YAML parsing failures and structural issues in the base document
//   - [ConfigError]: Invalid category, override, or option configuration
//   - [TypeNotFoundError]: A requested or discovered type is absent from the definitions table
//   - [WriteError]: Output file or directory write failures
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrTypeNotFound]: Matches any [TypeNotFoundError]
//   - [ErrWrite]: Matches any [WriteError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("schema.json"))
//	if errors.Is(err, schemaerrors.ErrParse) {
//	    // Handle parse error
//	}
//
// Extract error details with errors.As():
//
//	var notFound *schemaerrors.TypeNotFoundError
//	if errors.As(err, &notFound) {
//	    fmt.Printf("unknown type: %s\n", notFound.TypeName)
//	}
//
// The distinction between [ErrTypeNotFound] and [ErrWrite] matters to the
// generation driver: a missing type is a per-type condition that is logged
// and skipped, while a write failure aborts the whole run.
package schemaerrors
