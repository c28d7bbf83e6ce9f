// Package schemaerrors provides structured error types for formshape.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: JSON/YAML parsing failures and structural issues
//   - ConfigError: Invalid category, override, or option configuration
//   - TypeNotFoundError: Requested type absent from the definitions table
//   - WriteError: Output file or directory write failures
//
// # Usage with errors.Is
//
//	result, err := extractor.New().Extract(doc, "HTTPRoute")
//	if err != nil {
//	    if errors.Is(err, schemaerrors.ErrTypeNotFound) {
//	        // Skip this type and continue the run
//	    }
//	}
package schemaerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrTypeNotFound indicates a type name was not present in the
	// document's definitions table.
	ErrTypeNotFound = errors.New("type not found")

	// ErrWrite indicates an output write failure.
	ErrWrite = errors.New("write error")
)

// ParseError represents a failure to parse a schema document.
// This includes JSON/YAML deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path, URL, or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, malformed category tables, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option or category key
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// TypeNotFoundError indicates that a requested or discovered type name is
// absent from the base document's definitions table. It is a per-type
// condition: the generation driver logs it and continues with the next type.
type TypeNotFoundError struct {
	// TypeName is the definition name that could not be found
	TypeName string
	// Available is the number of definitions in the table (0 if unknown)
	Available int
}

// Error returns a human-readable error message.
func (e *TypeNotFoundError) Error() string {
	msg := "type not found"
	if e.TypeName != "" {
		msg += ": " + e.TypeName
	}
	if e.Available > 0 {
		msg += fmt.Sprintf(" (definitions table has %d entries)", e.Available)
	}
	return msg
}

// Unwrap returns nil as TypeNotFoundError has no underlying cause.
func (e *TypeNotFoundError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TypeNotFoundError) Is(target error) bool {
	return target == ErrTypeNotFound
}

// WriteError represents a failure to write an output file or create an
// output directory. Unlike TypeNotFoundError it is fatal to the run.
type WriteError struct {
	// Path is the output path that could not be written
	Path string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
