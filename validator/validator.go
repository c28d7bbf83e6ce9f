package validator

import (
	"fmt"
	"time"

	"github.com/formshape/formshape/internal/issues"
	"github.com/formshape/formshape/internal/severity"
	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/transform"
	"github.com/formshape/formshape/walker"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates an invariant violation that breaks form rendering
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a document that renders but carries leftover
	// source-dialect shapes
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates critical issues
	SeverityCritical = severity.SeverityCritical
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 10
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 10
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of checking a standalone document
// against the renderer contract
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Dialect is the dialect detected on the document
	Dialect parser.Dialect
	// Errors contains all validation errors
	Errors []ValidationError
	// Warnings contains all validation warnings
	Warnings []ValidationError
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats parser.DocumentStats
	// Document is the validated document
	Document *parser.Schema
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourcePath is the original source path from the parsed document
	SourcePath string
}

// Validator checks standalone output documents against the contract the
// form renderer relies on: every reference resolves inside the document's
// own $defs table, no unevaluatedProperties at any depth, only allow-listed
// format values, and no closed-properties constraint on an immediate
// oneOf/anyOf member. The generator is expected to produce documents that
// pass; validation exists for documents edited by hand or produced by
// older runs.
type Validator struct {
	// IncludeWarnings determines whether to report leftover source-dialect
	// shapes (unpromoted string enums) alongside hard errors
	IncludeWarnings bool
	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string
	// Logger is the structured logger for validation diagnostics.
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
	}
}

// Validate parses and validates the document at the given file path or URL
func (v *Validator) Validate(docPath string) (*ValidationResult, error) {
	p := parser.New()
	if v.UserAgent != "" {
		p.UserAgent = v.UserAgent
	}
	p.Logger = v.Logger

	parseResult, err := p.Parse(docPath)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to parse document: %w", err)
	}
	return v.ValidateParsed(parseResult)
}

// ValidateBytes parses and validates raw document bytes
func (v *Validator) ValidateBytes(data []byte) (*ValidationResult, error) {
	p := parser.New()
	p.Logger = v.Logger

	parseResult, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("validator: failed to parse document: %w", err)
	}
	return v.ValidateParsed(parseResult)
}

// ValidateParsed validates an already-parsed document.
//
// The document is walked once; every check reports the JSON path of the
// offending fragment. Parse errors carried on the parse result become
// validation errors so callers see one combined report.
func (v *Validator) ValidateParsed(parseResult *parser.ParseResult) (*ValidationResult, error) {
	if parseResult == nil || parseResult.Document == nil {
		return nil, fmt.Errorf("validator: no parsed document to validate")
	}

	result := &ValidationResult{
		Dialect:      parseResult.Dialect,
		Errors:       make([]ValidationError, 0, defaultErrorCapacity),
		Warnings:     make([]ValidationError, 0, defaultWarningCapacity),
		Document:     parseResult.Document,
		SourceFormat: parseResult.SourceFormat,
		SourcePath:   parseResult.SourcePath,
		LoadTime:     parseResult.LoadTime,
		SourceSize:   parseResult.SourceSize,
		Stats:        parseResult.Stats,
	}

	for _, parseErr := range parseResult.Errors {
		v.addError(result, "$", parseErr.Error())
	}

	v.validateDocument(parseResult.Document, result)

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	return result, nil
}

// validateDocument runs the renderer-contract checks over the whole tree.
func (v *Validator) validateDocument(doc *parser.Schema, result *ValidationResult) {
	// Walk errors cannot occur here: the document is non-nil and the
	// handlers never return an invalid action.
	_ = walker.WalkSchema(doc,
		walker.WithParentTracking(),
		walker.WithRefHandler(func(wc *walker.WalkContext, ref *walker.RefInfo) walker.Action {
			v.checkRef(doc, wc, ref, result)
			return walker.Continue
		}),
		walker.WithSchemaHandler(func(wc *walker.WalkContext, schema *parser.Schema) walker.Action {
			v.checkSchema(wc, schema, result)
			return walker.Continue
		}),
	)
}

// checkRef verifies that a reference resolves within the document's own
// $defs table. Standalone documents must be self-contained; a reference
// into the base document's table or to an external resource cannot be
// fetched by the renderer.
func (v *Validator) checkRef(doc *parser.Schema, wc *walker.WalkContext, ref *walker.RefInfo, result *ValidationResult) {
	if ref.DefinitionName == "" {
		v.addError(result, ref.SourcePath,
			fmt.Sprintf("reference %q does not use the #/$defs/<name> form", ref.Ref),
			withValue(ref.Ref))
		return
	}
	if _, ok := doc.Defs[ref.DefinitionName]; !ok {
		v.addError(result, ref.SourcePath,
			fmt.Sprintf("reference %q does not resolve within the document's $defs", ref.Ref),
			withValue(ref.Ref))
	}
}

// checkSchema applies the per-fragment keyword checks.
func (v *Validator) checkSchema(wc *walker.WalkContext, schema *parser.Schema, result *ValidationResult) {
	if schema.UnevaluatedProperties != nil {
		v.addError(result, wc.JSONPath,
			"unevaluatedProperties is unsound under simultaneous branch evaluation",
			withValue(schema.UnevaluatedProperties))
	}

	if schema.Format != "" && !transform.IsStandardFormat(schema.Format) {
		v.addError(result, wc.JSONPath,
			fmt.Sprintf("format %q is not a standard JSON Schema format", schema.Format),
			withValue(schema.Format))
	}

	if closed, ok := schema.AdditionalProperties.(bool); ok && !closed && isChoiceMember(wc, schema) {
		v.addError(result, wc.JSONPath,
			"additionalProperties: false on a choice member rejects sibling branch data")
	}

	if len(schema.Enum) > 0 && len(schema.OneOf) > 0 {
		v.addError(result, wc.JSONPath,
			"fragment declares both enum and oneOf; enum promotion was interrupted")
	}

	if v.IncludeWarnings && len(schema.Enum) > 0 && schema.HasType("string") && len(schema.OneOf) == 0 {
		v.addWarning(result, wc.JSONPath,
			"string enum was not promoted to labeled choices",
			withValue(schema.Enum))
	}
}

// isChoiceMember reports whether the current fragment is an immediate
// member of its parent's oneOf or anyOf array. Identity against the
// parent's member slices distinguishes an immediate member from a fragment
// nested deeper inside one.
func isChoiceMember(wc *walker.WalkContext, schema *parser.Schema) bool {
	parent, ok := wc.ParentSchema()
	if !ok {
		return false
	}
	for _, member := range parent.OneOf {
		if member == schema {
			return true
		}
	}
	for _, member := range parent.AnyOf {
		if member == schema {
			return true
		}
	}
	return false
}

// addError adds a validation error to the result
func (v *Validator) addError(result *ValidationResult, path, message string, opts ...func(*ValidationError)) {
	issue := ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
	}
	for _, opt := range opts {
		opt(&issue)
	}
	result.Errors = append(result.Errors, issue)
}

// addWarning adds a validation warning to the result
func (v *Validator) addWarning(result *ValidationResult, path, message string, opts ...func(*ValidationError)) {
	if !v.IncludeWarnings {
		return
	}
	issue := ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
	}
	for _, opt := range opts {
		opt(&issue)
	}
	result.Warnings = append(result.Warnings, issue)
}

// withValue sets the value for a validation issue
func withValue(value any) func(*ValidationError) {
	return func(e *ValidationError) {
		e.Value = value
	}
}
