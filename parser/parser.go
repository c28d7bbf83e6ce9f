package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/formshape/formshape"
	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/internal/pathutil"
	"github.com/formshape/formshape/schemaerrors"
)

// Parser handles JSON Schema document parsing
type Parser struct {
	// ValidateStructure determines whether to perform basic structure validation
	ValidateStructure bool
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "formshape" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	// When set, InsecureSkipVerify is ignored (configure TLS on your client's transport).
	HTTPClient *http.Client
	// InsecureSkipVerify disables TLS certificate verification for URL fetches
	// Use with caution - only enable for testing or internal servers with self-signed certs
	InsecureSkipVerify bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
		UserAgent:         formshape.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source schema document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed schema document and metadata.
//
// # Immutability
//
// While Go does not enforce immutability, callers should treat ParseResult as
// read-only after parsing. The extractor deep copies every fragment it lifts
// out of the document, but it reads the definitions table in place; modifying
// the returned document concurrently may lead to unexpected behavior.
//
// For modification use cases, create a deep copy first using the Copy method.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Dialect is the detected JSON Schema dialect. Documents that declare no
	// $schema keyword are assumed to be Draft 2020-12.
	Dialect Dialect
	// DialectURI is the raw $schema value, or "" when the document declares none
	DialectURI string
	// Data contains the raw parsed data as a map
	Data map[string]any
	// Document contains the parsed schema document
	Document *Schema
	// Errors contains any parsing or validation errors encountered
	Errors []error
	// Warnings contains non-fatal issues such as unrecognized dialects
	Warnings []string
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Definitions returns the document's $defs table, or nil when the document
// has none.
func (pr *ParseResult) Definitions() map[string]*Schema {
	if pr == nil || pr.Document == nil {
		return nil
	}
	return pr.Document.Defs
}

// Definition returns the named entry of the $defs table and whether it exists.
func (pr *ParseResult) Definition(name string) (*Schema, bool) {
	defs := pr.Definitions()
	if defs == nil {
		return nil, false
	}
	s, ok := defs[name]
	return s, ok
}

// Copy creates a deep copy of the ParseResult, including the document tree
// and the raw data map. This is useful when you need to modify a parsed
// document without affecting the original.
func (pr *ParseResult) Copy() *ParseResult {
	if pr == nil {
		return nil
	}

	result := &ParseResult{
		SourcePath:   pr.SourcePath,
		SourceFormat: pr.SourceFormat,
		Dialect:      pr.Dialect,
		DialectURI:   pr.DialectURI,
		LoadTime:     pr.LoadTime,
		SourceSize:   pr.SourceSize,
		Stats:        pr.Stats, // DocumentStats is a value type, copied by value
	}

	result.Document = pr.Document.DeepCopy()

	if pr.Data != nil {
		result.Data = deepCopyExtras(pr.Data)
	}

	if pr.Errors != nil {
		result.Errors = make([]error, len(pr.Errors))
		copy(result.Errors, pr.Errors)
	}

	if pr.Warnings != nil {
		result.Warnings = make([]string, len(pr.Warnings))
		copy(result.Warnings, pr.Warnings)
	}

	return result
}

// Parse parses a JSON Schema document from a file or URL
// For URLs (http:// or https://), the content is fetched and parsed
// For local files, the file is read and parsed
func (p *Parser) Parse(schemaPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat
	var loadStart time.Time
	var loadTime time.Duration

	// Check if schemaPath is a URL
	if isURL(schemaPath) {
		var contentType string
		loadStart = time.Now()
		data, contentType, err = p.fetchURL(schemaPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, err
		}

		// Try to detect format from URL path and Content-Type header
		format = detectFormatFromURL(schemaPath, contentType)
	} else {
		loadStart = time.Now()
		data, err = os.ReadFile(schemaPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}

		// Detect format from file extension
		format = detectFormatFromPath(schemaPath)
	}

	res, err := p.parseBytes(data)
	if err != nil {
		// Attach the source path to structured parse errors
		var perr *schemaerrors.ParseError
		if errors.As(err, &perr) && perr.Path == "" {
			perr.Path = schemaPath
		}
		return nil, err
	}

	res.SourcePath = schemaPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))

	// If format was detected from path/URL, use it; otherwise keep the
	// content-based detection from parseBytes
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}

	return res, nil
}

// ParseReader parses a JSON Schema document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	// Update timing info
	res.LoadTime = loadTime
	// Update SourcePath to match detected format
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses a JSON Schema document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	// Set size (no load time since data is already in memory)
	res.SourceSize = int64(len(data))
	// Update SourcePath to match detected format
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	return res, nil
}

// parseBytes parses schema document bytes into a ParseResult
func (p *Parser) parseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	// Detect format early for potential JSON fast-path
	format := detectFormatFromContent(data)
	result.SourceFormat = format

	var rawData map[string]any
	doc := new(Schema)

	// JSON fast-path: decode with encoding/json directly instead of going
	// through the YAML machinery. Machine-generated schema documents are
	// almost always JSON, so this is the hot path.
	if format == SourceFormatJSON {
		if err := json.Unmarshal(data, &rawData); err != nil {
			return nil, jsonParseError(data, err)
		}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, jsonParseError(data, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &rawData); err != nil {
			return nil, &schemaerrors.ParseError{
				Message: "failed to parse YAML",
				Cause:   err,
			}
		}
		if rawData == nil {
			return nil, &schemaerrors.ParseError{Message: "document is empty"}
		}
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, &schemaerrors.ParseError{
				Message: "failed to parse YAML",
				Cause:   err,
			}
		}
	}

	result.Data = rawData
	result.Document = doc

	// Detect dialect from the $schema keyword
	result.DialectURI = doc.Dialect
	if doc.Dialect == "" {
		result.Dialect = DialectDraft202012
		p.log().Debug("no $schema declared, assuming Draft 2020-12")
	} else if d, ok := ParseDialect(doc.Dialect); ok {
		result.Dialect = d
	} else {
		result.Dialect = DialectUnknown
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("unrecognized $schema dialect %q", doc.Dialect))
	}

	if len(doc.Defs) == 0 {
		result.Warnings = append(result.Warnings, "document has no $defs table")
	}

	// Validate structure if enabled
	if p.ValidateStructure {
		result.Errors = append(result.Errors, p.validateStructure(result)...)
	}

	// Calculate document statistics
	result.Stats = GetDocumentStats(doc)

	p.log().Debug("parsed schema document",
		"format", string(result.SourceFormat),
		"dialect", result.Dialect.String(),
		"definitions", result.Stats.DefinitionCount,
		"schemas", result.Stats.SchemaCount)

	return result, nil
}

// validateStructure performs basic structural checks on the parsed document.
// Failures land in ParseResult.Errors rather than aborting the parse, so
// callers can decide how strict to be.
func (p *Parser) validateStructure(result *ParseResult) []error {
	doc := result.Document
	if doc == nil {
		return []error{fmt.Errorf("parser: document is empty")}
	}

	var errs []error

	// A root $ref must point at an entry of this document's $defs table
	if doc.Ref != "" {
		name, ok := pathutil.RefDefinitionName(doc.Ref)
		if !ok {
			errs = append(errs, fmt.Errorf("parser: root $ref %q is not a local definition reference", doc.Ref))
		} else if _, exists := doc.Defs[name]; !exists {
			errs = append(errs, fmt.Errorf("parser: root $ref %q does not resolve to a definition", doc.Ref))
		}
	}

	// Null $defs entries have no usable schema
	for _, name := range maputil.SortedKeys(doc.Defs) {
		if doc.Defs[name] == nil {
			errs = append(errs, fmt.Errorf("parser: definition %q is null", name))
		}
	}

	return errs
}

// jsonParseError wraps an encoding/json error into a ParseError, recovering
// line and column information from the error's byte offset when available.
func jsonParseError(data []byte, err error) error {
	perr := &schemaerrors.ParseError{
		Message: "failed to parse JSON",
		Cause:   err,
	}

	var offset int64 = -1
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}

	if offset >= 0 && offset <= int64(len(data)) {
		perr.Line, perr.Column = lineColFromOffset(data, offset)
	}

	return perr
}

// lineColFromOffset converts a byte offset into 1-based line and column numbers.
func lineColFromOffset(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
