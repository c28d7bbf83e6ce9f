package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/formshape/formshape/config"
	"github.com/formshape/formshape/discovery"
	"github.com/formshape/formshape/extractor"
	"github.com/formshape/formshape/internal/issues"
	"github.com/formshape/formshape/internal/severity"
	"github.com/formshape/formshape/naming"
	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/schemaerrors"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates types or categories that could not be fully processed
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates failures that prevent generation
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated output file
type GeneratedFile struct {
	// Name is the file name within the category directory
	// (e.g., "Gateway.json", "index.json")
	Name string
	// Category is the category key; outputs are grouped one directory
	// per category
	Category string
	// Content is the rendered JSON document
	Content []byte
}

// CategoryResult summarizes the outputs produced for one category
type CategoryResult struct {
	// Key is the category key from configuration
	Key string
	// Name is the category display name
	Name string
	// Description is the category description from configuration
	Description string
	// Types lists the successfully extracted types, in output order
	Types []discovery.Entry
	// Files lists the file names produced for this category,
	// index file included
	Files []string
	// ChangeCount is the total number of transformation changes recorded
	// across the category's extractions
	ChangeCount int
}

// GenerateResult contains the results of generating renderer-ready schema
// documents from a parsed base document
type GenerateResult struct {
	// Files contains all generated files across all categories
	Files []GeneratedFile
	// Categories contains one entry per configured category, in order
	Categories []CategoryResult
	// SourceFormat is the format of the source document (JSON or YAML)
	SourceFormat parser.SourceFormat
	// Dialect is the dialect identifier stamped into every output document
	Dialect parser.Dialect
	// Issues contains all generation issues grouped by severity
	Issues []GenerateIssue
	// TypeCount is the total number of types extracted across categories
	TypeCount int
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of error issues
	ErrorCount int
	// Success is true if generation completed without error issues
	Success bool
	// StaleRemoved lists previously generated files deleted during
	// stale-output reclamation; populated by WriteFiles
	StaleRemoved []string
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to generate documents
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the source document
	Stats parser.DocumentStats
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given category and name,
// or nil if not found
func (r *GenerateResult) GetFile(category, name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Category == category && r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Category returns the category result with the given key, or nil if
// not found
func (r *GenerateResult) Category(key string) *CategoryResult {
	for i := range r.Categories {
		if r.Categories[i].Key == key {
			return &r.Categories[i]
		}
	}
	return nil
}

// Generator drives the transformation pipeline: for each configured
// category it discovers types, extracts one standalone document per type,
// and renders the documents plus a per-category index
type Generator struct {
	// Categories lists the category descriptors to process, in order
	Categories []config.Category

	// Overrides maps definition names to replacement fragments applied
	// during extraction
	Overrides map[string]*parser.Schema

	// FieldDescriptions is the well-known field description table used by
	// the enhancement pass
	// If nil, defaults to transform.DefaultFieldDescriptions
	FieldDescriptions map[string]string

	// Dialect selects the $schema identifier stamped on output documents
	// DialectUnknown derives the dialect from the parsed document
	Dialect parser.Dialect

	// Indent is the indentation unit for rendered JSON documents
	// Default: two spaces
	Indent string

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string

	// Logger is the structured logger for progress and warnings
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Indent:      defaultIndent,
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// FromConfig creates a Generator from a loaded configuration document.
// The generator takes the configuration's categories and overrides as-is
// and merges its field descriptions over the built-in table.
func FromConfig(cfg *config.Config) *Generator {
	g := New()
	if cfg == nil {
		return g
	}
	g.Categories = cfg.Categories
	g.Overrides = cfg.Overrides
	g.FieldDescriptions = cfg.FieldTable()
	return g
}

// defaultIndent is the indentation unit used when none is configured.
const defaultIndent = "  "

// indexFileName is the per-category index written alongside the type
// documents.
const indexFileName = "index.json"

// Generate generates documents from a schema file or URL
func (g *Generator) Generate(schemaPath string) (*GenerateResult, error) {
	p := parser.New()
	if g.UserAgent != "" {
		p.UserAgent = g.UserAgent
	}
	p.Logger = g.Logger

	parseResult, err := p.Parse(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse schema document: %w", err)
	}

	if len(parseResult.Errors) > 0 {
		return nil, fmt.Errorf("generator: source document has %d parse error(s), cannot generate", len(parseResult.Errors))
	}

	return g.GenerateParsed(parseResult)
}

// GenerateBytes generates documents from raw schema document bytes
func (g *Generator) GenerateBytes(data []byte) (*GenerateResult, error) {
	p := parser.New()
	p.Logger = g.Logger

	parseResult, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse schema document: %w", err)
	}

	if len(parseResult.Errors) > 0 {
		return nil, fmt.Errorf("generator: source document has %d parse error(s), cannot generate", len(parseResult.Errors))
	}

	return g.GenerateParsed(parseResult)
}

// GenerateParsed generates documents from an already-parsed base document.
//
// Categories are processed in configured order, and types within a
// category in discovery order. A discovered type missing from the
// definitions table is skipped with a warning issue; any other extraction
// or rendering failure aborts. The returned result holds every rendered
// file in memory; call WriteFiles to persist them.
func (g *Generator) GenerateParsed(parseResult *parser.ParseResult) (*GenerateResult, error) {
	startTime := time.Now()

	if parseResult == nil || parseResult.Document == nil {
		return nil, fmt.Errorf("generator: no parsed document to generate from")
	}
	if len(g.Categories) == 0 {
		return nil, fmt.Errorf("generator: no categories configured")
	}

	result := &GenerateResult{
		Files:        make([]GeneratedFile, 0),
		Categories:   make([]CategoryResult, 0, len(g.Categories)),
		SourceFormat: parseResult.SourceFormat,
		Dialect:      g.resolveDialect(parseResult),
		Issues:       make([]GenerateIssue, 0),
		LoadTime:     parseResult.LoadTime,
		SourceSize:   parseResult.SourceSize,
		Stats:        parseResult.Stats,
	}

	x := &extractor.Extractor{
		Logger:            g.logger(),
		Dialect:           result.Dialect,
		Overrides:         g.Overrides,
		FieldDescriptions: g.FieldDescriptions,
	}

	defs := parseResult.Definitions()
	for _, category := range g.Categories {
		if err := g.generateCategory(category, parseResult.Document, defs, x, result); err != nil {
			return nil, err
		}
	}

	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.ErrorCount == 0

	if g.StrictMode && (result.ErrorCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("generator: generation failed in strict mode: %d error(s), %d warning(s)",
			result.ErrorCount, result.WarningCount)
	}

	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// generateCategory discovers, extracts, and renders one category's types
// plus its index, appending files and issues to the result.
func (g *Generator) generateCategory(category config.Category, doc *parser.Schema, defs map[string]*parser.Schema, x *extractor.Extractor, result *GenerateResult) error {
	cr := CategoryResult{
		Key:         category.Key,
		Name:        category.Name,
		Description: category.Description,
	}
	if cr.Name == "" {
		cr.Name = naming.Format(category.Key)
	}

	entries := discovery.Discover(category, defs)
	if len(entries) == 0 {
		result.Issues = append(result.Issues, GenerateIssue{
			Category: category.Key,
			Message:  "category matched no definitions",
			Severity: SeverityInfo,
		})
	}

	for _, entry := range entries {
		extracted, err := x.Extract(doc, entry.Key)
		if err != nil {
			if errors.Is(err, schemaerrors.ErrTypeNotFound) {
				result.Issues = append(result.Issues, GenerateIssue{
					Category: category.Key,
					TypeName: entry.Key,
					Message:  "type not found in definitions table, skipped",
					Severity: SeverityWarning,
				})
				continue
			}
			return fmt.Errorf("generator: failed to extract %s/%s: %w", category.Key, entry.Key, err)
		}

		// The discovery entry's display name and description win over
		// whatever enhancement set on the root.
		extracted.Document.Title = entry.DisplayName
		extracted.Document.Description = entry.Description

		content, err := renderDocument(extracted.Document, g.indent())
		if err != nil {
			return fmt.Errorf("generator: failed to render %s/%s: %w", category.Key, entry.Key, err)
		}

		fileName := entry.Key + ".json"
		result.Files = append(result.Files, GeneratedFile{
			Name:     fileName,
			Category: category.Key,
			Content:  content,
		})
		cr.Types = append(cr.Types, entry)
		cr.Files = append(cr.Files, fileName)
		cr.ChangeCount += extracted.Changes.Count()
		result.TypeCount++
	}

	index, err := renderIndex(cr, g.indent())
	if err != nil {
		return fmt.Errorf("generator: failed to render index for %s: %w", category.Key, err)
	}
	result.Files = append(result.Files, GeneratedFile{
		Name:     indexFileName,
		Category: category.Key,
		Content:  index,
	})
	cr.Files = append(cr.Files, indexFileName)

	result.Categories = append(result.Categories, cr)

	g.logger().Debug("generated category",
		"category", category.Key,
		"types", len(cr.Types),
		"changes", cr.ChangeCount)
	return nil
}

// resolveDialect picks the output dialect: the configured one when set,
// otherwise the dialect detected on the source document.
func (g *Generator) resolveDialect(parseResult *parser.ParseResult) parser.Dialect {
	if g.Dialect != parser.DialectUnknown {
		return g.Dialect
	}
	if parseResult.Dialect != parser.DialectUnknown {
		return parseResult.Dialect
	}
	return parser.DialectDraft202012
}

func (g *Generator) indent() string {
	if g.Indent != "" {
		return g.Indent
	}
	return defaultIndent
}

func (g *Generator) logger() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError, SeverityCritical:
			result.ErrorCount++
		}
	}
}
