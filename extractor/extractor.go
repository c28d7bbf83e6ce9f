package extractor

import (
	"time"

	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/schemaerrors"
	"github.com/formshape/formshape/transform"
)

// Extractor derives standalone per-type documents from a base document.
// The zero value is usable; New applies the usual defaults.
type Extractor struct {
	// Logger receives warnings for missing types and debug detail.
	// Defaults to a no-op logger.
	Logger parser.Logger

	// Dialect selects the $schema identifier stamped on output documents.
	// An unknown dialect falls back to Draft 2020-12.
	Dialect parser.Dialect

	// Overrides maps definition names to replacement fragments. An
	// overridden fragment is emitted verbatim in place of the extracted
	// copy and skips enhancement; normalization and sanitization still
	// apply.
	Overrides map[string]*parser.Schema

	// FieldDescriptions is the well-known field description table used by
	// the enhancement pass.
	FieldDescriptions map[string]string
}

// New creates an Extractor with default settings.
func New() *Extractor {
	return &Extractor{
		Logger:            parser.NopLogger{},
		Dialect:           parser.DialectDraft202012,
		FieldDescriptions: transform.DefaultFieldDescriptions,
	}
}

// ExtractResult contains one extracted standalone document and what was done
// to produce it.
type ExtractResult struct {
	// TypeName is the definition name the document was extracted for.
	TypeName string

	// Document is the standalone schema: the type's fragment at top level,
	// a $schema identifier, and every transitively referenced definition
	// embedded under $defs.
	Document *parser.Schema

	// Closure lists the embedded definition names in sorted order.
	Closure []string

	// Overridden lists the names whose fragments came from the override
	// table, in sorted order.
	Overridden []string

	// Changes records every transformation applied, in application order.
	Changes *transform.Result

	// ExtractTime is the time taken to produce the document.
	ExtractTime time.Duration
}

// Extract derives the standalone document for one named type.
//
// The named definition is deep-copied together with its reference closure,
// so the base document is never mutated and sibling extractions never
// observe each other's edits. Overrides replace their fragments wholesale
// before enhancement; enhancement fills titles and descriptions on
// everything not overridden; the assembled document is then normalized and
// sanitized as a whole so embedded definitions are rewritten consistently
// with the root.
//
// A type name absent from the definitions table returns a
// [schemaerrors.TypeNotFoundError]; callers running many types treat it as
// a skip signal, not a fatal failure.
func (x *Extractor) Extract(doc *parser.Schema, typeName string) (*ExtractResult, error) {
	start := time.Now()

	var defs map[string]*parser.Schema
	if doc != nil {
		defs = doc.Defs
	}
	def := defs[typeName]
	if def == nil {
		x.logger().Warn("type not found in definitions table",
			"type", typeName, "definitions", len(defs))
		return nil, &schemaerrors.TypeNotFoundError{TypeName: typeName, Available: len(defs)}
	}

	// Closure against the original table, before any override applies.
	closure := Closure(def, defs, typeName)

	root := def.DeepCopy()
	members := make(map[string]*parser.Schema, len(closure))
	for _, name := range closure {
		if source := defs[name]; source != nil {
			members[name] = source.DeepCopy()
		}
	}

	overridden := make(map[string]bool)
	if override := x.overrideCopy(typeName); override != nil {
		root = override
		overridden[typeName] = true
	}
	for _, name := range closure {
		if override := x.overrideCopy(name); override != nil {
			members[name] = override
			overridden[name] = true
		}
	}

	changes := &transform.Result{}
	if !overridden[typeName] {
		changes.Merge(transform.Enhance(root, typeName, defs, x.FieldDescriptions))
	}
	for _, name := range maputil.SortedKeys(members) {
		if overridden[name] {
			continue
		}
		changes.Merge(transform.Enhance(members[name], name, defs, x.FieldDescriptions))
	}

	root.Dialect = x.dialectURI()
	if len(members) > 0 {
		root.Defs = members
	} else {
		root.Defs = nil
	}

	changes.Merge(transform.Normalize(root))
	changes.Merge(transform.Sanitize(root))

	x.logger().Debug("extracted type",
		"type", typeName,
		"closure", len(closure),
		"overridden", len(overridden),
		"changes", changes.Count())

	return &ExtractResult{
		TypeName:    typeName,
		Document:    root,
		Closure:     closure,
		Overridden:  maputil.SortedKeys(overridden),
		Changes:     changes,
		ExtractTime: time.Since(start),
	}, nil
}

// overrideCopy returns a deep copy of the override for name, or nil when
// none is configured. Copying keeps later passes from mutating the
// caller-owned override table.
func (x *Extractor) overrideCopy(name string) *parser.Schema {
	if override, ok := x.Overrides[name]; ok && override != nil {
		return override.DeepCopy()
	}
	return nil
}

func (x *Extractor) logger() parser.Logger {
	if x.Logger != nil {
		return x.Logger
	}
	return parser.NopLogger{}
}

func (x *Extractor) dialectURI() string {
	if uri := x.Dialect.URI(); uri != "" {
		return uri
	}
	return parser.DefaultDialectURI
}
