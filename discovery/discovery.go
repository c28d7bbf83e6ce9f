package discovery

import (
	"strings"

	"github.com/formshape/formshape/config"
	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/naming"
	"github.com/formshape/formshape/parser"
)

// Entry represents one discovered type within a category.
type Entry struct {
	// Key is the definition name in the source document
	// (e.g., "HTTPRoute"). Used for extraction and file naming.
	Key string

	// DisplayName is the human-readable name for indexes and titles
	// (e.g., "HTTP Route").
	DisplayName string

	// Description is the definition's own description, or a synthesized
	// one when the definition has none.
	Description string
}

// Discover resolves a category against a definitions table.
//
// The explicit item type comes first when the table contains it; an item
// type absent from the table is silently skipped. The remaining definitions
// follow in sorted name order when their name contains at least one of the
// category's patterns as a substring and is not excluded. No type appears
// twice.
func Discover(category config.Category, defs map[string]*parser.Schema) []Entry {
	var entries []Entry
	included := make(map[string]bool, len(defs))

	if category.ItemType != "" {
		if schema, ok := defs[category.ItemType]; ok {
			entries = append(entries, newEntry(category.ItemType, schema))
			included[category.ItemType] = true
		}
	}

	excluded := make(map[string]bool, len(category.Exclude))
	for _, name := range category.Exclude {
		excluded[name] = true
	}

	for _, name := range maputil.SortedKeys(defs) {
		if included[name] || excluded[name] {
			continue
		}
		if !matchesAny(name, category.TypePatterns) {
			continue
		}
		entries = append(entries, newEntry(name, defs[name]))
		included[name] = true
	}

	return entries
}

func newEntry(name string, schema *parser.Schema) Entry {
	return Entry{
		Key:         name,
		DisplayName: naming.Format(name),
		Description: naming.Describe(name, schema),
	}
}

// matchesAny reports whether the name contains any pattern as a substring.
// Matching is case-sensitive.
func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}
