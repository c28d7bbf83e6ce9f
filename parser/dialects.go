package parser

import "strings"

// Dialect represents each canonical JSON Schema dialect that may be named by
// a document's $schema keyword. Dialect URIs are listed at:
// https://json-schema.org/specification-links
type Dialect int

const (
	// DialectUnknown represents an unknown or absent dialect
	DialectUnknown Dialect = iota
	// DialectDraft4 JSON Schema Draft 4
	DialectDraft4
	// DialectDraft6 JSON Schema Draft 6
	DialectDraft6
	// DialectDraft7 JSON Schema Draft 7
	DialectDraft7
	// DialectDraft201909 JSON Schema Draft 2019-09
	DialectDraft201909
	// DialectDraft202012 JSON Schema Draft 2020-12
	DialectDraft202012
)

// DefaultDialectURI is the $schema value stamped onto generated documents
// when the source document does not declare a dialect of its own.
const DefaultDialectURI = "https://json-schema.org/draft/2020-12/schema"

var (
	dialectToString = map[Dialect]string{
		DialectDraft4:      "draft-04",
		DialectDraft6:      "draft-06",
		DialectDraft7:      "draft-07",
		DialectDraft201909: "2019-09",
		DialectDraft202012: "2020-12",
	}

	dialectToURI = map[Dialect]string{
		DialectDraft4:      "http://json-schema.org/draft-04/schema#",
		DialectDraft6:      "http://json-schema.org/draft-06/schema#",
		DialectDraft7:      "http://json-schema.org/draft-07/schema#",
		DialectDraft201909: "https://json-schema.org/draft/2019-09/schema",
		DialectDraft202012: "https://json-schema.org/draft/2020-12/schema",
	}

	// uriPathToDialect maps normalized URI paths (no scheme, no trailing
	// fragment) to dialects for lookup in ParseDialect
	uriPathToDialect = func() map[string]Dialect {
		m := make(map[string]Dialect, len(dialectToURI))
		for d, uri := range dialectToURI {
			m[normalizeDialectURI(uri)] = d
		}
		return m
	}()
)

func (d Dialect) String() string {
	if s, ok := dialectToString[d]; ok {
		return s
	}
	return "unknown"
}

// URI returns the canonical $schema value for this dialect, or "" for
// DialectUnknown.
func (d Dialect) URI() string {
	return dialectToURI[d]
}

// IsValid returns true if this is a known dialect
func (d Dialect) IsValid() bool {
	_, ok := dialectToString[d]
	return ok
}

// ParseDialect attempts to map a $schema URI onto a known dialect, and
// returns false if the URI names no dialect this package knows. Matching
// ignores the URI scheme and any trailing "#" fragment, so the http and
// https spellings of the same dialect are treated alike.
func ParseDialect(uri string) (Dialect, bool) {
	if uri == "" {
		return DialectUnknown, false
	}
	d, ok := uriPathToDialect[normalizeDialectURI(uri)]
	return d, ok
}

// normalizeDialectURI strips the scheme, a trailing "#", and a trailing "/"
// from a $schema URI so equivalent spellings compare equal.
func normalizeDialectURI(uri string) string {
	uri = strings.TrimPrefix(uri, "https://")
	uri = strings.TrimPrefix(uri, "http://")
	uri = strings.TrimSuffix(uri, "#")
	uri = strings.TrimSuffix(uri, "/")
	return uri
}
