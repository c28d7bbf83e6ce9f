package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/formshape/formshape/parser"
)

// titleCaser handles leading-character capitalization with proper Unicode
// title mapping, which unicode.ToUpper alone does not provide.
var titleCaser = cases.Title(language.English, cases.NoLower)

// Format converts an identifier-style name into a space-separated label.
// Word boundaries come from case transitions: a capital that follows a
// lowercase letter starts a new word, and the last capital of a capital run
// followed by a lowercase letter starts a new word, so acronym prefixes
// split cleanly. The first character of the result is capitalized.
//
// Examples:
//
//	"TCPRoute"   -> "TCP Route"
//	"httpsProxy" -> "Https Proxy"
//	"IPAddress"  -> "IP Address"
//	""           -> ""
func Format(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var result strings.Builder
	result.Grow(len(name) + 4)

	for i, r := range runes {
		if i == 0 {
			result.WriteString(titleCaser.String(string(r)))
			continue
		}
		if unicode.IsUpper(r) {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	return result.String()
}

// suffixRule appends a contextual sentence to a synthesized description when
// the type name contains the token.
type suffixRule struct {
	token  string
	suffix string
}

// descriptionSuffixes is consulted in order; every matching rule applies,
// not just the first.
var descriptionSuffixes = []suffixRule{
	{"policy", " Defines policy behavior applied to matching traffic."},
	{"backend", " Configures how connections reach upstream services."},
	{"route", " Controls how requests are matched and forwarded."},
	{"listener", " Configures how incoming connections are accepted."},
}

// Describe returns a human description for the named type. If the schema
// already declares a non-empty description it is returned unchanged.
// Otherwise a description is synthesized from the formatted name plus a
// contextual suffix for each naming pattern the name matches.
//
// Examples:
//
//	Describe("LogLevel", &parser.Schema{})
//	    // "Log Level configuration."
//	Describe("RetryPolicy", &parser.Schema{})
//	    // "Retry Policy configuration. Defines policy behavior applied to matching traffic."
func Describe(name string, schema *parser.Schema) string {
	if schema != nil && schema.Description != "" {
		return schema.Description
	}

	var b strings.Builder
	b.WriteString(Format(name))
	b.WriteString(" configuration.")

	lower := strings.ToLower(name)
	for _, rule := range descriptionSuffixes {
		if strings.Contains(lower, rule.token) {
			b.WriteString(rule.suffix)
		}
	}

	return b.String()
}
