package transform

// standardFormats is the allow-list of format values with portable meaning
// to schema-driven form renderers. Upstream code generation annotates numeric
// width types with format tags like "uint16" or "int32"; those carry no
// rendering semantics (the numeric bound keywords are the hint of record)
// and are removed by the sanitizer.
var standardFormats = map[string]bool{
	"date":                  true,
	"time":                  true,
	"date-time":             true,
	"duration":              true,
	"email":                 true,
	"idn-email":             true,
	"hostname":              true,
	"idn-hostname":          true,
	"ipv4":                  true,
	"ipv6":                  true,
	"uri":                   true,
	"uri-reference":         true,
	"uri-template":          true,
	"iri":                   true,
	"iri-reference":         true,
	"uuid":                  true,
	"json-pointer":          true,
	"relative-json-pointer": true,
	"regex":                 true,
}

// IsStandardFormat reports whether a format value belongs to the fixed
// allow-list of standard JSON Schema formats.
func IsStandardFormat(format string) bool {
	return standardFormats[format]
}
