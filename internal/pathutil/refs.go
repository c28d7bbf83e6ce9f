package pathutil

import "strings"

// Definition reference prefixes. The modern form is "#/$defs/"; the legacy
// form "#/definitions/" appears in documents written against pre-2019-09
// drafts and is accepted on input.
const (
	RefPrefixDefs        = "#/$defs/"
	RefPrefixDefinitions = "#/definitions/"
)

// DefsRef builds "#/$defs/{name}".
func DefsRef(name string) string {
	return RefPrefixDefs + name
}

// RefDefinitionName extracts the definition name from a local definitions
// reference. Returns ("", false) for refs that do not address a top-level
// definition (external refs, nested JSON pointers, empty names).
func RefDefinitionName(ref string) (string, bool) {
	var name string
	switch {
	case strings.HasPrefix(ref, RefPrefixDefs):
		name = ref[len(RefPrefixDefs):]
	case strings.HasPrefix(ref, RefPrefixDefinitions):
		name = ref[len(RefPrefixDefinitions):]
	default:
		return "", false
	}
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}
