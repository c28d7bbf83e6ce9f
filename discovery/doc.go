// Package discovery resolves configured categories against a document's
// definitions table.
//
// A category names its member types indirectly: an explicit item type plus
// name-substring patterns with an exclusion list. Discovery turns that
// description into a concrete, ordered, duplicate-free list of [Entry]
// values, each carrying a display name and description ready for index
// output.
//
//	defs := result.Document.Defs
//	for _, entry := range discovery.Discover(category, defs) {
//	    fmt.Printf("%s\t%s\n", entry.Key, entry.DisplayName)
//	}
//
// The explicit item type always leads the list; pattern matches follow in
// sorted name order so repeated runs over the same document produce
// identical output.
package discovery
