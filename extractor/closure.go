package extractor

import (
	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/walker"
)

// Closure computes the set of definition names transitively reachable from
// the fragment via $ref, in sorted order.
//
// Starting from the fragment's own references, it follows
// definition-to-definition references so that indirectly required types are
// embedded too. Only references into the definitions table count; external
// references stay opaque. The visited-name set doubles as the cycle guard,
// so mutually and self-referential definitions terminate without duplicate
// work.
//
// The exclude name is never part of the result and is never walked again
// when re-encountered; callers pass the root type's own name so a cycle back
// to the root does not drag the root into its own embedded definitions.
func Closure(fragment *parser.Schema, defs map[string]*parser.Schema, exclude string) []string {
	if fragment == nil || len(defs) == 0 {
		return nil
	}

	visited := make(map[string]bool)
	if exclude != "" {
		visited[exclude] = true
	}

	queue := enqueueRefs(fragment, defs, visited, nil)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		queue = enqueueRefs(defs[name], defs, visited, queue)
	}

	delete(visited, exclude)
	return maputil.SortedKeys(visited)
}

// enqueueRefs marks every definitions-table name referenced by the fragment
// as visited and returns the queue extended with the newly seen names.
func enqueueRefs(fragment *parser.Schema, defs map[string]*parser.Schema, visited map[string]bool, queue []string) []string {
	if fragment == nil {
		return queue
	}

	refs, err := walker.CollectSchemaRefs(fragment)
	if err != nil {
		return queue
	}
	for _, ref := range refs {
		name := ref.DefinitionName
		if name == "" || visited[name] {
			continue
		}
		if _, exists := defs[name]; !exists {
			continue
		}
		visited[name] = true
		queue = append(queue, name)
	}
	return queue
}
