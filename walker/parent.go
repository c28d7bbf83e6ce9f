package walker

import "github.com/formshape/formshape/parser"

// ParentInfo provides information about a parent node in the traversal.
// This enables handlers to access ancestor nodes for context-aware processing.
type ParentInfo struct {
	// Node is the parent node. Always a *parser.Schema in schema documents.
	Node any

	// JSONPath is the JSON path to this parent node
	JSONPath string

	// Parent is the grandparent, enabling ancestor chain traversal.
	// nil for the root-level parent.
	Parent *ParentInfo
}

// ParentSchema returns the nearest ancestor that is a Schema, if any.
// This is useful for detecting when a schema is nested within another schema
// (e.g., a property within an object schema).
func (wc *WalkContext) ParentSchema() (*parser.Schema, bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if s, ok := p.Node.(*parser.Schema); ok {
			return s, true
		}
	}
	return nil, false
}

// Ancestors returns all ancestors from immediate parent to root.
// The first element is the immediate parent, the last is the root-level ancestor.
// Returns nil if parent tracking is not enabled or there are no ancestors.
func (wc *WalkContext) Ancestors() []*ParentInfo {
	var ancestors []*ParentInfo
	for p := wc.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// Depth returns the number of ancestors (nesting depth).
// Returns 0 if at root level or parent tracking is not enabled.
func (wc *WalkContext) Depth() int {
	depth := 0
	for p := wc.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}
