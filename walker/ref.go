package walker

import "github.com/formshape/formshape/internal/pathutil"

// RefInfo contains information about a $ref encountered during traversal.
type RefInfo struct {
	// Ref is the $ref value (e.g., "#/$defs/Gateway")
	Ref string

	// SourcePath is the JSON path where the ref was encountered
	SourcePath string

	// DefinitionName is the $defs entry the ref points at, when the ref uses
	// the "#/$defs/<name>" form. Empty for external or non-definition refs.
	DefinitionName string
}

// RefHandler is called when a $ref is encountered during traversal.
// Return Stop to halt traversal, Continue to proceed.
type RefHandler func(wc *WalkContext, ref *RefInfo) Action

// newRefInfo builds a RefInfo for a raw ref value at the given path.
func newRefInfo(ref, sourcePath string) *RefInfo {
	info := &RefInfo{Ref: ref, SourcePath: sourcePath}
	if name, ok := pathutil.RefDefinitionName(ref); ok {
		info.DefinitionName = name
	}
	return info
}
