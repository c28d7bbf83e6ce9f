// Package pathutil provides efficient path building utilities for schema
// tree traversal.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// paths incrementally without allocating intermediate strings. This is
// particularly useful in recursive traversal where paths are built on each
// recursive call but only used when recording a change or reporting an error.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("properties")
//	path.Push(propName)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
//	// Only call String() when needed (e.g., recording a change)
//	change.Path = path.String()
//
// Array indices are supported via [PathBuilder.PushIndex]:
//
//	path.Push("oneOf")
//	path.PushIndex(0)  // produces "oneOf[0]"
//
// # Reference Helpers
//
// The package also provides helpers for definition references:
//
//	ref := pathutil.DefsRef("HTTPRoute")          // "#/$defs/HTTPRoute"
//	name, ok := pathutil.RefDefinitionName(ref)   // "HTTPRoute", true
//
// RefDefinitionName recognizes both the modern "#/$defs/" prefix and the
// legacy "#/definitions/" prefix used by pre-2019-09 drafts.
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for security.
// It rejects directory traversal ("..") and symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // path traversal or symlink detected
//	}
package pathutil
