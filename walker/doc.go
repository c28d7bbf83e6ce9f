// Package walker provides a traversal API for JSON Schema documents.
//
// The walker enables single-pass traversal of a schema document and every
// schema nested within it, allowing handlers to receive and optionally mutate
// nodes. This is useful for analysis, transformation, and collection tasks
// that need to inspect multiple parts of a document in a consistent way.
//
// # Quick Start
//
// Walk a document and print the path of every schema:
//
//	result, _ := parser.ParseWithOptions(parser.WithFilePath("config-schema.json"))
//
//	err := walker.Walk(result,
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, s *parser.Schema) walker.Action {
//	        fmt.Println(wc.JSONPath)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// Example using SkipChildren to avoid deprecated definitions:
//
//	walker.Walk(result,
//	    walker.WithDefinitionHandler(func(wc *walker.WalkContext, name string, s *parser.Schema) walker.Action {
//	        if s.Deprecated {
//	            return walker.SkipChildren
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Handler Types
//
//   - [SchemaHandler]: every schema node, including nested schemas
//   - [DefinitionHandler]: $defs entries, called before the entry is walked
//   - [SchemaPostHandler]: called after a schema's children are processed
//   - [RefHandler]: $ref values encountered during traversal
//   - [SchemaSkippedHandler]: schemas skipped by depth limit or cycle detection
//
// Post handlers are not called if the pre-visit handler returned SkipChildren
// or Stop.
//
// # Parent Tracking
//
// Enable parent tracking to access ancestor nodes during traversal:
//
//	walker.Walk(result,
//	    walker.WithParentTracking(),
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, s *parser.Schema) walker.Action {
//	        if parent, ok := wc.ParentSchema(); ok {
//	            // Access the containing schema
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// Helper methods: [WalkContext.ParentSchema], [WalkContext.Ancestors],
// [WalkContext.Depth].
//
// # Reference Tracking
//
// Use [WithRefHandler] to receive callbacks when $ref values are encountered:
//
//	walker.Walk(result,
//	    walker.WithRefHandler(func(wc *walker.WalkContext, ref *walker.RefInfo) walker.Action {
//	        fmt.Printf("Found ref: %s at %s\n", ref.Ref, ref.SourcePath)
//	        return walker.Continue
//	    }),
//	)
//
// When a ref uses the "#/$defs/<name>" form, [RefInfo.DefinitionName] carries
// the target definition's name.
//
// # Mutation Support
//
// Handlers receive pointers to the actual nodes, so mutations are applied directly:
//
//	walker.Walk(result,
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, schema *parser.Schema) walker.Action {
//	        schema.Deprecated = false
//	        return walker.Continue
//	    }),
//	)
//
// # WalkContext
//
// Every handler receives a [WalkContext] as its first parameter, providing
// contextual information about the current node:
//
//   - JSONPath: full JSON path to the node (always populated)
//   - DefinitionName: enclosing $defs entry name when in definition scope
//   - Name: map key for named nodes (definitions, properties)
//   - InDefinitions: true when within a $defs table
//
// Example JSON paths:
//
//	$                                          // document root
//	$.$defs['Gateway']                         // definition entry
//	$.$defs['Gateway'].properties['listeners'] // property schema
//	$.$defs['TLSConfig'].oneOf[1]              // composition member
//
// WalkContext values are pooled for reuse; copy any fields you need to keep
// rather than retaining the pointer.
//
// # Context Propagation
//
// Pass a [context.Context] for cancellation and timeout support:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	walker.Walk(result,
//	    walker.WithUserContext(ctx),
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, schema *parser.Schema) walker.Action {
//	        if wc.Context().Err() != nil {
//	            return walker.Stop
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// # Performance Considerations
//
// The walker uses the Parse-Once pattern. Always prefer passing a pre-parsed
// [parser.ParseResult] rather than re-parsing:
//
//	// Good: parse once, walk multiple times
//	result, _ := parser.ParseWithOptions(parser.WithFilePath("config-schema.json"))
//	walker.Walk(result, handlers1...)
//	walker.Walk(result, handlers2...)
//
// # Built-in Collectors
//
// For common collection patterns, the walker provides pre-built helpers that
// reduce boilerplate:
//
//   - [CollectSchemas]: returns a [SchemaCollector] with all schemas indexed by path and name
//   - [CollectRefs]: returns every [RefInfo] in the document in traversal order
//   - [CollectSchemaRefs]: returns every [RefInfo] within a single schema fragment
//
// Example:
//
//	schemas, err := walker.CollectSchemas(result)
//	for name, info := range schemas.ByName {
//	    fmt.Printf("%s: %d properties\n", name, len(info.Schema.Properties))
//	}
//
// # Schema Cycle Detection
//
// The walker automatically detects circular schema references and avoids
// infinite loops. Use [WithMaxSchemaDepth] to limit recursion depth for
// deeply nested schemas (default: 100).
//
// # Related Packages
//
//   - [github.com/formshape/formshape/parser] - Parse schema documents before walking
//   - [github.com/formshape/formshape/extractor] - Extract standalone per-type schemas
//   - [github.com/formshape/formshape/discovery] - Resolve category type lists
package walker
