package walker

import (
	"context"
	"fmt"

	"github.com/formshape/formshape/parser"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// SchemaHandler is called for each schema node, including nested schemas.
type SchemaHandler func(wc *WalkContext, schema *parser.Schema) Action

// SchemaPostHandler is called for a schema node after all of its children
// have been walked. It is not called when the pre-visit handler returned
// SkipChildren or Stop.
type SchemaPostHandler func(wc *WalkContext, schema *parser.Schema)

// DefinitionHandler is called for each entry in a $defs table before the
// entry's schema is walked. Returning SkipChildren skips the entry's schema
// entirely, including its pre-visit handler.
type DefinitionHandler func(wc *WalkContext, name string, schema *parser.Schema) Action

// SchemaSkippedHandler is called when a schema is skipped during traversal.
// The reason is "depth" when the schema exceeds the maximum recursion depth,
// or "cycle" when the schema is already on the current traversal path.
type SchemaSkippedHandler func(wc *WalkContext, reason string, schema *parser.Schema)

// Option configures a Walker.
type Option func(*Walker)

// Walker traverses schema documents and calls handlers for each node.
type Walker struct {
	// Handlers
	onSchema        SchemaHandler
	onSchemaPost    SchemaPostHandler
	onDefinition    DefinitionHandler
	onRef           RefHandler
	onSchemaSkipped SchemaSkippedHandler

	// Configuration
	maxDepth    int
	trackRefs   bool
	trackParent bool
	userCtx     context.Context

	// Input sources for WalkWithOptions
	filePath *string
	parsed   *parser.ParseResult

	// Traversal state
	visitedSchemas map[*parser.Schema]bool
	stopped        bool
}

const defaultMaxSchemaDepth = 100

// New creates a Walker with default configuration.
func New() *Walker {
	return &Walker{
		maxDepth:       defaultMaxSchemaDepth,
		visitedSchemas: make(map[*parser.Schema]bool),
	}
}

// Walk traverses a parsed schema document, calling the configured handlers
// for every node encountered.
//
// Example:
//
//	walker.Walk(result,
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, s *parser.Schema) walker.Action {
//	        fmt.Println(wc.JSONPath)
//	        return walker.Continue
//	    }),
//	)
func Walk(result *parser.ParseResult, opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.Walk(result)
}

// WalkSchema traverses a single schema fragment rather than a full parse
// result. The fragment is walked as the root node with JSON path "$".
// This is useful for inspecting one definition out of a larger document.
func WalkSchema(schema *parser.Schema, opts ...Option) error {
	if schema == nil {
		return fmt.Errorf("walker: schema is nil")
	}
	w := New()
	for _, opt := range opts {
		opt(w)
	}
	w.reset()
	state := &walkState{ctx: w.userCtx, trackParent: w.trackParent}
	return w.walkSchema(schema, "$", 0, state)
}

// Walk traverses the document in the given parse result.
func (w *Walker) Walk(result *parser.ParseResult) error {
	if result == nil || result.Document == nil {
		return fmt.Errorf("walker: parse result has no document")
	}
	w.reset()
	state := &walkState{ctx: w.userCtx, trackParent: w.trackParent}
	return w.walkSchema(result.Document, "$", 0, state)
}

// reset clears traversal state so a Walker can be reused across walks.
func (w *Walker) reset() {
	w.visitedSchemas = make(map[*parser.Schema]bool)
	w.stopped = false
}

// handleAction processes a handler's action and returns whether to continue
// walking the current node's children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
