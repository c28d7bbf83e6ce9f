package walker

import "context"

// WalkContext provides contextual information about the current node being
// visited. It follows the http.Request pattern for context access.
//
// WalkContext values are pooled and reused between handler invocations. Do
// not retain a *WalkContext past the handler's return; copy any fields you
// need to keep.
type WalkContext struct {
	// JSONPath is the full JSON path to the current node.
	// Always populated. Example: "$.$defs['Gateway'].properties['listeners'].items"
	JSONPath string

	// DefinitionName is the name of the enclosing $defs entry when walking
	// within a definition. Empty outside definition scope. Example: "Gateway"
	DefinitionName string

	// Name is the map key for named nodes like definitions, properties, and
	// dependent schemas. Empty for array members and other unnamed nodes.
	// Example: "Gateway", "listeners"
	Name string

	// InDefinitions is true when the current node is within a $defs table
	// entry, including all nodes nested below the entry.
	InDefinitions bool

	// Parent is the immediate parent node when parent tracking is enabled
	// via WithParentTracking. Nil otherwise.
	Parent *ParentInfo

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// WithContext returns a shallow copy of WalkContext with the new context.
func (wc *WalkContext) WithContext(ctx context.Context) *WalkContext {
	wc2 := *wc
	wc2.ctx = ctx
	return &wc2
}

// InDefinitionScope returns true if currently walking within a $defs entry.
func (wc *WalkContext) InDefinitionScope() bool {
	return wc.DefinitionName != ""
}

// walkState tracks context as we descend through the document.
// This is internal to the walker and used to build WalkContext instances.
type walkState struct {
	definitionName string
	name           string
	inDefinitions  bool
	parent         *ParentInfo
	trackParent    bool
	ctx            context.Context
}

// buildContext creates a WalkContext from the current walk state.
// The returned context comes from a pool; callers must release it with
// releaseContext after the handler returns.
func (s *walkState) buildContext(jsonPath string) *WalkContext {
	wc := acquireContext()
	wc.JSONPath = jsonPath
	wc.DefinitionName = s.definitionName
	wc.Name = s.name
	wc.InDefinitions = s.inDefinitions
	wc.Parent = s.parent
	wc.ctx = s.ctx
	return wc
}

// clone creates a copy of the walk state for child traversal.
func (s *walkState) clone() *walkState {
	return &walkState{
		definitionName: s.definitionName,
		name:           s.name,
		inDefinitions:  s.inDefinitions,
		parent:         s.parent,
		trackParent:    s.trackParent,
		ctx:            s.ctx,
	}
}

// pushParent records the current node as the parent for nested traversal.
// No-op unless parent tracking is enabled.
func (s *walkState) pushParent(schema any, jsonPath string) {
	if !s.trackParent {
		return
	}
	s.parent = &ParentInfo{Node: schema, JSONPath: jsonPath, Parent: s.parent}
}

// popParent restores the previous parent after nested traversal completes.
func (s *walkState) popParent() {
	if !s.trackParent || s.parent == nil {
		return
	}
	s.parent = s.parent.Parent
}
