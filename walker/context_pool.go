package walker

import "sync"

// contextPool recycles WalkContext values across handler invocations.
// A walk visits every schema in the document and allocating a fresh context
// per visit shows up in profiles on large documents.
var contextPool = sync.Pool{
	New: func() any { return new(WalkContext) },
}

// acquireContext gets a WalkContext from the pool.
func acquireContext() *WalkContext {
	return contextPool.Get().(*WalkContext)
}

// releaseContext clears a WalkContext and returns it to the pool.
// All fields are zeroed to prevent data leaking between walks.
func releaseContext(wc *WalkContext) {
	wc.JSONPath = ""
	wc.DefinitionName = ""
	wc.Name = ""
	wc.InDefinitions = false
	wc.Parent = nil
	wc.ctx = nil
	contextPool.Put(wc)
}
