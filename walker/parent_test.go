package walker

import (
	"testing"

	"github.com/formshape/formshape/parser"
)

func TestParentTrackingDisabledByDefault(t *testing.T) {
	err := Walk(gatewayDoc(),
		WithSchemaHandler(func(wc *WalkContext, _ *parser.Schema) Action {
			if wc.Parent != nil {
				t.Errorf("Parent set at %s without WithParentTracking", wc.JSONPath)
			}
			if _, ok := wc.ParentSchema(); ok {
				t.Errorf("ParentSchema available at %s without WithParentTracking", wc.JSONPath)
			}
			return Continue
		}),
	)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
}

func TestParentSchema(t *testing.T) {
	result := gatewayDoc()
	gateway := result.Document.Defs["Gateway"]

	var parentOfName *parser.Schema
	err := Walk(result,
		WithParentTracking(),
		WithSchemaHandler(func(wc *WalkContext, _ *parser.Schema) Action {
			if wc.JSONPath == "$.$defs['Gateway'].properties['name']" {
				if p, ok := wc.ParentSchema(); ok {
					parentOfName = p
				}
			}
			return Continue
		}),
	)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if parentOfName != gateway {
		t.Error("ParentSchema of nested property should be the Gateway definition")
	}
}

func TestAncestorsAndDepth(t *testing.T) {
	var depth int
	var ancestorPaths []string

	err := Walk(gatewayDoc(),
		WithParentTracking(),
		WithSchemaHandler(func(wc *WalkContext, _ *parser.Schema) Action {
			if wc.JSONPath == "$.properties['gateways'].items" {
				depth = wc.Depth()
				for _, a := range wc.Ancestors() {
					ancestorPaths = append(ancestorPaths, a.JSONPath)
				}
			}
			return Continue
		}),
	)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if depth != 2 {
		t.Errorf("Depth() = %d, want 2", depth)
	}

	expected := []string{"$.properties['gateways']", "$"}
	if len(ancestorPaths) != len(expected) {
		t.Fatalf("Ancestors() returned %d entries, want %d: %v", len(ancestorPaths), len(expected), ancestorPaths)
	}
	for i, want := range expected {
		if ancestorPaths[i] != want {
			t.Errorf("ancestorPaths[%d] = %q, want %q", i, ancestorPaths[i], want)
		}
	}
}

func TestRootHasNoAncestors(t *testing.T) {
	err := Walk(gatewayDoc(),
		WithParentTracking(),
		WithSchemaHandler(func(wc *WalkContext, _ *parser.Schema) Action {
			if wc.JSONPath == "$" {
				if wc.Depth() != 0 {
					t.Errorf("root Depth() = %d, want 0", wc.Depth())
				}
				if wc.Ancestors() != nil {
					t.Errorf("root Ancestors() = %v, want nil", wc.Ancestors())
				}
			}
			return Continue
		}),
	)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
}
