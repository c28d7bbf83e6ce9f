package walker

import (
	"github.com/formshape/formshape/parser"
)

// SchemaInfo contains information about a collected schema.
type SchemaInfo struct {
	// Schema is the collected schema.
	Schema *parser.Schema

	// Name is the map key for named schemas such as definitions and
	// properties. Empty for array members and other unnamed schemas.
	Name string

	// JSONPath is the full JSON path to the schema.
	JSONPath string

	// DefinitionName is the enclosing $defs entry name, when any.
	DefinitionName string

	// InDefinitions is true when the schema lives under a $defs table.
	InDefinitions bool
}

// SchemaCollector holds schemas collected during a walk.
type SchemaCollector struct {
	// All contains all schemas in traversal order.
	All []*SchemaInfo

	// Definitions contains only schemas within $defs scope.
	Definitions []*SchemaInfo

	// Inline contains only schemas outside $defs scope.
	Inline []*SchemaInfo

	// ByPath provides lookup by JSON path.
	ByPath map[string]*SchemaInfo

	// ByName provides lookup by name for schemas in $defs scope.
	// For definition entries this is the definition name (e.g., "Gateway").
	// For nested property schemas within definitions, this is the property name.
	// Note: If multiple schemas have the same name, only the last one is stored.
	ByName map[string]*SchemaInfo
}

// CollectSchemas walks the document and collects all schemas.
// It returns a SchemaCollector containing all schemas organized by various criteria.
func CollectSchemas(result *parser.ParseResult) (*SchemaCollector, error) {
	collector := &SchemaCollector{
		All:         make([]*SchemaInfo, 0),
		Definitions: make([]*SchemaInfo, 0),
		Inline:      make([]*SchemaInfo, 0),
		ByPath:      make(map[string]*SchemaInfo),
		ByName:      make(map[string]*SchemaInfo),
	}

	err := Walk(result,
		WithSchemaHandler(func(wc *WalkContext, schema *parser.Schema) Action {
			info := &SchemaInfo{
				Schema:         schema,
				Name:           wc.Name,
				JSONPath:       wc.JSONPath,
				DefinitionName: wc.DefinitionName,
				InDefinitions:  wc.InDefinitions,
			}

			collector.All = append(collector.All, info)
			collector.ByPath[wc.JSONPath] = info

			if wc.InDefinitions {
				collector.Definitions = append(collector.Definitions, info)
				if wc.Name != "" {
					collector.ByName[wc.Name] = info
				}
			} else {
				collector.Inline = append(collector.Inline, info)
			}

			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return collector, nil
}

// CollectRefs walks the document and returns every $ref encountered, in
// traversal order. Refs inside cyclic definitions are reported once per
// traversal path.
func CollectRefs(result *parser.ParseResult) ([]*RefInfo, error) {
	var refs []*RefInfo

	err := Walk(result,
		WithRefHandler(func(_ *WalkContext, ref *RefInfo) Action {
			refs = append(refs, ref)
			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return refs, nil
}

// CollectSchemaRefs returns every $ref within a single schema fragment.
// This is useful for computing which definitions a fragment depends on
// without walking the whole document.
func CollectSchemaRefs(schema *parser.Schema) ([]*RefInfo, error) {
	var refs []*RefInfo

	err := WalkSchema(schema,
		WithRefHandler(func(_ *WalkContext, ref *RefInfo) Action {
			refs = append(refs, ref)
			return Continue
		}),
	)

	if err != nil {
		return nil, err
	}

	return refs, nil
}
