package walker

import (
	"fmt"
	"sort"

	"github.com/formshape/formshape/parser"
)

// sortedMapKeys returns the keys of a map in sorted order for deterministic
// traversal.
func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// handleRef processes a $ref value if ref tracking is enabled.
// Returns Stop if the walk should halt.
func (w *Walker) handleRef(ref, path string, state *walkState) Action {
	if ref == "" || !w.trackRefs {
		return Continue
	}
	if w.onRef == nil {
		return Continue
	}

	info := newRefInfo(ref, path)
	wc := state.buildContext(path)
	action := w.onRef(wc, info)
	releaseContext(wc)
	if action == Stop {
		w.stopped = true
	}
	return action
}

// walkSchema walks a schema and all of its nested schemas.
func (w *Walker) walkSchema(schema *parser.Schema, basePath string, depth int, state *walkState) error {
	if schema == nil || w.stopped {
		return nil
	}

	// Check for $ref before anything else
	if w.handleRef(schema.Ref, basePath, state) == Stop {
		return nil
	}

	// Check depth limit
	if depth > w.maxDepth {
		if w.onSchemaSkipped != nil {
			wc := state.buildContext(basePath)
			w.onSchemaSkipped(wc, "depth", schema)
			releaseContext(wc)
		}
		return nil
	}

	// Check for cycle: a schema already on the current traversal path is not
	// descended into again. Shared subtrees reached along different paths are
	// still visited once per path.
	if w.visitedSchemas[schema] {
		if w.onSchemaSkipped != nil {
			wc := state.buildContext(basePath)
			w.onSchemaSkipped(wc, "cycle", schema)
			releaseContext(wc)
		}
		return nil
	}

	w.visitedSchemas[schema] = true
	defer delete(w.visitedSchemas, schema)

	// Call pre-visit handler
	if w.onSchema != nil {
		wc := state.buildContext(basePath)
		continueToChildren := w.handleAction(w.onSchema(wc, schema))
		releaseContext(wc)
		if !continueToChildren {
			// SkipChildren or Stop - don't walk children or call post handler
			return nil
		}
	}

	// Push schema as parent for nested schemas
	state.pushParent(schema, basePath)
	defer state.popParent()

	// Walk nested schemas in groups - clear name for nested schemas
	nestedState := state.clone()
	nestedState.name = ""

	if err := w.walkSchemaDefs(schema, basePath, depth, nestedState); err != nil {
		return err
	}
	if err := w.walkSchemaProperties(schema, basePath, depth, nestedState); err != nil {
		return err
	}
	if err := w.walkSchemaArrayKeywords(schema, basePath, depth, nestedState); err != nil {
		return err
	}
	if err := w.walkSchemaComposition(schema, basePath, depth, nestedState); err != nil {
		return err
	}
	if err := w.walkSchemaConditionals(schema, basePath, depth, nestedState); err != nil {
		return err
	}

	// Call post-visit handler after children (but before popParent)
	if w.onSchemaPost != nil && !w.stopped {
		wc := state.buildContext(basePath)
		w.onSchemaPost(wc, schema)
		releaseContext(wc)
	}

	return nil
}

// walkSchemaDefs walks the $defs table of a schema. Most documents only
// carry $defs at the root, but nested tables are legal and walked the same way.
func (w *Walker) walkSchemaDefs(schema *parser.Schema, basePath string, depth int, state *walkState) error {
	for _, name := range sortedMapKeys(schema.Defs) {
		if w.stopped {
			return nil
		}
		def := schema.Defs[name]
		if def == nil {
			continue
		}

		defPath := basePath + ".$defs['" + name + "']"
		defState := state.clone()
		defState.name = name
		defState.definitionName = name
		defState.inDefinitions = true

		if w.onDefinition != nil {
			wc := defState.buildContext(defPath)
			continueToChildren := w.handleAction(w.onDefinition(wc, name, def))
			releaseContext(wc)
			if w.stopped {
				return nil
			}
			if !continueToChildren {
				continue
			}
		}

		if err := w.walkSchema(def, defPath, depth+1, defState); err != nil {
			return err
		}
	}
	return nil
}

// walkSchemaProperties walks object-related schema keywords.
func (w *Walker) walkSchemaProperties(schema *parser.Schema, basePath string, depth int, state *walkState) error {
	// Properties
	for _, name := range sortedMapKeys(schema.Properties) {
		if w.stopped {
			return nil
		}
		if prop := schema.Properties[name]; prop != nil {
			propState := state.clone()
			propState.name = name
			if err := w.walkSchema(prop, basePath+".properties['"+name+"']", depth+1, propState); err != nil {
				return err
			}
		}
	}

	// PatternProperties
	for _, pattern := range sortedMapKeys(schema.PatternProperties) {
		if w.stopped {
			return nil
		}
		if prop := schema.PatternProperties[pattern]; prop != nil {
			if err := w.walkSchema(prop, basePath+".patternProperties['"+pattern+"']", depth+1, state); err != nil {
				return err
			}
		}
	}

	// AdditionalProperties is only walked in its schema form; boolean values
	// carry no nested schemas.
	if addProps, ok := schema.AdditionalPropertiesSchema(); ok {
		if err := w.walkSchema(addProps, basePath+".additionalProperties", depth+1, state); err != nil {
			return err
		}
	}

	// UnevaluatedProperties, same treatment as additionalProperties
	if uProps, ok := schema.UnevaluatedProperties.(*parser.Schema); ok {
		if err := w.walkSchema(uProps, basePath+".unevaluatedProperties", depth+1, state); err != nil {
			return err
		}
	}

	// PropertyNames
	if schema.PropertyNames != nil {
		if err := w.walkSchema(schema.PropertyNames, basePath+".propertyNames", depth+1, state); err != nil {
			return err
		}
	}

	// DependentSchemas
	for _, name := range sortedMapKeys(schema.DependentSchemas) {
		if w.stopped {
			return nil
		}
		if ds := schema.DependentSchemas[name]; ds != nil {
			if err := w.walkSchema(ds, basePath+".dependentSchemas['"+name+"']", depth+1, state); err != nil {
				return err
			}
		}
	}

	return nil
}

// walkSchemaArrayKeywords walks array-related schema keywords.
func (w *Walker) walkSchemaArrayKeywords(schema *parser.Schema, basePath string, depth int, state *walkState) error {
	// Items is only walked in its schema form; boolean values carry no
	// nested schemas.
	if items, ok := schema.ItemsSchema(); ok {
		if err := w.walkSchema(items, basePath+".items", depth+1, state); err != nil {
			return err
		}
	}

	// PrefixItems
	for i, prefixItem := range schema.PrefixItems {
		if w.stopped {
			return nil
		}
		if prefixItem != nil {
			if err := w.walkSchema(prefixItem, fmt.Sprintf("%s.prefixItems[%d]", basePath, i), depth+1, state); err != nil {
				return err
			}
		}
	}

	// Contains
	if schema.Contains != nil {
		if err := w.walkSchema(schema.Contains, basePath+".contains", depth+1, state); err != nil {
			return err
		}
	}

	return nil
}

// walkSchemaComposition walks allOf/anyOf/oneOf/not keywords.
func (w *Walker) walkSchemaComposition(schema *parser.Schema, basePath string, depth int, state *walkState) error {
	// AllOf
	for i, sub := range schema.AllOf {
		if w.stopped {
			return nil
		}
		if sub != nil {
			if err := w.walkSchema(sub, fmt.Sprintf("%s.allOf[%d]", basePath, i), depth+1, state); err != nil {
				return err
			}
		}
	}

	// AnyOf
	for i, sub := range schema.AnyOf {
		if w.stopped {
			return nil
		}
		if sub != nil {
			if err := w.walkSchema(sub, fmt.Sprintf("%s.anyOf[%d]", basePath, i), depth+1, state); err != nil {
				return err
			}
		}
	}

	// OneOf
	for i, sub := range schema.OneOf {
		if w.stopped {
			return nil
		}
		if sub != nil {
			if err := w.walkSchema(sub, fmt.Sprintf("%s.oneOf[%d]", basePath, i), depth+1, state); err != nil {
				return err
			}
		}
	}

	// Not
	if schema.Not != nil {
		if err := w.walkSchema(schema.Not, basePath+".not", depth+1, state); err != nil {
			return err
		}
	}

	return nil
}

// walkSchemaConditionals walks if/then/else keywords.
func (w *Walker) walkSchemaConditionals(schema *parser.Schema, basePath string, depth int, state *walkState) error {
	if schema.If != nil {
		if err := w.walkSchema(schema.If, basePath+".if", depth+1, state); err != nil {
			return err
		}
	}
	if schema.Then != nil {
		if err := w.walkSchema(schema.Then, basePath+".then", depth+1, state); err != nil {
			return err
		}
	}
	if schema.Else != nil {
		if err := w.walkSchema(schema.Else, basePath+".else", depth+1, state); err != nil {
			return err
		}
	}
	return nil
}
