package transform

import (
	"fmt"

	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/internal/pathutil"
	"github.com/formshape/formshape/parser"
)

// Sanitize strips keywords that are valid in the source dialect but break
// schema-driven form renderers, recursively through the fragment tree:
//
//   - unevaluatedProperties is deleted wherever it occurs
//   - format values outside the standard allow-list are deleted
//   - additionalProperties: false is deleted from immediate oneOf/anyOf
//     members only; everywhere else it is preserved
//   - sentinel "invalid" branches are filtered out of oneOf/anyOf arrays,
//     and a keyword emptied by filtering is deleted rather than left as an
//     empty array
//
// Renderers evaluate every composition branch against the current form state
// simultaneously, so a branch-local closed-properties constraint rejects
// valid data belonging to a sibling branch.
//
// The fragment is mutated in place. Sanitize expects to run after
// [Normalize] so that sentinel branches appear in their promoted shape, and
// is idempotent over its own output.
func Sanitize(schema *parser.Schema) *Result {
	result := &Result{}
	if schema == nil {
		return result
	}

	pb := pathutil.Get()
	defer pathutil.Put(pb)
	pb.Push("$")

	sanitizeSchema(schema, pb, false, result)
	return result
}

// sentinelValue marks a composition branch as an uninstantiable variant.
// Upstream code generation emits one such branch for union types whose
// default case cannot be configured.
const sentinelValue = "invalid"

// sanitizeSchema applies the keyword rules to one fragment, then recurses.
// inChoice is true only when the fragment is an immediate member of a
// oneOf/anyOf array.
func sanitizeSchema(schema *parser.Schema, pb *pathutil.PathBuilder, inChoice bool, result *Result) {
	if schema == nil {
		return
	}

	if schema.UnevaluatedProperties != nil {
		result.add(ChangeTypeUnevaluatedPropertiesRemoved, pb.String(),
			"removed unevaluatedProperties", schema.UnevaluatedProperties, nil)
		schema.UnevaluatedProperties = nil
	}

	if schema.Format != "" && !IsStandardFormat(schema.Format) {
		result.add(ChangeTypeFormatRemoved, pb.String(),
			fmt.Sprintf("removed non-standard format %q", schema.Format),
			schema.Format, nil)
		schema.Format = ""
	}

	if inChoice {
		if closed, ok := schema.AdditionalProperties.(bool); ok && !closed {
			result.add(ChangeTypeChoiceBranchOpened, pb.String(),
				"removed additionalProperties: false from choice member", false, nil)
			schema.AdditionalProperties = nil
		}
	}

	schema.OneOf = filterSentinels(schema.OneOf, "oneOf", pb, result)
	schema.AnyOf = filterSentinels(schema.AnyOf, "anyOf", pb, result)

	// Recurse. Only immediate oneOf/anyOf members carry the choice flag;
	// every other location resets it.
	for _, name := range maputil.SortedKeys(schema.Properties) {
		pb.Push("properties")
		pb.Push(name)
		sanitizeSchema(schema.Properties[name], pb, false, result)
		pb.Pop()
		pb.Pop()
	}

	for _, pattern := range maputil.SortedKeys(schema.PatternProperties) {
		pb.Push("patternProperties")
		pb.Push(pattern)
		sanitizeSchema(schema.PatternProperties[pattern], pb, false, result)
		pb.Pop()
		pb.Pop()
	}

	if addProps, ok := schema.AdditionalPropertiesSchema(); ok {
		pb.Push("additionalProperties")
		sanitizeSchema(addProps, pb, false, result)
		pb.Pop()
	}

	if schema.PropertyNames != nil {
		pb.Push("propertyNames")
		sanitizeSchema(schema.PropertyNames, pb, false, result)
		pb.Pop()
	}

	for _, name := range maputil.SortedKeys(schema.DependentSchemas) {
		pb.Push("dependentSchemas")
		pb.Push(name)
		sanitizeSchema(schema.DependentSchemas[name], pb, false, result)
		pb.Pop()
		pb.Pop()
	}

	if items, ok := schema.ItemsSchema(); ok {
		pb.Push("items")
		sanitizeSchema(items, pb, false, result)
		pb.Pop()
	}

	for i, prefixItem := range schema.PrefixItems {
		pb.Push("prefixItems")
		pb.PushIndex(i)
		sanitizeSchema(prefixItem, pb, false, result)
		pb.Pop()
		pb.Pop()
	}

	if schema.Contains != nil {
		pb.Push("contains")
		sanitizeSchema(schema.Contains, pb, false, result)
		pb.Pop()
	}

	sanitizeMembers(schema.OneOf, "oneOf", true, pb, result)
	sanitizeMembers(schema.AnyOf, "anyOf", true, pb, result)
	sanitizeMembers(schema.AllOf, "allOf", false, pb, result)

	if schema.Not != nil {
		pb.Push("not")
		sanitizeSchema(schema.Not, pb, false, result)
		pb.Pop()
	}

	if schema.If != nil {
		pb.Push("if")
		sanitizeSchema(schema.If, pb, false, result)
		pb.Pop()
	}
	if schema.Then != nil {
		pb.Push("then")
		sanitizeSchema(schema.Then, pb, false, result)
		pb.Pop()
	}
	if schema.Else != nil {
		pb.Push("else")
		sanitizeSchema(schema.Else, pb, false, result)
		pb.Pop()
	}

	for _, name := range maputil.SortedKeys(schema.Defs) {
		pb.Push("$defs")
		pb.Push(name)
		sanitizeSchema(schema.Defs[name], pb, false, result)
		pb.Pop()
		pb.Pop()
	}
}

// sanitizeMembers recurses into composition members with the choice flag.
func sanitizeMembers(members []*parser.Schema, keyword string, inChoice bool, pb *pathutil.PathBuilder, result *Result) {
	for i, member := range members {
		pb.Push(keyword)
		pb.PushIndex(i)
		sanitizeSchema(member, pb, inChoice, result)
		pb.Pop()
		pb.Pop()
	}
}

// filterSentinels removes uninstantiable sentinel branches from a
// composition array. A keyword emptied by filtering is deleted entirely.
func filterSentinels(members []*parser.Schema, keyword string, pb *pathutil.PathBuilder, result *Result) []*parser.Schema {
	if len(members) == 0 {
		return members
	}

	kept := make([]*parser.Schema, 0, len(members))
	for i, member := range members {
		if isSentinelBranch(member) {
			pb.Push(keyword)
			pb.PushIndex(i)
			result.add(ChangeTypeSentinelBranchRemoved, pb.String(),
				fmt.Sprintf("removed sentinel %q branch", sentinelValue), member, nil)
			pb.Pop()
			pb.Pop()
			continue
		}
		kept = append(kept, member)
	}

	if len(kept) == 0 {
		return nil
	}
	if len(kept) == len(members) {
		return members
	}
	return kept
}

// isSentinelBranch detects the uninstantiable variant branch in both its
// raw shape, {type: "string", enum: ["invalid"]}, and its promoted shape,
// a single-entry oneOf with const "invalid".
func isSentinelBranch(s *parser.Schema) bool {
	if s == nil {
		return false
	}
	if len(s.Enum) == 1 && s.HasType("string") {
		if value, ok := s.Enum[0].(string); ok && value == sentinelValue {
			return true
		}
	}
	if len(s.OneOf) == 1 && s.OneOf[0] != nil {
		if value, ok := s.OneOf[0].Const.(string); ok && value == sentinelValue {
			return true
		}
	}
	return false
}
