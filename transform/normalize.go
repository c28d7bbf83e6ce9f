package transform

import (
	"fmt"

	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/internal/pathutil"
	"github.com/formshape/formshape/naming"
	"github.com/formshape/formshape/parser"
)

// Normalize rewrites plain string enumerations into labeled constant choices,
// recursively through the fragment tree. A fragment whose enum members are all
// strings or null (with at least one string) has its enum replaced by a oneOf
// of {const, title} entries in the original order; a null member becomes one
// trailing {type: "null", title: "(none)"} entry. Mixed-type enums and
// null-only enums are left untouched.
//
// The fragment is mutated in place. Running Normalize on already-normalized
// input is a no-op.
func Normalize(schema *parser.Schema) *Result {
	result := &Result{}
	if schema == nil {
		return result
	}

	pb := pathutil.Get()
	defer pathutil.Put(pb)
	pb.Push("$")

	normalizeSchema(schema, pb, result)
	return result
}

// NullChoiceTitle labels the choice entry representing an absent value.
const NullChoiceTitle = "(none)"

// normalizeSchema promotes the enum on a single fragment, then recurses.
func normalizeSchema(schema *parser.Schema, pb *pathutil.PathBuilder, result *Result) {
	if schema == nil {
		return
	}

	if strings, nullPresent, ok := promotableEnum(schema.Enum); ok {
		before := schema.Enum

		choices := make([]*parser.Schema, 0, len(strings)+1)
		for _, value := range strings {
			choices = append(choices, &parser.Schema{
				Const: value,
				Title: naming.Format(value),
			})
		}
		if nullPresent {
			choices = append(choices, &parser.Schema{
				Type:  "null",
				Title: NullChoiceTitle,
			})
		}

		schema.Enum = nil
		schema.OneOf = choices

		result.add(ChangeTypeEnumPromoted, pb.String(),
			fmt.Sprintf("promoted %d-value enum to %d labeled choices", len(before), len(choices)),
			before, choices)
	}

	// Recurse into nested fragments
	for _, name := range maputil.SortedKeys(schema.Properties) {
		pb.Push("properties")
		pb.Push(name)
		normalizeSchema(schema.Properties[name], pb, result)
		pb.Pop()
		pb.Pop()
	}

	normalizeMembers(schema.OneOf, "oneOf", pb, result)
	normalizeMembers(schema.AnyOf, "anyOf", pb, result)
	normalizeMembers(schema.AllOf, "allOf", pb, result)

	if items, ok := schema.ItemsSchema(); ok {
		pb.Push("items")
		normalizeSchema(items, pb, result)
		pb.Pop()
	}

	for i, prefixItem := range schema.PrefixItems {
		pb.Push("prefixItems")
		pb.PushIndex(i)
		normalizeSchema(prefixItem, pb, result)
		pb.Pop()
		pb.Pop()
	}

	for _, name := range maputil.SortedKeys(schema.Defs) {
		pb.Push("$defs")
		pb.Push(name)
		normalizeSchema(schema.Defs[name], pb, result)
		pb.Pop()
		pb.Pop()
	}
}

// normalizeMembers recurses into the members of a composition keyword.
func normalizeMembers(members []*parser.Schema, keyword string, pb *pathutil.PathBuilder, result *Result) {
	for i, member := range members {
		pb.Push(keyword)
		pb.PushIndex(i)
		normalizeSchema(member, pb, result)
		pb.Pop()
		pb.Pop()
	}
}

// promotableEnum reports whether an enum can be promoted to labeled choices:
// every member must be a string or null, and at least one string must be
// present. The returned strings preserve order and duplicates verbatim.
func promotableEnum(enum []any) (strings []string, nullPresent bool, ok bool) {
	if len(enum) == 0 {
		return nil, false, false
	}
	for _, member := range enum {
		if member == nil {
			nullPresent = true
			continue
		}
		s, isString := member.(string)
		if !isString {
			return nil, false, false
		}
		strings = append(strings, s)
	}
	if len(strings) == 0 {
		return nil, false, false
	}
	return strings, nullPresent, true
}
