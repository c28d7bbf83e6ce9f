package transform

import (
	"fmt"

	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/internal/pathutil"
	"github.com/formshape/formshape/naming"
	"github.com/formshape/formshape/parser"
)

// Enhance fills in missing titles and descriptions on a fragment and its
// nested property and branch structure. The key is the property or type name
// the fragment was reached under; it becomes the fragment's title when none
// is set. Choice members (oneOf) and alternatives (anyOf) lacking titles are
// labeled from their shape, and properties matching the descriptions table
// receive its text.
//
// Enhance never overwrites a title or description that is already set, so
// applying it twice is safe. It does not dereference $ref and does not
// descend into $defs, items, or allOf members; callers apply it once per
// named definition instead of in one deep walk.
func Enhance(schema *parser.Schema, key string, defs map[string]*parser.Schema, descriptions map[string]string) *Result {
	result := &Result{}
	if schema == nil {
		return result
	}

	pb := pathutil.Get()
	defer pathutil.Put(pb)
	pb.Push("$")

	enhanceSchema(schema, key, defs, descriptions, pb, result)
	return result
}

// enhanceSchema fills one fragment and recurses through its properties.
func enhanceSchema(schema *parser.Schema, key string, defs map[string]*parser.Schema, descriptions map[string]string, pb *pathutil.PathBuilder, result *Result) {
	if schema == nil {
		return
	}

	if schema.Title == "" && key != "" {
		schema.Title = naming.Format(key)
		result.add(ChangeTypeTitleFilled, pb.String(),
			fmt.Sprintf("set title %q from name %q", schema.Title, key), nil, schema.Title)
	}

	titleChoiceMembers(schema.OneOf, defs, pb, result)
	titleAlternativeMembers(schema.AnyOf, defs, pb, result)

	for _, name := range maputil.SortedKeys(schema.Properties) {
		prop := schema.Properties[name]
		if prop == nil {
			continue
		}
		pb.Push("properties")
		pb.Push(name)

		enhanceSchema(prop, name, defs, descriptions, pb, result)

		if prop.Title == "" {
			if title := naming.Format(name); title != "" {
				prop.Title = title
				result.add(ChangeTypeTitleFilled, pb.String(),
					fmt.Sprintf("set title %q from property key", title), nil, title)
			}
		}
		if prop.Description == "" {
			if desc, ok := descriptions[name]; ok {
				prop.Description = desc
				result.add(ChangeTypeDescriptionFilled, pb.String(),
					fmt.Sprintf("set description for well-known field %q", name), nil, desc)
			}
		}

		pb.Pop()
		pb.Pop()
	}
}

// titleChoiceMembers labels untitled oneOf members from their shape.
func titleChoiceMembers(members []*parser.Schema, defs map[string]*parser.Schema, pb *pathutil.PathBuilder, result *Result) {
	for i, member := range members {
		if member == nil || member.Title != "" {
			continue
		}
		title := choiceTitle(member, i, defs)
		member.Title = title

		pb.Push("oneOf")
		pb.PushIndex(i)
		result.add(ChangeTypeTitleFilled, pb.String(),
			fmt.Sprintf("set choice title %q", title), nil, title)
		pb.Pop()
		pb.Pop()
	}
}

// choiceTitle derives a label for a oneOf member. The checks run in a fixed
// priority order; the positional fallback is always available, so every
// member gets a title.
func choiceTitle(member *parser.Schema, index int, defs map[string]*parser.Schema) string {
	if member.Const != nil {
		return naming.Format(constLabel(member.Const))
	}
	if len(member.Properties) == 1 {
		return naming.Format(maputil.SortedKeys(member.Properties)[0])
	}
	if len(member.Properties) > 1 {
		return fmt.Sprintf("Option %d", index+1)
	}
	if member.Ref != "" {
		if name, ok := pathutil.RefDefinitionName(member.Ref); ok {
			if _, present := defs[name]; present {
				return naming.Format(name)
			}
		}
	}
	if member.HasType("null") {
		return NullChoiceTitle
	}
	return fmt.Sprintf("Option %d", index+1)
}

// titleAlternativeMembers labels untitled anyOf members. Null-typed members
// are skipped, and members with no usable shape stay untitled.
func titleAlternativeMembers(members []*parser.Schema, defs map[string]*parser.Schema, pb *pathutil.PathBuilder, result *Result) {
	for i, member := range members {
		if member == nil || member.Title != "" || member.HasType("null") {
			continue
		}

		var title string
		if len(member.Properties) > 0 {
			title = naming.Format(maputil.SortedKeys(member.Properties)[0])
		} else if member.Ref != "" {
			if name, ok := pathutil.RefDefinitionName(member.Ref); ok {
				if _, present := defs[name]; present {
					title = naming.Format(name)
				}
			}
		}
		if title == "" {
			continue
		}

		member.Title = title
		pb.Push("anyOf")
		pb.PushIndex(i)
		result.add(ChangeTypeTitleFilled, pb.String(),
			fmt.Sprintf("set alternative title %q", title), nil, title)
		pb.Pop()
		pb.Pop()
	}
}

// constLabel renders a const value as label input.
func constLabel(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
