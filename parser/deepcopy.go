package parser

// DeepCopy returns a deep copy of the schema. Every nested schema, map,
// slice, and passthrough value is cloned, so mutating the copy never touches
// the original tree. A nil receiver copies to nil.
func (s *Schema) DeepCopy() *Schema {
	if s == nil {
		return nil
	}

	cp := &Schema{
		Ref:           s.Ref,
		Dialect:       s.Dialect,
		ID:            s.ID,
		Anchor:        s.Anchor,
		DynamicRef:    s.DynamicRef,
		DynamicAnchor: s.DynamicAnchor,
		Comment:       s.Comment,
		Defs:          deepCopySchemaMap(s.Defs),

		Title:       s.Title,
		Description: s.Description,
		Default:     deepCopyJSONValue(s.Default),
		Examples:    deepCopyValueSlice(s.Examples),
		Deprecated:  s.Deprecated,
		ReadOnly:    s.ReadOnly,
		WriteOnly:   s.WriteOnly,

		Type:   deepCopySchemaType(s.Type),
		Enum:   deepCopyValueSlice(s.Enum),
		Const:  deepCopyJSONValue(s.Const),
		Format: s.Format,

		MultipleOf:       copyFloat64Ptr(s.MultipleOf),
		Maximum:          copyFloat64Ptr(s.Maximum),
		ExclusiveMaximum: deepCopyBoolOrNumber(s.ExclusiveMaximum),
		Minimum:          copyFloat64Ptr(s.Minimum),
		ExclusiveMinimum: deepCopyBoolOrNumber(s.ExclusiveMinimum),

		MaxLength: copyIntPtr(s.MaxLength),
		MinLength: copyIntPtr(s.MinLength),
		Pattern:   s.Pattern,

		Items:       deepCopySchemaOrBool(s.Items),
		PrefixItems: deepCopySchemaSlice(s.PrefixItems),
		Contains:    s.Contains.DeepCopy(),
		MaxItems:    copyIntPtr(s.MaxItems),
		MinItems:    copyIntPtr(s.MinItems),
		MaxContains: copyIntPtr(s.MaxContains),
		MinContains: copyIntPtr(s.MinContains),
		UniqueItems: s.UniqueItems,

		Properties:            deepCopySchemaMap(s.Properties),
		PatternProperties:     deepCopySchemaMap(s.PatternProperties),
		AdditionalProperties:  deepCopySchemaOrBool(s.AdditionalProperties),
		UnevaluatedProperties: deepCopySchemaOrBool(s.UnevaluatedProperties),
		Required:              deepCopyStringSlice(s.Required),
		PropertyNames:         s.PropertyNames.DeepCopy(),
		MaxProperties:         copyIntPtr(s.MaxProperties),
		MinProperties:         copyIntPtr(s.MinProperties),
		DependentRequired:     deepCopyDependentRequired(s.DependentRequired),
		DependentSchemas:      deepCopySchemaMap(s.DependentSchemas),

		If:   s.If.DeepCopy(),
		Then: s.Then.DeepCopy(),
		Else: s.Else.DeepCopy(),

		AllOf: deepCopySchemaSlice(s.AllOf),
		AnyOf: deepCopySchemaSlice(s.AnyOf),
		OneOf: deepCopySchemaSlice(s.OneOf),
		Not:   s.Not.DeepCopy(),

		Extra: deepCopyExtras(s.Extra),
	}

	return cp
}

// deepCopySchemaType handles Schema.Type which can be:
// - string
// - []string or []any for type arrays like ["string", "null"]
func deepCopySchemaType(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		return t // strings are immutable
	case []string:
		cp := make([]string, len(t))
		copy(cp, t)
		return cp
	case []any:
		// YAML may unmarshal as []any instead of []string
		cp := make([]any, len(t))
		copy(cp, t)
		return cp
	default:
		return v // Unknown type, return as-is
	}
}

// deepCopySchemaOrBool handles fields that can be *Schema or bool:
// - Schema.Items
// - Schema.AdditionalProperties
// - Schema.UnevaluatedProperties
func deepCopySchemaOrBool(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return t
	case *Schema:
		if t == nil {
			return nil
		}
		return t.DeepCopy()
	default:
		return v // Unknown type, return as-is
	}
}

// deepCopyBoolOrNumber handles ExclusiveMinimum/ExclusiveMaximum:
// - number (Draft 2020-12)
// - bool (Draft 4)
func deepCopyBoolOrNumber(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t
	case int:
		return t
	case int64:
		return t
	default:
		return v
	}
}

// deepCopyJSONValue recursively deep copies any JSON-compatible value.
// This handles Default, Const, enum members, and passthrough values that can
// hold arbitrary JSON.
func deepCopyJSONValue(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool, float64, int, int64, float32, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return t // Primitives copy by value
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyJSONValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyJSONValue(item)
		}
		return cp
	case *Schema:
		// Typed subschemas may appear inside passthrough values after coercion
		return t.DeepCopy()
	default:
		// Unknown type - return as-is (shallow copy)
		return v
	}
}

// deepCopyValueSlice deep copies a []any slice such as enum or examples.
func deepCopyValueSlice(v []any) []any {
	if v == nil {
		return nil
	}
	cp := make([]any, len(v))
	for i, item := range v {
		cp[i] = deepCopyJSONValue(item)
	}
	return cp
}

// deepCopyExtras deep copies a map[string]any of passthrough keywords.
func deepCopyExtras(v map[string]any) map[string]any {
	if v == nil {
		return nil
	}
	cp := make(map[string]any, len(v))
	for k, item := range v {
		cp[k] = deepCopyJSONValue(item)
	}
	return cp
}

// deepCopySchemaMap deep copies a map[string]*Schema such as properties or $defs.
func deepCopySchemaMap(v map[string]*Schema) map[string]*Schema {
	if v == nil {
		return nil
	}
	cp := make(map[string]*Schema, len(v))
	for k, item := range v {
		cp[k] = item.DeepCopy()
	}
	return cp
}

// deepCopySchemaSlice deep copies a []*Schema such as oneOf or prefixItems.
func deepCopySchemaSlice(v []*Schema) []*Schema {
	if v == nil {
		return nil
	}
	cp := make([]*Schema, len(v))
	for i, item := range v {
		cp[i] = item.DeepCopy()
	}
	return cp
}

// deepCopyStringSlice deep copies a []string.
func deepCopyStringSlice(v []string) []string {
	if v == nil {
		return nil
	}
	cp := make([]string, len(v))
	copy(cp, v)
	return cp
}

// deepCopyDependentRequired deep copies a map[string][]string.
func deepCopyDependentRequired(v map[string][]string) map[string][]string {
	if v == nil {
		return nil
	}
	cp := make(map[string][]string, len(v))
	for k, val := range v {
		if val != nil {
			cpVal := make([]string, len(val))
			copy(cpVal, val)
			cp[k] = cpVal
		}
	}
	return cp
}

// copyFloat64Ptr copies a *float64.
func copyFloat64Ptr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// copyIntPtr copies a *int.
func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
