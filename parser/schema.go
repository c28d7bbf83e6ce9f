package parser

// Schema represents a JSON Schema fragment (Draft 2020-12).
//
// Machine-generated configuration schemas collect every type of a system in
// the root document's $defs table and link them together with local $ref
// pointers. A Schema value models one node of that tree: the root document,
// a $defs entry, a property, or any nested composition member.
//
// Polymorphic keywords use the any type and carry the shapes JSON Schema
// allows for them:
//
//   - Type: string, or []string / []any for union types like ["string", "null"]
//   - Items, AdditionalProperties, UnevaluatedProperties: *Schema or bool
//   - ExclusiveMinimum, ExclusiveMaximum: number (Draft 2020-12) or bool (Draft 4)
//
// Keywords the struct does not model are preserved in Extra and survive a
// marshal round trip unchanged.
type Schema struct {
	// Core keywords
	Ref           string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Dialect       string             `yaml:"$schema,omitempty" json:"$schema,omitempty"`
	ID            string             `yaml:"$id,omitempty" json:"$id,omitempty"`
	Anchor        string             `yaml:"$anchor,omitempty" json:"$anchor,omitempty"`
	DynamicRef    string             `yaml:"$dynamicRef,omitempty" json:"$dynamicRef,omitempty"`
	DynamicAnchor string             `yaml:"$dynamicAnchor,omitempty" json:"$dynamicAnchor,omitempty"`
	Comment       string             `yaml:"$comment,omitempty" json:"$comment,omitempty"`
	Defs          map[string]*Schema `yaml:"$defs,omitempty" json:"$defs,omitempty"`

	// Metadata annotations
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Examples    []any  `yaml:"examples,omitempty" json:"examples,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ReadOnly    bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly   bool   `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`

	// Type validation
	// Type can be a string or []string/[]any for union types like ["string", "null"]
	Type   any    `yaml:"type,omitempty" json:"type,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
	Const  any    `yaml:"const,omitempty" json:"const,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	// Items can be *Schema or bool (Draft 2020-12)
	Items       any       `yaml:"items,omitempty" json:"items,omitempty"`
	PrefixItems []*Schema `yaml:"prefixItems,omitempty" json:"prefixItems,omitempty"`
	Contains    *Schema   `yaml:"contains,omitempty" json:"contains,omitempty"`
	MaxItems    *int      `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int      `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxContains *int      `yaml:"maxContains,omitempty" json:"maxContains,omitempty"`
	MinContains *int      `yaml:"minContains,omitempty" json:"minContains,omitempty"`
	UniqueItems bool      `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties        map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	PatternProperties map[string]*Schema `yaml:"patternProperties,omitempty" json:"patternProperties,omitempty"`
	// AdditionalProperties can be *Schema or bool
	AdditionalProperties any `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	// UnevaluatedProperties can be *Schema or bool
	UnevaluatedProperties any                 `yaml:"unevaluatedProperties,omitempty" json:"unevaluatedProperties,omitempty"`
	Required              []string            `yaml:"required,omitempty" json:"required,omitempty"`
	PropertyNames         *Schema             `yaml:"propertyNames,omitempty" json:"propertyNames,omitempty"`
	MaxProperties         *int                `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties         *int                `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	DependentRequired     map[string][]string `yaml:"dependentRequired,omitempty" json:"dependentRequired,omitempty"`
	DependentSchemas      map[string]*Schema  `yaml:"dependentSchemas,omitempty" json:"dependentSchemas,omitempty"`

	// Conditional schemas
	If   *Schema `yaml:"if,omitempty" json:"if,omitempty"`
	Then *Schema `yaml:"then,omitempty" json:"then,omitempty"`
	Else *Schema `yaml:"else,omitempty" json:"else,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// Extra contains keywords not modeled above, preserved through the pipeline
	Extra map[string]any `yaml:",inline" json:"-"`
}

// TypeString returns the schema's type when it names exactly one type, either
// as a bare string or a single-element array. It returns "" when the type
// keyword is absent or names multiple types.
func (s *Schema) TypeString() string {
	if s == nil || s.Type == nil {
		return ""
	}
	switch t := s.Type.(type) {
	case string:
		return t
	case []string:
		if len(t) == 1 {
			return t[0]
		}
	case []any:
		if len(t) == 1 {
			if str, ok := t[0].(string); ok {
				return str
			}
		}
	}
	return ""
}

// HasType reports whether the schema's type keyword includes want, either as
// a bare string or as a member of a type array like ["string", "null"].
func (s *Schema) HasType(want string) bool {
	if s == nil || s.Type == nil {
		return false
	}
	switch t := s.Type.(type) {
	case string:
		return t == want
	case []string:
		for _, v := range t {
			if v == want {
				return true
			}
		}
	case []any:
		for _, v := range t {
			if str, ok := v.(string); ok && str == want {
				return true
			}
		}
	}
	return false
}

// AdditionalPropertiesSchema returns the additionalProperties keyword as a
// *Schema and whether it held one. Boolean and absent values return (nil, false).
func (s *Schema) AdditionalPropertiesSchema() (*Schema, bool) {
	if s == nil {
		return nil, false
	}
	sub, ok := s.AdditionalProperties.(*Schema)
	return sub, ok && sub != nil
}

// ItemsSchema returns the items keyword as a *Schema and whether it held one.
// Boolean and absent values return (nil, false).
func (s *Schema) ItemsSchema() (*Schema, bool) {
	if s == nil {
		return nil, false
	}
	sub, ok := s.Items.(*Schema)
	return sub, ok && sub != nil
}
