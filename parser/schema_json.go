package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/formshape/formshape/parser/internal/jsonhelpers"
)

// knownSchemaFields lists every keyword the Schema struct models. Keywords
// outside this set are captured into Schema.Extra during unmarshaling.
var knownSchemaFields = map[string]bool{
	"$ref":                  true,
	"$schema":               true,
	"$id":                   true,
	"$anchor":               true,
	"$dynamicRef":           true,
	"$dynamicAnchor":        true,
	"$comment":              true,
	"$defs":                 true,
	"title":                 true,
	"description":           true,
	"default":               true,
	"examples":              true,
	"deprecated":            true,
	"readOnly":              true,
	"writeOnly":             true,
	"type":                  true,
	"enum":                  true,
	"const":                 true,
	"format":                true,
	"multipleOf":            true,
	"maximum":               true,
	"exclusiveMaximum":      true,
	"minimum":               true,
	"exclusiveMinimum":      true,
	"maxLength":             true,
	"minLength":             true,
	"pattern":               true,
	"items":                 true,
	"prefixItems":           true,
	"contains":              true,
	"maxItems":              true,
	"minItems":              true,
	"maxContains":           true,
	"minContains":           true,
	"uniqueItems":           true,
	"properties":            true,
	"patternProperties":     true,
	"additionalProperties":  true,
	"unevaluatedProperties": true,
	"required":              true,
	"propertyNames":         true,
	"maxProperties":         true,
	"minProperties":         true,
	"dependentRequired":     true,
	"dependentSchemas":      true,
	"if":                    true,
	"then":                  true,
	"else":                  true,
	"allOf":                 true,
	"anyOf":                 true,
	"oneOf":                 true,
	"not":                   true,
}

// MarshalJSON implements custom JSON marshaling for Schema.
// Keywords captured in Extra are merged into the output alongside the
// modeled fields.
func (s *Schema) MarshalJSON() ([]byte, error) {
	// Fast path: no extras means the struct tags already produce the right shape
	if len(s.Extra) == 0 {
		type Alias Schema
		return json.Marshal((*Alias)(s))
	}

	m := make(map[string]any)

	jsonhelpers.SetIfNotEmpty(m, "$ref", s.Ref)
	jsonhelpers.SetIfNotEmpty(m, "$schema", s.Dialect)
	jsonhelpers.SetIfNotEmpty(m, "$id", s.ID)
	jsonhelpers.SetIfNotEmpty(m, "$anchor", s.Anchor)
	jsonhelpers.SetIfNotEmpty(m, "$dynamicRef", s.DynamicRef)
	jsonhelpers.SetIfNotEmpty(m, "$dynamicAnchor", s.DynamicAnchor)
	jsonhelpers.SetIfNotEmpty(m, "$comment", s.Comment)
	jsonhelpers.SetIfMapNotEmpty(m, "$defs", s.Defs)

	jsonhelpers.SetIfNotEmpty(m, "title", s.Title)
	jsonhelpers.SetIfNotEmpty(m, "description", s.Description)
	jsonhelpers.SetIfNotNil(m, "default", s.Default)
	jsonhelpers.SetIfSliceNotEmpty(m, "examples", s.Examples)
	jsonhelpers.SetIfTrue(m, "deprecated", s.Deprecated)
	jsonhelpers.SetIfTrue(m, "readOnly", s.ReadOnly)
	jsonhelpers.SetIfTrue(m, "writeOnly", s.WriteOnly)

	jsonhelpers.SetIfNotNil(m, "type", s.Type)
	jsonhelpers.SetIfSliceNotEmpty(m, "enum", s.Enum)
	jsonhelpers.SetIfNotNil(m, "const", s.Const)
	jsonhelpers.SetIfNotEmpty(m, "format", s.Format)

	jsonhelpers.SetIfNotNil(m, "multipleOf", ptrValue(s.MultipleOf))
	jsonhelpers.SetIfNotNil(m, "maximum", ptrValue(s.Maximum))
	jsonhelpers.SetIfNotNil(m, "exclusiveMaximum", s.ExclusiveMaximum)
	jsonhelpers.SetIfNotNil(m, "minimum", ptrValue(s.Minimum))
	jsonhelpers.SetIfNotNil(m, "exclusiveMinimum", s.ExclusiveMinimum)

	jsonhelpers.SetIfNotNil(m, "maxLength", ptrValue(s.MaxLength))
	jsonhelpers.SetIfNotNil(m, "minLength", ptrValue(s.MinLength))
	jsonhelpers.SetIfNotEmpty(m, "pattern", s.Pattern)

	jsonhelpers.SetIfNotNil(m, "items", s.Items)
	jsonhelpers.SetIfSliceNotEmpty(m, "prefixItems", s.PrefixItems)
	if s.Contains != nil {
		m["contains"] = s.Contains
	}
	jsonhelpers.SetIfNotNil(m, "maxItems", ptrValue(s.MaxItems))
	jsonhelpers.SetIfNotNil(m, "minItems", ptrValue(s.MinItems))
	jsonhelpers.SetIfNotNil(m, "maxContains", ptrValue(s.MaxContains))
	jsonhelpers.SetIfNotNil(m, "minContains", ptrValue(s.MinContains))
	jsonhelpers.SetIfTrue(m, "uniqueItems", s.UniqueItems)

	jsonhelpers.SetIfMapNotEmpty(m, "properties", s.Properties)
	jsonhelpers.SetIfMapNotEmpty(m, "patternProperties", s.PatternProperties)
	jsonhelpers.SetIfNotNil(m, "additionalProperties", s.AdditionalProperties)
	jsonhelpers.SetIfNotNil(m, "unevaluatedProperties", s.UnevaluatedProperties)
	jsonhelpers.SetIfSliceNotEmpty(m, "required", s.Required)
	if s.PropertyNames != nil {
		m["propertyNames"] = s.PropertyNames
	}
	jsonhelpers.SetIfNotNil(m, "maxProperties", ptrValue(s.MaxProperties))
	jsonhelpers.SetIfNotNil(m, "minProperties", ptrValue(s.MinProperties))
	jsonhelpers.SetIfMapNotEmpty(m, "dependentRequired", s.DependentRequired)
	jsonhelpers.SetIfMapNotEmpty(m, "dependentSchemas", s.DependentSchemas)

	if s.If != nil {
		m["if"] = s.If
	}
	if s.Then != nil {
		m["then"] = s.Then
	}
	if s.Else != nil {
		m["else"] = s.Else
	}

	jsonhelpers.SetIfSliceNotEmpty(m, "allOf", s.AllOf)
	jsonhelpers.SetIfSliceNotEmpty(m, "anyOf", s.AnyOf)
	jsonhelpers.SetIfSliceNotEmpty(m, "oneOf", s.OneOf)
	if s.Not != nil {
		m["not"] = s.Not
	}

	return jsonhelpers.MarshalWithExtras(m, s.Extra)
}

// ptrValue converts a typed pointer to any, mapping nil pointers to nil
// interfaces so SetIfNotNil can skip them.
func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// UnmarshalJSON implements custom JSON unmarshaling for Schema.
//
// Keywords that accept either a subschema or a boolean (items,
// additionalProperties, unevaluatedProperties) are decoded into *Schema when
// the source holds an object, so downstream traversal never sees generic
// maps. Keywords the struct does not model are captured into Extra.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type Alias Schema
	aux := struct {
		Items                 json.RawMessage `json:"items,omitempty"`
		AdditionalProperties  json.RawMessage `json:"additionalProperties,omitempty"`
		UnevaluatedProperties json.RawMessage `json:"unevaluatedProperties,omitempty"`
		*Alias
	}{Alias: (*Alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if s.Items, err = decodeSchemaOrBool(aux.Items); err != nil {
		return fmt.Errorf("items: %w", err)
	}
	if s.AdditionalProperties, err = decodeSchemaOrBool(aux.AdditionalProperties); err != nil {
		return fmt.Errorf("additionalProperties: %w", err)
	}
	if s.UnevaluatedProperties, err = decodeSchemaOrBool(aux.UnevaluatedProperties); err != nil {
		return fmt.Errorf("unevaluatedProperties: %w", err)
	}

	s.Extra = jsonhelpers.ExtractUnknown(data, knownSchemaFields)
	return nil
}

// decodeSchemaOrBool decodes a raw JSON value that can be either a subschema
// or a bool, as used by items, additionalProperties, and
// unevaluatedProperties.
func decodeSchemaOrBool(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '{':
		sub := new(Schema)
		if err := json.Unmarshal(raw, sub); err != nil {
			return nil, err
		}
		return sub, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case 'n':
		// JSON null: treat as absent
		return nil, nil
	default:
		// Unexpected shape, decode generically and pass through
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
