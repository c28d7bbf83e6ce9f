package parser

import (
	"go.yaml.in/yaml/v4"
)

// UnmarshalYAML implements custom YAML unmarshaling for Schema.
//
// Mirrors UnmarshalJSON: keywords that accept either a subschema or a
// boolean are decoded into *Schema when the source holds a mapping, so the
// YAML and JSON paths produce identical trees. Unknown keywords are captured
// into Extra by the inline field.
func (s *Schema) UnmarshalYAML(value *yaml.Node) error {
	// Follow alias nodes so the Kind checks below see the real node
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}

	type alias Schema
	if err := value.Decode((*alias)(s)); err != nil {
		return err
	}

	// Re-decode schema-or-bool keywords the generic pass left as plain maps
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		val := value.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if val.Kind != yaml.MappingNode {
			continue
		}
		switch key.Value {
		case "items":
			sub := new(Schema)
			if err := val.Decode(sub); err != nil {
				return err
			}
			s.Items = sub
		case "additionalProperties":
			sub := new(Schema)
			if err := val.Decode(sub); err != nil {
				return err
			}
			s.AdditionalProperties = sub
		case "unevaluatedProperties":
			sub := new(Schema)
			if err := val.Decode(sub); err != nil {
				return err
			}
			s.UnevaluatedProperties = sub
		}
	}
	return nil
}
