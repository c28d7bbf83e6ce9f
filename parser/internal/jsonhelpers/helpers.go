// Package jsonhelpers provides helper functions for JSON marshaling and unmarshaling
// with support for passthrough fields in JSON Schema fragments.
//
// This package reduces boilerplate code in custom JSON marshal/unmarshal implementations
// while preserving keywords that are not modeled by the typed schema structs.
package jsonhelpers

import (
	"encoding/json"
	"maps"
)

// MarshalWithExtras marshals a base map while merging in passthrough fields.
// This is used in custom MarshalJSON implementations to combine known fields
// with unknown keywords captured during unmarshaling.
//
// Example:
//
//	func (s *Schema) MarshalJSON() ([]byte, error) {
//	    base := map[string]any{
//	        "type": s.Type,
//	        "format": s.Format,
//	    }
//	    return jsonhelpers.MarshalWithExtras(base, s.Extra)
//	}
func MarshalWithExtras(base map[string]any, extras map[string]any) ([]byte, error) {
	maps.Copy(base, extras)
	return json.Marshal(base)
}

// UnmarshalExtras extracts passthrough fields from a JSON object after known fields
// have been removed. This is used in custom UnmarshalJSON implementations.
//
// The knownFields map should contain all known field names as keys. Any fields
// not in this map will be returned as passthrough fields.
func UnmarshalExtras(data map[string]any, knownFields map[string]bool) map[string]any {
	extras := make(map[string]any)
	for k, v := range data {
		if !knownFields[k] {
			extras[k] = v
		}
	}
	if len(extras) == 0 {
		return nil
	}
	return extras
}

// SetIfNotEmpty sets a field in the map only if the value is not empty.
// This is useful for MarshalJSON to avoid adding empty fields to JSON output.
func SetIfNotEmpty(m map[string]any, key string, value string) {
	if value != "" {
		m[key] = value
	}
}

// SetIfNotNil sets a field in the map only if the value is not nil.
// This is useful for MarshalJSON to avoid adding nil fields to JSON output.
func SetIfNotNil(m map[string]any, key string, value any) {
	if value != nil {
		m[key] = value
	}
}

// SetIfTrue sets a boolean field in the map only if the value is true.
// This is useful for MarshalJSON to avoid adding false boolean fields.
func SetIfTrue(m map[string]any, key string, value bool) {
	if value {
		m[key] = value
	}
}

// SetIfSliceNotEmpty sets a slice field in the map only if the slice has length > 0.
// This is useful for MarshalJSON to avoid adding empty slice fields.
// Note: In Go, both nil slices and empty slices should be omitted from JSON output.
func SetIfSliceNotEmpty[T any](m map[string]any, key string, value []T) {
	if len(value) > 0 {
		m[key] = value
	}
}

// SetIfMapNotEmpty sets a map field in the map only if the map has length > 0.
// This is useful for MarshalJSON to avoid adding empty map fields.
// Note: In Go, both nil maps and empty maps should be omitted from JSON output.
func SetIfMapNotEmpty[K comparable, V any](m map[string]any, key string, value map[K]V) {
	if len(value) > 0 {
		m[key] = value
	}
}

// ExtractUnknown extracts keywords not present in knownFields from raw JSON data.
// This is the common pattern used in UnmarshalJSON methods to capture keywords
// the typed struct does not model, so they survive a marshal round trip.
//
// Returns nil if no unknown keywords are found or if the data cannot be parsed.
// This function never returns an error - parsing failures result in nil extras.
//
// Example:
//
//	func (s *Schema) UnmarshalJSON(data []byte) error {
//	    type Alias Schema
//	    if err := json.Unmarshal(data, (*Alias)(s)); err != nil {
//	        return err
//	    }
//	    s.Extra = jsonhelpers.ExtractUnknown(data, knownSchemaFields)
//	    return nil
//	}
func ExtractUnknown(data []byte, knownFields map[string]bool) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}

	var extra map[string]any
	for k, v := range m {
		if !knownFields[k] {
			if extra == nil {
				extra = make(map[string]any)
			}
			extra[k] = v
		}
	}
	return extra
}
