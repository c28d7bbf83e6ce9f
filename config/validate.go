package config

import (
	"fmt"

	"github.com/formshape/formshape/internal/maputil"
	"github.com/formshape/formshape/schemaerrors"
)

// Validate checks a configuration for structural errors.
//
// Returns a slice of configuration errors; an empty slice indicates the
// config is valid. Validation checks include:
//   - At least one category
//   - Unique, non-empty category keys
//   - Each category names an item type or at least one pattern
//   - No empty pattern entries (an empty substring matches every name)
//   - No nil override fragments
func (c *Config) Validate() []*schemaerrors.ConfigError {
	var errs []*schemaerrors.ConfigError

	if len(c.Categories) == 0 {
		errs = append(errs, &schemaerrors.ConfigError{
			Option:  "categories",
			Message: "at least one category is required",
		})
	}

	seen := make(map[string]int, len(c.Categories))
	for i, category := range c.Categories {
		prefix := fmt.Sprintf("categories[%d]", i)

		if category.Key == "" {
			errs = append(errs, &schemaerrors.ConfigError{
				Option:  prefix + ".key",
				Message: "key is required",
			})
		} else if first, dup := seen[category.Key]; dup {
			errs = append(errs, &schemaerrors.ConfigError{
				Option:  prefix + ".key",
				Value:   category.Key,
				Message: fmt.Sprintf("duplicate key, already used by categories[%d]", first),
			})
		} else {
			seen[category.Key] = i
		}

		if category.ItemType == "" && len(category.TypePatterns) == 0 {
			errs = append(errs, &schemaerrors.ConfigError{
				Option:  prefix,
				Message: "category must name an itemType or at least one typePattern",
			})
		}

		for j, pattern := range category.TypePatterns {
			if pattern == "" {
				errs = append(errs, &schemaerrors.ConfigError{
					Option:  fmt.Sprintf("%s.typePatterns[%d]", prefix, j),
					Message: "pattern must not be empty",
				})
			}
		}
	}

	for _, name := range maputil.SortedKeys(c.Overrides) {
		if c.Overrides[name] == nil {
			errs = append(errs, &schemaerrors.ConfigError{
				Option:  "overrides." + name,
				Message: "override fragment must not be null",
			})
		}
	}

	return errs
}

// IsValid reports whether the config has no validation errors.
func (c *Config) IsValid() bool {
	return len(c.Validate()) == 0
}
