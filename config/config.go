package config

import (
	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/transform"
)

// Config is the generation configuration: which categories to produce, which
// fragments collaborators have replaced wholesale, and extra field
// descriptions for the enhancement pass.
type Config struct {
	// Categories is the ordered list of output categories. Generation
	// processes them in this order. At least one category is required.
	Categories []Category `yaml:"categories" json:"categories"`

	// Overrides maps definition names to replacement fragments. An
	// overridden fragment is used verbatim wherever the named definition
	// would appear, bypassing enhancement.
	Overrides map[string]*parser.Schema `yaml:"overrides,omitempty" json:"overrides,omitempty"`

	// FieldDescriptions adds to or replaces entries of the built-in
	// well-known field description table. User entries win on conflict.
	FieldDescriptions map[string]string `yaml:"fieldDescriptions,omitempty" json:"fieldDescriptions,omitempty"`
}

// Category describes one output category: a directory of related type
// schemas plus an index.
type Category struct {
	// Key is the category identifier, used as the output directory name.
	// This field is required and must be unique across categories.
	Key string `yaml:"key" json:"key"`

	// Name is the human-readable category name for the index. When empty,
	// a name is derived from the key.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description is the category description for the index.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// ItemType names the category's primary definition. When present in
	// the definitions table it is always the first discovered type.
	ItemType string `yaml:"itemType,omitempty" json:"itemType,omitempty"`

	// TypePatterns lists substrings matched against definition names.
	// A definition belongs to the category when its name contains any
	// pattern. Matching is case-sensitive.
	TypePatterns []string `yaml:"typePatterns,omitempty" json:"typePatterns,omitempty"`

	// Exclude lists definition names never discovered for this category,
	// even when a pattern matches.
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// Category returns the category with the given key.
func (c *Config) Category(key string) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].Key == key {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// FieldTable returns the built-in well-known field description table merged
// with the config's FieldDescriptions. User entries win on conflict. The
// returned map is a fresh copy.
func (c *Config) FieldTable() map[string]string {
	merged := make(map[string]string, len(transform.DefaultFieldDescriptions)+len(c.FieldDescriptions))
	for name, desc := range transform.DefaultFieldDescriptions {
		merged[name] = desc
	}
	for name, desc := range c.FieldDescriptions {
		merged[name] = desc
	}
	return merged
}
