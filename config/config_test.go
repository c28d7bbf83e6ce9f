package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/schemaerrors"
	"github.com/formshape/formshape/transform"
)

// TestParse tests parsing configuration documents.
func TestParse(t *testing.T) {
	t.Run("valid YAML config", func(t *testing.T) {
		data := []byte(`
categories:
  - key: gateways
    name: Gateways
    description: Entry points that accept traffic.
    itemType: Gateway
    typePatterns: [Gateway, Listener]
    exclude: [GatewayStatus]
  - key: routes
    typePatterns: [Route]
overrides:
  TLSConfig:
    type: object
    title: TLS
fieldDescriptions:
  replicas: Number of desired instances.
`)
		c, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}

		if len(c.Categories) != 2 {
			t.Fatalf("len(Categories) = %d, want 2", len(c.Categories))
		}
		first := c.Categories[0]
		if first.Key != "gateways" {
			t.Errorf("Key = %q, want %q", first.Key, "gateways")
		}
		if first.ItemType != "Gateway" {
			t.Errorf("ItemType = %q, want %q", first.ItemType, "Gateway")
		}
		if len(first.TypePatterns) != 2 || first.TypePatterns[1] != "Listener" {
			t.Errorf("TypePatterns = %v, want [Gateway Listener]", first.TypePatterns)
		}
		if len(first.Exclude) != 1 || first.Exclude[0] != "GatewayStatus" {
			t.Errorf("Exclude = %v, want [GatewayStatus]", first.Exclude)
		}

		override, ok := c.Overrides["TLSConfig"]
		if !ok || override == nil {
			t.Fatal("expected TLSConfig override")
		}
		if override.Title != "TLS" {
			t.Errorf("override Title = %q, want %q", override.Title, "TLS")
		}
		if c.FieldDescriptions["replicas"] == "" {
			t.Error("expected replicas field description")
		}
	})

	t.Run("valid JSON config", func(t *testing.T) {
		data := []byte(`{
			"categories": [
				{"key": "policies", "typePatterns": ["Policy"]}
			]
		}`)
		c, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if len(c.Categories) != 1 || c.Categories[0].Key != "policies" {
			t.Errorf("Categories = %+v, want one policies entry", c.Categories)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := Parse([]byte(`categories: [invalid`))
		if err == nil {
			t.Fatal("expected error for invalid YAML")
		}
		if !errors.Is(err, schemaerrors.ErrParse) {
			t.Errorf("error = %v, want ErrParse match", err)
		}
	})
}

// TestLoad tests loading configuration files.
func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "formshape.yaml")
		content := []byte("categories:\n  - key: routes\n    typePatterns: [Route]\n")
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatal(err)
		}

		c, err := Load(path)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if len(c.Categories) != 1 {
			t.Errorf("len(Categories) = %d, want 1", len(c.Categories))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		var pe *schemaerrors.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error = %T, want *schemaerrors.ParseError", err)
		}
		if pe.Path == "" {
			t.Error("ParseError.Path should carry the file path")
		}
	})

	t.Run("parse failure carries path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("categories: [broken"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		var pe *schemaerrors.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error = %T, want *schemaerrors.ParseError", err)
		}
		if pe.Path != path {
			t.Errorf("ParseError.Path = %q, want %q", pe.Path, path)
		}
	})
}

// TestValidate tests structural validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		options []string
	}{
		{
			name:    "no categories",
			config:  Config{},
			options: []string{"categories"},
		},
		{
			name: "valid single category",
			config: Config{
				Categories: []Category{{Key: "routes", TypePatterns: []string{"Route"}}},
			},
		},
		{
			name: "item type only is valid",
			config: Config{
				Categories: []Category{{Key: "gateways", ItemType: "Gateway"}},
			},
		},
		{
			name: "missing key",
			config: Config{
				Categories: []Category{{TypePatterns: []string{"Route"}}},
			},
			options: []string{"categories[0].key"},
		},
		{
			name: "duplicate key",
			config: Config{
				Categories: []Category{
					{Key: "routes", TypePatterns: []string{"Route"}},
					{Key: "routes", TypePatterns: []string{"Rule"}},
				},
			},
			options: []string{"categories[1].key"},
		},
		{
			name: "no item type and no patterns",
			config: Config{
				Categories: []Category{{Key: "empty"}},
			},
			options: []string{"categories[0]"},
		},
		{
			name: "empty pattern entry",
			config: Config{
				Categories: []Category{{Key: "routes", TypePatterns: []string{"Route", ""}}},
			},
			options: []string{"categories[0].typePatterns[1]"},
		},
		{
			name: "nil override",
			config: Config{
				Categories: []Category{{Key: "routes", TypePatterns: []string{"Route"}}},
				Overrides:  map[string]*parser.Schema{"TLSConfig": nil},
			},
			options: []string{"overrides.TLSConfig"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.config.Validate()

			var options []string
			for _, e := range errs {
				if !errors.Is(e, schemaerrors.ErrConfig) {
					t.Errorf("error %v should match ErrConfig", e)
				}
				options = append(options, e.Option)
			}

			if len(options) != len(tt.options) {
				t.Fatalf("got errors %v, want options %v", errs, tt.options)
			}
			for i, want := range tt.options {
				if options[i] != want {
					t.Errorf("error[%d].Option = %q, want %q", i, options[i], want)
				}
			}

			if tt.config.IsValid() != (len(tt.options) == 0) {
				t.Errorf("IsValid = %v, inconsistent with Validate", tt.config.IsValid())
			}
		})
	}
}

// TestCategoryLookup tests finding categories by key.
func TestCategoryLookup(t *testing.T) {
	c := Config{
		Categories: []Category{
			{Key: "gateways"},
			{Key: "routes"},
		},
	}

	category, ok := c.Category("routes")
	if !ok {
		t.Fatal("expected to find routes category")
	}
	if category.Key != "routes" {
		t.Errorf("Key = %q, want %q", category.Key, "routes")
	}

	if _, ok := c.Category("absent"); ok {
		t.Error("expected lookup miss for absent key")
	}
}

// TestFieldTable tests merging user descriptions over the built-in table.
func TestFieldTable(t *testing.T) {
	c := Config{
		FieldDescriptions: map[string]string{
			"port":     "Custom port text.",
			"replicas": "Number of desired instances.",
		},
	}

	table := c.FieldTable()

	if table["port"] != "Custom port text." {
		t.Errorf("user entry should win: port = %q", table["port"])
	}
	if table["replicas"] != "Number of desired instances." {
		t.Errorf("user-only entry missing: replicas = %q", table["replicas"])
	}
	if table["name"] != transform.DefaultFieldDescriptions["name"] {
		t.Errorf("built-in entry missing: name = %q", table["name"])
	}

	// The merge must not mutate the built-in table.
	if transform.DefaultFieldDescriptions["port"] == "Custom port text." {
		t.Error("built-in table was mutated")
	}
}
