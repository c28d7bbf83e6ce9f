package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocumentFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"text rejected", FormatText, true},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestMarshalDocument(t *testing.T) {
	doc := map[string]string{"key": "value"}

	t.Run("json format", func(t *testing.T) {
		data, err := MarshalDocument(doc, FormatJSON)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) == 0 {
			t.Error("expected non-empty output")
		}
		if !strings.Contains(string(data), `"key": "value"`) {
			t.Errorf("expected indented JSON, got %s", data)
		}
	})

	t.Run("yaml format", func(t *testing.T) {
		data, err := MarshalDocument(doc, FormatYAML)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(data), "key: value") {
			t.Errorf("expected YAML output, got %s", data)
		}
	})
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"test": "value"}

	t.Run("invalid format", func(t *testing.T) {
		err := OutputStructured(data, "invalid")
		if err == nil {
			t.Error("expected error for invalid format")
		}
	})

	t.Run("text rejected", func(t *testing.T) {
		err := OutputStructured(data, FormatText)
		if err == nil {
			t.Error("expected error for text format")
		}
	})
}

func TestFormatSchemaPath(t *testing.T) {
	if got := FormatSchemaPath(StdinFilePath); got != "<stdin>" {
		t.Errorf("expected <stdin>, got %q", got)
	}
	if got := FormatSchemaPath("schema.json"); got != "schema.json" {
		t.Errorf("expected schema.json, got %q", got)
	}
}

func TestLoadValidConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		conf, err := LoadValidConfig(writeTestConfig(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(conf.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(conf.Categories))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadValidConfig("/nonexistent/formshape.yaml")
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !strings.Contains(err.Error(), "loading configuration") {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		content := "categories:\n  - name: No Key\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadValidConfig(path)
		if err == nil {
			t.Fatal("expected error for config without category key")
		}
		if !strings.Contains(err.Error(), "invalid configuration") {
			t.Errorf("unexpected error message: %v", err)
		}
	})
}

func TestValidateOutputPath(t *testing.T) {
	t.Run("overwrites input", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.json")
		err := ValidateOutputPath(path, []string{path})
		if err == nil {
			t.Error("expected error when output overwrites input")
		}
	})

	t.Run("distinct paths", func(t *testing.T) {
		dir := t.TempDir()
		err := ValidateOutputPath(filepath.Join(dir, "out.json"), []string{filepath.Join(dir, "in.json")})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRejectSymlinkOutput(t *testing.T) {
	t.Run("nonexistent path", func(t *testing.T) {
		if err := RejectSymlinkOutput(filepath.Join(t.TempDir(), "new.json")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := RejectSymlinkOutput(path); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("symlink", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.json")
		if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		link := filepath.Join(dir, "link.json")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		if err := RejectSymlinkOutput(link); err == nil {
			t.Error("expected error for symlink output")
		}
	})
}
