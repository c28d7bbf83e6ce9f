// Package commands provides CLI command handlers for formshape.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	formshape "github.com/formshape/formshape"
	"github.com/formshape/formshape/config"
	"github.com/formshape/formshape/internal/cliutil"
	"github.com/formshape/formshape/parser"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateDocumentFormat validates an output format for commands that emit
// a schema document, where plain text makes no sense.
func ValidateDocumentFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	// Get absolute path of output file
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		cliutil.Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// MarshalDocument marshals a document to bytes in the specified format
func MarshalDocument(doc any, format string) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FormatSchemaPath returns a display-friendly path for the schema document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSchemaPath(schemaPath string) string {
	if schemaPath == StdinFilePath {
		return "<stdin>"
	}
	return schemaPath
}

// LoadValidConfig loads a generation config file and validates it.
// Validation failures are joined into a single error.
func LoadValidConfig(path string) (*config.Config, error) {
	conf, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if errs := conf.Validate(); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(joined...))
	}
	return conf, nil
}

// ParseSchemaDocument parses a schema from a file path, URL, or stdin.
// The path StdinFilePath reads from os.Stdin.
func ParseSchemaDocument(p *parser.Parser, schemaPath string) (*parser.ParseResult, error) {
	if schemaPath == StdinFilePath {
		result, err := p.ParseReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("parsing stdin: %w", err)
		}
		return result, nil
	}
	result, err := p.Parse(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return result, nil
}

// OutputSchemaHeader outputs the common schema document header to stderr.
// This includes formshape version, schema path, and dialect.
func OutputSchemaHeader(schemaPath string, dialect parser.Dialect) {
	cliutil.Writef(os.Stderr, "formshape version: %s\n", formshape.Version())
	cliutil.Writef(os.Stderr, "Schema: %s\n", FormatSchemaPath(schemaPath))
	cliutil.Writef(os.Stderr, "Dialect: %s\n", dialect)
}

// OutputSchemaStats outputs the common schema document statistics to stderr.
// This includes source size, definition count, schema count, and load time.
func OutputSchemaStats(sourceSize int64, stats parser.DocumentStats, loadTime any) {
	cliutil.Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	cliutil.Writef(os.Stderr, "Definitions: %d\n", stats.DefinitionCount)
	cliutil.Writef(os.Stderr, "Schemas: %d\n", stats.SchemaCount)
	cliutil.Writef(os.Stderr, "References: %d\n", stats.RefCount)
	cliutil.Writef(os.Stderr, "Enums: %d\n", stats.EnumCount)
	cliutil.Writef(os.Stderr, "Load Time: %v\n", loadTime)
}
