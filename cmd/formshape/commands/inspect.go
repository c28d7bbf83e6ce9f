package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/formshape/formshape"
	"github.com/formshape/formshape/internal/cliutil"
	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/walker"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format string
	Refs   bool
}

// InspectReport is the structured output of the inspect command.
type InspectReport struct {
	Schema          string            `json:"schema" yaml:"schema"`
	Dialect         string            `json:"dialect" yaml:"dialect"`
	DialectURI      string            `json:"dialectURI,omitempty" yaml:"dialectURI,omitempty"`
	Format          string            `json:"format" yaml:"format"`
	Title           string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description     string            `json:"description,omitempty" yaml:"description,omitempty"`
	SourceSize      int64             `json:"sourceSize" yaml:"sourceSize"`
	DefinitionCount int               `json:"definitionCount" yaml:"definitionCount"`
	SchemaCount     int               `json:"schemaCount" yaml:"schemaCount"`
	RefCount        int               `json:"refCount" yaml:"refCount"`
	EnumCount       int               `json:"enumCount" yaml:"enumCount"`
	MaxDepth        int               `json:"maxDepth" yaml:"maxDepth"`
	Definitions     []string          `json:"definitions" yaml:"definitions"`
	References      []ReferenceReport `json:"references,omitempty" yaml:"references,omitempty"`
	Warnings        []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ReferenceReport is one $ref occurrence in structured output.
type ReferenceReport struct {
	Ref        string `json:"ref" yaml:"ref"`
	SourcePath string `json:"sourcePath" yaml:"sourcePath"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
// Returns the FlagSet and an InspectFlags struct with bound flag variables.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Refs, "refs", false, "list every $ref with its source path")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: formshape inspect [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Report a schema document's dialect, definitions, and statistics.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  formshape inspect config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape inspect -refs config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape inspect -format json https://example.com/schema.json\n")
		cliutil.Writef(fs.Output(), "  cat schema.json | formshape inspect -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document parsed cleanly\n")
		cliutil.Writef(fs.Output(), "  1    Parsing failed or structural errors found\n")
	}

	return fs, flags
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs, flags := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path, URL, or '-' for stdin")
	}

	schemaPath := fs.Arg(0)

	result, err := ParseSchemaDocument(parser.New(), schemaPath)
	if err != nil {
		return err
	}

	// Always print structural errors to stderr, even in structured mode
	if len(result.Errors) > 0 {
		cliutil.Writef(os.Stderr, "Structural Errors:\n")
		for _, e := range result.Errors {
			cliutil.Writef(os.Stderr, "  - %s\n", e)
		}
		cliutil.Writef(os.Stderr, "\n")
		return fmt.Errorf("schema has %d structural error(s)", len(result.Errors))
	}

	defs := result.Definitions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	var refs []*walker.RefInfo
	if flags.Refs {
		refs, err = walker.CollectRefs(result)
		if err != nil {
			return fmt.Errorf("collecting references: %w", err)
		}
	}

	if flags.Format != FormatText {
		report := InspectReport{
			Schema:          FormatSchemaPath(schemaPath),
			Dialect:         result.Dialect.String(),
			DialectURI:      result.DialectURI,
			Format:          string(result.SourceFormat),
			SourceSize:      result.SourceSize,
			DefinitionCount: result.Stats.DefinitionCount,
			SchemaCount:     result.Stats.SchemaCount,
			RefCount:        result.Stats.RefCount,
			EnumCount:       result.Stats.EnumCount,
			MaxDepth:        result.Stats.MaxDepth,
			Definitions:     names,
			Warnings:        result.Warnings,
		}
		if result.Document != nil {
			report.Title = result.Document.Title
			report.Description = result.Document.Description
		}
		for _, ref := range refs {
			report.References = append(report.References, ReferenceReport{
				Ref:        ref.Ref,
				SourcePath: ref.SourcePath,
				Definition: ref.DefinitionName,
			})
		}
		return OutputStructured(report, flags.Format)
	}

	// Print report
	fmt.Printf("Schema Inspector\n")
	fmt.Printf("================\n\n")
	fmt.Printf("formshape version: %s\n", formshape.Version())
	fmt.Printf("Schema: %s\n", FormatSchemaPath(schemaPath))
	if result.DialectURI != "" {
		fmt.Printf("Dialect: %s (%s)\n", result.Dialect, result.DialectURI)
	} else {
		fmt.Printf("Dialect: %s\n", result.Dialect)
	}
	fmt.Printf("Format: %s\n", result.SourceFormat)
	if result.Document != nil && result.Document.Title != "" {
		fmt.Printf("Title: %s\n", result.Document.Title)
	}
	if result.Document != nil && result.Document.Description != "" {
		fmt.Printf("Description: %s\n", result.Document.Description)
	}
	fmt.Printf("Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	fmt.Printf("Definitions: %d\n", result.Stats.DefinitionCount)
	fmt.Printf("Schemas: %d\n", result.Stats.SchemaCount)
	fmt.Printf("References: %d\n", result.Stats.RefCount)
	fmt.Printf("Enums: %d\n", result.Stats.EnumCount)
	fmt.Printf("Max Depth: %d\n", result.Stats.MaxDepth)
	fmt.Printf("Load Time: %v\n", result.LoadTime)

	if len(names) > 0 {
		fmt.Printf("\nDefinitions (%d):\n", len(names))
		for _, name := range names {
			fmt.Printf("  - %s\n", name)
		}
	}

	if flags.Refs {
		fmt.Printf("\nReferences (%d):\n", len(refs))
		for _, ref := range refs {
			fmt.Printf("  - %s at %s\n", ref.Ref, ref.SourcePath)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", warning)
		}
	}

	return nil
}
