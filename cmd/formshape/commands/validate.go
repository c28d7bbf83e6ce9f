package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/formshape/formshape/internal/cliutil"
	"github.com/formshape/formshape/parser"
	"github.com/formshape/formshape/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Format     string
	NoWarnings bool
}

// ValidateReport is the structured output of the validate command.
type ValidateReport struct {
	Schema       string        `json:"schema" yaml:"schema"`
	Valid        bool          `json:"valid" yaml:"valid"`
	ErrorCount   int           `json:"errorCount" yaml:"errorCount"`
	WarningCount int           `json:"warningCount" yaml:"warningCount"`
	Errors       []IssueReport `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings     []IssueReport `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// IssueReport is one validation issue in structured output.
type IssueReport struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warnings, report errors only")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: formshape validate [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Check a standalone document against the form renderer contract.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nChecks:\n")
		cliutil.Writef(fs.Output(), "  Every $ref resolves in the document's own $defs, no unevaluatedProperties,\n")
		cliutil.Writef(fs.Output(), "  only standard format values, and no additionalProperties: false on an\n")
		cliutil.Writef(fs.Output(), "  immediate oneOf/anyOf member.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  formshape validate schemas/gateways/Gateway.json\n")
		cliutil.Writef(fs.Output(), "  formshape validate -format json schemas/routes/HTTPRoute.json\n")
		cliutil.Writef(fs.Output(), "  cat Gateway.json | formshape validate -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document satisfies the renderer contract\n")
		cliutil.Writef(fs.Output(), "  1    Violations found or the document could not be parsed\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

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
		return fmt.Errorf("validate command requires exactly one file path, URL, or '-' for stdin")
	}

	docPath := fs.Arg(0)

	parsed, err := ParseSchemaDocument(parser.New(), docPath)
	if err != nil {
		return err
	}

	result, err := validator.ValidateWithOptions(
		validator.WithParsed(parsed),
		validator.WithIncludeWarnings(!flags.NoWarnings),
	)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		report := ValidateReport{
			Schema:       FormatSchemaPath(docPath),
			Valid:        result.Valid,
			ErrorCount:   result.ErrorCount,
			WarningCount: result.WarningCount,
		}
		for _, e := range result.Errors {
			report.Errors = append(report.Errors, IssueReport{
				Path: e.Path, Message: e.Message, Value: e.Value,
			})
		}
		for _, w := range result.Warnings {
			report.Warnings = append(report.Warnings, IssueReport{
				Path: w.Path, Message: w.Message, Value: w.Value,
			})
		}
		if err := OutputStructured(report, flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			return fmt.Errorf("document has %d contract violation(s)", result.ErrorCount)
		}
		return nil
	}

	// Print report
	fmt.Printf("Renderer Contract Check\n")
	fmt.Printf("=======================\n\n")
	fmt.Printf("Schema: %s\n", FormatSchemaPath(docPath))
	fmt.Printf("Errors: %d\n", result.ErrorCount)
	fmt.Printf("Warnings: %d\n", result.WarningCount)

	if len(result.Errors) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e.String())
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  %s\n", w.String())
		}
	}

	if !result.Valid {
		return fmt.Errorf("document has %d contract violation(s)", result.ErrorCount)
	}

	fmt.Printf("\n✓ Document satisfies the renderer contract\n")
	return nil
}
