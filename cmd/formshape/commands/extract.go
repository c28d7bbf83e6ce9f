package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/formshape/formshape/extractor"
	"github.com/formshape/formshape/internal/cliutil"
	"github.com/formshape/formshape/parser"
)

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Type   string
	Config string
	Format string
	Output string
	Quiet  bool
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
// Returns the FlagSet and an ExtractFlags struct with bound flag variables.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.StringVar(&flags.Type, "t", "", "definition name to extract (required)")
	fs.StringVar(&flags.Type, "type", "", "definition name to extract (required)")
	fs.StringVar(&flags.Config, "c", "", "generation config file for overrides and field descriptions")
	fs.StringVar(&flags.Config, "config", "", "generation config file for overrides and field descriptions")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json, yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: formshape extract [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Extract one definition as a standalone form-renderer-safe schema document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  formshape extract -type HTTPRoute config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape extract -type Gateway -config formshape.yaml config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape extract -type Gateway -o Gateway.json config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape extract -type Gateway -format yaml config-schema.json\n")
		cliutil.Writef(fs.Output(), "  cat schema.json | formshape extract -q -type Gateway -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The output document embeds every definition the type references\n")
		cliutil.Writef(fs.Output(), "  - With --config, override fragments replace their definitions verbatim\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Extraction successful\n")
		cliutil.Writef(fs.Output(), "  1    Type not found or extraction failed\n")
	}

	return fs, flags
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("extract command requires exactly one file path, URL, or '-' for stdin")
	}

	schemaPath := fs.Arg(0)

	if flags.Type == "" {
		fs.Usage()
		return fmt.Errorf("type name is required (use -t or --type)")
	}

	x := extractor.New()
	if flags.Config != "" {
		conf, err := LoadValidConfig(flags.Config)
		if err != nil {
			return err
		}
		x.Overrides = conf.Overrides
		x.FieldDescriptions = conf.FieldTable()
	}

	result, err := ParseSchemaDocument(parser.New(), schemaPath)
	if err != nil {
		return err
	}

	startTime := time.Now()
	extracted, err := x.Extract(result.Document, flags.Type)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("extracting type: %w", err)
	}

	// Print diagnostic messages (to stderr to keep stdout clean for pipelining)
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Schema Extractor\n")
		cliutil.Writef(os.Stderr, "================\n\n")
		OutputSchemaHeader(schemaPath, result.Dialect)
		cliutil.Writef(os.Stderr, "Type: %s\n", extracted.TypeName)
		if len(extracted.Closure) > 0 {
			cliutil.Writef(os.Stderr, "Closure: %s\n", strings.Join(extracted.Closure, ", "))
		}
		if len(extracted.Overridden) > 0 {
			cliutil.Writef(os.Stderr, "Overridden: %s\n", strings.Join(extracted.Overridden, ", "))
		}
		cliutil.Writef(os.Stderr, "Changes: %d\n", extracted.Changes.Count())
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
	}

	// Write output
	data, err := MarshalDocument(extracted.Document, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling extracted document: %w", err)
	}

	if flags.Output != "" {
		inputs := []string{schemaPath}
		if flags.Config != "" {
			inputs = append(inputs, flags.Config)
		}
		cleaned := filepath.Clean(flags.Output)
		if err := ValidateOutputPath(cleaned, inputs); err != nil {
			return err
		}
		if err := RejectSymlinkOutput(cleaned); err != nil {
			return err
		}
		if err := os.WriteFile(cleaned, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Output written to: %s\n", cleaned)
		}
	} else {
		// Write to stdout
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing extracted document to stdout: %w", err)
		}
	}

	return nil
}
