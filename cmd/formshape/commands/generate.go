package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/formshape/formshape"
	"github.com/formshape/formshape/generator"
	"github.com/formshape/formshape/internal/cliutil"
	"github.com/formshape/formshape/parser"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Config     string
	Output     string
	DryRun     bool
	Strict     bool
	NoWarnings bool
	Verbose    bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Config, "c", "", "generation config file (required)")
	fs.StringVar(&flags.Config, "config", "", "generation config file (required)")
	fs.StringVar(&flags.Output, "o", "", "output directory for generated documents")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated documents")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report what would be written without writing anything")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log generation progress to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log generation progress to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: formshape generate [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Generate standalone form-renderer-safe schema documents from a base schema.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  formshape generate -config formshape.yaml -o ./schemas config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape generate -config formshape.yaml --dry-run config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape generate -config formshape.yaml -o ./schemas https://example.com/schema.json\n")
		cliutil.Writef(fs.Output(), "  cat schema.json | formshape generate -config formshape.yaml -o ./schemas -\n")
		cliutil.Writef(fs.Output(), "\nOutput Layout:\n")
		cliutil.Writef(fs.Output(), "  One directory per configured category, each holding one JSON document\n")
		cliutil.Writef(fs.Output(), "  per discovered type plus an index.json listing them. Stale .json files\n")
		cliutil.Writef(fs.Output(), "  from earlier runs are deleted.\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  Use '-' as the file path to read the base schema from stdin.\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Generation successful\n")
		cliutil.Writef(fs.Output(), "  1    Generation failed or produced error issues\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path, URL, or '-' for stdin")
	}

	schemaPath := fs.Arg(0)

	if flags.Config == "" {
		fs.Usage()
		return fmt.Errorf("generation config file is required (use -c or --config)")
	}

	if flags.Output == "" && !flags.DryRun {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output, or --dry-run)")
	}

	// Generate the documents with timing
	startTime := time.Now()
	var result *generator.GenerateResult
	var err error

	genOpts := []generator.Option{
		generator.WithConfigFile(flags.Config),
		generator.WithStrictMode(flags.Strict),
		generator.WithIncludeInfo(!flags.NoWarnings),
	}
	if flags.Verbose {
		genOpts = append(genOpts, generator.WithLogger(debugLogger()))
	}

	if schemaPath == StdinFilePath {
		p := parser.New()
		parseResult, parseErr := p.ParseReader(os.Stdin)
		if parseErr != nil {
			return fmt.Errorf("parsing stdin: %w", parseErr)
		}
		genOpts = append(genOpts, generator.WithParsed(parseResult))
	} else {
		genOpts = append(genOpts, generator.WithFilePath(schemaPath))
	}

	result, err = generator.GenerateWithOptions(genOpts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating documents: %w", err)
	}

	// Print results
	fmt.Printf("Form Schema Generator\n")
	fmt.Printf("=====================\n\n")
	fmt.Printf("formshape version: %s\n", formshape.Version())
	fmt.Printf("Schema: %s\n", FormatSchemaPath(schemaPath))
	fmt.Printf("Dialect: %s\n", result.Dialect)
	fmt.Printf("Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	fmt.Printf("Types: %d\n", result.TypeCount)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	// Print per-category summary
	fmt.Printf("Categories (%d):\n", len(result.Categories))
	for _, cat := range result.Categories {
		fmt.Printf("  %s: %d type(s), %d change(s)\n", cat.Name, len(cat.Types), cat.ChangeCount)
	}
	fmt.Println()

	if flags.DryRun {
		fmt.Printf("Planned Files (%d):\n", len(result.Files))
		for _, file := range result.Files {
			fmt.Printf("  - %s (%d bytes)\n", filepath.Join(file.Category, file.Name), len(file.Content))
		}
		fmt.Println()
		fmt.Printf("Dry run: nothing written\n")
		return nil
	}

	// Write files
	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	// Print generated files
	fmt.Printf("Generated Files (%d):\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("  - %s (%d bytes)\n", filepath.Join(flags.Output, file.Category, file.Name), len(file.Content))
	}
	fmt.Println()

	if len(result.StaleRemoved) > 0 {
		fmt.Printf("Reclaimed Files (%d):\n", len(result.StaleRemoved))
		for _, stale := range result.StaleRemoved {
			fmt.Printf("  - %s\n", stale)
		}
		fmt.Println()
	}

	// Print summary
	if result.Success {
		fmt.Printf("✓ Generation successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Println()
	} else {
		fmt.Printf("✗ Generation completed with %d error(s)", result.ErrorCount)
		if result.WarningCount > 0 {
			fmt.Printf(", %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		return fmt.Errorf("generation failed with %d error(s)", result.ErrorCount)
	}

	return nil
}

// debugLogger returns a parser.Logger that writes debug-level output to
// stderr, keeping stdout clean for results.
func debugLogger() parser.Logger {
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
