package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/formshape/formshape/config"
	"github.com/formshape/formshape/discovery"
	"github.com/formshape/formshape/internal/cliutil"
	"github.com/formshape/formshape/naming"
	"github.com/formshape/formshape/parser"
)

// DiscoverFlags contains flags for the discover command
type DiscoverFlags struct {
	Config   string
	Category string
	Format   string
	Quiet    bool
}

// DiscoveredCategory is one category's discovery result in structured output.
type DiscoveredCategory struct {
	Key         string           `json:"key" yaml:"key"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Types       []DiscoveredType `json:"types" yaml:"types"`
}

// DiscoveredType is one discovered type in structured output.
type DiscoveredType struct {
	Key         string `json:"key" yaml:"key"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SetupDiscoverFlags creates and configures a FlagSet for the discover command.
// Returns the FlagSet and a DiscoverFlags struct with bound flag variables.
func SetupDiscoverFlags() (*flag.FlagSet, *DiscoverFlags) {
	fs := flag.NewFlagSet("discover", flag.ContinueOnError)
	flags := &DiscoverFlags{}

	fs.StringVar(&flags.Config, "c", "", "generation config file (required)")
	fs.StringVar(&flags.Config, "config", "", "generation config file (required)")
	fs.StringVar(&flags.Category, "category", "", "only discover types for this category key")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the listing, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the listing, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: formshape discover [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "List the types each configured category would produce, without extracting.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  formshape discover -config formshape.yaml config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape discover -config formshape.yaml -category routes config-schema.json\n")
		cliutil.Writef(fs.Output(), "  formshape discover -config formshape.yaml -format json config-schema.json\n")
		cliutil.Writef(fs.Output(), "  cat schema.json | formshape discover -config formshape.yaml -\n")
		cliutil.Writef(fs.Output(), "\nDiscovery Rules:\n")
		cliutil.Writef(fs.Output(), "  A category's explicit item type comes first when the document defines it.\n")
		cliutil.Writef(fs.Output(), "  Remaining definitions follow in sorted order when their name contains any\n")
		cliutil.Writef(fs.Output(), "  of the category's patterns and is not excluded.\n")
	}

	return fs, flags
}

// HandleDiscover executes the discover command
func HandleDiscover(args []string) error {
	fs, flags := SetupDiscoverFlags()

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
		return fmt.Errorf("discover command requires exactly one file path, URL, or '-' for stdin")
	}

	schemaPath := fs.Arg(0)

	if flags.Config == "" {
		fs.Usage()
		return fmt.Errorf("generation config file is required (use -c or --config)")
	}

	conf, err := LoadValidConfig(flags.Config)
	if err != nil {
		return err
	}

	categories := conf.Categories
	if flags.Category != "" {
		cat, ok := conf.Category(flags.Category)
		if !ok {
			return fmt.Errorf("category %q not found in configuration", flags.Category)
		}
		categories = []config.Category{*cat}
	}

	result, err := ParseSchemaDocument(parser.New(), schemaPath)
	if err != nil {
		return err
	}

	discovered := make([]DiscoveredCategory, 0, len(categories))
	typeCount := 0
	for _, cat := range categories {
		name := cat.Name
		if name == "" {
			name = naming.Format(cat.Key)
		}
		dc := DiscoveredCategory{
			Key:         cat.Key,
			Name:        name,
			Description: cat.Description,
		}
		for _, entry := range discovery.Discover(cat, result.Definitions()) {
			dc.Types = append(dc.Types, DiscoveredType{
				Key:         entry.Key,
				DisplayName: entry.DisplayName,
				Description: entry.Description,
			})
		}
		typeCount += len(dc.Types)
		discovered = append(discovered, dc)
	}

	if flags.Format != FormatText {
		return OutputStructured(discovered, flags.Format)
	}

	// Text output: diagnostics to stderr, listing to stdout
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Type Discovery\n")
		cliutil.Writef(os.Stderr, "==============\n\n")
		OutputSchemaHeader(schemaPath, result.Dialect)
		OutputSchemaStats(result.SourceSize, result.Stats, result.LoadTime)
		cliutil.Writef(os.Stderr, "\n")
	}

	for _, dc := range discovered {
		fmt.Printf("%s: %s (%d types)\n", dc.Key, dc.Name, len(dc.Types))
		for _, dt := range dc.Types {
			if dt.Description != "" {
				fmt.Printf("  - %s: %s\n", dt.Key, dt.Description)
			} else {
				fmt.Printf("  - %s\n", dt.Key)
			}
		}
	}
	fmt.Printf("\n%d type(s) across %d categories\n", typeCount, len(discovered))

	return nil
}
