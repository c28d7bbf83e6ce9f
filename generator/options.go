package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/formshape/formshape/config"
	"github.com/formshape/formshape/internal/options"
	"github.com/formshape/formshape/parser"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	bytes    []byte
	parsed   *parser.ParseResult

	// Configuration document (at most one of these)
	cfg        *config.Config
	configPath *string

	// Output options
	outputDir string
	dryRun    bool

	// Configuration options
	dialect     parser.Dialect
	indent      string
	strictMode  bool
	includeInfo bool
	userAgent   string
	logger      parser.Logger
}

// GenerateWithOptions generates renderer-ready documents using functional
// options. This provides a flexible, extensible API that combines input
// source selection, configuration, and output in a single function call.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("schema.json"),
//	    generator.WithConfigFile("categories.yaml"),
//	    generator.WithOutputDir("./schemas"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	conf := cfg.cfg
	if cfg.configPath != nil {
		conf, err = config.Load(*cfg.configPath)
		if err != nil {
			return nil, err
		}
	}
	if conf != nil {
		if errs := conf.Validate(); len(errs) > 0 {
			joined := make([]error, len(errs))
			for i, e := range errs {
				joined[i] = e
			}
			return nil, fmt.Errorf("generator: invalid configuration: %w", errors.Join(joined...))
		}
	}

	g := FromConfig(conf)
	g.Dialect = cfg.dialect
	g.Indent = cfg.indent
	g.StrictMode = cfg.strictMode
	g.IncludeInfo = cfg.includeInfo
	g.UserAgent = cfg.userAgent
	g.Logger = cfg.logger

	// Route to appropriate generation method based on input source
	var result *GenerateResult
	switch {
	case cfg.filePath != nil:
		result, err = g.Generate(*cfg.filePath)
	case cfg.bytes != nil:
		result, err = g.GenerateBytes(cfg.bytes)
	case cfg.parsed != nil:
		result, err = g.GenerateParsed(cfg.parsed)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("generator: no input source specified")
	}
	if err != nil {
		return result, err
	}

	if cfg.outputDir != "" && !cfg.dryRun {
		if err := result.WriteFiles(cfg.outputDir); err != nil {
			return result, err
		}
	}

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		// Set defaults to match Generator defaults from New()
		indent:      defaultIndent,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath, WithBytes, or WithParsed)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.bytes != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	if cfg.cfg != nil && cfg.configPath != nil {
		return nil, fmt.Errorf("generator: must specify at most one of WithConfig and WithConfigFile")
	}

	return cfg, nil
}

// WithFilePath specifies a schema file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies raw schema document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			return fmt.Errorf("generator: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies an already-parsed document as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		if result == nil {
			return fmt.Errorf("generator: parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithConfig supplies the category and override configuration directly.
// The configuration is validated before generation begins.
func WithConfig(c *config.Config) Option {
	return func(cfg *generateConfig) error {
		if c == nil {
			return fmt.Errorf("generator: config cannot be nil")
		}
		cfg.cfg = c
		return nil
	}
}

// WithConfigFile loads the category and override configuration from a
// YAML or JSON file before generation begins.
func WithConfigFile(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return fmt.Errorf("generator: config file path cannot be empty")
		}
		cfg.configPath = &path
		return nil
	}
}

// WithOutputDir sets the directory the generated files are written to.
// When empty, files are kept in memory on the result and nothing is
// written.
func WithOutputDir(dir string) Option {
	return func(cfg *generateConfig) error {
		cfg.outputDir = dir
		return nil
	}
}

// WithDryRun disables writing even when an output directory is set.
// The result still carries every rendered file.
// Default: false
func WithDryRun(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.dryRun = enabled
		return nil
	}
}

// WithDialect forces the $schema identifier stamped on output documents
// Default: the dialect detected on the source document
func WithDialect(d parser.Dialect) Option {
	return func(cfg *generateConfig) error {
		if d != parser.DialectUnknown && !d.IsValid() {
			return fmt.Errorf("generator: unknown dialect: %d", d)
		}
		cfg.dialect = d
		return nil
	}
}

// WithIndent sets the indentation unit for rendered JSON documents
// Default: two spaces
func WithIndent(indent string) Option {
	return func(cfg *generateConfig) error {
		if strings.Trim(indent, " \t") != "" {
			return fmt.Errorf("generator: indent must contain only spaces and tabs")
		}
		cfg.indent = indent
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any issues)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses parser default)
func WithUserAgent(ua string) Option {
	return func(cfg *generateConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets the structured logger for generation diagnostics
// Default: no logging
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
