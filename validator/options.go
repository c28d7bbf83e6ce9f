package validator

import (
	"fmt"

	"github.com/formshape/formshape/internal/options"
	"github.com/formshape/formshape/parser"
)

// Option is a function that configures a validate operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validate operation
type validateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	bytes    []byte
	parsed   *parser.ParseResult

	// Configuration options
	includeWarnings bool
	userAgent       string
	logger          parser.Logger
}

// ValidateWithOptions validates a standalone document using functional
// options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithFilePath("schemas/gateways/Gateway.json"),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := New()
	v.IncludeWarnings = cfg.includeWarnings
	v.UserAgent = cfg.userAgent
	v.Logger = cfg.logger

	switch {
	case cfg.filePath != nil:
		return v.Validate(*cfg.filePath)
	case cfg.bytes != nil:
		return v.ValidateBytes(cfg.bytes)
	case cfg.parsed != nil:
		return v.ValidateParsed(cfg.parsed)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("validator: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		// Set defaults to match Validator defaults from New()
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"validator: must specify an input source (use WithFilePath, WithBytes, or WithParsed)",
		"validator: must specify exactly one input source",
		cfg.filePath != nil, cfg.bytes != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a document file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *validateConfig) error {
		if data == nil {
			return fmt.Errorf("validator: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies an already-parsed document as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *validateConfig) error {
		if result == nil {
			return fmt.Errorf("validator: parse result cannot be nil")
		}
		cfg.parsed = result
		return nil
	}
}

// WithIncludeWarnings enables or disables leftover-shape warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses parser default)
func WithUserAgent(ua string) Option {
	return func(cfg *validateConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets the structured logger for validation diagnostics
// Default: no logging
func WithLogger(l parser.Logger) Option {
	return func(cfg *validateConfig) error {
		cfg.logger = l
		return nil
	}
}
