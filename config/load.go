package config

import (
	"errors"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/formshape/formshape/schemaerrors"
)

// Parse parses a configuration from YAML or JSON bytes.
//
// The format is detected automatically; yaml.Unmarshal accepts both. The
// parsed config is not validated, call [Config.Validate] before use.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &schemaerrors.ParseError{
			Message: "invalid configuration document",
			Cause:   err,
		}
	}
	return &c, nil
}

// Load parses a configuration from a file path. Supports both YAML
// (.yaml, .yml) and JSON (.json) files.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &schemaerrors.ParseError{
			Path:    path,
			Message: "cannot read configuration file",
			Cause:   err,
		}
	}

	c, err := Parse(data)
	if err != nil {
		var pe *schemaerrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, err
	}
	return c, nil
}

// Marshal serializes a configuration to YAML bytes.
func Marshal(c *Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, &schemaerrors.ConfigError{
			Message: "cannot marshal configuration",
			Cause:   err,
		}
	}
	return data, nil
}
