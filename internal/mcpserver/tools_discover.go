package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formshape/formshape/config"
	"github.com/formshape/formshape/discovery"
	"github.com/formshape/formshape/naming"
)

type discoverInput struct {
	Schema   schemaInput `json:"schema"             jsonschema:"The schema document to discover types in"`
	Config   configInput `json:"config"             jsonschema:"The generation config whose categories to resolve"`
	Category string      `json:"category,omitempty" jsonschema:"Restrict output to a single category key"`
}

type discoveredType struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
}

type discoveredCategory struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Types       []discoveredType `json:"types"`
}

type discoverOutput struct {
	Categories []discoveredCategory `json:"categories"`
	TypeCount  int                  `json:"type_count"`
}

func handleDiscoverTypes(_ context.Context, _ *mcp.CallToolRequest, input discoverInput) (*mcp.CallToolResult, discoverOutput, error) {
	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), discoverOutput{}, nil
	}

	conf, err := input.Config.resolve()
	if err != nil {
		return errResult(err), discoverOutput{}, nil
	}

	categories := conf.Categories
	if input.Category != "" {
		cat, ok := conf.Category(input.Category)
		if !ok {
			return errResult(fmt.Errorf("category %q not found in configuration", input.Category)), discoverOutput{}, nil
		}
		categories = []config.Category{*cat}
	}

	defs := result.Definitions()
	output := discoverOutput{
		Categories: make([]discoveredCategory, 0, len(categories)),
	}
	for _, category := range categories {
		name := category.Name
		if name == "" {
			name = naming.Format(category.Key)
		}
		entries := discovery.Discover(category, defs)
		dc := discoveredCategory{
			Key:         category.Key,
			Name:        name,
			Description: category.Description,
			Types:       make([]discoveredType, 0, len(entries)),
		}
		for _, entry := range entries {
			dc.Types = append(dc.Types, discoveredType{
				Key:         entry.Key,
				DisplayName: entry.DisplayName,
				Description: entry.Description,
			})
		}
		output.TypeCount += len(entries)
		output.Categories = append(output.Categories, dc)
	}

	return nil, output, nil
}
