package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The schema document to inspect"`
	Limit  int         `json:"limit,omitempty"  jsonschema:"Maximum definition names to return (default 100)"`
	Offset int         `json:"offset,omitempty" jsonschema:"Skip the first N definition names (for pagination)"`
}

type inspectOutput struct {
	Dialect         string   `json:"dialect"`
	DialectURI      string   `json:"dialect_uri,omitempty"`
	Format          string   `json:"format"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	DefinitionCount int      `json:"definition_count"`
	SchemaCount     int      `json:"schema_count"`
	RefCount        int      `json:"ref_count"`
	EnumCount       int      `json:"enum_count"`
	MaxDepth        int      `json:"max_depth"`
	Returned        int      `json:"returned"`
	Definitions     []string `json:"definitions,omitempty"`
	Errors          []string `json:"errors,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

func handleInspectSchema(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		Dialect:         result.Dialect.String(),
		DialectURI:      result.DialectURI,
		Format:          string(result.SourceFormat),
		DefinitionCount: result.Stats.DefinitionCount,
		SchemaCount:     result.Stats.SchemaCount,
		RefCount:        result.Stats.RefCount,
		EnumCount:       result.Stats.EnumCount,
		MaxDepth:        result.Stats.MaxDepth,
		Warnings:        result.Warnings,
	}
	if doc := result.Document; doc != nil {
		output.Title = doc.Title
		output.Description = doc.Description
	}
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, sanitizeError(e))
	}

	defs := result.Definitions()
	names := makeSlice[string](len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	paged := paginate(names, input.Offset, input.Limit)
	output.Returned = len(paged)
	output.Definitions = paged

	return nil, output, nil
}
