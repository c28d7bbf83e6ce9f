package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formshape/formshape/extractor"
)

type extractInput struct {
	Schema schemaInput `json:"schema"           jsonschema:"The schema document to extract from"`
	Type   string      `json:"type"             jsonschema:"The definition name to extract (e.g. HTTPRoute)"`
	Config configInput `json:"config,omitempty" jsonschema:"Optional generation config whose overrides and field descriptions to apply"`
}

type extractOutput struct {
	TypeName    string   `json:"type_name"`
	Document    string   `json:"document"`
	Closure     []string `json:"closure,omitempty"`
	Overridden  []string `json:"overridden,omitempty"`
	ChangeCount int      `json:"change_count"`
}

func handleExtractType(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	if input.Type == "" {
		return errResult(fmt.Errorf("type must be provided")), extractOutput{}, nil
	}

	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	x := extractor.New()
	if !input.Config.empty() {
		conf, err := input.Config.resolve()
		if err != nil {
			return errResult(err), extractOutput{}, nil
		}
		x.Overrides = conf.Overrides
		x.FieldDescriptions = conf.FieldTable()
	}

	extracted, err := x.Extract(result.Document, input.Type)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	data, err := json.MarshalIndent(extracted.Document, "", "  ")
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	output := extractOutput{
		TypeName:    extracted.TypeName,
		Document:    string(data),
		Closure:     extracted.Closure,
		Overridden:  extracted.Overridden,
		ChangeCount: extracted.Changes.Count(),
	}
	return nil, output, nil
}
