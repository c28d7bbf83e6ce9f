package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formshape/formshape/validator"
)

type validateInput struct {
	Schema     schemaInput `json:"schema"                jsonschema:"The standalone document to check"`
	NoWarnings bool        `json:"no_warnings,omitempty" jsonschema:"Suppress warnings, report errors only"`
}

type validateIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidateDocument(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	report, err := validator.ValidateWithOptions(
		validator.WithParsed(result),
		validator.WithIncludeWarnings(!input.NoWarnings),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        report.Valid,
		ErrorCount:   report.ErrorCount,
		WarningCount: report.WarningCount,
	}
	for _, e := range report.Errors {
		output.Errors = append(output.Errors, validateIssue{Path: e.Path, Message: e.Message})
	}
	for _, w := range report.Warnings {
		output.Warnings = append(output.Warnings, validateIssue{Path: w.Path, Message: w.Message})
	}

	return nil, output, nil
}
