package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formshape/formshape/generator"
)

type generatePreviewInput struct {
	Schema schemaInput `json:"schema" jsonschema:"The schema document to generate from"`
	Config configInput `json:"config" jsonschema:"The generation config describing categories and overrides"`
}

type previewCategory struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Files       []string `json:"files"`
	Index       string   `json:"index"`
	ChangeCount int      `json:"change_count"`
}

type generatePreviewOutput struct {
	Categories []previewCategory `json:"categories"`
	TypeCount  int               `json:"type_count"`
	FileCount  int               `json:"file_count"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// handleGeneratePreview runs the full generation pipeline in memory and
// reports what a real run would write. It never touches the filesystem.
func handleGeneratePreview(_ context.Context, _ *mcp.CallToolRequest, input generatePreviewInput) (*mcp.CallToolResult, generatePreviewOutput, error) {
	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), generatePreviewOutput{}, nil
	}

	conf, err := input.Config.resolve()
	if err != nil {
		return errResult(err), generatePreviewOutput{}, nil
	}

	g := generator.FromConfig(conf)
	generated, err := g.GenerateParsed(result)
	if err != nil {
		return errResult(err), generatePreviewOutput{}, nil
	}

	output := generatePreviewOutput{
		Categories: make([]previewCategory, 0, len(generated.Categories)),
		TypeCount:  generated.TypeCount,
		FileCount:  len(generated.Files),
	}
	for _, cr := range generated.Categories {
		pc := previewCategory{
			Key:         cr.Key,
			Name:        cr.Name,
			Files:       cr.Files,
			ChangeCount: cr.ChangeCount,
		}
		if f := generated.GetFile(cr.Key, "index.json"); f != nil {
			pc.Index = string(f.Content)
		}
		output.Categories = append(output.Categories, pc)
	}
	for _, issue := range generated.Issues {
		output.Warnings = append(output.Warnings, issue.String())
	}

	return nil, output, nil
}
