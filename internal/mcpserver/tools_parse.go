package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasref/spec"
)

type parseInput struct {
	Spec specInput `json:"spec" jsonschema:"The spec document to parse"`
}

type parseOutput struct {
	Title           string         `json:"title,omitempty"`
	Version         string         `json:"version"`
	SourceFormat    string         `json:"source_format"`
	ComponentCounts map[string]int `json:"component_counts,omitempty"`
	Errors          []string       `json:"errors,omitempty"`
	Warnings        []string       `json:"warnings,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Version:      result.Version,
		SourceFormat: string(result.SourceFormat),
		Warnings:     result.Warnings,
	}
	if doc := result.Document; doc != nil {
		if doc.Info != nil {
			output.Title = doc.Info.Title
		}
		counts := make(map[string]int)
		for _, kind := range []spec.RefKind{
			spec.KindSchema, spec.KindResponse, spec.KindParameter,
			spec.KindExample, spec.KindRequestBody, spec.KindHeader,
			spec.KindSecurityScheme, spec.KindLink, spec.KindCallback,
		} {
			if names := doc.ComponentNames(kind); len(names) > 0 {
				counts[kind.String()] = len(names)
			}
		}
		if len(counts) > 0 {
			output.ComponentCounts = counts
		}
	}

	output.Errors = makeSlice[string](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, e.Error())
	}

	return nil, output, nil
}
