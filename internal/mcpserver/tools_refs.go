package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasref/walker"
)

type refsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The spec document to list references from"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N references (for pagination)"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of references to return (default 100)"`
}

type refEntry struct {
	Ref        string `json:"ref"`
	SourcePath string `json:"source_path"`
	NodeType   string `json:"node_type"`
}

type refsOutput struct {
	Total    int        `json:"total"`
	Returned int        `json:"returned"`
	Refs     []refEntry `json:"refs,omitempty"`
}

func handleRefs(_ context.Context, _ *mcp.CallToolRequest, input refsInput) (*mcp.CallToolResult, refsOutput, error) {
	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), refsOutput{}, nil
	}

	refs, err := walker.CollectRefs(parseResult.Document)
	if err != nil {
		return errResult(err), refsOutput{}, nil
	}

	output := refsOutput{Total: len(refs)}
	output.Refs = makeSlice[refEntry](len(refs))
	for _, r := range refs {
		output.Refs = append(output.Refs, refEntry{
			Ref:        r.Ref,
			SourcePath: r.SourcePath,
			NodeType:   r.NodeType,
		})
	}
	output.Refs = paginate(output.Refs, input.Offset, input.Limit)
	output.Returned = len(output.Refs)

	return nil, output, nil
}
