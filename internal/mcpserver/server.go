// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasref capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasref"
)

const serverInstructions = `oasref MCP server — parses, validates, and resolves references in OpenAPI 3.1 specs.

Tools:
- parse: load a spec and return a structural summary (version, component counts, warnings)
- validate: check every $ref and schema rule; returns errors and warnings with locations
- refs: list every $ref slot in a spec with its source location
- resolve: follow a single reference to its inline component and return it`

// defaultLimit caps list output when the client does not request a limit.
const defaultLimit = 100

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasref", Version: oasref.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 3.1 document. Returns a structural summary: title, version, component counts per collection, and any structural warnings.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI 3.1 document: resolve every $ref and apply schema rules. Returns errors and warnings with locations. Use offset/limit to paginate through results.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "refs",
		Description: "List every $ref slot in an OpenAPI 3.1 document with its source location and node type. Use offset/limit to paginate through results.",
	}, handleRefs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve a single reference like #/components/schemas/Pet against an OpenAPI 3.1 document, following intermediate references, and return the inline component.",
	}, handleResolve)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to defaultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
