// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes sidebar generation as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pinglow/apisidebar"
)

const serverInstructions = `apisidebar MCP server: builds a Docusaurus sidebar descriptor from an OpenAPI JSON document.

Configuration: defaults are configurable via APISIDEBAR_* environment variables set in your MCP client config.

Key settings:
- APISIDEBAR_CATEGORY_LABEL (default: RestAPI) - label of the sidebar category
- APISIDEBAR_ANCHOR_DOC (default: restapi) - doc id placed first in the category
- APISIDEBAR_HREF_PREFIX (default: /docs/restapi#tag/crate/operation/) - prefix of each operation link
- APISIDEBAR_MAX_INLINE_SIZE (default: 10485760) - maximum inline spec content in bytes
- APISIDEBAR_ALLOW_WRITE (default: true) - allow the output parameter to write files`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "apisidebar", Version: apisidebar.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_sidebar",
		Description: "Generate a Docusaurus sidebar descriptor from an OpenAPI JSON document. The sidebar has one category: the API reference doc first, then one link per operation in document order. Links use the operationId as anchor, or method_path when it is missing. Returns the sidebar JSON, the item count and any hrefs produced by more than one operation. Use output to write the sidebar to a file.",
	}, handleGenerateSidebar)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_spec",
		Description: "Summarize the parts of an OpenAPI JSON document that the sidebar is built from: path count, operation count, paths without operations, and operations missing an operationId or summary. Use it to find operations that will get synthesized anchors or labels.",
	}, handleInspectSpec)
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
