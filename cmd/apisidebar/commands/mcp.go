package commands

import (
	"github.com/spf13/cobra"

	"github.com/pinglow/apisidebar/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve sidebar generation as an MCP tool over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout.

Tools:
  generate_sidebar  build (and optionally write) the sidebar for a document
  inspect_spec      count operations missing an operationId or summary

Defaults are configurable via APISIDEBAR_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
