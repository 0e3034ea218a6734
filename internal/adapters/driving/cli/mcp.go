package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/mcp"
)

// runMCPServer serves until the client disconnects. Tests replace it.
var runMCPServer = func(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and exposes:
  trip_stats          - statistics for a city, optionally filtered
  trip_rows           - a window of raw trip rows
  bikeshare://cities  - the supported cities and their data sources

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "bikeshare": {
        "command": "/path/to/bikeshare",
        "args": ["mcp", "serve", "--data-dir", "/path/to/data"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	explorer, err := requireExplorer()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Explorer: explorer})
	if err != nil {
		return err
	}

	return runMCPServer(cmd.Context(), server)
}
