package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Starts the Model Context Protocol server so AI assistants can manage
the schedule: add, edit, remove, complete, list and find tasks, and read
the schedule resource.

By default the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible assistants.

Use --http to serve over HTTP instead, which enables:
  - Testing with the MCP Inspector web UI
  - Remote access

Examples:
  # Stdio mode (default, for Claude Desktop)
  dayplan mcp

  # HTTP mode (for MCP Inspector, remote access)
  dayplan mcp --http :8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "dayplan": {
        "command": "/path/to/dayplan",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{Scheduler: scheduler})
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		cmd.Printf("MCP server listening on %s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}

	return server.Run(cmd.Context())
}
