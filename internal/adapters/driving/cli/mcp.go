package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gearscan/internal/adapters/driving/mcp"
	"github.com/custodia-labs/gearscan/internal/core/services"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Tools:
  sum_part_numbers   - sum of every number adjacent to a symbol
  sum_gear_ratios    - sum of the ratios of every gear
  analyse_schematic  - every number and gear with both totals

Each tool takes either "lines" (the schematic rows) or "path" (a file
resolved against input.data_dir).

Resources:
  gearscan://settings             - the active settings as JSON
  gearscan://schematics/{name}    - a schematic from input.data_dir with its totals

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  gearscan mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  gearscan mcp serve --port 8080

  # HTTP mode on the first free port from 8080
  gearscan mcp serve --http

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "gearscan": {
        "command": "/path/to/gearscan",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve over HTTP on the first free port when --port is not set")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	ports := &mcp.Ports{
		Schematic: schematicService,
		Settings:  settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port == 0 && useHTTP {
		port, err = services.FindAvailablePort("127.0.0.1", services.DefaultPortStart, services.DefaultPortEnd)
		if err != nil {
			return err
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
