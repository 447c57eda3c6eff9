package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pwc-mcp/internal/adapters/driving/mcp"
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

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start a streamable HTTP server instead, or --http to listen
on the configured server.addr. HTTP mode also serves Prometheus metrics on
/metrics.

Examples:
  # Stdio mode (default, for Claude Desktop)
  pwc-mcp mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  pwc-mcp mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "paperswithcode": {
        "command": "/path/to/pwc-mcp",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve HTTP on the configured server.addr")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() (*mcp.Server, error) {
	if services == nil {
		return nil, mcp.ErrMissingResearchService
	}

	ports := &mcp.Ports{
		Research: services.Research,
		Document: services.Document,
		Metrics:  services.Metrics,
	}

	opts := []mcp.Option{mcp.WithVersion(version)}
	if services.Gatherer != nil {
		opts = append(opts, mcp.WithGatherer(services.Gatherer))
	}
	return mcp.NewServer(ports, opts...)
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

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	addr := ""
	switch {
	case port > 0:
		addr = fmt.Sprintf(":%d", port)
	case useHTTP:
		addr, err = configuredAddr()
		if err != nil {
			return err
		}
	}

	if addr != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

func configuredAddr() (string, error) {
	settings, err := settingsService()
	if err != nil {
		return "", err
	}
	current, err := settings.Get()
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	return current.Server.Addr, nil
}
