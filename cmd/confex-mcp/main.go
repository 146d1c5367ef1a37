package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"confex/internal/adapters/confluence"
	mcpadapter "confex/internal/adapters/mcp"
	"confex/internal/config"
)

func main() {
	envFile := flag.String("env-file", ".env", "path to env file with Confluence credentials")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("confex-mcp: %v", err)
	}

	fetcher := confluence.NewClient(cfg.BaseURL, cfg.Username, cfg.APIToken)

	mcpServer := server.NewMCPServer(
		"confex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterExportTools(mcpServer, fetcher)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("confex-mcp: %v", err)
	}
}
