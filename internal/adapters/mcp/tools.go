package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"confex/internal/adapters/term"
	"confex/internal/application/commands"
	"confex/internal/ports"
)

// RegisterExportTools adds the page export tools to the MCP server.
func RegisterExportTools(s *server.MCPServer, fetcher ports.ContentFetcher) {
	s.AddTool(getPageTool(), getPageHandler(fetcher))
	s.AddTool(listChildrenTool(), listChildrenHandler(fetcher))
	s.AddTool(exportTreeTool(), exportTreeHandler(fetcher))
}

// --- get_page ---

func getPageTool() mcp.Tool {
	return mcp.NewTool("get_page",
		mcp.WithDescription("Fetch one Confluence page and return it as Markdown."),
		mcp.WithString("page_id",
			mcp.Description("Confluence page ID (e.g. 123456)"),
			mcp.Required(),
		),
	)
}

func getPageHandler(fetcher ports.ContentFetcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pageID := req.GetString("page_id", "")

		cmd := commands.NewExportPageCommand(fetcher, pageID, "")
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Markdown), nil
	}
}

// --- list_children ---

func listChildrenTool() mcp.Tool {
	return mcp.NewTool("list_children",
		mcp.WithDescription("List the immediate child pages of a Confluence page, in server order."),
		mcp.WithString("page_id",
			mcp.Description("Parent page ID"),
			mcp.Required(),
		),
	)
}

func listChildrenHandler(fetcher ports.ContentFetcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pageID := req.GetString("page_id", "")
		if pageID == "" {
			return toolError(fmt.Errorf("page_id is required"))
		}

		children, err := fetcher.GetChildPages(ctx, pageID)
		if err != nil {
			return toolError(err)
		}
		if len(children) == 0 {
			return mcp.NewToolResultText("(no child pages)"), nil
		}

		var sb strings.Builder
		for _, child := range children {
			fmt.Fprintf(&sb, "%s\t%s\n", child.ID, child.Title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- export_tree ---

func exportTreeTool() mcp.Tool {
	return mcp.NewTool("export_tree",
		mcp.WithDescription("Export a Confluence page and all its descendants as Markdown files under a directory, mirroring the page hierarchy."),
		mcp.WithString("page_id",
			mcp.Description("Root page ID"),
			mcp.Required(),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory to write the tree into"),
			mcp.Required(),
		),
		mcp.WithNumber("max_depth",
			mcp.Description("Maximum recursion depth (default 10)"),
		),
	)
}

func exportTreeHandler(fetcher ports.ContentFetcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pageID := req.GetString("page_id", "")
		outputDir := req.GetString("output_dir", "")
		maxDepth := req.GetInt("max_depth", 10)

		cmd := commands.NewExportTreeCommand(fetcher, term.Discard, nil, pageID, outputDir, maxDepth)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Exported %d page(s) to %s", result.PagesExported, outputDir)), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
