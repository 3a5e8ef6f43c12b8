package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/util"
)

func withFormat() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Output format: json (default), markdown, html or text"),
		mcp.Enum(ast.Formats...),
	)
}

// RegisterRenderTool registers a tool that renders an already transformed tree
func RegisterRenderTool(s *server.MCPServer) {
	tool := mcp.NewTool("render_content",
		mcp.WithDescription("Render a JSON content tree (as returned by the vtt or annotation tools) as markdown, html, text or json"),
		mcp.WithString("content", mcp.Required(), mcp.Description("JSON node array or single node")),
		withFormat(),
	)
	s.AddTool(tool, util.ErrorGuard(renderHandler))
}

func renderHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	nodes, err := ast.DecodeNodes([]byte(content))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid content: %v", err)), nil
	}
	out, err := ast.Render(nodes, request.GetString("format", ast.FormatJSON))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

// renderResult renders output and, when requested, appends the text diff
// between input and output
func renderResult(input, output []*ast.Node, format string, withDiff bool) (*mcp.CallToolResult, error) {
	rendered, err := ast.Render(output, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !withDiff {
		return mcp.NewToolResultText(rendered), nil
	}
	return mcp.NewToolResultText(rendered + "\n\n--- diff ---\n" + ast.Diff(input, output)), nil
}
