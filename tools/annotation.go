package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/extension"
	"github.com/athapong/vtt-mcp/util"
)

// RegisterAnnotationTool registers the annotation role under its name and aliases
func RegisterAnnotationTool(s *server.MCPServer) {
	spec := extension.AnnotationRole{}.Spec()
	for _, name := range spec.Names() {
		tool := mcp.NewTool(name,
			mcp.WithDescription(spec.Doc+" The content is wrapped in a highlighted span tagged with the given classes."),
			mcp.WithString("class", mcp.Description(spec.Options["class"].Doc+" Space separated.")),
			mcp.WithString("body", mcp.Required(), mcp.Description(bodyDescription)),
			withFormat(),
		)
		s.AddTool(tool, util.ErrorGuard(annotationHandler))
	}
}

func annotationHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, err := request.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	nodes, err := decodeInline(body)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid body: %v", err)), nil
	}

	inv := extension.Invocation{
		Name: request.Params.Name,
		Body: nodes,
	}
	if inv.Name == "" {
		inv.Name = "annotation"
	}
	if class := request.GetString("class", ""); class != "" {
		inv.Options = map[string]interface{}{"class": class}
	}

	result, err := invoke(ctx, inv)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return renderResult(nodes, result.Nodes, request.GetString("format", ast.FormatJSON), false)
}

// decodeInline reads a role body: a JSON node array or node, otherwise the
// text is kept as a single text node instead of being split into paragraphs.
func decodeInline(body string) ([]*ast.Node, error) {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return ast.DecodeNodes([]byte(trimmed))
	}
	return []*ast.Node{ast.NewText(body)}, nil
}
