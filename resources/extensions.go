package resources

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/athapong/vtt-mcp/pkg/extension"
)

// CatalogURI is the resource that describes every registered extension
const CatalogURI = "extensions://catalog"

// RegisterExtensionCatalog exposes the declared extension specs
func RegisterExtensionCatalog(s *server.MCPServer) {
	resource := mcp.NewResource(CatalogURI, "Extension catalog",
		mcp.WithResourceDescription("Names, aliases, arguments, options and body shapes of the registered directives and roles"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(resource, catalogHandler)
}

func catalogHandler(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	body, err := json.MarshalIndent(extension.Default().Specs(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogURI,
			MIMEType: "application/json",
			Text:     string(body),
		},
	}, nil
}
