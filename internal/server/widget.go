package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/taskpilot/taskpilot/tools"
)

// widgetMIMEType marks the resource as a renderable app widget template.
const widgetMIMEType = "text/html+skybridge"

// companyListWidgetHTML is a static shell; the client hydrates it from the
// structured tool result. Anything beyond this skeleton is the client's job.
const companyListWidgetHTML = `<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"><title>Companies</title></head>
  <body><div id="company-list-root"></div></body>
</html>
`

// registerWidgets registers one resource per distinct widget URI declared by
// the tool definitions.
func (s *Server) registerWidgets(defs []tools.ToolDefinition) {
	seen := map[string]bool{}
	for _, def := range defs {
		if def.WidgetURI == "" || seen[def.WidgetURI] {
			continue
		}
		seen[def.WidgetURI] = true
		uri := def.WidgetURI

		resource := mcp.NewResource(uri, "Company list widget",
			mcp.WithResourceDescription("HTML template for rendering company collections."),
			mcp.WithMIMEType(widgetMIMEType),
		)
		s.mcp.AddResource(resource, func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: widgetMIMEType,
					Text:     companyListWidgetHTML,
				},
			}, nil
		})
	}
}
