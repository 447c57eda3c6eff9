package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for catalogue resources.
	uriScheme = "pwc://"

	operationsURI = uriScheme + "operations"
	jsonMIMEType  = "application/json"
)

// operationInfo is the JSON view of a catalogue row.
type operationInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Path        string      `json:"path"`
	Resource    string      `json:"resource"`
	PathParams  []string    `json:"path_params,omitempty"`
	Query       []paramInfo `json:"query,omitempty"`
	Paginated   bool        `json:"paginated"`
}

type paramInfo struct {
	Name     string `json:"name"`
	Arg      string `json:"arg"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

func newOperationInfo(op domain.Operation) operationInfo {
	info := operationInfo{
		Name:        op.Name,
		Description: op.Description,
		Path:        op.Path,
		Resource:    op.Resource(),
		PathParams:  op.PathParams,
		Paginated:   op.Paginated,
	}
	for _, p := range op.AllQuery() {
		info.Query = append(info.Query, paramInfo{
			Name:     p.Name,
			Arg:      p.ArgName(),
			Type:     string(p.Type),
			Required: p.Required,
		})
	}
	return info
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         operationsURI,
		Name:        "operations",
		Description: "Catalogue of research API operations exposed as tools",
		MIMEType:    jsonMIMEType,
	}, s.handleOperationsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: operationsURI + "/{name}",
		Name:        "operation",
		Description: "A single catalogue operation",
		MIMEType:    jsonMIMEType,
	}, s.handleOperationResource)
}

// handleOperationsResource returns the full catalogue.
func (s *Server) handleOperationsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ops := s.ports.Research.Operations()
	infos := make([]operationInfo, len(ops))
	for i, op := range ops {
		infos[i] = newOperationInfo(op)
	}
	return jsonResource(req.Params.URI, infos)
}

// handleOperationResource returns one catalogue row.
func (s *Server) handleOperationResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractOperationName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	op, ok := s.ports.Research.Operation(name)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, newOperationInfo(op))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		}},
	}, nil
}

// extractOperationName extracts the name from a URI like pwc://operations/{name}.
func extractOperationName(uri string) string {
	const prefix = operationsURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
