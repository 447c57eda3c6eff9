package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

// Names of the tools that are not catalogue rows.
const (
	ToolListPapersByAuthorName = "list_papers_by_author_name"
	ToolReadPaperFromURL       = "read_paper_from_url"
)

// AuthorPapersInput is the input schema for list_papers_by_author_name.
type AuthorPapersInput struct {
	AuthorName   string `json:"author_name" jsonschema:"full name of the author to look up"`
	Page         *int   `json:"page,omitempty" jsonschema:"page number to return (default 1)"`
	ItemsPerPage *int   `json:"items_per_page,omitempty" jsonschema:"number of items per page (default 20)"`
}

// ReadPaperInput is the input schema for read_paper_from_url.
type ReadPaperInput struct {
	PaperURL  string `json:"paper_url" jsonschema:"http(s) URL of the paper, PDF or HTML"`
	StripHTML bool   `json:"strip_html,omitempty" jsonschema:"also return tag-stripped text for HTML pages"`
}

// registerTools registers one tool per catalogue row plus the typed tools.
func (s *Server) registerTools() {
	for _, op := range s.ports.Research.Operations() {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        op.Name,
			Description: op.Description,
			InputSchema: inputSchema(op),
		}, s.operationHandler(op.Name))
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolListPapersByAuthorName,
		Description: "List the papers of an author found by full name; the first matching author is used",
	}, s.handleAuthorPapers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolReadPaperFromURL,
		Description: "Download a paper by URL and return its text (PDF) or markup (HTML)",
	}, s.handleReadPaper)
}

// inputSchema derives a tool input schema from a catalogue row. Path
// parameters and required arguments are listed as required; pagination
// arguments carry their defaults.
func inputSchema(op domain.Operation) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema),
	}

	for _, name := range op.PathParams {
		schema.Properties[name] = &jsonschema.Schema{
			Type:        "string",
			Description: fmt.Sprintf("%s substituted into the request path", name),
		}
		schema.Required = append(schema.Required, name)
	}

	for _, param := range op.AllQuery() {
		prop := &jsonschema.Schema{
			Type:        string(param.Type),
			Description: param.Description,
		}
		switch param.Name {
		case domain.ParamPage:
			prop.Default = json.RawMessage(strconv.Itoa(domain.DefaultPage))
		case domain.ParamItemsPerPage:
			prop.Default = json.RawMessage(strconv.Itoa(domain.DefaultItemsPerPage))
		}
		schema.Properties[param.ArgName()] = prop
		if param.Required {
			schema.Required = append(schema.Required, param.ArgName())
		}
	}

	return schema
}

// operationHandler forwards a tool call to the catalogue operation name.
func (s *Server) operationHandler(name string) mcp.ToolHandlerFor[map[string]any, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
		body, err := s.ports.Research.Call(ctx, name, args)
		if err != nil {
			return nil, nil, err
		}
		return toolResult(body)
	}
}

// handleAuthorPapers runs the author resolution chain.
func (s *Server) handleAuthorPapers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AuthorPapersInput,
) (*mcp.CallToolResult, any, error) {
	body, err := s.ports.Research.ListPapersByAuthorName(ctx, input.AuthorName, input.Page, input.ItemsPerPage)
	if err != nil {
		return nil, nil, err
	}
	return toolResult(body)
}

// handleReadPaper ingests a document. Ingestion failures are part of the
// tagged result, so the call itself always succeeds.
func (s *Server) handleReadPaper(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadPaperInput,
) (*mcp.CallToolResult, any, error) {
	doc := s.ports.Document.Read(ctx, input.PaperURL, domain.ReadOptions{StripHTML: input.StripHTML})
	s.ports.Metrics.RecordDocumentRead(doc.Kind.String())
	return toolResult(doc)
}

// toolResult renders body as structured content plus its JSON text.
// Structured content must be an object, so other JSON values are returned
// as text only.
func toolResult(body any) (*mcp.CallToolResult, any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("encode result: %w", err)
	}
	if bytes.HasPrefix(data, []byte("{")) {
		return nil, json.RawMessage(data), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
