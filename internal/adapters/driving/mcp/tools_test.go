package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/services"
	"github.com/custodia-labs/pwc-mcp/internal/observability"
)

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text
}

func schemaOf(t *testing.T, tool *mcp.Tool) map[string]any {
	t.Helper()
	data, err := json.Marshal(tool.InputSchema)
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	return schema
}

func TestListTools(t *testing.T) {
	session := connect(t, newTestServer(t, nil, nil))

	res, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	tools := make(map[string]*mcp.Tool, len(res.Tools))
	for _, tool := range res.Tools {
		tools[tool.Name] = tool
	}

	catalogue := services.Catalogue()
	assert.Len(t, tools, len(catalogue)+2)
	for _, op := range catalogue {
		assert.Contains(t, tools, op.Name)
	}
	assert.Contains(t, tools, ToolListPapersByAuthorName)
	assert.Contains(t, tools, ToolReadPaperFromURL)

	t.Run("path params are required", func(t *testing.T) {
		schema := schemaOf(t, tools["get_paper"])
		assert.Equal(t, "object", schema["type"])
		assert.Equal(t, []any{"paper_id"}, schema["required"])
	})

	t.Run("pagination carries defaults", func(t *testing.T) {
		props := schemaOf(t, tools["search_papers"])["properties"].(map[string]any)
		page := props[domain.ParamPage].(map[string]any)
		items := props[domain.ParamItemsPerPage].(map[string]any)
		assert.EqualValues(t, 1, page["default"])
		assert.EqualValues(t, 20, items["default"])
		assert.Equal(t, "integer", page["type"])
	})

	t.Run("argument names are caller facing", func(t *testing.T) {
		schema := schemaOf(t, tools["list_research_area_tasks"])
		props := schema["properties"].(map[string]any)
		assert.Contains(t, props, "area_id")
		assert.NotContains(t, props, "area")
		assert.Equal(t, []any{"area_id"}, schema["required"])
	})
}

func TestInputSchema(t *testing.T) {
	op := domain.Operation{
		Name:       "list_paper_methods",
		Path:       "/papers/{paper_id}/methods/",
		PathParams: []string{"paper_id"},
		Query: []domain.ParamSpec{
			{Name: "q", Arg: "query", Type: domain.ParamTypeString},
		},
		Paginated: true,
	}

	schema := inputSchema(op)

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"paper_id"}, schema.Required)
	require.Contains(t, schema.Properties, "query")
	assert.Equal(t, "string", schema.Properties["query"].Type)
	assert.JSONEq(t, "1", string(schema.Properties[domain.ParamPage].Default))
	assert.JSONEq(t, "20", string(schema.Properties[domain.ParamItemsPerPage].Default))
	assert.Nil(t, schema.Properties["paper_id"].Default)
}

func TestCallOperationTool(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards arguments with defaults applied", func(t *testing.T) {
		research := &mockResearchService{body: map[string]any{
			"count":   float64(1),
			"results": []any{map[string]any{"id": "attention-is-all-you-need"}},
		}}
		session := connect(t, newTestServer(t, research, nil))

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "search_papers",
			Arguments: map[string]any{"title": "Attention Is All You Need"},
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)

		call := research.lastCall()
		assert.Equal(t, "search_papers", call.Name)
		assert.Equal(t, "Attention Is All You Need", call.Args["title"])
		assert.EqualValues(t, 1, call.Args[domain.ParamPage])
		assert.EqualValues(t, 20, call.Args[domain.ParamItemsPerPage])

		assert.JSONEq(t, `{"count":1,"results":[{"id":"attention-is-all-you-need"}]}`, textOf(t, res))
		assert.NotNil(t, res.StructuredContent)
	})

	t.Run("service errors become tool errors", func(t *testing.T) {
		research := &mockResearchService{err: errors.New("GET /papers/x/: 404 Not Found")}
		session := connect(t, newTestServer(t, research, nil))

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "get_paper",
			Arguments: map[string]any{"paper_id": "x"},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, textOf(t, res), "404 Not Found")
	})

	t.Run("missing path parameter is rejected", func(t *testing.T) {
		research := &mockResearchService{}
		session := connect(t, newTestServer(t, research, nil))

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "get_paper",
			Arguments: map[string]any{},
		})
		if err == nil {
			assert.True(t, res.IsError)
		}
		assert.Empty(t, research.lastCall().Name)
	})
}

func TestListPapersByAuthorNameTool(t *testing.T) {
	ctx := context.Background()

	t.Run("passes name and pagination", func(t *testing.T) {
		research := &mockResearchService{body: map[string]any{"count": float64(0), "results": []any{}}}
		session := connect(t, newTestServer(t, research, nil))

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ToolListPapersByAuthorName,
			Arguments: map[string]any{"author_name": "Ashish Vaswani", "page": 2},
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)

		research.mu.Lock()
		defer research.mu.Unlock()
		assert.Equal(t, "Ashish Vaswani", research.author)
		require.NotNil(t, research.page)
		assert.Equal(t, 2, *research.page)
		assert.Nil(t, research.items)
	})

	t.Run("empty envelope is a structured result", func(t *testing.T) {
		research := &mockResearchService{body: domain.EmptyEnvelope()}
		session := connect(t, newTestServer(t, research, nil))

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ToolListPapersByAuthorName,
			Arguments: map[string]any{"author_name": "Nobody"},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, textOf(t, res))
	})

	t.Run("errors become tool errors", func(t *testing.T) {
		research := &mockResearchService{err: errors.New("connection refused")}
		session := connect(t, newTestServer(t, research, nil))

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ToolListPapersByAuthorName,
			Arguments: map[string]any{"author_name": "A"},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, textOf(t, res), "connection refused")
	})
}

func TestReadPaperFromURLTool(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the tagged document", func(t *testing.T) {
		docs := &mockDocumentService{doc: domain.IngestedDocument{
			Content: "Abstract", Kind: domain.DocumentKindPDF, Pages: 1,
		}}
		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics("test", reg)
		srv, err := NewServer(&Ports{Research: &mockResearchService{}, Document: docs, Metrics: metrics})
		require.NoError(t, err)
		session := connect(t, srv)

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ToolReadPaperFromURL,
			Arguments: map[string]any{"paper_url": "https://arxiv.org/pdf/1706.03762", "strip_html": true},
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &got))
		assert.Equal(t, "Abstract", got["content"])
		assert.Equal(t, "pdf", got["kind"])

		docs.mu.Lock()
		assert.Equal(t, "https://arxiv.org/pdf/1706.03762", docs.url)
		assert.True(t, docs.opts.StripHTML)
		docs.mu.Unlock()

		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentsRead.WithLabelValues("pdf")))
		assert.Equal(t, 1.0, testutil.ToFloat64(
			metrics.ToolCalls.WithLabelValues(ToolReadPaperFromURL, observability.OutcomeSuccess)))
	})

	t.Run("ingestion failure is still a successful call", func(t *testing.T) {
		docs := &mockDocumentService{doc: domain.NewIngestError(errors.New("HTTP 404"))}
		session := connect(t, newTestServer(t, nil, docs))

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      ToolReadPaperFromURL,
			Arguments: map[string]any{"paper_url": "https://example.com/missing.pdf"},
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.JSONEq(t, `{"error":"HTTP 404","kind":"error"}`, textOf(t, res))
	})
}

func TestToolCallMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics("test", reg)
	research := &mockResearchService{err: errors.New("boom")}
	srv, err := NewServer(&Ports{Research: research, Document: &mockDocumentService{}, Metrics: metrics})
	require.NoError(t, err)
	session := connect(t, srv)

	_, err = session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_conferences",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		metrics.ToolCalls.WithLabelValues("list_conferences", observability.OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.ToolCallDuration))
}

func TestToolResult(t *testing.T) {
	t.Run("objects are structured", func(t *testing.T) {
		res, out, err := toolResult(map[string]any{"id": "x"})
		require.NoError(t, err)
		assert.Nil(t, res)
		assert.JSONEq(t, `{"id":"x"}`, string(out.(json.RawMessage)))
	})

	t.Run("non-objects are text only", func(t *testing.T) {
		res, out, err := toolResult([]any{"a", "b"})
		require.NoError(t, err)
		assert.Nil(t, out)
		require.NotNil(t, res)
		assert.JSONEq(t, `["a","b"]`, res.Content[0].(*mcp.TextContent).Text)
	})

	t.Run("unencodable values fail", func(t *testing.T) {
		_, _, err := toolResult(make(chan int))
		require.Error(t, err)
	})
}
