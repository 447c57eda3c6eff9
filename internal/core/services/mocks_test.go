package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driven"
)

// fetchCall records one ResourceClient.Fetch invocation.
type fetchCall struct {
	Path       string
	PathParams map[string]string
	Query      string
}

// mockResourceClient answers with queued responses and records calls.
type mockResourceClient struct {
	mu        sync.Mutex
	calls     []fetchCall
	responses []any
	errs      []error
}

func (m *mockResourceClient) Fetch(
	_ context.Context, path string, pathParams map[string]string, query domain.Params,
) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := len(m.calls)
	m.calls = append(m.calls, fetchCall{Path: path, PathParams: pathParams, Query: query.Encode()})

	var resp any
	if i < len(m.responses) {
		resp = m.responses[i]
	}
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	return resp, nil
}

var _ driven.ResourceClient = (*mockResourceClient)(nil)

// mockFetcher returns a canned document or error.
type mockFetcher struct {
	doc    *domain.RawDocument
	err    error
	panics bool
	urls   []string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (*domain.RawDocument, error) {
	m.urls = append(m.urls, url)
	if m.panics {
		panic("fetcher exploded")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

var _ driven.DocumentFetcher = (*mockFetcher)(nil)

// mockNormaliser returns content built by fn and records calls.
type mockNormaliser struct {
	mimeTypes []string
	kind      domain.DocumentKind
	fn        func(raw *domain.RawDocument) (string, error)
	panics    bool
	calls     int
	lastOpts  domain.ReadOptions
}

func (m *mockNormaliser) SupportedMIMETypes() []string {
	return m.mimeTypes
}

func (m *mockNormaliser) Normalise(
	_ context.Context, raw *domain.RawDocument, opts domain.ReadOptions,
) (*driven.NormaliseResult, error) {
	m.calls++
	m.lastOpts = opts
	if m.panics {
		panic("malformed xref")
	}
	content, err := m.fn(raw)
	if err != nil {
		return nil, err
	}
	return &driven.NormaliseResult{
		Document: domain.IngestedDocument{Content: content, Kind: m.kind},
	}, nil
}

var _ driven.Normaliser = (*mockNormaliser)(nil)
