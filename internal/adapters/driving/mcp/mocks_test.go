package mcp

import (
	"context"
	"sync"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/services"
)

// researchCall records one Call invocation.
type researchCall struct {
	Name string
	Args map[string]any
}

// mockResearchService is a mock implementation of driving.ResearchService
// serving the real catalogue.
type mockResearchService struct {
	mu     sync.Mutex
	body   any
	err    error
	calls  []researchCall
	author string
	page   *int
	items  *int
}

func (m *mockResearchService) Operations() []domain.Operation {
	return services.Catalogue()
}

func (m *mockResearchService) Operation(name string) (domain.Operation, bool) {
	for _, op := range services.Catalogue() {
		if op.Name == name {
			return op, true
		}
	}
	return domain.Operation{}, false
}

func (m *mockResearchService) Call(_ context.Context, name string, args map[string]any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, researchCall{Name: name, Args: args})
	return m.body, m.err
}

func (m *mockResearchService) ListPapersByAuthorName(
	_ context.Context, name string, page, itemsPerPage *int,
) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.author, m.page, m.items = name, page, itemsPerPage
	return m.body, m.err
}

func (m *mockResearchService) lastCall() researchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return researchCall{}
	}
	return m.calls[len(m.calls)-1]
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	mu   sync.Mutex
	doc  domain.IngestedDocument
	url  string
	opts domain.ReadOptions
}

func (m *mockDocumentService) Read(_ context.Context, url string, opts domain.ReadOptions) domain.IngestedDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.url, m.opts = url, opts
	return m.doc
}
