package driven

import (
	"context"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

// DocumentFetcher downloads arbitrary documents by URL.
type DocumentFetcher interface {
	// Fetch performs a single GET and returns the body with its declared
	// content type.
	Fetch(ctx context.Context, url string) (*domain.RawDocument, error)
}
