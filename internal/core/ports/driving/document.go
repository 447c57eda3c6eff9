package driving

import (
	"context"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

// DocumentService reads documents by URL.
type DocumentService interface {
	// Read fetches url and extracts its text. It never returns an error:
	// failures are reported as a document with Kind set to
	// domain.DocumentKindError.
	Read(ctx context.Context, url string, opts domain.ReadOptions) domain.IngestedDocument
}
