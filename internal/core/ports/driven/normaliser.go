package driven

import (
	"context"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

// Normaliser turns a fetched document into its ingested form.
// Each normaliser handles specific MIME types (e.g., PDF, HTML).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Normalise extracts the document content.
	Normalise(ctx context.Context, raw *domain.RawDocument, opts domain.ReadOptions) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Document is the ingested document with Content and Kind populated.
	Document domain.IngestedDocument
}
