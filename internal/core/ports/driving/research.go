package driving

import (
	"context"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

// ResearchService exposes the research API catalogue.
type ResearchService interface {
	// Operations returns the catalogue in registration order.
	Operations() []domain.Operation

	// Operation looks up a catalogue row by name.
	Operation(name string) (domain.Operation, bool)

	// Call invokes a catalogue operation with caller-supplied arguments.
	// Path parameters and query parameters are read from args by their
	// argument names; absent and null arguments are dropped.
	// The decoded response body is returned unmodified.
	Call(ctx context.Context, name string, args map[string]any) (any, error)

	// ListPapersByAuthorName resolves an author by full name and lists their
	// papers. The first matching author wins. When no author matches, the
	// canonical empty envelope is returned.
	ListPapersByAuthorName(ctx context.Context, name string, page, itemsPerPage *int) (any, error)
}
