package driven

import (
	"context"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

// ResourceClient issues GET requests against the research API.
type ResourceClient interface {
	// Fetch expands path with pathParams, appends the encoded query and
	// returns the decoded response body unmodified. Exactly one request is
	// made; failures are returned, never retried.
	Fetch(ctx context.Context, path string, pathParams map[string]string, query domain.Params) (any, error)
}
