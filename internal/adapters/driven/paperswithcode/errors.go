package paperswithcode

import (
	"fmt"
	"net/http"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
)

// maxErrorBody caps how much of an error response is kept for messages.
const maxErrorBody = 512

// StatusError reports a non-2xx response from the research API.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap lets errors.Is match domain.ErrRemote, and domain.ErrNotFound for 404s.
func (e *StatusError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{domain.ErrRemote, domain.ErrNotFound}
	}
	return []error{domain.ErrRemote}
}
