package paperswithcode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yosida95/uritemplate/v3"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/pwc-mcp/internal/logger"
	"github.com/custodia-labs/pwc-mcp/internal/observability"
)

// Ensure Client implements the interface.
var _ driven.ResourceClient = (*Client)(nil)

// Client issues GET requests against the research API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records request counts and latencies.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client rooted at baseURL (e.g.
// "https://paperswithcode.com/api/v1"). Without WithHTTPClient a client with
// timeout is created.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{baseURL: strings.TrimRight(baseURL, "/")}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: timeout}
	}
	return c
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch expands path, appends query and returns the decoded response body.
func (c *Client) Fetch(
	ctx context.Context, path string, pathParams map[string]string, query domain.Params,
) (any, error) {
	expanded, err := ExpandPath(path, pathParams)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + expanded
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resource := domain.ResourceOf(path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordAPIRequest(resource, 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordAPIRequest(resource, resp.StatusCode, time.Since(start).Seconds())
	logger.FromContext(ctx).Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("research API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", domain.ErrDecode, target, err)
	}
	return decoded, nil
}

// ExpandPath substitutes pathParams into an RFC 6570 template. Every
// variable in the template must be supplied.
func ExpandPath(path string, pathParams map[string]string) (string, error) {
	tmpl, err := uritemplate.New(path)
	if err != nil {
		return "", fmt.Errorf("%w: path template %q: %w", domain.ErrInvalidInput, path, err)
	}

	values := uritemplate.Values{}
	for _, name := range tmpl.Varnames() {
		val, ok := pathParams[name]
		if !ok {
			return "", fmt.Errorf("%w: missing path parameter %s", domain.ErrInvalidInput, name)
		}
		values.Set(name, uritemplate.String(val))
	}

	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("%w: expand %q: %w", domain.ErrInvalidInput, path, err)
	}
	return expanded, nil
}
