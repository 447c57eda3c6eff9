// Package fetch downloads arbitrary documents by URL for ingestion.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/pwc-mcp/internal/observability"
)

// Ensure Fetcher implements the interface.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

// ErrFetchFailed wraps transport and status failures.
var ErrFetchFailed = errors.New("document fetch failed")

// Config holds fetcher configuration.
type Config struct {
	// Timeout bounds the whole request including the body read.
	Timeout time.Duration

	// MaxBytes caps the body size.
	MaxBytes int64

	// UserAgent is sent with every request.
	UserAgent string

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client

	// Metrics records document sizes when set.
	Metrics *observability.Metrics
}

// Fetcher performs single GET requests for documents.
type Fetcher struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
	metrics   *observability.Metrics
}

// New creates a fetcher, filling unset fields from domain defaults.
func New(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultDocumentTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = domain.DefaultMaxDocumentBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultDocumentUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{
		client:    client,
		maxBytes:  cfg.MaxBytes,
		userAgent: cfg.UserAgent,
		metrics:   cfg.Metrics,
	}
}

// Fetch downloads url. Non-2xx responses and bodies over the size limit are
// errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/pdf, text/html;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s: HTTP %d", ErrFetchFailed, url, resp.StatusCode)
	}

	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrDocumentTooLarge, resp.ContentLength, f.maxBytes)
	}

	// Read one byte past the limit to detect oversize bodies.
	content, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	if int64(len(content)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", domain.ErrDocumentTooLarge, f.maxBytes)
	}

	f.metrics.RecordDocumentFetched(len(content))

	return &domain.RawDocument{
		URI:      resp.Request.URL.String(),
		MIMEType: resp.Header.Get("Content-Type"),
		Content:  content,
	}, nil
}
