package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/pwc-mcp/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService fetches documents by URL and extracts their content.
// Normalisers are selected by exact media type; anything unmatched goes to
// the fallback normaliser.
type DocumentService struct {
	fetcher    driven.DocumentFetcher
	byMIMEType map[string]driven.Normaliser
	fallback   driven.Normaliser
}

// NewDocumentService creates a document service. Each normaliser is
// registered for its supported MIME types; fallback handles the rest.
func NewDocumentService(
	fetcher driven.DocumentFetcher,
	fallback driven.Normaliser,
	normalisers ...driven.Normaliser,
) *DocumentService {
	byMIMEType := make(map[string]driven.Normaliser)
	for _, n := range normalisers {
		for _, mt := range n.SupportedMIMETypes() {
			byMIMEType[strings.ToLower(mt)] = n
		}
	}
	return &DocumentService{
		fetcher:    fetcher,
		byMIMEType: byMIMEType,
		fallback:   fallback,
	}
}

// Read fetches rawURL and extracts its content. Every failure, including a
// panic inside a normaliser, is returned as an error-tagged document.
func (s *DocumentService) Read(ctx context.Context, rawURL string, opts domain.ReadOptions) (doc domain.IngestedDocument) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("url", rawURL).Msg("document read panicked")
			doc = domain.NewIngestError(fmt.Errorf("read %s: %v", rawURL, r))
		}
	}()

	if err := validateDocumentURL(rawURL); err != nil {
		return domain.NewIngestError(err)
	}

	raw, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		log.Debug().Err(err).Str("url", rawURL).Msg("document fetch failed")
		return domain.NewIngestError(err)
	}

	mediaType := MediaType(raw.MIMEType)
	normaliser := s.normaliserFor(mediaType)
	if normaliser == nil {
		return domain.NewIngestError(fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType))
	}

	result, err := normaliser.Normalise(ctx, raw, opts)
	if err != nil {
		log.Debug().Err(err).Str("url", rawURL).Str("content_type", mediaType).Msg("document extraction failed")
		return domain.NewIngestError(err)
	}

	doc = result.Document
	doc.URL = rawURL
	doc.ContentType = raw.MIMEType

	log.Debug().
		Str("url", rawURL).
		Str("kind", doc.Kind.String()).
		Int("bytes", len(raw.Content)).
		Msg("document read")

	return doc
}

func (s *DocumentService) normaliserFor(mediaType string) driven.Normaliser {
	if n, ok := s.byMIMEType[mediaType]; ok {
		return n
	}
	return s.fallback
}

// MediaType returns the lower-cased media type of a Content-Type header
// value with parameters removed. Unparseable values are returned trimmed and
// lower-cased up to the first ';'.
func MediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

func validateDocumentURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return errors.New("paper url is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", rawURL)
	}
	return nil
}
