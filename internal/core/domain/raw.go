package domain

// RawDocument represents opaque bytes fetched from a URL.
// It is the fetcher's output before normalisation.
type RawDocument struct {
	// URI is the location the document was fetched from.
	URI string

	// MIMEType is the declared content type header, verbatim
	// (e.g., "application/pdf" or "text/html; charset=utf-8").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
