package domain

import "encoding/json"

// DocumentKind tags how an ingested document should be interpreted.
type DocumentKind string

// Document kinds.
const (
	// DocumentKindPDF marks text extracted from a PDF.
	DocumentKindPDF DocumentKind = "pdf"

	// DocumentKindHTML marks a raw markup (or any non-PDF) body.
	DocumentKindHTML DocumentKind = "html"

	// DocumentKindError marks a failed ingestion.
	DocumentKindError DocumentKind = "error"
)

// MIMETypePDF is the media type that selects PDF extraction.
const MIMETypePDF = "application/pdf"

// String returns the string representation.
func (k DocumentKind) String() string {
	return string(k)
}

// IngestedDocument is the tagged result of reading a document by URL.
// On success Content and Kind are set; on failure Error is set and Kind is
// DocumentKindError.
type IngestedDocument struct {
	Content string       `json:"content,omitempty"`
	Error   string       `json:"error,omitempty"`
	Kind    DocumentKind `json:"kind"`

	URL         string `json:"url,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Title       string `json:"title,omitempty"`
	Pages       int    `json:"pages,omitempty"`
	Text        string `json:"text,omitempty"`
}

// MarshalJSON emits {error, kind} for failures and always includes content
// for successes, even when the extracted text is empty.
func (d IngestedDocument) MarshalJSON() ([]byte, error) {
	if d.Failed() {
		return json.Marshal(struct {
			Error string       `json:"error"`
			Kind  DocumentKind `json:"kind"`
		}{d.Error, d.Kind})
	}
	type success IngestedDocument
	return json.Marshal(struct {
		Content string `json:"content"`
		success
	}{d.Content, success(d)})
}

// Failed reports whether the document is an error result.
func (d IngestedDocument) Failed() bool {
	return d.Kind == DocumentKindError
}

// NewIngestError converts err into an error-tagged document.
func NewIngestError(err error) IngestedDocument {
	return IngestedDocument{
		Error: err.Error(),
		Kind:  DocumentKindError,
	}
}

// ReadOptions tunes document ingestion.
type ReadOptions struct {
	// StripHTML adds tag-stripped readable text for non-PDF documents.
	StripHTML bool
}
