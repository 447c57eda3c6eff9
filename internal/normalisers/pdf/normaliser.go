package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser extracts plain text from PDF documents.
type Normaliser struct{}

// New creates a new PDF normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{domain.MIMETypePDF}
}

// Normalise decodes raw.Content as a PDF and extracts the text of every page.
// Parser panics on malformed input are returned as errors.
func (n *Normaliser) Normalise(
	ctx context.Context, raw *domain.RawDocument, _ domain.ReadOptions,
) (result *driven.NormaliseResult, err error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("decode pdf: %v", r)
		}
	}()

	text, pages, title, err := ExtractText(ctx, raw.Content)
	if err != nil {
		return nil, err
	}

	return &driven.NormaliseResult{
		Document: domain.IngestedDocument{
			Content: text,
			Kind:    domain.DocumentKindPDF,
			Title:   title,
			Pages:   pages,
		},
	}, nil
}

// ExtractText returns the concatenated page text, the page count and the
// document title from the Info dictionary, if any.
func ExtractText(ctx context.Context, content []byte) (text string, pages int, title string, err error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", 0, "", fmt.Errorf("decode pdf: %w", err)
	}

	pages = reader.NumPage()
	fonts := make(map[string]*pdf.Font)
	var buf strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := page.Font(name)
				fonts[name] = &font
			}
		}
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", 0, "", fmt.Errorf("extract page %d: %w", i, err)
		}
		buf.WriteString(pageText)
	}

	return buf.String(), pages, documentTitle(reader), nil
}

func documentTitle(reader *pdf.Reader) string {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return strings.TrimSpace(info.Key("Title").Text())
}
