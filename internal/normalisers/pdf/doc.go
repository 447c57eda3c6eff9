// Package pdf provides a Normaliser for PDF documents.
// Text is extracted page by page with github.com/ledongthuc/pdf and
// concatenated in page order with no separator.
package pdf
