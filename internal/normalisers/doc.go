// Package normalisers holds the Normaliser implementations that turn fetched
// bytes into an ingested document. The pdf package extracts page text and
// the html package passes markup through, optionally with readable text.
//
// The document service selects a normaliser by media type at startup.
package normalisers
