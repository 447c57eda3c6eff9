// Package html provides the Normaliser for HTML and any other non-PDF body.
// The body is returned verbatim; the title is read from the <title> element
// and tag-stripped text is produced on request.
package html
