// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// research API. Every catalogue operation is exposed as a tool, alongside the
// author resolution chain and document ingestion.
package mcp

import "errors"

var (
	// ErrMissingResearchService is returned when the research service is not provided.
	ErrMissingResearchService = errors.New("mcp: research service is required")

	// ErrMissingDocumentService is returned when the document service is not provided.
	ErrMissingDocumentService = errors.New("mcp: document service is required")
)
