// Package domain defines the core business entities for pwc-mcp.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Params: An ordered query parameter set and its encoder
//   - Operation: One row of the research API catalogue
//   - Envelope: The paginated wrapper returned by list endpoints
//   - IngestedDocument: The tagged result of reading a document by URL
//   - RawDocument: Opaque bytes fetched from a URL
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
