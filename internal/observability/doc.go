// Package observability holds the Prometheus metrics recorded by the MCP
// server, the research API client and the document fetcher.
//
// Metrics are registered against an explicit prometheus.Registerer so that
// tests and multiple servers in one process do not collide.
package observability
