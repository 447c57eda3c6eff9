// Package file provides the TOML-backed configuration store.
//
// The file lives at ~/.pwc-mcp/config.toml unless another directory is given.
// Keys are read flattened into dot notation and written back as nested tables.
package file
