package domain

import "strings"

// Pagination parameter names and their defaults.
const (
	ParamPage         = "page"
	ParamItemsPerPage = "items_per_page"

	DefaultPage         = 1
	DefaultItemsPerPage = 20
)

// ParamType is the scalar type of a query parameter.
type ParamType string

// Supported parameter types.
const (
	ParamTypeString  ParamType = "string"
	ParamTypeInteger ParamType = "integer"
)

// ParamSpec declares one query parameter recognised by an operation.
type ParamSpec struct {
	// Name is the query-string key sent to the research API.
	Name string

	// Arg is the caller-facing argument name. Empty means same as Name.
	Arg string

	// Type is the scalar type accepted for the argument.
	Type ParamType

	// Required marks arguments that must be supplied.
	Required bool

	// Description is shown to tool callers.
	Description string
}

// ArgName returns the caller-facing argument name.
func (p ParamSpec) ArgName() string {
	if p.Arg != "" {
		return p.Arg
	}
	return p.Name
}

// Operation is one row of the resource catalogue: a path template and the
// query parameters it recognises.
type Operation struct {
	// Name is the tool name exposed to callers (e.g. "search_papers").
	Name string

	// Description is a one-line summary shown to callers.
	Description string

	// Path is an RFC 6570 template relative to the API base URL,
	// e.g. "/papers/{paper_id}/".
	Path string

	// PathParams lists the template variables in order of appearance.
	PathParams []string

	// Query lists the recognised query parameters in encoding order,
	// excluding pagination.
	Query []ParamSpec

	// Paginated operations accept page and items_per_page with defaults.
	Paginated bool
}

// Resource returns the first path segment, e.g. "papers" for "/papers/{paper_id}/".
func (o Operation) Resource() string {
	return ResourceOf(o.Path)
}

// ResourceOf returns the first segment of an API path.
func ResourceOf(path string) string {
	trimmed := strings.Trim(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// PaginationParams returns the pagination declarations appended to paginated operations.
func PaginationParams() []ParamSpec {
	return []ParamSpec{
		{Name: ParamPage, Type: ParamTypeInteger, Description: "page number to return (default 1)"},
		{Name: ParamItemsPerPage, Type: ParamTypeInteger, Description: "number of items per page (default 20)"},
	}
}

// AllQuery returns Query followed by the pagination parameters when paginated.
func (o Operation) AllQuery() []ParamSpec {
	if !o.Paginated {
		return o.Query
	}
	all := make([]ParamSpec, 0, len(o.Query)+2)
	all = append(all, o.Query...)
	return append(all, PaginationParams()...)
}
