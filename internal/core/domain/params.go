package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Param is one named query parameter.
// A nil Value means the parameter is absent and is never encoded.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered parameter set. Order of insertion is the order of
// encoding.
type Params []Param

// String returns a defined string value.
func String(s string) any {
	return s
}

// Int returns a defined integer value.
func Int(n int) any {
	return n
}

// OptString returns the dereferenced string, or nil when s is nil.
func OptString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// OptInt returns the dereferenced integer, or nil when n is nil.
func OptInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

// Set replaces the value of an existing parameter or appends a new one.
func (p Params) Set(name string, value any) Params {
	for i := range p {
		if p[i].Name == name {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Name: name, Value: value})
}

// Get returns the value of the named parameter and whether it is defined.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, param.Value != nil
		}
	}
	return nil, false
}

// Has reports whether the named parameter is present with a defined value.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Encode builds the query string for the defined parameters.
// Absent parameters are dropped; zero values and empty strings are kept.
// Spaces are encoded as %20. An empty or all-absent set encodes to "".
func (p Params) Encode() string {
	var b strings.Builder
	for _, param := range p {
		if param.Value == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(param.Name))
		b.WriteByte('=')
		b.WriteString(escape(formatValue(param.Value)))
	}
	return b.String()
}

// escape percent-encodes s for use in a query component. QueryEscape turns
// spaces into '+' and literal '+' into %2B, so the replacement is lossless.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
