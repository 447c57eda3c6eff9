// Package paperswithcode implements driven.ResourceClient against the
// Papers With Code REST API.
//
// Each Fetch expands an RFC 6570 path template, appends the ordered query
// string and issues a single GET. Bodies are decoded as JSON and returned
// untouched. Non-2xx responses are reported as *StatusError.
package paperswithcode
