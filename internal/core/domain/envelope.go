package domain

import (
	"fmt"
	"strconv"
)

// Envelope is the paginated wrapper returned by list endpoints.
// Remote responses are passed through undecoded into this type; it exists to
// build the canonical empty page and to read the first result.
type Envelope struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []any   `json:"results"`
}

// EmptyEnvelope returns the canonical page with no results.
func EmptyEnvelope() Envelope {
	return Envelope{Results: []any{}}
}

// Results returns the results sequence of a decoded list response.
// It returns nil when body is not an object or has no results array.
func Results(body any) []any {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	results, _ := obj["results"].([]any)
	return results
}

// FirstResultID returns the id of the first result in a decoded list response.
// The second return value is false when there are no results.
func FirstResultID(body any) (string, bool, error) {
	results := Results(body)
	if len(results) == 0 {
		return "", false, nil
	}
	first, ok := results[0].(map[string]any)
	if !ok {
		return "", true, fmt.Errorf("%w: first result is not an object", ErrInvalidInput)
	}
	switch id := first["id"].(type) {
	case string:
		if id == "" {
			break
		}
		return id, true, nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true, nil
	}
	return "", true, fmt.Errorf("%w: first result has no id", ErrInvalidInput)
}
