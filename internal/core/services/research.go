package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/pwc-mcp/internal/core/domain"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/pwc-mcp/internal/logger"
)

// Ensure ResearchService implements the interface.
var _ driving.ResearchService = (*ResearchService)(nil)

// ResearchService instantiates the resource client for each catalogue
// operation and resolves authors by name.
type ResearchService struct {
	client     driven.ResourceClient
	operations []domain.Operation
	byName     map[string]domain.Operation
}

// NewResearchService creates a research service over the given catalogue.
// A nil catalogue uses Catalogue().
func NewResearchService(client driven.ResourceClient, operations []domain.Operation) *ResearchService {
	if operations == nil {
		operations = Catalogue()
	}
	byName := make(map[string]domain.Operation, len(operations))
	for _, op := range operations {
		byName[op.Name] = op
	}
	return &ResearchService{
		client:     client,
		operations: operations,
		byName:     byName,
	}
}

// Operations returns the catalogue in registration order.
func (s *ResearchService) Operations() []domain.Operation {
	out := make([]domain.Operation, len(s.operations))
	copy(out, s.operations)
	return out
}

// Operation looks up a catalogue row by name.
func (s *ResearchService) Operation(name string) (domain.Operation, bool) {
	op, ok := s.byName[name]
	return op, ok
}

// Call invokes a catalogue operation.
func (s *ResearchService) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	op, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, name)
	}

	pathParams, query, err := bindArgs(op, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logger.FromContext(ctx).Debug().
		Str("operation", name).
		Str("query", query.Encode()).
		Msg("calling research API")

	return s.client.Fetch(ctx, op.Path, pathParams, query)
}

// ListPapersByAuthorName resolves name with an author search and lists the
// first match's papers.
func (s *ResearchService) ListPapersByAuthorName(
	ctx context.Context, name string, page, itemsPerPage *int,
) (any, error) {
	authors, err := s.Call(ctx, OpSearchAuthors, map[string]any{argFullName: name})
	if err != nil {
		return nil, err
	}

	if len(domain.Results(authors)) == 0 {
		logger.FromContext(ctx).Debug().Str("author", name).Msg("no matching author")
		return domain.EmptyEnvelope(), nil
	}

	authorID, _, err := domain.FirstResultID(authors)
	if err != nil {
		return nil, fmt.Errorf("author search result has no id: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("author", name).
		Str("author_id", authorID).
		Msg("resolved author")

	args := map[string]any{argAuthorID: authorID}
	if page != nil {
		args[domain.ParamPage] = *page
	}
	if itemsPerPage != nil {
		args[domain.ParamItemsPerPage] = *itemsPerPage
	}
	return s.Call(ctx, OpListPapersByAuthorID, args)
}

// bindArgs splits caller arguments into path parameters and the ordered
// query set, applying pagination defaults.
func bindArgs(op domain.Operation, args map[string]any) (map[string]string, domain.Params, error) {
	known := make(map[string]bool, len(op.PathParams)+len(op.Query)+2)

	pathParams := make(map[string]string, len(op.PathParams))
	for _, name := range op.PathParams {
		known[name] = true
		val, err := stringArg(name, args[name])
		if err != nil {
			return nil, nil, err
		}
		if val == nil || *val == "" {
			return nil, nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
		}
		pathParams[name] = *val
	}

	query := make(domain.Params, 0, len(op.Query)+2)
	for _, spec := range op.AllQuery() {
		arg := spec.ArgName()
		known[arg] = true

		value, err := convertArg(spec, args[arg])
		if err != nil {
			return nil, nil, err
		}
		if spec.Required && (value == nil || value == "") {
			return nil, nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, arg)
		}
		query = query.Set(spec.Name, value)
	}

	for name := range args {
		if !known[name] {
			return nil, nil, fmt.Errorf("%w: unknown argument %q", domain.ErrInvalidInput, name)
		}
	}

	if op.Paginated {
		if !query.Has(domain.ParamPage) {
			query = query.Set(domain.ParamPage, domain.Int(domain.DefaultPage))
		}
		if !query.Has(domain.ParamItemsPerPage) {
			query = query.Set(domain.ParamItemsPerPage, domain.Int(domain.DefaultItemsPerPage))
		}
	}

	return pathParams, query, nil
}

func convertArg(spec domain.ParamSpec, raw any) (any, error) {
	switch spec.Type {
	case domain.ParamTypeInteger:
		n, err := intArg(spec.ArgName(), raw)
		if err != nil {
			return nil, err
		}
		return domain.OptInt(n), nil
	default:
		s, err := stringArg(spec.ArgName(), raw)
		if err != nil {
			return nil, err
		}
		return domain.OptString(s), nil
	}
}

// stringArg accepts strings; nil means absent.
func stringArg(name string, raw any) (*string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a string, got %T", domain.ErrInvalidInput, name, raw)
	}
}

// intArg accepts Go integers, whole JSON numbers and decimal strings;
// nil means absent.
func intArg(name string, raw any) (*int, error) {
	invalid := func() (*int, error) {
		return nil, fmt.Errorf("%w: %s must be an integer, got %v", domain.ErrInvalidInput, name, raw)
	}

	var n int
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int:
		n = v
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return invalid()
		}
		n = int(v)
	case float64:
		// float64(math.MaxInt) rounds up to 2^63, which does not fit.
		if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
			return invalid()
		}
		n = int(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil || parsed < math.MinInt || parsed > math.MaxInt {
			return invalid()
		}
		n = int(parsed)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return invalid()
		}
		n = parsed
	default:
		return invalid()
	}
	return &n, nil
}
