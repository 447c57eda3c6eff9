package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pwc-mcp/internal/logger"
)

const methodCallTool = "tools/call"

// callMiddleware tags every tool call with an id and a request-scoped
// logger, then records its outcome and duration.
func (s *Server) callMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if method != methodCallTool {
			return next(ctx, method, req)
		}

		tool := ""
		if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
			tool = call.Params.Name
		}

		log := logger.L().With().
			Str("call_id", uuid.NewString()).
			Str("tool", tool).
			Logger()
		ctx = log.WithContext(ctx)

		start := time.Now()
		res, err := next(ctx, method, req)
		elapsed := time.Since(start)

		failed := err != nil
		if result, ok := res.(*mcp.CallToolResult); ok && result != nil && result.IsError {
			failed = true
		}
		s.ports.Metrics.RecordToolCall(tool, failed, elapsed.Seconds())

		event := log.Debug()
		if failed {
			event = log.Warn().Err(err)
		}
		event.Dur("elapsed", elapsed).Bool("failed", failed).Msg("tool call")

		return res, err
	}
}
