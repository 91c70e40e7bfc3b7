package service

import (
	"context"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/winforge/autoit-mcp/internal/services/automation/audit"
	"github.com/winforge/autoit-mcp/internal/services/automation/domain"
)

const tracerName = "autoit-mcp"

// instrument wraps a tool handler with a trace span and an audit record. The
// wrapped handler is otherwise untouched: envelopes pass through as-is, and a
// recorder failure is logged rather than surfaced to the client.
func instrument[I any, O any](toolName string, recorder audit.Recorder, handler mcp.ToolHandlerFor[I, O]) mcp.ToolHandlerFor[I, O] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input I) (*mcp.CallToolResult, O, error) {
		tracer := otel.Tracer(tracerName)
		spanCtx, span := tracer.Start(ctx, "tool/"+toolName)
		defer span.End()

		start := time.Now()
		toolResult, output, err := handler(spanCtx, req, input)
		elapsed := time.Since(start)

		record := audit.Record{
			Tool:      toolName,
			Outcome:   "ok",
			Duration:  elapsed,
			CreatedAt: start,
		}
		if narrated, ok := any(output).(domain.Narrated); ok {
			narration := narrated.Narration()
			if narration.Outcome != "" {
				record.Outcome = narration.Outcome
			}
			record.Detail = narration.Detail
		}
		if err != nil {
			record.Outcome = "error"
			record.Detail = err.Error()
		}
		span.SetAttributes(
			attribute.String("tool.name", toolName),
			attribute.String("tool.outcome", record.Outcome),
		)

		if recordErr := recorder.Put(spanCtx, record); recordErr != nil {
			log.Printf("audit record for %s failed: %v", toolName, recordErr)
		}

		return toolResult, output, err
	}
}
