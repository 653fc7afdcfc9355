package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Operation statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// OperationContext tracks one CLI operation across its span and metrics.
type OperationContext struct {
	OperationName string
	RunID         string
	StartTime     time.Time
	Metrics       *Metrics
}

// NewOperationContext creates a new operation context.
// If metrics is nil, metric recording is silently skipped.
func NewOperationContext(operationName, runID string, metrics *Metrics) *OperationContext {
	return &OperationContext{
		OperationName: operationName,
		RunID:         runID,
		StartTime:     time.Now(),
		Metrics:       metrics,
	}
}

type operationContextKey struct{}

// WithOperationContext stores an OperationContext in the context.
func WithOperationContext(ctx context.Context, oc *OperationContext) context.Context {
	return context.WithValue(ctx, operationContextKey{}, oc)
}

// OperationContextFromContext retrieves the OperationContext from context, or nil.
func OperationContextFromContext(ctx context.Context) *OperationContext {
	if oc, ok := ctx.Value(operationContextKey{}).(*OperationContext); ok {
		return oc
	}
	return nil
}

// Start starts the operation span and stores oc in the returned context.
func (oc *OperationContext) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, "utl."+oc.OperationName)
	span.SetAttributes(
		attribute.String(AttrOperationName, oc.OperationName),
		attribute.String(AttrRunID, oc.RunID),
	)
	return WithOperationContext(ctx, oc), span
}

// RecordBytesRemoved adds n to the removed-bytes metric.
func (oc *OperationContext) RecordBytesRemoved(ctx context.Context, n int) {
	if oc.Metrics != nil {
		oc.Metrics.RecordBytesRemoved(ctx, oc.OperationName, n)
	}
}

// End ends the span and records the operation metrics.
func (oc *OperationContext) End(ctx context.Context, span trace.Span, status string, err error) {
	duration := time.Since(oc.StartTime)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if oc.Metrics != nil {
		oc.Metrics.RecordOperation(ctx, oc.OperationName, status, duration)
	}
}

// Duration returns the elapsed time since operation start.
func (oc *OperationContext) Duration() time.Duration {
	return time.Since(oc.StartTime)
}
