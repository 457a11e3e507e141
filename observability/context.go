package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Call statuses recorded on spans and metrics.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Call tracks one PromoStandards operation from start to finish.
type Call struct {
	Service   string
	Operation string
	WSVersion string
	RequestID string
	Endpoint  string
	StartTime time.Time
	// Metrics may be nil, in which case nothing is recorded.
	Metrics *Metrics

	span trace.Span
}

// NewCall creates a call record. It is not started until Start.
func NewCall(service, operation, requestID string, metrics *Metrics) *Call {
	return &Call{
		Service:   service,
		Operation: operation,
		RequestID: requestID,
		Metrics:   metrics,
	}
}

type callKey struct{}

// CallFromContext returns the Call started on ctx, or nil.
func CallFromContext(ctx context.Context) *Call {
	if c, ok := ctx.Value(callKey{}).(*Call); ok {
		return c
	}
	return nil
}

// Start opens the span and records the call start.
func (c *Call) Start(ctx context.Context) context.Context {
	c.StartTime = time.Now()
	ctx, c.span = StartSpan(ctx, "promostandards."+c.Operation)
	c.span.SetAttributes(
		attribute.String(AttrPSService, c.Service),
		attribute.String(AttrOperationName, c.Operation),
		attribute.String(AttrRequestID, c.RequestID),
	)
	if c.WSVersion != "" {
		c.span.SetAttributes(attribute.String(AttrWSVersion, c.WSVersion))
	}
	if c.Endpoint != "" {
		c.span.SetAttributes(attribute.String(AttrEndpoint, c.Endpoint))
	}
	if c.Metrics != nil {
		c.Metrics.RecordCallStart(ctx, c.Service, c.Operation)
	}
	return context.WithValue(ctx, callKey{}, c)
}

// End closes the span and records the outcome. errCode is attached to the
// span when err is non-nil.
func (c *Call) End(ctx context.Context, err error, errCode string) {
	duration := c.Duration()
	status := StatusOK
	if err != nil {
		status = StatusError
		SetSpanError(ctx, err)
		if errCode != "" {
			c.span.SetAttributes(attribute.String(AttrErrorCode, errCode))
		}
	}

	c.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	c.span.End()

	if c.Metrics != nil {
		c.Metrics.RecordCallEnd(ctx, c.Service, c.Operation, status, duration)
	}
}

// Duration returns the time since Start.
func (c *Call) Duration() time.Duration {
	return time.Since(c.StartTime)
}
