// Package observability wires OpenTelemetry tracing and metrics into
// PromoStandards calls.
//
// Every call made by a client runs inside a Call: a span named after the
// operation plus a call counter, an in-flight gauge and a duration
// histogram. Spans and instruments go to the global OpenTelemetry
// providers, which are no-ops until the host application installs real
// ones. InitTracer and InitMeter do that with OTLP/HTTP exporters:
//
//	tp, err := observability.InitTracer(ctx, observability.TracerConfig{
//	    ServiceName: "catalog-sync",
//	    Endpoint:    "otel-collector:4318",
//	})
//	defer tp.Shutdown(ctx)
package observability
