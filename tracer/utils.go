package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// StartSpan creates a new span with the given name and returns an updated
// context containing the span, along with the span itself.
//
// The created span becomes a child of any span in the provided context.
// If no span exists in the context, a new root span is created.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "embed-document")
//	defer span.End()
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name)
	return ctx, span
}

// RecordErrorOnSpan records an error on a span and sets its status to error.
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds one or more attributes to a span. Values can be strings,
// ints, int64s, float64s, or booleans; other types are converted to strings.
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// GetCarrier extracts the current trace context from a context object and
// returns it as a map that can be transmitted across service boundaries, for
// example as message headers. The map contains W3C Trace Context headers.
func (t *Tracer) GetCarrier(ctx context.Context) map[string]interface{} {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := make(map[string]interface{}, len(carrier))
	for k, v := range carrier {
		headers[k] = v
	}
	return headers
}

// ExtractCarrier restores trace context from headers previously produced by
// GetCarrier, returning a context that continues the remote trace. Non-string
// header values are ignored.
func (t *Tracer) ExtractCarrier(ctx context.Context, headers map[string]interface{}) context.Context {
	carrier := propagation.MapCarrier{}
	for k, v := range headers {
		if s, ok := v.(string); ok {
			carrier[k] = s
		}
	}
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}
