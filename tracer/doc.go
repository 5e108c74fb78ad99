// Package tracer provides distributed tracing functionality using OpenTelemetry.
//
// It abstracts the OpenTelemetry SDK behind a small API for creating spans,
// recording errors, attaching attributes, and propagating trace context
// across service boundaries — including through message queue headers, which
// is how the embedding task bus keeps enqueue and processing spans connected.
//
// # Usage
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-embedding-task")
//	defer span.End()
//
//	if err := doWork(ctx); err != nil {
//	    tracerClient.RecordErrorOnSpan(span, err)
//	    return err
//	}
//
// # Propagation Through Queues
//
//	// Publisher side
//	headers := tracerClient.GetCarrier(ctx)
//	queue.Publish(ctx, payload, headers)
//
//	// Consumer side
//	ctx = tracerClient.ExtractCarrier(context.Background(), msg.Header())
//
// # Export
//
// When Config.EnableExport is true, spans are exported over OTLP HTTP; the
// exporter endpoint is configured via the standard OTEL_EXPORTER_OTLP_*
// environment variables.
package tracer
