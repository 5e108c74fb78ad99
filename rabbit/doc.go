// Package rabbit implements the embedding task queue over RabbitMQ.
//
// The client owns one connection and one channel, reconnecting automatically
// when the broker drops the link. Consumers declare the full topology: a
// durable direct exchange, the main task queue, and a dead-letter exchange
// plus queue. Tasks that fail processing are Nacked without requeue, which
// routes them to the dead-letter queue; the broker's redelivery plus the DLQ
// provide the bounded retry policy the orchestrator itself deliberately
// lacks.
//
// Publish accepts optional headers, used to carry the OpenTelemetry trace
// context from the enqueuing request into the consuming worker.
package rabbit
