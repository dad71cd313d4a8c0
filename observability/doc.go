// Package observability provides event-based observability for state chains
// and pipelines.
//
// # Core Components
//
// Observer - Interface for receiving events
//
// Event - Event metadata (type, level, timestamp, source, data)
//
// Level - Severity aligned with OpenTelemetry SeverityNumber ranges, so events
// reach OTel collectors without translation
//
// NoOpObserver - Observer that discards every event
//
// # Implementations
//
//   - SlogObserver writes events through a *slog.Logger
//   - TraceObserver adds events to the span carried by the context
//   - MetricsObserver counts events in a Prometheus counter vector
//   - MultiObserver fans events out to several observers
//
// # Observer Registry
//
// Observers are selected by name from configuration:
//
//	observability.RegisterObserver("trace", observability.NewTraceObserver("statechain"))
//	observer, err := observability.GetObserver("trace")
//
// "noop" and "slog" are registered by default; an empty name resolves to
// "noop".
//
//	{"chain": {"observer": "slog"}, "pipeline": {"name": "ingest", "observer": "trace"}}
package observability
