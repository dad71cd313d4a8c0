package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceObserver records events as OpenTelemetry span events on the span
// carried by the event context. Events emitted outside a recording span are
// dropped.
type TraceObserver struct {
	prefix string
}

// NewTraceObserver creates a TraceObserver. The prefix is prepended to every
// span event name ("statechain." yields "statechain.state.succeed").
func NewTraceObserver(prefix string) *TraceObserver {
	return &TraceObserver{prefix: prefix}
}

func (o *TraceObserver) OnEvent(ctx context.Context, event Event) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := make([]attribute.KeyValue, 0, len(event.Data)+2)
	attrs = append(attrs,
		attribute.String("event.source", event.Source),
		attribute.String("event.severity", event.Level.String()),
	)
	for k, v := range event.Data {
		attrs = append(attrs, toAttribute(k, v))
	}

	opts := []trace.EventOption{trace.WithAttributes(attrs...)}
	if !event.Timestamp.IsZero() {
		opts = append(opts, trace.WithTimestamp(event.Timestamp))
	}
	span.AddEvent(o.prefix+string(event.Type), opts...)
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case time.Duration:
		return attribute.String(key, v.String())
	case []string:
		return attribute.StringSlice(key, v)
	case error:
		return attribute.String(key, v.Error())
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
