package observability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tailored-agentic-units/statechain/observability"
)

func TestTraceObserver_RecordsSpanEvents(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, span := provider.Tracer("test").Start(context.Background(), "chain")

	obs := observability.NewTraceObserver("statechain.")
	obs.OnEvent(ctx, observability.Event{
		Type:      "state.succeed",
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "state",
		Data: map[string]any{
			"fields": 3,
			"added":  []string{"a"},
			"error":  errors.New("boom"),
		},
	})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "statechain.state.succeed", events[0].Name)

	attrs := make(map[attribute.Key]attribute.Value, len(events[0].Attributes))
	for _, kv := range events[0].Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "state", attrs["event.source"].AsString())
	assert.Equal(t, "DEBUG", attrs["event.severity"].AsString())
	assert.Equal(t, int64(3), attrs["fields"].AsInt64())
	assert.Equal(t, []string{"a"}, attrs["added"].AsStringSlice())
	assert.Equal(t, "boom", attrs["error"].AsString())
}

func TestTraceObserver_NoSpanIsNoop(t *testing.T) {
	obs := observability.NewTraceObserver("")
	assert.NotPanics(t, func() {
		obs.OnEvent(context.Background(), observability.Event{Type: "state.create"})
	})
}

func TestMetricsObserver_CountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := observability.NewMetricsObserver(reg, "statechain")
	require.NoError(t, err)

	for range 2 {
		obs.OnEvent(context.Background(), observability.Event{
			Type:   "state.succeed",
			Level:  observability.LevelVerbose,
			Source: "state",
		})
	}
	obs.OnEvent(context.Background(), observability.Event{
		Type:   "state.fail",
		Level:  observability.LevelWarning,
		Source: "state",
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.Events().WithLabelValues("state.succeed", "state", "DEBUG")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Events().WithLabelValues("state.fail", "state", "WARN")))
}

func TestMetricsObserver_SharesRegisteredCounter(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := observability.NewMetricsObserver(reg, "statechain")
	require.NoError(t, err)
	second, err := observability.NewMetricsObserver(reg, "statechain")
	require.NoError(t, err)

	first.OnEvent(context.Background(), observability.Event{Type: "state.finish", Level: observability.LevelVerbose, Source: "state"})
	second.OnEvent(context.Background(), observability.Event{Type: "state.finish", Level: observability.LevelVerbose, Source: "state"})

	assert.Equal(t, 2.0, testutil.ToFloat64(first.Events().WithLabelValues("state.finish", "state", "DEBUG")))
}
