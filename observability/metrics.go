package observability

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver counts events in a Prometheus counter labelled by event
// type, source and severity.
type MetricsObserver struct {
	events *prometheus.CounterVec
}

// NewMetricsObserver creates a MetricsObserver and registers its counter with
// reg. When an identical counter is already registered, the existing one is
// reused so several observers can share one registry.
func NewMetricsObserver(reg prometheus.Registerer, namespace string) (*MetricsObserver, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Total number of observability events by type, source and severity.",
	}, []string{"type", "source", "severity"})

	if reg != nil {
		if err := reg.Register(events); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return nil, err
			}
			existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			events = existing
		}
	}

	return &MetricsObserver{events: events}, nil
}

// Events exposes the underlying counter vector.
func (o *MetricsObserver) Events() *prometheus.CounterVec {
	return o.events
}

func (o *MetricsObserver) OnEvent(_ context.Context, event Event) {
	o.events.WithLabelValues(string(event.Type), event.Source, event.Level.String()).Inc()
}
