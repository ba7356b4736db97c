// Package metrics exposes facade and view rebuild metrics to Prometheus.
package metrics

import (
	"time"

	"foodbank/config"
	"foodbank/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const namespace = "foodbank"

type prometheusRecorder struct {
	actionTotal    *prometheus.CounterVec
	actionDuration *prometheus.HistogramVec
	rebuildTotal   *prometheus.CounterVec
	rebuildSeconds prometheus.Histogram
	recordsCreated *prometheus.CounterVec
}

// NewPrometheusRecorder registers the collectors on registerer.
// A nil registerer falls back to the default registry.
func NewPrometheusRecorder(registerer prometheus.Registerer, serviceName, env string) service.MetricsRecorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	constLabels := prometheus.Labels{"service": serviceName, "env": env}

	recorder := &prometheusRecorder{
		actionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "action_total",
			Help:        "Dispatched facade actions by outcome.",
			ConstLabels: constLabels,
		}, []string{"action", "outcome"}),
		actionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "action_duration_seconds",
			Help:        "Facade action latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"action"}),
		rebuildTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "view_rebuild_total",
			Help:        "View rebuilds by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		rebuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "view_rebuild_duration_seconds",
			Help:        "Time spent rebuilding all views.",
			ConstLabels: constLabels,
			Buckets:     []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		recordsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "records_created_total",
			Help:        "Created records by kind.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}

	registerer.MustRegister(
		recorder.actionTotal,
		recorder.actionDuration,
		recorder.rebuildTotal,
		recorder.rebuildSeconds,
		recorder.recordsCreated,
	)

	return recorder
}

func (r *prometheusRecorder) ObserveAction(action, outcome string, elapsed time.Duration) {
	r.actionTotal.WithLabelValues(action, outcome).Inc()
	r.actionDuration.WithLabelValues(action).Observe(elapsed.Seconds())
}

func (r *prometheusRecorder) ObserveRebuild(elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	r.rebuildTotal.WithLabelValues(outcome).Inc()
	r.rebuildSeconds.Observe(elapsed.Seconds())
}

func (r *prometheusRecorder) ObserveRecordCreated(kind string) {
	r.recordsCreated.WithLabelValues(kind).Inc()
}

type noopRecorder struct{}

func (noopRecorder) ObserveAction(string, string, time.Duration) {}

func (noopRecorder) ObserveRebuild(time.Duration, error) {}

func (noopRecorder) ObserveRecordCreated(string) {}

// NewNoopRecorder returns a recorder that drops every observation.
func NewNoopRecorder() service.MetricsRecorder {
	return noopRecorder{}
}

// Params holds dependencies for the recorder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// New returns the Prometheus recorder when metrics are enabled.
func New(params Params) service.MetricsRecorder {
	if params.Config.Metrics == nil || !params.Config.Metrics.Enabled {
		return NewNoopRecorder()
	}

	return NewPrometheusRecorder(prometheus.DefaultRegisterer, params.Config.Env.ServiceName, params.Config.Env.Env)
}
