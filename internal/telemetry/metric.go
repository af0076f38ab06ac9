package telemetry

import (
	"backoffice/config"
	"backoffice/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal     *prometheus.CounterVec
	HttpRequestDuration   *prometheus.HistogramVec
	CatalogMutationsTotal *prometheus.CounterVec
	CheckoutSessionsTotal *prometheus.CounterVec
	WebhookEventsTotal    *prometheus.CounterVec
	FanoutFailuresTotal   *prometheus.CounterVec
	config                *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		CatalogMutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricCatalogMutations),
				Help: "Catalog entity mutation count by entity and action",
			},
			labelNames(core.MetricLabelEntity, core.MetricLabelAction, core.MetricLabelResult),
		),
		CheckoutSessionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricCheckoutSessions),
				Help: "Checkout sessions created against the payment gateway",
			},
			labelNames(core.MetricLabelResult),
		),
		WebhookEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricWebhookEvents),
				Help: "Payment gateway webhook events by result",
			},
			labelNames(core.MetricLabelResult),
		),
		FanoutFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricFanoutFailures),
				Help: "Reference fan-out failures by entity",
			},
			labelNames(core.MetricLabelEntity),
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
