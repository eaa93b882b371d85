package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mercuryhook"

var (
	// HTTP metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// Delivery outcomes: forwarded, suppressed, rejected, failed
	deliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Total inbound Mercury webhook deliveries by outcome",
		},
		[]string{"trigger_type", "outcome"},
	)

	// Subscription lifecycle
	subscriptionOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscription_operations_total",
			Help:      "Total subscription create/delete operations",
		},
		[]string{"operation", "result"},
	)

	// Mercury API
	mercuryRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mercury_request_duration_seconds",
			Help:      "Mercury API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status_code"},
	)

	// Workflow engine hand-off
	engineMessagesQueued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_messages_queued_total",
			Help:      "Total resources queued for the workflow engine",
		},
		[]string{"trigger_type"},
	)

	engineDeliveryAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engine_delivery_attempts_total",
			Help:      "Total workflow engine delivery attempts",
		},
		[]string{"status"},
	)

	engineDeliveryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "engine_delivery_duration_seconds",
			Help:      "Workflow engine delivery duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	registry *prometheus.Registry
)

// Init initializes the metrics registry and returns the handler.
// If goMetrics is true, Go runtime metrics are included.
func Init(goMetrics bool) http.Handler {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		deliveriesTotal,
		subscriptionOpsTotal,
		mercuryRequestDuration,
		engineMessagesQueued,
		engineDeliveryAttempts,
		engineDeliveryDuration,
	)

	if goMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry: registry,
	})
}

// recordHTTPRequest records an HTTP request metric.
func recordHTTPRequest(method, path, statusCode string) {
	httpRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
}

// recordHTTPDuration records an HTTP request duration metric.
func recordHTTPDuration(method, path, statusCode string, duration float64) {
	httpRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
}

// RecordDelivery records the outcome of an inbound delivery.
func RecordDelivery(triggerType, outcome string) {
	deliveriesTotal.WithLabelValues(triggerType, outcome).Inc()
}

// RecordSubscriptionOp records a subscription create or delete.
func RecordSubscriptionOp(operation string, success bool) {
	subscriptionOpsTotal.WithLabelValues(operation, result(success)).Inc()
}

// RecordMercuryRequest records a Mercury API call.
func RecordMercuryRequest(method string, statusCode int, duration time.Duration) {
	mercuryRequestDuration.
		WithLabelValues(method, strconv.Itoa(statusCode)).
		Observe(duration.Seconds())
}

// RecordEngineQueued records a resource being queued for the workflow engine.
func RecordEngineQueued(triggerType string) {
	engineMessagesQueued.WithLabelValues(triggerType).Inc()
}

// RecordEngineDelivery records a workflow engine delivery attempt.
func RecordEngineDelivery(success bool, duration time.Duration) {
	engineDeliveryAttempts.WithLabelValues(result(success)).Inc()
	engineDeliveryDuration.Observe(duration.Seconds())
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
