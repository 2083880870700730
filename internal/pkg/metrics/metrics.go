package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// --- Inbound (server) metrics ---
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "route", "code"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	HTTPRequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_errors_total",
			Help: "Total number of HTTP requests resulting in client or server errors.",
		},
		[]string{"method", "route", "code"},
	)

	// --- Outbound (login client) metrics ---
	HTTPClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_requests_total",
			Help: "Total number of outbound login requests that got a response.",
		},
		[]string{"method", "code"},
	)
	HTTPClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_client_request_duration_seconds",
			Help:    "Latency of outbound login requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)
	HTTPClientTransportErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_client_transport_errors_total",
			Help: "Total number of outbound login requests that produced no response.",
		},
		[]string{"method"},
	)

	// --- Login outcomes ---
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts by classified outcome.",
		},
		[]string{"kind", "reason"},
	)
	ResultSinkErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_sink_errors_total",
			Help: "Outcomes that could not be written to the result sink.",
		},
		[]string{"sink"},
	)

	// --- Runtime metrics ---
	CPUCount = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "process_cpu_count",
			Help: "Number of CPU cores available.",
		},
		func() float64 { return float64(runtime.NumCPU()) },
	)
)

// MetricsRegister builds the registry served by the metrics server.
func MetricsRegister() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequestsTotal,
		HTTPRequestDuration,
		HTTPRequestErrorsTotal,
		HTTPClientRequestsTotal,
		HTTPClientRequestDuration,
		HTTPClientTransportErrorsTotal,
		LoginAttemptsTotal,
		ResultSinkErrorsTotal,
		CPUCount,
	)

	return reg
}
