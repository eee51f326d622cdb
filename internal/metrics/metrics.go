// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "floorboard_http_requests_total",
		Help: "HTTP requests by route pattern, method and status code",
	}, []string{"route", "method", "status"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "floorboard_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern and method",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	FloorStoreOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "floorboard_floor_store_operations_total",
		Help: "Floor store operations by backend, operation and result",
	}, []string{"backend", "op", "result"})
	FloorStoreDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "floorboard_floor_store_duration_seconds",
		Help:    "Floor store operation latency by backend and operation",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"backend", "op"})
	FloorsPublished = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "floorboard_floors_published",
		Help: "Number of floors in the most recent successful publish",
	})

	UploadBytesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "floorboard_upload_bytes_total",
		Help: "Bytes of floor images written to object storage",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(FloorStoreOpsTotal)
	prometheus.MustRegister(FloorStoreDuration)
	prometheus.MustRegister(FloorsPublished)
	prometheus.MustRegister(UploadBytesTotal)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
