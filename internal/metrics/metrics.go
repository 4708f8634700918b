package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts processed requests by route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fakeinfo_http_requests_total",
		Help: "Number of HTTP requests processed, by route and status code.",
	}, []string{"route", "status"})

	// HTTPRequestDuration tracks request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fakeinfo_http_request_duration_seconds",
		Help:    "HTTP request latency, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// PersonsGenerated counts every fake person record produced.
	PersonsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fakeinfo_persons_generated_total",
		Help: "Number of fake persons generated.",
	})
)
