package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kata_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kata_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)

	DictionaryWords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kata_dictionary_words",
			Help: "Number of words in the loaded dictionary",
		},
	)

	DictionaryReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kata_dictionary_reloads_total",
			Help: "Dictionary reloads by result",
		},
		[]string{"result"},
	)
)
