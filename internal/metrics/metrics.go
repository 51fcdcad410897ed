package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecordsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "voldash_records_generated_total", Help: "Records produced by the series generator"},
		[]string{"domain"},
	)
	GenerationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voldash_generation_seconds",
			Help:    "Time spent generating one dataset",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"domain"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "voldash_http_requests_total", Help: "API requests served"},
		[]string{"route", "code"},
	)
	StreamClients = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "voldash_stream_clients", Help: "Connected heartbeat websocket clients"},
	)
)

func init() {
	prometheus.MustRegister(RecordsGenerated, GenerationSeconds, HTTPRequests, StreamClients)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
