package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestServeRegistersMetrics(t *testing.T) {
	srv := Serve(":0")
	defer srv.Close()

	RecordsGenerated.WithLabelValues("vixTermStructure").Add(5)

	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	found := false
	for _, mf := range mfs {
		if mf.GetName() == "voldash_records_generated_total" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("voldash_records_generated_total metric not found")
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	HTTPRequests.WithLabelValues("/healthz", "200").Inc()
	GenerationSeconds.WithLabelValues("dividendFutures").Observe(0.001)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	for _, name := range []string{"voldash_http_requests_total", "voldash_generation_seconds", "voldash_stream_clients"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition", name)
		}
	}
}
