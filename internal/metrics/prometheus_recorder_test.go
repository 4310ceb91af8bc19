package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("render_pages", 150*time.Millisecond)
	pr.ObserveGenerationDuration(500 * time.Millisecond)
	pr.IncStageResult("render_pages", ResultSuccess)
	pr.IncGenerationOutcome(OutcomeSuccess)
	pr.AddSkippedLines("testimonials", 2)
	pr.AddSkippedLines("faq", 0)
	pr.ObserveArchiveBytes(12000)
	pr.ObserveHTTPRequest("/api/v1/sites", http.StatusOK, 20*time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				byName[mf.GetName()] += c.GetValue()
			}
		}
	}
	require.InDelta(t, 2, byName["localsite_skipped_lines_total"], 0)
	require.InDelta(t, 1, byName["localsite_generation_outcomes_total"], 0)
	require.InDelta(t, 1, byName["localsite_stage_results_total"], 0)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.ObserveStageDuration("render_pages", time.Second)
		pr.IncGenerationOutcome(OutcomeFailed)
		pr.AddSkippedLines("faq", 1)
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncGenerationOutcome(OutcomeWarning)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `localsite_generation_outcomes_total{outcome="warning"} 1`)
}

var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)
