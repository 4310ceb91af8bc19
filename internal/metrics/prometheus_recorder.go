package metrics

import (
	"strconv"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "localsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	stageDuration      *prom.HistogramVec
	generationDuration prom.Histogram
	stageResults       *prom.CounterVec
	outcomes           *prom.CounterVec
	skippedLines       *prom.CounterVec
	archiveBytes       prom.Histogram
	httpDuration       *prom.HistogramVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
// A nil registry gets a private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.generationDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Total site generation duration",
			Buckets:   prom.DefBuckets,
		})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.outcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "generation_outcomes_total",
			Help:      "Generation outcomes by final status",
		}, []string{"outcome"})
		pr.skippedLines = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_lines_total",
			Help:      "Malformed delimited input lines dropped, by field",
		}, []string{"field"})
		pr.archiveBytes = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "archive_size_bytes",
			Help:      "Size of produced site archives",
			Buckets:   prom.ExponentialBuckets(4096, 2, 10),
		})
		pr.httpDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route and status code",
			Buckets:   prom.DefBuckets,
		}, []string{"route", "code"})
		reg.MustRegister(pr.stageDuration, pr.generationDuration, pr.stageResults, pr.outcomes,
			pr.skippedLines, pr.archiveBytes, pr.httpDuration)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveGenerationDuration(d time.Duration) {
	if p == nil || p.generationDuration == nil {
		return
	}
	p.generationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncGenerationOutcome(outcome OutcomeLabel) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddSkippedLines(field string, n int) {
	if p == nil || p.skippedLines == nil || n <= 0 {
		return
	}
	p.skippedLines.WithLabelValues(field).Add(float64(n))
}

func (p *PrometheusRecorder) ObserveArchiveBytes(n int) {
	if p == nil || p.archiveBytes == nil {
		return
	}
	p.archiveBytes.Observe(float64(n))
}

func (p *PrometheusRecorder) ObserveHTTPRequest(route string, status int, d time.Duration) {
	if p == nil || p.httpDuration == nil {
		return
	}
	p.httpDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}
