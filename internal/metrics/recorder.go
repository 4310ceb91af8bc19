package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultWarning  ResultLabel = "warning"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// OutcomeLabel is the final status of one generation.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeWarning  OutcomeLabel = "warning"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for site generation and the HTTP
// service.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveGenerationDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncGenerationOutcome(outcome OutcomeLabel)
	// AddSkippedLines counts malformed delimited lines dropped while parsing.
	AddSkippedLines(field string, n int)
	ObserveArchiveBytes(n int)
	ObserveHTTPRequest(route string, status int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration)    {}
func (NoopRecorder) ObserveGenerationDuration(time.Duration)       {}
func (NoopRecorder) IncStageResult(string, ResultLabel)            {}
func (NoopRecorder) IncGenerationOutcome(OutcomeLabel)             {}
func (NoopRecorder) AddSkippedLines(string, int)                   {}
func (NoopRecorder) ObserveArchiveBytes(int)                       {}
func (NoopRecorder) ObserveHTTPRequest(string, int, time.Duration) {}
