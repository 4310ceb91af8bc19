package generator

import (
	"encoding/json"
	"fmt"
	"time"

	"git.home.luguber.info/inful/localsite/internal/metrics"
)

// Outcome is the typed enumeration of final generation result states.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeWarning  Outcome = "warning"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// StageResult enumerates per-stage classification outcomes.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultWarning  StageResult = "warning"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
)

// IssueCode enumerates machine-parseable issue identifiers.
type IssueCode string

const (
	IssueMissingField   IssueCode = "MISSING_REQUIRED_FIELD"
	IssueMissingBaseURL IssueCode = "MISSING_BASE_URL"
	IssueBrokenLink     IssueCode = "BROKEN_INTERNAL_LINK"
	IssueEncoding       IssueCode = "ARCHIVE_ENCODING_FAILURE"
	IssueCanceled       IssueCode = "GENERATION_CANCELED"
	IssueGenericStage   IssueCode = "GENERIC_STAGE_ERROR"
)

// IssueSeverity represents normalized severity levels.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue is a structured entry describing a discrete problem.
type Issue struct {
	Code     IssueCode     `json:"code"`
	Stage    StageName     `json:"stage"`
	Severity IssueSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// StageCount aggregates counts of outcomes for a stage.
type StageCount struct {
	Success  int `json:"success"`
	Warning  int `json:"warning"`
	Fatal    int `json:"fatal"`
	Canceled int `json:"canceled"`
}

// Report captures what happened during one generation.
type Report struct {
	ID                  string
	Site                string
	Start               time.Time
	End                 time.Time
	Errors              []error
	Warnings            []error
	Issues              []Issue
	StageDurations      map[string]time.Duration
	StageErrorKinds     map[StageName]StageErrorKind
	StageCounts         map[StageName]StageCount
	SkippedTestimonials int
	SkippedFAQ          int
	Pages               int
	Files               int
	ArchiveBytes        int
	Outcome             Outcome
}

func newReport(id, siteName string) *Report {
	return &Report{
		ID:              id,
		Site:            siteName,
		Start:           time.Now(),
		StageDurations:  make(map[string]time.Duration),
		StageErrorKinds: make(map[StageName]StageErrorKind),
		StageCounts:     make(map[StageName]StageCount),
	}
}

// AddIssue appends a structured issue and mirrors err into Errors or
// Warnings by severity. Provide err=nil for purely informational issues.
func (r *Report) AddIssue(code IssueCode, stage StageName, severity IssueSeverity, msg string, err error) {
	r.Issues = append(r.Issues, Issue{Code: code, Stage: stage, Severity: severity, Message: msg})
	if err == nil {
		return
	}
	switch severity {
	case SeverityError:
		r.Errors = append(r.Errors, err)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, err)
	}
}

// SkippedLines is the total number of malformed delimited lines dropped.
func (r *Report) SkippedLines() int {
	return r.SkippedTestimonials + r.SkippedFAQ
}

func (r *Report) recordStageResult(stage StageName, res StageResult, recorder metrics.Recorder) {
	sc := r.StageCounts[stage]
	switch res {
	case StageResultSuccess:
		sc.Success++
		recorder.IncStageResult(string(stage), metrics.ResultSuccess)
	case StageResultWarning:
		sc.Warning++
		recorder.IncStageResult(string(stage), metrics.ResultWarning)
	case StageResultFatal:
		sc.Fatal++
		recorder.IncStageResult(string(stage), metrics.ResultFatal)
	case StageResultCanceled:
		sc.Canceled++
		recorder.IncStageResult(string(stage), metrics.ResultCanceled)
	}
	r.StageCounts[stage] = sc
}

func (r *Report) recordStageError(se *StageError, recorder metrics.Recorder) {
	r.StageErrorKinds[se.Stage] = se.Kind
	switch se.Kind {
	case StageErrorWarning:
		r.Warnings = append(r.Warnings, se)
		r.recordStageResult(se.Stage, StageResultWarning, recorder)
	case StageErrorCanceled:
		r.Errors = append(r.Errors, se)
		r.Issues = append(r.Issues, Issue{Code: IssueCanceled, Stage: se.Stage, Severity: SeverityError, Message: se.Err.Error()})
		r.recordStageResult(se.Stage, StageResultCanceled, recorder)
	default:
		r.Errors = append(r.Errors, se)
		r.Issues = append(r.Issues, Issue{Code: issueCodeFor(se), Stage: se.Stage, Severity: SeverityError, Message: se.Err.Error()})
		r.recordStageResult(se.Stage, StageResultFatal, recorder)
	}
}

func (r *Report) finish() {
	r.End = time.Now()
	r.deriveOutcome()
}

func (r *Report) deriveOutcome() {
	if len(r.Errors) > 0 {
		for _, e := range r.Errors {
			if se, ok := e.(*StageError); ok && se.Kind == StageErrorCanceled {
				r.Outcome = OutcomeCanceled
				return
			}
		}
		r.Outcome = OutcomeFailed
		return
	}
	if len(r.Warnings) > 0 {
		r.Outcome = OutcomeWarning
		return
	}
	r.Outcome = OutcomeSuccess
}

// Elapsed returns the wall time of the generation.
func (r *Report) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	dur := r.Elapsed()
	return fmt.Sprintf("site=%s pages=%d files=%d bytes=%d skipped_lines=%d duration=%s errors=%d warnings=%d outcome=%s",
		r.Site, r.Pages, r.Files, r.ArchiveBytes, r.SkippedLines(), dur.Truncate(time.Millisecond),
		len(r.Errors), len(r.Warnings), r.Outcome)
}

// ReportSerializable is the JSON form of a Report.
type ReportSerializable struct {
	ID                  string                `json:"id"`
	Site                string                `json:"site"`
	Start               time.Time             `json:"start"`
	End                 time.Time             `json:"end"`
	Outcome             Outcome               `json:"outcome"`
	Pages               int                   `json:"pages"`
	Files               int                   `json:"files"`
	ArchiveBytes        int                   `json:"archive_bytes"`
	SkippedTestimonials int                   `json:"skipped_testimonials"`
	SkippedFAQ          int                   `json:"skipped_faq"`
	StageDurationsMS    map[string]float64    `json:"stage_durations_ms"`
	StageCounts         map[string]StageCount `json:"stage_counts"`
	Errors              []string              `json:"errors"`
	Warnings            []string              `json:"warnings"`
	Issues              []Issue               `json:"issues"`
}

// Serializable converts r into its JSON form.
func (r *Report) Serializable() ReportSerializable {
	out := ReportSerializable{
		ID:                  r.ID,
		Site:                r.Site,
		Start:               r.Start,
		End:                 r.End,
		Outcome:             r.Outcome,
		Pages:               r.Pages,
		Files:               r.Files,
		ArchiveBytes:        r.ArchiveBytes,
		SkippedTestimonials: r.SkippedTestimonials,
		SkippedFAQ:          r.SkippedFAQ,
		StageDurationsMS:    make(map[string]float64, len(r.StageDurations)),
		StageCounts:         make(map[string]StageCount, len(r.StageCounts)),
		Errors:              make([]string, 0, len(r.Errors)),
		Warnings:            make([]string, 0, len(r.Warnings)),
		Issues:              r.Issues,
	}
	if out.Issues == nil {
		out.Issues = []Issue{}
	}
	for k, v := range r.StageDurations {
		out.StageDurationsMS[k] = float64(v.Microseconds()) / 1000
	}
	for k, v := range r.StageCounts {
		out.StageCounts[string(k)] = v
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, e.Error())
	}
	for _, w := range r.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	return out
}

// MarshalJSON encodes the serializable form.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Serializable())
}
