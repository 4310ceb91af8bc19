package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/localsite/internal/archive"
	ferrors "git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/logfields"
	"git.home.luguber.info/inful/localsite/internal/profile"
	"git.home.luguber.info/inful/localsite/internal/render"
	"git.home.luguber.info/inful/localsite/internal/seo"
	"git.home.luguber.info/inful/localsite/internal/site"
	"git.home.luguber.info/inful/localsite/internal/sitecheck"
)

// Stage is a discrete unit of work in site generation.
type Stage func(ctx context.Context, gs *GenerationState) error

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Generation must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}
func newWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}
func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// GenerationState carries the profile and intermediate artifacts across stages.
type GenerationState struct {
	Generator *Generator
	Profile   *profile.BusinessProfile
	Stats     profile.ParseStats
	Site      *site.Site
	Archive   []byte
	Report    *Report
	logger    *slog.Logger
}

// runStages executes stages in order, recording timing and stopping on the
// first fatal or canceled stage. Warnings are recorded and execution continues.
func runStages(ctx context.Context, gs *GenerationState, stages []StageDef) error {
	rec := gs.Generator.recorder
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := newCanceledStageError(st.Name, ctx.Err())
			gs.Report.recordStageError(se, rec)
			return se
		default:
		}

		t0 := time.Now()
		err := st.Fn(ctx, gs)
		dur := time.Since(t0)
		gs.Report.StageDurations[string(st.Name)] = dur
		rec.ObserveStageDuration(string(st.Name), dur)
		gs.logger.Debug("Stage finished", logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))

		if err == nil {
			gs.Report.recordStageResult(st.Name, StageResultSuccess, rec)
			continue
		}

		var se *StageError
		if !errors.As(err, &se) {
			se = newFatalStageError(st.Name, err)
		}
		gs.Report.recordStageError(se, rec)
		if se.Kind == StageErrorWarning {
			gs.logger.Warn("Stage reported a warning", logfields.Stage(string(st.Name)), logfields.Error(se.Err))
			continue
		}
		return se
	}
	return nil
}

func stageValidateProfile(_ context.Context, gs *GenerationState) error {
	g := gs.Generator
	p := gs.Profile
	if p.BaseURL == "" {
		p.BaseURL = g.cfg.Site.BaseURL
	}

	// Dropped lines are reported even when validation fails below.
	gs.Report.SkippedTestimonials = gs.Stats.SkippedTestimonials
	gs.Report.SkippedFAQ = gs.Stats.SkippedFAQ
	g.recorder.AddSkippedLines(profile.FieldTestimonials, gs.Stats.SkippedTestimonials)
	g.recorder.AddSkippedLines(profile.FieldFAQ, gs.Stats.SkippedFAQ)
	if n := gs.Stats.Skipped(); n > 0 {
		gs.logger.Info("Dropped malformed delimited lines", logfields.SkippedLines(n))
	}

	if err := p.Validate(g.cfg.Site.RequiredFields); err != nil {
		return newFatalStageError(StageValidateProfile, err)
	}

	if p.BaseURL == "" {
		gs.Report.AddIssue(IssueMissingBaseURL, StageValidateProfile, SeverityWarning,
			"no base URL configured; sitemap and robots.txt use relative locations", nil)
		return newWarnStageError(StageValidateProfile, ferrors.ValidationError("base URL is not set").Build())
	}
	return nil
}

func stageRenderPages(_ context.Context, gs *GenerationState) error {
	r, err := render.NewRenderer(render.OptionsFromConfig(gs.Generator.cfg, gs.Profile))
	if err != nil {
		return newFatalStageError(StageRenderPages, err)
	}
	s, err := r.Render(gs.Profile)
	if err != nil {
		return newFatalStageError(StageRenderPages, err)
	}
	gs.Site = s
	gs.Report.Pages = len(s.Pages())
	for _, pg := range s.Pages() {
		gs.logger.Debug("Page rendered", logfields.Page(string(pg)))
	}
	return nil
}

func stageVerifyLinks(_ context.Context, gs *GenerationState) error {
	issues := sitecheck.CheckSite(gs.Site, gs.Profile.BaseURL)
	if len(issues) == 0 {
		return nil
	}
	for _, is := range issues {
		gs.logger.Warn("Broken internal link", logfields.File(is.File), logfields.Path(is.URL))
		gs.Report.AddIssue(IssueBrokenLink, StageVerifyLinks, SeverityWarning, is.String(), nil)
	}
	return newWarnStageError(StageVerifyLinks, fmt.Errorf("%d broken internal link(s)", len(issues)))
}

func stageBuildAncillary(_ context.Context, gs *GenerationState) error {
	if err := seo.Build(gs.Profile.BaseURL, gs.Site); err != nil {
		return newFatalStageError(StageBuildAncillary, err)
	}
	return nil
}

func stagePackageArchive(_ context.Context, gs *GenerationState) error {
	data, err := archive.Package(gs.Site.Files())
	if err != nil {
		return newFatalStageError(StagePackageArchive, err)
	}
	gs.Archive = data
	gs.Report.Files = gs.Site.Len()
	gs.Report.ArchiveBytes = len(data)
	gs.Generator.recorder.ObserveArchiveBytes(len(data))
	return nil
}
