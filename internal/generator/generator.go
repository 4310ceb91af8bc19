// Package generator runs the site generation pipeline: a collected field
// mapping goes in, a rendered site and its zip archive come out.
package generator

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/localsite/internal/archive"
	"git.home.luguber.info/inful/localsite/internal/config"
	ferrors "git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/logfields"
	"git.home.luguber.info/inful/localsite/internal/metrics"
	"git.home.luguber.info/inful/localsite/internal/profile"
	"git.home.luguber.info/inful/localsite/internal/site"
)

// Generator holds the configuration shared by every generation. It keeps no
// per-generation state and is safe for concurrent use.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator. A nil cfg uses the defaults.
func New(cfg *config.Config, opts ...Option) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Generator{cfg: cfg, recorder: metrics.NoopRecorder{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the generator's configuration.
func (g *Generator) Config() *config.Config {
	return g.cfg
}

// Result is the output of one generation.
type Result struct {
	Profile *profile.BusinessProfile
	Site    *site.Site
	// Download is nil unless every fatal stage succeeded.
	Download *archive.Download
	Report   *Report
}

// Generate parses fields into a profile and runs the full pipeline.
func (g *Generator) Generate(ctx context.Context, fields profile.Fields) (*Result, error) {
	p, stats := profile.FromFields(fields)
	return g.GenerateProfile(ctx, p, stats)
}

// GenerateProfile runs the full pipeline for p. p is not modified. On error
// the returned Result still carries the report but no download.
func (g *Generator) GenerateProfile(ctx context.Context, p *profile.BusinessProfile, stats profile.ParseStats) (*Result, error) {
	return g.run(ctx, p, stats, pipeline())
}

// Validate runs the pipeline up to link verification without packaging and
// reports what a generation would produce.
func (g *Generator) Validate(ctx context.Context, fields profile.Fields) (*Result, error) {
	p, stats := profile.FromFields(fields)
	stages := pipeline()
	for i, st := range stages {
		if st.Name == StageVerifyLinks {
			stages = stages[:i+1]
			break
		}
	}
	return g.run(ctx, p, stats, stages)
}

func (g *Generator) run(ctx context.Context, p *profile.BusinessProfile, stats profile.ParseStats, stages []StageDef) (*Result, error) {
	local := *p
	id := uuid.NewString()
	logger := g.logger.With(logfields.GenerationID(id), logfields.Site(local.Name))

	gs := &GenerationState{
		Generator: g,
		Profile:   &local,
		Stats:     stats,
		Report:    newReport(id, local.Name),
		logger:    logger,
	}

	err := runStages(ctx, gs, stages)
	gs.Report.finish()
	g.recorder.ObserveGenerationDuration(gs.Report.Elapsed())
	g.recorder.IncGenerationOutcome(metrics.OutcomeLabel(gs.Report.Outcome))

	res := &Result{Profile: gs.Profile, Site: gs.Site, Report: gs.Report}
	if err != nil {
		logger.Warn("Site generation failed",
			logfields.Outcome(string(gs.Report.Outcome)),
			logfields.Error(err))
		res.Site = nil
		return res, err
	}

	if gs.Archive != nil {
		d := archive.NewDownload(local.Name, gs.Archive)
		res.Download = &d
	}
	logger.Info("Site generated",
		logfields.Files(gs.Report.Files),
		logfields.Bytes(gs.Report.ArchiveBytes),
		logfields.SkippedLines(gs.Report.SkippedLines()),
		logfields.Outcome(string(gs.Report.Outcome)),
		logfields.DurationMS(float64(gs.Report.Elapsed().Microseconds())/1000))
	return res, nil
}

func issueCodeFor(se *StageError) IssueCode {
	switch ferrors.GetCategory(se.Err) {
	case ferrors.CategoryValidation:
		if ce, ok := ferrors.AsClassified(se.Err); ok {
			if _, has := ce.Context().GetStrings("fields"); has {
				return IssueMissingField
			}
		}
	case ferrors.CategoryArchive:
		return IssueEncoding
	}
	return IssueGenericStage
}
