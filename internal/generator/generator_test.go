package generator

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/localsite/internal/config"
	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/metrics"
	"git.home.luguber.info/inful/localsite/internal/profile"
)

func guptaFields() profile.Fields {
	return profile.Fields{
		"name":     "Gupta Electronics",
		"phone":    "+91 98765 43210",
		"base_url": "https://example.com/site/",
		"services": "AC Repair\nOven Service",
	}
}

func unzip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = string(b)
	}
	return out
}

func TestGenerateEndToEnd(t *testing.T) {
	res, err := New(config.Default()).Generate(context.Background(), guptaFields())
	require.NoError(t, err)
	require.NotNil(t, res.Download)
	require.Equal(t, "gupta-electronics.zip", res.Download.Filename)
	require.Equal(t, "application/zip", res.Download.ContentType)

	files := unzip(t, res.Download.Data)
	for _, name := range []string{"index.html", "about.html", "contact.html", "privacy.html", "terms.html", "404.html", "robots.txt", "sitemap.xml"} {
		require.Contains(t, files, name)
	}
	require.Len(t, files, 8)

	index := files["index.html"]
	require.Equal(t, 2, strings.Count(index, `class="service-card`))
	require.Contains(t, index, "AC Repair")
	require.Contains(t, index, "Oven Service")

	require.Equal(t, "User-agent: *\nAllow: /\nSitemap: https://example.com/site/sitemap.xml", files["robots.txt"])
	require.Contains(t, files["sitemap.xml"], "<loc>https://example.com/site/index.html</loc>")
	require.Equal(t, 6, strings.Count(files["sitemap.xml"], "<loc>"))

	require.Equal(t, OutcomeSuccess, res.Report.Outcome)
	require.Equal(t, 6, res.Report.Pages)
	require.Equal(t, 8, res.Report.Files)
	require.Equal(t, len(res.Download.Data), res.Report.ArchiveBytes)
	require.NotEmpty(t, res.Report.ID)
	for _, st := range pipeline() {
		require.Contains(t, res.Report.StageDurations, string(st.Name))
		require.Equal(t, 1, res.Report.StageCounts[st.Name].Success, st.Name)
	}
}

func TestGenerateMissingRequiredFields(t *testing.T) {
	res, err := New(config.Default()).Generate(context.Background(), profile.Fields{"services": "AC Repair"})
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))

	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	fields, ok := ce.Context().GetStrings("fields")
	require.True(t, ok)
	require.Equal(t, []string{"name", "phone"}, fields)

	require.NotNil(t, res)
	require.Nil(t, res.Download)
	require.Nil(t, res.Site)
	require.Equal(t, OutcomeFailed, res.Report.Outcome)
	require.Len(t, res.Report.Issues, 1)
	require.Equal(t, IssueMissingField, res.Report.Issues[0].Code)
	require.Equal(t, StageValidateProfile, res.Report.Issues[0].Stage)
	require.NotContains(t, res.Report.StageDurations, string(StageRenderPages))
}

func TestGenerateIsIdempotent(t *testing.T) {
	cfg := config.Default()
	cfg.Site.CopyrightYear = 2024
	g := New(cfg)

	fields := guptaFields()
	fields["testimonials"] = "Rahul S. | Best service ever!\nAnjali P. | Highly professional."
	fields["faq"] = "Is it 24/7 ? Yes, we operate 24/7."

	a, err := g.Generate(context.Background(), fields)
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), fields)
	require.NoError(t, err)
	require.Equal(t, a.Download.Data, b.Download.Data)
	require.NotEqual(t, a.Report.ID, b.Report.ID)
}

func TestGenerateCountsSkippedLines(t *testing.T) {
	fields := guptaFields()
	fields["testimonials"] = "Rahul S. | Best service ever!\nBadLineNoDelimiter\nAnjali P. | Highly professional."
	fields["faq"] = "No question mark here"

	res, err := New(config.Default()).Generate(context.Background(), fields)
	require.NoError(t, err)
	require.Equal(t, 1, res.Report.SkippedTestimonials)
	require.Equal(t, 1, res.Report.SkippedFAQ)
	require.Equal(t, 2, res.Report.SkippedLines())
	require.Equal(t, OutcomeSuccess, res.Report.Outcome)

	index, ok := res.Site.Lookup("index.html")
	require.True(t, ok)
	require.Equal(t, 2, strings.Count(index, `class="testimonial `))
}

func TestValidateReportsSkippedLinesWhenFieldsMissing(t *testing.T) {
	rec := &countingRecorder{outcomes: map[metrics.OutcomeLabel]int{}, skipped: map[string]int{}}
	fields := profile.Fields{
		"testimonials": "bad line\nA | B",
		"faq":          "no delimiter",
	}

	res, err := New(config.Default(), WithRecorder(rec)).Validate(context.Background(), fields)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
	require.Equal(t, 1, res.Report.SkippedTestimonials)
	require.Equal(t, 1, res.Report.SkippedFAQ)
	require.Equal(t, 1, rec.skipped["testimonials"])
	require.Equal(t, 1, rec.skipped["faq"])
	require.Equal(t, OutcomeFailed, res.Report.Outcome)
}

func TestGenerateWithoutBaseURLWarns(t *testing.T) {
	fields := guptaFields()
	delete(fields, "base_url")

	res, err := New(config.Default()).Generate(context.Background(), fields)
	require.NoError(t, err)
	require.NotNil(t, res.Download)
	require.Equal(t, OutcomeWarning, res.Report.Outcome)
	require.Equal(t, StageErrorWarning, res.Report.StageErrorKinds[StageValidateProfile])

	robots, _ := res.Site.Lookup("robots.txt")
	require.Equal(t, "User-agent: *\nAllow: /\nSitemap: sitemap.xml", robots)
}

func TestGenerateFallsBackToConfiguredBaseURL(t *testing.T) {
	cfg := config.Default()
	cfg.Site.BaseURL = "https://fallback.example"
	fields := guptaFields()
	delete(fields, "base_url")

	res, err := New(cfg).Generate(context.Background(), fields)
	require.NoError(t, err)
	require.Equal(t, OutcomeSuccess, res.Report.Outcome)
	robots, _ := res.Site.Lookup("robots.txt")
	require.Equal(t, "User-agent: *\nAllow: /\nSitemap: https://fallback.example/sitemap.xml", robots)
}

func TestGenerateDoesNotModifyProfile(t *testing.T) {
	cfg := config.Default()
	cfg.Site.BaseURL = "https://fallback.example"
	p, stats := profile.FromFields(profile.Fields{"name": "Gupta Electronics", "phone": "1"})

	_, err := New(cfg).GenerateProfile(context.Background(), p, stats)
	require.NoError(t, err)
	require.Empty(t, p.BaseURL)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(config.Default()).Generate(ctx, guptaFields())
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, OutcomeCanceled, res.Report.Outcome)
	require.Nil(t, res.Download)
}

func TestValidateSkipsPackaging(t *testing.T) {
	res, err := New(config.Default()).Validate(context.Background(), guptaFields())
	require.NoError(t, err)
	require.Nil(t, res.Download)
	require.NotNil(t, res.Site)
	require.NotContains(t, res.Report.StageDurations, string(StagePackageArchive))
	require.NotContains(t, res.Report.StageDurations, string(StageBuildAncillary))
}

type countingRecorder struct {
	metrics.NoopRecorder
	mu       sync.Mutex
	outcomes map[metrics.OutcomeLabel]int
	skipped  map[string]int
	archives int
}

func (c *countingRecorder) IncGenerationOutcome(o metrics.OutcomeLabel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes[o]++
}

func (c *countingRecorder) AddSkippedLines(field string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped[field] += n
}

func (c *countingRecorder) ObserveArchiveBytes(int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.archives++
}

func TestGenerateRecordsMetrics(t *testing.T) {
	rec := &countingRecorder{outcomes: map[metrics.OutcomeLabel]int{}, skipped: map[string]int{}}
	g := New(config.Default(), WithRecorder(rec))

	fields := guptaFields()
	fields["testimonials"] = "broken line"
	_, err := g.Generate(context.Background(), fields)
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), profile.Fields{})
	require.Error(t, err)

	require.Equal(t, 1, rec.outcomes[metrics.OutcomeSuccess])
	require.Equal(t, 1, rec.outcomes[metrics.OutcomeFailed])
	require.Equal(t, 1, rec.skipped["testimonials"])
	require.Equal(t, 1, rec.archives)
}

func TestReportJSON(t *testing.T) {
	res, err := New(config.Default()).Generate(context.Background(), guptaFields())
	require.NoError(t, err)

	s := res.Report.Serializable()
	require.Equal(t, OutcomeSuccess, s.Outcome)
	require.Empty(t, s.Errors)
	require.NotNil(t, s.Issues)
	require.Contains(t, s.StageCounts, string(StageRenderPages))
	require.Contains(t, res.Report.Summary(), "outcome=success")
	require.Less(t, res.Report.Elapsed(), time.Minute)
}
