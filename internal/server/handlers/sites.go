package handlers

import (
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/generator"
	"git.home.luguber.info/inful/localsite/internal/logfields"
	"git.home.luguber.info/inful/localsite/internal/server/responses"
)

// GenerationIDHeader exposes the generation report ID of a download.
const GenerationIDHeader = "X-Generation-ID"

// SiteHandlers generates and validates sites from posted field mappings.
type SiteHandlers struct {
	generator    *generator.Generator
	maxBodyBytes int64
	errorAdapter *errors.HTTPErrorAdapter
}

// NewSiteHandlers creates site handlers backed by gen.
func NewSiteHandlers(gen *generator.Generator, maxBodyBytes int64, logger *slog.Logger) *SiteHandlers {
	return &SiteHandlers{
		generator:    gen,
		maxBodyBytes: maxBodyBytes,
		errorAdapter: errors.NewHTTPErrorAdapter(logger),
	}
}

// HandleGenerate renders the posted profile and responds with the zip archive
// as an attachment.
func (h *SiteHandlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r, h.maxBodyBytes)
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.generator.Generate(r.Context(), fields)
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	if res.Download == nil {
		h.errorAdapter.WriteErrorResponse(w, r, errors.InternalError("generation produced no archive").Build())
		return
	}

	d := res.Download
	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(d.Data)))
	w.Header().Set(GenerationIDHeader, res.Report.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(d.Data); err != nil {
		slog.Warn("failed writing archive response", logfields.Error(err))
	}
}

// HandleValidate reports missing required fields and dropped lines without
// producing an archive. A profile that fails validation still yields 200.
func (h *SiteHandlers) HandleValidate(w http.ResponseWriter, r *http.Request) {
	fields, err := readFields(w, r, h.maxBodyBytes)
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.generator.Validate(r.Context(), fields)
	resp := responses.ValidationResponse{
		Valid:               err == nil,
		MissingFields:       []string{},
		SkippedTestimonials: res.Report.SkippedTestimonials,
		SkippedFAQ:          res.Report.SkippedFAQ,
		Pages:               []string{},
		Report:              res.Report.Serializable(),
	}
	if err != nil {
		ce, ok := errors.AsClassified(err)
		if !ok || !ce.IsCategory(errors.CategoryValidation) {
			h.errorAdapter.WriteErrorResponse(w, r, err)
			return
		}
		if missing, has := ce.Context().GetStrings("fields"); has {
			resp.MissingFields = missing
		}
	}
	if res.Site != nil {
		resp.Pages = res.Site.PageFilenames()
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, errors.WrapError(err, errors.CategoryInternal, "failed to write validation response").Build())
	}
}
