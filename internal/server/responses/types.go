// Package responses defines API response types used by the localsite HTTP handlers.
package responses

import (
	"time"

	"git.home.luguber.info/inful/localsite/internal/generator"
)

// HealthResponse represents the health check API response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    float64   `json:"uptime"`
}

// ValidationResponse reports whether a field mapping would generate a site.
type ValidationResponse struct {
	Valid               bool                         `json:"valid"`
	MissingFields       []string                     `json:"missing_fields"`
	SkippedTestimonials int                          `json:"skipped_testimonials"`
	SkippedFAQ          int                          `json:"skipped_faq"`
	Pages               []string                     `json:"pages"`
	Report              generator.ReportSerializable `json:"report"`
}
