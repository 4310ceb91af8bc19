package profile

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
)

// Testimonial is a customer quote.
type Testimonial struct {
	Author  string
	Comment string
}

// FAQEntry is a question with its answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// Theme carries per-profile theming. Empty values fall back to configuration.
type Theme struct {
	PrimaryColor string
	AccentColor  string
	FontFamily   string
}

// BusinessProfile describes the business a site is generated for.
type BusinessProfile struct {
	Name     string
	Category string
	Phone    string
	Email    string

	Address string
	City    string
	// MapEmbed is raw markup inserted verbatim on the contact page.
	MapEmbed string

	Hours string

	SEODescription string
	AboutText      string
	HeroText       string
	Services       []string
	Testimonials   []Testimonial
	FAQ            []FAQEntry

	PrivacyText string
	TermsText   string

	BaseURL string
	Theme   Theme
}

// ParseStats records lines dropped while parsing delimited fields.
type ParseStats struct {
	SkippedTestimonials int
	SkippedFAQ          int
}

// Skipped is the total number of dropped lines.
func (s ParseStats) Skipped() int {
	return s.SkippedTestimonials + s.SkippedFAQ
}

// FromFields builds a profile from collected fields. Unknown keys are
// ignored and missing keys yield empty values.
func FromFields(f Fields) (*BusinessProfile, ParseStats) {
	get := func(key string) string { return strings.TrimSpace(f[key]) }

	p := &BusinessProfile{
		Name:           get(FieldName),
		Category:       get(FieldCategory),
		Phone:          get(FieldPhone),
		Email:          get(FieldEmail),
		Address:        get(FieldAddress),
		City:           get(FieldCity),
		MapEmbed:       get(FieldMapEmbed),
		Hours:          get(FieldHours),
		SEODescription: get(FieldSEODescription),
		AboutText:      normalizeNewlines(get(FieldAbout)),
		HeroText:       get(FieldHeroText),
		Services:       ParseLines(f[FieldServices]),
		PrivacyText:    normalizeNewlines(get(FieldPrivacy)),
		TermsText:      normalizeNewlines(get(FieldTerms)),
		BaseURL:        get(FieldBaseURL),
		Theme: Theme{
			PrimaryColor: get(FieldPrimaryColor),
			AccentColor:  get(FieldAccentColor),
			FontFamily:   get(FieldFontFamily),
		},
	}

	var stats ParseStats
	var pairs []Pair

	pairs, stats.SkippedTestimonials = ParseDelimited(f[FieldTestimonials], TestimonialSeparator)
	for _, pr := range pairs {
		p.Testimonials = append(p.Testimonials, Testimonial{Author: pr.First, Comment: pr.Second})
	}

	pairs, stats.SkippedFAQ = ParseDelimited(f[FieldFAQ], FAQSeparator)
	for _, pr := range pairs {
		p.FAQ = append(p.FAQ, FAQEntry{Question: pr.First, Answer: pr.Second})
	}

	return p, stats
}

// Value returns the scalar value of a canonical field, used for required
// field checks.
func (p *BusinessProfile) Value(field string) string {
	switch field {
	case FieldName:
		return p.Name
	case FieldCategory:
		return p.Category
	case FieldPhone:
		return p.Phone
	case FieldEmail:
		return p.Email
	case FieldAddress:
		return p.Address
	case FieldCity:
		return p.City
	case FieldMapEmbed:
		return p.MapEmbed
	case FieldHours:
		return p.Hours
	case FieldSEODescription:
		return p.SEODescription
	case FieldAbout:
		return p.AboutText
	case FieldHeroText:
		return p.HeroText
	case FieldServices:
		return strings.Join(p.Services, "\n")
	case FieldTestimonials:
		if len(p.Testimonials) > 0 {
			return "set"
		}
	case FieldFAQ:
		if len(p.FAQ) > 0 {
			return "set"
		}
	case FieldPrivacy:
		return p.PrivacyText
	case FieldTerms:
		return p.TermsText
	case FieldBaseURL:
		return p.BaseURL
	case FieldPrimaryColor:
		return p.Theme.PrimaryColor
	case FieldAccentColor:
		return p.Theme.AccentColor
	case FieldFontFamily:
		return p.Theme.FontFamily
	}
	return ""
}

// Validate checks that every required field is non-empty and that the base
// URL, when present, is absolute. The base URL is normalized in place.
func (p *BusinessProfile) Validate(required []string) error {
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(p.Value(field)) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return errors.MissingRequiredField(missing...)
	}

	if p.BaseURL != "" {
		normalized, err := NormalizeBaseURL(p.BaseURL)
		if err != nil {
			return err
		}
		p.BaseURL = normalized
	}
	return nil
}

// NormalizeBaseURL checks that raw is an absolute http(s) URL and appends
// the trailing slash used when composing page links.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.InvalidBaseURL(raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errors.InvalidBaseURL(raw, nil)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw, nil
}
