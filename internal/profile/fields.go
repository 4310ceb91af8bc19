package profile

import "slices"

// Fields is the flat field-name to value mapping supplied by a field collector.
type Fields map[string]string

// Canonical field names.
const (
	FieldName           = "name"
	FieldCategory       = "category"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldAddress        = "address"
	FieldCity           = "city"
	FieldMapEmbed       = "map_embed"
	FieldHours          = "hours"
	FieldSEODescription = "seo_description"
	FieldAbout          = "about"
	FieldHeroText       = "hero_text"
	FieldServices       = "services"
	FieldTestimonials   = "testimonials"
	FieldFAQ            = "faq"
	FieldPrivacy        = "privacy"
	FieldTerms          = "terms"
	FieldBaseURL        = "base_url"
	FieldPrimaryColor   = "primary_color"
	FieldAccentColor    = "accent_color"
	FieldFontFamily     = "font_family"
)

// AllFields lists every known field in collection order.
var AllFields = []string{
	FieldName, FieldCategory, FieldPhone, FieldEmail,
	FieldAddress, FieldCity, FieldMapEmbed, FieldHours,
	FieldSEODescription, FieldAbout, FieldHeroText,
	FieldServices, FieldTestimonials, FieldFAQ,
	FieldPrivacy, FieldTerms, FieldBaseURL,
	FieldPrimaryColor, FieldAccentColor, FieldFontFamily,
}

// MultilineFields are collected as several lines of input.
var MultilineFields = []string{
	FieldAbout, FieldServices, FieldTestimonials, FieldFAQ, FieldPrivacy, FieldTerms, FieldMapEmbed,
}

// IsKnownField reports whether name is a canonical field name.
func IsKnownField(name string) bool {
	return slices.Contains(AllFields, name)
}

// IsMultiline reports whether name is collected as multi-line input.
func IsMultiline(name string) bool {
	return slices.Contains(MultilineFields, name)
}
