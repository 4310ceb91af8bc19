// Package collector gathers business fields from a user or from defaults and
// overrides, producing the flat mapping the generator consumes.
package collector

import (
	"slices"

	"git.home.luguber.info/inful/localsite/internal/profile"
)

// Field describes one input the collector asks for.
type Field struct {
	// Key is the canonical profile field name.
	Key string `json:"key"`

	// Label is the human prompt.
	Label string `json:"label"`

	// Required fields must be non-empty after resolution.
	Required bool `json:"required"`

	// Multiline fields are read until an empty line.
	Multiline bool `json:"multiline"`

	// Hint explains the expected line format, if any.
	Hint string `json:"hint,omitempty"`
}

// Schema is the ordered set of fields to collect.
type Schema struct {
	Fields []Field `json:"fields"`
}

var labels = map[string]string{
	profile.FieldName:           "Business name",
	profile.FieldCategory:       "Category",
	profile.FieldPhone:          "Phone",
	profile.FieldEmail:          "Email",
	profile.FieldAddress:        "Street address",
	profile.FieldCity:           "City",
	profile.FieldMapEmbed:       "Map embed HTML",
	profile.FieldHours:          "Opening hours",
	profile.FieldSEODescription: "SEO description",
	profile.FieldAbout:          "About text",
	profile.FieldHeroText:       "Hero headline",
	profile.FieldServices:       "Services",
	profile.FieldTestimonials:   "Testimonials",
	profile.FieldFAQ:            "FAQ",
	profile.FieldPrivacy:        "Privacy policy",
	profile.FieldTerms:          "Terms and conditions",
	profile.FieldBaseURL:        "Website URL",
	profile.FieldPrimaryColor:   "Primary color",
	profile.FieldAccentColor:    "Accent color",
	profile.FieldFontFamily:     "Font family",
}

var hints = map[string]string{
	profile.FieldServices:     "one per line",
	profile.FieldTestimonials: "one per line as: Name | Comment",
	profile.FieldFAQ:          "one per line as: Question ? Answer",
	profile.FieldBaseURL:      "absolute URL, e.g. https://example.com/",
}

// DefaultSchema returns every profile field, marking those in required.
func DefaultSchema(required []string) Schema {
	fields := make([]Field, 0, len(profile.AllFields))
	for _, key := range profile.AllFields {
		fields = append(fields, Field{
			Key:       key,
			Label:     labels[key],
			Required:  slices.Contains(required, key),
			Multiline: profile.IsMultiline(key),
			Hint:      hints[key],
		})
	}
	return Schema{Fields: fields}
}
