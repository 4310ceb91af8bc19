package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
)

func TestFromFields(t *testing.T) {
	p, stats := FromFields(Fields{
		FieldName:         "  Gupta Electronics ",
		FieldPhone:        "+91 98765 43210",
		FieldServices:     "AC Repair\nOven Service",
		FieldTestimonials: "Rahul S. | Best service ever!\nBadLineNoDelimiter",
		FieldFAQ:          "Open on Sunday ? Yes\nno delimiter here",
		FieldAbout:        "Line one\r\nLine two",
		"unknown":         "ignored",
	})

	require.Equal(t, "Gupta Electronics", p.Name)
	require.Equal(t, []string{"AC Repair", "Oven Service"}, p.Services)
	require.Equal(t, []Testimonial{{Author: "Rahul S.", Comment: "Best service ever!"}}, p.Testimonials)
	require.Equal(t, []FAQEntry{{Question: "Open on Sunday", Answer: "Yes"}}, p.FAQ)
	require.Equal(t, "Line one\nLine two", p.AboutText)
	require.Equal(t, ParseStats{SkippedTestimonials: 1, SkippedFAQ: 1}, stats)
	require.Equal(t, 2, stats.Skipped())
}

func TestValidate_MissingRequired(t *testing.T) {
	p, _ := FromFields(Fields{})

	err := p.Validate([]string{FieldName, FieldPhone})

	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	fields, _ := classified.Context().GetStrings("fields")
	require.Equal(t, []string{FieldName, FieldPhone}, fields)
}

func TestValidate_NoRequiredFields(t *testing.T) {
	p, _ := FromFields(Fields{})
	require.NoError(t, p.Validate(nil))
}

func TestValidate_NormalizesBaseURL(t *testing.T) {
	p, _ := FromFields(Fields{FieldName: "A", FieldPhone: "1", FieldBaseURL: "https://example.com/site"})
	require.NoError(t, p.Validate([]string{FieldName, FieldPhone}))
	require.Equal(t, "https://example.com/site/", p.BaseURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://example.com/site/", "https://example.com/site/", false},
		{"http://example.com", "http://example.com/", false},
		{"example.com", "", true},
		{"ftp://example.com/", "", true},
		{"/relative/", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeBaseURL(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := `name: Gupta Electronics
phone: "+91 98765 43210"
services:
  - AC Repair
  - Oven Service
testimonials: |
  Rahul S. | Best service ever!
  Anjali P. | Highly professional.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fields, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "AC Repair\nOven Service", fields[FieldServices])

	p, stats := FromFields(fields)
	require.Len(t, p.Testimonials, 2)
	require.Zero(t, stats.Skipped())
}

func TestLoadFile_JSONAndMissing(t *testing.T) {
	fields, err := ParseFields([]byte(`{"name": "Shop", "phone": 12345}`))
	require.NoError(t, err)
	require.Equal(t, "12345", fields[FieldPhone])

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.True(t, errors.HasCategory(err, errors.CategoryNotFound))

	_, err = ParseFields([]byte("name:\n  nested: true\n"))
	require.Error(t, err)
}
