package render

import (
	"git.home.luguber.info/inful/localsite/internal/config"
	"git.home.luguber.info/inful/localsite/internal/profile"
)

// Options is the immutable presentation configuration for one render.
type Options struct {
	Theme            profile.Theme
	IncludeNotFound  bool
	ShowTestimonials bool
	ShowFAQ          bool
	LegalFormat      config.LegalFormat
	// ServiceBlurb prefixes the generated description on each service card.
	ServiceBlurb string
	// HeroText is the home headline when the profile carries none.
	HeroText      string
	Attribution   string
	CopyrightYear int
}

// OptionsFromConfig derives render options from cfg. Theme values set on
// the profile take precedence over the configured theme.
func OptionsFromConfig(cfg *config.Config, p *profile.BusinessProfile) Options {
	opts := Options{
		Theme: profile.Theme{
			PrimaryColor: cfg.Theme.PrimaryColor,
			AccentColor:  cfg.Theme.AccentColor,
			FontFamily:   cfg.Theme.FontFamily,
		},
		IncludeNotFound:  cfg.Site.Pages.NotFound,
		ShowTestimonials: cfg.Site.Sections.Testimonials,
		ShowFAQ:          cfg.Site.Sections.FAQ,
		LegalFormat:      cfg.Site.LegalFormat,
		ServiceBlurb:     cfg.Site.ServiceBlurb,
		HeroText:         cfg.Site.HeroText,
		Attribution:      cfg.Site.Attribution,
		CopyrightYear:    cfg.Site.CopyrightYear,
	}
	if p == nil {
		return opts
	}
	if p.Theme.PrimaryColor != "" {
		opts.Theme.PrimaryColor = p.Theme.PrimaryColor
	}
	if p.Theme.AccentColor != "" {
		opts.Theme.AccentColor = p.Theme.AccentColor
	}
	if p.Theme.FontFamily != "" {
		opts.Theme.FontFamily = p.Theme.FontFamily
	}
	return opts
}
