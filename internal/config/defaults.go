package config

import "git.home.luguber.info/inful/localsite/internal/profile"

// preset returns the values that must exist before the file is decoded:
// booleans and lists whose zero value is a meaningful user choice.
func preset() *Config {
	return &Config{
		Site: SiteConfig{
			RequiredFields: []string{profile.FieldName, profile.FieldPhone},
			Pages:          PagesConfig{NotFound: true},
			Sections:       SectionsConfig{Testimonials: true, FAQ: true},
		},
	}
}

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

type siteDefaults struct{}

func (siteDefaults) Domain() string { return "site" }

func (siteDefaults) ApplyDefaults(cfg *Config) error {
	cfg.Site.LegalFormat = legalFormats.Normalize(string(cfg.Site.LegalFormat))
	if cfg.Site.ServiceBlurb == "" {
		cfg.Site.ServiceBlurb = "Trusted"
	}
	return nil
}

type themeDefaults struct{}

func (themeDefaults) Domain() string { return "theme" }

func (themeDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Theme.PrimaryColor == "" {
		cfg.Theme.PrimaryColor = "#1d4ed8"
	}
	if cfg.Theme.AccentColor == "" {
		cfg.Theme.AccentColor = "#f59e0b"
	}
	if cfg.Theme.FontFamily == "" {
		cfg.Theme.FontFamily = "Inter, system-ui, sans-serif"
	}
	return nil
}

type outputDefaults struct{}

func (outputDefaults) Domain() string { return "output" }

func (outputDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./sites"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputFormatZip
	}
	return nil
}

type serverDefaults struct{}

func (serverDefaults) Domain() string { return "server" }

func (serverDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.Server.ReadTimeout == "" {
		cfg.Server.ReadTimeout = "15s"
	}
	return nil
}

type observabilityDefaults struct{}

func (observabilityDefaults) Domain() string { return "observability" }

func (observabilityDefaults) ApplyDefaults(cfg *Config) error {
	cfg.Logging.Level = logLevels.Normalize(string(cfg.Logging.Level))
	cfg.Logging.Format = logFormats.Normalize(string(cfg.Logging.Format))
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	return nil
}

var appliers = []DefaultApplier{
	siteDefaults{},
	themeDefaults{},
	outputDefaults{},
	serverDefaults{},
	observabilityDefaults{},
}

// applyDefaults runs every domain applier in order, then stamps the version.
func applyDefaults(cfg *Config) error {
	for _, a := range appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	return nil
}
