package config

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/profile"
)

// ValidateConfig checks a defaulted configuration for values the generator
// cannot work with.
func ValidateConfig(cfg *Config) error {
	v := &configurationValidator{config: cfg}
	for _, check := range []func() error{v.validateSite, v.validateOutput, v.validateServer} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validateSite() error {
	for _, field := range cv.config.Site.RequiredFields {
		if !profile.IsKnownField(field) {
			return errors.ConfigError(fmt.Sprintf("unknown required field %q", field)).
				WithContext("field", field).Build()
		}
	}
	if cv.config.Site.BaseURL != "" {
		if _, err := profile.NormalizeBaseURL(cv.config.Site.BaseURL); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "invalid site.base_url").Fatal().Build()
		}
	}
	if cv.config.Site.CopyrightYear < 0 {
		return errors.ConfigError("site.copyright_year must not be negative").Build()
	}
	return nil
}

func (cv *configurationValidator) validateOutput() error {
	if _, err := ParseOutputFormat(string(cv.config.Output.Format)); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid output.format").Fatal().Build()
	}
	return nil
}

func (cv *configurationValidator) validateServer() error {
	if _, err := time.ParseDuration(cv.config.Server.ReadTimeout); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid server.read_timeout").Fatal().Build()
	}
	return nil
}

// ReadTimeout returns the parsed server read timeout.
func (c *Config) ReadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}
