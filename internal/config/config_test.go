package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "localsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "1", cfg.Version)
	require.Equal(t, []string{"name", "phone"}, cfg.Site.RequiredFields)
	require.True(t, cfg.Site.Pages.NotFound)
	require.True(t, cfg.Site.Sections.Testimonials)
	require.True(t, cfg.Site.Sections.FAQ)
	require.Equal(t, LegalFormatText, cfg.Site.LegalFormat)
	require.Equal(t, OutputFormatZip, cfg.Output.Format)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, LogLevelInfo, cfg.Logging.Level)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileOverridesAndEnvExpansion(t *testing.T) {
	t.Setenv("LOCALSITE_TEST_BASE", "https://shop.example.com")
	path := writeConfig(t, `version: "1"
site:
  base_url: ${LOCALSITE_TEST_BASE}
  required_fields: []
  pages:
    not_found: false
  sections:
    faq: false
  legal_format: Markdown
theme:
  primary_color: "#000000"
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://shop.example.com", cfg.Site.BaseURL)
	require.Empty(t, cfg.Site.RequiredFields)
	require.False(t, cfg.Site.Pages.NotFound)
	require.False(t, cfg.Site.Sections.FAQ)
	require.True(t, cfg.Site.Sections.Testimonials)
	require.Equal(t, LegalFormatMarkdown, cfg.Site.LegalFormat)
	require.Equal(t, "#000000", cfg.Theme.PrimaryColor)
	require.Equal(t, "#f59e0b", cfg.Theme.AccentColor)
	require.Equal(t, LogLevelDebug, cfg.Logging.Level)
	require.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := map[string]string{
		"unknown field": "site:\n  required_fields: [name, fax]\n",
		"bad base url":  "site:\n  base_url: example.com\n",
		"bad format":    "output:\n  format: tarball\n",
		"bad timeout":   "server:\n  read_timeout: soon\n",
		"bad yaml":      "site: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
			require.True(t, errors.HasCategory(err, errors.CategoryConfig), "got %v", err)
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localsite.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/", cfg.Site.BaseURL)

	err = Init(path, false)
	require.Error(t, err)
	require.NoError(t, Init(path, true))
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("Directory")
	require.NoError(t, err)
	require.Equal(t, OutputFormatDir, f)

	f, err = ParseOutputFormat("")
	require.NoError(t, err)
	require.Equal(t, OutputFormatZip, f)
}
