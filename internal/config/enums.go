package config

import "git.home.luguber.info/inful/localsite/internal/foundation/normalization"

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevels = normalization.NewNormalizer("log level", map[string]LogLevel{
	"debug": LogLevelDebug,
	"info":  LogLevelInfo,
	"warn":  LogLevelWarn,
	"error": LogLevelError,
}, LogLevelInfo)

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

var logFormats = normalization.NewNormalizer("log format", map[string]LogFormat{
	"text": LogFormatText,
	"json": LogFormatJSON,
}, LogFormatText)

// LegalFormat selects how about, privacy and terms text is turned into markup.
type LegalFormat string

const (
	// LegalFormatText escapes the text and converts newlines to line breaks.
	LegalFormatText LegalFormat = "text"
	// LegalFormatMarkdown renders CommonMark with raw HTML disabled.
	LegalFormatMarkdown LegalFormat = "markdown"
)

var legalFormats = normalization.NewNormalizer("legal format", map[string]LegalFormat{
	"text":     LegalFormatText,
	"markdown": LegalFormatMarkdown,
	"md":       LegalFormatMarkdown,
}, LegalFormatText)

// OutputFormat selects between a zip archive and a plain directory.
type OutputFormat string

const (
	OutputFormatZip OutputFormat = "zip"
	OutputFormatDir OutputFormat = "dir"
)

var outputFormats = normalization.NewNormalizer("output format", map[string]OutputFormat{
	"zip":       OutputFormatZip,
	"dir":       OutputFormatDir,
	"directory": OutputFormatDir,
}, OutputFormatZip)

// ParseOutputFormat parses a user-supplied output format.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormats.Parse(raw)
}
