package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/localsite/internal/config"
	ferrors "git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/profile"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"localsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate a site from a business profile"`
	Validate ValidateCmd `cmd:"" help:"Check a business profile without writing anything"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Serve    ServeCmd    `cmd:"" help:"Serve the generation API over HTTP"`
}

// AfterApply runs after flag parsing and sets up logging once. The
// configured level and format are applied later by loadConfig.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(os.Stderr, level, config.LogFormatText)
	slog.SetDefault(g.Logger)
	return nil
}

// loadConfig reads the configuration file and reconfigures the logger from
// its logging section. -v always wins over the configured level.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	level := slogLevel(cfg.Logging.Level)
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(os.Stderr, level, cfg.Logging.Format)
	slog.SetDefault(g.Logger)
	g.Logger.Debug("Configuration loaded", "path", c.Config)
	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func slogLevel(l config.LogLevel) slog.Level {
	switch l {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ResolveOutputDir determines the output directory.
// Priority: CLI flag > config directory > current directory.
func ResolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	if cfg != nil && cfg.Output.Directory != "" {
		return cfg.Output.Directory
	}
	return "."
}

// ProfileInput holds the flags shared by commands that read business fields.
type ProfileInput struct {
	Profile string            `short:"p" help:"Business profile file (YAML or JSON)" type:"existingfile"`
	Set     map[string]string `help:"Override a profile field, e.g. --set phone=555-0100 (repeatable)" mapsep:"none"`
}

// fields loads the profile file, if any, and applies --set overrides.
func (in ProfileInput) fields() (defaults, overrides profile.Fields, err error) {
	defaults = profile.Fields{}
	if in.Profile != "" {
		defaults, err = profile.LoadFile(in.Profile)
		if err != nil {
			return nil, nil, err
		}
	}
	overrides = make(profile.Fields, len(in.Set))
	for k, v := range in.Set {
		if !profile.IsKnownField(k) {
			return nil, nil, ferrors.ValidationError("unknown profile field in --set").
				WithContext("field", k).Build()
		}
		overrides[k] = v
	}
	return defaults, overrides, nil
}

// merged applies overrides over defaults.
func merged(defaults, overrides profile.Fields) profile.Fields {
	out := make(profile.Fields, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
