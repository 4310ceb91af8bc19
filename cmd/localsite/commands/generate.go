package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/localsite/internal/archive"
	"git.home.luguber.info/inful/localsite/internal/collector"
	"git.home.luguber.info/inful/localsite/internal/config"
	ferrors "git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/generator"
	"git.home.luguber.info/inful/localsite/internal/logfields"
	"git.home.luguber.info/inful/localsite/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	ProfileInput `embed:""`

	Interactive bool   `short:"i" help:"Prompt for fields missing from the profile"`
	Format      string `short:"f" help:"Output format (zip or dir); defaults to output.format"`
	Output      string `short:"o" help:"Output directory; defaults to output.directory"`
	Watch       bool   `short:"w" help:"Regenerate whenever the profile file changes"`

	in  io.Reader
	out io.Writer
}

func (g *GenerateCmd) Run(glob *Global, root *CLI) error {
	cfg, err := root.loadConfig(glob)
	if err != nil {
		return err
	}
	if g.Watch && (g.Profile == "" || g.Interactive) {
		return ferrors.ValidationError("--watch requires --profile and cannot be combined with --interactive").Build()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.New(cfg, generator.WithLogger(glob.Logger))
	if err := g.generateOnce(ctx, gen, cfg); err != nil {
		return err
	}
	if !g.Watch {
		return nil
	}

	w, err := watch.New([]string{g.Profile}, watch.DefaultDebounce, glob.Logger)
	if err != nil {
		return err
	}
	glob.Logger.Info("Watching profile for changes", logfields.Path(g.Profile))
	return w.Run(ctx, func(ctx context.Context) error {
		return g.generateOnce(ctx, gen, cfg)
	})
}

// generateOnce collects fields, runs the pipeline and writes the result.
func (g *GenerateCmd) generateOnce(ctx context.Context, gen *generator.Generator, cfg *config.Config) error {
	format, err := g.format(cfg)
	if err != nil {
		return err
	}

	defaults, overrides, err := g.fields()
	if err != nil {
		return err
	}
	var prompter collector.Prompter
	if g.Interactive {
		prompter = collector.NewLinePrompter(g.stdin(), g.stdout())
	}
	schema := collector.DefaultSchema(cfg.Site.RequiredFields)
	fields, err := collector.Resolve(schema, defaults, overrides, !g.Interactive, prompter)
	if err != nil {
		return err
	}

	res, err := gen.Generate(ctx, fields)
	if err != nil {
		return err
	}

	outDir := ResolveOutputDir(g.Output, cfg)
	var target string
	switch format {
	case config.OutputFormatDir:
		target = filepath.Join(outDir, archive.DownloadName(res.Profile.Name))
		if err := archive.WriteDir(target, res.Site.Files()); err != nil {
			return err
		}
	default:
		target, err = writeDownload(outDir, res.Download)
		if err != nil {
			return err
		}
	}

	slog.Info("Site written", logfields.Path(target), logfields.Files(res.Report.Files))
	_, _ = fmt.Fprintf(g.stdout(), "Wrote %s\n%s\n", target, res.Report.Summary())
	return nil
}

func (g *GenerateCmd) format(cfg *config.Config) (config.OutputFormat, error) {
	if g.Format == "" {
		return cfg.Output.Format, nil
	}
	f, err := config.ParseOutputFormat(g.Format)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --format").
			WithContext("format", g.Format).Build()
	}
	return f, nil
}

func (g *GenerateCmd) stdin() io.Reader {
	if g.in != nil {
		return g.in
	}
	return os.Stdin
}

func (g *GenerateCmd) stdout() io.Writer {
	if g.out != nil {
		return g.out
	}
	return os.Stdout
}

func writeDownload(dir string, d *archive.Download) (string, error) {
	if d == nil {
		return "", ferrors.InternalError("generation produced no archive").Build()
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "create output directory").
			WithContext("path", dir).Build()
	}
	target := filepath.Join(dir, d.Filename)
	if err := os.WriteFile(target, d.Data, 0o600); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "write archive").
			WithContext("path", target).Build()
	}
	return target, nil
}
