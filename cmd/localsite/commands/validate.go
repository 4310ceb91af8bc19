package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/localsite/internal/generator"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	ProfileInput `embed:""`

	JSON bool `help:"Print the full report as JSON"`

	out io.Writer
}

func (v *ValidateCmd) Run(glob *Global, root *CLI) error {
	cfg, err := root.loadConfig(glob)
	if err != nil {
		return err
	}
	defaults, overrides, err := v.fields()
	if err != nil {
		return err
	}

	gen := generator.New(cfg, generator.WithLogger(glob.Logger))
	res, runErr := gen.Validate(context.Background(), merged(defaults, overrides))

	out := v.out
	if out == nil {
		out = os.Stdout
	}
	if v.JSON {
		data, err := json.MarshalIndent(res.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
	} else {
		printIssues(out, res.Report)
	}
	return runErr
}

func printIssues(w io.Writer, r *generator.Report) {
	_, _ = fmt.Fprintln(w, r.Summary())
	for _, issue := range r.Issues {
		_, _ = fmt.Fprintf(w, "  [%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
	}
	if n := r.SkippedLines(); n > 0 {
		_, _ = fmt.Fprintf(w, "  skipped %d malformed line(s): testimonials=%d faq=%d\n",
			n, r.SkippedTestimonials, r.SkippedFAQ)
	}
}
