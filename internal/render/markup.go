package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/localsite/internal/config"
)

// newMarkdown returns a CommonMark converter. Raw HTML in the source is
// omitted and dangerous link schemes are dropped because WithUnsafe is
// never set.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
}

// textToHTML escapes s and turns each newline into a line break.
func textToHTML(s string) template.HTML {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	// #nosec G203 -- every line was escaped above.
	return template.HTML(strings.Join(lines, "<br>\n"))
}

func (r *Renderer) longText(s string) (template.HTML, error) {
	if r.opts.LegalFormat != config.LegalFormatMarkdown {
		return textToHTML(s), nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- goldmark output with raw HTML disabled.
	return template.HTML(buf.String()), nil
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
