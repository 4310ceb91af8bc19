package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter asks for each field on a writer and reads answers from a
// reader. Multi-line fields end at the first empty line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter over r and w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(r), out: w}
}

// Prompt implements Prompter.
func (p *LinePrompter) Prompt(field Field) (string, error) {
	label := field.Label
	if label == "" {
		label = field.Key
	}
	if field.Required {
		label += " (required)"
	}
	if field.Hint != "" {
		label += " [" + field.Hint + "]"
	}

	if !field.Multiline {
		if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
			return "", err
		}
		line, err := p.readLine()
		if errors.Is(err, io.EOF) {
			return line, nil
		}
		return line, err
	}

	if _, err := fmt.Fprintf(p.out, "%s, finish with an empty line:\n", label); err != nil {
		return "", err
	}
	var lines []string
	for {
		line, err := p.readLine()
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) || (err == nil && line == "") {
			return strings.Join(lines, "\n"), nil
		}
		if err != nil {
			return "", err
		}
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
