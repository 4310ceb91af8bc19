package profile

import "strings"

// Pair is a two-field record parsed from a delimited line.
type Pair struct {
	First  string
	Second string
}

const (
	// TestimonialSeparator splits "Author | Comment".
	TestimonialSeparator = "|"
	// FAQSeparator splits "Question ? Answer".
	FAQSeparator = "?"
)

// ParseLines splits raw on newlines and returns the trimmed non-blank lines.
func ParseLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(normalizeNewlines(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParseDelimited parses one record per non-blank line, splitting each line
// at the first occurrence of sep. Lines without sep are dropped and counted
// in skipped.
func ParseDelimited(raw, sep string) (records []Pair, skipped int) {
	for _, line := range ParseLines(raw) {
		first, second, ok := strings.Cut(line, sep)
		if !ok {
			skipped++
			continue
		}
		records = append(records, Pair{
			First:  strings.TrimSpace(first),
			Second: strings.TrimSpace(second),
		})
	}
	return records, skipped
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}
