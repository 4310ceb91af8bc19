package archive

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultName is used when the business name yields an empty slug.
const DefaultName = "site"

// Download is a named in-memory archive handed to the caller.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// NewDownload names data after the business.
func NewDownload(businessName string, data []byte) Download {
	return Download{
		Filename:    DownloadName(businessName) + ".zip",
		ContentType: ContentType,
		Data:        data,
	}
}

// DownloadName derives a filesystem-safe slug from a business name: accents
// are stripped, letters lowercased and runs of whitespace replaced by "-".
// Other characters outside letters, digits, '-', '_' and '.' are dropped.
func DownloadName(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = cases.Lower(language.Und).String(folded)

	words := make([]string, 0, 4)
	for _, field := range strings.Fields(folded) {
		word := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
				return r
			}
			return -1
		}, field)
		if word != "" {
			words = append(words, word)
		}
	}

	slug := strings.Trim(strings.Join(words, "-"), "-.")
	if slug == "" {
		return DefaultName
	}
	return slug
}
