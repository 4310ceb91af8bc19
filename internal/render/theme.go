package render

import (
	"html/template"
	"log/slog"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/localsite/internal/config"
	"git.home.luguber.info/inful/localsite/internal/profile"
)

var (
	hexColor   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColor  = regexp.MustCompile(`^(?i:rgba?|hsla?)\(\s*[0-9.%]+(?:deg)?(?:\s*[,/\s]\s*[0-9.%]+){2,3}\s*\)$`)
	namedColor = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
	fontList   = regexp.MustCompile(`^[a-zA-Z0-9 ,'"-]{1,200}$`)
)

// themeCSS holds theme values that passed the CSS allowlist and may be
// written into the style block unescaped.
type themeCSS struct {
	PrimaryColor template.CSS
	AccentColor  template.CSS
	FontFamily   template.CSS
}

// validColor accepts hex colours, rgb()/rgba()/hsl()/hsla() and bare colour
// keywords.
func validColor(v string) bool {
	return hexColor.MatchString(v) || funcColor.MatchString(v) || namedColor.MatchString(v)
}

// validFontList accepts comma separated family names, optionally quoted.
// Quotes must be balanced.
func validFontList(v string) bool {
	if !fontList.MatchString(v) {
		return false
	}
	return strings.Count(v, `'`)%2 == 0 && strings.Count(v, `"`)%2 == 0
}

// sanitizeTheme checks each theme value against the allowlist. Rejected
// values fall back to the default theme and are logged.
func sanitizeTheme(t profile.Theme, logger *slog.Logger) themeCSS {
	def := config.Default().Theme
	pick := func(field, v, fallback string, ok func(string) bool) template.CSS {
		v = strings.TrimSpace(v)
		if v == "" {
			return template.CSS(fallback)
		}
		if !ok(v) {
			logger.Warn("Rejected theme value; using default",
				slog.String("field", field), slog.String("value", v))
			return template.CSS(fallback)
		}
		// #nosec G203 -- value matched the CSS allowlist above.
		return template.CSS(v)
	}
	return themeCSS{
		PrimaryColor: pick(profile.FieldPrimaryColor, t.PrimaryColor, def.PrimaryColor, validColor),
		AccentColor:  pick(profile.FieldAccentColor, t.AccentColor, def.AccentColor, validColor),
		FontFamily:   pick(profile.FieldFontFamily, t.FontFamily, def.FontFamily, validFontList),
	}
}
