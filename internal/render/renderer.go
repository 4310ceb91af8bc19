// Package render turns a BusinessProfile into the fixed set of HTML pages.
//
// All profile values reach the output through html/template, so markup in
// user input is escaped for the context it lands in. The map embed fragment
// is the single field inserted verbatim; theme values reach the style block
// only after passing a CSS allowlist.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/profile"
	"git.home.luguber.info/inful/localsite/internal/site"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplates = map[site.Page]string{
	site.PageHome:     "templates/home.html.tmpl",
	site.PageAbout:    "templates/about.html.tmpl",
	site.PageContact:  "templates/contact.html.tmpl",
	site.PagePrivacy:  "templates/legal.html.tmpl",
	site.PageTerms:    "templates/legal.html.tmpl",
	site.PageNotFound: "templates/notfound.html.tmpl",
}

// Renderer executes the page templates for one set of Options. A Renderer is
// safe for concurrent use.
type Renderer struct {
	opts  Options
	theme themeCSS
	pages map[site.Page]*template.Template
	md    goldmark.Markdown
}

// NewRenderer parses the embedded templates.
func NewRenderer(opts Options) (*Renderer, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html.tmpl")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "parse layout template").Build()
	}

	pages := make(map[site.Page]*template.Template, len(pageTemplates))
	for pg, file := range pageTemplates {
		t, cloneErr := base.Clone()
		if cloneErr != nil {
			return nil, errors.WrapError(cloneErr, errors.CategoryInternal, "clone layout template").Build()
		}
		if _, err = t.ParseFS(templateFS, file); err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "parse page template").
				WithContext("page", string(pg)).
				Build()
		}
		pages[pg] = t
	}

	return &Renderer{
		opts:  opts,
		theme: sanitizeTheme(opts.Theme, slog.Default()),
		pages: pages,
		md:    newMarkdown(),
	}, nil
}

// Render produces every page of the site for p. The profile is not modified.
func (r *Renderer) Render(p *profile.BusinessProfile) (*site.Site, error) {
	s := site.New()
	for _, pg := range site.Pages(r.opts.IncludeNotFound) {
		html, err := r.RenderPage(pg, p)
		if err != nil {
			return nil, err
		}
		if err := s.AddPage(pg, html); err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "add page").Build()
		}
	}
	return s, nil
}

// RenderPage renders a single page of the site.
func (r *Renderer) RenderPage(pg site.Page, p *profile.BusinessProfile) (string, error) {
	t, ok := r.pages[pg]
	if !ok {
		return "", errors.NewError(errors.CategoryRender, fmt.Sprintf("unknown page %q", pg)).Build()
	}

	data, err := r.pageData(pg, p)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "prepare page content").
			WithContext("page", string(pg)).
			Build()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "execute page template").
			WithContext("page", string(pg)).
			Build()
	}
	return buf.String(), nil
}

func (r *Renderer) pageData(pg site.Page, p *profile.BusinessProfile) (*pageData, error) {
	data := &pageData{
		Page:           pg,
		PageTitle:      pg.Title(),
		Title:          pageTitle(pg, p),
		Description:    truncateRunes(p.SEODescription, metaDescriptionLimit),
		Business:       p,
		Theme:          r.theme,
		StructuredData: NewLocalBusiness(p),
		Nav:            navLinks(pg),
		Legal:          legalLinks(pg),
		Footer:         footerData{Year: r.opts.CopyrightYear, Attribution: r.opts.Attribution},
		Contact: contactData{
			TelURL:       telURL(p.Phone),
			MailURL:      mailURL(p.Email),
			AddressLine:  joinNonEmpty(", ", p.Address, p.City),
			MapSearchURL: mapSearch(p),
		},
	}
	if p.BaseURL != "" {
		data.CanonicalURL = p.BaseURL + pg.Filename()
	}

	var err error
	switch pg {
	case site.PageHome:
		data.Home = r.homeData(p)
	case site.PageAbout:
		data.Body, err = r.longText(orDefault(p.AboutText, defaultAbout(p)))
	case site.PageContact:
		// #nosec G203 -- the map embed is the one field passed through as markup.
		data.Contact.MapEmbed = template.HTML(p.MapEmbed)
	case site.PagePrivacy:
		data.Body, err = r.longText(orDefault(p.PrivacyText, defaultPrivacy(p)))
	case site.PageTerms:
		data.Body, err = r.longText(orDefault(p.TermsText, defaultTerms(p)))
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Renderer) homeData(p *profile.BusinessProfile) homeData {
	h := homeData{
		Headline: orDefault(p.HeroText, orDefault(r.opts.HeroText, p.Name)),
		ImageAlt: storefrontAlt(p),
	}
	for _, svc := range p.Services {
		h.Services = append(h.Services, serviceCard{
			Title: svc,
			Blurb: serviceBlurb(r.opts.ServiceBlurb, p.Category, p.City),
		})
	}
	if r.opts.ShowTestimonials {
		h.Testimonials = p.Testimonials
	}
	if r.opts.ShowFAQ {
		h.FAQ = p.FAQ
	}
	return h
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
