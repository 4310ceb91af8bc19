package render

import (
	"html/template"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/localsite/internal/profile"
	"git.home.luguber.info/inful/localsite/internal/site"
)

const (
	metaDescriptionLimit = 160
	mapSearchURL         = "https://www.google.com/maps/search/?api=1&query="
	schemaContext        = "https://schema.org"
)

// pageData is the value every page template executes against.
type pageData struct {
	Page           site.Page
	PageTitle      string
	Title          string
	Description    string
	CanonicalURL   string
	Business       *profile.BusinessProfile
	Theme          themeCSS
	StructuredData LocalBusiness
	Nav            []navLink
	Legal          []navLink
	Footer         footerData

	Home    homeData
	Contact contactData
	Body    template.HTML
}

type navLink struct {
	Href    string
	Label   string
	Current bool
}

type footerData struct {
	Year        int
	Attribution string
}

type homeData struct {
	Headline     string
	ImageAlt     string
	Services     []serviceCard
	Testimonials []profile.Testimonial
	FAQ          []profile.FAQEntry
}

type serviceCard struct {
	Title string
	Blurb string
}

type contactData struct {
	TelURL       template.URL
	MailURL      string
	AddressLine  string
	MapEmbed     template.HTML
	MapSearchURL string
}

// LocalBusiness is the schema.org structured data block embedded in every
// page head.
type LocalBusiness struct {
	Context      string        `json:"@context"`
	Type         string        `json:"@type"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Telephone    string        `json:"telephone,omitempty"`
	Email        string        `json:"email,omitempty"`
	Address      PostalAddress `json:"address"`
	OpeningHours string        `json:"openingHours,omitempty"`
	URL          string        `json:"url,omitempty"`
}

// PostalAddress is the schema.org address of a LocalBusiness.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
}

// NewLocalBusiness builds the structured data for p.
func NewLocalBusiness(p *profile.BusinessProfile) LocalBusiness {
	return LocalBusiness{
		Context:     schemaContext,
		Type:        "LocalBusiness",
		Name:        p.Name,
		Description: p.SEODescription,
		Telephone:   p.Phone,
		Email:       p.Email,
		Address: PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   p.Address,
			AddressLocality: p.City,
		},
		OpeningHours: p.Hours,
		URL:          p.BaseURL,
	}
}

func pageTitle(pg site.Page, p *profile.BusinessProfile) string {
	title := pg.Title()
	if pg == site.PageHome && p.Category != "" && p.City != "" {
		title = p.Category + " in " + p.City
	}
	if p.Name == "" {
		return title
	}
	return title + " | " + p.Name
}

func navLinks(current site.Page) []navLink {
	pages := []site.Page{site.PageHome, site.PageAbout, site.PageContact}
	links := make([]navLink, 0, len(pages))
	for _, pg := range pages {
		links = append(links, navLink{Href: pg.Filename(), Label: pg.Title(), Current: pg == current})
	}
	return links
}

func legalLinks(current site.Page) []navLink {
	return []navLink{
		{Href: site.PagePrivacy.Filename(), Label: site.PagePrivacy.Title(), Current: current == site.PagePrivacy},
		{Href: site.PageTerms.Filename(), Label: site.PageTerms.Title(), Current: current == site.PageTerms},
	}
}

// telURL keeps the leading plus sign and digits of phone.
func telURL(phone string) template.URL {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	// #nosec G203 -- only '+' and ASCII digits survive.
	return template.URL("tel:" + b.String())
}

func mailURL(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}

func mapSearch(p *profile.BusinessProfile) string {
	return mapSearchURL + url.QueryEscape(joinNonEmpty(" ", p.Name, p.Address, p.City))
}

func serviceBlurb(prefix, category, city string) string {
	who := joinNonEmpty(" ", prefix, category, "specialists")
	if city == "" {
		return who + " serving local customers."
	}
	return who + " serving customers in " + city + "."
}

func storefrontAlt(p *profile.BusinessProfile) string {
	if p.City == "" {
		return joinNonEmpty(" ", p.Name, "storefront")
	}
	return joinNonEmpty(" ", p.Name, "storefront in", p.City)
}
