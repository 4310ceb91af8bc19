// Package seo builds the crawler-facing artifacts of a generated site.
package seo

import (
	"encoding/xml"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/site"
)

// SitemapNamespace is the sitemaps.org protocol namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is the root element of a sitemap.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is a single sitemap entry.
type URL struct {
	Loc string `xml:"loc"`
}

// RobotsTxt allows every crawler and points it at the sitemap. baseURL is
// expected to end in a slash.
func RobotsTxt(baseURL string) string {
	return "User-agent: *\nAllow: /\nSitemap: " + baseURL + site.SitemapFile
}

// Sitemap lists one entry per file, in the given order.
func Sitemap(baseURL string, files []string) (string, error) {
	set := URLSet{XMLNS: SitemapNamespace, URLs: make([]URL, 0, len(files))}
	for _, f := range files {
		set.URLs = append(set.URLs, URL{Loc: baseURL + f})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "encode sitemap").Build()
	}
	return xml.Header + string(out) + "\n", nil
}

// Build appends robots.txt and sitemap.xml to s. The sitemap covers every
// page already in s.
func Build(baseURL string, s *site.Site) error {
	sitemap, err := Sitemap(baseURL, s.PageFilenames())
	if err != nil {
		return err
	}
	if err := s.AddFile(site.RobotsFile, RobotsTxt(baseURL)); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "add robots.txt").Build()
	}
	if err := s.AddFile(site.SitemapFile, sitemap); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "add sitemap.xml").Build()
	}
	return nil
}
