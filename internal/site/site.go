// Package site models a generated site: an ordered set of named text
// artifacts ready for packaging.
package site

import (
	"fmt"
	"slices"
)

// Page identifies a logical page of the fixed page set.
type Page string

const (
	PageHome     Page = "home"
	PageAbout    Page = "about"
	PageContact  Page = "contact"
	PagePrivacy  Page = "privacy"
	PageTerms    Page = "terms"
	PageNotFound Page = "not-found"
)

// Ancillary artifact names.
const (
	RobotsFile  = "robots.txt"
	SitemapFile = "sitemap.xml"
)

var pageFiles = map[Page]string{
	PageHome:     "index.html",
	PageAbout:    "about.html",
	PageContact:  "contact.html",
	PagePrivacy:  "privacy.html",
	PageTerms:    "terms.html",
	PageNotFound: "404.html",
}

var pageTitles = map[Page]string{
	PageHome:     "Home",
	PageAbout:    "About",
	PageContact:  "Contact",
	PagePrivacy:  "Privacy Policy",
	PageTerms:    "Terms & Conditions",
	PageNotFound: "Page Not Found",
}

// CorePages is the page set every site contains, in output order.
var CorePages = []Page{PageHome, PageAbout, PageContact, PagePrivacy, PageTerms}

// Pages returns the page set, optionally with the not-found page.
func Pages(includeNotFound bool) []Page {
	pages := slices.Clone(CorePages)
	if includeNotFound {
		pages = append(pages, PageNotFound)
	}
	return pages
}

// Filename returns the archive filename of p.
func (p Page) Filename() string {
	return pageFiles[p]
}

// Title returns the human title of p.
func (p Page) Title() string {
	return pageTitles[p]
}

// File is one named artifact.
type File struct {
	Name    string
	Content string
	// Page is set for HTML documents and empty for ancillary files.
	Page Page
}

// Site is the ordered artifact set produced for one profile.
type Site struct {
	files []File
	index map[string]int
}

// New creates an empty site.
func New() *Site {
	return &Site{index: make(map[string]int)}
}

// AddPage adds the HTML document for p.
func (s *Site) AddPage(p Page, html string) error {
	return s.add(File{Name: p.Filename(), Content: html, Page: p})
}

// AddFile adds an ancillary artifact.
func (s *Site) AddFile(name, content string) error {
	return s.add(File{Name: name, Content: content})
}

func (s *Site) add(f File) error {
	if f.Name == "" {
		return fmt.Errorf("artifact name is empty")
	}
	if _, dup := s.index[f.Name]; dup {
		return fmt.Errorf("duplicate artifact %q", f.Name)
	}
	s.index[f.Name] = len(s.files)
	s.files = append(s.files, f)
	return nil
}

// Files returns the artifacts in insertion order.
func (s *Site) Files() []File {
	return slices.Clone(s.files)
}

// Pages returns the logical pages present, in insertion order.
func (s *Site) Pages() []Page {
	var pages []Page
	for _, f := range s.files {
		if f.Page != "" {
			pages = append(pages, f.Page)
		}
	}
	return pages
}

// PageFilenames returns the filenames of the HTML documents, in order.
func (s *Site) PageFilenames() []string {
	var names []string
	for _, f := range s.files {
		if f.Page != "" {
			names = append(names, f.Name)
		}
	}
	return names
}

// Lookup returns the content of the named artifact.
func (s *Site) Lookup(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.files[i].Content, true
}

// Len returns the number of artifacts.
func (s *Site) Len() int {
	return len(s.files)
}
