package sitecheck

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/localsite/internal/site"
)

// Issue describes a broken internal reference.
type Issue struct {
	File   string
	URL    string
	Tag    string
	Reason string
}

func (i Issue) String() string {
	return i.File + ": " + i.Tag + " " + i.URL + ": " + i.Reason
}

// CheckSite reports internal links on every page that do not resolve to an
// artifact of s. baseURL may be empty, in which case only relative links are
// considered internal.
func CheckSite(s *site.Site, baseURL string) []Issue {
	base, _ := url.Parse(baseURL)

	var issues []Issue
	for _, f := range s.Files() {
		if f.Page == "" {
			continue
		}
		links, err := ExtractLinks(strings.NewReader(f.Content), base)
		if err != nil {
			issues = append(issues, Issue{File: f.Name, Reason: err.Error()})
			continue
		}
		for _, l := range links {
			if !l.Internal {
				continue
			}
			target, ok := resolve(l.URL, base)
			if !ok {
				continue
			}
			if _, exists := s.Lookup(target); !exists {
				issues = append(issues, Issue{File: f.Name, URL: l.URL, Tag: l.Tag, Reason: "target not generated"})
			}
		}
	}
	return issues
}

// resolve maps an internal link to an artifact name. Fragment-only links
// resolve to nothing.
func resolve(link string, base *url.URL) (string, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	p := u.Path
	if u.Host != "" && base != nil {
		p = strings.TrimPrefix(p, base.Path)
	}
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		if u.Host != "" {
			return "index.html", true
		}
		return "", false
	}
	if strings.HasSuffix(p, "/") {
		p += "index.html"
	}
	return p, true
}
