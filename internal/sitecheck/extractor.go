// Package sitecheck verifies that the pages of a generated site only link
// to artifacts the site actually contains.
package sitecheck

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
)

// Link is a reference found in an HTML document.
type Link struct {
	URL       string
	Text      string
	Tag       string
	Attribute string
	// Internal is set for relative links and links to the site's own host.
	Internal bool
}

var linkAttributes = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"iframe": "src",
	"source": "src",
}

// ExtractLinks returns every link-bearing attribute in the document.
func ExtractLinks(r io.Reader, base *url.URL) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "failed to parse HTML").Build()
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if key, ok := linkAttributes[n.Data]; ok {
				if v := getAttr(n, key); v != "" {
					links = append(links, Link{
						URL:       v,
						Text:      extractText(n),
						Tag:       n.Data,
						Attribute: key,
						Internal:  isInternalLink(v, base),
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractText(c))
	}
	return strings.TrimSpace(text.String())
}

func isInternalLink(link string, base *url.URL) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if u.Scheme == "" && u.Host == "" {
		return true
	}
	return base != nil && base.Host != "" && strings.EqualFold(u.Host, base.Host)
}
