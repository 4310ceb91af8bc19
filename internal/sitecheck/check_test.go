package sitecheck

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/localsite/internal/site"
)

func TestExtractLinks(t *testing.T) {
	doc := `<html><head><link rel="canonical" href="https://gupta.example/index.html">
<script src="https://cdn.tailwindcss.com"></script></head>
<body><a href="about.html">About <b>us</b></a><a href="tel:+91">Call</a>
<img src="https://images.example/shop.jpg" alt="shop"></body></html>`
	base, _ := url.Parse("https://gupta.example/")

	links, err := ExtractLinks(strings.NewReader(doc), base)
	require.NoError(t, err)
	require.Len(t, links, 5)

	require.Equal(t, Link{URL: "https://gupta.example/index.html", Tag: "link", Attribute: "href", Internal: true}, links[0])
	require.False(t, links[1].Internal)
	require.Equal(t, "Aboutus", links[2].Text)
	require.True(t, links[2].Internal)
	require.False(t, links[3].Internal, "tel links carry a scheme")
	require.False(t, links[4].Internal)
}

func TestCheckSite(t *testing.T) {
	s := site.New()
	require.NoError(t, s.AddPage(site.PageHome, `<a href="about.html">About</a><a href="#faq">FAQ</a><a href="https://gupta.example/">Home</a>`))
	require.NoError(t, s.AddPage(site.PageAbout, `<a href="index.html">Home</a><a href="missing.html">Gone</a><a href="https://other.example/x.html">Out</a>`))
	require.NoError(t, s.AddFile(site.RobotsFile, `<a href="nowhere.html">`))

	issues := CheckSite(s, "https://gupta.example/")
	require.Len(t, issues, 1)
	require.Equal(t, "about.html", issues[0].File)
	require.Equal(t, "missing.html", issues[0].URL)
	require.Equal(t, "a", issues[0].Tag)
}

func TestCheckSiteWithoutBaseURL(t *testing.T) {
	s := site.New()
	require.NoError(t, s.AddPage(site.PageHome, `<a href="./contact.html">Contact</a>`))

	issues := CheckSite(s, "")
	require.Len(t, issues, 1)
	require.Equal(t, "./contact.html", issues[0].URL)
}
