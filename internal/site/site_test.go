package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	require.Equal(t, CorePages, Pages(false))
	all := Pages(true)
	require.Len(t, all, 6)
	require.Equal(t, PageNotFound, all[5])
	require.Equal(t, "404.html", PageNotFound.Filename())
	require.Equal(t, "index.html", PageHome.Filename())
}

func TestSite_OrderAndLookup(t *testing.T) {
	s := New()
	require.NoError(t, s.AddPage(PageHome, "<html>home</html>"))
	require.NoError(t, s.AddPage(PageAbout, "<html>about</html>"))
	require.NoError(t, s.AddFile(RobotsFile, "User-agent: *"))

	require.Equal(t, 3, s.Len())
	require.Equal(t, []string{"index.html", "about.html"}, s.PageFilenames())
	require.Equal(t, []Page{PageHome, PageAbout}, s.Pages())

	content, ok := s.Lookup(RobotsFile)
	require.True(t, ok)
	require.Equal(t, "User-agent: *", content)

	files := s.Files()
	require.Equal(t, "robots.txt", files[2].Name)
	require.Empty(t, files[2].Page)
}

func TestSite_RejectsDuplicates(t *testing.T) {
	s := New()
	require.NoError(t, s.AddPage(PageHome, "a"))
	require.Error(t, s.AddFile("index.html", "b"))
	require.Error(t, s.AddFile("", "c"))
}
