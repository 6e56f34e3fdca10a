package islandguide

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/eringen/islandguide/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// staticRoutes are the site's non-article pages, as path segments off the
// base URL. The empty segment is the home page.
var staticRoutes = []string{"", "about", "guides", "privacy", "terms", "404"}

// sitemapDenylist excludes routes from the sitemap by substring match.
var sitemapDenylist = []string{"privacy", "terms", "404"}

func sitemapExcluded(route string) bool {
	for _, deny := range sitemapDenylist {
		if strings.Contains(route, deny) {
			return true
		}
	}
	return false
}

// Sitemap renders the sitemap for the static routes plus every non-draft
// article. Article entries carry a lastmod of the updated date when present,
// otherwise the publish date.
func (b *Builder) Sitemap(articles []content.Article) ([]byte, error) {
	var urls []sitemapURL
	for _, route := range staticRoutes {
		if sitemapExcluded(route) {
			continue
		}
		urls = append(urls, sitemapURL{Loc: BuildURL(b.Config.URL, route)})
	}
	for _, a := range PublicArticles(articles) {
		urls = append(urls, sitemapURL{
			Loc:     b.guideURL(a.Slug),
			LastMod: a.LastModified().Format("2006-01-02"),
		})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
