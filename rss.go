package islandguide

import (
	"bytes"
	"encoding/xml"
	"sort"
	"time"

	"github.com/eringen/islandguide/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
	Author      string   `xml:"author"`
	Categories  []string `xml:"category"`
}

// PublicArticles filters out drafts and sorts the remainder by publish date
// descending. The sort is stable and keyed only on the date, so articles
// sharing a date keep their input order.
func PublicArticles(articles []content.Article) []content.Article {
	public := make([]content.Article, 0, len(articles))
	for _, a := range articles {
		if !a.Draft {
			public = append(public, a)
		}
	}
	sort.SliceStable(public, func(i, j int) bool {
		return public[i].PublishDate.After(public[j].PublishDate)
	})
	return public
}

// Feed renders the RSS 2.0 document for the article set. Drafts never appear;
// each item's category list is the article's primary category followed by its
// tags, and the author falls back to the site default. The serializer assumes
// validated input — a record missing required fields should never reach it.
func (b *Builder) Feed(articles []content.Article) ([]byte, error) {
	public := PublicArticles(articles)

	items := make([]rssItem, 0, len(public))
	for _, a := range public {
		author := a.Author.Name
		if author == "" {
			author = b.Config.Author
		}
		categories := append([]string{string(a.Category)}, a.Tags...)
		link := b.guideURL(a.Slug)
		items = append(items, rssItem{
			Title:       a.Title,
			Link:        link,
			Description: a.Description,
			PubDate:     a.PublishDate.UTC().Format(time.RFC1123Z),
			GUID:        link,
			Author:      author,
			Categories:  categories,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       b.Config.Name,
			Link:        b.Config.URL,
			Description: b.Config.Description,
			Language:    b.Config.Language,
			Items:       items,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
