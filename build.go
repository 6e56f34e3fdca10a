package islandguide

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eringen/islandguide/content"
	"github.com/eringen/islandguide/format"
	"github.com/eringen/islandguide/schemaorg"
)

// Build runs the full pipeline: load and validate every content file, then
// emit feed.xml, sitemap.xml, robots.txt, a guide index, and the per-page
// JSON-LD payloads into the output directory. Any schema violation aborts
// the build before anything is written.
func (b *Builder) Build() error {
	articles, err := content.LoadDir(b.Config.ContentDir)
	if err != nil {
		return fmt.Errorf("islandguide: load content: %w", err)
	}
	b.log.Info("content loaded", "articles", len(articles))

	if err := os.MkdirAll(b.Config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("islandguide: create output dir: %w", err)
	}

	feed, err := b.Feed(articles)
	if err != nil {
		return fmt.Errorf("islandguide: render feed: %w", err)
	}
	if err := b.writeFile("feed.xml", feed); err != nil {
		return err
	}

	sitemap, err := b.Sitemap(articles)
	if err != nil {
		return fmt.Errorf("islandguide: render sitemap: %w", err)
	}
	if err := b.writeFile("sitemap.xml", sitemap); err != nil {
		return err
	}

	if err := b.writeFile("robots.txt", b.robots()); err != nil {
		return err
	}

	index, err := b.guideIndex(articles)
	if err != nil {
		return fmt.Errorf("islandguide: render guide index: %w", err)
	}
	if err := b.writeFile("index.json", index); err != nil {
		return err
	}

	if err := b.writeJSONLD(articles); err != nil {
		return err
	}

	b.log.Info("build complete", "out", b.Config.OutputDir)
	return nil
}

func (b *Builder) writeFile(name string, data []byte) error {
	path := filepath.Join(b.Config.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("islandguide: create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("islandguide: write %s: %w", name, err)
	}
	return nil
}

func (b *Builder) robots() []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + b.Config.URL + "/sitemap.xml\n")
}

// guideEntry is one row of the emitted guide index consumed by the site's
// listing pages and client-side search.
type guideEntry struct {
	Slug          string   `json:"slug"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Category      string   `json:"category"`
	CategoryClass string   `json:"categoryClass"`
	Tags          []string `json:"tags"`
	Date          string   `json:"date"`
	ISODate       string   `json:"isoDate"`
	ReadingTime   int      `json:"readingTime"`
	Featured      bool     `json:"featured"`
}

func (b *Builder) guideIndex(articles []content.Article) ([]byte, error) {
	public := PublicArticles(articles)
	entries := make([]guideEntry, 0, len(public))
	for _, a := range public {
		entries = append(entries, guideEntry{
			Slug:          a.Slug,
			URL:           b.guideURL(a.Slug),
			Title:         a.Title,
			Summary:       format.Truncate(a.Description, 160),
			Category:      string(a.Category),
			CategoryClass: format.CategoryClass(string(a.Category)),
			Tags:          a.Tags,
			Date:          format.Date(a.PublishDate),
			ISODate:       format.ISODate(a.PublishDate),
			ReadingTime:   format.ReadingTime(a.Body),
			Featured:      a.Featured,
		})
	}
	return json.MarshalIndent(entries, "", "  ")
}

// site returns the schemaorg input built from the static configuration.
func (b *Builder) site() schemaorg.Site {
	var sameAs []string
	if b.Config.TwitterURL != "" {
		sameAs = append(sameAs, b.Config.TwitterURL)
	}
	if b.Config.FacebookURL != "" {
		sameAs = append(sameAs, b.Config.FacebookURL)
	}
	return schemaorg.Site{
		Name:        b.Config.Name,
		URL:         b.Config.URL,
		Description: b.Config.Description,
		Logo:        b.Config.URL + "/android-chrome-512x512.png",
		SameAs:      sameAs,
	}
}

// writeJSONLD emits the site-wide payloads once, then one payload bundle per
// public article under ld/.
func (b *Builder) writeJSONLD(articles []content.Article) error {
	site := b.site()
	siteLD := "[" + schemaorg.Organization(site) + "," + schemaorg.WebSite(site) + "]"
	if err := b.writeFile(filepath.Join("ld", "site.json"), []byte(siteLD)); err != nil {
		return err
	}

	for _, a := range PublicArticles(articles) {
		payloads := b.pageJSONLD(a)
		bundle := "[" + strings.Join(payloads, ",") + "]"
		name := filepath.Join("ld", a.Slug+".json")
		if err := b.writeFile(name, []byte(bundle)); err != nil {
			return err
		}
	}
	return nil
}

// pageJSONLD assembles every structured-data payload for one article page:
// a breadcrumb trail, the main entity selected by the article's schema type,
// and a FAQPage block when the article carries FAQs.
func (b *Builder) pageJSONLD(a content.Article) []string {
	url := b.guideURL(a.Slug)
	image := b.Config.URL + a.HeroImage.Src

	payloads := []string{
		schemaorg.Breadcrumb([]schemaorg.Crumb{
			{Name: "Home", URL: BuildURL(b.Config.URL)},
			{Name: a.Title, URL: url},
		}),
	}

	switch a.SchemaType {
	case content.SchemaTouristAttraction:
		if a.Location != nil {
			payloads = append(payloads, b.attractionLD(a, url, image))
			break
		}
		// An attraction page without a location block degrades to Article.
		b.log.Warn("attraction without location, emitting Article", "slug", a.Slug)
		payloads = append(payloads, b.articleLD(a, url, image))
	case content.SchemaHowTo:
		payloads = append(payloads, b.howToLD(a, url, image))
	case content.SchemaFAQPage:
		payloads = append(payloads, faqLD(a.FAQs))
	case content.SchemaArticle:
		payloads = append(payloads, b.articleLD(a, url, image))
	default:
		payloads = append(payloads, b.articleLD(a, url, image))
	}

	if len(a.FAQs) > 0 && a.SchemaType != content.SchemaFAQPage {
		payloads = append(payloads, faqLD(a.FAQs))
	}
	return payloads
}

func (b *Builder) articleLD(a content.Article, url, image string) string {
	return schemaorg.Article(schemaorg.ArticleInput{
		Headline:    a.Title,
		Description: a.Description,
		URL:         url,
		Image:       image,
		Published:   a.PublishDate,
		Modified:    a.UpdatedDate,
		AuthorName:  a.Author.Name,
		Publisher:   b.Config.Name,
		Section:     string(a.Category),
		Keywords:    a.Keywords,
	})
}

func (b *Builder) attractionLD(a content.Article, url, image string) string {
	in := schemaorg.AttractionInput{
		Name:         a.Title,
		Description:  a.Description,
		URL:          url,
		Image:        image,
		Address:      a.Location.Name,
		Municipality: a.Location.Municipality,
		OpeningHours: a.OpeningHours,
	}
	if a.Location.Coordinates != nil {
		in.Geo = &schemaorg.Geo{
			Lat: a.Location.Coordinates.Lat,
			Lng: a.Location.Coordinates.Lng,
		}
	}
	if a.PriceRange != nil {
		in.PriceRange = format.PriceRange(a.PriceRange.Min, a.PriceRange.Max)
	}
	return schemaorg.TouristAttraction(in)
}

// howToLD derives the HowTo steps from the article's level-2 headings, in
// document order. The generator assigns positions.
func (b *Builder) howToLD(a content.Article, url, image string) string {
	var steps []schemaorg.Step
	for _, h := range format.ExtractHeadings(a.Body) {
		if h.Level != 2 {
			continue
		}
		steps = append(steps, schemaorg.Step{Name: h.Text})
	}
	return schemaorg.HowTo(schemaorg.HowToInput{
		Name:        a.Title,
		Description: a.Description,
		URL:         url,
		Image:       image,
		TotalTime:   a.Duration,
		Steps:       steps,
	})
}

func faqLD(faqs []content.FAQ) string {
	qas := make([]schemaorg.QA, 0, len(faqs))
	for _, f := range faqs {
		qas = append(qas, schemaorg.QA{Question: f.Question, Answer: f.Answer})
	}
	return schemaorg.FAQPage(qas)
}
