// Package schemaorg generates schema.org JSON-LD payloads for the site's
// pages. Every generator is a pure mapping from a narrow input record to a
// compact JSON string; optional inputs are conditionally attached so absent
// fields never appear as null or empty values in the output.
package schemaorg

import (
	"encoding/json"
	"time"
)

const schemaContext = "https://schema.org"

// Site carries the site-wide constants the per-build generators read.
type Site struct {
	Name        string
	URL         string
	Description string
	Logo        string
	SameAs      []string
}

// setIf attaches key only when val is non-empty.
func setIf(data map[string]interface{}, key, val string) {
	if val != "" {
		data[key] = val
	}
}

// marshal renders a graph as compact JSON. Map keys marshal in sorted order,
// so the same input always produces byte-identical output.
func marshal(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Organization generates the site-wide Organization entity. Invoked once per
// build.
func Organization(site Site) string {
	data := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     site.Name,
		"url":      site.URL,
	}
	setIf(data, "description", site.Description)
	if site.Logo != "" {
		data["logo"] = map[string]interface{}{
			"@type": "ImageObject",
			"url":   site.Logo,
		}
	}
	if len(site.SameAs) > 0 {
		data["sameAs"] = site.SameAs
	}
	return marshal(data)
}

// WebSite generates the site-wide WebSite entity. Invoked once per build.
func WebSite(site Site) string {
	data := map[string]interface{}{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      site.URL,
	}
	setIf(data, "description", site.Description)
	if site.Name != "" {
		data["publisher"] = map[string]interface{}{
			"@type": "Organization",
			"name":  site.Name,
		}
	}
	return marshal(data)
}

// ArticleInput is the per-page input for Article.
type ArticleInput struct {
	Headline    string
	Description string
	URL         string
	Image       string
	Published   time.Time
	Modified    time.Time // zero falls back to Published
	AuthorName  string
	Publisher   string
	Section     string // category; omitted from output when empty
	Keywords    []string
}

// Article generates an Article entity for a guide page. The modified date
// defaults to the publish date and the section is attached only when present.
func Article(in ArticleInput) string {
	modified := in.Modified
	if modified.IsZero() {
		modified = in.Published
	}
	data := map[string]interface{}{
		"@context":      schemaContext,
		"@type":         "Article",
		"headline":      in.Headline,
		"description":   in.Description,
		"url":           in.URL,
		"image":         in.Image,
		"datePublished": in.Published.UTC().Format(time.RFC3339),
		"dateModified":  modified.UTC().Format(time.RFC3339),
		"author": map[string]interface{}{
			"@type": "Person",
			"name":  in.AuthorName,
		},
		"mainEntityOfPage": map[string]interface{}{
			"@type": "WebPage",
			"@id":   in.URL,
		},
	}
	setIf(data, "articleSection", in.Section)
	if in.Publisher != "" {
		data["publisher"] = map[string]interface{}{
			"@type": "Organization",
			"name":  in.Publisher,
		}
	}
	if len(in.Keywords) > 0 {
		data["keywords"] = in.Keywords
	}
	return marshal(data)
}

// Geo is a GPS point attached to a TouristAttraction.
type Geo struct {
	Lat float64
	Lng float64
}

// AttractionInput is the per-page input for TouristAttraction.
type AttractionInput struct {
	Name         string
	Description  string
	URL          string
	Image        string
	Address      string
	Municipality string
	Geo          *Geo
	OpeningHours string
	PriceRange   string
}

// TouristAttraction generates a TouristAttraction entity. Geo, opening hours,
// and price range attach only when supplied. The accessibility fields are
// fixed editorial policy for the island's attractions, not caller input.
func TouristAttraction(in AttractionInput) string {
	data := map[string]interface{}{
		"@context":    schemaContext,
		"@type":       "TouristAttraction",
		"name":        in.Name,
		"description": in.Description,
		"url":         in.URL,
		"image":       in.Image,
		"address": map[string]interface{}{
			"@type":           "PostalAddress",
			"streetAddress":   in.Address,
			"addressLocality": in.Municipality,
			"addressRegion":   "Siquijor",
			"addressCountry":  "PH",
		},
		"isAccessibleForFree": false,
		"publicAccess":        true,
	}
	if in.Geo != nil {
		data["geo"] = map[string]interface{}{
			"@type":     "GeoCoordinates",
			"latitude":  in.Geo.Lat,
			"longitude": in.Geo.Lng,
		}
	}
	if in.OpeningHours != "" {
		data["openingHoursSpecification"] = map[string]interface{}{
			"@type":       "OpeningHoursSpecification",
			"description": in.OpeningHours,
		}
	}
	setIf(data, "priceRange", in.PriceRange)
	return marshal(data)
}

// Step is a single HowTo instruction. Positions are assigned by the
// generator, never by the caller.
type Step struct {
	Name string
	Text string
}

// HowToInput is the per-page input for HowTo.
type HowToInput struct {
	Name        string
	Description string
	URL         string
	Image       string
	TotalTime   string
	Steps       []Step
}

// HowTo generates a HowTo entity. Step positions are 1-based and exactly
// match input order; an empty step list yields an empty step array.
func HowTo(in HowToInput) string {
	steps := make([]map[string]interface{}, 0, len(in.Steps))
	for i, s := range in.Steps {
		step := map[string]interface{}{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     s.Name,
		}
		setIf(step, "text", s.Text)
		steps = append(steps, step)
	}
	data := map[string]interface{}{
		"@context":    schemaContext,
		"@type":       "HowTo",
		"name":        in.Name,
		"description": in.Description,
		"url":         in.URL,
		"image":       in.Image,
		"step":        steps,
	}
	setIf(data, "totalTime", in.TotalTime)
	return marshal(data)
}

// QA is a question/answer pair for FAQPage.
type QA struct {
	Question string
	Answer   string
}

// FAQPage generates a FAQPage entity, preserving input order.
func FAQPage(faqs []QA) string {
	entities := make([]map[string]interface{}, 0, len(faqs))
	for _, qa := range faqs {
		entities = append(entities, map[string]interface{}{
			"@type": "Question",
			"name":  qa.Question,
			"acceptedAnswer": map[string]interface{}{
				"@type": "Answer",
				"text":  qa.Answer,
			},
		})
	}
	data := map[string]interface{}{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
	return marshal(data)
}

// Crumb is one breadcrumb trail entry.
type Crumb struct {
	Name string
	URL  string
}

// Breadcrumb generates a BreadcrumbList entity with 1-based, order-preserving
// positions.
func Breadcrumb(crumbs []Crumb) string {
	items := make([]map[string]interface{}, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     c.URL,
		})
	}
	data := map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
	return marshal(data)
}
