package schemaorg

import (
	"encoding/json"
	"testing"
	"time"
)

func decode(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("payload is not valid JSON: %v\n%s", err, payload)
	}
	return data
}

var testSite = Site{
	Name:        "Siquijor Island Guide",
	URL:         "https://example.com",
	Description: "Travel guides for Siquijor",
	Logo:        "https://example.com/logo.png",
	SameAs:      []string{"https://twitter.com/example"},
}

func TestOrganization(t *testing.T) {
	data := decode(t, Organization(testSite))
	if data["@type"] != "Organization" {
		t.Errorf("@type = %v, want Organization", data["@type"])
	}
	if data["name"] != testSite.Name {
		t.Errorf("name = %v, want %q", data["name"], testSite.Name)
	}
	logo, ok := data["logo"].(map[string]interface{})
	if !ok || logo["url"] != testSite.Logo {
		t.Errorf("logo = %v, want ImageObject with url %q", data["logo"], testSite.Logo)
	}
}

func TestOrganizationOmitsEmptyOptionals(t *testing.T) {
	data := decode(t, Organization(Site{Name: "X", URL: "https://x.test"}))
	for _, key := range []string{"description", "logo", "sameAs"} {
		if _, present := data[key]; present {
			t.Errorf("key %q should be structurally absent", key)
		}
	}
}

func TestWebSite(t *testing.T) {
	data := decode(t, WebSite(testSite))
	if data["@type"] != "WebSite" {
		t.Errorf("@type = %v, want WebSite", data["@type"])
	}
	if data["url"] != testSite.URL {
		t.Errorf("url = %v, want %q", data["url"], testSite.URL)
	}
}

func TestArticleModifiedDefaultsToPublished(t *testing.T) {
	published := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	data := decode(t, Article(ArticleInput{
		Headline:    "Title",
		Description: "Desc",
		URL:         "https://example.com/guides/x/",
		Image:       "https://example.com/x.jpg",
		Published:   published,
		AuthorName:  "Editorial Team",
	}))
	if data["datePublished"] != "2024-01-15T00:00:00Z" {
		t.Errorf("datePublished = %v", data["datePublished"])
	}
	if data["dateModified"] != data["datePublished"] {
		t.Errorf("dateModified = %v, want fallback to datePublished", data["dateModified"])
	}
}

func TestArticleOmitsAbsentSection(t *testing.T) {
	in := ArticleInput{
		Headline:   "Title",
		URL:        "https://example.com/guides/x/",
		Published:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AuthorName: "Editorial Team",
	}
	data := decode(t, Article(in))
	if _, present := data["articleSection"]; present {
		t.Error("articleSection should be structurally absent")
	}
	if _, present := data["keywords"]; present {
		t.Error("keywords should be structurally absent")
	}

	in.Section = "beaches"
	data = decode(t, Article(in))
	if data["articleSection"] != "beaches" {
		t.Errorf("articleSection = %v, want beaches", data["articleSection"])
	}
}

func TestTouristAttractionFixedAccessibility(t *testing.T) {
	data := decode(t, TouristAttraction(AttractionInput{
		Name:         "Cambugahay Falls",
		Description:  "Tiered falls",
		URL:          "https://example.com/guides/cambugahay-falls/",
		Image:        "https://example.com/falls.jpg",
		Address:      "Cambugahay Falls",
		Municipality: "lazi",
	}))
	if data["isAccessibleForFree"] != false {
		t.Errorf("isAccessibleForFree = %v, want false", data["isAccessibleForFree"])
	}
	if data["publicAccess"] != true {
		t.Errorf("publicAccess = %v, want true", data["publicAccess"])
	}
	addr, ok := data["address"].(map[string]interface{})
	if !ok || addr["addressLocality"] != "lazi" {
		t.Errorf("address = %v, want locality lazi", data["address"])
	}
}

func TestTouristAttractionOmitsAbsentOptionals(t *testing.T) {
	in := AttractionInput{Name: "X", Municipality: "lazi"}
	data := decode(t, TouristAttraction(in))
	for _, key := range []string{"geo", "openingHoursSpecification", "priceRange"} {
		if _, present := data[key]; present {
			t.Errorf("key %q should be structurally absent", key)
		}
	}

	in.Geo = &Geo{Lat: 9.129, Lng: 123.633}
	in.OpeningHours = "8:00 AM - 5:00 PM"
	in.PriceRange = "₱50"
	data = decode(t, TouristAttraction(in))
	geo, ok := data["geo"].(map[string]interface{})
	if !ok || geo["latitude"] != 9.129 {
		t.Errorf("geo = %v, want latitude 9.129", data["geo"])
	}
	if _, present := data["openingHoursSpecification"]; !present {
		t.Error("openingHoursSpecification missing when openingHours supplied")
	}
}

func TestHowToStepPositions(t *testing.T) {
	for _, count := range []int{0, 1, 5} {
		steps := make([]Step, count)
		for i := range steps {
			steps[i] = Step{Name: "step"}
		}
		data := decode(t, HowTo(HowToInput{Name: "X", Steps: steps}))
		out, ok := data["step"].([]interface{})
		if !ok {
			t.Fatalf("step is not an array: %v", data["step"])
		}
		if len(out) != count {
			t.Fatalf("step count = %d, want %d", len(out), count)
		}
		for i, s := range out {
			step := s.(map[string]interface{})
			if step["position"] != float64(i+1) {
				t.Errorf("step %d position = %v, want %d", i, step["position"], i+1)
			}
		}
	}
}

func TestFAQPagePreservesOrder(t *testing.T) {
	faqs := []QA{
		{Question: "First?", Answer: "A1"},
		{Question: "Second?", Answer: "A2"},
		{Question: "Third?", Answer: "A3"},
	}
	data := decode(t, FAQPage(faqs))
	entities, ok := data["mainEntity"].([]interface{})
	if !ok || len(entities) != 3 {
		t.Fatalf("mainEntity = %v, want 3 entries", data["mainEntity"])
	}
	for i, e := range entities {
		q := e.(map[string]interface{})
		if q["name"] != faqs[i].Question {
			t.Errorf("question %d = %v, want %q", i, q["name"], faqs[i].Question)
		}
		answer := q["acceptedAnswer"].(map[string]interface{})
		if answer["text"] != faqs[i].Answer {
			t.Errorf("answer %d = %v, want %q", i, answer["text"], faqs[i].Answer)
		}
	}
}

func TestBreadcrumbPositions(t *testing.T) {
	crumbs := []Crumb{
		{Name: "Home", URL: "https://example.com/"},
		{Name: "Beaches", URL: "https://example.com/beaches/"},
		{Name: "Paliton", URL: "https://example.com/guides/paliton/"},
	}
	data := decode(t, Breadcrumb(crumbs))
	items, ok := data["itemListElement"].([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("itemListElement = %v, want 3 entries", data["itemListElement"])
	}
	for i, it := range items {
		item := it.(map[string]interface{})
		if item["position"] != float64(i+1) {
			t.Errorf("item %d position = %v, want %d", i, item["position"], i+1)
		}
		if item["name"] != crumbs[i].Name {
			t.Errorf("item %d name = %v, want %q", i, item["name"], crumbs[i].Name)
		}
	}
}

func TestDeterministicOutput(t *testing.T) {
	in := ArticleInput{
		Headline:   "Title",
		URL:        "https://example.com/guides/x/",
		Published:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AuthorName: "Editorial Team",
		Section:    "beaches",
		Keywords:   []string{"a", "b", "c"},
	}
	first := Article(in)
	for i := 0; i < 10; i++ {
		if got := Article(in); got != first {
			t.Fatalf("output not deterministic:\n%s\n%s", first, got)
		}
	}
}
