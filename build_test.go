package islandguide

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
)

const sampleGuide = `---
title: "Cambugahay Falls"
description: "Tiered turquoise falls a short ride from Lazi town."
keywords: [cambugahay, waterfalls, lazi]
category: waterfalls
tags: [waterfalls, swimming]
publishDate: "2024-01-15"
schemaType: TouristAttraction
heroImage:
  src: /images/cambugahay.jpg
  alt: Turquoise pools at Cambugahay Falls
location:
  name: Cambugahay Falls
  municipality: lazi
  coordinates:
    lat: 9.129
    lng: 123.633
priceRange:
  min: 50
  max: 50
faqs:
  - question: "Is there an entrance fee?"
    answer: "Yes, 50 pesos per person."
---
Intro.

## Getting There

Take a habal-habal from Lazi.

## What to Bring

Water shoes and cash for the rope swings.
`

const sampleDraft = `---
title: "Unfinished Guide"
description: "Not ready for the public yet."
keywords: [draft, pending, todo]
category: travel-tips
tags: [tips]
publishDate: "2024-05-01"
draft: true
heroImage:
  src: /images/pending.jpg
  alt: Placeholder
---
WIP.
`

func setupBuild(t *testing.T) *Builder {
	t.Helper()
	contentDir := t.TempDir()
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(contentDir, "cambugahay-falls.md"), []byte(sampleGuide), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(contentDir, "unfinished.md"), []byte(sampleDraft), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(SiteConfig{
		Name:        "Siquijor Island Guide",
		URL:         "https://example.com",
		Description: "Travel guides for Siquijor",
		ContentDir:  contentDir,
		OutputDir:   outDir,
	})
}

func TestBuild(t *testing.T) {
	b := setupBuild(t)
	if err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, name := range []string{"feed.xml", "sitemap.xml", "robots.txt", "index.json",
		filepath.Join("ld", "site.json"), filepath.Join("ld", "cambugahay-falls.json")} {
		if _, err := os.Stat(filepath.Join(b.Config.OutputDir, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}

	// Drafts get no structured-data bundle.
	if _, err := os.Stat(filepath.Join(b.Config.OutputDir, "ld", "unfinished.json")); err == nil {
		t.Error("draft article should not get a JSON-LD bundle")
	}
}

func TestBuildFeedParses(t *testing.T) {
	b := setupBuild(t)
	if err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(b.Config.OutputDir, "feed.xml"))
	if err != nil {
		t.Fatal(err)
	}
	feed, err := gofeed.NewParser().ParseString(string(raw))
	if err != nil {
		t.Fatalf("emitted feed does not parse: %v", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("got %d feed items, want 1 (draft excluded)", len(feed.Items))
	}
	if feed.Items[0].Title != "Cambugahay Falls" {
		t.Errorf("feed item title = %q", feed.Items[0].Title)
	}
}

func TestBuildGuideIndex(t *testing.T) {
	b := setupBuild(t)
	if err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(b.Config.OutputDir, "index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var entries []guideEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("guide index does not parse: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d index entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Slug != "cambugahay-falls" {
		t.Errorf("slug = %q", e.Slug)
	}
	if e.Date != "January 15, 2024" {
		t.Errorf("date = %q", e.Date)
	}
	if e.ReadingTime < 1 {
		t.Errorf("reading time = %d, want >= 1", e.ReadingTime)
	}
	if e.CategoryClass == "" {
		t.Error("category class missing")
	}
}

func TestBuildJSONLDBundle(t *testing.T) {
	b := setupBuild(t)
	if err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(b.Config.OutputDir, "ld", "cambugahay-falls.json"))
	if err != nil {
		t.Fatal(err)
	}
	var payloads []map[string]interface{}
	if err := json.Unmarshal(raw, &payloads); err != nil {
		t.Fatalf("JSON-LD bundle does not parse: %v", err)
	}

	types := make([]string, 0, len(payloads))
	for _, p := range payloads {
		types = append(types, p["@type"].(string))
	}
	joined := strings.Join(types, ",")
	for _, want := range []string{"BreadcrumbList", "TouristAttraction", "FAQPage"} {
		if !strings.Contains(joined, want) {
			t.Errorf("bundle types = %v, missing %s", types, want)
		}
	}

	for _, p := range payloads {
		if p["@type"] != "TouristAttraction" {
			continue
		}
		if p["priceRange"] != "₱50" {
			t.Errorf("priceRange = %v, want single collapsed price", p["priceRange"])
		}
		geo, ok := p["geo"].(map[string]interface{})
		if !ok {
			t.Fatal("attraction missing geo")
		}
		if geo["latitude"] != 9.129 {
			t.Errorf("latitude = %v", geo["latitude"])
		}
	}
}

func TestBuildFailsOnInvalidContent(t *testing.T) {
	contentDir := t.TempDir()
	bad := "---\ntitle: \"No other fields\"\n---\nbody\n"
	if err := os.WriteFile(filepath.Join(contentDir, "bad.md"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	b := New(SiteConfig{
		ContentDir: contentDir,
		OutputDir:  t.TempDir(),
	})
	err := b.Build()
	if err == nil {
		t.Fatal("Build should fail on invalid content")
	}
	if !strings.Contains(err.Error(), "bad.md") {
		t.Errorf("error should name the offending file: %v", err)
	}
}
