// Command islandguide builds the static travel-guide site: validates every
// content file, emits the feed, sitemap, and structured-data payloads, and
// generates the favicon/social-preview assets. Site branding comes from
// environment variables, optionally loaded from a .env file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	islandguide "github.com/eringen/islandguide"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// A missing .env is fine; env vars may come from the shell.
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	b := islandguide.New(configFromEnv(), islandguide.WithLogger(log))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		if err := b.Build(); err != nil {
			log.Error("build failed", "err", err)
			os.Exit(1)
		}
	case "assets":
		hero := ""
		if len(os.Args) > 2 {
			hero = os.Args[2]
		}
		if err := b.GenerateAssets(hero); err != nil {
			log.Error("asset generation failed", "err", err)
			os.Exit(1)
		}
	case "serve":
		addr := ":3000"
		if len(os.Args) > 2 {
			addr = os.Args[2]
		}
		if err := b.Serve(addr); err != nil {
			log.Error("preview server failed", "err", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("islandguide %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func configFromEnv() islandguide.SiteConfig {
	return islandguide.SiteConfig{
		Name:        islandguide.EnvOr("SITE_NAME", "Siquijor Island Guide"),
		URL:         islandguide.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: islandguide.EnvOr("SITE_DESCRIPTION", "Travel guides for Siquijor island"),
		Tagline:     islandguide.EnvOr("SITE_TAGLINE", "Beaches, waterfalls, and island life"),
		Author:      islandguide.EnvOr("SITE_AUTHOR", "Editorial Team"),
		TwitterURL:  os.Getenv("SITE_TWITTER_URL"),
		FacebookURL: os.Getenv("SITE_FACEBOOK_URL"),
		ContentDir:  islandguide.EnvOr("CONTENT_DIR", "content/guides"),
		OutputDir:   islandguide.EnvOr("OUTPUT_DIR", "dist"),
	}
}

func printUsage() {
	fmt.Println(`islandguide - static travel-guide site builder

Usage:
  islandguide <command> [arguments]

Commands:
  build           Validate content and emit feed, sitemap, and JSON-LD
  assets [hero]   Generate favicons and the OG image (optional hero photo)
  serve [addr]    Preview the built output locally (default :3000)
  version         Print the islandguide version
  help            Show this help message`)
}
