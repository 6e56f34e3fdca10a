// Package islandguide builds a static travel-guide website for Siquijor:
// authored markdown with validated front matter goes in, and the rendered
// feed, sitemap, robots.txt, structured-data payloads, and meta assets come
// out. The pipeline is one-directional and side-effect-free until the final
// write: load → validate → format/generate → emit.
package islandguide

import (
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"
)

// Builder runs the one-shot build pipeline for a configured site.
type Builder struct {
	Config SiteConfig

	log *slog.Logger
}

// New creates a Builder with the given configuration.
func New(cfg SiteConfig, opts ...Option) *Builder {
	cfg.setDefaults()

	b := &Builder{
		Config: cfg,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// guideURL returns the canonical URL for an article slug. Every public
// article lives under /guides/.
func (b *Builder) guideURL(slug string) string {
	return BuildURL(b.Config.URL, "guides", slug)
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty. Convenience for cmd wiring.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
