package islandguide

import "log/slog"

// SiteConfig holds all site-wide constants: branding, canonical URL, social
// profiles, and the content/output directories. Generators and the feed read
// it; changing a value never changes an algorithm.
type SiteConfig struct {
	Name        string // Site name (default "Siquijor Island Guide")
	URL         string // Canonical base URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Tagline     string // Short line drawn onto the OG image
	Author      string // Default author name (default "Editorial Team")
	Language    string // RSS language tag (default "en-us")

	TwitterURL  string // Social profile, attached to Organization sameAs
	FacebookURL string

	ContentDir string // Authored markdown (default "content/guides")
	OutputDir  string // Build output (default "dist")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Siquijor Island Guide"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Author == "" {
		c.Author = "Editorial Team"
	}
	if c.Language == "" {
		c.Language = "en-us"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/guides"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
}

// Option configures additional Builder behavior.
type Option func(*Builder)

// WithLogger sets the structured logger the build pipeline reports through.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}
