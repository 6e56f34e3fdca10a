package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadDir reads every .md file under dir, parses its front matter, validates
// it against the article schema, and returns the normalized articles in walk
// order. The first invalid file aborts the whole load; the returned error
// names the file and the offending field so the build fails fast instead of
// shipping partially-valid content.
func LoadDir(dir string) ([]Article, error) {
	var articles []Article
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		article, err := LoadFile(path)
		if err != nil {
			return err
		}
		articles = append(articles, article)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// LoadFile parses and validates a single content file. The article slug is
// the file name without its extension.
func LoadFile(path string) (Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Article{}, fmt.Errorf("content: read %s: %w", path, err)
	}

	fm, body, err := ParseFrontMatter(raw)
	if err != nil {
		return Article{}, fmt.Errorf("content: %s: %w", path, err)
	}

	if err := Validate(&fm); err != nil {
		return Article{}, fmt.Errorf("content: %s: %w", path, err)
	}

	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	article, err := Normalize(slug, fm, body)
	if err != nil {
		return Article{}, fmt.Errorf("content: %s: %w", path, err)
	}
	return article, nil
}
