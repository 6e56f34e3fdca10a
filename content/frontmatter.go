package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// ErrNoFrontMatter is returned when a content file does not open with a
// front matter block.
var ErrNoFrontMatter = errors.New("content: missing front matter block")

// ParseFrontMatter splits a raw content file into its YAML front matter and
// markdown body. The file must start with a "---" line and carry a matching
// closing "---" line. Unknown front matter fields are rejected so typos in
// authored content surface at build time instead of silently dropping data.
func ParseFrontMatter(raw []byte) (FrontMatter, string, error) {
	var fm FrontMatter

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, frontMatterDelimiter+"\n") {
		return fm, "", ErrNoFrontMatter
	}

	rest := text[len(frontMatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return fm, "", fmt.Errorf("content: unterminated front matter block")
	}
	block := rest[:end]

	body := rest[end+len(frontMatterDelimiter)+1:]
	body = strings.TrimPrefix(body, "\n")

	dec := yaml.NewDecoder(bytes.NewReader([]byte(block)))
	dec.KnownFields(true)
	if err := dec.Decode(&fm); err != nil {
		return fm, "", fmt.Errorf("content: decode front matter: %w", err)
	}
	return fm, body, nil
}
